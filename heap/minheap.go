package heap

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// @Author KHighness
// @Update 2026-10-18

// Entry is an element remembered together with its position in a source sequence.
type Entry[E constraints.Ordered] struct {
	Val E
	Idx int
}

// MinHeap structure.
type MinHeap[E constraints.Ordered] struct {
	Entries Entries[E]
}

// NewMinHeap creates a MinHeap instance with room for capacity entries.
func NewMinHeap[E constraints.Ordered](capacity int) *MinHeap[E] {
	return &MinHeap[E]{Entries: make(Entries[E], 0, capacity)}
}

// Add adds an entry to the min heap.
func (h *MinHeap[E]) Add(val E, idx int) {
	Push[Entry[E]](&h.Entries, Entry[E]{Val: val, Idx: idx})
}

// Pop removes and returns the minimum entry from the min heap.
func (h *MinHeap[E]) Pop() Entry[E] {
	if h.IsEmpty() {
		panic("MinHeap: heap is empty")
	}
	return Pop[Entry[E]](&h.Entries)
}

// Min returns the minimum entry without removing it.
func (h *MinHeap[E]) Min() (Entry[E], bool) {
	if h.IsEmpty() {
		return Entry[E]{}, false
	}
	return h.Entries[0], true
}

// Sorted returns the entries sorted in ascending order.
func (h *MinHeap[E]) Sorted() Entries[E] {
	entries := append(Entries[E](nil), h.Entries...)
	sort.Sort(entries)
	return entries
}

// Len returns the length of the min heap.
func (h *MinHeap[E]) Len() int { return len(h.Entries) }

// IsEmpty checks if the min heap is empty.
func (h *MinHeap[E]) IsEmpty() bool { return h.Len() == 0 }

// Entries type.
type Entries[E constraints.Ordered] []Entry[E]

func (n Entries[E]) Len() int { return len(n) }
func (n Entries[E]) Less(i, j int) bool {
	return (n[i].Val < n[j].Val) || (n[i].Val == n[j].Val && n[i].Idx < n[j].Idx)
}
func (n Entries[E]) Swap(i, j int)  { n[i], n[j] = n[j], n[i] }
func (n *Entries[E]) Push(x Entry[E]) { *n = append(*n, x) }
func (n *Entries[E]) Pop() Entry[E] {
	var entry Entry[E]
	entry, *n = (*n)[len(*n)-1], (*n)[:len(*n)-1]
	return entry
}

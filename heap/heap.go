package heap

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// @Author KHighness
// @Update 2026-10-18

// Interface of a binary min heap holding elements of type E.
type Interface[E any] interface {
	sort.Interface
	Push(x E)
	Pop() E
}

// Init establishes the heap invariants.
func Init[E any](h Interface[E]) {
	n := h.Len()
	for i := (n >> 1) - 1; i >= 0; i-- {
		down(h, i, n)
	}
}

// Push pushes the element x onto the heap.
func Push[E any](h Interface[E], x E) {
	h.Push(x)
	up(h, h.Len()-1)
}

// Pop removes and returns the minimum element (according to Less) from the heap.
func Pop[E any](h Interface[E]) E {
	n := h.Len() - 1
	h.Swap(0, n)
	down(h, 0, n)
	return h.Pop()
}

// Remove removes and returns the element at index i from the heap.
func Remove[E any](h Interface[E], i int) E {
	n := h.Len() - 1
	if n != i {
		h.Swap(i, n)
		if !down(h, i, n) {
			up(h, i)
		}
	}
	return h.Pop()
}

// Fix re-establishes the heap ordering after the element at index i has changed its value.
func Fix[E any](h Interface[E], i int) {
	if !down(h, i, h.Len()) {
		up(h, i)
	}
}

// Heapify rearranges s in place into an array encoded min heap:
// the children of s[i] are s[2i+1] and s[2i+2].
func Heapify[E constraints.Ordered](s []E) {
	Init[E]((*Ordered[E])(&s))
}

// IsHeap reports whether s is an array encoded min heap.
func IsHeap[E constraints.Ordered](s []E) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[(i-1)/2] {
			return false
		}
	}
	return true
}

func up[E any](h Interface[E], j int) {
	for {
		i := (j - 1) / 2 // parent node
		if i == j || !h.Less(j, i) {
			break
		}
		h.Swap(i, j)
		j = i
	}
}

func down[E any](h Interface[E], i0, n int) bool {
	i := i0

	for {
		j1 := (i << 1) + 1 // left node
		if j1 >= n || j1 < 0 {
			break
		}

		j := j1
		if j2 := j1 + 1; j2 < n && h.Less(j2, j1) {
			j = j2 // right node
		}

		if !h.Less(j, i) {
			break
		}

		h.Swap(i, j)
		i = j
	}

	return i > i0
}

// Ordered is a slice of naturally ordered elements.
type Ordered[E constraints.Ordered] []E

func (o Ordered[E]) Len() int           { return len(o) }
func (o Ordered[E]) Less(i, j int) bool { return o[i] < o[j] }
func (o Ordered[E]) Swap(i, j int)      { o[i], o[j] = o[j], o[i] }
func (o *Ordered[E]) Push(x E)          { *o = append(*o, x) }
func (o *Ordered[E]) Pop() E {
	var x E
	x, *o = (*o)[len(*o)-1], (*o)[:len(*o)-1]
	return x
}

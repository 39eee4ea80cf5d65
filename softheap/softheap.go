package softheap

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// @Author KHighness
// @Update 2026-10-18

// SoftHeap is a meldable priority queue that may corrupt the keys of a
// bounded number of elements: at any time at most epsilon*n of the elements
// inserted so far are held under a key larger than their own.
//
// See: https://arxiv.org/abs/0802.1134 (Kaplan, Zwick: A simpler implementation
// and analysis of Chazelle's soft heaps).
//
// SoftHeap is not safe for concurrent use.
type SoftHeap[E constraints.Ordered] struct {
	head, tail *tree[E]
	numTrees   int

	inverseEpsilon int
	sizes          []int // target size per rank
	size           int
	extracted      int // corrupted elements already extracted
}

// New creates an empty SoftHeap with epsilon = 1/inverseEpsilon.
func New[E constraints.Ordered](inverseEpsilon int) (*SoftHeap[E], error) {
	if inverseEpsilon < 1 {
		return nil, errors.Wrapf(ErrInvalidParameter, "inverse epsilon %d is below 1", inverseEpsilon)
	}
	return &SoftHeap[E]{inverseEpsilon: inverseEpsilon}, nil
}

// NewSingleton creates a SoftHeap holding e.
func NewSingleton[E constraints.Ordered](inverseEpsilon int, e E) (*SoftHeap[E], error) {
	h, err := New[E](inverseEpsilon)
	if err != nil {
		return nil, err
	}
	h.Insert(e)
	return h, nil
}

// FromSlice creates a SoftHeap holding every element of elems.
func FromSlice[E constraints.Ordered](inverseEpsilon int, elems []E) (*SoftHeap[E], error) {
	h, err := New[E](inverseEpsilon)
	if err != nil {
		return nil, err
	}
	for _, e := range elems {
		h.Insert(e)
	}
	return h, nil
}

// Insert adds e to the heap in amortized constant time.
func (h *SoftHeap[E]) Insert(e E) {
	h.size++
	leaf := newLeaf(e)
	if h.head != nil && h.head.rank() == 0 {
		h.head.root = h.combine(h.head.root, leaf)
		h.carry(h.head, 0)
		return
	}
	t := &tree[E]{root: leaf}
	h.insertBefore(t, h.head)
	h.updateSuffixMin(t)
}

// Meld moves every element of other into h, leaving other empty.
func (h *SoftHeap[E]) Meld(other *SoftHeap[E]) error {
	if other == h {
		return ErrSelfMeld
	}
	if other.inverseEpsilon != h.inverseEpsilon {
		return errors.Wrapf(ErrEpsilonMismatch, "inverse epsilon %d != %d", other.inverseEpsilon, h.inverseEpsilon)
	}
	if other.head == nil {
		return nil
	}
	if h.head != nil && other.Rank() > h.Rank() {
		h.head, other.head = other.head, h.head
		h.tail, other.tail = other.tail, h.tail
		h.numTrees, other.numTrees = other.numTrees, h.numTrees
	}
	limit := other.Rank()
	h.merge(other.head)
	h.size += other.size
	h.extracted += other.extracted

	other.head, other.tail = nil, nil
	other.numTrees, other.size, other.extracted = 0, 0, 0

	h.carry(h.head, limit)
	return nil
}

// ExtractMin removes and returns the element held by the root with the
// smallest ckey. The element is not larger than that ckey, but may be larger
// than the true minimum when keys were corrupted.
func (h *SoftHeap[E]) ExtractMin() (E, error) {
	return h.extract(nil)
}

// ExtractMinC behaves as ExtractMin and also returns the elements reported as
// corrupted by this extraction: the extracted element when it is the witness
// of its node's ckey, and every element whose ckey was superseded while
// refilling the node.
func (h *SoftHeap[E]) ExtractMinC() (E, []E, error) {
	var report []E
	e, err := h.extract(&report)
	return e, report, err
}

// Size returns the number of elements in the heap.
func (h *SoftHeap[E]) Size() int { return h.size }

// IsEmpty checks if the heap is empty.
func (h *SoftHeap[E]) IsEmpty() bool { return h.size == 0 }

// NumTrees returns the number of trees in the forest.
func (h *SoftHeap[E]) NumTrees() int { return h.numTrees }

// Rank returns the largest tree rank, or -1 if the heap is empty.
func (h *SoftHeap[E]) Rank() int {
	if h.tail == nil {
		return -1
	}
	return h.tail.rank()
}

// InverseEpsilon returns 1/epsilon.
func (h *SoftHeap[E]) InverseEpsilon() int { return h.inverseEpsilon }

// Epsilon returns the error rate of the heap.
func (h *SoftHeap[E]) Epsilon() float64 { return 1 / float64(h.inverseEpsilon) }

// NumCorruptedKeys returns the number of elements that have been corrupted
// over the lifetime of the heap, including those already extracted.
func (h *SoftHeap[E]) NumCorruptedKeys() int {
	return h.extracted + h.corruptedPresent()
}

func (h *SoftHeap[E]) corruptedPresent() int {
	num := 0
	for t := h.head; t != nil; t = t.next {
		num += t.corrupted()
	}
	return num
}

// Dump writes a diagnostic description of the forest to w.
func (h *SoftHeap[E]) Dump(w io.Writer) {
	fmt.Fprintf(w, "SoftHeap: %d(rank) %d(size) with trees:\n", h.Rank(), h.size)
	for t := h.head; t != nil; t = t.next {
		fmt.Fprintln(w, "-------------------")
		t.dump(w)
	}
}

func (h *SoftHeap[E]) String() string {
	var sb strings.Builder
	h.Dump(&sb)
	return sb.String()
}

func (h *SoftHeap[E]) extract(report *[]E) (E, error) {
	if h.size == 0 {
		var zero E
		return zero, ErrEmptyHeap
	}
	t := h.head.minCkey
	x := t.root
	e := x.pop()
	if e < x.ckey {
		h.extracted++
	}
	if report != nil && x.present && e == x.ckey {
		x.present = false
		*report = append(*report, e)
	}

	if 2*len(x.buffer) < x.target {
		if !x.isLeaf() {
			x.sift(report)
		}
		if len(x.buffer) == 0 {
			h.remove(t)
		} else {
			h.updateSuffixMin(t)
		}
	}
	h.size--
	return e, nil
}

// combine fuses two roots of equal rank under a new root and fills it.
func (h *SoftHeap[E]) combine(x, y *node[E]) *node[E] {
	rank := x.rank + 1
	n := &node[E]{
		rank:   rank,
		target: h.targetSize(rank),
		left:   x,
		right:  y,
	}
	n.sift(nil)
	return n
}

// carry combines adjacent trees of equal rank starting at t, the way a binary
// counter propagates a carry. It stops at the first tree whose rank exceeds
// limit and has no equal-ranked successor, then refreshes suffix minima.
func (h *SoftHeap[E]) carry(t *tree[E], limit int) {
	for t.next != nil {
		next := t.next
		if t.rank() == next.rank() {
			if next.next != nil && next.next.rank() == t.rank() {
				t = next
				continue
			}
			t.root = h.combine(t.root, next.root)
			h.unlink(next)
			continue
		}
		if t.rank() > limit {
			break
		}
		t = next
	}
	h.updateSuffixMin(t)
}

// merge splices the rank ordered list starting at other into the forest.
// On equal ranks the receiver's tree comes first.
func (h *SoftHeap[E]) merge(other *tree[E]) {
	t := h.head
	for other != nil {
		next := other.next
		for t != nil && t.rank() <= other.rank() {
			t = t.next
		}
		h.insertBefore(other, t)
		other = next
	}
}

// updateSuffixMin recomputes suffix minima from t back to the head.
func (h *SoftHeap[E]) updateSuffixMin(t *tree[E]) {
	for ; t != nil; t = t.prev {
		if t.next == nil || t.next.minCkey.root.ckey >= t.root.ckey {
			t.minCkey = t
		} else {
			t.minCkey = t.next.minCkey
		}
	}
}

// remove drops an emptied tree from the forest.
func (h *SoftHeap[E]) remove(t *tree[E]) {
	prev := t.prev
	h.unlink(t)
	h.updateSuffixMin(prev)
}

// insertBefore links t in front of at, or at the tail when at is nil.
func (h *SoftHeap[E]) insertBefore(t, at *tree[E]) {
	t.next = at
	if at == nil {
		t.prev = h.tail
		h.tail = t
	} else {
		t.prev = at.prev
		at.prev = t
	}
	if t.prev == nil {
		h.head = t
	} else {
		t.prev.next = t
	}
	h.numTrees++
}

func (h *SoftHeap[E]) unlink(t *tree[E]) {
	if t.prev == nil {
		h.head = t.next
	} else {
		t.prev.next = t.next
	}
	if t.next == nil {
		h.tail = t.prev
	} else {
		t.next.prev = t.prev
	}
	t.prev, t.next, t.minCkey = nil, nil, nil
	h.numTrees--
}

func (h *SoftHeap[E]) targetSize(rank int) int {
	for len(h.sizes) <= rank {
		h.sizes = append(h.sizes, TargetSize(len(h.sizes), h.inverseEpsilon))
	}
	return h.sizes[rank]
}

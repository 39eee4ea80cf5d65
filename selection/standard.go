package selection

import (
	"golang.org/x/exp/constraints"

	"github.com/Khighness/softkit/heap"
)

// @Author KHighness
// @Update 2026-10-18

// StandardHeapSelector selects exactly with a binary heap.
type StandardHeapSelector[E constraints.Ordered] struct{}

// NewStandardHeapSelector creates a StandardHeapSelector instance.
func NewStandardHeapSelector[E constraints.Ordered]() Selector[E] {
	return StandardHeapSelector[E]{}
}

func (StandardHeapSelector[E]) Select(input []E, k int) ([]E, error) {
	return StandardHeapSelectionVector(append([]E(nil), input...), k)
}

func (StandardHeapSelector[E]) Exact() bool { return true }

// StandardHeapSelection returns the k smallest elements of an array encoded
// min heap in ascending order. Only O(k) heap slots are visited: a frontier
// of candidate indexes grows by the two children of every popped slot.
func StandardHeapSelection[E constraints.Ordered](h []E, k int) ([]E, error) {
	if err := checkK(k, len(h)); err != nil {
		return nil, err
	}
	if !heap.IsHeap(h) {
		return nil, ErrNotHeap
	}

	selected := make([]E, 0, k)
	if k == 0 {
		return selected, nil
	}
	frontier := heap.NewMinHeap[E](k + 1)
	frontier.Add(h[0], 0)
	for len(selected) < k {
		entry := frontier.Pop()
		selected = append(selected, entry.Val)

		if left := 2*entry.Idx + 1; left < len(h) {
			frontier.Add(h[left], left)
		}
		if right := 2*entry.Idx + 2; right < len(h) {
			frontier.Add(h[right], right)
		}
	}
	return selected, nil
}

// StandardHeapSelectionVector heapifies input in place and selects its k
// smallest elements.
func StandardHeapSelectionVector[E constraints.Ordered](input []E, k int) ([]E, error) {
	if err := checkK(k, len(input)); err != nil {
		return nil, err
	}
	heap.Heapify(input)
	return StandardHeapSelection(input, k)
}

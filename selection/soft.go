package selection

import (
	"golang.org/x/exp/constraints"

	"github.com/Khighness/softkit/softheap"
)

// @Author KHighness
// @Update 2026-10-18

// SoftHeapSelector selects by draining a soft heap, so up to epsilon*n of the
// input may be held under corrupted keys while selecting.
type SoftHeapSelector[E constraints.Ordered] struct {
	inverseEpsilon int
}

// NewSoftHeapSelector creates a SoftHeapSelector instance with epsilon = 1/inverseEpsilon.
func NewSoftHeapSelector[E constraints.Ordered](inverseEpsilon int) (Selector[E], error) {
	if _, err := softheap.New[E](inverseEpsilon); err != nil {
		return nil, err
	}
	return &SoftHeapSelector[E]{inverseEpsilon: inverseEpsilon}, nil
}

func (s *SoftHeapSelector[E]) Select(input []E, k int) ([]E, error) {
	return SoftHeapSelection(input, k, s.inverseEpsilon)
}

func (s *SoftHeapSelector[E]) Exact() bool { return false }

// SoftHeapSelection builds a soft heap from input and extracts k elements,
// returned in extraction order.
func SoftHeapSelection[E constraints.Ordered](input []E, k, inverseEpsilon int) ([]E, error) {
	selected, _, err := selectSoft(input, k, inverseEpsilon, false)
	return selected, err
}

// SoftHeapSelectionC is SoftHeapSelection with ExtractMinC: it also returns
// every element reported as corrupted during the k extractions.
func SoftHeapSelectionC[E constraints.Ordered](input []E, k, inverseEpsilon int) ([]E, []E, error) {
	return selectSoft(input, k, inverseEpsilon, true)
}

func selectSoft[E constraints.Ordered](input []E, k, inverseEpsilon int, report bool) ([]E, []E, error) {
	if err := checkK(k, len(input)); err != nil {
		return nil, nil, err
	}
	h, err := softheap.FromSlice(inverseEpsilon, input)
	if err != nil {
		return nil, nil, err
	}

	selected := make([]E, 0, k)
	var corrupted []E
	for i := 0; i < k; i++ {
		var (
			e        E
			reported []E
		)
		if report {
			e, reported, err = h.ExtractMinC()
		} else {
			e, err = h.ExtractMin()
		}
		if err != nil {
			return nil, nil, err
		}
		selected = append(selected, e)
		corrupted = append(corrupted, reported...)
	}
	return selected, corrupted, nil
}

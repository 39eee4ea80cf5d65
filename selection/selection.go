package selection

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// @Author KHighness
// @Update 2026-10-18

var (
	// ErrInvalidK is returned when k is negative or exceeds the input length.
	ErrInvalidK = errors.New("selection: invalid k")

	// ErrNotHeap is returned when an input expected to be an array encoded min heap is not.
	ErrNotHeap = errors.New("selection: input is not a min heap")
)

// Selector algorithm interface.
type Selector[E constraints.Ordered] interface {

	// Select returns k elements of input in the order they were selected.
	// The input is left untouched.
	Select(input []E, k int) ([]E, error)

	// Exact reports whether the selected elements are always the k smallest.
	Exact() bool
}

func checkK(k, n int) error {
	if k < 0 || k > n {
		return errors.Wrapf(ErrInvalidK, "k=%d with %d elements", k, n)
	}
	return nil
}

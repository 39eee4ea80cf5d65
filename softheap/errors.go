package softheap

import "github.com/pkg/errors"

// @Author KHighness
// @Update 2026-10-18

var (
	// ErrEmptyHeap is returned by ExtractMin and ExtractMinC on a heap without elements.
	ErrEmptyHeap = errors.New("softheap: heap is empty")

	// ErrInvalidParameter is returned when a heap is constructed with an inverse epsilon below 1.
	ErrInvalidParameter = errors.New("softheap: invalid parameter")

	// ErrEpsilonMismatch is returned when melding heaps built with different epsilons.
	ErrEpsilonMismatch = errors.New("softheap: epsilon mismatch")

	// ErrSelfMeld is returned when a heap is melded into itself.
	ErrSelfMeld = errors.New("softheap: cannot meld a heap into itself")
)

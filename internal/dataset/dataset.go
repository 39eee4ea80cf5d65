// Package dataset generates reproducible input sequences and compares
// element multisets independently of their order.
package dataset

import (
	"fmt"

	"github.com/twmb/murmur3"
	"golang.org/x/exp/rand"
)

// @Author KHighness
// @Update 2026-10-18

// Ints returns n pseudo random ints in [0, bound) drawn from seed.
func Ints(seed uint64, n, bound int) []int {
	r := rand.New(rand.NewSource(seed))
	ints := make([]int, n)
	for i := range ints {
		ints[i] = r.Intn(bound)
	}
	return ints
}

// Permutation returns a shuffled sequence of 0..n-1 drawn from seed.
func Permutation(seed uint64, n int) []int {
	return rand.New(rand.NewSource(seed)).Perm(n)
}

// Digest returns an order independent murmur3 digest of elems.
// Equal multisets always share a digest.
func Digest[E any](elems []E) uint64 {
	var sum uint64
	for _, e := range elems {
		sum += murmur3.Sum64([]byte(fmt.Sprint(e)))
	}
	return sum
}

package softheap

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// @Author KHighness
// @Update 2026-10-18

// ReliableRank returns the rank up to which nodes hold a single element,
// ceil(log2(inverseEpsilon)) + 5.
func ReliableRank(inverseEpsilon int) int {
	return bits.Len(uint(inverseEpsilon-1)) + 5
}

// TargetSize returns the buffer capacity of a node of the given rank.
// Nodes at or below the reliable rank hold one element, beyond it the
// capacity grows by a factor of 3/2 per rank.
func TargetSize(rank, inverseEpsilon int) int {
	size := 1
	for r := ReliableRank(inverseEpsilon) + 1; r <= rank; r++ {
		size = (3*size + 1) / 2
	}
	return size
}

// node is a binary tree node holding a bag of elements and the corrupted key
// bounding them. A nil child is an exhausted slot.
type node[E constraints.Ordered] struct {
	rank   int
	target int
	buffer []E

	ckey    E
	present bool // the element equal to ckey has not been extracted yet

	left, right *node[E]
}

func newLeaf[E constraints.Ordered](e E) *node[E] {
	return &node[E]{
		rank:    0,
		target:  1,
		buffer:  []E{e},
		ckey:    e,
		present: true,
	}
}

func (n *node[E]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// pop removes the last element of the buffer.
func (n *node[E]) pop() E {
	last := len(n.buffer) - 1
	e := n.buffer[last]
	var zero E
	n.buffer[last] = zero
	n.buffer = n.buffer[:last]
	return e
}

// sift refills the buffer from the child with the smaller ckey until the
// buffer reaches its target size or the node runs out of children. When
// report is non-nil, elements whose bound is superseded are appended to it.
func (n *node[E]) sift(report *[]E) {
	for len(n.buffer) < n.target && !n.isLeaf() {
		if n.left == nil || (n.right != nil && n.right.ckey < n.left.ckey) {
			n.left, n.right = n.right, n.left
		}
		child := n.left

		if report != nil {
			n.supersede(child.ckey, report)
		}
		n.buffer = append(n.buffer, child.buffer...)
		n.ckey, n.present = child.ckey, child.present
		child.buffer = nil

		if !child.isLeaf() {
			child.sift(report)
		}
		if child.isLeaf() && len(child.buffer) == 0 {
			n.left = nil
		}
	}
}

// supersede reports the buffered elements that become corrupted once the
// ckey is raised to next.
func (n *node[E]) supersede(next E, report *[]E) {
	for _, e := range n.buffer {
		if !(e < n.ckey) && e < next {
			*report = append(*report, e)
		}
	}
}

// corrupted counts the buffered elements strictly below the ckey.
func (n *node[E]) corrupted() int {
	num := 0
	for _, e := range n.buffer {
		if e < n.ckey {
			num++
		}
	}
	return num
}

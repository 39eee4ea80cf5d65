package softheap

import (
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

// @Author KHighness
// @Update 2026-10-18

// tree is one member of the forest. minCkey points at the tree holding the
// smallest root ckey among this tree and every tree after it.
type tree[E constraints.Ordered] struct {
	root *node[E]

	prev, next *tree[E]
	minCkey    *tree[E]
}

func (t *tree[E]) rank() int { return t.root.rank }

// count returns the number of elements held by the tree.
func (t *tree[E]) count() int {
	num := 0
	walk(t.root, func(n *node[E]) { num += len(n.buffer) })
	return num
}

// corrupted returns the number of corrupted elements held by the tree.
func (t *tree[E]) corrupted() int {
	num := 0
	walk(t.root, func(n *node[E]) { num += n.corrupted() })
	return num
}

func (t *tree[E]) dump(w io.Writer) {
	fmt.Fprintf(w, "Tree: %d(rank) suffix min: %d(rank)\nwith Nodes:\n", t.rank(), t.minCkey.rank())
	walk(t.root, func(n *node[E]) {
		fmt.Fprintf(w, "  rank=%d size=%d ckey=%v present=%t elements=%v children=%s,%s\n",
			n.rank, n.target, n.ckey, n.present, n.buffer, childKey(n.left), childKey(n.right))
	})
}

func childKey[E constraints.Ordered](n *node[E]) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprint(n.ckey)
}

// walk visits the subtree rooted at n in preorder.
func walk[E constraints.Ordered](n *node[E], visit func(*node[E])) {
	if n == nil {
		return
	}
	visit(n)
	walk(n.left, visit)
	walk(n.right, visit)
}

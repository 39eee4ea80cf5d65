package softheap

import (
	"math/bits"
	"sort"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/Khighness/softkit/internal/dataset"
)

// @Author KHighness
// @Update 2026-10-18

func TestNew_InvalidParameter(t *testing.T) {
	for _, inv := range []int{0, -1, -8} {
		h, err := New[int](inv)
		assert.Nil(t, h)
		assert.True(t, errors.Is(err, ErrInvalidParameter))
		assert.Equal(t, ErrInvalidParameter, errors.Cause(err))
	}

	_, err := FromSlice(0, []int{1, 2})
	assert.True(t, errors.Is(err, ErrInvalidParameter))
	_, err = NewSingleton(-2, 1)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestSoftHeap_Singleton(t *testing.T) {
	h, err := NewSingleton(8, "k")
	require.NoError(t, err)
	assert.Equal(t, 1, h.Size())
	assert.Equal(t, 0, h.Rank())
	assert.Equal(t, 0.125, h.Epsilon())
	assert.Equal(t, 8, h.InverseEpsilon())

	e, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, "k", e)
	assert.True(t, h.IsEmpty())
	assert.Equal(t, -1, h.Rank())
	assert.Equal(t, 0, h.NumTrees())
}

func TestSoftHeap_ExtractEmpty(t *testing.T) {
	h, err := New[int](8)
	require.NoError(t, err)

	_, err = h.ExtractMin()
	assert.Equal(t, ErrEmptyHeap, err)
	_, report, err := h.ExtractMinC()
	assert.Equal(t, ErrEmptyHeap, err)
	assert.Empty(t, report)

	h.Insert(3)
	e, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 3, e)
	_, err = h.ExtractMin()
	assert.Equal(t, ErrEmptyHeap, err)
	assert.Equal(t, 0, h.Size())
}

func TestSoftHeap_Scenario(t *testing.T) {
	h, err := FromSlice(8, []int{5, 3, 8, 1, 9, 2})
	require.NoError(t, err)
	checkForest(t, h)

	first, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	extracted := []int{first}
	for !h.IsEmpty() {
		e, err := h.ExtractMin()
		require.NoError(t, err)
		extracted = append(extracted, e)
		checkForest(t, h)
	}
	assert.Equal(t, []int{1, 2, 3, 5, 8, 9}, extracted)
	assert.Equal(t, 0, h.NumCorruptedKeys())
}

func TestSoftHeap_InsertRankUniqueness(t *testing.T) {
	h, err := New[int](4)
	require.NoError(t, err)

	for i, v := range dataset.Ints(1, 600, 1000) {
		h.Insert(v)
		checkForest(t, h)
		// Inserts alone behave like a binary counter.
		assert.Equal(t, bits.OnesCount(uint(i+1)), h.NumTrees())
	}
	assert.Equal(t, 600, h.Size())
}

func TestSoftHeap_ExactBelowReliableRank(t *testing.T) {
	// 500 elements never build a tree above rank 8, so no key is corrupted.
	input := dataset.Ints(2, 500, 100)
	h, err := FromSlice(8, input)
	require.NoError(t, err)

	var extracted []int
	for !h.IsEmpty() {
		e, err := h.ExtractMin()
		require.NoError(t, err)
		extracted = append(extracted, e)
	}
	assert.True(t, sort.IntsAreSorted(extracted))
	assert.Equal(t, 0, h.NumCorruptedKeys())
}

func TestSoftHeap_Drain(t *testing.T) {
	for _, inv := range []int{1, 2, 8} {
		input := dataset.Ints(uint64(inv), 5000, 10000)
		h, err := FromSlice(inv, input)
		require.NoError(t, err)
		checkForest(t, h)

		extracted := make([]int, 0, len(input))
		for i := 0; !h.IsEmpty(); i++ {
			e, err := h.ExtractMin()
			require.NoError(t, err)
			extracted = append(extracted, e)
			if i%97 == 0 {
				checkForest(t, h)
			}
		}
		assert.Equal(t, 0, h.Size())
		assert.Equal(t, 0, h.NumTrees())
		assert.Equal(t, dataset.Digest(input), dataset.Digest(extracted))
		assert.ElementsMatch(t, input, extracted)
		t.Logf("[TestSoftHeap_Drain] inverse epsilon %d, corrupted keys %d", inv, h.NumCorruptedKeys())
	}
}

func TestSoftHeap_CorruptionBound(t *testing.T) {
	for _, inv := range []int{1, 2, 4} {
		for _, n := range []int{1000, 4000, 12000} {
			h, err := FromSlice(inv, dataset.Permutation(uint64(n+inv), n))
			require.NoError(t, err)
			bound := n / inv
			assert.LessOrEqual(t, h.corruptedPresent(), bound)

			reported, last := 0, h.NumCorruptedKeys()
			for i := 0; !h.IsEmpty(); i++ {
				_, report, err := h.ExtractMinC()
				require.NoError(t, err)
				reported += len(report)

				if i%61 == 0 {
					current := h.NumCorruptedKeys()
					assert.GreaterOrEqual(t, current, last)
					last = current
					assert.LessOrEqual(t, h.corruptedPresent(), bound)
				}
			}
			last = h.NumCorruptedKeys()
			t.Logf("[TestSoftHeap_CorruptionBound] n %d, inverse epsilon %d, corrupted %d, reported %d",
				n, inv, last, reported)
		}
	}
}

func TestSoftHeap_ExtractMinCReportsWitness(t *testing.T) {
	h, err := FromSlice(8, []int{4, 2, 2, 7})
	require.NoError(t, err)

	for _, expected := range []int{2, 2, 4, 7} {
		e, report, err := h.ExtractMinC()
		require.NoError(t, err)
		assert.Equal(t, expected, e)
		assert.Equal(t, []int{expected}, report)
	}
	assert.Equal(t, 0, h.Size())
}

func TestSoftHeap_ExtractMinCReportsSuperseded(t *testing.T) {
	h, err := FromSlice(1, dataset.Permutation(11, 64))
	require.NoError(t, err)
	require.Equal(t, 6, h.Rank())

	// The rank 6 root holds {0, 1} under ckey 1.
	e, report, err := h.ExtractMinC()
	require.NoError(t, err)
	assert.Equal(t, 1, e)
	assert.Equal(t, []int{1}, report)

	// Refilling the root pulls 2 and then 3, leaving 2 under ckey 3.
	e, report, err = h.ExtractMinC()
	require.NoError(t, err)
	assert.Equal(t, 0, e)
	assert.Equal(t, []int{2}, report)
	assert.Equal(t, 2, h.NumCorruptedKeys())
	checkForest(t, h)
}

func TestSoftHeap_MeldIdentity(t *testing.T) {
	a, err := FromSlice(4, dataset.Ints(5, 300, 50))
	require.NoError(t, err)
	empty, err := New[int](4)
	require.NoError(t, err)

	before := a.String()
	require.NoError(t, a.Meld(empty))
	assert.Equal(t, before, a.String())
	assert.Equal(t, 300, a.Size())
	assert.Equal(t, 0, empty.Size())
}

func TestSoftHeap_MeldIntoEmpty(t *testing.T) {
	a, err := New[int](4)
	require.NoError(t, err)
	b, err := FromSlice(4, []int{9, 4, 6})
	require.NoError(t, err)

	require.NoError(t, a.Meld(b))
	checkForest(t, a)
	assert.Equal(t, 3, a.Size())
	assert.True(t, b.IsEmpty())
	assert.Equal(t, 0, b.NumTrees())

	b.Insert(1)
	assert.Equal(t, 1, b.Size())
}

func TestSoftHeap_MeldErrors(t *testing.T) {
	a, err := FromSlice(4, []int{1, 2, 3})
	require.NoError(t, err)
	b, err := FromSlice(8, []int{4})
	require.NoError(t, err)

	before := a.String()
	assert.True(t, errors.Is(a.Meld(b), ErrEpsilonMismatch))
	assert.Equal(t, ErrSelfMeld, a.Meld(a))
	assert.Equal(t, before, a.String())
	assert.Equal(t, 1, b.Size())
}

func TestSoftHeap_Meld(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 40; round++ {
		var input []int
		h, err := New[int](2)
		require.NoError(t, err)

		for parts := 0; parts < 6; parts++ {
			part := dataset.Ints(uint64(round*10+parts), r.Intn(400), 1000)
			input = append(input, part...)
			other, err := FromSlice(2, part)
			require.NoError(t, err)
			require.NoError(t, h.Meld(other))
			checkForest(t, h)
			assert.Equal(t, len(input), h.Size())
			assert.True(t, other.IsEmpty())
		}

		extracted := make([]int, 0, len(input))
		for !h.IsEmpty() {
			e, err := h.ExtractMin()
			require.NoError(t, err)
			extracted = append(extracted, e)
		}
		assert.ElementsMatch(t, input, extracted)
	}
}

func TestSoftHeap_MixedOperations(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	h, err := New[int](2)
	require.NoError(t, err)

	inserted, extracted := 0, 0
	last := 0
	for i := 0; i < 3000; i++ {
		switch op := r.Intn(10); {
		case op < 5:
			h.Insert(r.Intn(5000))
			inserted++
		case op < 9:
			if _, err := h.ExtractMin(); err == nil {
				extracted++
			} else {
				assert.Equal(t, ErrEmptyHeap, err)
			}
		default:
			other, err := FromSlice(2, dataset.Ints(uint64(i), r.Intn(16), 5000))
			require.NoError(t, err)
			inserted += other.Size()
			require.NoError(t, h.Meld(other))
		}
		checkForest(t, h)
		assert.Equal(t, inserted-extracted, h.Size())
		assert.GreaterOrEqual(t, h.NumCorruptedKeys(), last)
		last = h.NumCorruptedKeys()
	}
}

func TestSoftHeap_Dump(t *testing.T) {
	h, err := FromSlice(8, []int{5, 3, 8})
	require.NoError(t, err)

	dump := h.String()
	t.Logf("[TestSoftHeap_Dump]\n%s", dump)
	assert.Contains(t, dump, "SoftHeap: 1(rank) 3(size)")
	assert.Contains(t, dump, "Tree: 0(rank)")
	assert.Contains(t, dump, "Tree: 1(rank)")
}

// checkForest verifies the structural invariants of h by brute force.
func checkForest[E interface{ ~int | ~string }](t *testing.T, h *SoftHeap[E]) {
	t.Helper()

	count, trees := 0, 0
	var prev *tree[E]
	for tr := h.head; tr != nil; tr = tr.next {
		trees++
		require.True(t, prev == tr.prev)
		if prev != nil {
			require.Less(t, prev.rank(), tr.rank(), "ranks must strictly increase")
		}
		require.NotEmpty(t, tr.root.buffer, "root buffers are never empty")

		best := tr
		for other := tr.next; other != nil; other = other.next {
			if other.root.ckey < best.root.ckey {
				best = other
			}
		}
		require.Same(t, best, tr.minCkey, "suffix min of rank %d", tr.rank())

		walk(tr.root, func(n *node[E]) {
			count += len(n.buffer)
			if n.target != h.targetSize(n.rank) {
				t.Fatalf("rank %d holds target %d", n.rank, n.target)
			}
			for _, e := range n.buffer {
				if e > n.ckey {
					t.Fatalf("element %v above ckey %v at rank %d", e, n.ckey, n.rank)
				}
			}
			for _, child := range []*node[E]{n.left, n.right} {
				if child == nil {
					continue
				}
				if child.rank != n.rank-1 || len(child.buffer) == 0 || child.ckey < n.ckey {
					t.Fatalf("child rank %d ckey %v under rank %d ckey %v", child.rank, child.ckey, n.rank, n.ckey)
				}
			}
		})
		prev = tr
	}
	require.True(t, prev == h.tail)
	require.Equal(t, trees, h.NumTrees())
	require.Equal(t, h.Size(), count)
}

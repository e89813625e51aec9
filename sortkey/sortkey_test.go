package sortkey

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func isPermutation(t *testing.T, idx []int, n int) {
	t.Helper()
	seen := make([]bool, n)
	for _, v := range idx {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, n)
		require.False(t, seen[v], "index %d appears twice", v)
		seen[v] = true
	}
}

func TestDenseSmallSeedScenario(t *testing.T) {
	h := []uint64{3, 1, 4, 1, 5, 9, 2, 6}
	idx := identity(len(h))

	err := SortHash(DefaultConfig(), h, idx)
	require.NoError(t, err)

	assert.Equal(t, []uint64{1, 1, 2, 3, 4, 5, 6, 9}, h)
	assert.Equal(t, []int{1, 3, 6, 0, 2, 4, 7, 5}, idx)
}

// TestRadixRangeSeedScenario uses keys near 2^40, but their range width is
// only 2, so SortHash takes the counting-sort path here; the radix sorts
// are exercised directly in TestDispatcherAgreement.
func TestRadixRangeSeedScenario(t *testing.T) {
	base := uint64(1) << 40
	h := []uint64{base, base + 1, base}
	idx := identity(len(h))

	err := SortHash(DefaultConfig(), h, idx)
	require.NoError(t, err)

	assert.Equal(t, []uint64{base, base, base + 1}, h)
	assert.Equal(t, []int{0, 2, 1}, idx)
}

func TestSingleton(t *testing.T) {
	h := []uint64{42}
	idx := identity(1)
	require.NoError(t, SortHash(DefaultConfig(), h, idx))
	assert.Equal(t, []uint64{42}, h)
	assert.Equal(t, []int{0}, idx)
}

func TestEmptyRangeGuard(t *testing.T) {
	var h []uint64
	var idx []int
	require.NoError(t, SortHash(DefaultConfig(), h, idx))
}

func sortersToCompare() map[string]func(h []uint64, idx []int) error {
	return map[string]func(h []uint64, idx []int) error{
		"counting": func(h []uint64, idx []int) error {
			min, max := h[0], h[0]
			for _, v := range h {
				if v < min {
					min = v
				}
				if v > max {
					max = v
				}
			}
			return CountingSort(h, idx, min, max)
		},
		"radix8":         RadixSort8,
		"radix16":        RadixSort16,
		"parallelRadix16": ParallelRadixSort16,
	}
}

// TestDispatcherAgreement checks property 4: counting/radix/parallel-radix
// all agree on the same input.
func TestDispatcherAgreement(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := 2000
	base := make([]uint64, n)
	for i := range base {
		base[i] = uint64(rng.Intn(500))
	}

	var want []uint64
	var wantIdx []int

	for name, sorter := range sortersToCompare() {
		h := append([]uint64(nil), base...)
		idx := identity(n)
		require.NoError(t, sorter(h, idx), name)
		isPermutation(t, idx, n)

		for k := 1; k < n; k++ {
			require.LessOrEqual(t, h[k-1], h[k], "%s: not monotone at %d", name, k)
		}
		for k, origIdx := range idx {
			require.Equal(t, base[origIdx], h[k], "%s: H_out[k] != H_in[I[k]] at %d", name, k)
		}

		if want == nil {
			want = h
			wantIdx = idx
		} else {
			assert.Equal(t, want, h, "sorter %s disagrees on keys", name)
			assert.Equal(t, wantIdx, idx, "sorter %s disagrees on permutation", name)
		}
	}
}

// TestStability checks property 3 directly: ties preserve input order.
func TestStability(t *testing.T) {
	h := []uint64{5, 5, 5, 1, 1, 2}
	idx := identity(len(h))
	require.NoError(t, SortHash(DefaultConfig(), h, idx))

	// Positions of the original indices 0,1,2 (all key 5) must stay in
	// ascending relative order in the output permutation.
	pos := make(map[int]int, len(idx))
	for k, v := range idx {
		pos[v] = k
	}
	assert.Less(t, pos[0], pos[1])
	assert.Less(t, pos[1], pos[2])
	assert.Less(t, pos[3], pos[4])
}

func TestLengthMismatch(t *testing.T) {
	h := []uint64{1, 2, 3}
	idx := []int{0, 1}
	assert.ErrorIs(t, SortHash(DefaultConfig(), h, idx), ErrLengthMismatch)
	assert.ErrorIs(t, CountingSort(h, idx, 1, 3), ErrLengthMismatch)
	assert.ErrorIs(t, RadixSort16(h, idx), ErrLengthMismatch)
}

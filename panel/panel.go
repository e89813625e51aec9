// Package panel builds group-boundary arrays ("panel info") from a sorted
// key stream: a 64-bit variant for the common case, and a 128-bit,
// collision-aware variant for when a single 64-bit hash cannot be trusted
// to identify a group uniquely.
package panel

// Build walks a sorted key array h and returns info[0..J], the ascending
// offsets delimiting maximal runs of equal keys: info[0] == 0,
// info[J] == len(h), info is strictly increasing, and h[info[g]:info[g+1]]
// is constant for every g.
//
// h must already be sorted ascending (as produced by sortkey.SortHash);
// Build does not sort it and does not check monotonicity in production
// builds (see AssertSorted).
func Build(h []uint64) []int {
	AssertSorted(h)
	n := len(h)
	if n == 0 {
		return []int{0}
	}

	// Two-step allocation: an upper-bound buffer sized n+1 first, then a
	// tight copy of size J+1 once J is known, so small-J inputs do not
	// carry an oversized info array.
	upper := make([]int, n+1)
	j := 0
	upper[j] = 0
	j++

	el := h[0]
	for i := 1; i < n; i++ {
		if h[i] != el {
			upper[j] = i
			j++
			el = h[i]
		}
	}
	upper[j] = n

	info := make([]int, j+1)
	copy(info, upper[:j+1])
	return info
}

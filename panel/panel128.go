package panel

import "panelsort/sortkey"

// Result128 is the output of Build128: the panel info array plus the
// number of 64-bit collisions that required a 128-bit repair.
type Result128 struct {
	Info       []int
	Collisions int
}

// Build128 is the 128-bit, collision-aware counterpart to Build. h1 must
// already be sorted ascending (the primary sort key); h2 carries the
// second 64-bit half of each row's 128-bit hash and idx is the index
// permutation produced by that sort.
//
// Each time a block boundary is declared on h1, Build128 checks whether
// h2 is constant across the block. If it is not, a 64-bit collision has
// occurred: the colliding sub-range of h2 is extracted, sorted with
// sortkey.RadixSort16, and the resulting local permutation is translated
// through idx and spliced back in place. The block itself is not split —
// only the ordering within it is refined — matching the reference
// implementation and spec.md's explicit choice not to impose a second-key
// split (see DESIGN.md, Open Question 2).
func Build128(h1, h2 []uint64, idx []int) (Result128, error) {
	n := len(h1)
	if n == 0 {
		return Result128{Info: []int{0}}, nil
	}
	if len(h2) != n || len(idx) != n {
		return Result128{}, sortkey.ErrLengthMismatch
	}

	collisions := 0
	upper := make([]int, n+1)
	j := 0
	upper[j] = 0
	j++

	repair := func(start, end int) error {
		if allEqual(h2, start, end) {
			return nil
		}
		collisions++

		width := end - start
		h2Local := make([]uint64, width)
		copy(h2Local, h2[start:end])
		localIdx := make([]int, width)
		for i := range localIdx {
			localIdx[i] = i
		}

		if err := sortkey.RadixSort16(h2Local, localIdx); err != nil {
			return err
		}

		refined := make([]int, width)
		for i, li := range localIdx {
			refined[i] = idx[start+li]
		}
		copy(idx[start:end], refined)
		return nil
	}

	el := h1[0]
	blockStart := 0
	for i := 1; i < n; i++ {
		if h1[i] != el {
			if err := repair(blockStart, i); err != nil {
				return Result128{}, err
			}
			upper[j] = i
			j++
			el = h1[i]
			blockStart = i
		}
	}
	if err := repair(blockStart, n); err != nil {
		return Result128{}, err
	}
	upper[j] = n

	info := make([]int, j+1)
	copy(info, upper[:j+1])

	return Result128{Info: info, Collisions: collisions}, nil
}

func allEqual(h []uint64, start, end int) bool {
	if end-start <= 1 {
		return true
	}
	first := h[start]
	for i := start + 1; i < end; i++ {
		if h[i] != first {
			return false
		}
	}
	return true
}

package sortkey

// CountingSort stably sorts h ascending over the dense range [min, max],
// permuting idx to match. Both slices are mutated in place. min and max
// must bound the values actually present in h (the caller is expected to
// have computed them with a single min/max pass, as the dispatcher does).
//
// Allocation happens before any mutation of the caller's slices, so on the
// one failure path this function can hit in Go — a length mismatch — h and
// idx are left untouched.
func CountingSort(h []uint64, idx []int, min, max uint64) error {
	n := len(h)
	if n == 0 {
		return nil
	}
	if len(idx) != n {
		return ErrLengthMismatch
	}

	rangeWidth := max - min + 1

	// count[v] will hold, after the prefix-sum pass, the first output
	// position for biased value v = h[i]-min. Counting each value into
	// count[v+1] (one extra slot) avoids the classic off-by-one in the
	// exclusive prefix sum: count[0]
	// starts at zero and count[v] accumulates the running total of
	// everything strictly less than v.
	count := make([]int, rangeWidth+1)
	biased := make([]uint64, n)
	hCopy := make([]uint64, n)
	idxCopy := make([]int, n)

	for i := 0; i < n; i++ {
		b := h[i] - min
		biased[i] = b
		count[b+1]++
		hCopy[i] = h[i]
		idxCopy[i] = idx[i]
	}

	for v := uint64(1); v <= rangeWidth; v++ {
		count[v] += count[v-1]
	}

	for i := 0; i < n; i++ {
		pos := count[biased[i]]
		count[biased[i]]++
		h[pos] = hCopy[i]
		idx[pos] = idxCopy[i]
	}

	return nil
}

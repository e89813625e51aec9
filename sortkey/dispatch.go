package sortkey

// SortHash stably sorts h ascending and permutes idx to match, dispatching
// between CountingSort (dense ranges) and a radix sort (sparse ranges)
// per cfg.DenseThreshold. idx must be initialized by the caller (normally
// to the identity permutation, idx[i] = i) before the call.
//
// When the range is sparse, cfg.DigitBits selects between RadixSort8 and
// RadixSort16; cfg.Workers > 1 additionally routes 16-bit sorts through
// ParallelRadixSort16.
func SortHash(cfg Config, h []uint64, idx []int) error {
	n := len(h)
	if n == 0 {
		return nil
	}
	if len(idx) != n {
		return ErrLengthMismatch
	}

	min, max := h[0], h[0]
	for _, v := range h[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	threshold := cfg.DenseThreshold
	if threshold == 0 {
		threshold = DefaultConfig().DenseThreshold
	}
	rangeWidth := max - min + 1

	if rangeWidth < threshold {
		return CountingSort(h, idx, min, max)
	}

	if cfg.DigitBits == 8 {
		return RadixSort8(h, idx)
	}
	if cfg.Workers > 1 {
		return ParallelRadixSort16(h, idx)
	}
	return RadixSort16(h, idx)
}

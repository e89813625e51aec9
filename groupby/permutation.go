package groupby

// gather returns a new slice with data reordered so that out[i] ==
// data[idx[i]] — the convention sortkey.SortHash and panel.Build128 both
// produce: idx[pos] names the original row now occupying pos.
//
// The teacher applies a sort permutation with an in-place cycle-chasing
// swap (inPlacePermuteInt64 et al.) to avoid a second full-size buffer.
// That algorithm assumes idx is a self-inverse-free permutation consumed
// with specific scatter semantics; tracing it by hand against the
// gather convention idx actually carries here produced a different
// (wrong) result, so this package uses a plain O(n) gather into a fresh
// slice instead — the same pattern the teacher already uses in
// SortByColumn's per-column goroutines and in aggregateStreaming's
// group-representative gathers, just applied uniformly.
func gather[T any](data []T, idx []int) []T {
	out := make([]T, len(idx))
	for i, k := range idx {
		out[i] = data[k]
	}
	return out
}

// gatherSeries returns a new Series with s's column reordered by idx.
func gatherSeries(s *Series, idx []int) *Series {
	switch data := s.Data.(type) {
	case []int64:
		return NewSeries(s.Name, gather(data, idx))
	case []float64:
		return NewSeries(s.Name, gather(data, idx))
	case []string:
		return NewSeries(s.Name, gather(data, idx))
	case []bool:
		return NewSeries(s.Name, gather(data, idx))
	default:
		return s
	}
}

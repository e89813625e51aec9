package reduce

import "math"

// Quantile returns the p-th percentile (p in (0, 100)) of v[start:end],
// partitioning v in place to find it. Callers who need v preserved must
// copy the range first — Quantile does not pay for that copy
// unconditionally.
//
// N == 1 returns the lone value. N == 2 returns max/min/average depending
// on whether p is above, below, or exactly 50. Otherwise qth = floor(p*N/100)
// selects an order statistic via quickselect; qth == 0 short-circuits to
// Min and qth == N-1 short-circuits to Max. When p*N/100 is an exact
// integer, the quantile falls exactly between two order statistics and
// Quantile additionally selects qth-1 and averages the two.
func Quantile(v []float64, start, end int, p float64) float64 {
	n := end - start
	if n == 1 {
		return v[start]
	}
	if n == 2 {
		switch {
		case p > 50:
			return math.Max(v[start], v[end-1])
		case p < 50:
			return math.Min(v[start], v[end-1])
		default:
			return (v[start] + v[end-1]) / 2
		}
	}

	exact := p * float64(n) / 100
	qth := int(math.Floor(exact))

	if qth == 0 {
		return minRange(v, start, end)
	}
	if qth == n-1 {
		return maxRange(v, start, end)
	}

	q := qselect(v, start, end, qth)
	if exact == math.Trunc(exact) && exact == float64(qth) {
		q2 := qselect(v, start, end, qth-1)
		q = (q + q2) / 2
	}
	return q
}

// Median returns Quantile(v, start, end, 50).
func Median(v []float64, start, end int) float64 {
	return Quantile(v, start, end, 50)
}

// IQR returns the interquartile range Quantile(75) - Quantile(25). Note
// that repeated calls on the same slice leave v partially ordered from the
// quantile path's in-place partitioning; IQR makes no promise about the
// post-call ordering of v, same as Quantile.
func IQR(v []float64, start, end int) float64 {
	return Quantile(v, start, end, 75) - Quantile(v, start, end, 25)
}

// qselect places the kth order statistic (0-indexed, relative to start)
// of v[start:end) at position start+k and returns its value, using
// Lomuto in-place partitioning (see partition). end is exclusive, matching the
// reference implementation's qselect contract.
func qselect(v []float64, start, end, k int) float64 {
	target := start + k
	lo, hi := start, end-1

	for lo < hi {
		pivotIdx := partition(v, lo, hi)
		switch {
		case pivotIdx == target:
			return v[target]
		case target < pivotIdx:
			hi = pivotIdx - 1
		default:
			lo = pivotIdx + 1
		}
	}
	return v[target]
}

// partition does a Lomuto partition of v[lo:hi] around v[hi] (the last
// element as pivot) and returns the pivot's final index.
func partition(v []float64, lo, hi int) int {
	pivot := v[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if v[j] < pivot {
			v[i], v[j] = v[j], v[i]
			i++
		}
	}
	v[i], v[hi] = v[hi], v[i]
	return i
}

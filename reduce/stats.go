// Package reduce implements the per-range numeric summarizer: given a
// value vector and a [start, end) range (as produced by panel.Build /
// panel.Build128), it computes sum, mean, standard deviation, extrema,
// quantiles, and a handful of trivial positional reductions.
package reduce

import "math"

// Sum returns the sum of v[start:end].
func Sum(v []float64, start, end int) float64 {
	return sumRange(v, start, end)
}

// Mean returns the arithmetic mean of v[start:end].
func Mean(v []float64, start, end int) float64 {
	n := float64(end - start)
	return sumRange(v, start, end) / n
}

// SD returns the sample standard deviation of v[start:end] (two-pass:
// mean, then the square-root of the mean-centered sum of squares divided
// by N-1). For N == 1 this divides by zero and returns NaN — callers are
// expected not to request SD on singleton groups, but the function does
// not panic.
func SD(v []float64, start, end int) float64 {
	n := end - start
	mean := Mean(v, start, end)
	var ss float64
	for i := start; i < end; i++ {
		d := v[i] - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}

// Min returns the minimum of v[start:end].
func Min(v []float64, start, end int) float64 {
	return minRange(v, start, end)
}

// Max returns the maximum of v[start:end].
func Max(v []float64, start, end int) float64 {
	return maxRange(v, start, end)
}

// Count returns the number of rows in [start, end).
func Count(v []float64, start, end int) float64 {
	return float64(end - start)
}

// Percent returns Count as a fraction of the full vector's length,
// expressed as a percentage.
func Percent(v []float64, start, end int) float64 {
	if len(v) == 0 {
		return 0
	}
	return 100 * float64(end-start) / float64(len(v))
}

// First returns v[start], the first row of the range.
func First(v []float64, start, end int) float64 {
	return v[start]
}

// Last returns v[end-1], the last row of the range.
func Last(v []float64, start, end int) float64 {
	return v[end-1]
}

// FirstNM returns the first non-missing (non-NaN) value in the range, or
// NaN if every value is missing.
func FirstNM(v []float64, start, end int) float64 {
	for i := start; i < end; i++ {
		if !math.IsNaN(v[i]) {
			return v[i]
		}
	}
	return math.NaN()
}

// LastNM returns the last non-missing (non-NaN) value in the range, or
// NaN if every value is missing.
func LastNM(v []float64, start, end int) float64 {
	for i := end - 1; i >= start; i-- {
		if !math.IsNaN(v[i]) {
			return v[i]
		}
	}
	return math.NaN()
}

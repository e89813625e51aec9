package groupby

import (
	"fmt"
	"math"
	"sort"

	"panelsort/compare"
	"panelsort/engine"
)

// Select returns a new DataFrame with only the named columns.
func (df *DataFrame) Select(columns []string) (*DataFrame, error) {
	selected := make(map[string]*Series, len(columns))
	for _, col := range columns {
		s, ok := df.Series[col]
		if !ok {
			return nil, fmt.Errorf("groupby: column %s not found", col)
		}
		selected[col] = s
	}
	return New(selected)
}

// Filter returns a new DataFrame containing only the rows for which
// predicate(column value) is true.
func (df *DataFrame) Filter(column string, predicate func(interface{}) bool) (*DataFrame, error) {
	s, ok := df.Series[column]
	if !ok {
		return nil, fmt.Errorf("groupby: column %s not found", column)
	}

	mask := make([]bool, df.Length)
	switch data := s.Data.(type) {
	case []int64:
		for i, v := range data {
			mask[i] = predicate(v)
		}
	case []float64:
		for i, v := range data {
			mask[i] = predicate(v)
		}
	case []string:
		for i, v := range data {
			mask[i] = predicate(v)
		}
	case []bool:
		for i, v := range data {
			mask[i] = predicate(v)
		}
	default:
		return nil, fmt.Errorf("groupby: unsupported data type for column %s", column)
	}

	filtered := make(map[string]*Series, len(df.Series))
	for name, col := range df.Series {
		switch data := col.Data.(type) {
		case []int64:
			out := make([]int64, 0, len(data))
			for i, keep := range mask {
				if keep {
					out = append(out, data[i])
				}
			}
			filtered[name] = NewSeries(name, out)
		case []float64:
			out := make([]float64, 0, len(data))
			for i, keep := range mask {
				if keep {
					out = append(out, data[i])
				}
			}
			filtered[name] = NewSeries(name, out)
		case []string:
			out := make([]string, 0, len(data))
			for i, keep := range mask {
				if keep {
					out = append(out, data[i])
				}
			}
			filtered[name] = NewSeries(name, out)
		case []bool:
			out := make([]bool, 0, len(data))
			for i, keep := range mask {
				if keep {
					out = append(out, data[i])
				}
			}
			filtered[name] = NewSeries(name, out)
		}
	}
	return New(filtered)
}

// float64ToSortKey and int64ToSortKey map signed/float domains onto the
// unsigned key space sortkey.SortHash expects, preserving order. Grounded
// on the teacher's inline bit-flip in SortByColumn (negative floats invert
// all bits, non-negative floats flip the sign bit; int64 flips the sign
// bit alone).
func int64ToSortKey(v int64) uint64 {
	return uint64(v) ^ 0x8000000000000000
}

func float64ToSortKey(v float64) uint64 {
	bits := math.Float64bits(v)
	if bits>>63 == 0 {
		return bits ^ 0x8000000000000000
	}
	return ^bits
}

// SortByColumn sorts the DataFrame by column. Numeric columns are sorted
// via engine.SortHash (counting sort or radix sort depending on range);
// string columns fall back to compare's byte-offset comparators over a
// packed RecordView; bool columns, having only two distinct values, sort
// directly with sort.SliceStable.
func (df *DataFrame) SortByColumn(column string, ascending bool) (*DataFrame, error) {
	s, ok := df.Series[column]
	if !ok {
		return nil, fmt.Errorf("groupby: column %s not found", column)
	}

	idx := make([]int, df.Length)
	for i := range idx {
		idx[i] = i
	}

	switch data := s.Data.(type) {
	case []int64:
		keys := make([]uint64, len(data))
		for i, v := range data {
			keys[i] = int64ToSortKey(v)
		}
		if err := engine.SortHash(engine.DefaultConfig(), keys, idx); err != nil {
			return nil, err
		}
		if !ascending {
			reverse(idx)
		}
	case []float64:
		keys := make([]uint64, len(data))
		for i, v := range data {
			keys[i] = float64ToSortKey(v)
		}
		if err := engine.SortHash(engine.DefaultConfig(), keys, idx); err != nil {
			return nil, err
		}
		if !ascending {
			reverse(idx)
		}
	case []string:
		width := 0
		for _, v := range data {
			if len(v) > width {
				width = len(v)
			}
		}
		width++ // room for a NUL pad byte; compare trims each field at its first NUL
		packed := make([]byte, width*len(data))
		for i, v := range data {
			copy(packed[i*width:(i+1)*width], v)
		}
		view := compare.RecordView{Data: packed, Stride: width}
		cmp := compare.CompareStringAsc(0, width)
		if !ascending {
			cmp = compare.CompareStringDesc(0, width)
		}
		less := compare.LessFromCompare(view, cmp)
		sort.SliceStable(idx, func(i, j int) bool { return less(idx[i], idx[j]) })
	case []bool:
		sort.SliceStable(idx, func(i, j int) bool {
			if ascending {
				return !data[idx[i]] && data[idx[j]]
			}
			return data[idx[i]] && !data[idx[j]]
		})
	default:
		return nil, fmt.Errorf("groupby: unsupported data type for column %s", column)
	}

	sorted := make(map[string]*Series, len(df.Series))
	for name, col := range df.Series {
		sorted[name] = gatherSeries(col, idx)
	}
	return New(sorted)
}

// SortByIndex sorts the DataFrame by row index (ascending or descending).
func (df *DataFrame) SortByIndex(ascending bool) (*DataFrame, error) {
	idx := make([]int, df.Length)
	for i := range idx {
		idx[i] = i
	}
	if !ascending {
		reverse(idx)
	}
	sorted := make(map[string]*Series, len(df.Series))
	for name, col := range df.Series {
		sorted[name] = gatherSeries(col, idx)
	}
	return New(sorted)
}

func reverse(idx []int) {
	for i, j := 0, len(idx)-1; i < j; i, j = i+1, j-1 {
		idx[i], idx[j] = idx[j], idx[i]
	}
}

package groupby

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"
	"sort"

	"panelsort/engine"

	xxhash "github.com/cespare/xxhash/v2"
)

// smallGroupThreshold is the row count below which Aggregate uses the
// hash-map grouping path instead of the sort/panel engine path, when there
// is exactly one grouping column (more columns always take the sort/panel
// path). The
// teacher gates its own streaming aggregator's internal goroutine fan-out
// on rows >= 50000; this mirrors that shape but gates the choice of
// grouping strategy itself, since for a handful of rows building and
// sorting a 128-bit key per row costs more than a map simply costs to
// populate.
const smallGroupThreshold = 10000

// GroupedDataFrame is the result of DataFrame.GroupBy: a DataFrame plus
// the columns that key it, not yet reduced to any particular value column.
type GroupedDataFrame struct {
	df      *DataFrame
	columns []string
}

// GroupBy validates columns and returns a handle that Aggregate reduces
// against. It does no row-grouping work itself — that happens lazily in
// Aggregate, once the reduction function is known, so the sort/panel path
// below only ever does one pass over the data.
func (df *DataFrame) GroupBy(columns []string) (*GroupedDataFrame, error) {
	if df == nil || df.Series == nil {
		return nil, fmt.Errorf("groupby: DataFrame is nil or empty")
	}
	for _, col := range columns {
		if _, ok := df.Series[col]; !ok {
			return nil, fmt.Errorf("groupby: column %s not found", col)
		}
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("groupby: at least one grouping column is required")
	}
	return &GroupedDataFrame{df: df, columns: columns}, nil
}

// buildKeys128 computes a 128-bit hash key per row over the grouping
// columns, split into two 64-bit halves (h1 the primary sort key, h2 the
// secondary key panel.Build128 uses to detect and repair collisions).
// Grounded on the teacher's buildKey128 (dataframe/groupby_sort.go),
// generalized from its fixed DataFrame-in-one-package shape to operate
// over an arbitrary column list and row count.
func buildKeys128(df *DataFrame, columns []string) (h1, h2 []uint64) {
	h1 = make([]uint64, df.Length)
	h2 = make([]uint64, df.Length)

	for row := 0; row < df.Length; row++ {
		var hi, lo uint64
		for colIdx, col := range columns {
			s := df.Series[col]
			var hv uint64
			switch data := s.Data.(type) {
			case []int64:
				var buf [8]byte
				binary.LittleEndian.PutUint64(buf[:], uint64(data[row]))
				hv = xxhash.Sum64(buf[:])
			case []float64:
				var buf [8]byte
				binary.LittleEndian.PutUint64(buf[:], math.Float64bits(data[row]))
				hv = xxhash.Sum64(buf[:])
			case []string:
				hv = xxhash.Sum64String(data[row])
			case []bool:
				var buf [8]byte
				if data[row] {
					buf[0] = 1
				}
				hv = xxhash.Sum64(buf[:])
			}
			// Every column feeds both halves, so h1 alone already tells
			// apart rows that differ in any grouping column.
			shift := uint(colIdx*11) & 63
			hi ^= bits.RotateLeft64(hv, int(shift))
			lo ^= bits.RotateLeft64(hv*0x9E3779B97F4A7C15, int(shift)+32)
		}
		h1[row], h2[row] = hi, lo
	}
	return h1, h2
}

// Aggregate reduces column by fn (any name engine.FunCode accepts) within
// each group, producing a new DataFrame with one row per group: the
// grouping columns plus the reduced value column.
func (g *GroupedDataFrame) Aggregate(column, fn string) (*DataFrame, error) {
	df := g.df
	valSeries, ok := df.Series[column]
	if !ok {
		return nil, fmt.Errorf("groupby: column %s not found", column)
	}
	code, err := engine.FunCode(fn)
	if err != nil {
		return nil, err
	}

	values, err := toFloat64(valSeries)
	if err != nil {
		return nil, err
	}

	if df.Length == 0 {
		return New(map[string]*Series{})
	}

	if len(g.columns) == 1 && df.Length < smallGroupThreshold {
		return g.aggregateHashMap(g.columns[0], column, code, values)
	}
	return g.aggregateSorted(column, code, values)
}

// aggregateSorted is the sort/panel engine path: build the 128-bit key,
// sort it, detect and repair 64-bit collisions with the panel builder,
// and reduce each resulting contiguous group.
func (g *GroupedDataFrame) aggregateSorted(column string, code float64, values []float64) (*DataFrame, error) {
	df := g.df
	h1, h2 := buildKeys128(df, g.columns)

	idx := make([]int, df.Length)
	for i := range idx {
		idx[i] = i
	}

	sortedH1 := append([]uint64(nil), h1...)
	if err := engine.SortHash(engine.DefaultConfig(), sortedH1, idx); err != nil {
		return nil, err
	}
	sortedH2 := gather(h2, idx)

	result, err := engine.PanelSetup128(sortedH1, sortedH2, idx)
	if err != nil {
		return nil, err
	}

	sortedValues := gather(values, idx)

	numGroups := len(result.Info) - 1
	groupCols := make(map[string][]interface{}, len(g.columns))
	for _, col := range g.columns {
		groupCols[col] = representativeValues(df.Series[col], idx, result.Info)
	}

	resultVals := make([]float64, numGroups)
	for gIdx := 0; gIdx < numGroups; gIdx++ {
		start, end := result.Info[gIdx], result.Info[gIdx+1]
		resultVals[gIdx] = engine.FunApply(code, sortedValues, start, end)
	}

	return buildResult(df, g.columns, groupCols, column, resultVals)
}

// representativeValues picks, for each group [info[gIdx], info[gIdx+1]),
// the grouping column's value at its first (sorted) row.
func representativeValues(s *Series, idx []int, info []int) []interface{} {
	out := make([]interface{}, len(info)-1)
	for gIdx := 0; gIdx < len(info)-1; gIdx++ {
		row := idx[info[gIdx]]
		out[gIdx] = columnValueAt(s, row)
	}
	return out
}

func columnValueAt(s *Series, row int) interface{} {
	switch data := s.Data.(type) {
	case []int64:
		return data[row]
	case []float64:
		return data[row]
	case []string:
		return data[row]
	case []bool:
		return data[row]
	default:
		return nil
	}
}

// aggregateHashMap is the small-N fast path: group by a map keyed on the
// single grouping column's own comparable Go value, then reduce each
// group's rows with engine.FunApply. Grounded on the teacher's
// aggregateStreaming (dataframe.go), condensed since engine.FunApply
// already covers the per-function accumulation logic that function
// duplicated by hand per AggregationType case.
func (g *GroupedDataFrame) aggregateHashMap(keyCol, valCol string, code float64, values []float64) (*DataFrame, error) {
	df := g.df
	keySeries := df.Series[keyCol]

	groups := make(map[interface{}][]int)
	var order []interface{}
	for row := 0; row < df.Length; row++ {
		k := columnValueAt(keySeries, row)
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], row)
	}
	sort.Slice(order, func(i, j int) bool {
		return lessComparable(order[i], order[j])
	})

	resultVals := make([]float64, len(order))
	groupVals := make([]interface{}, len(order))
	for i, k := range order {
		rows := groups[k]
		gathered := make([]float64, len(rows))
		for j, r := range rows {
			gathered[j] = values[r]
		}
		resultVals[i] = engine.FunApply(code, gathered, 0, len(gathered))
		groupVals[i] = k
	}

	groupCols := map[string][]interface{}{keyCol: groupVals}
	return buildResult(df, []string{keyCol}, groupCols, valCol, resultVals)
}

func lessComparable(a, b interface{}) bool {
	switch av := a.(type) {
	case int64:
		return av < b.(int64)
	case float64:
		return av < b.(float64)
	case string:
		return av < b.(string)
	case bool:
		return !av && b.(bool)
	default:
		return false
	}
}

// toFloat64 returns the value column's data as a plain []float64, casting
// int64 columns (reduce operates only on float64, matching spec.md's
// treatment of V as a float64 vector throughout).
func toFloat64(s *Series) ([]float64, error) {
	switch data := s.Data.(type) {
	case []float64:
		return data, nil
	case []int64:
		out := make([]float64, len(data))
		for i, v := range data {
			out[i] = float64(v)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("groupby: column %s is not numeric", s.Name)
	}
}

// buildResult assembles the final grouped-and-reduced DataFrame from its
// per-column representative values and the reduced value column.
func buildResult(df *DataFrame, groupColumns []string, groupCols map[string][]interface{}, valColumn string, resultVals []float64) (*DataFrame, error) {
	result := make(map[string]*Series, len(groupColumns)+1)
	for _, col := range groupColumns {
		result[col] = seriesFromInterfaces(col, df.Series[col], groupCols[col])
	}
	result[valColumn] = NewSeries(valColumn, resultVals)
	return New(result)
}

func seriesFromInterfaces(name string, template *Series, vals []interface{}) *Series {
	switch template.Data.(type) {
	case []int64:
		out := make([]int64, len(vals))
		for i, v := range vals {
			out[i] = v.(int64)
		}
		return NewSeries(name, out)
	case []float64:
		out := make([]float64, len(vals))
		for i, v := range vals {
			out[i] = v.(float64)
		}
		return NewSeries(name, out)
	case []string:
		out := make([]string, len(vals))
		for i, v := range vals {
			out[i] = v.(string)
		}
		return NewSeries(name, out)
	case []bool:
		out := make([]bool, len(vals))
		for i, v := range vals {
			out[i] = v.(bool)
		}
		return NewSeries(name, out)
	default:
		return NewSeries(name, []string{})
	}
}

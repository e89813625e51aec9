package compare

import (
	"encoding/binary"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

// packFloat64Records builds a RecordView of 8-byte float64 records.
func packFloat64Records(vals []float64) RecordView {
	data := make([]byte, 8*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint64(data[i*8:], math.Float64bits(v))
	}
	return RecordView{Data: data, Stride: 8}
}

func TestCompareFloat64Asc(t *testing.T) {
	view := packFloat64Records([]float64{3, 1, 2})
	cmp := CompareFloat64Asc(0)
	assert.Equal(t, 1, cmp(view.Row(0), view.Row(1)))
	assert.Equal(t, -1, cmp(view.Row(1), view.Row(2)))
	assert.Equal(t, 0, cmp(view.Row(0), view.Row(0)))
}

func TestCompareFloat64Desc(t *testing.T) {
	view := packFloat64Records([]float64{3, 1, 2})
	cmp := CompareFloat64Desc(0)
	assert.Equal(t, -1, cmp(view.Row(0), view.Row(1)))
}

func TestLessFromCompareSortsAscending(t *testing.T) {
	view := packFloat64Records([]float64{5, 3, 4, 1, 2})
	idx := []int{0, 1, 2, 3, 4}
	less := func(i, j int) bool {
		return LessFromCompare(view, CompareFloat64Asc(0))(idx[i], idx[j])
	}
	sort.Slice(idx, less)
	got := make([]float64, len(idx))
	for k, i := range idx {
		got[k] = readFloat64(view.Row(i), 0)
	}
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, got)
}

func packStringRecords(vals []string, width int) RecordView {
	data := make([]byte, width*len(vals))
	for i, v := range vals {
		copy(data[i*width:(i+1)*width], v)
	}
	return RecordView{Data: data, Stride: width}
}

func TestCompareStringAsc(t *testing.T) {
	view := packStringRecords([]string{"banana", "apple", "cherry"}, 8)
	cmp := CompareStringAsc(0, 8)
	assert.True(t, cmp(view.Row(1), view.Row(0)) < 0)
	assert.True(t, cmp(view.Row(0), view.Row(2)) < 0)
}

func TestCompareStringDesc(t *testing.T) {
	view := packStringRecords([]string{"banana", "apple", "cherry"}, 8)
	cmp := CompareStringDesc(0, 8)
	assert.True(t, cmp(view.Row(0), view.Row(1)) < 0)
}

func TestCompareStringTrimsNUL(t *testing.T) {
	view := packStringRecords([]string{"ab", "ab\x00zz"}, 8)
	cmp := CompareStringAsc(0, 8)
	assert.Equal(t, 0, cmp(view.Row(0), view.Row(1)))
}

func packHashRecords(hashes []uint64) RecordView {
	data := make([]byte, 8*len(hashes))
	for i, h := range hashes {
		binary.LittleEndian.PutUint64(data[i*8:], h)
	}
	return RecordView{Data: data, Stride: 8}
}

func TestCompareHashOrdersByValue(t *testing.T) {
	view := packHashRecords([]uint64{10, 5, 20})
	cmp := CompareHash(0)
	assert.Equal(t, 1, cmp(0, view.Row(0), 1, view.Row(1)))
	assert.Equal(t, -1, cmp(1, view.Row(1), 2, view.Row(2)))
}

func TestCompareHashBreaksTiesByPosition(t *testing.T) {
	view := packHashRecords([]uint64{7, 7})
	cmp := CompareHash(0)
	assert.Equal(t, -1, cmp(0, view.Row(0), 1, view.Row(1)))
	assert.Equal(t, 1, cmp(1, view.Row(1), 0, view.Row(0)))
	assert.Equal(t, 0, cmp(0, view.Row(0), 0, view.Row(0)))
}

func TestLessHashStableForTies(t *testing.T) {
	view := packHashRecords([]uint64{3, 3, 1})
	idx := []int{0, 1, 2}
	less := LessHash(view, 0)
	sort.Slice(idx, func(i, j int) bool { return less(idx[i], idx[j]) })
	assert.Equal(t, []int{2, 0, 1}, idx)
}

func TestRecordViewLen(t *testing.T) {
	view := packFloat64Records([]float64{1, 2, 3})
	assert.Equal(t, 3, view.Len())
}

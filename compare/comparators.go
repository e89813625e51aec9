// Package compare provides byte-offset-keyed comparators over fixed-stride
// packed records, for the general-sort fallback path used when a sort key
// column isn't a plain numeric hash (e.g. a string column, or an explicit
// tie-break pass). Grounded on the reference implementation's thunk-based
// qsort_r comparators (quicksortComparators.c: AltCompareNum, AltCompareChar,
// CompareSpooky), reshaped around a small RecordView instead of raw pointer
// arithmetic plus a void* thunk carrying the offset.
package compare

import (
	"bytes"
	"encoding/binary"
	"math"
)

// RecordView is a read-only window over a slice of fixed-stride records
// packed into one contiguous []byte — the Go equivalent of the reference's
// `(char *)a + kstart` pointer arithmetic, minus the unsafety.
type RecordView struct {
	Data   []byte
	Stride int
}

// Row returns the i-th record as a Stride-length byte slice.
func (r RecordView) Row(i int) []byte {
	return r.Data[i*r.Stride : (i+1)*r.Stride]
}

// Len returns the number of records in the view.
func (r RecordView) Len() int {
	if r.Stride == 0 {
		return 0
	}
	return len(r.Data) / r.Stride
}

// baseCompareNum mirrors the reference's BaseCompareNum macro:
// (a>b)-(a<b), giving -1/0/1 without a subtraction that could overflow or
// lose precision for floats near the edges of range.
func baseCompareNum(a, b float64) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

func readFloat64(row []byte, offset int) float64 {
	bits := binary.LittleEndian.Uint64(row[offset : offset+8])
	return math.Float64frombits(bits)
}

func readUint64(row []byte, offset int) uint64 {
	return binary.LittleEndian.Uint64(row[offset : offset+8])
}

// CompareFloat64Asc returns a three-way comparator over the 8 bytes at
// offset, ascending. Grounded on AltCompareNum.
func CompareFloat64Asc(offset int) func(a, b []byte) int {
	return func(a, b []byte) int {
		return baseCompareNum(readFloat64(a, offset), readFloat64(b, offset))
	}
}

// CompareFloat64Desc is CompareFloat64Asc with operands swapped. Grounded on
// AltCompareNumInvert.
func CompareFloat64Desc(offset int) func(a, b []byte) int {
	return func(a, b []byte) int {
		return baseCompareNum(readFloat64(b, offset), readFloat64(a, offset))
	}
}

// CompareStringAsc returns a three-way comparator over the `length`-byte
// field at offset, ascending, trimmed at the first NUL byte (fixed-width
// C-string fields pad with NULs). Grounded on AltCompareChar.
func CompareStringAsc(offset, length int) func(a, b []byte) int {
	return func(a, b []byte) int {
		aa := trimNUL(a[offset : offset+length])
		bb := trimNUL(b[offset : offset+length])
		return bytes.Compare(aa, bb)
	}
}

// CompareStringDesc is CompareStringAsc with operands swapped. Grounded on
// AltCompareCharInvert.
func CompareStringDesc(offset, length int) func(a, b []byte) int {
	return func(a, b []byte) int {
		aa := trimNUL(a[offset : offset+length])
		bb := trimNUL(b[offset : offset+length])
		return bytes.Compare(bb, aa)
	}
}

func trimNUL(b []byte) []byte {
	for i, c := range b {
		if c == 0 {
			return b[:i]
		}
	}
	return b
}

// CompareHash returns a three-way comparator over the 64-bit hash at
// offset, with ties broken by row position so the comparator can drive a
// total order even when two rows hash equal (the reference leaves hash
// ties to whatever order qsort happens to produce; this variant makes that
// order explicit and stable instead of implementation-defined). Grounded on
// CompareSpooky.
func CompareHash(offset int) func(ai int, a []byte, bi int, b []byte) int {
	return func(ai int, a []byte, bi int, b []byte) int {
		ha, hb := readUint64(a, offset), readUint64(b, offset)
		switch {
		case ha < hb:
			return -1
		case ha > hb:
			return 1
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		default:
			return 0
		}
	}
}

// LessFromCompare adapts a three-way comparator (operating on RecordView
// rows) into the less-function shape sort.Slice expects.
func LessFromCompare(view RecordView, cmp func(a, b []byte) int) func(i, j int) bool {
	return func(i, j int) bool {
		return cmp(view.Row(i), view.Row(j)) < 0
	}
}

// LessHash adapts CompareHash's tie-aware comparator into a sort.Slice less
// function over the records in view.
func LessHash(view RecordView, offset int) func(i, j int) bool {
	cmp := CompareHash(offset)
	return func(i, j int) bool {
		return cmp(i, view.Row(i), j, view.Row(j)) < 0
	}
}

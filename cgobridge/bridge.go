// Package main is the CGo embedding surface: a small C ABI wrapping
// groupby.DataFrame for host languages, plus direct exports of the
// engine package's sort/panel/reduce primitives for hosts that want to
// drive their own row layout without going through DataFrame at all —
// the posture the reference implementation itself has, as a plugin
// loaded by a host that owns the actual data.
package main

/*
#include <stdlib.h>
#include <stdint.h>

int64_t NewDataFrame(void);
int AddSeries(int64_t handle, char* name, void* data, int length, int dtype);
int GetShape(int64_t handle, int* rows, int* cols);
void DeleteDataFrame(int64_t handle);
int SortByColumn(int64_t handle, char* column, int ascending);
int SortByIndex(int64_t handle, int ascending);
int64_t GroupBy(int64_t handle, char** columns, int num_columns);
int64_t Aggregate(int64_t handle, char* column, char* fn);

int SortHash(uint64_t* h, int64_t* idx, int n, uint64_t dense_threshold, int digit_bits, int workers);
int PanelSetup(const uint64_t* h, int n, int64_t* info_out, int info_cap);
int PanelSetup128(uint64_t* h1, uint64_t* h2, int64_t* idx, int n, int64_t* info_out, int info_cap, int* collisions_out);
double FunApply(double code, double* v, int start, int end);
double FunCode(char* name, int* ok);
*/
import "C"
import (
	"unsafe"

	"panelsort/engine"
	"panelsort/groupby"
)

// Handle wraps exactly one of a DataFrame (ungrouped or already
// aggregated) or a GroupedDataFrame (grouping columns chosen, value
// column and function still pending). GroupBy used to eagerly compute
// group membership (teacher's types.DataFrame.GroupBy); groupby.GroupBy
// defers that to Aggregate so the sort/panel path only makes one pass,
// so a grouped-but-not-yet-aggregated handle needs its own slot.
type Handle struct {
	df      *groupby.DataFrame
	grouped *groupby.GroupedDataFrame
}

var handles = make(map[C.int64_t]*Handle)
var nextHandle C.int64_t = 1

//export NewDataFrame
func NewDataFrame() C.int64_t {
	df, err := groupby.New(make(map[string]*groupby.Series))
	if err != nil {
		return -1
	}
	h := nextHandle
	nextHandle++
	handles[h] = &Handle{df: df}
	return h
}

//export AddSeries
func AddSeries(handle C.int64_t, name *C.char, data unsafe.Pointer, length C.int, dtype C.int) C.int {
	h, ok := handles[handle]
	if !ok || h.df == nil {
		return -1
	}

	goName := C.GoString(name)
	n := int(length)

	var series *groupby.Series
	switch dtype {
	case 0: // int64
		series = groupby.NewSeries(goName, unsafe.Slice((*int64)(data), n))
	case 1: // float64
		series = groupby.NewSeries(goName, unsafe.Slice((*float64)(data), n))
	case 2: // bool
		series = groupby.NewSeries(goName, unsafe.Slice((*bool)(data), n))
	default:
		return -1
	}

	next := make(map[string]*groupby.Series, len(h.df.Series)+1)
	for k, v := range h.df.Series {
		next[k] = v
	}
	next[goName] = series

	df, err := groupby.New(next)
	if err != nil {
		return -1
	}
	h.df = df
	return 0
}

//export GetShape
func GetShape(handle C.int64_t, rows *C.int, cols *C.int) C.int {
	h, ok := handles[handle]
	if !ok || h.df == nil {
		return -1
	}
	r, c := h.df.Shape()
	*rows = C.int(r)
	*cols = C.int(c)
	return 0
}

//export DeleteDataFrame
func DeleteDataFrame(handle C.int64_t) {
	delete(handles, handle)
}

//export SortByColumn
func SortByColumn(handle C.int64_t, column *C.char, ascending C.int) C.int {
	h, ok := handles[handle]
	if !ok || h.df == nil {
		return -1
	}
	df, err := h.df.SortByColumn(C.GoString(column), ascending != 0)
	if err != nil {
		return -1
	}
	h.df = df
	return 0
}

//export SortByIndex
func SortByIndex(handle C.int64_t, ascending C.int) C.int {
	h, ok := handles[handle]
	if !ok || h.df == nil {
		return -1
	}
	df, err := h.df.SortByIndex(ascending != 0)
	if err != nil {
		return -1
	}
	h.df = df
	return 0
}

//export GroupBy
func GroupBy(handle C.int64_t, columns **C.char, numColumns C.int) C.int64_t {
	h, ok := handles[handle]
	if !ok || h.df == nil {
		return -1
	}

	goColumns := make([]string, int(numColumns))
	cColumns := unsafe.Slice(columns, int(numColumns))
	for i, cStr := range cColumns {
		goColumns[i] = C.GoString(cStr)
	}

	grouped, err := h.df.GroupBy(goColumns)
	if err != nil {
		return -1
	}

	newHandle := nextHandle
	nextHandle++
	handles[newHandle] = &Handle{grouped: grouped}
	return newHandle
}

//export Aggregate
func Aggregate(handle C.int64_t, column *C.char, fn *C.char) C.int64_t {
	h, ok := handles[handle]
	if !ok || h.grouped == nil {
		return -1
	}

	df, err := h.grouped.Aggregate(C.GoString(column), C.GoString(fn))
	if err != nil {
		return -1
	}

	newHandle := nextHandle
	nextHandle++
	handles[newHandle] = &Handle{df: df}
	return newHandle
}

// --- direct engine exports --------------------------------------------------

//export SortHash
func SortHash(h *C.uint64_t, idx *C.int64_t, n C.int, denseThreshold C.uint64_t, digitBits C.int, workers C.int) C.int {
	goH := unsafe.Slice((*uint64)(h), int(n))
	goIdx := int64SliceToInt(unsafe.Slice((*int64)(idx), int(n)))

	cfg := engine.Config{
		DenseThreshold: uint64(denseThreshold),
		DigitBits:      int(digitBits),
		Workers:        int(workers),
	}
	if err := engine.SortHash(cfg, goH, goIdx); err != nil {
		return -1
	}
	writeIntSlice(unsafe.Slice((*int64)(idx), int(n)), goIdx)
	return 0
}

//export PanelSetup
func PanelSetup(h *C.uint64_t, n C.int, infoOut *C.int64_t, infoCap C.int) C.int {
	goH := unsafe.Slice((*uint64)(h), int(n))
	info := engine.PanelSetup(goH)
	if len(info) > int(infoCap) {
		return -1
	}
	out := unsafe.Slice((*int64)(infoOut), len(info))
	for i, v := range info {
		out[i] = int64(v)
	}
	return C.int(len(info))
}

//export PanelSetup128
func PanelSetup128(h1, h2 *C.uint64_t, idx *C.int64_t, n C.int, infoOut *C.int64_t, infoCap C.int, collisionsOut *C.int) C.int {
	goH1 := unsafe.Slice((*uint64)(h1), int(n))
	goH2 := unsafe.Slice((*uint64)(h2), int(n))
	goIdx := int64SliceToInt(unsafe.Slice((*int64)(idx), int(n)))

	result, err := engine.PanelSetup128(goH1, goH2, goIdx)
	if err != nil {
		return -1
	}
	if len(result.Info) > int(infoCap) {
		return -1
	}
	writeIntSlice(unsafe.Slice((*int64)(idx), int(n)), goIdx)
	out := unsafe.Slice((*int64)(infoOut), len(result.Info))
	for i, v := range result.Info {
		out[i] = int64(v)
	}
	*collisionsOut = C.int(result.Collisions)
	return C.int(len(result.Info))
}

//export FunApply
func FunApply(code C.double, v *C.double, start, end C.int) C.double {
	goV := unsafe.Slice((*float64)(v), int(end))
	return C.double(engine.FunApply(float64(code), goV, int(start), int(end)))
}

//export FunCode
func FunCode(name *C.char, ok *C.int) C.double {
	code, err := engine.FunCode(C.GoString(name))
	if err != nil {
		*ok = 0
		return 0
	}
	*ok = 1
	return C.double(code)
}

func int64SliceToInt(s []int64) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[i] = int(v)
	}
	return out
}

func writeIntSlice(dst []int64, src []int) {
	for i, v := range src {
		dst[i] = int64(v)
	}
}

func main() {}

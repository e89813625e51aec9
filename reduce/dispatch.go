package reduce

import (
	"fmt"
	"strconv"
)

// Function codes, matching the reference implementation's mf_code_fun /
// mf_switch_fun_code numeric convention exactly (including the sign and the
// arbitrary-looking gap at -8). A positive code is a percentile: code 50
// means the median, any other positive code n means the nth percentile.
const (
	CodeSum     = -1
	CodeMean    = -2
	CodeSD      = -3
	CodeMax     = -4
	CodeMin     = -5
	CodeCount   = -6
	CodePercent = -7
	CodeMedian  = 50
	CodeIQR     = -9
	CodeFirst   = -10
	CodeFirstNM = -11
	CodeLast    = -12
	CodeLastNM  = -13
)

// Code maps a function name to its numeric code. A name that parses as a
// bare number (e.g. "10", "2.5") is treated as a percentile and its code is
// the parsed value itself; "median" is shorthand for the 50th percentile.
// Unrecognized names return an error.
func Code(name string) (float64, error) {
	switch name {
	case "sum":
		return CodeSum, nil
	case "mean":
		return CodeMean, nil
	case "sd":
		return CodeSD, nil
	case "max":
		return CodeMax, nil
	case "min":
		return CodeMin, nil
	case "count":
		return CodeCount, nil
	case "percent":
		return CodePercent, nil
	case "median":
		return CodeMedian, nil
	case "iqr":
		return CodeIQR, nil
	case "first":
		return CodeFirst, nil
	case "firstnm":
		return CodeFirstNM, nil
	case "last":
		return CodeLast, nil
	case "lastnm":
		return CodeLastNM, nil
	}
	if p, err := strconv.ParseFloat(name, 64); err == nil {
		return p, nil
	}
	return 0, fmt.Errorf("reduce: unrecognized function name %q", name)
}

// Apply runs the function identified by code over v[start:end]. Any
// positive code is treated as a percentile argument to Quantile (50 being
// the conventional alias for the median, handled identically since
// Quantile(v, start, end, 50) and Median(v, start, end) agree by
// construction).
func Apply(code float64, v []float64, start, end int) float64 {
	switch code {
	case CodeSum:
		return Sum(v, start, end)
	case CodeMean:
		return Mean(v, start, end)
	case CodeSD:
		return SD(v, start, end)
	case CodeMax:
		return Max(v, start, end)
	case CodeMin:
		return Min(v, start, end)
	case CodeCount:
		return Count(v, start, end)
	case CodePercent:
		return Percent(v, start, end)
	case CodeIQR:
		return IQR(v, start, end)
	case CodeFirst:
		return First(v, start, end)
	case CodeFirstNM:
		return FirstNM(v, start, end)
	case CodeLast:
		return Last(v, start, end)
	case CodeLastNM:
		return LastNM(v, start, end)
	}
	return Quantile(v, start, end, code)
}

// Package groupby is the host-facing demonstration layer: a small columnar
// DataFrame that drives sort/panel/reduce (package engine) for sorting,
// grouping and reduction. Small single-column group-bys group rows with a
// Go map instead of the sort/panel path, and still reduce via engine.
package groupby

import "fmt"

// DataType names the Go type backing a Series.
type DataType interface {
	String() string
}

type (
	Int64Type   struct{}
	Float64Type struct{}
	StringType  struct{}
	BooleanType struct{}
)

func (Int64Type) String() string   { return "Int64" }
func (Float64Type) String() string { return "Float64" }
func (StringType) String() string  { return "String" }
func (BooleanType) String() string { return "Boolean" }

// Series is a single named column. Data holds []int64, []float64, []string,
// or []bool.
type Series struct {
	Name     string
	DataType DataType
	Data     interface{}
	Length   int
}

// NewSeries builds a Series from a concrete column slice.
func NewSeries(name string, data interface{}) *Series {
	switch d := data.(type) {
	case []int64:
		return &Series{Name: name, DataType: Int64Type{}, Data: d, Length: len(d)}
	case []float64:
		return &Series{Name: name, DataType: Float64Type{}, Data: d, Length: len(d)}
	case []string:
		return &Series{Name: name, DataType: StringType{}, Data: d, Length: len(d)}
	case []bool:
		return &Series{Name: name, DataType: BooleanType{}, Data: d, Length: len(d)}
	default:
		panic("groupby: unsupported series data type")
	}
}

// DataFrame is a map of equal-length Series.
type DataFrame struct {
	Series map[string]*Series
	Length int
}

// New builds a DataFrame, checking that every Series has the same length.
func New(series map[string]*Series) (*DataFrame, error) {
	if len(series) == 0 {
		return &DataFrame{Series: make(map[string]*Series)}, nil
	}
	var length int
	for _, s := range series {
		length = s.Length
		break
	}
	for name, s := range series {
		if s.Length != length {
			return nil, fmt.Errorf("groupby: series %s has length %d, expected %d", name, s.Length, length)
		}
	}
	return &DataFrame{Series: series, Length: length}, nil
}

// Shape returns (rows, columns).
func (df *DataFrame) Shape() (int, int) {
	if df == nil || df.Series == nil {
		return 0, 0
	}
	return df.Length, len(df.Series)
}

// Columns returns the column names, in no particular order.
func (df *DataFrame) Columns() []string {
	if df == nil || df.Series == nil {
		return []string{}
	}
	cols := make([]string, 0, len(df.Series))
	for name := range df.Series {
		cols = append(cols, name)
	}
	return cols
}

// Head returns a new DataFrame truncated to the first n rows.
func (df *DataFrame) Head(n int) (*DataFrame, error) {
	if df == nil || df.Series == nil {
		return nil, fmt.Errorf("groupby: DataFrame is nil or empty")
	}
	if n > df.Length {
		n = df.Length
	}
	head := make(map[string]*Series, len(df.Series))
	for name, s := range df.Series {
		switch data := s.Data.(type) {
		case []int64:
			head[name] = NewSeries(name, data[:n])
		case []float64:
			head[name] = NewSeries(name, data[:n])
		case []string:
			head[name] = NewSeries(name, data[:n])
		case []bool:
			head[name] = NewSeries(name, data[:n])
		}
	}
	return New(head)
}

package reduce

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsBasic(t *testing.T) {
	v := []float64{1, 2, 3, 4, 5}
	assert.Equal(t, 15.0, Sum(v, 0, 5))
	assert.Equal(t, 3.0, Mean(v, 0, 5))
	assert.Equal(t, 1.0, Min(v, 0, 5))
	assert.Equal(t, 5.0, Max(v, 0, 5))
	assert.Equal(t, 5.0, Count(v, 0, 5))
	assert.InDelta(t, math.Sqrt(2.5), SD(v, 0, 5), 1e-9)
}

func TestStatsSubrange(t *testing.T) {
	v := []float64{10, 1, 2, 3, 20}
	assert.Equal(t, 6.0, Sum(v, 1, 4))
	assert.Equal(t, 2.0, Mean(v, 1, 4))
	assert.Equal(t, 1.0, Min(v, 1, 4))
	assert.Equal(t, 3.0, Max(v, 1, 4))
}

func TestSDSingletonIsNaN(t *testing.T) {
	v := []float64{42}
	assert.True(t, math.IsNaN(SD(v, 0, 1)))
}

func TestPercent(t *testing.T) {
	v := make([]float64, 10)
	assert.Equal(t, 30.0, Percent(v, 2, 5))
	assert.Equal(t, 100.0, Percent(v, 0, 10))
}

func TestFirstLast(t *testing.T) {
	v := []float64{7, 8, 9}
	assert.Equal(t, 7.0, First(v, 0, 3))
	assert.Equal(t, 9.0, Last(v, 0, 3))
}

func TestFirstNMLastNMSkipsNaN(t *testing.T) {
	v := []float64{math.NaN(), math.NaN(), 5, 6, math.NaN()}
	assert.Equal(t, 5.0, FirstNM(v, 0, 5))
	assert.Equal(t, 6.0, LastNM(v, 0, 5))
}

func TestFirstNMAllMissing(t *testing.T) {
	v := []float64{math.NaN(), math.NaN()}
	assert.True(t, math.IsNaN(FirstNM(v, 0, 2)))
	assert.True(t, math.IsNaN(LastNM(v, 0, 2)))
}

func TestCodeKnownNames(t *testing.T) {
	cases := map[string]float64{
		"sum": CodeSum, "mean": CodeMean, "sd": CodeSD, "max": CodeMax,
		"min": CodeMin, "count": CodeCount, "percent": CodePercent,
		"median": CodeMedian, "iqr": CodeIQR, "first": CodeFirst,
		"firstnm": CodeFirstNM, "last": CodeLast, "lastnm": CodeLastNM,
	}
	for name, want := range cases {
		got, err := Code(name)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestCodeBarePercentile(t *testing.T) {
	got, err := Code("37.5")
	assert.NoError(t, err)
	assert.Equal(t, 37.5, got)
}

func TestCodeUnknown(t *testing.T) {
	_, err := Code("bogus")
	assert.Error(t, err)
}

func TestApplyDispatchesToStats(t *testing.T) {
	v := []float64{1, 2, 3, 4, 5}
	assert.Equal(t, Sum(v, 0, 5), Apply(CodeSum, v, 0, 5))
	assert.Equal(t, Mean(v, 0, 5), Apply(CodeMean, v, 0, 5))
	assert.Equal(t, Max(v, 0, 5), Apply(CodeMax, v, 0, 5))
	assert.Equal(t, Min(v, 0, 5), Apply(CodeMin, v, 0, 5))
	assert.Equal(t, Count(v, 0, 5), Apply(CodeCount, v, 0, 5))
}

func TestApplyDispatchesToQuantile(t *testing.T) {
	v := []float64{10, 20}
	assert.Equal(t, Quantile(v, 0, 2, 30), Apply(30, v, 0, 2))
	assert.Equal(t, Median(v, 0, 2), Apply(CodeMedian, v, 0, 2))
}

// SPDX-License-Identifier: MIT

package array_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quickly/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeOf(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   []float64
		want array.Mode
	}{
		{"single winner", []float64{1, 2, 2, 3}, array.Mode{Value: 2, Count: 2}},
		{"tie picks smallest", []float64{3, 1, 3, 1, 2}, array.Mode{Value: 1, Count: 2}},
		{"all distinct", []float64{9, 8, 7}, array.Mode{Value: 7, Count: 1}},
		{"signed zeros merge", []float64{0, math.Copysign(0, -1), 5}, array.Mode{Value: 0, Count: 2}},
		{"NaN ranks last on ties", []float64{nan, nan, 5, 5}, array.Mode{Value: 5, Count: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := array.ModeOf(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want.Value, got.Value)
			assert.Equal(t, tc.want.Count, got.Count)
		})
	}

	got, err := array.ModeOf([]float64{nan, nan, 1})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got.Value))
	assert.Equal(t, 2, got.Count)

	_, err = array.ModeOf(nil)
	assert.ErrorIs(t, err, array.ErrEmptyInput)
}

func TestValueFrequency(t *testing.T) {
	t.Parallel()

	got, err := array.ValueFrequency([]float64{2, 1, 2, nan, 3, 2, 1})
	require.NoError(t, err)
	want := []array.FrequencyResult{
		{Value: 2, Count: 3, Frequency: 0.5, Percentage: 50},
		{Value: 1, Count: 2, Frequency: 2.0 / 6, Percentage: 200.0 / 6},
		{Value: 3, Count: 1, Frequency: 1.0 / 6, Percentage: 100.0 / 6},
	}
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Value, got[i].Value)
		assert.Equal(t, want[i].Count, got[i].Count)
		assert.InDelta(t, want[i].Frequency, got[i].Frequency, epsTight)
		assert.InDelta(t, want[i].Percentage, got[i].Percentage, epsLoose)
	}

	// Equal counts come out in ascending value order.
	got, err = array.ValueFrequency([]float64{5, 4, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4, 5}, []float64{got[0].Value, got[1].Value, got[2].Value})

	_, err = array.ValueFrequency([]float64{nan})
	assert.ErrorIs(t, err, array.ErrEmptyInput)
}

func TestHistogram(t *testing.T) {
	t.Parallel()

	x := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, nan, math.Inf(1)}
	bins, err := array.Histogram(x, 5)
	require.NoError(t, err)
	require.Len(t, bins, 5)

	wantCounts := []int{2, 2, 2, 2, 3} // 10 lands in the closed last bin
	total := 0
	for k, b := range bins {
		assert.Equal(t, wantCounts[k], b.Count, "bin %d", k)
		assert.InDelta(t, float64(2*k), b.Min, epsTight)
		assert.InDelta(t, float64(2*k+2), b.Max, epsTight)
		assert.InDelta(t, float64(2*k+1), b.Midpoint, epsTight)
		assert.InDelta(t, float64(b.Count)/11, b.Frequency, epsTight)
		total += b.Count
	}
	assert.Equal(t, 11, total, "non-finite values are ignored")

	bins, err = array.Histogram([]float64{4, 4, 4}, 3)
	require.NoError(t, err)
	require.Len(t, bins, 1, "constant data collapses to one bin")
	assert.Equal(t, 3, bins[0].Count)

	_, err = array.Histogram(x, 0)
	assert.ErrorIs(t, err, array.ErrInvalidParameter)
	_, err = array.Histogram([]float64{nan}, 3)
	assert.ErrorIs(t, err, array.ErrEmptyInput)
}

func TestHistogramByWidth(t *testing.T) {
	t.Parallel()

	bins, err := array.HistogramByWidth([]float64{0, 1, 5}, 2)
	require.NoError(t, err)
	require.Len(t, bins, 3)
	assert.Equal(t, []int{2, 0, 1}, []int{bins[0].Count, bins[1].Count, bins[2].Count})
	assert.Equal(t, 4.0, bins[2].Min)
	assert.Equal(t, 6.0, bins[2].Max)

	for _, w := range []float64{0, -1, nan, math.Inf(1)} {
		_, err = array.HistogramByWidth([]float64{1, 2}, w)
		assert.ErrorIs(t, err, array.ErrInvalidParameter, "width=%v", w)
	}
	_, err = array.HistogramByWidth([]float64{0, 1e12}, 1e-3)
	assert.ErrorIs(t, err, array.ErrInvalidParameter, "bin count is bounded")
}

func TestDetectOutliers_IQR(t *testing.T) {
	t.Parallel()

	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100}
	res, err := array.DetectOutliers(x, array.OutlierIQR)
	require.NoError(t, err)
	assert.Equal(t, array.OutlierIQR, res.Method)
	assert.InDelta(t, 3.25, res.Q1, epsTight)
	assert.InDelta(t, 7.75, res.Q3, epsTight)
	assert.InDelta(t, 4.5, res.IQR, epsTight)
	assert.InDelta(t, -3.5, res.LowerBound, epsTight)
	assert.InDelta(t, 14.5, res.UpperBound, epsTight)
	assert.Equal(t, []float64{100}, res.Outliers)
	assert.Equal(t, array.IndexSet{9}, res.Indices)

	// A wider fence keeps 100 inside.
	res, err = array.DetectOutliers(x, array.OutlierIQR, array.WithIQRMultiplier(30))
	require.NoError(t, err)
	assert.Empty(t, res.Outliers)
}

func TestDetectOutliers_ZScore(t *testing.T) {
	t.Parallel()

	x := make([]float64, 0, 21)
	for i := 0; i < 20; i++ {
		x = append(x, float64(i%2)) // 0,1,0,1,...
	}
	x = append(x, 50)

	res, err := array.DetectOutliers(x, array.OutlierZScore)
	require.NoError(t, err)
	assert.Equal(t, []float64{50}, res.Outliers)
	assert.Equal(t, array.IndexSet{20}, res.Indices)

	_, err = array.DetectOutliers([]float64{1}, array.OutlierZScore)
	assert.ErrorIs(t, err, array.ErrInsufficientData)
	_, err = array.DetectOutliers(x, array.OutlierMethod(42))
	assert.ErrorIs(t, err, array.ErrInvalidParameter)
	_, err = array.DetectOutliers([]float64{nan, nan}, array.OutlierIQR)
	assert.ErrorIs(t, err, array.ErrEmptyInput)

	assert.Panics(t, func() { array.WithZScoreThreshold(0) })
	assert.Panics(t, func() { array.WithIQRMultiplier(nan) })
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	d, err := array.Describe([]float64{5, 1, 4, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 5, d.Count)
	assert.Equal(t, 3.0, d.Mean)
	assert.Equal(t, 1.0, d.Min)
	assert.Equal(t, 2.0, d.Q25)
	assert.Equal(t, 3.0, d.Median)
	assert.Equal(t, 4.0, d.Q75)
	assert.Equal(t, 5.0, d.Max)
	assert.InDelta(t, 2.5, d.Variance, epsTight)
	assert.InDelta(t, math.Sqrt(2.5), d.Std, epsTight)
	assert.Nil(t, d.Skewness)
	assert.Nil(t, d.Kurtosis)

	d, err = array.Describe([]float64{5, 1, 4, 2, 3}, array.WithSkewKurtosis())
	require.NoError(t, err)
	require.NotNil(t, d.Skewness)
	require.NotNil(t, d.Kurtosis)
	assert.InDelta(t, 0, *d.Skewness, epsTight)
	assert.InDelta(t, -1.912, *d.Kurtosis, epsTight)

	d, err = array.Describe([]float64{7})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(d.Std), "sample std undefined for one value")
	assert.Equal(t, 7.0, d.Median)

	_, err = array.Describe(nil)
	assert.ErrorIs(t, err, array.ErrEmptyInput)
}

func TestDistributionSummary(t *testing.T) {
	t.Parallel()

	d, err := array.DistributionSummary([]float64{1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.InDelta(t, 0, d.Skewness, epsTight)
	assert.False(t, d.IsApproximatelyNormal, "flat data has kurtosis -1.912")

	d, err = array.DistributionSummary([]float64{-2, -1, -1, 0, 0, 0, 0, 1, 1, 2})
	require.NoError(t, err)
	assert.True(t, d.IsApproximatelyNormal, "kurtosis=%v", d.Kurtosis)

	_, err = array.DistributionSummary([]float64{1, 1})
	assert.ErrorIs(t, err, array.ErrDomain)
}

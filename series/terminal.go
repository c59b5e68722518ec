// SPDX-License-Identifier: MIT

package series

import (
	"github.com/katalvlaran/quickly/array"
	"github.com/katalvlaran/quickly/matrix"
)

// Sum returns the total; an empty series sums to 0.
func (s *Series) Sum() (float64, error) {
	return reduce(s, func(b []float64) (float64, error) { return array.Sum(b), nil })
}

// Mean returns the arithmetic mean.
func (s *Series) Mean() (float64, error) { return reduce(s, array.Mean) }

// Min returns the smallest value.
func (s *Series) Min() (float64, error) { return reduce(s, array.Min) }

// Max returns the largest value.
func (s *Series) Max() (float64, error) { return reduce(s, array.Max) }

// Std returns the sample standard deviation.
func (s *Series) Std() (float64, error) { return reduce(s, array.Std) }

// Variance returns the sample variance.
func (s *Series) Variance() (float64, error) { return reduce(s, array.Variance) }

// Median returns the 50th percentile.
func (s *Series) Median() (float64, error) { return reduce(s, array.Median) }

// Skewness returns the moment skewness.
func (s *Series) Skewness() (float64, error) { return reduce(s, array.Skewness) }

// Kurtosis returns the excess kurtosis.
func (s *Series) Kurtosis() (float64, error) { return reduce(s, array.Kurtosis) }

// Mode returns the most frequent value.
func (s *Series) Mode() (array.Mode, error) { return reduce(s, array.ModeOf) }

// Percentile returns the p-th percentile (p in [0, 100]).
func (s *Series) Percentile(p float64) (float64, error) {
	return reduce(s, func(b []float64) (float64, error) { return array.Percentile(b, p) })
}

// Describe summarizes the series; see array.Describe for options.
func (s *Series) Describe(opts ...array.Option) (array.DescriptiveStats, error) {
	return reduce(s, func(b []float64) (array.DescriptiveStats, error) { return array.Describe(b, opts...) })
}

// Histogram bins the finite values into bins equal-width bins.
func (s *Series) Histogram(bins int) ([]array.HistogramBin, error) {
	return reduce(s, func(b []float64) ([]array.HistogramBin, error) { return array.Histogram(b, bins) })
}

// Outliers flags values by method (IQR fences or z-score).
func (s *Series) Outliers(method array.OutlierMethod, opts ...array.Option) (array.OutlierResult, error) {
	return reduce(s, func(b []float64) (array.OutlierResult, error) { return array.DetectOutliers(b, method, opts...) })
}

// Argsort returns the positions that sort the series ascending.
func (s *Series) Argsort() (array.IndexSet, error) {
	return reduce(s, func(b []float64) (array.IndexSet, error) { return array.Argsort(b), nil })
}

// Where returns the positions for which keep reports true.
func (s *Series) Where(keep func(float64) bool) (array.IndexSet, error) {
	return reduce(s, func(b []float64) (array.IndexSet, error) { return array.WhereFunc(b, keep), nil })
}

// CountNaN returns the number of missing values.
func (s *Series) CountNaN() (int, error) {
	return reduce(s, func(b []float64) (int, error) { return array.CountNaN(b), nil })
}

// Correlation returns the Pearson correlation with other.
// Either side's sticky error wins, receiver first.
func (s *Series) Correlation(other *Series) (float64, error) {
	if other.err != nil && s.err == nil {
		return 0, other.err
	}
	return reduce(s, func(b []float64) (float64, error) { return array.Correlation(b, other.data) })
}

// Covariance returns the sample covariance with other.
func (s *Series) Covariance(other *Series) (float64, error) {
	if other.err != nil && s.err == nil {
		return 0, other.err
	}
	return reduce(s, func(b []float64) (float64, error) { return array.Covariance(b, other.data) })
}

// CorrelationMatrix correlates named series pairwise. The first sticky error
// among the inputs, in name order, is returned as is.
func CorrelationMatrix(names []string, cols []*Series) (matrix.CorrelationMatrix, error) {
	data := make([][]float64, len(cols))
	for i, c := range cols {
		if c.err != nil {
			return matrix.CorrelationMatrix{}, c.err
		}
		data[i] = c.data
	}

	return matrix.CorrelationMatrixOf(names, data)
}

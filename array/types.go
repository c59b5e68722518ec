// SPDX-License-Identifier: MIT

// Package array: domain-facing result records.
// This file contains ONLY value types returned by kernels. All records are
// immutable snapshots computed once from a buffer; they never alias it.
package array

// IndexSet is an ascending sequence of positions into a buffer, produced by
// predicate kernels (Where*) and Argsort. Indices are never negative.
type IndexSet []int

// Mode is the most frequent value of a buffer together with its count.
type Mode struct {
	Value float64 // most frequent value (smallest on ties)
	Count int     // number of occurrences
}

// DescriptiveStats is a one-shot summary of a buffer.
//
// Skewness and Kurtosis are optional: they are nil unless requested via
// WithSkewKurtosis and defined for the data (non-zero std).
type DescriptiveStats struct {
	Count    int
	Mean     float64
	Std      float64 // sample (n-1)
	Min      float64
	Q25      float64
	Median   float64
	Q75      float64
	Max      float64
	Variance float64 // sample (n-1)
	Skewness *float64
	Kurtosis *float64 // excess kurtosis
}

// FrequencyResult describes how often a distinct value occurs.
//   - Frequency is Count / total (in [0,1]).
//   - Percentage is Frequency * 100.
type FrequencyResult struct {
	Value      float64
	Count      int
	Frequency  float64
	Percentage float64
}

// HistogramBin is a half-open interval [Min, Max) except for the last bin,
// which also includes its upper edge.
type HistogramBin struct {
	Min       float64
	Max       float64
	Count     int
	Frequency float64 // Count / number of non-NaN values
	Midpoint  float64
}

// OutlierMethod selects the fence rule used by DetectOutliers.
type OutlierMethod int

const (
	// OutlierIQR flags x < Q1 - k*IQR or x > Q3 + k*IQR (Tukey fences).
	OutlierIQR OutlierMethod = iota

	// OutlierZScore flags |x - mean| > z*std.
	OutlierZScore
)

// String returns the lower-case method name.
func (m OutlierMethod) String() string {
	switch m {
	case OutlierIQR:
		return "iqr"
	case OutlierZScore:
		return "zscore"
	default:
		return "unknown"
	}
}

// OutlierResult lists the values outside the fences of the chosen method.
// Q1, Q3 and IQR are always reported, whatever the method.
type OutlierResult struct {
	Method     OutlierMethod
	Outliers   []float64 // in buffer order
	Indices    IndexSet  // positions of Outliers
	LowerBound float64
	UpperBound float64
	Q1         float64
	Q3         float64
	IQR        float64
}

// Distribution is a shape summary built on Skewness and Kurtosis.
type Distribution struct {
	Skewness              float64
	Kurtosis              float64 // excess
	IsApproximatelyNormal bool    // |Skewness| <= 0.5 && |Kurtosis| <= 1
}

// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Frequency-oriented reports: ModeOf, ValueFrequency, Histogram,
//     HistogramByWidth.
//   - Composite summaries built on the statistics kernels: Describe,
//     DetectOutliers, DistributionSummary.
//
// Missing values:
//   - ModeOf counts NaN as a value (larger than every number).
//   - ValueFrequency and DetectOutliers skip NaN.
//   - Histogram and HistogramByWidth skip every non-finite value, since an
//     infinite edge has no usable bin width.

package array

import (
	"math"
	"slices"
)

// Operation name constants for unified error wrapping.
const (
	opMode             = "ModeOf"
	opValueFrequency   = "ValueFrequency"
	opHistogram        = "Histogram"
	opHistogramByWidth = "HistogramByWidth"
	opDetectOutliers   = "DetectOutliers"
	opDescribe         = "Describe"
	opDistribution     = "DistributionSummary"
)

const (
	// DefaultHistogramBins is the bin count the series facade uses when the
	// caller does not choose one.
	DefaultHistogramBins = 10

	// maxHistogramBins bounds HistogramByWidth so a tiny width cannot
	// request an unbounded allocation.
	maxHistogramBins = 1 << 20
)

// ModeOf returns the most frequent value of buf and its count.
//
// Behavior highlights:
//   - Ties are broken by the smallest value; NaN ranks above every number.
//   - -0 and +0 are the same value.
//
// Errors: ErrEmptyInput for len(buf) == 0.
// Complexity: O(n log n) time, O(n) space.
func ModeOf(buf []float64) (Mode, error) {
	if err := ValidateNonEmpty(buf); err != nil {
		return Mode{}, arrayErrorf(opMode, err)
	}
	s := sortedCopy(buf)
	best := Mode{Value: s[0], Count: 0}
	for i := 0; i < len(s); {
		j := i + 1
		for j < len(s) && compareAsc(s[i], s[j]) == 0 {
			j++
		}
		// Strict > keeps the first (smallest) run on ties.
		if j-i > best.Count {
			best = Mode{Value: s[i], Count: j - i}
		}
		i = j
	}
	return best, nil
}

// ValueFrequency counts every distinct non-NaN value.
// Results are ordered by Count descending, then by Value ascending.
//
// Errors: ErrEmptyInput when buf holds no non-NaN value.
func ValueFrequency(buf []float64) ([]FrequencyResult, error) {
	valid := DropNA(buf)
	if err := ValidateNonEmpty(valid); err != nil {
		return nil, arrayErrorf(opValueFrequency, err)
	}
	slices.Sort(valid)
	total := float64(len(valid))
	out := make([]FrequencyResult, 0)
	for i := 0; i < len(valid); {
		j := i + 1
		for j < len(valid) && valid[j] == valid[i] {
			j++
		}
		f := float64(j-i) / total
		out = append(out, FrequencyResult{Value: valid[i], Count: j - i, Frequency: f, Percentage: f * 100})
		i = j
	}
	// Stable: equal counts stay in ascending value order.
	slices.SortStableFunc(out, func(a, b FrequencyResult) int { return b.Count - a.Count })
	return out, nil
}

// finiteExtent returns the finite values of buf and their min/max.
func finiteExtent(buf []float64) (vals []float64, lo, hi float64) {
	vals = make([]float64, 0, len(buf))
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range buf {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		vals = append(vals, v)
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return vals, lo, hi
}

// fillBins distributes vals into count equal-width bins starting at lo.
// The last bin is closed on its upper edge.
func fillBins(vals []float64, lo, width float64, count int) []HistogramBin {
	bins := make([]HistogramBin, count)
	for k := range bins {
		bins[k].Min = lo + float64(k)*width
		bins[k].Max = lo + float64(k+1)*width
		bins[k].Midpoint = (bins[k].Min + bins[k].Max) / 2
	}
	for _, v := range vals {
		k := int((v - lo) / width)
		if k >= count {
			k = count - 1
		}
		bins[k].Count++
	}
	total := float64(len(vals))
	for k := range bins {
		bins[k].Frequency = float64(bins[k].Count) / total
	}
	return bins
}

// singleBin is the histogram of data whose finite values are all equal.
func singleBin(vals []float64, v float64) []HistogramBin {
	return []HistogramBin{{Min: v, Max: v, Count: len(vals), Frequency: 1, Midpoint: v}}
}

// Histogram splits the finite range of buf into `bins` equal-width bins.
//
// Behavior highlights:
//   - Bins are [Min, Max) except the last one, which is [Min, Max].
//   - When every finite value is equal a single zero-width bin is returned.
//
// Errors:
//   - ErrInvalidParameter for bins < 1.
//   - ErrEmptyInput when buf holds no finite value.
//
// Complexity: O(n + bins) time, O(n + bins) space.
func Histogram(buf []float64, bins int) ([]HistogramBin, error) {
	if bins < 1 {
		return nil, paramErrorf(opHistogram, "bins", bins)
	}
	vals, lo, hi := finiteExtent(buf)
	if err := ValidateNonEmpty(vals); err != nil {
		return nil, arrayErrorf(opHistogram, err)
	}
	if lo == hi {
		return singleBin(vals, lo), nil
	}
	return fillBins(vals, lo, (hi-lo)/float64(bins), bins), nil
}

// HistogramByWidth builds bins of a fixed width starting at the smallest
// finite value, with as many bins as needed to reach the largest one.
//
// Errors:
//   - ErrInvalidParameter when width is not finite and > 0, or when it would
//     require more than 2^20 bins.
//   - ErrEmptyInput when buf holds no finite value.
func HistogramByWidth(buf []float64, width float64) ([]HistogramBin, error) {
	if math.IsNaN(width) || math.IsInf(width, 0) || width <= 0 {
		return nil, paramErrorf(opHistogramByWidth, "width", width)
	}
	vals, lo, hi := finiteExtent(buf)
	if err := ValidateNonEmpty(vals); err != nil {
		return nil, arrayErrorf(opHistogramByWidth, err)
	}
	if lo == hi {
		return singleBin(vals, lo), nil
	}
	span := math.Ceil((hi - lo) / width)
	if span > maxHistogramBins {
		return nil, paramErrorf(opHistogramByWidth, "width", width)
	}
	return fillBins(vals, lo, width, max(int(span), 1)), nil
}

// DetectOutliers reports the non-NaN values outside the fences of method.
//
// Methods:
//   - OutlierIQR:    [Q1 − k·IQR, Q3 + k·IQR], k = WithIQRMultiplier (1.5).
//   - OutlierZScore: [mean − z·std, mean + z·std], z = WithZScoreThreshold (3).
//
// Q1, Q3 and IQR are filled for both methods. Outliers and Indices follow
// buffer order.
//
// Errors:
//   - ErrEmptyInput when buf holds no non-NaN value.
//   - ErrInsufficientData for OutlierZScore with fewer than two values.
//   - ErrInvalidParameter for an unknown method.
func DetectOutliers(buf []float64, method OutlierMethod, opts ...Option) (OutlierResult, error) {
	o := gatherOptions(opts...)
	valid := DropNA(buf)
	if err := ValidateNonEmpty(valid); err != nil {
		return OutlierResult{}, arrayErrorf(opDetectOutliers, err)
	}
	q1, _, q3, _ := Quartiles(valid)
	res := OutlierResult{Method: method, Q1: q1, Q3: q3, IQR: q3 - q1}

	switch method {
	case OutlierIQR:
		res.LowerBound = q1 - o.iqrMultiplier*res.IQR
		res.UpperBound = q3 + o.iqrMultiplier*res.IQR
	case OutlierZScore:
		if err := ValidateSampleSize(len(valid)); err != nil {
			return OutlierResult{}, arrayErrorf(opDetectOutliers, err)
		}
		m, v := meanVariance(valid)
		s := math.Sqrt(v)
		res.LowerBound = m - o.zThreshold*s
		res.UpperBound = m + o.zThreshold*s
	default:
		return OutlierResult{}, paramErrorf(opDetectOutliers, "method", method)
	}

	res.Outliers = make([]float64, 0)
	res.Indices = make(IndexSet, 0)
	for i, x := range buf {
		if x < res.LowerBound || x > res.UpperBound {
			res.Outliers = append(res.Outliers, x)
			res.Indices = append(res.Indices, i)
		}
	}
	return res, nil
}

// Describe computes a DescriptiveStats snapshot in one sort.
//
// With a single element Std and Variance are NaN (the sample statistic is
// undefined). Skewness and Kurtosis are filled only under WithSkewKurtosis
// and only when the sample std is a non-zero number.
//
// Errors: ErrEmptyInput for len(buf) == 0.
// Complexity: O(n log n) time, O(n) space.
func Describe(buf []float64, opts ...Option) (DescriptiveStats, error) {
	o := gatherOptions(opts...)
	if err := ValidateNonEmpty(buf); err != nil {
		return DescriptiveStats{}, arrayErrorf(opDescribe, err)
	}
	s := sortedCopy(buf)
	d := DescriptiveStats{
		Count:    len(buf),
		Mean:     Sum(buf) / float64(len(buf)),
		Std:      math.NaN(),
		Variance: math.NaN(),
		Q25:      percentileSorted(s, 25),
		Median:   percentileSorted(s, 50),
		Q75:      percentileSorted(s, 75),
	}
	d.Min, _ = Min(buf)
	d.Max, _ = Max(buf)
	if len(buf) < 2 {
		return d, nil
	}
	_, d.Variance = meanVariance(buf)
	d.Std = math.Sqrt(d.Variance)

	if o.skewKurtosis {
		if sk, err := Skewness(buf); err == nil {
			d.Skewness = &sk
		}
		if ku, err := Kurtosis(buf); err == nil {
			d.Kurtosis = &ku
		}
	}
	return d, nil
}

// DistributionSummary reports skewness, excess kurtosis and whether both are
// small enough (|skew| <= 0.5, |kurt| <= 1) to call the data roughly normal.
//
// Errors: as Skewness.
func DistributionSummary(buf []float64) (Distribution, error) {
	sk, err := Skewness(buf)
	if err != nil {
		return Distribution{}, arrayErrorf(opDistribution, err)
	}
	ku, _ := Kurtosis(buf) // same preconditions as Skewness
	return Distribution{
		Skewness:              sk,
		Kurtosis:              ku,
		IsApproximatelyNormal: math.Abs(sk) <= 0.5 && math.Abs(ku) <= 1,
	}, nil
}

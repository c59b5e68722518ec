// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Scalar reductions and descriptive statistics over one or two buffers.
//   - Sample statistics use the Bessel-corrected (n-1) denominator throughout.
//
// Exposed API:
//   - Sum, Mean, Min, Max                        // O(n)
//   - Variance, Std, Skewness, Kurtosis          // two-pass, O(n)
//   - Median, Percentile, Percentiles, Quartiles // sort-based, O(n log n)
//   - IQR, Range, CoefficientOfVariation
//   - Covariance, Correlation                    // paired buffers, O(n)
//
// Numerical policy:
//   - Variance uses the corrected two-pass formula
//     (Σd² − (Σd)²/n) / (n−1), d = x − mean, which cancels the rounding error
//     of the first pass instead of the textbook E[x²] − E[x]² form.
//   - NaN/±Inf propagate per IEEE; they are never reported as errors.

package array

import "math"

// Operation name constants for unified error wrapping.
const (
	opMean        = "Mean"
	opMin         = "Min"
	opMax         = "Max"
	opVariance    = "Variance"
	opStd         = "Std"
	opMedian      = "Median"
	opPercentile  = "Percentile"
	opPercentiles = "Percentiles"
	opQuartiles   = "Quartiles"
	opSkewness    = "Skewness"
	opKurtosis    = "Kurtosis"
	opCovariance  = "Covariance"
	opCorrelation = "Correlation"
	opRange       = "Range"
	opCV          = "CoefficientOfVariation"
)

// Sum returns Σ buf[i]. The empty sum is 0.
// Complexity: O(n) time, O(1) space.
func Sum(buf []float64) float64 {
	var s float64
	for _, v := range buf {
		s += v
	}
	return s
}

// Mean returns the arithmetic mean of buf.
// Errors: ErrEmptyInput for len(buf) == 0.
func Mean(buf []float64) (float64, error) {
	if err := ValidateNonEmpty(buf); err != nil {
		return 0, arrayErrorf(opMean, err)
	}
	return Sum(buf) / float64(len(buf)), nil
}

// Min returns the smallest element of buf, or NaN if any element is NaN.
// Errors: ErrEmptyInput for len(buf) == 0.
func Min(buf []float64) (float64, error) {
	if err := ValidateNonEmpty(buf); err != nil {
		return 0, arrayErrorf(opMin, err)
	}
	m := buf[0]
	for _, v := range buf[1:] {
		m = math.Min(m, v) // math.Min propagates NaN
	}
	return m, nil
}

// Max returns the largest element of buf, or NaN if any element is NaN.
// Errors: ErrEmptyInput for len(buf) == 0.
func Max(buf []float64) (float64, error) {
	if err := ValidateNonEmpty(buf); err != nil {
		return 0, arrayErrorf(opMax, err)
	}
	m := buf[0]
	for _, v := range buf[1:] {
		m = math.Max(m, v)
	}
	return m, nil
}

// Range returns Max(buf) - Min(buf).
func Range(buf []float64) (float64, error) {
	lo, err := Min(buf)
	if err != nil {
		return 0, arrayErrorf(opRange, err)
	}
	hi, _ := Max(buf) // non-empty already validated
	return hi - lo, nil
}

// sumSquaredDev returns the corrected two-pass Σ(x−m)² for a known mean m.
func sumSquaredDev(buf []float64, m float64) float64 {
	var ss, comp, d float64
	for _, v := range buf {
		d = v - m
		ss += d * d
		comp += d
	}
	return ss - comp*comp/float64(len(buf))
}

// meanVariance computes mean and sample variance for len(buf) >= 2.
func meanVariance(buf []float64) (m, v float64) {
	m = Sum(buf) / float64(len(buf))
	v = sumSquaredDev(buf, m) / float64(len(buf)-1)
	return m, v
}

// Variance returns the sample variance Σ(x−mean)² / (n−1).
//
// Errors:
//   - ErrInsufficientData for n <= 1 (including the empty buffer).
//
// Complexity: O(n) time (two passes), O(1) space.
func Variance(buf []float64) (float64, error) {
	if err := ValidateSampleSize(len(buf)); err != nil {
		return 0, arrayErrorf(opVariance, err)
	}
	_, v := meanVariance(buf)
	return v, nil
}

// Std returns the sample standard deviation sqrt(Variance(buf)).
// Errors: ErrInsufficientData for n <= 1.
func Std(buf []float64) (float64, error) {
	if err := ValidateSampleSize(len(buf)); err != nil {
		return 0, arrayErrorf(opStd, err)
	}
	_, v := meanVariance(buf)
	return math.Sqrt(v), nil
}

// CoefficientOfVariation returns Std / |Mean|.
// Errors: ErrInsufficientData for n <= 1, ErrDomain when the mean is 0.
func CoefficientOfVariation(buf []float64) (float64, error) {
	if err := ValidateSampleSize(len(buf)); err != nil {
		return 0, arrayErrorf(opCV, err)
	}
	m, v := meanVariance(buf)
	if m == 0 {
		return 0, arrayErrorf(opCV, ErrDomain)
	}
	return math.Sqrt(v) / math.Abs(m), nil
}

// standardMoment returns (Σ(x−m)^k / n) / s^k with s the sample std.
// The caller must have validated n >= 2.
func standardMoment(buf []float64, k int, op string) (float64, error) {
	m, v := meanVariance(buf)
	s := math.Sqrt(v)
	if s == 0 {
		return 0, arrayErrorf(op, ErrDomain)
	}
	var acc, d float64
	for _, x := range buf {
		d = (x - m) / s
		if k == 3 {
			acc += d * d * d
		} else {
			d *= d
			acc += d * d
		}
	}
	return acc / float64(len(buf)), nil
}

// Skewness returns the third standardized central moment:
//
//	skew = (Σ(x−mean)³ / n) / s³,  s = sample std.
//
// Errors:
//   - ErrInsufficientData for n <= 1.
//   - ErrDomain when s == 0 (constant buffer).
func Skewness(buf []float64) (float64, error) {
	if err := ValidateSampleSize(len(buf)); err != nil {
		return 0, arrayErrorf(opSkewness, err)
	}
	return standardMoment(buf, 3, opSkewness)
}

// Kurtosis returns the EXCESS kurtosis (Σ(x−mean)⁴ / n) / s⁴ − 3, s = sample std.
// Errors are the same as Skewness.
func Kurtosis(buf []float64) (float64, error) {
	if err := ValidateSampleSize(len(buf)); err != nil {
		return 0, arrayErrorf(opKurtosis, err)
	}
	k, err := standardMoment(buf, 4, opKurtosis)
	if err != nil {
		return 0, err
	}
	return k - 3, nil
}

// percentileSorted interpolates linearly between the order statistics
// bracketing rank p/100·(n−1). sorted must be non-empty and ascending.
func percentileSorted(sorted []float64, p float64) float64 {
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	w := rank - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

// Median returns the middle order statistic (mean of the two middle values
// for even n). NaN values sort last and therefore take part in the ranking.
//
// Errors: ErrEmptyInput for len(buf) == 0.
// Complexity: O(n log n) time, O(n) space.
func Median(buf []float64) (float64, error) {
	if err := ValidateNonEmpty(buf); err != nil {
		return 0, arrayErrorf(opMedian, err)
	}
	s := sortedCopy(buf)
	n := len(s)
	mid := n / 2
	if n%2 == 0 {
		return (s[mid-1] + s[mid]) / 2, nil
	}
	return s[mid], nil
}

// Percentile returns the p-th percentile (p in [0,100]) using linear
// interpolation between the two bracketing order statistics.
//
// Errors:
//   - ErrEmptyInput for len(buf) == 0.
//   - ErrInvalidParameter for p outside [0,100] or NaN.
//
// Complexity: O(n log n) time, O(n) space.
func Percentile(buf []float64, p float64) (float64, error) {
	if err := ValidateNonEmpty(buf); err != nil {
		return 0, arrayErrorf(opPercentile, err)
	}
	if err := ValidatePercentile(p); err != nil {
		return 0, paramErrorf(opPercentile, "p", p)
	}
	return percentileSorted(sortedCopy(buf), p), nil
}

// Percentiles evaluates several percentiles with a single sort.
// out[k] corresponds to ps[k]. Errors as for Percentile.
func Percentiles(buf []float64, ps []float64) ([]float64, error) {
	if err := ValidateNonEmpty(buf); err != nil {
		return nil, arrayErrorf(opPercentiles, err)
	}
	for _, p := range ps {
		if err := ValidatePercentile(p); err != nil {
			return nil, paramErrorf(opPercentiles, "p", p)
		}
	}
	s := sortedCopy(buf)
	out := make([]float64, len(ps))
	for k, p := range ps {
		out[k] = percentileSorted(s, p)
	}
	return out, nil
}

// Quartiles returns (Q1, Q2, Q3) = percentiles 25, 50, 75 from one sort.
// Errors: ErrEmptyInput for len(buf) == 0.
func Quartiles(buf []float64) (q1, q2, q3 float64, err error) {
	if err = ValidateNonEmpty(buf); err != nil {
		return 0, 0, 0, arrayErrorf(opQuartiles, err)
	}
	s := sortedCopy(buf)
	return percentileSorted(s, 25), percentileSorted(s, 50), percentileSorted(s, 75), nil
}

// IQR returns Q3 − Q1.
func IQR(buf []float64) (float64, error) {
	q1, _, q3, err := Quartiles(buf)
	if err != nil {
		return 0, err
	}
	return q3 - q1, nil
}

// validatePair runs the shared checks of Covariance/Correlation:
// equal length → non-empty → at least two points.
func validatePair(a, b []float64) error {
	if err := ValidateSameLength(a, b); err != nil {
		return err
	}
	if err := ValidateNonEmpty(a); err != nil {
		return err
	}
	return ValidateSampleSize(len(a))
}

// coMoments returns Σda·db, Σda², Σdb² around the respective means.
func coMoments(a, b []float64) (sab, saa, sbb float64) {
	n := float64(len(a))
	ma, mb := Sum(a)/n, Sum(b)/n
	b = b[:len(a)]
	var da, db float64
	for i, x := range a {
		da, db = x-ma, b[i]-mb
		sab += da * db
		saa += da * da
		sbb += db * db
	}
	return sab, saa, sbb
}

// Covariance returns the sample covariance Σ(a−ā)(b−b̄) / (n−1).
//
// Errors:
//   - ErrDimensionMismatch when len(a) != len(b).
//   - ErrEmptyInput when both are empty.
//   - ErrInsufficientData when n == 1.
func Covariance(a, b []float64) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, arrayErrorf(opCovariance, err)
	}
	sab, _, _ := coMoments(a, b)
	return sab / float64(len(a)-1), nil
}

// Correlation returns the Pearson correlation cov(a,b) / (s_a·s_b).
// The (n−1) factors cancel, so the result is Σdadb / sqrt(Σda²·Σdb²),
// clamped into [−1, 1] to absorb rounding overshoot.
//
// Errors:
//   - Same as Covariance, plus ErrDomain when either input has zero variance.
//
// Complexity: O(n) time, O(1) space.
func Correlation(a, b []float64) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, arrayErrorf(opCorrelation, err)
	}
	sab, saa, sbb := coMoments(a, b)
	if saa == 0 || sbb == 0 {
		return 0, arrayErrorf(opCorrelation, ErrDomain)
	}
	r := sab / math.Sqrt(saa*sbb)
	switch {
	case r > 1:
		r = 1
	case r < -1:
		r = -1
	}
	return r, nil
}

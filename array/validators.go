// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Single source of truth for the boundary checks every kernel performs.
//   - Return plain sentinels so call sites wrap uniformly with arrayErrorf.
//
// Determinism & Performance:
//   - All checks are pure, O(1) and allocate nothing.

package array

import "math"

// ValidateNonEmpty returns ErrEmptyInput when buf has no elements.
func ValidateNonEmpty(buf []float64) error {
	if len(buf) == 0 {
		return ErrEmptyInput
	}
	return nil
}

// ValidateSampleSize returns ErrInsufficientData when fewer than two points
// are available for a Bessel-corrected statistic.
func ValidateSampleSize(n int) error {
	if n < 2 {
		return ErrInsufficientData
	}
	return nil
}

// ValidateSameLength returns ErrDimensionMismatch when a and b differ in length.
func ValidateSameLength(a, b []float64) error {
	if len(a) != len(b) {
		return ErrDimensionMismatch
	}
	return nil
}

// ValidateWindow checks 1 <= window <= n.
func ValidateWindow(n, window int) error {
	if window < 1 || window > n {
		return ErrInvalidParameter
	}
	return nil
}

// ValidatePercentile checks p is a number in [0, 100].
func ValidatePercentile(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 100 {
		return ErrInvalidParameter
	}
	return nil
}

// ValidateBounds checks 0 <= start <= end <= n (end exclusive).
func ValidateBounds(n, start, end int) error {
	if start < 0 || end < 0 || start > end || start > n || end > n {
		return ErrRange
	}
	return nil
}

// SPDX-License-Identifier: MIT
// Package array: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors shared by every kernel
// family (and re-exported by the matrix package). Kernels return these
// sentinels wrapped with an operation tag; tests match them via errors.Is.

package array

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "array: ..." so a wrapped error still reads
// as "<Op>: array: <condition>".

var (
	// ErrEmptyInput is returned when a zero-length buffer reaches a kernel
	// whose result is undefined for no data (Mean, Min, Max, Median, ...).
	ErrEmptyInput = errors.New("array: empty input")

	// ErrInsufficientData is returned when fewer than two data points are
	// available for a sample statistic (Variance, Std, Skewness, Correlation).
	ErrInsufficientData = errors.New("array: insufficient data points")

	// ErrDomain signals a mathematically undefined request that is a caller
	// bug rather than IEEE propagation: scalar division by zero, correlation
	// of a zero-variance input, coefficient of variation with zero mean.
	ErrDomain = errors.New("array: domain error")

	// ErrInvalidParameter signals an out-of-range scalar parameter: percentile
	// outside [0,100], window outside [1,len], sample size above population.
	ErrInvalidParameter = errors.New("array: invalid parameter")

	// ErrRange indicates slice bounds that are inverted or exceed the buffer.
	ErrRange = errors.New("array: index out of range")

	// ErrDimensionMismatch indicates shape parameters (or paired lengths) that
	// are inconsistent with the supplied buffers.
	ErrDimensionMismatch = errors.New("array: dimension mismatch")

	// ErrSingularMatrix is returned when inversion is attempted on a matrix
	// whose determinant is within epsilon of zero.
	ErrSingularMatrix = errors.New("array: singular matrix")
)

// arrayErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func arrayErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// paramErrorf wraps ErrInvalidParameter with the offending argument so the
// host can surface which parameter violated the contract.
func paramErrorf(op, param string, value any) error {
	return fmt.Errorf("%s: %s=%v: %w", op, param, value, ErrInvalidParameter)
}

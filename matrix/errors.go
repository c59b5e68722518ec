// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Shape, range and singularity failures are the SAME values as the array
// package sentinels, so a caller can match either name with errors.Is.
// Matrix-only conditions (nil operand, asymmetry, non-convergence) are
// declared here.

package matrix

import (
	"errors"

	"github.com/katalvlaran/quickly/array"
)

var (
	// ErrDimensionMismatch indicates shape parameters inconsistent with the
	// buffer length, or incompatible operand shapes (a.Cols != b.Rows in Mul).
	ErrDimensionMismatch = array.ErrDimensionMismatch

	// ErrSingular is returned by Inverse when |det| is within epsilon of zero
	// or elimination meets an exactly zero pivot.
	ErrSingular = array.ErrSingularMatrix

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = array.ErrRange

	// ErrInsufficientData is returned by column statistics with fewer than two rows.
	ErrInsufficientData = array.ErrInsufficientData

	// ErrDomain is returned by Correlation for a constant (zero-variance) column.
	ErrDomain = array.ErrDomain

	// ErrInvalidParameter flags bad scalar arguments (duplicate column names).
	ErrInvalidParameter = array.ErrInvalidParameter
)

var (
	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tolerance")

	// ErrEigenFailed indicates that the Jacobi sweep did not converge within
	// the configured iteration budget.
	ErrEigenFailed = errors.New("matrix: eigen decomposition did not converge")
)

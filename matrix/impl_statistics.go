// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column statistics over observation matrices (rows = observations,
//     columns = variables) as compositions over Mul/Transpose/Scale.
//   - Labelled correlation matrices across named columns.
//
// Exposed API:
//   - CenterColumns(X)              -> (Xc, means)  // subtract per-column mean
//   - Covariance(X)                 -> Cov          // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//   - Correlation(X)                -> Corr         // Pearson corr via z-scoring
//   - CorrelationMatrixOf(names, c) -> CorrelationMatrix
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - NaN in a column propagates into every entry that column touches.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quickly/array"
)

// CenterColumns subtracts the per-column mean from every element.
//
// Returns:
//   - *Dense: centered copy (r×c).
//   - []float64: column means (len=c).
//
// Errors:
//   - ErrNilMatrix; wrapped At errors for non-*Dense inputs.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func CenterColumns(X Matrix) (*Dense, []float64, error) {
	d, err := denseOf(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	r, c := d.r, d.c
	means := make([]float64, c)
	out := d.clone()
	if r == 0 {
		return out, means, nil
	}

	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			means[j] += d.data[base+j]
		}
	}
	for j = 0; j < c; j++ {
		means[j] /= float64(r)
	}
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			out.data[base+j] -= means[j]
		}
	}

	return out, means, nil
}

// Covariance returns the c×c sample covariance of the columns of X.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrInsufficientData when X has fewer than two rows.
func Covariance(X Matrix) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opCovariance, err)
	}
	if X.Rows() < 2 {
		return nil, matrixErrorf(opCovariance, ErrInsufficientData)
	}

	Xc, _, err := CenterColumns(X)
	if err != nil {
		return nil, matrixErrorf(opCovariance, err)
	}

	// Cov = (Xcᵀ Xc)/(r-1).
	G := mulDense(transposeDense(Xc), Xc)
	Cov, err := Scale(G, 1.0/float64(X.Rows()-1))
	if err != nil {
		return nil, matrixErrorf(opCovariance, err)
	}

	return Cov, nil
}

// Correlation returns the c×c Pearson correlation of the columns of X.
//
// Behavior highlights:
//   - Diagonal is exactly 1; off-diagonal entries are clamped to [-1, 1].
//   - A constant column has no defined correlation: ErrDomain.
//
// Errors:
//   - ErrNilMatrix, ErrInsufficientData (fewer than two rows), ErrDomain.
func Correlation(X Matrix) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opCorrelation, err)
	}
	r := X.Rows()
	if r < 2 {
		return nil, matrixErrorf(opCorrelation, ErrInsufficientData)
	}

	Xc, _, err := CenterColumns(X)
	if err != nil {
		return nil, matrixErrorf(opCorrelation, err)
	}
	c := Xc.c

	// std[j] = sqrt( Σ_i Xc[i,j]^2 / (r-1) ).
	stds := make([]float64, c)
	var i, j, base int
	var v float64
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			v = Xc.data[base+j]
			stds[j] += v * v
		}
	}
	for j = 0; j < c; j++ {
		stds[j] = math.Sqrt(stds[j] / float64(r-1))
		if stds[j] == 0 {
			return nil, matrixErrorf(opCorrelation, fmt.Errorf("column %d: %w", j, ErrDomain))
		}
	}

	// Z-score in place, then Corr = (Zᵀ Z)/(r-1).
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			Xc.data[base+j] /= stds[j]
		}
	}
	Corr, err := Scale(mulDense(transposeDense(Xc), Xc), 1.0/float64(r-1))
	if err != nil {
		return nil, matrixErrorf(opCorrelation, err)
	}
	for i = 0; i < c; i++ {
		for j = 0; j < c; j++ {
			if i == j {
				Corr.data[i*c+j] = 1
				continue
			}
			Corr.data[i*c+j] = clampUnit(Corr.data[i*c+j])
		}
	}

	return Corr, nil
}

// clampUnit limits v to [-1, 1]; NaN passes through.
func clampUnit(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	default:
		return v
	}
}

// CorrelationMatrixOf computes pairwise Pearson correlations across named,
// equal-length columns. Each off-diagonal pair is computed once with
// array.Correlation and mirrored; the diagonal is exactly 1.
//
// Errors:
//   - ErrDimensionMismatch: len(names) != len(columns), no columns, or unequal column lengths.
//   - ErrInvalidParameter: duplicate column names.
//   - Any array.Correlation error for a pair (ErrInsufficientData, ErrDomain).
func CorrelationMatrixOf(names []string, columns [][]float64) (CorrelationMatrix, error) {
	k := len(columns)
	if len(names) != k || k == 0 {
		return CorrelationMatrix{}, matrixErrorf(opCorrelationOf, ErrDimensionMismatch)
	}
	seen := make(map[string]struct{}, k)
	for _, name := range names {
		if _, dup := seen[name]; dup {
			return CorrelationMatrix{}, matrixErrorf(opCorrelationOf, fmt.Errorf("duplicate column %q: %w", name, ErrInvalidParameter))
		}
		seen[name] = struct{}{}
	}
	n := len(columns[0])
	for j, col := range columns {
		if len(col) != n {
			return CorrelationMatrix{}, matrixErrorf(opCorrelationOf, fmt.Errorf("column %q: %w", names[j], ErrDimensionMismatch))
		}
	}

	vals := newDenseZeroOK(k, k)
	var i, j int
	for i = 0; i < k; i++ {
		vals.data[i*k+i] = 1
		for j = i + 1; j < k; j++ {
			rho, err := array.Correlation(columns[i], columns[j])
			if err != nil {
				return CorrelationMatrix{}, matrixErrorf(opCorrelationOf, fmt.Errorf("%q×%q: %w", names[i], names[j], err))
			}
			vals.data[i*k+j] = rho
			vals.data[j*k+i] = rho
		}
	}

	cols := make([]string, k)
	copy(cols, names)

	return CorrelationMatrix{Columns: cols, Values: vals}, nil
}

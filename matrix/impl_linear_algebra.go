// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense kernels: Mul, Transpose, Scale.
//   - Every kernel accepts any Matrix; non-*Dense operands are materialized once
//     through At so the hot loops always run on flat row-major slices.
//
// Determinism & Performance:
//   - Fixed i→k→j loop order on the small path.
//   - Products above blasMinWork multiply-adds go through gonum blas64.Gemm.
//     Both paths skip zero entries of the left operand (the BLAS convention),
//     so a 0 in a never turns a NaN/Inf of b into NaN.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// Operation name constants for unified error wrapping.
const (
	opMul             = "Mul"
	opTranspose       = "Transpose"
	opScale           = "Scale"
	opLU              = "LU"
	opDeterminant     = "Determinant"
	opInverse         = "Inverse"
	opEigen           = "Eigen"
	opCenterColumns   = "CenterColumns"
	opCovariance      = "Covariance"
	opCorrelation     = "Correlation"
	opCorrelationOf   = "CorrelationMatrixOf"
	opCorrelationGet  = "CorrelationMatrix.Get"
	opMultiplyFlat    = "MultiplyFlat"
	opTransposeFlat   = "TransposeFlat"
	opDeterminantFlat = "DeterminantFlat"
	opInverseFlat     = "InverseFlat"
	opEigenFlat       = "EigenFlat"
)

// blasMinWork is the rows·inner·cols product from which Mul delegates to
// blas64.Gemm. Below it the packing overhead outweighs the gain.
const blasMinWork = 1 << 15

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the matrix product a·b (a: r×k, b: k×c → r×c).
//
// Zero entries of a are skipped, so 0·Inf and 0·NaN in b contribute nothing
// instead of NaN. Both the loop and the blas64.Gemm path behave this way.
//
// Errors:
//   - ErrNilMatrix for nil operands.
//   - ErrDimensionMismatch when a.Cols() != b.Rows().
//
// Complexity:
//   - Time O(r·k·c), Space O(r·c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := denseOf(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mulDense(da, db), nil
}

// mulDense multiplies two shape-compatible dense operands.
func mulDense(a, b *Dense) *Dense {
	rows, inner, cols := a.r, a.c, b.c
	res := newDenseZeroOK(rows, cols)
	if rows == 0 || inner == 0 || cols == 0 {
		return res
	}

	if rows*inner*cols >= blasMinWork {
		blas64.Gemm(blas.NoTrans, blas.NoTrans, 1,
			blas64.General{Rows: rows, Cols: inner, Stride: inner, Data: a.data},
			blas64.General{Rows: inner, Cols: cols, Stride: cols, Data: b.data},
			0,
			blas64.General{Rows: rows, Cols: cols, Stride: cols, Data: res.data},
		)

		return res
	}

	// row-major i-k-j: a[i,k] is loaded once per row of b
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < rows; i++ {
		rowOffsetA = i * inner
		rowOffsetR = i * cols
		for k = 0; k < inner; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue
			}
			rowOffsetB = k * cols
			for j = 0; j < cols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res
}

// Transpose returns mᵀ (r×c → c×r).
// Complexity: O(r·c).
func Transpose(m Matrix) (*Dense, error) {
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return transposeDense(d), nil
}

func transposeDense(d *Dense) *Dense {
	res := newDenseZeroOK(d.c, d.r)
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			res.data[j*d.r+i] = d.data[base+j]
		}
	}

	return res
}

// Scale returns alpha·m as a new matrix.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := newDenseZeroOK(d.r, d.c)
	for i, v := range d.data {
		res.data[i] = alpha * v
	}

	return res, nil
}

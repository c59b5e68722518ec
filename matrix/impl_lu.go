// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Gaussian elimination with partial pivoting (P·A = L·U) as the single
//     kernel behind LU, Determinant and Inverse.
//
// Determinism:
//   - Pivot choice is the first row holding the largest |a[i,k]| (ties keep
//     the upper row), so results are reproducible bit for bit.

package matrix

import "math"

// luDecompose factors a copy of the square matrix a in place.
//
// Returns:
//   - lu: packed factors; multipliers of L strictly below the diagonal,
//     U on and above it (row-major, n×n).
//   - piv: piv[i] is the original row now at position i.
//   - sign: parity of the row permutation (+1/-1).
//   - zeroPivot: true when some column had no nonzero candidate pivot.
//
// Complexity: Time O(n³), Space O(n²).
func luDecompose(a *Dense) (lu []float64, piv []int, sign float64, zeroPivot bool) {
	n := a.r
	lu = make([]float64, n*n)
	copy(lu, a.data)
	piv = make([]int, n)
	for i := range piv {
		piv[i] = i
	}
	sign = 1

	var (
		i, j, k, p int
		best, v    float64
		pivot, f   float64
		rowK, rowI int
	)
	for k = 0; k < n; k++ {
		// Stage 1: partial pivot search in column k.
		p, best = k, math.Abs(lu[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(lu[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if p != k {
			rowK, rowI = k*n, p*n
			for j = 0; j < n; j++ {
				lu[rowK+j], lu[rowI+j] = lu[rowI+j], lu[rowK+j]
			}
			piv[k], piv[p] = piv[p], piv[k]
			sign = -sign
		}

		// Stage 2: eliminate below the pivot. A zero pivot means the column is
		// already zero below the diagonal; U keeps the zero and A is singular.
		rowK = k * n
		pivot = lu[rowK+k]
		if pivot == 0 {
			zeroPivot = true
			continue
		}
		for i = k + 1; i < n; i++ {
			rowI = i * n
			f = lu[rowI+k] / pivot
			lu[rowI+k] = f
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				lu[rowI+j] -= f * lu[rowK+j]
			}
		}
	}

	return lu, piv, sign, zeroPivot
}

// squareDense validates m as a non-empty square matrix and returns its dense form.
func squareDense(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, err
	}

	return denseOf(m)
}

// LU returns the partially pivoted factorization P·A = L·U.
// A singular matrix is still factored; U then carries a zero on its diagonal.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (not square or empty).
func LU(m Matrix) (*LUFactors, error) {
	a, err := squareDense(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	n := a.r
	lu, piv, sign, _ := luDecompose(a)
	L, U := newDenseZeroOK(n, n), newDenseZeroOK(n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case j < i:
				L.data[i*n+j] = lu[i*n+j]
			case j == i:
				L.data[i*n+j] = 1
				U.data[i*n+j] = lu[i*n+j]
			default:
				U.data[i*n+j] = lu[i*n+j]
			}
		}
	}

	return &LUFactors{L: L, U: U, Pivot: piv, sign: sign}, nil
}

// Determinant returns det(m) via pivoted elimination. Singular input yields 0.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (not square or empty).
func Determinant(m Matrix) (float64, error) {
	a, err := squareDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	lu, _, sign, _ := luDecompose(a)

	return packedDeterminant(lu, a.r, sign), nil
}

func packedDeterminant(lu []float64, n int, sign float64) float64 {
	det := sign
	for i := 0; i < n; i++ {
		det *= lu[i*n+i]
	}

	return det
}

// Inverse returns m⁻¹ by solving L·U·x = P·e_j for every unit column.
//
// Behavior highlights:
//   - Fails with ErrSingular when |det| ≤ eps (WithEpsilon, default
//     DefaultEpsilon) or elimination met an exactly zero pivot.
//   - NaN entries propagate: a NaN determinant is not "near zero".
//
// Complexity: Time O(n³), Space O(n²).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	a, err := squareDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := a.r
	lu, piv, sign, zeroPivot := luDecompose(a)
	if zeroPivot || math.Abs(packedDeterminant(lu, n, sign)) <= o.eps {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	inv := newDenseZeroOK(n, n)
	x := make([]float64, n)
	var (
		i, j, k int
		s       float64
	)
	for j = 0; j < n; j++ {
		// Forward substitution on (P·e_j): L has a unit diagonal.
		for i = 0; i < n; i++ {
			s = 0
			if piv[i] == j {
				s = 1
			}
			for k = 0; k < i; k++ {
				s -= lu[i*n+k] * x[k]
			}
			x[i] = s
		}
		// Back substitution on U.
		for i = n - 1; i >= 0; i-- {
			s = x[i]
			for k = i + 1; k < n; k++ {
				s -= lu[i*n+k] * x[k]
			}
			x[i] = s / lu[i*n+i]
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+j] = x[i]
		}
	}

	return inv, nil
}

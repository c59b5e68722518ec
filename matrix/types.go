// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by dense operations.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Kernels accept any Matrix and unlock flat-slice fast paths for *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// LUFactors holds a partially pivoted factorization P·A = L·U.
//
//   - L is unit lower triangular (ones on the diagonal).
//   - U is upper triangular; a zero on its diagonal means A is singular.
//   - Pivot[i] is the row of A that became row i of P·A.
type LUFactors struct {
	L, U  *Dense
	Pivot []int

	sign float64 // permutation parity: +1 or -1
}

// Determinant returns det(A) = sign(P) · Π U[i,i].
func (f *LUFactors) Determinant() float64 {
	det := f.sign
	n := f.U.r
	for i := 0; i < n; i++ {
		det *= f.U.data[i*n+i]
	}

	return det
}

// EigenDecomposition holds the spectrum of a symmetric matrix.
// Values are ascending; column j of Vectors is the unit eigenvector of Values[j].
type EigenDecomposition struct {
	Values  []float64
	Vectors *Dense
}

// CorrelationMatrix is a labelled pairwise Pearson matrix.
// Values[i,j] is the correlation of Columns[i] and Columns[j]; the diagonal is exactly 1.
type CorrelationMatrix struct {
	Columns []string
	Values  *Dense
}

// Get returns the correlation between two named columns.
// Returns ErrInvalidParameter when either name is unknown.
func (cm CorrelationMatrix) Get(a, b string) (float64, error) {
	i, j := -1, -1
	for k, name := range cm.Columns {
		if name == a {
			i = k
		}
		if name == b {
			j = k
		}
	}
	if i < 0 || j < 0 {
		return 0, matrixErrorf(opCorrelationGet, ErrInvalidParameter)
	}

	return cm.Values.data[i*cm.Values.c+j], nil
}

// SPDX-License-Identifier: MIT
// Package matrix: flat-buffer entry points.
//
// Purpose:
//   - Serve callers that hold a plain row-major []float64 plus explicit shape
//     parameters; the buffer alone carries no shape.
//   - Avoid any logic duplication: each facade validates len == rows*cols and
//     delegates to the canonical Dense kernel.
//
// Ownership:
//   - Input buffers are borrowed for the duration of the call and never
//     written; every result is a freshly allocated slice.

package matrix

// flatView wraps a caller buffer as a read-only *Dense without copying.
// Only kernels that never write their operands may receive it.
func flatView(buf []float64, rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: buf}
}

// MultiplyFlat returns the rowsA×colsB product of a (rowsA×colsA) and b (colsA×colsB).
// As in Mul, zero entries of a skip their row of b: 0·Inf adds 0, not NaN.
// Errors: ErrDimensionMismatch when len(a) != rowsA*colsA or len(b) != colsA*colsB.
func MultiplyFlat(a, b []float64, rowsA, colsA, colsB int) ([]float64, error) {
	if err := ValidateFlat(a, rowsA, colsA); err != nil {
		return nil, matrixErrorf(opMultiplyFlat, err)
	}
	if err := ValidateFlat(b, colsA, colsB); err != nil {
		return nil, matrixErrorf(opMultiplyFlat, err)
	}

	return mulDense(flatView(a, rowsA, colsA), flatView(b, colsA, colsB)).data, nil
}

// TransposeFlat returns the cols×rows transpose of m.
func TransposeFlat(m []float64, rows, cols int) ([]float64, error) {
	if err := ValidateFlat(m, rows, cols); err != nil {
		return nil, matrixErrorf(opTransposeFlat, err)
	}

	return transposeDense(flatView(m, rows, cols)).data, nil
}

// DeterminantFlat returns det(m) for a size×size buffer (size ≥ 1).
func DeterminantFlat(m []float64, size int) (float64, error) {
	if err := validateSquareFlat(m, size); err != nil {
		return 0, matrixErrorf(opDeterminantFlat, err)
	}

	return Determinant(flatView(m, size, size))
}

// InverseFlat returns the inverse of a size×size buffer.
// Errors: ErrDimensionMismatch, ErrSingular (see Inverse for options).
func InverseFlat(m []float64, size int, opts ...Option) ([]float64, error) {
	if err := validateSquareFlat(m, size); err != nil {
		return nil, matrixErrorf(opInverseFlat, err)
	}
	inv, err := Inverse(flatView(m, size, size), opts...)
	if err != nil {
		return nil, err
	}

	return inv.data, nil
}

// EigenFlat decomposes a symmetric size×size buffer.
// vectors is row-major size×size; column j is the eigenvector of values[j].
func EigenFlat(m []float64, size int, opts ...Option) (values, vectors []float64, err error) {
	if err = validateSquareFlat(m, size); err != nil {
		return nil, nil, matrixErrorf(opEigenFlat, err)
	}
	ed, err := Eigen(flatView(m, size, size), opts...)
	if err != nil {
		return nil, nil, err
	}

	return ed.Values, ed.Vectors.data, nil
}

func validateSquareFlat(m []float64, size int) error {
	if size < 1 {
		return validatorErrorf("validateSquareFlat", ErrDimensionMismatch)
	}

	return ValidateFlat(m, size, size)
}

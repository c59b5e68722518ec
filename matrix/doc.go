// SPDX-License-Identifier: MIT

// Package matrix provides dense row-major linear algebra for quickly.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with error-returning accessors, and the
//     Matrix interface every kernel accepts.
//   - Mul (gonum BLAS above a size threshold), Transpose and Scale.
//   - LU with partial pivoting, Determinant and Inverse (ErrSingular when
//     |det| ≤ eps), and symmetric Eigen by Jacobi rotations.
//   - Column Covariance/Correlation and CorrelationMatrixOf across named
//     columns.
//   - Flat entry points (MultiplyFlat, TransposeFlat, DeterminantFlat,
//     InverseFlat, EigenFlat) taking a []float64 plus explicit shape.
//
// Shape, range and singularity errors are the array package sentinels, so
// errors.Is(err, array.ErrSingularMatrix) and errors.Is(err, matrix.ErrSingular)
// are equivalent.
//
// All kernels are pure: inputs are never mutated and results are freshly
// allocated, so concurrent calls need no locking.
package matrix

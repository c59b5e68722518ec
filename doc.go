// Package quickly is a numeric toolkit for one-dimensional float64 data and
// small dense matrices: statistics, windows, missing values and linear algebra
// as plain functions, plus a chainable facade for pipelines.
//
// 🚀 What is in the box?
//
//   - array/  - pure kernels over []float64: elementwise math, reductions,
//     sorting, frequency, windows, cumulative ops, NaN handling
//   - matrix/ - Dense row-major matrices: Mul, Transpose, LU, Determinant,
//     Inverse, Jacobi Eigen, Covariance and Correlation
//   - series/ - an immutable, chainable wrapper with sticky errors
//   - cmd/quicklybench - times the kernels on the current host
//
// ✨ Why choose quickly?
//
//   - Pure functions – inputs are never mutated, outputs are fresh slices
//   - Typed errors – every failure wraps a sentinel usable with errors.Is
//   - Deterministic – randomised ops take an explicit seed
//   - Small surface – gonum only where large products pay for BLAS
//
// Quick example:
//
//	avg, err := series.New(closes).
//		InterpolateLinear().
//		PctChange().
//		Rolling(5).Std().
//		DropNA().
//		Mean()
//
// Runnable demos live under examples/.
//
//	go get github.com/katalvlaran/quickly
package quickly

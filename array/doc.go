// SPDX-License-Identifier: MIT

// Package array provides pure numeric kernels over fixed-length float64 buffers.
//
// 🚀 What is array?
//
//	A flat function surface over []float64 that a host (CLI, service, FFI
//	wrapper) calls one operation at a time:
//	  • Elementwise arithmetic: Add/Subtract/Multiply/Divide (+ scalar forms)
//	  • Statistics: Sum, Mean, Variance, Std, Median, Percentile, Skewness, ...
//	  • Cumulative & windowed: CumSum, Diff, PctChange, Rolling*, Expanding*, EWM
//	  • Transform, filter & sort: Sqrt/Log/..., Filter*/Where*, Sort, Argsort, Unique
//	  • Missing values: CountNaN, FillNA, DropNA, Interpolate*, ForwardFill/BackwardFill
//	  • Factories: Zeros, Ones, Arange, Linspace, seeded Uniform/Normal/Exponential
//
// ✨ Contract:
//   - Inputs are borrowed: no kernel mutates or retains a caller buffer.
//   - Outputs are fresh: every buffer-returning kernel allocates its result.
//   - No package-level mutable state: kernels are safe to call concurrently.
//   - Failures are typed sentinels (ErrEmptyInput, ErrDomain, ...) matched via errors.Is.
//   - NaN/±Inf follow IEEE-754 and are never reported as errors.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/quickly/array"
//
//	x := []float64{1, 2, 3, 4, 5}
//	m, _ := array.Mean(x)                  // 3
//	v, _ := array.Variance(x)              // 2.5 (sample, n-1)
//	r, _ := array.RollingMean(x, 3)        // [NaN NaN 2 3 4]
//	_, err := array.DivideScalar(x, 0)     // errors.Is(err, array.ErrDomain)
//
// Policies worth knowing:
//   - Binary kernels truncate to the shorter operand (no padding, no error).
//   - Sorting places NaN last in BOTH directions (Sort, SortDesc, Argsort).
//   - Diff and PctChange keep the input length; position 0 is NaN.
//   - Interpolation never extrapolates: leading/trailing NaN runs stay NaN.
package array

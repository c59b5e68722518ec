// SPDX-License-Identifier: MIT

// Package series is a thin chainable facade over the array and matrix kernels.
//
// A *Series owns a private copy of its values and is never mutated: every
// step returns a new *Series. Errors are sticky: the first failing step is
// remembered, later steps are skipped, and terminal methods (Values, Sum,
// Mean, Describe, …) report it.
//
//	avg, err := series.New(prices).
//		InterpolateLinear().
//		Rolling(20).Mean().
//		DropNA().
//		Mean()
//
// The facade holds no state beyond the values and the error, so the kernels
// stay pure functions; a Series may be shared across goroutines.
package series

// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Elementwise arithmetic between two buffers and between a buffer and a scalar.
//   - Keep the hot loop in one place (binaryOp / scalarOp) so every operator shares
//     the truncate-to-shortest length policy and the single-allocation contract.
//
// Policy:
//   - Array ⊕ array: result length is min(len(a), len(b)); the tail of the longer
//     operand is ignored (no padding, no error).
//   - Array ÷ array follows IEEE-754 on zero elements (±Inf, NaN).
//   - Array ÷ scalar rejects s == 0 with ErrDomain: an explicit zero divisor is a
//     caller bug, not data.

package array

// Operation name constants for unified error wrapping.
const (
	opDivideScalar = "DivideScalar"
)

// binaryOp applies f pairwise over the common prefix of a and b.
// Time O(min(n,m)), Space O(min(n,m)).
func binaryOp(a, b []float64, f func(x, y float64) float64) []float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]float64, n)
	// Reslice once so the compiler can drop bounds checks in the loop.
	a, b = a[:n], b[:n]
	for i := range out {
		out[i] = f(a[i], b[i])
	}
	return out
}

// scalarOp applies f(x, s) to every element.
func scalarOp(a []float64, s float64, f func(x, y float64) float64) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = f(v, s)
	}
	return out
}

func add(x, y float64) float64 { return x + y }
func sub(x, y float64) float64 { return x - y }
func mul(x, y float64) float64 { return x * y }
func div(x, y float64) float64 { return x / y }

// Add returns a[i] + b[i] over the common prefix of a and b.
//
// Behavior highlights:
//   - len(result) == min(len(a), len(b)).
//   - NaN/±Inf propagate per IEEE-754.
//
// Complexity: O(min(n,m)) time and space.
func Add(a, b []float64) []float64 { return binaryOp(a, b, add) }

// Subtract returns a[i] - b[i] over the common prefix of a and b.
func Subtract(a, b []float64) []float64 { return binaryOp(a, b, sub) }

// Multiply returns a[i] * b[i] over the common prefix of a and b.
func Multiply(a, b []float64) []float64 { return binaryOp(a, b, mul) }

// Divide returns a[i] / b[i] over the common prefix of a and b.
// A zero divisor element yields ±Inf (or NaN for 0/0); it is not an error.
func Divide(a, b []float64) []float64 { return binaryOp(a, b, div) }

// AddScalar returns a[i] + s.
func AddScalar(a []float64, s float64) []float64 { return scalarOp(a, s, add) }

// SubtractScalar returns a[i] - s.
func SubtractScalar(a []float64, s float64) []float64 { return scalarOp(a, s, sub) }

// MultiplyScalar returns a[i] * s.
func MultiplyScalar(a []float64, s float64) []float64 { return scalarOp(a, s, mul) }

// DivideScalar returns a[i] / s.
//
// Errors:
//   - ErrDomain when s == 0 (either signed zero). A NaN divisor is not rejected;
//     it propagates into every element.
//
// Complexity: O(n) time and space.
func DivideScalar(a []float64, s float64) ([]float64, error) {
	if s == 0 {
		return nil, arrayErrorf(opDivideScalar, ErrDomain)
	}
	return scalarOp(a, s, div), nil
}

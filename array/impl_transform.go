// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Unary elementwise math with IEEE-754 domain semantics: out-of-domain
//     inputs produce NaN or ±Inf (Sqrt(-1) = NaN, Log(0) = -Inf), never errors.

package array

import "math"

// unaryOp maps f over buf into a fresh buffer of the same length.
func unaryOp(buf []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(buf))
	for i, v := range buf {
		out[i] = f(v)
	}
	return out
}

// Abs returns |buf[i]|.
func Abs(buf []float64) []float64 { return unaryOp(buf, math.Abs) }

// Sqrt returns √buf[i]; negative inputs give NaN.
func Sqrt(buf []float64) []float64 { return unaryOp(buf, math.Sqrt) }

// Log returns the natural logarithm; Log(0) = -Inf, Log(x<0) = NaN.
func Log(buf []float64) []float64 { return unaryOp(buf, math.Log) }

// Exp returns e^buf[i].
func Exp(buf []float64) []float64 { return unaryOp(buf, math.Exp) }

// Sin returns the sine of each element (radians).
func Sin(buf []float64) []float64 { return unaryOp(buf, math.Sin) }

// Cos returns the cosine of each element (radians).
func Cos(buf []float64) []float64 { return unaryOp(buf, math.Cos) }

// Tan returns the tangent of each element (radians).
func Tan(buf []float64) []float64 { return unaryOp(buf, math.Tan) }

// Floor rounds each element down.
func Floor(buf []float64) []float64 { return unaryOp(buf, math.Floor) }

// Ceil rounds each element up.
func Ceil(buf []float64) []float64 { return unaryOp(buf, math.Ceil) }

// Round rounds half away from zero (Round(-2.5) = -3).
func Round(buf []float64) []float64 { return unaryOp(buf, math.Round) }

// Power returns buf[i]^exp with math.Pow special cases.
func Power(buf []float64, exp float64) []float64 {
	return unaryOp(buf, func(v float64) float64 { return math.Pow(v, exp) })
}

// Clip bounds every element to [lo, hi]. NaN elements stay NaN.
// lo > hi is accepted and yields hi everywhere a number is present.
func Clip(buf []float64, lo, hi float64) []float64 {
	return unaryOp(buf, func(v float64) float64 {
		if math.IsNaN(v) {
			return v
		}
		return math.Min(math.Max(v, lo), hi)
	})
}

// Apply maps an arbitrary caller function over buf. fn must be pure.
func Apply(buf []float64, fn func(float64) float64) []float64 { return unaryOp(buf, fn) }

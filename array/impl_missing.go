// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Missing-value handling where NaN is the only missing marker: counting,
//     masking, filling, dropping, interpolation and directional fills.
//
// Boundary policy (no extrapolation):
//   - InterpolateLinear/InterpolateCubic fill only INTERIOR NaN runs, those with
//     a valid value on both sides. Leading and trailing runs stay NaN.
//   - ForwardFill leaves a leading run NaN; BackwardFill leaves a trailing run NaN.
//
// "Valid" means not NaN; ±Inf counts as a value and propagates per IEEE.

package array

import "math"

// CountNaN returns the number of NaN elements.
func CountNaN(buf []float64) int {
	n := 0
	for _, v := range buf {
		if math.IsNaN(v) {
			n++
		}
	}
	return n
}

// IsNA returns a mask with true at every NaN position.
func IsNA(buf []float64) []bool {
	out := make([]bool, len(buf))
	for i, v := range buf {
		out[i] = math.IsNaN(v)
	}
	return out
}

// FillNA replaces every NaN with value.
func FillNA(buf []float64, value float64) []float64 {
	return unaryOp(buf, func(v float64) float64 {
		if math.IsNaN(v) {
			return value
		}
		return v
	})
}

// DropNA removes NaN elements, keeping relative order.
// len(DropNA(buf)) == len(buf) - CountNaN(buf).
func DropNA(buf []float64) []float64 {
	return filterBy(buf, func(v float64) bool { return !math.IsNaN(v) })
}

// ForwardFill carries the last valid value forward into NaN runs.
func ForwardFill(buf []float64) []float64 {
	out := make([]float64, len(buf))
	last := math.NaN()
	for i, v := range buf {
		if !math.IsNaN(v) {
			last = v
		}
		out[i] = last
	}
	return out
}

// BackwardFill carries the next valid value backward into NaN runs.
func BackwardFill(buf []float64) []float64 {
	out := make([]float64, len(buf))
	next := math.NaN()
	for i := len(buf) - 1; i >= 0; i-- {
		if v := buf[i]; !math.IsNaN(v) {
			next = v
		}
		out[i] = next
	}
	return out
}

// validPoints returns the positions and values of the non-NaN elements.
func validPoints(buf []float64) (xs []int, ys []float64) {
	for i, v := range buf {
		if !math.IsNaN(v) {
			xs = append(xs, i)
			ys = append(ys, v)
		}
	}
	return xs, ys
}

// InterpolateLinear fills interior NaN runs on the straight line between the
// nearest valid neighbours (positions are the x axis).
//
// Complexity: O(n) time and space.
func InterpolateLinear(buf []float64) []float64 {
	out := make([]float64, len(buf))
	copy(out, buf)
	xs, ys := validPoints(buf)
	for k := 0; k+1 < len(xs); k++ {
		l, r := xs[k], xs[k+1]
		if r-l < 2 {
			continue
		}
		slope := (ys[k+1] - ys[k]) / float64(r-l)
		for i := l + 1; i < r; i++ {
			out[i] = ys[k] + slope*float64(i-l)
		}
	}
	return out
}

// InterpolateCubic fills interior NaN runs with a natural cubic spline
// (zero second derivative at both ends) through every valid point.
// With exactly two valid points the spline degenerates to a line.
//
// Complexity: O(n) time and space (tridiagonal solve).
func InterpolateCubic(buf []float64) []float64 {
	xs, ys := validPoints(buf)
	if len(xs) < 3 {
		return InterpolateLinear(buf)
	}
	m := naturalSplineMoments(xs, ys)

	out := make([]float64, len(buf))
	copy(out, buf)
	for k := 0; k+1 < len(xs); k++ {
		l, r := xs[k], xs[k+1]
		if r-l < 2 {
			continue
		}
		h := float64(r - l)
		for i := l + 1; i < r; i++ {
			a := float64(r - i) // distance to the right knot
			b := float64(i - l) // distance to the left knot
			out[i] = m[k]*a*a*a/(6*h) + m[k+1]*b*b*b/(6*h) +
				(ys[k]/h-m[k]*h/6)*a + (ys[k+1]/h-m[k+1]*h/6)*b
		}
	}
	return out
}

// naturalSplineMoments solves for the second derivatives M[0..n-1] of the
// natural cubic spline through (xs, ys) with the Thomas algorithm.
// Requires len(xs) >= 3 and strictly increasing xs.
func naturalSplineMoments(xs []int, ys []float64) []float64 {
	n := len(xs)
	m := make([]float64, n) // m[0] = m[n-1] = 0
	// Interior unknowns 1..n-2: sub[i]*M[i-1] + diag[i]*M[i] + sup[i]*M[i+1] = rhs[i].
	diag := make([]float64, n)
	rhs := make([]float64, n)
	sup := make([]float64, n)
	for i := 1; i < n-1; i++ {
		h0 := float64(xs[i] - xs[i-1])
		h1 := float64(xs[i+1] - xs[i])
		diag[i] = 2 * (h0 + h1)
		sup[i] = h1
		rhs[i] = 6 * ((ys[i+1]-ys[i])/h1 - (ys[i]-ys[i-1])/h0)
	}
	// Forward sweep; sub[i] = h0 = xs[i]-xs[i-1].
	for i := 2; i < n-1; i++ {
		sub := float64(xs[i] - xs[i-1])
		w := sub / diag[i-1]
		diag[i] -= w * sup[i-1]
		rhs[i] -= w * rhs[i-1]
	}
	// Back substitution.
	for i := n - 2; i >= 1; i-- {
		m[i] = (rhs[i] - sup[i]*m[i+1]) / diag[i]
	}
	return m
}

// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Prefix transforms that keep the input length: CumSum, CumProd, CumMax,
//     CumMin, Diff, PctChange.
//
// Boundary convention:
//   - Diff and PctChange have no predecessor at index 0, so out[0] = NaN and
//     len(out) == len(buf). Callers wanting the shorter form take out[1:].

package array

import "math"

// CumSum returns out[i] = buf[0] + ... + buf[i]. NaN/±Inf propagate forward.
// Complexity: O(n) time and space.
func CumSum(buf []float64) []float64 {
	out := make([]float64, len(buf))
	var acc float64
	for i, v := range buf {
		acc += v
		out[i] = acc
	}
	return out
}

// CumProd returns out[i] = buf[0] * ... * buf[i].
func CumProd(buf []float64) []float64 {
	out := make([]float64, len(buf))
	acc := 1.0
	for i, v := range buf {
		acc *= v
		out[i] = acc
	}
	return out
}

// cumExtreme walks buf keeping the running extreme chosen by better.
// A NaN position yields NaN and leaves the running extreme untouched.
func cumExtreme(buf []float64, better func(x, cur float64) bool) []float64 {
	out := make([]float64, len(buf))
	cur := math.NaN()
	for i, v := range buf {
		if math.IsNaN(v) {
			out[i] = v
			continue
		}
		if math.IsNaN(cur) || better(v, cur) {
			cur = v
		}
		out[i] = cur
	}
	return out
}

// CumMax returns the running maximum of buf.
//
// Behavior highlights:
//   - out[i] is NaN where buf[i] is NaN; later positions ignore it.
//   - A leading NaN run stays NaN until the first number appears.
func CumMax(buf []float64) []float64 {
	return cumExtreme(buf, func(x, cur float64) bool { return x > cur })
}

// CumMin returns the running minimum of buf (NaN handling as CumMax).
func CumMin(buf []float64) []float64 {
	return cumExtreme(buf, func(x, cur float64) bool { return x < cur })
}

// Diff returns out[0] = NaN and out[i] = buf[i] - buf[i-1].
func Diff(buf []float64) []float64 {
	out := make([]float64, len(buf))
	if len(buf) == 0 {
		return out
	}
	out[0] = math.NaN()
	for i := 1; i < len(buf); i++ {
		out[i] = buf[i] - buf[i-1]
	}
	return out
}

// PctChange returns out[0] = NaN and out[i] = (buf[i] - buf[i-1]) / buf[i-1].
// A zero predecessor follows IEEE-754 (±Inf, or NaN for 0/0).
func PctChange(buf []float64) []float64 {
	out := make([]float64, len(buf))
	if len(buf) == 0 {
		return out
	}
	out[0] = math.NaN()
	for i := 1; i < len(buf); i++ {
		out[i] = (buf[i] - buf[i-1]) / buf[i-1]
	}
	return out
}

// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Buffer constructors: Zeros, Ones, Full, Arange, Linspace.

package array

import "math"

// Operation name constants for unified error wrapping.
const (
	opArange   = "Arange"
	opLinspace = "Linspace"

	// maxGeneratedLen bounds Arange so a tiny step cannot request an
	// unbounded allocation.
	maxGeneratedLen = 1 << 31
)

// Full returns n copies of v. n <= 0 gives an empty buffer.
func Full(n int, v float64) []float64 {
	out := make([]float64, max(n, 0))
	if v != 0 {
		for i := range out {
			out[i] = v
		}
	}
	return out
}

// Zeros returns n zeros.
func Zeros(n int) []float64 { return Full(n, 0) }

// Ones returns n ones.
func Ones(n int) []float64 { return Full(n, 1) }

// Arange returns start, start+step, ... up to but excluding stop.
// A step pointing away from stop gives an empty buffer.
//
// Errors: ErrInvalidParameter when step is 0 or any argument is NaN or ±Inf.
func Arange(start, stop, step float64) ([]float64, error) {
	for _, v := range [...]float64{start, stop, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, paramErrorf(opArange, "step", step)
		}
	}
	if step == 0 {
		return nil, paramErrorf(opArange, "step", step)
	}
	count := math.Ceil((stop - start) / step)
	if count <= 0 {
		return []float64{}, nil
	}
	if count > maxGeneratedLen {
		return nil, paramErrorf(opArange, "step", step)
	}
	out := make([]float64, int(count))
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out, nil
}

// Linspace returns num evenly spaced values over [start, stop], both ends
// included. num == 1 gives [start]; num == 0 gives an empty buffer.
//
// Errors: ErrInvalidParameter for num < 0.
func Linspace(start, stop float64, num int) ([]float64, error) {
	if num < 0 {
		return nil, paramErrorf(opLinspace, "num", num)
	}
	out := make([]float64, num)
	if num == 0 {
		return out, nil
	}
	if num == 1 {
		out[0] = start
		return out, nil
	}
	step := (stop - start) / float64(num-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[num-1] = stop
	return out, nil
}

// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Structural sequence ops that copy, cut or reorder a buffer without
//     looking at its values: Slice, Head, Tail, Concat, Repeat, Reverse.
//   - Value lookups: Unique, UniqueCount, IndexOf, Includes.
//
// Equality policy for Unique/IndexOf/Includes:
//   - -0 and +0 are the same value.
//   - Every NaN is the same value (NaN is found by IndexOf(buf, NaN)).

package array

import (
	"math"
	"slices"
)

// Operation name constants for unified error wrapping.
const (
	opSlice  = "Slice"
	opRepeat = "Repeat"
)

// valueKey maps a float to a comparable key under the equality policy above.
// NaN payloads collapse to one key; -0 collapses to +0.
func valueKey(v float64) uint64 {
	switch {
	case math.IsNaN(v):
		return math.Float64bits(math.NaN())
	case v == 0:
		return 0
	}
	return math.Float64bits(v)
}

// sameValue reports equality under the Unique/IndexOf policy.
func sameValue(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// Unique returns the distinct values of buf in first-occurrence order.
// Unique(Unique(buf)) equals Unique(buf).
//
// Complexity: O(n) expected time, O(n) space.
func Unique(buf []float64) []float64 {
	seen := make(map[uint64]struct{}, len(buf))
	out := make([]float64, 0)
	for _, v := range buf {
		k := valueKey(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}

// UniqueCount returns len(Unique(buf)) without building the value list.
func UniqueCount(buf []float64) int {
	seen := make(map[uint64]struct{}, len(buf))
	for _, v := range buf {
		seen[valueKey(v)] = struct{}{}
	}
	return len(seen)
}

// IndexOf returns the first position holding v, or -1.
func IndexOf(buf []float64, v float64) int {
	return slices.IndexFunc(buf, func(x float64) bool { return sameValue(x, v) })
}

// Includes reports whether v occurs in buf.
func Includes(buf []float64, v float64) bool { return IndexOf(buf, v) >= 0 }

// Slice returns a copy of buf[start:end] (end exclusive).
//
// Errors: ErrRange if start > end, either index is negative, or either
// exceeds len(buf).
func Slice(buf []float64, start, end int) ([]float64, error) {
	if err := ValidateBounds(len(buf), start, end); err != nil {
		return nil, arrayErrorf(opSlice, err)
	}
	out := make([]float64, end-start)
	copy(out, buf[start:end])
	return out, nil
}

// Head returns a copy of the first n elements (all of buf if n >= len).
// A negative n yields an empty buffer.
func Head(buf []float64, n int) []float64 {
	n = min(max(n, 0), len(buf))
	out := make([]float64, n)
	copy(out, buf[:n])
	return out
}

// Tail returns a copy of the last n elements (all of buf if n >= len).
func Tail(buf []float64, n int) []float64 {
	n = min(max(n, 0), len(buf))
	out := make([]float64, n)
	copy(out, buf[len(buf)-n:])
	return out
}

// Concat returns a followed by b in one new buffer.
func Concat(a, b []float64) []float64 {
	out := make([]float64, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// Repeat returns buf laid end to end `times` times. times == 0 gives an
// empty buffer.
//
// Errors: ErrInvalidParameter for times < 0, or when the result would
// overflow int or exceed the Arange length bound.
func Repeat(buf []float64, times int) ([]float64, error) {
	if times < 0 {
		return nil, paramErrorf(opRepeat, "times", times)
	}
	if len(buf) == 0 || times == 0 {
		return []float64{}, nil
	}
	if len(buf) > math.MaxInt/times || int64(len(buf))*int64(times) > maxGeneratedLen {
		return nil, paramErrorf(opRepeat, "times", times)
	}
	out := make([]float64, 0, len(buf)*times)
	for range times {
		out = append(out, buf...)
	}
	return out, nil
}

// Reverse returns buf in reverse order.
func Reverse(buf []float64) []float64 {
	out := make([]float64, len(buf))
	for i, v := range buf {
		out[len(buf)-1-i] = v
	}
	return out
}

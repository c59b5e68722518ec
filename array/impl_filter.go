// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Threshold predicates in two shapes: Filter* keeps matching values,
//     Where* returns their ascending positions.
//
// NaN never satisfies a comparison, so it is never selected
// (FilterEq(buf, NaN) is empty).

package array

// filterBy keeps the values for which keep is true, in input order.
func filterBy(buf []float64, keep func(float64) bool) []float64 {
	out := make([]float64, 0, len(buf))
	for _, v := range buf {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// whereBy returns the ascending positions for which keep is true.
func whereBy(buf []float64, keep func(float64) bool) IndexSet {
	out := make(IndexSet, 0)
	for i, v := range buf {
		if keep(v) {
			out = append(out, i)
		}
	}
	return out
}

func gt(t float64) func(float64) bool { return func(v float64) bool { return v > t } }
func lt(t float64) func(float64) bool { return func(v float64) bool { return v < t } }
func eq(t float64) func(float64) bool { return func(v float64) bool { return v == t } }

func between(lo, hi float64) func(float64) bool {
	return func(v float64) bool { return v >= lo && v <= hi }
}

// FilterGt returns the elements strictly greater than t, in input order.
func FilterGt(buf []float64, t float64) []float64 { return filterBy(buf, gt(t)) }

// FilterLt returns the elements strictly less than t.
func FilterLt(buf []float64, t float64) []float64 { return filterBy(buf, lt(t)) }

// FilterEq returns the elements equal to t (-0 equals +0).
func FilterEq(buf []float64, t float64) []float64 { return filterBy(buf, eq(t)) }

// FilterBetween returns the elements in the closed interval [lo, hi].
func FilterBetween(buf []float64, lo, hi float64) []float64 { return filterBy(buf, between(lo, hi)) }

// WhereGt returns the positions of elements strictly greater than t.
func WhereGt(buf []float64, t float64) IndexSet { return whereBy(buf, gt(t)) }

// WhereLt returns the positions of elements strictly less than t.
func WhereLt(buf []float64, t float64) IndexSet { return whereBy(buf, lt(t)) }

// WhereEq returns the positions of elements equal to t.
func WhereEq(buf []float64, t float64) IndexSet { return whereBy(buf, eq(t)) }

// WhereBetween returns the positions of elements in [lo, hi].
func WhereBetween(buf []float64, lo, hi float64) IndexSet { return whereBy(buf, between(lo, hi)) }

// FilterFunc returns the elements for which keep reports true, in input order.
func FilterFunc(buf []float64, keep func(float64) bool) []float64 { return filterBy(buf, keep) }

// WhereFunc returns the positions for which keep reports true.
func WhereFunc(buf []float64, keep func(float64) bool) IndexSet { return whereBy(buf, keep) }

// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Ordering kernels: Sort, SortDesc, Argsort, ArgsortDesc.
//   - Shared comparators used by every order-statistic kernel (Median,
//     Percentile, Quartiles, Mode, Unique-free paths) so the NaN policy lives
//     in exactly one place.
//
// NaN policy (symmetric):
//   - NaN sorts LAST in ascending AND descending order. Ties between NaNs keep
//     their input order (stable), as do ties between equal numbers (including
//     -0 and +0, which compare equal).

package array

import (
	"cmp"
	"math"
	"slices"
)

// compareAsc orders numbers ascending with NaN after every number.
func compareAsc(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	}
	return cmp.Compare(a, b)
}

// compareDesc orders numbers descending with NaN after every number.
func compareDesc(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	}
	return cmp.Compare(b, a)
}

// sortedCopy returns an ascending copy of buf (NaN last).
func sortedCopy(buf []float64) []float64 {
	out := slices.Clone(buf)
	if out == nil {
		out = []float64{}
	}
	slices.SortStableFunc(out, compareAsc)
	return out
}

// Sort returns an ascending, stable copy of buf with NaN values at the end.
// Complexity: O(n log n) time, O(n) space.
func Sort(buf []float64) []float64 { return sortedCopy(buf) }

// SortDesc returns a descending, stable copy of buf with NaN values at the end.
func SortDesc(buf []float64) []float64 {
	out := make([]float64, len(buf))
	copy(out, buf)
	slices.SortStableFunc(out, compareDesc)
	return out
}

// argsortBy returns the permutation that orders buf under cmpFn, stable for ties.
func argsortBy(buf []float64, cmpFn func(a, b float64) int) IndexSet {
	idx := make(IndexSet, len(buf))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(i, j int) int { return cmpFn(buf[i], buf[j]) })
	return idx
}

// Argsort returns the indices that would sort buf ascending (NaN last).
// Applying the result as a permutation to buf yields Sort(buf).
//
// Complexity: O(n log n) time, O(n) space.
func Argsort(buf []float64) IndexSet { return argsortBy(buf, compareAsc) }

// ArgsortDesc returns the indices that would sort buf descending (NaN last).
func ArgsortDesc(buf []float64) IndexSet { return argsortBy(buf, compareDesc) }

// Take gathers buf[idx[k]] for every k. It is the inverse companion of the
// Where*/Argsort kernels. Returns ErrRange if any index is outside buf.
func Take(buf []float64, idx IndexSet) ([]float64, error) {
	out := make([]float64, len(idx))
	for k, i := range idx {
		if i < 0 || i >= len(buf) {
			return nil, arrayErrorf("Take", ErrRange)
		}
		out[k] = buf[i]
	}
	return out, nil
}

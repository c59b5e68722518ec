// SPDX-License-Identifier: MIT
// Package array_test contains shared fixtures for the kernel tests.
//
// Purpose:
//   - NaN-aware buffer comparison (testify's Equal uses DeepEqual, where NaN != NaN).
//   - Deterministic random buffers for oracle cross-checks.

package array_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	epsTight = 1e-12
	epsLoose = 1e-9
)

var nan = math.NaN()

// requireBufClose fails unless got matches want elementwise within tol.
// NaN matches NaN; ±Inf must match exactly.
func requireBufClose(t testing.TB, want, got []float64, tol float64) {
	t.Helper()
	require.Len(t, got, len(want), "length mismatch: want %v got %v", want, got)
	for i := range want {
		w, g := want[i], got[i]
		switch {
		case math.IsNaN(w):
			require.Truef(t, math.IsNaN(g), "[%d]: want NaN, got %v (full %v)", i, g, got)
		case math.IsInf(w, 0):
			require.Equalf(t, w, g, "[%d]: want %v, got %v", i, w, g)
		default:
			require.InDeltaf(t, w, g, tol, "[%d]: want %v, got %v (full %v)", i, w, g, got)
		}
	}
}

// randBuf returns n deterministic values in [-scale, scale) shifted by offset.
func randBuf(seed int64, n int, offset, scale float64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = offset + scale*(2*rng.Float64()-1)
	}
	return out
}

// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and gonum/mat oracles for kernels.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/quickly/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const (
	epsTight = 1e-12
	epsLoose = 1e-9
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the interface (non-*Dense) path in code under test.
type hide struct{ matrix.Matrix }

// mustDense builds an r×c *Dense from row-major values or fails the test.
func mustDense(tb testing.TB, r, c int, data ...float64) *matrix.Dense {
	tb.Helper()
	if len(data) == 0 {
		m, err := matrix.NewDense(r, c)
		require.NoError(tb, err)
		return m
	}
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(tb, err)
	return m
}

// randDense fills an r×c matrix with deterministic values in [-1, 1).
func randDense(tb testing.TB, seed int64, r, c int) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = 2*rng.Float64() - 1
	}
	return mustDense(tb, r, c, data...)
}

// randSymmetric returns B + Bᵀ for a random square B.
func randSymmetric(tb testing.TB, seed int64, n int) *matrix.Dense {
	tb.Helper()
	b := randDense(tb, seed, n, n).Data()
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data[i*n+j] = b[i*n+j] + b[j*n+i]
		}
	}
	return mustDense(tb, n, n, data...)
}

// diagDominant returns a random n×n matrix made strictly diagonally
// dominant, hence well conditioned and invertible.
func diagDominant(tb testing.TB, seed int64, n int) *matrix.Dense {
	tb.Helper()
	data := randDense(tb, seed, n, n).Data()
	for i := 0; i < n; i++ {
		data[i*n+i] += float64(n) + 1
	}
	return mustDense(tb, n, n, data...)
}

// toMat copies d into a gonum matrix for oracle comparisons.
func toMat(d *matrix.Dense) *mat.Dense {
	return mat.NewDense(d.Rows(), d.Cols(), d.Data())
}

// requireMatClose asserts element-wise |want-got| <= eps with matching shapes.
func requireMatClose(t *testing.T, want mat.Matrix, got *matrix.Dense, eps float64) {
	t.Helper()
	r, c := want.Dims()
	require.Equal(t, r, got.Rows(), "rows")
	require.Equal(t, c, got.Cols(), "cols")
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			g, err := got.At(i, j)
			require.NoError(t, err)
			w := want.At(i, j)
			require.InDelta(t, w, g, eps, "[%d,%d]", i, j)
		}
	}
}

// requireSliceClose asserts equal lengths and |want[i]-got[i]| <= eps (NaN == NaN).
func requireSliceClose(t *testing.T, want, got []float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if math.IsNaN(want[i]) {
			require.True(t, math.IsNaN(got[i]), "index %d: want NaN, got %v", i, got[i])
			continue
		}
		require.InDelta(t, want[i], got[i], eps, "index %d", i)
	}
}

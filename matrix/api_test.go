// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/quickly/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiplyFlat(t *testing.T) {
	t.Parallel()

	a := []float64{1, 2, 3, 4, 5, 6}
	b := []float64{7, 8, 9, 10, 11, 12}
	got, err := matrix.MultiplyFlat(a, b, 2, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{58, 64, 139, 154}, got)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, a, "inputs untouched")

	_, err = matrix.MultiplyFlat(a, b, 3, 3, 2)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MultiplyFlat(a, b[:5], 2, 3, 2)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// Empty inner dimension: the empty sum is zero.
	got, err = matrix.MultiplyFlat(nil, nil, 2, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, got)
}

func TestTransposeFlat(t *testing.T) {
	t.Parallel()

	got, err := matrix.TransposeFlat([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, got)

	got, err = matrix.TransposeFlat(nil, 0, 4)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = matrix.TransposeFlat([]float64{1, 2}, 2, 2)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDeterminantInverseFlat(t *testing.T) {
	t.Parallel()

	det, err := matrix.DeterminantFlat([]float64{4, 7, 2, 6}, 2)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, det, epsTight)

	inv, err := matrix.InverseFlat([]float64{4, 7, 2, 6}, 2)
	require.NoError(t, err)
	requireSliceClose(t, []float64{0.6, -0.7, -0.2, 0.4}, inv, epsTight)

	_, err = matrix.InverseFlat([]float64{1, 2, 2, 4}, 2)
	assert.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.DeterminantFlat(nil, 0)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.InverseFlat([]float64{1, 2, 3}, 2)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestEigenFlat(t *testing.T) {
	t.Parallel()

	in := []float64{2, 1, 1, 2}
	values, vectors, err := matrix.EigenFlat(in, 2)
	require.NoError(t, err)
	requireSliceClose(t, []float64{1, 3}, values, epsTight)
	require.Len(t, vectors, 4)
	assert.Equal(t, []float64{2, 1, 1, 2}, in)

	_, _, err = matrix.EigenFlat(in, 3)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

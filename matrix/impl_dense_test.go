// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quickly/array"
	"github.com/katalvlaran/quickly/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_Validation(t *testing.T) {
	t.Parallel()

	for _, shape := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		_, err := matrix.NewDense(shape[0], shape[1])
		assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "shape %v", shape)
	}

	_, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, err, array.ErrDimensionMismatch, "matrix and array share sentinels")

	m := mustDense(t, 2, 3)
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 0}, m.Data())
	r, c := m.Shape()
	assert.Equal(t, [2]int{2, 3}, [2]int{r, c})
}

func TestNewDenseFrom_CopiesInput(t *testing.T) {
	t.Parallel()

	src := []float64{1, 2, 3, 4}
	m := mustDense(t, 2, 2, src...)
	src[0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	out := m.Data()
	out[1] = 99
	v, err = m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v, "Data returns a copy")
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m := mustDense(t, 2, 2)
	require.NoError(t, m.Set(1, 0, math.NaN()))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v), "NaN is a legal cell value")

	for _, ij := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 2}} {
		_, err = m.At(ij[0], ij[1])
		assert.ErrorIs(t, err, matrix.ErrOutOfRange, "At%v", ij)
		assert.ErrorIs(t, m.Set(ij[0], ij[1], 1), array.ErrRange, "Set%v", ij)
	}
}

func TestDense_CloneRowColString(t *testing.T) {
	t.Parallel()

	m := mustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	cl := m.Clone()
	require.NoError(t, cl.Set(0, 0, 42))
	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v, "clone is independent")

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, row)
	col, err := m.Col(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6}, col)

	_, err = m.Row(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	assert.Equal(t, "[1, 2, 3]\n[4, 5, 6]\n", m.String())
}

func TestNewIdentity(t *testing.T) {
	t.Parallel()

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, id.Data())

	_, err = matrix.NewIdentity(0)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestValidators(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense
	assert.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateSquare(mustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, matrix.ValidateMulCompatible(mustDense(t, 2, 3), mustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)

	assert.NoError(t, matrix.ValidateFlat(nil, 0, 5))
	assert.ErrorIs(t, matrix.ValidateFlat([]float64{1, 2}, 1, 3), matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, matrix.ValidateFlat(nil, -1, 0), matrix.ErrDimensionMismatch)

	sym := mustDense(t, 2, 2, 1, 2, 2+1e-13, 1)
	assert.NoError(t, matrix.ValidateSymmetric(sym, 1e-12))
	assert.ErrorIs(t, matrix.ValidateSymmetric(sym, 0), matrix.ErrAsymmetry)
	withNaN := mustDense(t, 2, 2, 1, math.NaN(), math.NaN(), 1)
	assert.ErrorIs(t, matrix.ValidateSymmetric(withNaN, 1), matrix.ErrAsymmetry)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { matrix.WithEpsilon(-1) })
	assert.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	assert.Panics(t, func() { matrix.WithEigenTolerance(0) })
	assert.Panics(t, func() { matrix.WithEigenTolerance(math.Inf(1)) })
	assert.Panics(t, func() { matrix.WithMaxIterations(0) })
	assert.NotPanics(t, func() { matrix.WithEpsilon(0) })
}

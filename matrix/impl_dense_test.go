// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtour/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, shape := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(shape[0], shape[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestNewDenseFrom(t *testing.T) {
	m := MustFrom(t, 2, 3, 1, 2, 3, 4, 5, 6)
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	_, err = matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.Inf(1)})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	// caller keeps ownership of the input slice
	vals := []float64{1, 2}
	m = MustFrom(t, 1, 2, vals...)
	vals[0] = 99
	v, _ = m.At(0, 0)
	assert.Equal(t, 1.0, v)
}

func TestDense_AtSetBounds(t *testing.T) {
	m := MustDense(t, 2, 2)
	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.NoError(t, m.Set(1, 0, 7))
	v, _ := m.At(1, 0)
	assert.Equal(t, 7.0, v)
}

func TestDense_CloneIsDeep(t *testing.T) {
	m := MustFrom(t, 2, 2, 1, 2, 3, 4)
	c := m.Copy()
	require.NoError(t, c.Set(0, 0, 42))
	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v)
	_, isDense := m.Clone().(*matrix.Dense)
	assert.True(t, isDense)
}

func TestDense_RowColSetCol(t *testing.T) {
	m := MustFrom(t, 3, 2, 1, 2, 3, 4, 5, 6)

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, row)

	col, err := m.Col(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6}, col)

	require.NoError(t, m.SetCol(0, []float64{-1, -2, -3}))
	col, _ = m.Col(0)
	assert.Equal(t, []float64{-1, -2, -3}, col)

	require.ErrorIs(t, m.SetCol(0, []float64{1}), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, m.SetCol(0, []float64{0, math.NaN(), 0}), matrix.ErrNaNInf)
	col, _ = m.Col(0)
	assert.Equal(t, []float64{-1, -2, -3}, col, "failed SetCol must not write")

	_, err = m.Row(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_InducedAndLeadingCols(t *testing.T) {
	m := MustFrom(t, 3, 3,
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	sub, err := m.Induced([]int{2, 0}, []int{1, 1})
	require.NoError(t, err)
	requireMatrixClose(t, MustFrom(t, 2, 2, 8, 8, 2, 2), sub)

	lead, err := m.LeadingCols(2)
	require.NoError(t, err)
	requireMatrixClose(t, MustFrom(t, 3, 2, 1, 2, 4, 5, 7, 8), lead)

	_, err = m.Induced(nil, []int{0})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = m.Induced([]int{0}, []int{3})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_DoApplyString(t *testing.T) {
	m := MustFrom(t, 2, 2, 1, 2, 3, 4)
	assert.Equal(t, "[1, 2]\n[3, 4]\n", m.String())

	var visited int
	m.Do(func(_, _ int, _ float64) bool {
		visited++
		return visited < 3
	})
	assert.Equal(t, 3, visited)

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * 10 }))
	assert.Equal(t, "[10, 20]\n[30, 40]\n", m.String())
	require.ErrorIs(t, m.Apply(func(_, _ int, _ float64) float64 { return math.Inf(-1) }), matrix.ErrNaNInf)
}

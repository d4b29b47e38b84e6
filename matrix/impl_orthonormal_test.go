// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtour/matrix"
)

func TestGramSchmidt_SpansLeadingColumns(t *testing.T) {
	m := MustFrom(t, 3, 2,
		1, 1,
		0, 1,
		0, 0,
	)
	q, err := matrix.GramSchmidt(m)
	require.NoError(t, err)
	eye, err := matrix.NewEye(3, 2)
	require.NoError(t, err)
	requireMatrixClose(t, eye, q)

	// input is untouched
	v, _ := m.At(0, 1)
	assert.Equal(t, 1.0, v)
}

func TestGramSchmidt_FallbackAndOrthonormality(t *testing.T) {
	m := MustFrom(t, 4, 2,
		1, 2,
		3, -1,
		0, 4,
		2, 2,
	)
	q, err := matrix.GramSchmidt(hide{m})
	require.NoError(t, err)
	e, err := matrix.OrthonormalityError(q)
	require.NoError(t, err)
	assert.Less(t, e, 1e-12)
}

func TestGramSchmidt_Errors(t *testing.T) {
	_, err := matrix.GramSchmidt(MustFrom(t, 3, 2, 1, 2, 1, 2, 0, 0))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.GramSchmidt(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.GramSchmidt(nanAt{hide{MustDense(t, 2, 2)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestOrthonormalityError_Detects(t *testing.T) {
	e, err := matrix.OrthonormalityError(MustFrom(t, 2, 2, 2, 0, 0, 1))
	require.NoError(t, err)
	assert.InDelta(t, 3.0, e, tol)
}

func TestOrthonormalityError_OffDiagonal(t *testing.T) {
	// Gram matrix [[1,1],[1,2]] deviates from I by 1 everywhere but (0,0).
	e, err := matrix.OrthonormalityError(hide{MustFrom(t, 2, 2, 1, 1, 0, 1)})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, e, tol)

	_, err = matrix.OrthonormalityError(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDet(t *testing.T) {
	d, err := matrix.Det(MustFrom(t, 2, 2, 1, 2, 3, 4))
	require.NoError(t, err)
	assert.InDelta(t, -2.0, d, tol)

	d, err = matrix.Det(hide{MustFrom(t, 3, 3, 0, 1, 0, 1, 0, 0, 0, 0, 1)})
	require.NoError(t, err)
	assert.InDelta(t, -1.0, d, tol)

	d, err = matrix.Det(MustFrom(t, 2, 2, 1, 2, 2, 4))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, d, tol)

	_, err = matrix.Det(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDotNorm(t *testing.T) {
	assert.Equal(t, 11.0, matrix.Dot([]float64{1, 2}, []float64{3, 4}))
	assert.Equal(t, 5.0, matrix.Norm([]float64{3, 4}))
}

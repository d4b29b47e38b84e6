// SPDX-License-Identifier: MIT

package manual_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtour/basis"
	"github.com/katalvlaran/lvtour/manual"
	"github.com/katalvlaran/lvtour/matrix"
)

func TestCreateManipSpace_Identity(t *testing.T) {
	b, err := basis.Identity(6, 2)
	require.NoError(t, err)

	ms, err := manual.CreateManipSpace(b, 2)
	require.NoError(t, err)
	require.NoError(t, basis.Validate(ms, 3))

	col, _ := ms.Col(2)
	assert.Equal(t, []float64{0, 0, 1, 0, 0, 0}, col)
	lead, _ := ms.LeadingCols(2)
	assert.Equal(t, b.String(), lead.String())
}

func TestCreateManipSpace_RandomBasis(t *testing.T) {
	b, err := basis.Random(7, 2, basis.WithSeed(11))
	require.NoError(t, err)
	for k := 0; k < 7; k++ {
		ms, err := manual.CreateManipSpace(b, k)
		require.NoError(t, err)
		require.NoError(t, basis.Validate(ms, 3))
		row, _ := ms.Row(k)
		assert.InDelta(t, 1, matrix.Norm(row), 1e-12, "e_k lies in the manipulation space")
		u, _ := ms.Col(2)
		assert.Positive(t, u[k])
	}
}

func TestCreateManipSpace_Errors(t *testing.T) {
	b, _ := basis.Identity(4, 2)

	_, err := manual.CreateManipSpace(b, 0)
	require.ErrorIs(t, err, manual.ErrDegenerateManipulation)

	_, err = manual.CreateManipSpace(b, 4)
	require.ErrorIs(t, err, basis.ErrInvalidDimension)

	_, err = manual.CreateManipSpace(nil, 0)
	require.ErrorIs(t, err, basis.ErrNilBasis)

	skew, _ := matrix.NewDenseFrom(3, 2, []float64{1, 1, 0, 1, 0, 0})
	_, err = manual.CreateManipSpace(skew, 2)
	require.ErrorIs(t, err, basis.ErrInvalidBasis)
}

func TestRotateManipSpace_ZeroIsIdentity(t *testing.T) {
	b, _ := basis.Random(5, 2, basis.WithSeed(2))
	ms, err := manual.CreateManipSpace(b, 1)
	require.NoError(t, err)

	for _, theta := range []float64{0, 0.7, -2.5} {
		out, err := manual.RotateManipSpace(ms, theta, 0)
		require.NoError(t, err)
		same, err := matrix.AllClose(out, ms, 0, 0)
		require.NoError(t, err)
		assert.True(t, same)
	}
}

func TestRotateManipSpace_ThetaZeroMixesColumnsZeroAndTwo(t *testing.T) {
	b, _ := basis.Random(5, 2, basis.WithSeed(4))
	ms, err := manual.CreateManipSpace(b, 3)
	require.NoError(t, err)

	out, err := manual.RotateManipSpace(ms, 0, 0.4)
	require.NoError(t, err)
	require.NoError(t, basis.Validate(out, 3))

	in1, _ := ms.Col(1)
	out1, _ := out.Col(1)
	assert.Equal(t, in1, out1)

	in0, _ := ms.Col(0)
	in2, _ := ms.Col(2)
	out0, _ := out.Col(0)
	out2, _ := out.Col(2)
	c, s := math.Cos(0.4), math.Sin(0.4)
	for i := range in0 {
		assert.InDelta(t, c*in0[i]-s*in2[i], out0[i], 1e-12)
		assert.InDelta(t, s*in0[i]+c*in2[i], out2[i], 1e-12)
	}
}

func TestRotateManipSpace_PositivePhiTiltsOutOfPlane(t *testing.T) {
	b, _ := basis.Random(6, 2, basis.WithSeed(9))
	const k = 4
	ms, err := manual.CreateManipSpace(b, k)
	require.NoError(t, err)

	row, _ := ms.Row(k)
	r0 := math.Hypot(row[0], row[1])
	phi0 := math.Acos(r0)
	theta := math.Atan2(row[1], row[0])

	out, err := manual.RotateManipSpace(ms, theta, 0.2)
	require.NoError(t, err)
	row, _ = out.Row(k)
	assert.InDelta(t, math.Cos(phi0+0.2), math.Hypot(row[0], row[1]), 1e-12)
}

func TestRotateManipSpace_Errors(t *testing.T) {
	b, _ := basis.Identity(4, 2)
	ms, err := manual.CreateManipSpace(b, 3)
	require.NoError(t, err)

	for _, tc := range []struct {
		name       string
		theta, phi float64
	}{
		{"nan theta", math.NaN(), 0},
		{"inf phi", 0, math.Inf(1)},
		{"-inf theta", math.Inf(-1), 0.1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := manual.RotateManipSpace(ms, tc.theta, tc.phi)
			require.ErrorIs(t, err, manual.ErrInvalidAngle)
		})
	}

	_, err = manual.RotateManipSpace(b, 0, 0)
	require.ErrorIs(t, err, basis.ErrInvalidDimension)
	_, err = manual.RotateManipSpace(nil, 0, 0)
	require.ErrorIs(t, err, basis.ErrNilBasis)
}

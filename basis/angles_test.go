// SPDX-License-Identifier: MIT

package basis_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtour/basis"
	"github.com/katalvlaran/lvtour/matrix"
)

func TestPrincipalAngles_Identical(t *testing.T) {
	b, err := basis.Random(5, 2, basis.WithSeed(3))
	require.NoError(t, err)
	angles, err := basis.PrincipalAngles(b, b)
	require.NoError(t, err)
	require.Len(t, angles, 2)
	for _, a := range angles {
		assert.InDelta(t, 0, a, 1e-9)
	}
}

func TestPrincipalAngles_TiltedPlane(t *testing.T) {
	const tilt = 0.3
	a, _ := basis.Identity(3, 2)
	b, err := matrix.NewDenseFrom(3, 2, []float64{
		1, 0,
		0, math.Cos(tilt),
		0, math.Sin(tilt),
	})
	require.NoError(t, err)

	angles, err := basis.PrincipalAngles(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 0, angles[0], 1e-12)
	assert.InDelta(t, tilt, angles[1], 1e-12)

	d, err := basis.Distance(a, b)
	require.NoError(t, err)
	assert.InDelta(t, tilt, d, 1e-12)
}

func TestPrincipalAngles_Ascending(t *testing.T) {
	const wide, narrow = 0.9, 0.2
	a, _ := basis.Identity(4, 2)
	b, err := matrix.NewDenseFrom(4, 2, []float64{
		math.Cos(wide), 0,
		0, math.Cos(narrow),
		math.Sin(wide), 0,
		0, math.Sin(narrow),
	})
	require.NoError(t, err)

	angles, err := basis.PrincipalAngles(a, b)
	require.NoError(t, err)
	require.Len(t, angles, 2)
	assert.InDelta(t, narrow, angles[0], 1e-12)
	assert.InDelta(t, wide, angles[1], 1e-12)
}

func TestDistance_IgnoresInPlaneRotation(t *testing.T) {
	a, _ := basis.Identity(4, 2)
	c, s := math.Cos(1.1), math.Sin(1.1)
	spun, err := matrix.NewDenseFrom(4, 2, []float64{
		c, -s,
		s, c,
		0, 0,
		0, 0,
	})
	require.NoError(t, err)
	d, err := basis.Distance(a, spun)
	require.NoError(t, err)
	assert.InDelta(t, 0, d, 1e-12)
}

func TestPrincipalAngles_Errors(t *testing.T) {
	a, _ := basis.Identity(4, 2)
	b, _ := basis.Identity(3, 2)
	_, err := basis.PrincipalAngles(a, b)
	require.ErrorIs(t, err, basis.ErrInvalidDimension)
	_, err = basis.Distance(nil, b)
	require.ErrorIs(t, err, basis.ErrNilBasis)
}

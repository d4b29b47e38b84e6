// SPDX-License-Identifier: MIT

package geodesic_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtour/basis"
	"github.com/katalvlaran/lvtour/geodesic"
	"github.com/katalvlaran/lvtour/matrix"
	"github.com/katalvlaran/lvtour/tour"
)

// distTol absorbs rounding in the principal angles of computed frames.
const distTol = 1e-9

func randomTargets(t *testing.T, p, d int, seeds ...int64) []*matrix.Dense {
	t.Helper()
	out := make([]*matrix.Dense, 0, len(seeds))
	for _, s := range seeds {
		b, err := basis.Random(p, d, basis.WithSeed(s))
		require.NoError(t, err)
		out = append(out, b)
	}

	return out
}

func mustDense(t *testing.T, r, c int, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}

// requireStepBound checks orthonormality of every frame and the distance
// between neighbours.
func requireStepBound(t *testing.T, path *tour.Path, step float64) {
	t.Helper()
	require.NoError(t, path.Validate())
	for i := 1; i < path.Len(); i++ {
		dist, err := basis.Distance(path.Bases[i-1], path.Bases[i])
		require.NoError(t, err)
		require.LessOrEqual(t, dist, step+distTol, "frames %d-%d", i-1, i)
	}
}

func indexOf(t *testing.T, frames []*matrix.Dense, target *matrix.Dense) int {
	t.Helper()
	for i, f := range frames {
		ok, err := matrix.AllClose(f, target, 0, 0)
		require.NoError(t, err)
		if ok {
			return i
		}
	}

	return -1
}

func TestInterpolate_EndpointsAndTargets(t *testing.T) {
	targets := randomTargets(t, 5, 2, 1, 2, 3)
	const step = 0.1

	path, err := geodesic.Interpolate(targets, step)
	require.NoError(t, err)
	require.Greater(t, path.Len(), len(targets))
	assert.Equal(t, tour.NoManipVar, path.ManipVar)
	assert.Nil(t, path.Data)

	assert.Equal(t, targets[0].String(), path.Bases[0].String())
	assert.Equal(t, targets[2].String(), path.Bases[path.Len()-1].String())

	prev := -1
	for i, tgt := range targets {
		at := indexOf(t, path.Bases, tgt)
		require.GreaterOrEqual(t, at, 0, "target %d missing", i)
		assert.Greater(t, at, prev, "target %d out of order", i)
		prev = at
	}
	requireStepBound(t, path, step)

	// outputs are copies
	assert.NotSame(t, targets[0], path.Bases[0])
}

func TestInterpolate_SingleTarget(t *testing.T) {
	targets := randomTargets(t, 4, 2, 7)
	path, err := geodesic.Interpolate(targets, 0.05)
	require.NoError(t, err)
	require.Equal(t, 1, path.Len())
	assert.Equal(t, targets[0].String(), path.Bases[0].String())
	assert.NotSame(t, targets[0], path.Bases[0])
}

func TestInterpolate_OrthogonalPlanes(t *testing.T) {
	a, _ := basis.Identity(4, 2)
	z := mustDense(t, 4, 2,
		0, 0,
		0, 0,
		1, 0,
		0, 1,
	)
	step := math.Pi / 8

	path, err := geodesic.Interpolate([]*matrix.Dense{a, z}, step)
	require.NoError(t, err)
	// ‖τ‖ = π/√2 needs ceil(4√2) = 6 intervals
	require.Equal(t, 7, path.Len())
	requireStepBound(t, path, step)

	mid := path.Bases[3]
	c := math.Cos(math.Pi / 4)
	for _, tc := range []struct {
		i, j int
		want float64
	}{
		{0, 0, c}, {1, 1, c}, {2, 0, c}, {3, 1, c}, {0, 1, 0}, {2, 1, 0},
	} {
		v, err := mid.At(tc.i, tc.j)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, v, 1e-12, "(%d,%d)", tc.i, tc.j)
	}
}

func TestInterpolate_InPlaneReflection(t *testing.T) {
	a, _ := basis.Identity(3, 2)
	swapped := mustDense(t, 3, 2,
		0, 1,
		1, 0,
		0, 0,
	)
	const step = 0.1

	path, err := geodesic.Interpolate([]*matrix.Dense{a, swapped}, step)
	require.NoError(t, err)
	require.Greater(t, path.Len(), 2)
	assert.Equal(t, swapped.String(), path.Bases[path.Len()-1].String())
	requireStepBound(t, path, step)

	// no complementary direction when the planes fill the space
	a2, _ := basis.Identity(2, 2)
	swapped2 := mustDense(t, 2, 2, 0, 1, 1, 0)
	_, err = geodesic.Interpolate([]*matrix.Dense{a2, swapped2}, step)
	require.ErrorIs(t, err, geodesic.ErrNoComplement)
}

func TestInterpolate_RotationInsidePlane(t *testing.T) {
	a, _ := basis.Identity(3, 2)
	c, s := math.Cos(1), math.Sin(1)
	spun := mustDense(t, 3, 2,
		c, -s,
		s, c,
		0, 0,
	)
	const step = 0.25

	path, err := geodesic.Interpolate([]*matrix.Dense{a, spun}, step)
	require.NoError(t, err)
	// same plane, but the orientation still turns by one radian
	require.Equal(t, 5, path.Len())
	requireStepBound(t, path, step)
	for _, f := range path.Bases {
		v, _ := f.Row(2)
		assert.InDelta(t, 0, matrix.Norm(v), 1e-12)
	}
}

func TestInterpolate_OneDimensional(t *testing.T) {
	a := mustDense(t, 3, 1, 1, 0, 0)
	z := mustDense(t, 3, 1, 0, 0.6, 0.8)
	const step = 0.2

	path, err := geodesic.Interpolate([]*matrix.Dense{a, z}, step)
	require.NoError(t, err)
	require.Equal(t, 9, path.Len()) // π/2 / 0.2 → 8 intervals
	requireStepBound(t, path, step)
}

func TestInterpolate_HigherDimensional(t *testing.T) {
	targets := randomTargets(t, 7, 3, 11, 12)
	const step = 0.08

	path, err := geodesic.Interpolate(targets, step)
	require.NoError(t, err)
	assert.Equal(t, targets[1].String(), path.Bases[path.Len()-1].String())
	requireStepBound(t, path, step)
}

func TestInterpolate_Errors(t *testing.T) {
	good := randomTargets(t, 4, 2, 1, 2)

	for _, step := range []float64{0, -0.1, math.NaN(), math.Inf(1)} {
		_, err := geodesic.Interpolate(good, step)
		require.ErrorIs(t, err, geodesic.ErrInvalidStep, "step %v", step)
	}

	_, err := geodesic.Interpolate(nil, 0.1)
	require.ErrorIs(t, err, geodesic.ErrTooFewTargets)

	_, err = geodesic.Interpolate([]*matrix.Dense{good[0], nil}, 0.1)
	require.ErrorIs(t, err, basis.ErrNilBasis)

	_, err = geodesic.Interpolate([]*matrix.Dense{nil}, 0.1)
	require.ErrorIs(t, err, basis.ErrNilBasis)

	other := randomTargets(t, 5, 2, 3)
	_, err = geodesic.Interpolate([]*matrix.Dense{good[0], other[0]}, 0.1)
	require.ErrorIs(t, err, basis.ErrInvalidDimension)

	wide := randomTargets(t, 4, 3, 4)
	_, err = geodesic.Interpolate([]*matrix.Dense{good[0], wide[0]}, 0.1)
	require.ErrorIs(t, err, basis.ErrInvalidDimension)

	skew := mustDense(t, 4, 2,
		1, 1,
		0, 1,
		0, 0,
		0, 0,
	)
	_, err = geodesic.Interpolate([]*matrix.Dense{good[0], skew}, 0.1)
	require.ErrorIs(t, err, basis.ErrInvalidBasis)
}

func TestInterpolatePath(t *testing.T) {
	targets := randomTargets(t, 4, 2, 5, 6)
	x := mustDense(t, 3, 4,
		1, 2, 3, 4,
		2, 3, 4, 5,
		0, 1, 0, 1,
	)
	ds, err := tour.NewDataset(x, nil)
	require.NoError(t, err)
	src := &tour.Path{Bases: targets, Data: ds, ManipVar: 2}

	path, err := geodesic.InterpolatePath(src, 0.1)
	require.NoError(t, err)
	assert.Same(t, ds, path.Data)
	assert.Equal(t, 2, path.ManipVar)
	requireStepBound(t, path, 0.1)

	_, err = geodesic.InterpolatePath(nil, 0.1)
	require.ErrorIs(t, err, geodesic.ErrTooFewTargets)
	_, err = geodesic.InterpolatePath(&tour.Path{}, 0.1)
	require.ErrorIs(t, err, geodesic.ErrTooFewTargets)
}

func TestInterpolate_WithDataAndLogger(t *testing.T) {
	targets := randomTargets(t, 4, 2, 8, 9)
	ds, err := tour.NewDataset(mustDense(t, 1, 4, 1, 2, 3, 4), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	path, err := geodesic.Interpolate(targets, 0.1, geodesic.WithData(ds), geodesic.WithLogger(logger))
	require.NoError(t, err)
	assert.Same(t, ds, path.Data)
	assert.Contains(t, buf.String(), "geodesic: segment interpolated")
	assert.Contains(t, buf.String(), "steps=")

	assert.Panics(t, func() { geodesic.WithLogger(nil) })
}

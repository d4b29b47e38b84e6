// SPDX-License-Identifier: MIT

package tour_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtour/basis"
	"github.com/katalvlaran/lvtour/matrix"
	"github.com/katalvlaran/lvtour/tour"
)

// infAt wraps a matrix and reports +Inf at (0,0).
type infAt struct{ matrix.Matrix }

func (m infAt) At(i, j int) (float64, error) {
	if i == 0 && j == 0 {
		return math.Inf(1), nil
	}

	return m.Matrix.At(i, j)
}

// hide masks the concrete *Dense type.
type hide struct{ matrix.Matrix }

// smallData is a 3×4 dataset with distinct values.
func smallData(t testing.TB) *tour.Dataset {
	t.Helper()
	x, err := matrix.NewDenseFrom(3, 4, []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	})
	require.NoError(t, err)
	ds, err := tour.NewDataset(x, []string{"alpha", "beta", "gamma", "delta"})
	require.NoError(t, err)

	return ds
}

// identityPath repeats Identity(p, d) k times.
func identityPath(t testing.TB, p, d, k int, ds *tour.Dataset) *tour.Path {
	t.Helper()
	bases := make([]*matrix.Dense, k)
	for i := range bases {
		b, err := basis.Identity(p, d)
		require.NoError(t, err)
		bases[i] = b
	}

	return &tour.Path{Bases: bases, Data: ds, ManipVar: tour.NoManipVar}
}

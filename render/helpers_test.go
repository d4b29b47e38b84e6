// SPDX-License-Identifier: MIT

package render_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtour/basis"
	"github.com/katalvlaran/lvtour/matrix"
	"github.com/katalvlaran/lvtour/tour"
)

// twoFramePath shows variables (0,1) and then (1,2) of a 2×3 data set.
func twoFramePath(t testing.TB) *tour.Path {
	t.Helper()
	x, err := matrix.NewDenseFrom(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	require.NoError(t, err)
	ds, err := tour.NewDataset(x, []string{"a", "b", "c"})
	require.NoError(t, err)
	first, err := basis.Identity(3, 2)
	require.NoError(t, err)
	second, err := matrix.NewDenseFrom(3, 2, []float64{
		0, 0,
		1, 0,
		0, 1,
	})
	require.NoError(t, err)

	return &tour.Path{Bases: []*matrix.Dense{first, second}, Data: ds, ManipVar: tour.NoManipVar}
}

func twoFrameTable(t testing.TB) *tour.FrameTable {
	t.Helper()
	ft, err := tour.Assemble(twoFramePath(t))
	require.NoError(t, err)

	return ft
}

var errBroken = errors.New("broken writer")

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errBroken }

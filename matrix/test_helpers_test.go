// SPDX-License-Identifier: MIT
// Package matrix_test contains shared test fixtures.
//
// Purpose:
//   - Deterministic small matrices and a wrapper that forces the At/Set
//     fallback paths of every kernel.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtour/matrix"
)

// tol is the absolute tolerance used for floating-point comparisons.
const tol = 1e-9

// hide wraps any Matrix to hide its concrete type, so kernels under test
// cannot take the *Dense fast path.
type hide struct{ matrix.Matrix }

// nanAt is a read-only Matrix whose cell (1,1) is NaN; Dense cannot hold one
// under the default numeric policy.
type nanAt struct{ hide }

func (n nanAt) At(i, j int) (float64, error) {
	if i == 1 && j == 1 {
		return math.NaN(), nil
	}

	return n.hide.At(i, j)
}

// MustDense allocates an r×c zero *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustFrom builds an r×c *Dense from row-major values or fails the test.
func MustFrom(t testing.TB, r, c int, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}

// requireMatrixClose asserts element-wise closeness within tol.
func requireMatrixClose(t testing.TB, want, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "want:\n%v\ngot:\n%v", want, got)
}

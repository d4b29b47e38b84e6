// SPDX-License-Identifier: MIT
// Package matrix: numeric policy defaults.
//
// Purpose:
//   - Single source of truth for tolerances and the finite-value policy used
//     by constructors and structural checks.
//
// Notes:
//   - Projection bases are unit-scale objects, so absolute tolerances are used
//     throughout; there is no relative scaling of eps.
package matrix

const (
	// DefaultEpsilon is the non-negative tolerance used by structural checks
	// (symmetry, rank deficiency in Gram–Schmidt).
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true

	// DefaultEigenTol is the off-diagonal convergence threshold for Jacobi
	// sweeps on the small symmetric matrices used by PCA and SVD helpers.
	DefaultEigenTol = 1e-12

	// DefaultEigenMaxIter caps the number of Jacobi rotations. Generous for
	// the p ≤ a few hundred sizes a tour works with.
	DefaultEigenMaxIter = 100000
)

// SPDX-License-Identifier: MIT
// Package basis: data-driven starting frames and manipulation-variable choice.

package basis

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvtour/matrix"
)

// PCA returns the top-d principal-component loadings of data (n×p) as the
// columns of a p×d basis.
//
// Implementation:
//   - Stage 1: validate data (non-nil, finite, n ≥ 2, p ≥ d ≥ 1).
//   - Stage 2: sample covariance (matrix.Covariance), Jacobi eigen-decomposition
//     sorted by descending eigenvalue (matrix.EigenSym).
//   - Stage 3: keep the first d eigenvectors and flip each column so that its
//     largest-magnitude loading is positive (first index wins ties).
//
// Behavior highlights:
//   - Repeated calls on the same data return bit-identical bases.
//   - Columns are orthonormal to machine precision (products of Jacobi rotations).
//
// Errors:
//   - ErrNilBasis (data == nil), ErrInvalidDimension (shape),
//     matrix.ErrNaNInf (non-finite data), matrix.ErrMatrixEigenFailed.
//
// Complexity: O(n*p^2 + iters*p^2).
func PCA(data matrix.Matrix, d int) (*matrix.Dense, error) {
	if data == nil {
		return nil, basisErrorf(opPCA, ErrNilBasis)
	}
	n, p := data.Rows(), data.Cols()
	if err := checkShape(p, d); err != nil {
		return nil, basisErrorf(opPCA, err)
	}
	if n < 2 {
		return nil, basisErrorf(opPCA, fmt.Errorf("n=%d observations: %w", n, ErrInvalidDimension))
	}
	if err := matrix.ValidateFinite(data); err != nil {
		return nil, basisErrorf(opPCA, err)
	}

	cov, _, err := matrix.Covariance(data)
	if err != nil {
		return nil, basisErrorf(opPCA, err)
	}
	// Rounding in the covariance sums must not trip the symmetry check.
	sym, err := matrix.Symmetrize(cov)
	if err != nil {
		return nil, basisErrorf(opPCA, err)
	}
	_, vecs, err := matrix.EigenSym(sym)
	if err != nil {
		return nil, basisErrorf(opPCA, err)
	}
	b, err := vecs.LeadingCols(d)
	if err != nil {
		return nil, basisErrorf(opPCA, err)
	}
	for j := 0; j < d; j++ {
		col, _ := b.Col(j)
		if col[argMaxAbs(col)] < 0 {
			for i := range col {
				col[i] = -col[i]
			}
			_ = b.SetCol(j, col)
		}
	}

	return b, nil
}

// argMaxAbs returns the index of the largest |v[i]|, lowest index on ties.
func argMaxAbs(v []float64) int {
	best := 0
	for i := 1; i < len(v); i++ {
		if math.Abs(v[i]) > math.Abs(v[best]) {
			best = i
		}
	}

	return best
}

// ManipVarOf returns the zero-based row index of the variable with the
// rank-th largest magnitude in the first column of b (rank 1 = largest).
// Ties keep the original row order.
//
// Errors: ErrNilBasis, ErrInvalidRank (rank < 1 or rank > p).
// Complexity: O(p log p).
func ManipVarOf(b matrix.Matrix, rank int) (int, error) {
	if b == nil {
		return 0, basisErrorf(opManipVar, ErrNilBasis)
	}
	p := b.Rows()
	if rank < 1 || rank > p {
		return 0, basisErrorf(opManipVar, fmt.Errorf("rank=%d p=%d: %w", rank, p, ErrInvalidRank))
	}
	mags := make([]float64, p)
	order := make([]int, p)
	for i := 0; i < p; i++ {
		v, err := b.At(i, 0)
		if err != nil {
			return 0, basisErrorf(opManipVar, err)
		}
		mags[i] = math.Abs(v)
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool { return mags[order[x]] > mags[order[y]] })

	return order[rank-1], nil
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column-wise statistical transforms used to prepare tour data and to
//     derive principal components: centering, covariance, z-scoring and
//     min-max rescaling to [0,1].
//   - Per-column summaries come from go-moremath/stats; the broadcast itself
//     is one ewShiftScaleCols pass.
//
// Exposed API (see api.go):
//   - CenterColumns(X) -> (Xc, means)
//   - Covariance(X)    -> (Cov, means)       // (Xcᵀ Xc)/(r-1)
//   - Standardize(X)   -> (Z, means, stds)   // constant column → zeros
//   - Rescale01(X)     -> (Y, mins, maxs)    // constant column → zeros
//
// Determinism:
//   - Columns are read in index order; moremath reductions are sequential.

package matrix

import (
	"github.com/aclements/go-moremath/stats"
)

const (
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
	opStandardize   = "Standardize"
	opRescale01     = "Rescale01"
)

// columns materializes every column of X as its own slice, the shape the
// moremath reducers expect.
func columns(X Matrix) ([][]float64, error) {
	d, err := toDense(X)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, d.c)
	for j := range out {
		out[j], _ = d.Col(j) // j in range
	}

	return out, nil
}

// centerColumns subtracts the per-column mean from every element.
// Implementation:
//   - Stage 1: Validate X and read its columns.
//   - Stage 2: Column means via stats.Mean.
//   - Stage 3: ewShiftScaleCols(X, means, nil).
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func centerColumns(X Matrix) (*Dense, []float64, error) {
	cols, err := columns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	means := make([]float64, len(cols))
	for j, col := range cols {
		means[j] = stats.Mean(col)
	}
	out, err := ewShiftScaleCols(X, means, nil)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return out, means, nil
}

// covariance returns the sample covariance of the columns of X.
// Implementation:
//   - Stage 1: Require at least two rows.
//   - Stage 2: Xc = centerColumns(X).
//   - Stage 3: Cov = (Xcᵀ × Xc) / (r-1), then mirror the upper triangle so the
//     result is exactly symmetric.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (r < 2).
// Complexity: Time O(r*c^2), Space O(c^2 + r*c).
func covariance(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r := X.Rows()
	if r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}
	xc, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	xt, err := Transpose(xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	prod, err := Mul(xt, xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	cov, err := Scale(prod, 1/float64(r-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	out := cov.(*Dense)
	n := out.c
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out.data[j*n+i] = out.data[i*n+j]
		}
	}

	return out, means, nil
}

// standardize z-scores every column: (x - mean)/std with the sample standard
// deviation. Columns with zero spread (or a single row) map to zeros.
// Errors: ErrNilMatrix. Complexity: Time O(r*c), Space O(r*c).
func standardize(X Matrix) (*Dense, []float64, []float64, error) {
	cols, err := columns(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opStandardize, err)
	}
	means := make([]float64, len(cols))
	sds := make([]float64, len(cols))
	inv := make([]float64, len(cols))
	for j, col := range cols {
		means[j] = stats.Mean(col)
		if len(col) > 1 {
			sds[j] = stats.StdDev(col)
		}
		if sds[j] > DefaultEpsilon {
			inv[j] = 1 / sds[j]
		}
	}
	out, err := ewShiftScaleCols(X, means, inv)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opStandardize, err)
	}

	return out, means, sds, nil
}

// rescale01 maps every column linearly onto [0,1] via (x - min)/(max - min).
// Constant columns map to zeros.
// Errors: ErrNilMatrix. Complexity: Time O(r*c), Space O(r*c).
func rescale01(X Matrix) (*Dense, []float64, []float64, error) {
	cols, err := columns(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opRescale01, err)
	}
	mins := make([]float64, len(cols))
	maxs := make([]float64, len(cols))
	inv := make([]float64, len(cols))
	for j, col := range cols {
		mins[j], maxs[j] = stats.Bounds(col)
		if span := maxs[j] - mins[j]; span > 0 {
			inv[j] = 1 / span
		}
	}
	out, err := ewShiftScaleCols(X, mins, inv)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opRescale01, err)
	}

	return out, mins, maxs, nil
}

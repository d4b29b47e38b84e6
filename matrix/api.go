// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Thin, intention-revealing entry points over the canonical kernels.
//   - No logic duplication: each facade composes or forwards.
//
// AI-Hints:
//   - NewEye(p, d) is the canonical "first d coordinate axes" basis.
//   - Symmetrize before EigenSym when the input came out of floating-point
//     products that may have drifted from exact symmetry.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewEye returns a rows×cols matrix with ones on the main diagonal and zeros
// elsewhere. For rows ≥ cols its columns are the first cols standard axes.
// Errors: ErrInvalidDimensions. Complexity: O(rows*cols).
func NewEye(rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows && i < cols; i++ {
		m.data[i*cols+i] = 1
	}

	return m, nil
}

// NewIdentity returns I_n.
func NewIdentity(n int) (*Dense, error) { return NewEye(n, n) }

// Symmetrize returns (m + mᵀ)/2. Composition: Transpose → Add → Scale.
// Complexity: O(rc).
func Symmetrize(m Matrix) (Matrix, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	sum, err := Add(m, mt)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}

	return Scale(sum, 0.5)
}

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (bad tolerances).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// EigenSym is EigenSorted with the package defaults for tolerance and
// iteration cap: eigenvalues in descending order, eigenvectors as columns.
func EigenSym(m Matrix) ([]float64, *Dense, error) {
	return EigenSorted(m, DefaultEigenTol, DefaultEigenMaxIter)
}

// CenterColumns subtracts per-column means; returns the centered copy and the means.
func CenterColumns(X Matrix) (*Dense, []float64, error) { return centerColumns(X) }

// Covariance returns the c×c sample covariance of the columns of X and the
// column means. Requires at least two rows.
func Covariance(X Matrix) (*Dense, []float64, error) { return covariance(X) }

// Standardize z-scores every column (sample standard deviation).
// Returns the transformed copy, the means and the standard deviations.
func Standardize(X Matrix) (*Dense, []float64, []float64, error) { return standardize(X) }

// Rescale01 maps every column onto [0,1]; returns the copy, minima and maxima.
func Rescale01(X Matrix) (*Dense, []float64, []float64, error) { return rescale01(X) }

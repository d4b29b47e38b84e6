// SPDX-License-Identifier: MIT
// Package matrix: orthonormal column sets.
//
// Purpose:
//   - Orthonormalize the columns of a tall matrix (modified Gram–Schmidt).
//   - Measure how far a column set is from orthonormal.
//   - Small vector helpers (Dot, Norm) and a pivoted determinant used to
//     detect reflections between two frames.
//
// AI-Hints:
//   - A projection basis is a p×d Dense with orthonormal columns; every
//     constructor in the tour packages ends in GramSchmidt.

package matrix

import (
	"fmt"
	"math"
)

const (
	opGramSchmidt = "GramSchmidt"
	opOrthoErr    = "OrthonormalityError"
	opDet         = "Det"
)

// Dot returns Σ a[i]*b[i]. Panics are avoided by iterating over the shorter slice.
func Dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	acc := ZeroSum
	for i := 0; i < n; i++ {
		acc += a[i] * b[i]
	}

	return acc
}

// Norm returns the Euclidean length of v.
func Norm(v []float64) float64 {
	return math.Sqrt(Dot(v, v))
}

// GramSchmidt returns a new matrix whose columns are the orthonormalized
// columns of m, processed left to right.
// Implementation:
//   - Stage 1: copy m into a Dense work buffer.
//   - Stage 2: for each column j, subtract its projection on columns 0..j-1
//     twice (modified Gram–Schmidt with one re-orthogonalization pass).
//   - Stage 3: normalize; a residual norm ≤ DefaultEpsilon is rank deficiency.
//
// Behavior highlights:
//   - Column j of the result spans the same space as columns 0..j of m.
//   - An already orthonormal input is returned unchanged up to rounding.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (Cols > Rows), ErrNaNInf, ErrSingular.
//
// Complexity:
//   - Time O(r*c^2), Space O(r*c).
func GramSchmidt(m Matrix) (*Dense, error) {
	if err := ValidateFinite(m); err != nil {
		return nil, matrixErrorf(opGramSchmidt, err)
	}
	if m.Cols() > m.Rows() {
		return nil, matrixErrorf(opGramSchmidt, ErrDimensionMismatch)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opGramSchmidt, err)
	}
	out := src.Copy()
	cols := make([][]float64, out.c)
	for j := range cols {
		cols[j], _ = out.Col(j) // j in range
	}

	for j := 0; j < len(cols); j++ {
		v := cols[j]
		for pass := 0; pass < 2; pass++ {
			for k := 0; k < j; k++ {
				proj := Dot(cols[k], v)
				for i := range v {
					v[i] -= proj * cols[k][i]
				}
			}
		}
		nv := Norm(v)
		if nv <= DefaultEpsilon {
			return nil, matrixErrorf(opGramSchmidt, fmt.Errorf("column %d: %w", j, ErrSingular))
		}
		for i := range v {
			v[i] /= nv
		}
		_ = out.SetCol(j, v) // shape and finiteness already established
	}

	return out, nil
}

// OrthonormalityError returns max |(mᵀm − I)[i,j]|, zero for a perfectly
// orthonormal column set.
// Composition: Transpose → Mul → Sub(I) → Do (max-abs scan).
// Errors: ErrNilMatrix. Complexity: O(r*c^2).
func OrthonormalityError(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opOrthoErr, err)
	}
	mt, err := Transpose(m)
	if err != nil {
		return 0, matrixErrorf(opOrthoErr, err)
	}
	gram, err := Mul(mt, m)
	if err != nil {
		return 0, matrixErrorf(opOrthoErr, err)
	}
	eye, err := NewIdentity(m.Cols())
	if err != nil {
		return 0, matrixErrorf(opOrthoErr, err)
	}
	diff, err := Sub(gram, eye)
	if err != nil {
		return 0, matrixErrorf(opOrthoErr, err)
	}
	worst := 0.0
	diff.(*Dense).Do(func(_, _ int, v float64) bool {
		if a := math.Abs(v); a > worst || math.IsNaN(a) {
			worst = a
		}
		return true
	})

	return worst, nil
}

// Det returns the determinant of a square matrix using Gaussian elimination
// with partial pivoting on a copy.
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
// Complexity: Time O(n^3), Space O(n^2).
//
// AI-Hints:
//   - Only the sign matters to callers comparing frame orientation; an exact
//     zero pivot column returns 0 without error.
func Det(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	src, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	a := src.Copy()
	n := a.r
	det := 1.0
	for col := 0; col < n; col++ {
		piv := col
		for i := col + 1; i < n; i++ {
			if math.Abs(a.data[i*n+col]) > math.Abs(a.data[piv*n+col]) {
				piv = i
			}
		}
		if a.data[piv*n+col] == 0 {
			return 0, nil
		}
		if piv != col {
			for j := 0; j < n; j++ {
				a.data[col*n+j], a.data[piv*n+j] = a.data[piv*n+j], a.data[col*n+j]
			}
			det = -det
		}
		pv := a.data[col*n+col]
		det *= pv
		for i := col + 1; i < n; i++ {
			f := a.data[i*n+col] / pv
			if f == 0 {
				continue
			}
			for j := col; j < n; j++ {
				a.data[i*n+j] -= f * a.data[col*n+j]
			}
		}
	}

	return det, nil
}

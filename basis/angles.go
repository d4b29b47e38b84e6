// SPDX-License-Identifier: MIT
// Package basis: principal angles between projection planes.

package basis

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvtour/matrix"
)

// PrincipalAngles returns the principal angles between span(a) and span(b),
// in ascending order, for two orthonormal bases with the same row count.
// There are min(da, db) angles, each in [0, π/2].
//
// Implementation:
//   - Stage 1: M = aᵀb; right singular vectors v_i of M from the Jacobi
//     eigen-decomposition of MᵀM (descending).
//   - Stage 2: cos θ_i = ‖M v_i‖ and sin θ_i = ‖b v_i − a M v_i‖;
//     θ_i = atan2(sin, cos), which stays accurate for angles near 0 where
//     acos of a singular value would not.
//
// Errors: ErrNilBasis, ErrInvalidDimension (row counts differ).
// Complexity: O(p*da*db + iters*db^2).
func PrincipalAngles(a, b matrix.Matrix) ([]float64, error) {
	if a == nil || b == nil {
		return nil, basisErrorf(opAngles, ErrNilBasis)
	}
	if a.Rows() != b.Rows() {
		return nil, basisErrorf(opAngles, fmt.Errorf("rows %d vs %d: %w", a.Rows(), b.Rows(), ErrInvalidDimension))
	}
	at, err := matrix.Transpose(a)
	if err != nil {
		return nil, basisErrorf(opAngles, err)
	}
	m, err := matrix.Mul(at, b)
	if err != nil {
		return nil, basisErrorf(opAngles, err)
	}
	mt, err := matrix.Transpose(m)
	if err != nil {
		return nil, basisErrorf(opAngles, err)
	}
	mtm, err := matrix.Mul(mt, m)
	if err != nil {
		return nil, basisErrorf(opAngles, err)
	}
	if mtm, err = matrix.Symmetrize(mtm); err != nil {
		return nil, basisErrorf(opAngles, err)
	}
	_, v, err := matrix.EigenSym(mtm)
	if err != nil {
		return nil, basisErrorf(opAngles, err)
	}

	k := min(a.Cols(), b.Cols())
	angles := make([]float64, k)
	for i := 0; i < k; i++ {
		vi, _ := v.Col(i)
		mv, err := matrix.MatVec(m, vi)
		if err != nil {
			return nil, basisErrorf(opAngles, err)
		}
		bv, err := matrix.MatVec(b, vi)
		if err != nil {
			return nil, basisErrorf(opAngles, err)
		}
		amv, err := matrix.MatVec(a, mv)
		if err != nil {
			return nil, basisErrorf(opAngles, err)
		}
		for r := range bv {
			bv[r] -= amv[r]
		}
		angles[i] = math.Atan2(matrix.Norm(bv), matrix.Norm(mv))
	}
	sort.Float64s(angles)

	return angles, nil
}

// Distance is the geodesic distance between two planes: the Euclidean norm
// of their principal angles. Zero for identical spans, regardless of the
// orientation of the columns inside the span.
//
// Errors: those of PrincipalAngles.
func Distance(a, b matrix.Matrix) (float64, error) {
	angles, err := PrincipalAngles(a, b)
	if err != nil {
		return 0, err
	}
	var ss float64
	for _, t := range angles {
		ss += t * t
	}

	return math.Sqrt(ss), nil
}

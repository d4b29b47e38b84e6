// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Private column-broadcast kernels (ew*) shared by the statistics layer:
//     out[i,j] = (X[i,j] - shift[j]) * scale[j].
//   - Tolerance comparison of two matrices (AllClose).
//
// Determinism & Performance:
//   - Fixed i→j loops over the flat row-major buffer after toDense.
//   - One output allocation per call.

package matrix

import "math"

const (
	opShiftScale = "shiftScaleCols"
	opAllClose   = "AllClose"
)

// ewShiftScaleCols computes out[i,j] = (X[i,j] - shift[j]) * scale[j].
// A nil shift means no shift, a nil scale means unit scale.
// Time: O(r*c). Space: O(r*c).
//
// AI-Hint: centering is (means, nil); z-scoring is (means, 1/std);
// min-max rescaling is (mins, 1/range).
func ewShiftScaleCols(X Matrix, shift, scale []float64) (*Dense, error) {
	d, err := toDense(X)
	if err != nil {
		return nil, matrixErrorf(opShiftScale, err)
	}
	if (shift != nil && len(shift) != d.c) || (scale != nil && len(scale) != d.c) {
		return nil, matrixErrorf(opShiftScale, ErrDimensionMismatch)
	}
	out := d.Copy()
	err = out.Apply(func(_, j int, v float64) float64 {
		if shift != nil {
			v -= shift[j]
		}
		if scale != nil {
			v *= scale[j]
		}
		return v
	})
	if err != nil {
		return nil, matrixErrorf(opShiftScale, err)
	}

	return out, nil
}

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if every element satisfies the relation.
// Negative tolerances are normalized to their absolute value.
// Time: O(r*c). Space: O(1) for Dense operands.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := toDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := toDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for idx := range da.data {
		if math.Abs(da.data[idx]-db.data[idx]) > atol+rtol*math.Abs(db.data[idx]) {
			return false, nil
		}
	}

	return true, nil
}

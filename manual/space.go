// SPDX-License-Identifier: MIT
// Package manual: manipulation space construction and rotation.

package manual

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtour/basis"
	"github.com/katalvlaran/lvtour/matrix"
)

// degenerateEps is the residual norm at or below which the manipulation
// variable counts as lying in the basis span.
const degenerateEps = 1e-9

// manipDim is the column count of a manipulation space for a 2D basis.
const manipDim = 3

// CreateManipSpace extends the p×d orthonormal basis b with the unit
// direction of variable k orthogonal to span(b), returning [b | u] (p×(d+1)).
//
// Implementation:
//   - Stage 1: validate b (orthonormal, p×d) and 0 ≤ k < p.
//   - Stage 2: u = e_k − b·bᵀe_k, projected out a second time for accuracy.
//   - Stage 3: ‖u‖ ≤ 1e-9 ⇒ ErrDegenerateManipulation; else append u/‖u‖.
//
// Behavior highlights:
//   - The first d columns of the result are an exact copy of b.
//   - Row k of the result has unit norm: e_k lies in the extended span.
//
// Errors: basis.ErrNilBasis, basis.ErrInvalidDimension (k out of range),
// basis.ErrInvalidBasis, ErrDegenerateManipulation.
// Complexity: O(p*d).
func CreateManipSpace(b matrix.Matrix, k int) (*matrix.Dense, error) {
	if b == nil {
		return nil, manualErrorf(opCreate, basis.ErrNilBasis)
	}
	if err := basis.Validate(b, b.Cols()); err != nil {
		return nil, manualErrorf(opCreate, err)
	}
	p := b.Rows()
	if k < 0 || k >= p {
		return nil, manualErrorf(opCreate, fmt.Errorf("manip var %d outside [0,%d): %w", k, p, basis.ErrInvalidDimension))
	}
	u, err := residual(b, k)
	if err != nil {
		return nil, manualErrorf(opCreate, err)
	}
	if matrix.Norm(u) <= degenerateEps {
		return nil, manualErrorf(opCreate, fmt.Errorf("var %d: %w", k, ErrDegenerateManipulation))
	}

	return appendUnitColumn(b, u)
}

// residual returns e_k with its projection on span(b) removed twice
// (classical Gram–Schmidt with one re-orthogonalization).
func residual(b matrix.Matrix, k int) ([]float64, error) {
	p, d := b.Rows(), b.Cols()
	u := make([]float64, p)
	u[k] = 1
	col := make([]float64, p)
	for pass := 0; pass < 2; pass++ {
		for j := 0; j < d; j++ {
			for i := 0; i < p; i++ {
				v, err := b.At(i, j)
				if err != nil {
					return nil, err
				}
				col[i] = v
			}
			proj := matrix.Dot(col, u)
			for i := range u {
				u[i] -= proj * col[i]
			}
		}
	}

	return u, nil
}

// appendUnitColumn returns [b | u/‖u‖].
func appendUnitColumn(b matrix.Matrix, u []float64) (*matrix.Dense, error) {
	p, d := b.Rows(), b.Cols()
	out, err := matrix.NewDense(p, d+1)
	if err != nil {
		return nil, err
	}
	nu := matrix.Norm(u)
	for i := 0; i < p; i++ {
		for j := 0; j < d; j++ {
			v, err := b.At(i, j)
			if err != nil {
				return nil, err
			}
			_ = out.Set(i, j, v)
		}
		_ = out.Set(i, d, u[i]/nu)
	}

	return out, nil
}

// completeManipSpace is the fallback for a degenerate manipulation variable:
// it extends b with the standard direction e_j that has the largest residual
// against span(b) (lowest j on ties). Returns the space and the chosen j.
func completeManipSpace(b matrix.Matrix) (*matrix.Dense, int, error) {
	best, bestNorm := -1, 0.0
	var bestU []float64
	for j := 0; j < b.Rows(); j++ {
		u, err := residual(b, j)
		if err != nil {
			return nil, 0, err
		}
		if n := matrix.Norm(u); n > bestNorm+degenerateEps {
			best, bestNorm, bestU = j, n, u
		}
	}
	if best < 0 {
		return nil, 0, ErrDegenerateManipulation
	}
	ms, err := appendUnitColumn(b, bestU)
	if err != nil {
		return nil, 0, err
	}

	return ms, best, nil
}

// rotation returns the 3×3 rotation by phi in the plane spanned by
// (cos θ, sin θ, 0) and e3; the orthogonal in-plane direction is fixed.
// A row (r cos θ, r sin θ, z) maps to in-plane radius r cos φ − z sin φ.
func rotation(theta, phi float64) *matrix.Dense {
	c, s := math.Cos(theta), math.Sin(theta)
	cp, sp := math.Cos(phi), math.Sin(phi)
	k := cp - 1
	r, _ := matrix.NewDenseFrom(manipDim, manipDim, []float64{
		1 + k*c*c, k * c * s, sp * c,
		k * c * s, 1 + k*s*s, sp * s,
		-sp * c, -sp * s, cp,
	})

	return r
}

// RotateManipSpace rotates the p×3 manipulation space ms by phi in the plane
// of the in-plane direction theta and the out-of-plane axis: ms·R with
// R = Rz(θ)·Rxz(φ)·Rz(−θ).
//
// Behavior highlights:
//   - phi = 0 returns an exact copy of ms.
//   - theta = 0 mixes only columns 0 and 2; column 1 is unchanged.
//   - Positive phi tilts the manipulation variable out of the display plane.
//
// Errors: basis.ErrNilBasis, basis.ErrInvalidDimension (ms not p×3),
// ErrInvalidAngle (non-finite theta or phi).
// Complexity: O(p).
func RotateManipSpace(ms matrix.Matrix, theta, phi float64) (*matrix.Dense, error) {
	if ms == nil {
		return nil, manualErrorf(opRotate, basis.ErrNilBasis)
	}
	if ms.Cols() != manipDim || ms.Rows() < manipDim {
		return nil, manualErrorf(opRotate, fmt.Errorf("shape %dx%d: %w", ms.Rows(), ms.Cols(), basis.ErrInvalidDimension))
	}
	if !finite(theta) || !finite(phi) {
		return nil, manualErrorf(opRotate, fmt.Errorf("theta=%v phi=%v: %w", theta, phi, ErrInvalidAngle))
	}
	out, err := matrix.Mul(ms, rotation(theta, phi))
	if err != nil {
		return nil, manualErrorf(opRotate, err)
	}

	return out.(*matrix.Dense), nil
}

// finite reports whether x is neither NaN nor ±Inf.
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

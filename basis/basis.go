// SPDX-License-Identifier: MIT
// Package basis: deterministic and stochastic basis constructors plus the
// orthonormality check every consumer runs on external input.

package basis

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-moremath/vec"

	"github.com/katalvlaran/lvtour/matrix"
)

// Tolerance is the maximum allowed |(BᵀB − I)[i,j]| for a matrix to count
// as an orthonormal basis.
const Tolerance = 1e-6

// maxRandomDraws bounds the redraws Random performs when a Gaussian sample
// happens to be rank deficient.
const maxRandomDraws = 8

// checkShape enforces p ≥ d ≥ 1.
func checkShape(p, d int) error {
	if d < 1 || p < d {
		return fmt.Errorf("p=%d d=%d: %w", p, d, ErrInvalidDimension)
	}

	return nil
}

// Identity returns the p×d basis whose top-left d×d block is I_d and whose
// remaining rows are zero: the projection onto the first d variables.
//
// Errors: ErrInvalidDimension unless p ≥ d ≥ 1.
// Complexity: O(p*d).
func Identity(p, d int) (*matrix.Dense, error) {
	if err := checkShape(p, d); err != nil {
		return nil, basisErrorf(opIdentity, err)
	}
	b, err := matrix.NewEye(p, d)
	if err != nil {
		return nil, basisErrorf(opIdentity, err)
	}

	return b, nil
}

// Random returns a p×d orthonormal basis drawn uniformly from the Stiefel
// manifold: a standard-normal p×d sample orthonormalized column by column.
//
// Implementation:
//   - Stage 1: resolve the RNG (WithSeed / WithRand, wall clock otherwise).
//   - Stage 2: draw p*d values with NormFloat64 in row-major order.
//   - Stage 3: matrix.GramSchmidt; a rank-deficient draw is redrawn.
//
// Errors: ErrInvalidDimension; matrix.ErrSingular if every draw was degenerate.
// Determinism: identical seeds yield identical bases.
// Complexity: O(p*d^2).
func Random(p, d int, opts ...Option) (*matrix.Dense, error) {
	if err := checkShape(p, d); err != nil {
		return nil, basisErrorf(opRandom, err)
	}
	cfg := newConfig(opts...)

	vals := make([]float64, p*d)
	var lastErr error
	for draw := 0; draw < maxRandomDraws; draw++ {
		for i := range vals {
			vals[i] = cfg.rng.NormFloat64()
		}
		m, err := matrix.NewDenseFrom(p, d, vals)
		if err != nil {
			return nil, basisErrorf(opRandom, err)
		}
		b, err := matrix.GramSchmidt(m)
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, matrix.ErrSingular) {
			return nil, basisErrorf(opRandom, err)
		}
		lastErr = err
	}

	return nil, basisErrorf(opRandom, lastErr)
}

// HalfCircle returns a p×2 basis whose axes are spread evenly over a half
// circle: variable i sits at angle iπ/p. The result is deterministic and
// independent of any data, a neutral starting frame for p ≥ 2.
//
// Errors: ErrInvalidDimension when p < 2.
// Complexity: O(p).
func HalfCircle(p int) (*matrix.Dense, error) {
	if err := checkShape(p, 2); err != nil {
		return nil, basisErrorf(opHalfCircle, err)
	}
	angles := vec.Linspace(0, math.Pi, p+1)[:p]
	vals := make([]float64, 0, 2*p)
	for _, a := range angles {
		vals = append(vals, math.Sin(a), math.Cos(a))
	}
	m, err := matrix.NewDenseFrom(p, 2, vals)
	if err != nil {
		return nil, basisErrorf(opHalfCircle, err)
	}
	b, err := matrix.GramSchmidt(m)
	if err != nil {
		return nil, basisErrorf(opHalfCircle, err)
	}

	return b, nil
}

// Validate checks that b is a p×d basis with orthonormal columns.
//
// Errors (in order):
//   - ErrNilBasis (b == nil).
//   - ErrInvalidDimension (Cols != d, or p < d, or d < 1).
//   - ErrInvalidBasis (non-finite entries, or ‖BᵀB − I‖_max > Tolerance).
func Validate(b matrix.Matrix, d int) error {
	if b == nil {
		return basisErrorf(opValidate, ErrNilBasis)
	}
	if b.Cols() != d {
		return basisErrorf(opValidate, fmt.Errorf("cols=%d want %d: %w", b.Cols(), d, ErrInvalidDimension))
	}
	if err := checkShape(b.Rows(), d); err != nil {
		return basisErrorf(opValidate, err)
	}
	if err := matrix.ValidateFinite(b); err != nil {
		return basisErrorf(opValidate, fmt.Errorf("%w: %w", ErrInvalidBasis, err))
	}
	dev, err := matrix.OrthonormalityError(b)
	if err != nil {
		return basisErrorf(opValidate, err)
	}
	if dev > Tolerance {
		return basisErrorf(opValidate, fmt.Errorf("deviation %.3g: %w", dev, ErrInvalidBasis))
	}

	return nil
}

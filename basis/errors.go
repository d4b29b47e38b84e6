// SPDX-License-Identifier: MIT
// Package basis: sentinel error set.
//
// Kernels wrap these with an operation tag (basisErrorf); callers match them
// with errors.Is. Every message is prefixed "basis: ...".

package basis

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension indicates a shape that cannot hold a projection
	// basis: p < d, d < 1, or a row/column count that disagrees with the caller.
	ErrInvalidDimension = errors.New("basis: invalid dimension")

	// ErrInvalidBasis signals that BᵀB deviates from I_d by more than
	// Tolerance, or that the basis holds non-finite values.
	ErrInvalidBasis = errors.New("basis: columns are not orthonormal")

	// ErrInvalidRank is returned by ManipVarOf when rank is outside [1, p].
	ErrInvalidRank = errors.New("basis: rank out of range")

	// ErrNilBasis indicates a nil basis or data matrix argument.
	ErrNilBasis = errors.New("basis: nil matrix")
)

// Operation tags used in error wrapping.
const (
	opIdentity   = "Identity"
	opRandom     = "Random"
	opHalfCircle = "HalfCircle"
	opPCA        = "PCA"
	opManipVar   = "ManipVarOf"
	opValidate   = "Validate"
	opAngles     = "PrincipalAngles"
)

// basisErrorf wraps err with an operation tag, preserving it for errors.Is.
func basisErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

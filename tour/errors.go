// SPDX-License-Identifier: MIT
// Package tour: sentinel error set.
//
// Every message is prefixed "tour: ..."; operations wrap these with their
// name via tourErrorf and callers match with errors.Is. Basis problems
// surface as basis.ErrInvalidBasis from the basis package.

package tour

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates that a basis row count, a name list or a
	// label list disagrees with the number of data columns.
	ErrDimensionMismatch = errors.New("tour: dimension mismatch")

	// ErrInvalidData signals missing data or NaN/±Inf observations.
	ErrInvalidData = errors.New("tour: invalid data")

	// ErrInvalidDimension indicates a projection dimension the assembler
	// cannot lay out on a plane (d > 2).
	ErrInvalidDimension = errors.New("tour: invalid projection dimension")

	// ErrNilPath is returned for a nil path or a path without bases.
	ErrNilPath = errors.New("tour: nil or empty path")
)

// Operation tags used in error wrapping.
const (
	opNewDataset  = "NewDataset"
	opRescale01   = "Rescale01"
	opStandardize = "Standardize"
	opValidate    = "Path.Validate"
	opAssemble    = "Assemble"
)

// tourErrorf wraps err with an operation tag, preserving it for errors.Is.
func tourErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

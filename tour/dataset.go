// SPDX-License-Identifier: MIT
// Package tour: the data side of a tour.

package tour

import (
	"fmt"

	"github.com/katalvlaran/lvtour/matrix"
)

// Dataset pairs an n×p observation matrix with optional variable names.
// It is read-only once built and is shared by reference between paths.
type Dataset struct {
	X     matrix.Matrix
	Names []string
}

// NewDataset validates x and names and returns a Dataset over them.
//
// Errors:
//   - ErrInvalidData when x is nil or holds NaN/±Inf.
//   - ErrDimensionMismatch when names is non-empty and len(names) != p.
func NewDataset(x matrix.Matrix, names []string) (*Dataset, error) {
	if err := validateData(x); err != nil {
		return nil, tourErrorf(opNewDataset, err)
	}
	if len(names) != 0 && len(names) != x.Cols() {
		return nil, tourErrorf(opNewDataset, fmt.Errorf("%d names for %d columns: %w", len(names), x.Cols(), ErrDimensionMismatch))
	}

	return &Dataset{X: x, Names: names}, nil
}

// P returns the number of variables (data columns).
func (ds *Dataset) P() int { return ds.X.Cols() }

// N returns the number of observations (data rows).
func (ds *Dataset) N() int { return ds.X.Rows() }

// validateData rejects nil and non-finite observation matrices.
func validateData(x matrix.Matrix) error {
	if x == nil {
		return fmt.Errorf("nil data: %w", ErrInvalidData)
	}
	if err := matrix.ValidateFinite(x); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	return nil
}

// Rescale01 maps every column of x onto [0,1] with (x - min)/(max - min).
// Constant columns become 0. Errors: ErrInvalidData.
func Rescale01(x matrix.Matrix) (*matrix.Dense, error) {
	if err := validateData(x); err != nil {
		return nil, tourErrorf(opRescale01, err)
	}
	out, _, _, err := matrix.Rescale01(x)
	if err != nil {
		return nil, tourErrorf(opRescale01, err)
	}

	return out, nil
}

// Standardize centres every column of x on its mean and divides by its
// sample standard deviation. Constant columns become 0. Errors: ErrInvalidData.
func Standardize(x matrix.Matrix) (*matrix.Dense, error) {
	if err := validateData(x); err != nil {
		return nil, tourErrorf(opStandardize, err)
	}
	out, _, _, err := matrix.Standardize(x)
	if err != nil {
		return nil, tourErrorf(opStandardize, err)
	}

	return out, nil
}

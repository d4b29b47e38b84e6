// SPDX-License-Identifier: MIT
// Package tour: the path of projection bases a tour walks through.

package tour

import (
	"fmt"

	"github.com/katalvlaran/lvtour/basis"
	"github.com/katalvlaran/lvtour/matrix"
)

// NoManipVar marks a path that was not produced by a manual tour.
const NoManipVar = -1

// Path is an ordered sequence of p×d orthonormal bases, optionally paired
// with the data it is meant to project. ManipVar is the zero-based
// manipulation variable of a manual tour, NoManipVar otherwise.
//
// A Path is immutable once built: producers hand out fresh bases and
// consumers must not write into them.
type Path struct {
	Bases    []*matrix.Dense
	Data     *Dataset
	ManipVar int
}

// Len returns the number of frames.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}

	return len(p.Bases)
}

// Shape returns (p, d) of the first basis, or (0, 0) for an empty path.
func (p *Path) Shape() (rows, cols int) {
	if p.Len() == 0 || p.Bases[0] == nil {
		return 0, 0
	}

	return p.Bases[0].Shape()
}

// Validate checks that the path is non-empty, that every basis has the shape
// of the first and is orthonormal within basis.Tolerance, and that the
// attached data (if any) has one column per basis row.
//
// Errors: ErrNilPath, ErrDimensionMismatch, basis.ErrNilBasis,
// basis.ErrInvalidDimension, basis.ErrInvalidBasis (wrapped with the frame index).
func (p *Path) Validate() error {
	if p.Len() == 0 {
		return tourErrorf(opValidate, ErrNilPath)
	}
	rows, cols := p.Shape()
	for f, b := range p.Bases {
		if b == nil {
			return tourErrorf(opValidate, fmt.Errorf("frame %d: %w", f, basis.ErrNilBasis))
		}
		if b.Rows() != rows {
			return tourErrorf(opValidate, fmt.Errorf("frame %d has %d rows, want %d: %w", f, b.Rows(), rows, ErrDimensionMismatch))
		}
		if err := basis.Validate(b, cols); err != nil {
			return tourErrorf(opValidate, fmt.Errorf("frame %d: %w", f, err))
		}
	}
	if p.Data != nil && p.Data.X != nil && p.Data.P() != rows {
		return tourErrorf(opValidate, fmt.Errorf("data has %d columns, bases have %d rows: %w", p.Data.P(), rows, ErrDimensionMismatch))
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package geodesic: sentinel error set.
//
// Target validation reports basis.ErrInvalidBasis / basis.ErrInvalidDimension
// from the basis package; the sentinels here cover the call itself.

package geodesic

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStep is returned for a non-positive or non-finite angular step.
	ErrInvalidStep = errors.New("geodesic: step must be positive and finite")

	// ErrTooFewTargets is returned when no target basis is supplied.
	ErrTooFewTargets = errors.New("geodesic: at least one target basis required")

	// ErrNoComplement is returned when two targets differ by a reflection
	// inside the same plane and no direction outside it exists (p = d).
	ErrNoComplement = errors.New("geodesic: reflected pair has no complementary direction")
)

const (
	opInterpolate = "Interpolate"
	opPair        = "pair"
)

// geodesicErrorf wraps err with an operation tag, preserving it for errors.Is.
func geodesicErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// SPDX-License-Identifier: MIT
// Package manual: sentinel error set.
//
// Shape problems reuse basis.ErrInvalidDimension; everything specific to
// manipulation lives here. Messages are prefixed "manual: ...".

package manual

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateManipulation indicates that the manipulation variable
	// already lies in the span of the basis, so no out-of-plane direction
	// can be derived from it.
	ErrDegenerateManipulation = errors.New("manual: manipulation variable lies in the basis span")

	// ErrInvalidAngle signals a non-finite theta or phi, or a non-positive
	// or non-finite angle step. Angles are never clamped.
	ErrInvalidAngle = errors.New("manual: invalid angle")

	// ErrInvalidRange is returned when phiMin > phiMax or a bound is not finite.
	ErrInvalidRange = errors.New("manual: invalid phi range")
)

// Operation tags used in error wrapping.
const (
	opCreate = "CreateManipSpace"
	opRotate = "RotateManipSpace"
	opTour   = "ManualTour"
)

// manualErrorf wraps err with an operation tag, preserving it for errors.Is.
func manualErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

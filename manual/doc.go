// SPDX-License-Identifier: MIT

// Package manual implements the manual tour: one chosen variable is rotated
// into and out of the display plane while the projection stays orthonormal.
//
// The building blocks are exposed separately:
//
//   - CreateManipSpace(b, k) extends a p×2 basis with the direction of
//     variable k orthogonal to the plane, giving a p×3 manipulation space.
//   - RotateManipSpace(ms, theta, phi) rotates that space by phi in the plane
//     of the in-plane direction theta and the out-of-plane axis.
//   - ManualTour(b, k, opts...) sweeps phi from its current value to the
//     lower bound, up to the upper bound and back, and returns the resulting
//     tour.Path.
//
// Angles are radians. Variable indices are zero-based.
package manual

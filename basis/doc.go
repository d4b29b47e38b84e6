// SPDX-License-Identifier: MIT

// Package basis builds and checks projection bases: p×d matrices with
// orthonormal columns that map p-dimensional observations onto a
// d-dimensional display.
//
// Constructors:
//
//   - Identity(p, d): the first d coordinate axes.
//   - Random(p, d, WithSeed(s)): an orthonormalized Gaussian draw.
//   - PCA(data, d): leading principal-component loadings, sign-normalized.
//   - HalfCircle(p): axes fanned evenly over a half circle.
//
// Helpers:
//
//   - Validate(b, d) rejects anything whose BᵀB differs from I by more than
//     Tolerance.
//   - ManipVarOf(b, rank) picks the variable with the rank-th largest
//     contribution to the first projection axis.
//   - PrincipalAngles and Distance measure how far apart two planes are.
//
// Row i of a basis always corresponds to variable i (zero-based).
package basis

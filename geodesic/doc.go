// SPDX-License-Identifier: MIT

// Package geodesic connects target projection bases along geodesics of the
// Grassmann manifold, so consecutive frames of a tour differ by a bounded
// angle.
//
// Interpolate(targets, step) walks every adjacent pair of targets. For a pair
// (Fa, Fz) the principal directions Ga and Gz of the two planes are found
// from the singular value decomposition of FaᵀFz; each Ga_i turns towards
// Gz_i by its principal angle τ_i while the in-plane orientation turns from
// that of Fa to that of Fz. The number of frames per pair is chosen so that
// basis.Distance between neighbours never exceeds step.
//
// Targets are copied into the output unchanged, so a path always starts at
// the first target, ends at the last one and passes through all of them.
//
//	targets := []*matrix.Dense{a, b, c}
//	path, err := geodesic.Interpolate(targets, 0.05)
//
// InterpolatePath does the same for an existing tour.Path and keeps its data
// and manipulation variable.
package geodesic

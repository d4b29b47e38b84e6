// SPDX-License-Identifier: MIT

// Package tour holds the values a tour is made of and turns them into
// something a renderer can draw.
//
// A Path is an ordered list of p×d orthonormal bases, optionally paired with
// the Dataset (n×p observations plus variable names) it projects. Paths come
// from the manual and geodesic packages or from the caller.
//
// Assemble projects the data through every basis and returns a FrameTable:
// per frame, one row per observation followed by one row per variable axis.
// A path without data yields the axis rows alone.
// FrameTable.Table exposes the same rows as a go-gg table.
//
// Rescale01 and Standardize are the usual column transforms applied to raw
// data before touring.
package tour

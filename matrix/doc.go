// SPDX-License-Identifier: MIT

// Package matrix is the small dense linear-algebra core behind the tour
// packages.
//
// It provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and a
//     NaN/Inf guard, plus copy helpers (Row, Col, SetCol, Induced, LeadingCols).
//   - Kernels over the Matrix interface: Add, Sub, Mul, Transpose, Scale,
//     MatVec, with flat-slice fast paths for *Dense operands.
//   - Jacobi symmetric eigen-decomposition (Eigen, EigenSorted, EigenSym).
//   - Orthonormal column sets: GramSchmidt, OrthonormalityError, Det.
//   - Column statistics: CenterColumns, Covariance, Standardize, Rescale01.
//
// Every failure is reported through a wrapped sentinel from errors.go; match
// with errors.Is. Nothing in the package panics on bad input.
package matrix

// SPDX-License-Identifier: MIT
// Package geodesic: in-plane orientation path.
//
// The frame F(t) = G(t)·S(t)·Vaᵀ needs S to travel from I to a fixed
// rotation A = VzᵀVa. A is factored into plane (Givens) rotations; scaling
// every factor's angle by t gives a continuous orthogonal path that hits A
// exactly at t = 1.

package geodesic

import (
	"math"

	"github.com/katalvlaran/lvtour/matrix"
)

// givensEps is the magnitude below which an entry is already zero.
const givensEps = 1e-15

// planeRot is a rotation by angle in the (p, q) coordinate plane.
type planeRot struct {
	p, q  int
	angle float64
}

// factorRotation returns plane rotations R_1..R_m with A = R_1·…·R_m for a
// d×d rotation A (det +1).
//
// Implementation:
//   - Stage 1: Givens elimination below the diagonal, column by column,
//     bottom-up; each step records the rotation whose transpose it applied.
//   - Stage 2: the remaining diagonal holds ±1 with an even number of −1;
//     consecutive −1 pairs become rotations by π.
//
// Complexity: O(d^3).
func factorRotation(a *matrix.Dense) []planeRot {
	w := a.Copy()
	d := w.Rows()
	var rots []planeRot
	for j := 0; j < d-1; j++ {
		for i := d - 1; i > j; i-- {
			top, _ := w.At(i-1, j)
			bot, _ := w.At(i, j)
			if math.Abs(bot) <= givensEps {
				continue
			}
			phi := math.Atan2(bot, top)
			rotateRows(w, i-1, i, -phi)
			rots = append(rots, planeRot{p: i - 1, q: i, angle: phi})
		}
	}

	var neg []int
	for i := 0; i < d; i++ {
		if v, _ := w.At(i, i); v < 0 {
			neg = append(neg, i)
		}
	}
	for k := 0; k+1 < len(neg); k += 2 {
		rots = append(rots, planeRot{p: neg[k], q: neg[k+1], angle: math.Pi})
	}

	return rots
}

// rotateRows applies P(p,q,θ) from the left: rows p and q are mixed.
func rotateRows(w *matrix.Dense, p, q int, theta float64) {
	c, s := math.Cos(theta), math.Sin(theta)
	rp, _ := w.Row(p)
	rq, _ := w.Row(q)
	for j := range rp {
		vp, vq := rp[j], rq[j]
		_ = w.Set(p, j, c*vp-s*vq)
		_ = w.Set(q, j, s*vp+c*vq)
	}
}

// rotateCols applies P(p,q,θ) from the right: columns p and q are mixed.
func rotateCols(w *matrix.Dense, p, q int, theta float64) {
	c, s := math.Cos(theta), math.Sin(theta)
	cp, _ := w.Col(p)
	cq, _ := w.Col(q)
	for i := range cp {
		vp, vq := cp[i], cq[i]
		cp[i], cq[i] = c*vp+s*vq, -s*vp+c*vq
	}
	_ = w.SetCol(p, cp)
	_ = w.SetCol(q, cq)
}

// orientationAt returns S(t) = Π P(p_k, q_k, t·angle_k), a d×d rotation
// with S(0) = I and S(1) = the factored matrix.
func orientationAt(rots []planeRot, d int, t float64) *matrix.Dense {
	s, _ := matrix.NewIdentity(d)
	for _, r := range rots {
		rotateCols(s, r.p, r.q, t*r.angle)
	}

	return s
}

// orientationSpan bounds the in-plane spin of the orientation path: the sum
// of the absolute factor angles.
func orientationSpan(rots []planeRot) float64 {
	var sum float64
	for _, r := range rots {
		sum += math.Abs(r.angle)
	}

	return sum
}

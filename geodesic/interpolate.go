// SPDX-License-Identifier: MIT
// Package geodesic: interpolation between target bases.

package geodesic

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/aclements/go-moremath/vec"

	"github.com/katalvlaran/lvtour/basis"
	"github.com/katalvlaran/lvtour/matrix"
	"github.com/katalvlaran/lvtour/tour"
)

const (
	// singularEps is the singular value below which Fa·Va_i is not
	// recovered from M·Vz_i and the column is completed instead.
	singularEps = 1e-8
	// residualEps is the norm below which Gz_i has no component orthogonal
	// to Ga_i (τ_i = 0).
	residualEps = 1e-12
	// countSlack absorbs rounding in the frame count when an angle is an
	// exact multiple of the step.
	countSlack = 1e-9
)

// Interpolate connects consecutive target bases along geodesics and returns
// the resulting path.
//
// Implementation:
//   - Stage 1: step must be positive and finite; at least one target; every
//     target must be a p×d orthonormal basis with the shape of the first.
//   - Stage 2: for each adjacent pair (Fa, Fz) build a geodesic segment (see
//     newSegment) and sample it at t = vec.Linspace(0, 1, n+1), with n large
//     enough that neither the plane nor the in-plane orientation turns by
//     more than step between frames.
//   - Stage 3: the shared target of two consecutive segments is emitted once.
//
// Behavior highlights:
//   - The output starts with the first target, ends with the last, and holds
//     every target bit for bit (t = 0 and t = 1 are copied, not computed).
//   - basis.Distance between adjacent frames never exceeds step.
//   - One target yields a one-frame path.
//
// Errors: ErrInvalidStep, ErrTooFewTargets, basis.ErrNilBasis,
// basis.ErrInvalidDimension, basis.ErrInvalidBasis, ErrNoComplement.
// Complexity: O(frames * p * d^2).
func Interpolate(targets []*matrix.Dense, step float64, opts ...Option) (*tour.Path, error) {
	cfg := newConfig(opts...)
	if math.IsNaN(step) || math.IsInf(step, 0) || step <= 0 {
		return nil, geodesicErrorf(opInterpolate, fmt.Errorf("step=%v: %w", step, ErrInvalidStep))
	}
	if len(targets) == 0 {
		return nil, geodesicErrorf(opInterpolate, ErrTooFewTargets)
	}
	if targets[0] == nil {
		return nil, geodesicErrorf(opInterpolate, fmt.Errorf("target 0: %w", basis.ErrNilBasis))
	}
	p, d := targets[0].Shape()
	for i, tgt := range targets {
		if tgt == nil {
			return nil, geodesicErrorf(opInterpolate, fmt.Errorf("target %d: %w", i, basis.ErrNilBasis))
		}
		if tgt.Rows() != p {
			return nil, geodesicErrorf(opInterpolate, fmt.Errorf("target %d has %d rows, want %d: %w", i, tgt.Rows(), p, basis.ErrInvalidDimension))
		}
		if err := basis.Validate(tgt, d); err != nil {
			return nil, geodesicErrorf(opInterpolate, fmt.Errorf("target %d: %w", i, err))
		}
	}

	frames := []*matrix.Dense{targets[0].Copy()}
	for i := 1; i < len(targets); i++ {
		seg, err := newSegment(targets[i-1], targets[i])
		if err != nil {
			return nil, geodesicErrorf(opInterpolate, fmt.Errorf("targets %d-%d: %w", i-1, i, err))
		}
		n := seg.steps(step)
		ts := vec.Linspace(0, 1, n+1)
		for _, t := range ts[1:n] {
			f, err := seg.at(t)
			if err != nil {
				return nil, geodesicErrorf(opInterpolate, err)
			}
			frames = append(frames, f)
		}
		frames = append(frames, targets[i].Copy())
		cfg.logger.Debug("geodesic: segment interpolated",
			slog.Int("from", i-1),
			slog.Int("to", i),
			slog.Int("steps", n),
			slog.Float64("distance", seg.distance()),
			slog.Float64("spin", orientationSpan(seg.rots)),
		)
	}

	return &tour.Path{Bases: frames, Data: cfg.data, ManipVar: tour.NoManipVar}, nil
}

// InterpolatePath interpolates the bases of src and keeps its data and
// manipulation variable.
func InterpolatePath(src *tour.Path, step float64, opts ...Option) (*tour.Path, error) {
	if src.Len() == 0 {
		return nil, geodesicErrorf(opInterpolate, ErrTooFewTargets)
	}
	out, err := Interpolate(src.Bases, step, append([]Option{WithData(src.Data)}, opts...)...)
	if err != nil {
		return nil, err
	}
	out.ManipVar = src.ManipVar

	return out, nil
}

// segment is the geodesic from Fa to Fz:
// F(t) = G(t)·S(t)·Vaᵀ with G(t)_i = Ga_i cos(tτ_i) + Gp_i sin(tτ_i).
type segment struct {
	ga, gp *matrix.Dense // p×d principal directions at Fa and their unit normals towards Fz
	vaT    *matrix.Dense // d×d, Vaᵀ
	tau    []float64     // principal angles swept by each column
	rots   []planeRot    // factorization of S(1) = VzᵀVa
}

// newSegment computes the principal geometry between two p×d orthonormal
// bases.
//
// Implementation:
//   - Stage 1: M = Faᵀ·Fz; Vz and σ² from the sorted Jacobi eigen-decomposition
//     of MᵀM; Va_i = M·Vz_i/σ_i, Gram–Schmidt corrected, completed with
//     standard directions where σ_i ≈ 0.
//   - Stage 2: if det(Va)·det(Vz) < 0 the last Vz column and σ are negated,
//     so S(1) = VzᵀVa is a rotation and the path is continuous.
//   - Stage 3: Ga = Fa·Va, Gz = Fz·Vz, Gp_i = unit(Gz_i − σ_i Ga_i),
//     τ_i = atan2(‖Gz_i − σ_i Ga_i‖, σ_i). A negated σ with no residual
//     (an in-plane flip) travels through a complementary direction.
//
// Errors: ErrNoComplement when such a flip is needed and p = d.
func newSegment(fa, fz *matrix.Dense) (*segment, error) {
	d := fa.Cols()
	faT, err := matrix.Transpose(fa)
	if err != nil {
		return nil, err
	}
	m, err := matrix.Mul(faT, fz)
	if err != nil {
		return nil, err
	}
	mT, err := matrix.Transpose(m)
	if err != nil {
		return nil, err
	}
	mtm, err := matrix.Mul(mT, m)
	if err != nil {
		return nil, err
	}
	if mtm, err = matrix.Symmetrize(mtm); err != nil {
		return nil, err
	}
	lambdas, vz, err := matrix.EigenSym(mtm)
	if err != nil {
		return nil, err
	}

	sigma := make([]float64, d)
	vaCols := make([][]float64, d)
	for i := 0; i < d; i++ {
		sigma[i] = math.Sqrt(math.Max(0, lambdas[i]))
		if sigma[i] <= singularEps {
			continue
		}
		vzi, _ := vz.Col(i)
		mv, err := matrix.MatVec(m, vzi)
		if err != nil {
			return nil, err
		}
		for k := range mv {
			mv[k] /= sigma[i]
		}
		vaCols[i] = mv
	}
	va, err := completeColumns(vaCols, d)
	if err != nil {
		return nil, err
	}

	detA, err := matrix.Det(va)
	if err != nil {
		return nil, err
	}
	detZ, err := matrix.Det(vz)
	if err != nil {
		return nil, err
	}
	if detA*detZ < 0 {
		last, _ := vz.Col(d - 1)
		for i := range last {
			last[i] = -last[i]
		}
		_ = vz.SetCol(d-1, last)
		sigma[d-1] = -sigma[d-1]
	}

	gaM, err := matrix.Mul(fa, va)
	if err != nil {
		return nil, err
	}
	gzM, err := matrix.Mul(fz, vz)
	if err != nil {
		return nil, err
	}
	ga, gz := gaM.(*matrix.Dense), gzM.(*matrix.Dense)
	gp, err := matrix.NewZeros(fa.Rows(), d)
	if err != nil {
		return nil, err
	}
	tau := make([]float64, d)
	used := make([][]float64, 0, 2*d)
	var flipped []int
	for i := 0; i < d; i++ {
		gai, _ := ga.Col(i)
		used = append(used, gai)
	}
	for i := 0; i < d; i++ {
		gai, _ := ga.Col(i)
		r, _ := gz.Col(i)
		for k := range r {
			r[k] -= sigma[i] * gai[k]
		}
		nr := matrix.Norm(r)
		tau[i] = math.Atan2(nr, sigma[i])
		if nr <= residualEps {
			if sigma[i] < 0 {
				flipped = append(flipped, i)
			}
			continue
		}
		for k := range r {
			r[k] /= nr
		}
		_ = gp.SetCol(i, r)
		used = append(used, r)
	}
	// A column that must turn by π inside a shared plane leaves it through
	// a direction orthogonal to everything already in motion.
	for _, i := range flipped {
		w := complementDirection(used, fa.Rows())
		if w == nil {
			return nil, geodesicErrorf(opPair, ErrNoComplement)
		}
		_ = gp.SetCol(i, w)
		used = append(used, w)
	}

	vaTM, err := matrix.Transpose(va)
	if err != nil {
		return nil, err
	}
	vzT, err := matrix.Transpose(vz)
	if err != nil {
		return nil, err
	}
	end, err := matrix.Mul(vzT, va)
	if err != nil {
		return nil, err
	}

	return &segment{
		ga:   ga,
		gp:   gp,
		vaT:  vaTM.(*matrix.Dense),
		tau:  tau,
		rots: factorRotation(end.(*matrix.Dense)),
	}, nil
}

// completeColumns orthonormalizes the non-nil columns in order and fills the
// nil ones with the first standard directions independent of the rest.
func completeColumns(cols [][]float64, d int) (*matrix.Dense, error) {
	out, err := matrix.NewZeros(d, d)
	if err != nil {
		return nil, err
	}
	var done [][]float64
	orthoAgainst := func(v []float64) float64 {
		for pass := 0; pass < 2; pass++ {
			for _, q := range done {
				proj := matrix.Dot(q, v)
				for k := range v {
					v[k] -= proj * q[k]
				}
			}
		}
		return matrix.Norm(v)
	}
	next := 0
	for i := 0; i < d; i++ {
		v := cols[i]
		nv := 0.0
		if v != nil {
			nv = orthoAgainst(v)
		}
		for nv <= 0.5 && next < d {
			v = make([]float64, d)
			v[next] = 1
			next++
			nv = orthoAgainst(v)
		}
		if nv <= singularEps {
			return nil, geodesicErrorf(opPair, matrix.ErrSingular)
		}
		for k := range v {
			v[k] /= nv
		}
		done = append(done, v)
		_ = out.SetCol(i, v)
	}

	return out, nil
}

// complementDirection returns the unit standard direction of R^p with the
// largest residual against the orthonormal vectors in used (lowest index on
// ties), or nil when used already spans R^p.
func complementDirection(used [][]float64, p int) []float64 {
	var best []float64
	bestNorm := singularEps
	for j := 0; j < p; j++ {
		v := make([]float64, p)
		v[j] = 1
		for pass := 0; pass < 2; pass++ {
			for _, q := range used {
				proj := matrix.Dot(q, v)
				for k := range v {
					v[k] -= proj * q[k]
				}
			}
		}
		if nv := matrix.Norm(v); nv > bestNorm+singularEps {
			best, bestNorm = v, nv
		}
	}
	if best == nil {
		return nil
	}
	for k := range best {
		best[k] /= bestNorm
	}

	return best
}

// distance is the Euclidean norm of the swept principal angles.
func (s *segment) distance() float64 {
	var ss float64
	for _, t := range s.tau {
		ss += t * t
	}

	return math.Sqrt(ss)
}

// steps returns the number of intervals the segment is cut into so that
// neither the plane nor the orientation turns by more than step per interval.
func (s *segment) steps(step float64) int {
	n := int(math.Ceil(s.distance()/step - countSlack))
	n = max(n, int(math.Ceil(orientationSpan(s.rots)/step-countSlack)))

	return max(n, 1)
}

// at evaluates F(t) for t in [0, 1].
func (s *segment) at(t float64) (*matrix.Dense, error) {
	p, d := s.ga.Shape()
	g, err := matrix.NewZeros(p, d)
	if err != nil {
		return nil, err
	}
	for i := 0; i < d; i++ {
		a, _ := s.ga.Col(i)
		z, _ := s.gp.Col(i)
		c, sn := math.Cos(t*s.tau[i]), math.Sin(t*s.tau[i])
		for k := range a {
			a[k] = a[k]*c + z[k]*sn
		}
		_ = g.SetCol(i, a)
	}
	gs, err := matrix.Mul(g, orientationAt(s.rots, d, t))
	if err != nil {
		return nil, err
	}
	f, err := matrix.Mul(gs, s.vaT)
	if err != nil {
		return nil, err
	}

	return f.(*matrix.Dense), nil
}

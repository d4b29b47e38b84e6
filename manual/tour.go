// SPDX-License-Identifier: MIT
// Package manual: the manual tour path builder.

package manual

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvtour/basis"
	"github.com/katalvlaran/lvtour/matrix"
	"github.com/katalvlaran/lvtour/tour"
)

// displayDim is the basis dimension a manual tour works on.
const displayDim = 2

// sweepSlack absorbs rounding when a segment length is an exact multiple of
// the step, so no near-duplicate frame is emitted at the boundary.
const sweepSlack = 1e-9

// PhiSweep returns the target phi values of a manual tour: phi0 → phiMin →
// phiMax → phi0 as three half-open segments. Each segment contributes its
// start and every step strictly before its end; empty segments contribute
// nothing. When every segment is empty the result is [phi0].
//
// The sequence is loopable: its last value is within step of phi0.
func PhiSweep(phi0, phiMin, phiMax, step float64) []float64 {
	var out []float64
	out = appendSegment(out, phi0, phiMin, step)
	out = appendSegment(out, phiMin, phiMax, step)
	out = appendSegment(out, phiMax, phi0, step)
	if len(out) == 0 {
		out = append(out, phi0)
	}

	return out
}

// appendSegment appends from, from±step, ... strictly before to.
func appendSegment(dst []float64, from, to, step float64) []float64 {
	span := math.Abs(to - from)
	if span <= sweepSlack {
		return dst
	}
	n := int(math.Ceil(span/step - sweepSlack))
	dir := math.Copysign(1, to-from)
	for i := 0; i < n; i++ {
		dst = append(dst, from+dir*float64(i)*step)
	}

	return dst
}

// ManualTour builds the path that rotates variable k of the 2D basis b out
// of the display plane and back.
//
// Implementation:
//   - Stage 1: validate b (p×2, orthonormal), k, the phi range and the step.
//   - Stage 2: build the manipulation space; a variable already lying in the
//     plane gets its space completed with the standard direction of largest
//     residual (debug log) instead of failing.
//   - Stage 3: phi0 = acos(‖B[k,:]‖); theta defaults to the variable's
//     in-plane angle; for every phi of PhiSweep(phi0, min, max, step) emit the
//     first two columns of RotateManipSpace(ms, theta, phi − phi0).
//   - Stage 4: WithClosedLoop appends the first basis again.
//
// Behavior highlights:
//   - Consecutive bases differ by at most step in phi, hence by at most step
//     in principal angle.
//   - Phi bounds outside [0, π/2] are accepted with a warning.
//   - The last frame equals the first only with WithClosedLoop; otherwise
//     the path merely ends within one step of where it started.
//
// Errors: basis.ErrNilBasis, basis.ErrInvalidDimension, basis.ErrInvalidBasis,
// ErrInvalidRange, ErrInvalidAngle.
// Complexity: O(frames * p).
func ManualTour(b matrix.Matrix, k int, opts ...Option) (*tour.Path, error) {
	cfg := newConfig(opts...)
	if b == nil {
		return nil, manualErrorf(opTour, basis.ErrNilBasis)
	}
	if err := basis.Validate(b, displayDim); err != nil {
		return nil, manualErrorf(opTour, err)
	}
	p := b.Rows()
	if k < 0 || k >= p {
		return nil, manualErrorf(opTour, fmt.Errorf("manip var %d outside [0,%d): %w", k, p, basis.ErrInvalidDimension))
	}
	if p < manipDim {
		return nil, manualErrorf(opTour, fmt.Errorf("p=%d leaves no out-of-plane direction: %w", p, basis.ErrInvalidDimension))
	}
	if !finite(cfg.phiMin) || !finite(cfg.phiMax) || cfg.phiMin > cfg.phiMax {
		return nil, manualErrorf(opTour, fmt.Errorf("[%v, %v]: %w", cfg.phiMin, cfg.phiMax, ErrInvalidRange))
	}
	if !finite(cfg.step) || cfg.step <= 0 {
		return nil, manualErrorf(opTour, fmt.Errorf("step=%v: %w", cfg.step, ErrInvalidAngle))
	}
	if cfg.hasTheta && !finite(cfg.theta) {
		return nil, manualErrorf(opTour, fmt.Errorf("theta=%v: %w", cfg.theta, ErrInvalidAngle))
	}
	if cfg.phiMin < 0 || cfg.phiMax > math.Pi/2 {
		cfg.logger.Warn("manual: phi range outside [0, pi/2]",
			slog.Float64("phi_min", cfg.phiMin),
			slog.Float64("phi_max", cfg.phiMax),
		)
	}

	ms, err := CreateManipSpace(b, k)
	if errors.Is(err, ErrDegenerateManipulation) {
		var dir int
		ms, dir, err = completeManipSpace(b)
		if err == nil {
			cfg.logger.Debug("manual: variable lies in the plane, completing manipulation space",
				slog.Int("manip_var", k),
				slog.Int("direction", dir),
			)
		}
	}
	if err != nil {
		return nil, manualErrorf(opTour, err)
	}

	bx, _ := ms.At(k, 0)
	by, _ := ms.At(k, 1)
	phi0 := math.Acos(math.Min(1, math.Hypot(bx, by)))
	theta := math.Atan2(by, bx)
	if cfg.hasTheta {
		theta = cfg.theta
	}

	phis := PhiSweep(phi0, cfg.phiMin, cfg.phiMax, cfg.step)
	bases := make([]*matrix.Dense, 0, len(phis)+1)
	for _, phi := range phis {
		rotated, err := RotateManipSpace(ms, theta, phi-phi0)
		if err != nil {
			return nil, manualErrorf(opTour, err)
		}
		frame, err := rotated.LeadingCols(displayDim)
		if err != nil {
			return nil, manualErrorf(opTour, err)
		}
		bases = append(bases, frame)
	}
	if cfg.closed {
		bases = append(bases, bases[0].Copy())
	}
	cfg.logger.Debug("manual: tour built",
		slog.Int("manip_var", k),
		slog.Int("frames", len(bases)),
		slog.Float64("phi0", phi0),
		slog.Float64("theta", theta),
	)

	return &tour.Path{Bases: bases, Data: cfg.data, ManipVar: k}, nil
}

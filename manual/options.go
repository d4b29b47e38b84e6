// SPDX-License-Identifier: MIT
// Package manual: functional options for ManualTour.
//
// Contract:
//   - Constructors panic only on programmer errors (nil logger). Angle and
//     range values are checked by ManualTour, which reports ErrInvalidAngle
//     or ErrInvalidRange instead.
//   - Options apply in order, last wins.

package manual

import (
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvtour/tour"
)

// Defaults for the phi sweep.
const (
	// DefaultPhiMin is the lower bound of the sweep (variable fully in plane).
	DefaultPhiMin = 0.0
	// DefaultPhiMax is the upper bound of the sweep (variable fully out of plane).
	DefaultPhiMax = math.Pi / 2
	// DefaultAngleStep is the largest phi increment between consecutive frames.
	DefaultAngleStep = 0.05
)

// Option customizes ManualTour.
type Option func(*config)

type config struct {
	theta    float64
	hasTheta bool
	phiMin   float64
	phiMax   float64
	step     float64
	closed   bool
	data     *tour.Dataset
	logger   *slog.Logger
}

// WithTheta fixes the in-plane direction of the rotation. By default the
// manipulation variable's own direction atan2(B[k,1], B[k,0]) is used.
func WithTheta(theta float64) Option {
	return func(c *config) {
		c.theta, c.hasTheta = theta, true
	}
}

// WithPhiRange sets the sweep bounds [phiMin, phiMax] (radians).
func WithPhiRange(phiMin, phiMax float64) Option {
	return func(c *config) {
		c.phiMin, c.phiMax = phiMin, phiMax
	}
}

// WithAngleStep sets the largest phi increment between frames (radians).
func WithAngleStep(step float64) Option {
	return func(c *config) {
		c.step = step
	}
}

// WithClosedLoop appends the starting basis at the end of the path, so the
// first and last frames are identical.
func WithClosedLoop() Option {
	return func(c *config) {
		c.closed = true
	}
}

// WithData attaches ds to the returned path.
func WithData(ds *tour.Dataset) Option {
	return func(c *config) {
		c.data = ds
	}
}

// WithLogger routes warnings and debug output to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("manual: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

func newConfig(opts ...Option) config {
	cfg := config{
		phiMin: DefaultPhiMin,
		phiMax: DefaultPhiMax,
		step:   DefaultAngleStep,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return cfg
}

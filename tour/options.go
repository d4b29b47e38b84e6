// SPDX-License-Identifier: MIT
// Package tour: functional options for Assemble.
//
// Contract:
//   - Option constructors panic on programmer errors (nil logger, n < 1
//     workers); Assemble itself only returns errors.
//   - Options apply in order, last wins.

package tour

import (
	"io"
	"log/slog"
)

// Option customizes Assemble.
type Option func(*config)

type config struct {
	labels   []string
	data     *Dataset
	centered bool
	workers  int
	logger   *slog.Logger
}

// defaultWorkers keeps assembly sequential unless asked otherwise.
const defaultWorkers = 1

// WithLabels overrides axis labels; the length is checked against p at
// assembly time (ErrDimensionMismatch).
func WithLabels(labels []string) Option {
	cp := append([]string(nil), labels...)
	return func(c *config) {
		c.labels = cp
	}
}

// WithDataset projects ds instead of the data attached to the path.
func WithDataset(ds *Dataset) Option {
	return func(c *config) {
		c.data = ds
	}
}

// WithCenteredProjection subtracts each frame's column means from the
// projected points, so every frame is centred on the origin.
func WithCenteredProjection() Option {
	return func(c *config) {
		c.centered = true
	}
}

// WithWorkers projects frames concurrently on up to n goroutines.
// Output order is identical to the sequential run. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("tour: WithWorkers(n<1)")
	}
	return func(c *config) {
		c.workers = n
	}
}

// WithLogger routes debug output to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("tour: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

func newConfig(opts ...Option) config {
	cfg := config{workers: defaultWorkers}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return cfg
}

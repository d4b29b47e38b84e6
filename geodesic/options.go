// SPDX-License-Identifier: MIT

package geodesic

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/lvtour/tour"
)

// Option customizes Interpolate.
type Option func(*config)

type config struct {
	data   *tour.Dataset
	logger *slog.Logger
}

// WithData attaches ds to the returned path.
func WithData(ds *tour.Dataset) Option {
	return func(c *config) {
		c.data = ds
	}
}

// WithLogger routes per-pair debug output to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("geodesic: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return cfg
}

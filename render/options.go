// SPDX-License-Identifier: MIT
// Package render: functional options shared by both renderers.
//
// Contract:
//   - Option constructors panic on programmer errors (nil sink, writer or
//     logger, negative interval); Render itself only returns errors.
//   - Options apply in order, last wins. Options a renderer has no use for
//     are ignored (InteractiveRenderer has no sink or pacing).

package render

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Option customizes a renderer.
type Option func(*config)

type config struct {
	sink     FrameSink
	out      io.Writer
	formats  []string
	interval time.Duration
	logger   *slog.Logger
}

// WithSink hands every frame to sink instead of printing it.
func WithSink(sink FrameSink) Option {
	if sink == nil {
		panic("render: WithSink(nil)")
	}
	return func(c *config) {
		c.sink = sink
	}
}

// WithWriter sets the destination of the default printing sink
// (os.Stdout otherwise).
func WithWriter(w io.Writer) Option {
	if w == nil {
		panic("render: WithWriter(nil)")
	}
	return func(c *config) {
		c.out = w
	}
}

// WithFormats sets per-column fmt verbs for the default printing sink, in
// tour column order (frame, kind, id, x, y, label).
func WithFormats(formats ...string) Option {
	cp := append([]string(nil), formats...)
	return func(c *config) {
		c.formats = cp
	}
}

// WithInterval paces playback: at least d passes between two frames.
// Zero plays as fast as the sink accepts frames. Panics if d < 0.
func WithInterval(d time.Duration) Option {
	if d < 0 {
		panic("render: WithInterval(d<0)")
	}
	return func(c *config) {
		c.interval = d
	}
}

// WithLogger routes renderer logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("render: WithLogger(nil)")
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
	if cfg.out == nil {
		cfg.out = os.Stdout
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return cfg
}

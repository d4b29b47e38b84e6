// SPDX-License-Identifier: MIT
// Package render: frame-by-frame playback.

package render

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aclements/go-gg/table"

	"github.com/katalvlaran/lvtour/tour"
)

// FrameSink receives one frame of a playback as a go-gg table holding the
// tour.Col* columns. Returning an error stops the playback.
type FrameSink func(ctx context.Context, frame int, t *table.Table) error

// AnimationRenderer plays a frame table in order, one go-gg table per frame.
// Without WithSink every frame is printed with table.Fprint, preceded by a
// "-- frame N" line.
type AnimationRenderer struct {
	sink     FrameSink
	interval time.Duration
	logger   *slog.Logger
}

// NewAnimationRenderer returns a renderer configured by opts.
func NewAnimationRenderer(opts ...Option) *AnimationRenderer {
	cfg := newConfig(opts...)
	sink := cfg.sink
	if sink == nil {
		sink = PrintSink(cfg.out, cfg.formats...)
	}

	return &AnimationRenderer{sink: sink, interval: cfg.interval, logger: cfg.logger}
}

// Render hands frames 0..Frames-1 to the sink.
//
// Implementation:
//   - Stage 1: reject empty tables.
//   - Stage 2: per frame, wait for the pacing tick (WithInterval), stop on
//     ctx cancellation, build the frame table and call the sink.
//
// Errors: ErrEmptyTable, ctx.Err(), or the sink's error (wrapped with the
// frame index).
func (r *AnimationRenderer) Render(ctx context.Context, ft *tour.FrameTable) error {
	if err := checkTable(ft); err != nil {
		return renderErrorf(opAnimate, err)
	}

	var tick <-chan time.Time
	if r.interval > 0 {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	start := time.Now()
	for f := 0; f < ft.Frames; f++ {
		if f > 0 && tick != nil {
			select {
			case <-ctx.Done():
				return r.cancelled(ctx, f)
			case <-tick:
			}
		}
		if ctx.Err() != nil {
			return r.cancelled(ctx, f)
		}
		if err := r.sink(ctx, f, ft.TableOf(f)); err != nil {
			return renderErrorf(opAnimate, fmt.Errorf("frame %d: %w", f, err))
		}
		r.logger.Debug("render: frame played", slog.Int("frame", f))
	}
	r.logger.Info("render: playback finished",
		slog.Int("frames", ft.Frames),
		slog.Duration("elapsed", time.Since(start)),
	)

	return nil
}

func (r *AnimationRenderer) cancelled(ctx context.Context, f int) error {
	r.logger.Debug("render: playback cancelled", slog.Int("frame", f))

	return renderErrorf(opAnimate, ctx.Err())
}

// PrintSink returns a FrameSink that writes each frame to w as a
// "-- frame N" line followed by table.Fprint output with the given formats.
// The first write error is returned and ends the playback.
func PrintSink(w io.Writer, formats ...string) FrameSink {
	return func(_ context.Context, frame int, t *table.Table) error {
		ew := &errWriter{w: w}
		fmt.Fprintf(ew, "-- frame %d\n", frame)
		table.Fprint(ew, t, formats...)

		return ew.err
	}
}

// errWriter remembers the first write error and swallows later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}

	return n, err
}

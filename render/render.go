// SPDX-License-Identifier: MIT
// Package render: the renderer contract and a path-level convenience.

package render

import (
	"context"

	"github.com/katalvlaran/lvtour/tour"
)

// Renderer consumes an assembled frame table. Implementations must not
// modify ft.
type Renderer interface {
	Render(ctx context.Context, ft *tour.FrameTable) error
}

var (
	_ Renderer = (*AnimationRenderer)(nil)
	_ Renderer = (*InteractiveRenderer)(nil)
)

// RenderPath assembles path with opts and hands the result to r.
//
// Errors: those of tour.Assemble, then those of r.Render.
func RenderPath(ctx context.Context, r Renderer, path *tour.Path, opts ...tour.Option) error {
	ft, err := tour.Assemble(path, opts...)
	if err != nil {
		return renderErrorf(opRenderPath, err)
	}
	if err = r.Render(ctx, ft); err != nil {
		return renderErrorf(opRenderPath, err)
	}

	return nil
}

// checkTable rejects nil and frameless tables.
func checkTable(ft *tour.FrameTable) error {
	if ft == nil || ft.Frames == 0 {
		return ErrEmptyTable
	}

	return nil
}

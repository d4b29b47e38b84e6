// SPDX-License-Identifier: MIT
// Package render: sentinel error set.

package render

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTable is returned when a renderer receives a nil frame table
	// or one without frames.
	ErrEmptyTable = errors.New("render: frame table has no frames")

	// ErrFrameOutOfRange is returned by InteractiveRenderer.Frame for an index
	// outside [0, Len()).
	ErrFrameOutOfRange = errors.New("render: frame index out of range")
)

const (
	opAnimate     = "AnimationRenderer.Render"
	opInteractive = "InteractiveRenderer.Render"
	opFrame       = "InteractiveRenderer.Frame"
	opRenderPath  = "RenderPath"
)

// renderErrorf wraps err with an operation tag, preserving it for errors.Is.
func renderErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// SPDX-License-Identifier: MIT

// Package render defines how assembled tours reach a display.
//
// A Renderer takes a *tour.FrameTable. Two implementations cover the usual
// consumers:
//
//   - AnimationRenderer plays frames in order, one go-gg table per frame,
//     into a FrameSink. The default sink prints each frame with
//     table.Fprint; WithInterval paces playback and the context stops it.
//   - InteractiveRenderer indexes the whole table by frame for random access
//     (Frame, Len) and reports the coordinate Extent so a viewer can keep a
//     fixed viewport.
//
// RenderPath runs tour.Assemble and a Renderer in one call. Colours, shapes
// and export formats are left to the consumer.
package render

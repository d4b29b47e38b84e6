// SPDX-License-Identifier: MIT
// Package tour: frame assembly.

package tour

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvtour/basis"
	"github.com/katalvlaran/lvtour/matrix"
)

// maxDisplayDim is the largest projection dimension a frame table can hold.
const maxDisplayDim = 2

// Assemble projects the data through every basis of path and lays the result
// out as a FrameTable.
//
// Implementation:
//   - Stage 1: resolve data (WithDataset overrides path.Data) and labels;
//     validate data finiteness and every basis (shape, p, orthonormality).
//     Without any data the table is basis-only: p comes from the first
//     basis, labels default to x1..xp and frames hold axis rows only.
//   - Stage 2: per frame f, P = X·B (n×d), optionally column-centred; emit n
//     point rows (ID = observation index) then p axis rows (coordinates =
//     basis row, ID = Label = variable label). d = 1 puts every Y at 0.
//   - Stage 3: frames are built sequentially, or on an errgroup limited to
//     WithWorkers(n) goroutines writing into per-frame slots; both produce the
//     same rows in the same order.
//
// Errors:
//   - ErrNilPath, ErrInvalidData (non-finite data), ErrDimensionMismatch (basis rows ≠ p, or
//     labels ≠ p), ErrInvalidDimension (d > 2), basis.ErrInvalidBasis.
//
// Complexity: O(k*n*p*d) time, O(k*(n+p)) output rows.
func Assemble(path *Path, opts ...Option) (*FrameTable, error) {
	if path.Len() == 0 {
		return nil, tourErrorf(opAssemble, ErrNilPath)
	}
	cfg := newConfig(opts...)
	ds := cfg.data
	if ds == nil {
		ds = path.Data
	}
	if path.Bases[0] == nil {
		return nil, tourErrorf(opAssemble, fmt.Errorf("frame 0: %w", basis.ErrNilBasis))
	}
	p, d := path.Bases[0].Shape()
	var x *matrix.Dense
	if ds != nil {
		if err := validateData(ds.X); err != nil {
			return nil, tourErrorf(opAssemble, err)
		}
		p = ds.P()
		var err error
		if x, err = denseOf(ds.X); err != nil {
			return nil, tourErrorf(opAssemble, err)
		}
	}
	if d > maxDisplayDim {
		return nil, tourErrorf(opAssemble, fmt.Errorf("d=%d: %w", d, ErrInvalidDimension))
	}
	for f, b := range path.Bases {
		if b == nil {
			return nil, tourErrorf(opAssemble, fmt.Errorf("frame %d: %w", f, basis.ErrNilBasis))
		}
		if b.Rows() != p {
			return nil, tourErrorf(opAssemble, fmt.Errorf("frame %d: basis has %d rows, want %d: %w", f, b.Rows(), p, ErrDimensionMismatch))
		}
		if err := basis.Validate(b, d); err != nil {
			return nil, tourErrorf(opAssemble, fmt.Errorf("frame %d: %w", f, err))
		}
	}
	labels := resolveLabels(cfg.labels, ds, p)
	if len(labels) != p {
		return nil, tourErrorf(opAssemble, fmt.Errorf("%d labels for %d variables: %w", len(labels), p, ErrDimensionMismatch))
	}

	var err error
	a := assembler{x: x, labels: labels, centered: cfg.centered}
	slots := make([][]FrameRow, len(path.Bases))

	if cfg.workers <= 1 {
		for f, b := range path.Bases {
			if slots[f], err = a.frame(f, b); err != nil {
				return nil, tourErrorf(opAssemble, err)
			}
		}
	} else {
		g, ctx := errgroup.WithContext(context.Background())
		g.SetLimit(cfg.workers)
		for f, b := range path.Bases {
			f, b := f, b
			g.Go(func() error {
				if ctx.Err() != nil {
					return nil
				}
				rows, err := a.frame(f, b)
				if err != nil {
					return err
				}
				slots[f] = rows

				return nil
			})
		}
		if err = g.Wait(); err != nil {
			return nil, tourErrorf(opAssemble, err)
		}
	}

	var n int
	if x != nil {
		n = x.Rows()
	}
	ft := &FrameTable{
		Rows:   make([]FrameRow, 0, len(slots)*(n+p)),
		Frames: len(slots),
		Points: n,
		Axes:   p,
	}
	for _, rows := range slots {
		ft.Rows = append(ft.Rows, rows...)
	}
	cfg.logger.Debug("tour: frames assembled",
		slog.Int("frames", ft.Frames),
		slog.Int("points", n),
		slog.Int("axes", p),
		slog.Int("workers", cfg.workers),
		slog.Bool("centered", cfg.centered),
	)

	return ft, nil
}

// denseOf returns x as a *matrix.Dense, copying foreign implementations once
// so every frame multiplies on the fast path.
func denseOf(x matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := x.(*matrix.Dense); ok {
		return d, nil
	}
	out, err := matrix.NewDense(x.Rows(), x.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < x.Rows(); i++ {
		for j := 0; j < x.Cols(); j++ {
			v, err := x.At(i, j)
			if err != nil {
				return nil, err
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// assembler holds what every frame shares. It is read-only during assembly,
// so frames may be built concurrently.
type assembler struct {
	x        *matrix.Dense
	labels   []string
	centered bool
}

// frame builds the rows of one frame: n points then p axes. Without data
// only the axes are emitted.
func (a assembler) frame(f int, b *matrix.Dense) ([]FrameRow, error) {
	p := b.Rows()
	if a.x == nil {
		return a.axes(f, b, make([]FrameRow, 0, p)), nil
	}
	proj, err := matrix.Mul(a.x, b)
	if err != nil {
		return nil, fmt.Errorf("frame %d: %w", f, err)
	}
	pd := proj.(*matrix.Dense)
	if a.centered {
		if pd, _, err = matrix.CenterColumns(pd); err != nil {
			return nil, fmt.Errorf("frame %d: %w", f, err)
		}
	}

	n := a.x.Rows()
	rows := make([]FrameRow, 0, n+p)
	for i := 0; i < n; i++ {
		xy, _ := pd.Row(i)
		rows = append(rows, FrameRow{Frame: f, Kind: Point, ID: strconv.Itoa(i), X: xy[0], Y: second(xy)})
	}

	return a.axes(f, b, rows), nil
}

// axes appends one row per variable with the basis row as coordinates.
func (a assembler) axes(f int, b *matrix.Dense, rows []FrameRow) []FrameRow {
	for j := 0; j < b.Rows(); j++ {
		xy, _ := b.Row(j)
		rows = append(rows, FrameRow{Frame: f, Kind: Axis, ID: a.labels[j], X: xy[0], Y: second(xy), Label: a.labels[j]})
	}

	return rows
}

// second returns v[1], or 0 for a one-dimensional projection.
func second(v []float64) float64 {
	if len(v) < 2 {
		return 0
	}

	return v[1]
}

// SPDX-License-Identifier: MIT
// Package tour: the frame table handed to renderers.

package tour

import (
	"github.com/aclements/go-gg/table"
)

// Kind distinguishes projected observations from variable axes.
type Kind int

const (
	// Point is a projected observation.
	Point Kind = iota
	// Axis is the projected unit vector of one variable.
	Axis
)

// String returns "point" or "axis".
func (k Kind) String() string {
	if k == Axis {
		return "axis"
	}

	return "point"
}

// Column names of the go-gg table built by FrameTable.Table.
const (
	ColFrame = "frame"
	ColKind  = "kind"
	ColID    = "id"
	ColX     = "x"
	ColY     = "y"
	ColLabel = "label"
)

// FrameRow is one record of the frame table. For points ID is the
// observation index in decimal and Label is empty; for axes ID and Label are
// the variable label.
type FrameRow struct {
	Frame int
	Kind  Kind
	ID    string
	X, Y  float64
	Label string
}

// FrameTable is the renderer-facing output of Assemble: Frames blocks of
// Points point rows followed by Axes axis rows, ordered by frame.
type FrameTable struct {
	Rows   []FrameRow
	Frames int
	Points int
	Axes   int
}

// FrameSize is the number of rows per frame.
func (ft *FrameTable) FrameSize() int { return ft.Points + ft.Axes }

// Frame returns the rows of frame f (a sub-slice, not a copy), or nil when f
// is out of range.
func (ft *FrameTable) Frame(f int) []FrameRow {
	if f < 0 || f >= ft.Frames {
		return nil
	}
	size := ft.FrameSize()

	return ft.Rows[f*size : (f+1)*size]
}

// Table converts every row into a go-gg table with the Col* columns.
func (ft *FrameTable) Table() *table.Table {
	return rowsTable(ft.Rows)
}

// TableOf converts the rows of frame f into a go-gg table; nil when f is
// out of range.
func (ft *FrameTable) TableOf(f int) *table.Table {
	rows := ft.Frame(f)
	if rows == nil {
		return nil
	}

	return rowsTable(rows)
}

// rowsTable lays rows out column-wise for go-gg.
func rowsTable(rows []FrameRow) *table.Table {
	n := len(rows)
	var (
		frames = make([]int, n)
		kinds  = make([]string, n)
		ids    = make([]string, n)
		xs     = make([]float64, n)
		ys     = make([]float64, n)
		labels = make([]string, n)
	)
	for i, r := range rows {
		frames[i], kinds[i], ids[i] = r.Frame, r.Kind.String(), r.ID
		xs[i], ys[i], labels[i] = r.X, r.Y, r.Label
	}

	return new(table.Builder).
		Add(ColFrame, frames).
		Add(ColKind, kinds).
		Add(ColID, ids).
		Add(ColX, xs).
		Add(ColY, ys).
		Add(ColLabel, labels).
		Done()
}

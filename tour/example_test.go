// SPDX-License-Identifier: MIT

package tour_test

import (
	"fmt"

	"github.com/katalvlaran/lvtour/basis"
	"github.com/katalvlaran/lvtour/matrix"
	"github.com/katalvlaran/lvtour/tour"
)

// ExampleAssemble lays out one frame of a two-variable dataset.
func ExampleAssemble() {
	x, _ := matrix.NewDenseFrom(2, 2, []float64{
		1, 2,
		3, 4,
	})
	ds, _ := tour.NewDataset(x, []string{"height", "weight"})
	b, _ := basis.Identity(2, 2)

	ft, err := tour.Assemble(&tour.Path{Bases: []*matrix.Dense{b}, Data: ds, ManipVar: tour.NoManipVar})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range ft.Rows {
		fmt.Printf("%d %-5s %-3s %g %g\n", r.Frame, r.Kind, r.ID, r.X, r.Y)
	}
	// Output:
	// 0 point 0   1 2
	// 0 point 1   3 4
	// 0 axis  hei 1 0
	// 0 axis  wei 0 1
}

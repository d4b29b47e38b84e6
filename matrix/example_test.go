// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvtour/matrix"
)

// ExampleGramSchmidt turns two independent directions in R³ into an
// orthonormal 2-frame.
func ExampleGramSchmidt() {
	m, _ := matrix.NewDenseFrom(3, 2, []float64{
		3, 0,
		4, 0,
		0, 2,
	})
	q, err := matrix.GramSchmidt(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(q)
	// Output:
	// [0.6, 0]
	// [0.8, 0]
	// [0, 1]
}

// ExampleEigenSym shows the descending spectrum of a small covariance-like matrix.
func ExampleEigenSym() {
	a, _ := matrix.NewDenseFrom(2, 2, []float64{
		2, 1,
		1, 2,
	})
	vals, _, err := matrix.EigenSym(a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.3f %.3f\n", vals[0], vals[1])
	// Output:
	// 3.000 1.000
}

// SPDX-License-Identifier: MIT

package tour_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvtour/tour"
)

func TestAbbreviate(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   []string
		want []string
	}{
		{"three runes", []string{"mpg", "cylinders", "displacement"}, []string{"mpg", "cyl", "dis"}},
		{"grow until unique", []string{"Sepal.Length", "Sepal.Width", "Petal.Length", "Petal.Width"},
			[]string{"Sepal.L", "Sepal.W", "Petal.L", "Petal.W"}},
		{"short names kept", []string{"a", "bb"}, []string{"a", "bb"}},
		{"duplicates suffixed", []string{"x", "x", "y"}, []string{"x", "x.2", "y"}},
		{"runes not bytes", []string{"ñandú", "ñoqui"}, []string{"ñan", "ñoq"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tour.Abbreviate(tc.in))
		})
	}
}

func TestDefaultLabels(t *testing.T) {
	assert.Equal(t, []string{"x1", "x2", "x3"}, tour.DefaultLabels(3))
}

// SPDX-License-Identifier: MIT
// Package tour: axis labels.

package tour

import (
	"strconv"
)

// minAbbrev is the shortest abbreviation tried for axis labels.
const minAbbrev = 3

// DefaultLabels returns "x1".."xp".
func DefaultLabels(p int) []string {
	out := make([]string, p)
	for i := range out {
		out[i] = "x" + strconv.Itoa(i+1)
	}

	return out
}

// Abbreviate shortens names to a common rune prefix length, starting at three
// runes and growing until every label is distinct. Names that stay equal even
// in full get a ".2", ".3", ... suffix on their later occurrences.
//
// Complexity: O(p * L) where L is the longest name in runes.
func Abbreviate(names []string) []string {
	runes := make([][]rune, len(names))
	longest := 0
	for i, n := range names {
		runes[i] = []rune(n)
		longest = max(longest, len(runes[i]))
	}

	for l := minAbbrev; l <= longest; l++ {
		out := make([]string, len(names))
		seen := make(map[string]struct{}, len(names))
		unique := true
		for i, r := range runes {
			out[i] = string(r[:min(l, len(r))])
			if _, dup := seen[out[i]]; dup {
				unique = false
				break
			}
			seen[out[i]] = struct{}{}
		}
		if unique {
			return out
		}
	}

	out := make([]string, len(names))
	count := make(map[string]int, len(names))
	for i, n := range names {
		count[n]++
		out[i] = n
		if c := count[n]; c > 1 {
			out[i] = n + "." + strconv.Itoa(c)
		}
	}

	return out
}

// resolveLabels picks axis labels: explicit override, abbreviated dataset
// names, or x1..xp for p variables.
func resolveLabels(override []string, ds *Dataset, p int) []string {
	switch {
	case override != nil:
		return override
	case ds != nil && len(ds.Names) > 0:
		return Abbreviate(ds.Names)
	default:
		return DefaultLabels(p)
	}
}

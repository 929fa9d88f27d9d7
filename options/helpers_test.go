// SPDX-License-Identifier: MIT
// Package options_test contains fixtures and reference implementations used
// across the options tests.
//
// Purpose:
//   - Provide the canonical option list used throughout the docs.
//   - Provide a brute-force frontier (O(n²) by definition) to check the
//     linear-time algorithms against.

package options_test

import (
	"sort"

	"github.com/katalvlaran/travelopts/options"
)

// canonical is the sorted, non-pareto list used in the package docs.
var canonical = [][2]float64{
	{1, 7}, {2, 8}, {2, 9}, {3, 5}, {5, 8}, {5, 8}, {5, 9}, {6, 12},
}

// opts converts literal pairs to a sequence.
func opts(pairs ...[2]float64) []options.Option {
	out := make([]options.Option, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, options.Option{Price: p[0], Time: p[1]})
	}

	return out
}

// bruteFrontier returns the non-dominated, de-duplicated options of seq in
// pareto-sorted order, straight from the definition of dominance.
func bruteFrontier(seq []options.Option) []options.Option {
	out := []options.Option{}
	for i, a := range seq {
		keep := true
		for j, b := range seq {
			if i == j {
				continue
			}
			if b.Dominates(a) {
				keep = false
				break
			}
		}
		if !keep {
			continue
		}
		dup := false
		for _, k := range out {
			if k == a {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Price < out[j].Price })

	return out
}

// bruteJoin pairs every option of a with every option of b using combine.
func bruteJoin(a, b []options.Option, combine func(x, y options.Option) options.Option) []options.Option {
	out := make([]options.Option, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			out = append(out, combine(x, y))
		}
	}

	return out
}

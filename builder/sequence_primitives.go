// SPDX-License-Identifier: MIT
// Package: travelopts/builder
//
// sequence_primitives.go - shared grid and RNG helpers for generators.
//
// Contract:
//   - Pure helpers (no global state).

package builder

import (
	"math"
	"math/rand"
	"sort"
)

// gridEpsilon absorbs float noise when counting grid points.
const gridEpsilon = 1e-9

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by 'seed'. This keeps determinism across composed calls.
func rngFrom(cfg builderConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}

// gridPoints counts the values min + k·step that lie within [min, max].
func gridPoints(min, max, step float64) int {
	return int(math.Floor((max-min)/step+gridEpsilon)) + 1
}

// gridValue returns the k-th grid point.
func gridValue(min, step float64, k int) float64 {
	return min + float64(k)*step
}

// distinctIndices draws n distinct grid indices out of count, ascending.
// Floyd's sampling keeps memory at O(n) however wide the grid is.
func distinctIndices(rng *rand.Rand, count, n int) []int {
	idx := make([]int, 0, n)
	seen := make(map[int]struct{}, n)
	for j := count - n; j < count; j++ {
		k := rng.Intn(j + 1)
		if _, dup := seen[k]; dup {
			k = j
		}
		seen[k] = struct{}{}
		idx = append(idx, k)
	}
	sort.Ints(idx)

	return idx
}

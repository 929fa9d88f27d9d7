// SPDX-License-Identifier: MIT
// Package: travelopts/builder
//
// api.go - public generators.
//
// Design contract:
//   - Functional options resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed ⇒ identical lists.
//   - Safety: never panic; return sentinel errors wrapped with the method name.

package builder

import (
	"github.com/katalvlaran/travelopts/options"
)

// Frontier returns a pareto-sorted list of n options: n distinct grid prices
// in ascending order paired with n distinct grid times in descending order.
//
// Errors:
//   - ErrBadSize if n < 0.
//   - ErrBadRange if either axis holds fewer than n grid values.
//
// Complexity: O(P + T + n log n) where P and T are the grid sizes.
func Frontier(n int, opts ...BuilderOption) (*options.List, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateSize(MethodFrontier, n); err != nil {
		return nil, err
	}
	if err := validateGrid(MethodFrontier, "price", cfg.priceMin, cfg.priceMax, cfg.step, n); err != nil {
		return nil, err
	}
	if err := validateGrid(MethodFrontier, "time", cfg.timeMin, cfg.timeMax, cfg.step, n); err != nil {
		return nil, err
	}

	rng := rngFrom(cfg, DefaultSeed)
	prices := distinctIndices(rng, gridPoints(cfg.priceMin, cfg.priceMax, cfg.step), n)
	times := distinctIndices(rng, gridPoints(cfg.timeMin, cfg.timeMax, cfg.step), n)

	// Push from the most expensive end: the front ends up cheapest and slowest.
	l := options.New()
	for i := n - 1; i >= 0; i-- {
		l.PushFront(
			gridValue(cfg.priceMin, cfg.step, prices[i]),
			gridValue(cfg.timeMin, cfg.step, times[n-1-i]),
		)
	}

	return l, nil
}

// Random returns n options drawn independently from the price and time
// grids, in draw order. Duplicates and dominated options are expected.
//
// Errors:
//   - ErrBadSize if n < 0.
//
// Complexity: O(n).
func Random(n int, opts ...BuilderOption) (*options.List, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateSize(MethodRandom, n); err != nil {
		return nil, err
	}

	return random(cfg, n), nil
}

// Sorted returns Random(n) rearranged into sorted order.
//
// Errors:
//   - ErrBadSize if n < 0.
//
// Complexity: O(n²) (sorted insertion).
func Sorted(n int, opts ...BuilderOption) (*options.List, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateSize(MethodSorted, n); err != nil {
		return nil, err
	}

	return random(cfg, n).SortedClone(), nil
}

// random draws n grid options from the resolved config.
func random(cfg builderConfig, n int) *options.List {
	rng := rngFrom(cfg, DefaultSeed)
	pc := gridPoints(cfg.priceMin, cfg.priceMax, cfg.step)
	tc := gridPoints(cfg.timeMin, cfg.timeMax, cfg.step)

	seq := make([]options.Option, n)
	for i := range seq {
		seq[i] = options.Option{
			Price: gridValue(cfg.priceMin, cfg.step, rng.Intn(pc)),
			Time:  gridValue(cfg.timeMin, cfg.step, rng.Intn(tc)),
		}
	}

	return options.FromSequence(seq)
}

// SPDX-License-Identifier: MIT
// Package: travelopts/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng       = nil (resolved to a DefaultSeed source by rngFrom)
//   • price     = [DefaultPriceMin, DefaultPriceMax]
//   • time      = [DefaultTimeMin, DefaultTimeMax]
//   • step      = DefaultStep

package builder

import "math/rand"

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type builderConfig struct {
	// RNG for draws; nil means "seed with DefaultSeed".
	rng *rand.Rand

	priceMin, priceMax float64 // inclusive price bounds
	timeMin, timeMax   float64 // inclusive time bounds
	step               float64 // grid spacing, > 0
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		priceMin: DefaultPriceMin,
		priceMax: DefaultPriceMax,
		timeMin:  DefaultTimeMin,
		timeMax:  DefaultTimeMax,
		step:     DefaultStep,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

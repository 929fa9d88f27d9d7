// SPDX-License-Identifier: MIT
// Package: travelopts/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a generator by mutating a builderConfig instance
// before any value is drawn.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPriceRange sets the inclusive price bounds.
// Panics if min < 0 or max < min.
func WithPriceRange(min, max float64) BuilderOption {
	if min < 0 || max < min {
		panic("builder: WithPriceRange(min<0 || max<min)")
	}
	return func(c *builderConfig) {
		c.priceMin, c.priceMax = min, max
	}
}

// WithTimeRange sets the inclusive time bounds.
// Panics if min < 0 or max < min.
func WithTimeRange(min, max float64) BuilderOption {
	if min < 0 || max < min {
		panic("builder: WithTimeRange(min<0 || max<min)")
	}
	return func(c *builderConfig) {
		c.timeMin, c.timeMax = min, max
	}
}

// WithStep sets the grid spacing of drawn values. Panics if step <= 0.
func WithStep(step float64) BuilderOption {
	if step <= 0 {
		panic("builder: WithStep(step<=0)")
	}
	return func(c *builderConfig) {
		c.step = step
	}
}

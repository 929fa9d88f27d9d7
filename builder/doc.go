// Package builder generates deterministic travel-option fixtures for tests,
// benchmarks, examples and the travelopts CLI.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   holds RNG, price/time ranges and grid step.
//   - Generators:
//     – Frontier(n):     a pareto-sorted list (strictly cheaper ⇒ strictly slower).
//     – Random(n):       an arbitrary list in draw order (duplicates allowed).
//     – Sorted(n):       Random(n) passed through sorted insertion.
//   - Validation helpers:
//     – validateSize:    ensure n ≥ 0.
//     – validateGrid:    ensure a range holds enough grid points.
//   - Shared constants:
//     – DefaultSeed, DefaultStep, DefaultPriceMax, DefaultTimeMax.
//     – MethodFrontier, MethodRandom, MethodSorted tokens for error context.
//
// Every drawn value sits on the grid min + k·step, so sums of generated
// prices and times stay exact for the default integral step.
//
// Guarantees:
//
//   - Determinism: same n, options and seed ⇒ identical lists.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (ErrBadSize, ErrBadRange) wrapped with the
//     method name for easy filtering.
//
//	l, err := builder.Frontier(8, builder.WithSeed(42), builder.WithPriceRange(50, 500))
package builder

// Package builder defines shared constants used by option generators, ensuring
// consistent defaults and validation across all of them.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the generator name for context.
//-----------------------------------------------------------------------------

const (
	// MethodFrontier is the canonical name for the Frontier generator.
	MethodFrontier = "Frontier"
	// MethodRandom is the canonical name for the Random generator.
	MethodRandom = "Random"
	// MethodSorted is the canonical name for the Sorted generator.
	MethodSorted = "Sorted"
)

//-----------------------------------------------------------------------------
// Generator Defaults
//-----------------------------------------------------------------------------

// DefaultSeed seeds the RNG when neither WithSeed nor WithRand is given.
const DefaultSeed int64 = 1

// DefaultStep is the grid spacing of drawn prices and times.
const DefaultStep = 1.0

// DefaultPriceMin and DefaultPriceMax bound drawn prices (inclusive).
const (
	DefaultPriceMin = 0.0
	DefaultPriceMax = 100.0
)

// DefaultTimeMin and DefaultTimeMax bound drawn times (inclusive).
const (
	DefaultTimeMin = 0.0
	DefaultTimeMax = 48.0
)

// MinSize is the smallest list length a generator accepts; 0 yields an empty list.
const MinSize = 0

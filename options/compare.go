// SPDX-License-Identifier: MIT
//
// File: compare.go
// Role: Pareto comparison of two options.

package options

// Compare classifies option a relative to option b.
//
// Cases:
//   - Equal        - identical price and time.
//   - Better       - not identical, a.Price ≤ b.Price and a.Time ≤ b.Time.
//   - Worse        - not identical, a.Price ≥ b.Price and a.Time ≥ b.Time.
//   - Incomparable - one option is strictly cheaper, the other strictly faster.
//
// Example:
//
//	r := options.Compare(options.Option{Price: 10, Time: 2.9}, options.Option{Price: 9, Time: 1.9})
//	// r == options.Worse: b is cheaper and faster
//
// Complexity: O(1).
func Compare(a, b Option) Relationship {
	switch {
	case a.Price == b.Price && a.Time == b.Time:
		return Equal
	case a.Price <= b.Price && a.Time <= b.Time:
		return Better
	case a.Price >= b.Price && a.Time >= b.Time:
		return Worse
	default:
		return Incomparable
	}
}

// CompareValues is Compare for callers holding bare numbers.
func CompareValues(priceA, timeA, priceB, timeB float64) Relationship {
	return Compare(Option{Price: priceA, Time: timeA}, Option{Price: priceB, Time: timeB})
}

// compareNodes compares the options stored in two nodes. A nil node is a
// programming error inside this package: it is logged and reported as
// Incomparable so that callers scanning for dominance treat it as neutral.
func compareNodes(a, b *node) Relationship {
	if a == nil || b == nil {
		logger.Error().
			Bool("a_nil", a == nil).
			Bool("b_nil", b == nil).
			Msg("compareNodes: nil node passed")
		return Incomparable
	}

	return Compare(a.opt, b.opt)
}

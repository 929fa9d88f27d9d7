// Package options maintains lists of (price, time) travel options and the
// Pareto frontiers built from them.
//
// 🚀 What is a travel option?
//
//	An Option is a pair <price, time>: what a trip costs and how long it
//	takes. Option A dominates option B when A is no more expensive and no
//	slower than B, and the two are not identical. A dominated option is
//	useless: nobody would pick it over the one that dominates it.
//
// ✨ Invariant lattice:
//
//	unsorted ⊂ sorted ⊂ sorted+pareto
//
//   - Sorted        - non-decreasing price, ties broken by non-decreasing time;
//     identical options form one consecutive block.
//   - Pareto        - no duplicates and no option dominated by another.
//   - Pareto-sorted - strictly increasing price AND strictly decreasing time.
//
// Every mutating operation documents which invariant it requires and which
// it establishes. When the precondition does not hold the operation returns
// ErrNotSorted or ErrNotParetoSorted and leaves the receiver untouched.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/travelopts/options"
//
//	l := options.FromPairs([][2]float64{{1, 7}, {2, 8}, {3, 5}})
//	if err := l.PruneSorted(); err != nil {
//	  // ErrNotSorted
//	}
//	l.Display(os.Stdout)
//
//	// two legs X→Y→Z: prices add, times add
//	trip := xy.JoinPlusPlus(yz)
//
//	// two travellers A→C and B→C: prices add, the later arrival wins
//	home, err := ac.JoinPlusMax(bc)
//
// Complexity:
//
//   - IsSorted, IsParetoSorted, InsertSorted, InsertParetoSorted,
//     PruneSorted, SplitSortedPareto - O(n)
//   - UnionParetoSorted, JoinPlusMax - O(n+m)
//   - IsPareto - O(n²), no allocation
//   - JoinPlusPlus - O(n·m·k) where k is the frontier size
//
// Diagnostics go through a zerolog.Logger (see SetLogger). The package is
// not safe for concurrent mutation of the same List.
package options

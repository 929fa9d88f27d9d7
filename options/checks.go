// SPDX-License-Identifier: MIT
//
// File: checks.go
// Role: Read-only invariant checks (sorted, pareto, pareto-sorted).
// Policy:
//   - Checks never mutate the list and never allocate.

package options

// IsSorted reports whether options are in non-decreasing price order with
// time as the tie-breaker. Identical options must be adjacent, which the
// pairwise rule already enforces.
//
// Examples:
//
//	[<1,7> <2,8> <2,9> <3,5> <5,8> <5,8> <5,9> <6,12>]  sorted
//	[<1,7> <2,8> <4,3> <3,7>]                            not sorted: <3,7> before <4,3>
//	[<1,7> <2,8> <2,5> <3,7>]                            not sorted: <2,5> before <2,8>
//
// Complexity: O(n).
func (l *List) IsSorted() bool {
	for p := l.front; p != nil && p.next != nil; p = p.next {
		if p.next.opt.less(p.opt) {
			return false
		}
	}

	return true
}

// IsPareto reports whether all options are distinct and none is dominated
// by another. The list does not need to be sorted.
// Complexity: O(n²) time, O(1) space.
func (l *List) IsPareto() bool {
	for p := l.front; p != nil; p = p.next {
		for q := p.next; q != nil; q = q.next {
			if compareNodes(p, q) != Incomparable {
				return false
			}
		}
	}

	return true
}

// IsParetoSorted reports whether the list is strictly increasing in price
// and strictly decreasing in time. Such a list is both sorted and pareto.
// Complexity: O(n).
func (l *List) IsParetoSorted() bool {
	for p := l.front; p != nil && p.next != nil; p = p.next {
		if p.next.opt.Price <= p.opt.Price || p.next.opt.Time >= p.opt.Time {
			return false
		}
	}

	return true
}

// SPDX-License-Identifier: MIT
//
// File: split.go
// Role: Budget split of a pareto-sorted list by relinking its nodes.

package options

import "fmt"

// SplitSortedPareto partitions a pareto-sorted list in place. Options with
// price ≤ maxPrice stay in the receiver; the more expensive ones are moved,
// in order, to the returned list. Both halves remain pareto-sorted.
//
// No node is allocated or freed: the tail of the chain is relinked into the
// result, so l.Checksum() ^ result.Checksum() equals the checksum before
// the call.
//
// Errors:
//   - ErrNotParetoSorted if the receiver is not pareto-sorted; nothing moves.
//
// Complexity: O(n).
func (l *List) SplitSortedPareto(maxPrice float64) (*List, error) {
	if !l.IsParetoSorted() {
		return nil, fmt.Errorf("SplitSortedPareto(%g): %w", maxPrice, ErrNotParetoSorted)
	}

	expensive := New()
	// Everything is expensive: hand over the whole chain.
	if l.front == nil || l.front.opt.Price > maxPrice {
		expensive.front, expensive.size = l.front, l.size
		l.front, l.size = nil, 0
		return expensive, nil
	}

	last, kept := l.front, 1
	for last.next != nil && last.next.opt.Price <= maxPrice {
		last = last.next
		kept++
	}
	expensive.front, expensive.size = last.next, l.size-kept
	last.next = nil
	l.size = kept

	return expensive, nil
}

// SPDX-License-Identifier: MIT
//
// File: merge.go
// Role: Frontier sweeps over sorted input: union of two pareto-sorted lists
// and in-place pruning of a sorted list.
// Sweep rule:
//   - Visiting options in sorted order, an option belongs to the frontier
//     iff it is strictly faster than the last option kept.

package options

import "fmt"

// UnionParetoSorted returns the pareto-sorted union of l and other: the
// set union with every dominated option and duplicate removed. Neither
// operand is modified.
//
// Implementation:
//   - Stage 1: merge both lists by (price, time) as in a merge sort step.
//   - Stage 2: keep a merged option only if it is strictly faster than the
//     last one kept.
//
// Errors:
//   - ErrNilList if other is nil.
//   - ErrNotParetoSorted if either operand is not pareto-sorted.
//
// Complexity: O(n+m).
func (l *List) UnionParetoSorted(other *List) (*List, error) {
	if other == nil {
		return nil, fmt.Errorf("UnionParetoSorted: %w", ErrNilList)
	}
	if !l.IsParetoSorted() || !other.IsParetoSorted() {
		return nil, fmt.Errorf("UnionParetoSorted: %w", ErrNotParetoSorted)
	}

	out := New()
	var b tailBuilder
	b.init(out)
	p, q := l.front, other.front
	for p != nil || q != nil {
		switch {
		case q == nil:
			b.pushFrontier(p.opt)
			p = p.next
		case p == nil:
			b.pushFrontier(q.opt)
			q = q.next
		case q.opt.less(p.opt):
			b.pushFrontier(q.opt)
			q = q.next
		default:
			b.pushFrontier(p.opt)
			p = p.next
		}
	}

	return out, nil
}

// PruneSorted removes dominated options and duplicates from a sorted list
// in place. The result is pareto-sorted (hence sorted and pareto).
//
// Example:
//
//	[<1,7> <2,8> <2,9> <3,5> <5,8> <5,8> <5,9> <6,12>]  →  [<1,7> <3,5>]
//
// Errors:
//   - ErrNotSorted if the receiver is not sorted; the list is unchanged.
//
// Complexity: O(n).
func (l *List) PruneSorted() error {
	if !l.IsSorted() {
		return fmt.Errorf("PruneSorted: %w", ErrNotSorted)
	}
	if l.front == nil {
		return nil
	}

	removed := 0
	kept := l.front
	for cur := kept.next; cur != nil; cur = cur.next {
		if cur.opt.Time < kept.opt.Time {
			kept.next = cur
			kept = cur
			continue
		}
		removed++
	}
	kept.next = nil
	l.size -= removed
	logger.Debug().Int("removed", removed).Int("kept", l.size).Msg("PruneSorted")

	return nil
}

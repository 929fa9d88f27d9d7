// SPDX-License-Identifier: MIT
//
// File: join.go
// Role: Combining two option lists into trip frontiers.
//   - JoinPlusPlus - sequential legs X→Y→Z: <p1+p2, t1+t2>.
//   - JoinPlusMax  - parallel trips A→C and B→C: <p1+p2, max(t1,t2)>.

package options

import (
	"fmt"
	"math"
)

// JoinPlusPlus returns the pareto-sorted frontier of every pairing of an
// option from l (first leg) with an option from other (second leg). A pair
// <p1,t1>, <p2,t2> costs p1+p2 and takes t1+t2. Neither operand needs to be
// sorted or pareto.
//
// An empty or nil other yields an empty, non-nil list.
//
// Complexity: O(n·m·k) where k is the size of the resulting frontier.
func (l *List) JoinPlusPlus(other *List) *List {
	out := New()
	if other == nil {
		return out
	}
	for p := l.front; p != nil; p = p.next {
		for q := other.front; q != nil; q = q.next {
			out.insertParetoSorted(Option{
				Price: p.opt.Price + q.opt.Price,
				Time:  p.opt.Time + q.opt.Time,
			})
		}
	}

	return out
}

// JoinPlusMax returns the pareto-sorted frontier of pairings where the
// total price is p1+p2 and the total time is max(t1,t2): two travellers
// heading home in parallel, done when the later one arrives.
//
// Implementation:
//   - Stage 1: the cheapest pairing is the two cheapest options.
//   - Stage 2: the only way to finish sooner is to pay for a faster option on
//     the side that currently arrives last. Advance that side (both on a tie)
//     and emit the new pairing if it is strictly faster than the last kept.
//   - Stage 3: stop once the slowest side has no faster option left.
//
// Errors:
//   - ErrNilList if other is nil.
//   - ErrNotParetoSorted if either operand is not pareto-sorted.
//
// Complexity: O(n+m); the n·m pairings are never enumerated.
func (l *List) JoinPlusMax(other *List) (*List, error) {
	if other == nil {
		return nil, fmt.Errorf("JoinPlusMax: %w", ErrNilList)
	}
	if !l.IsParetoSorted() || !other.IsParetoSorted() {
		return nil, fmt.Errorf("JoinPlusMax: %w", ErrNotParetoSorted)
	}

	out := New()
	var b tailBuilder
	b.init(out)
	p, q := l.front, other.front
	for p != nil && q != nil {
		b.pushFrontier(Option{
			Price: p.opt.Price + q.opt.Price,
			Time:  math.Max(p.opt.Time, q.opt.Time),
		})
		switch {
		case p.opt.Time > q.opt.Time:
			p = p.next
		case q.opt.Time > p.opt.Time:
			q = q.next
		default:
			p, q = p.next, q.next
		}
	}

	return out, nil
}

// SPDX-License-Identifier: MIT
//
// File: insert.go
// Role: Order-preserving insertion (sorted) and optimality-preserving
// insertion (pareto-sorted).

package options

import "fmt"

// InsertSorted inserts <price, time> keeping the list sorted. No pruning is
// done: duplicates and dominated options are kept. The new option is placed
// after any identical ones.
//
// Errors:
//   - ErrNotSorted if the receiver is not sorted; the list is unchanged.
//
// Complexity: O(n).
func (l *List) InsertSorted(price, time float64) error {
	if !l.IsSorted() {
		return fmt.Errorf("InsertSorted(%g, %g): %w", price, time, ErrNotSorted)
	}
	l.insertSorted(Option{Price: price, Time: time})

	return nil
}

// insertSorted assumes l is sorted.
func (l *List) insertSorted(o Option) {
	if l.front == nil || o.less(l.front.opt) {
		l.front = newNode(o, l.front)
		l.size++
		return
	}
	prev := l.front
	for prev.next != nil && !o.less(prev.next.opt) {
		prev = prev.next
	}
	prev.next = newNode(o, prev.next)
	l.size++
}

// InsertParetoSorted adds <price, time> to a pareto-sorted list.
//
// If an existing option dominates (or equals) the new one the list is left
// unchanged. Otherwise the option is linked in at its sorted position and
// every existing option it dominates is removed. Either way the list stays
// pareto-sorted and nil is returned.
//
// Errors:
//   - ErrNotParetoSorted if the receiver is not pareto-sorted; the list is unchanged.
//
// Complexity: O(n).
func (l *List) InsertParetoSorted(price, time float64) error {
	if !l.IsParetoSorted() {
		return fmt.Errorf("InsertParetoSorted(%g, %g): %w", price, time, ErrNotParetoSorted)
	}
	l.insertParetoSorted(Option{Price: price, Time: time})

	return nil
}

// insertParetoSorted assumes l is pareto-sorted and reports whether o was
// added.
func (l *List) insertParetoSorted(o Option) bool {
	// Stage 1: skip the strictly cheaper options. The last of them is the
	// fastest one, so it alone decides whether o is dominated from the left.
	var prev *node
	cur := l.front
	for cur != nil && cur.opt.Price < o.Price {
		prev, cur = cur, cur.next
	}
	if prev != nil && prev.opt.Time <= o.Time {
		return false
	}
	// Stage 2: an option with the same price and no worse time wins.
	if cur != nil && cur.opt.Price == o.Price && cur.opt.Time <= o.Time {
		return false
	}
	// Stage 3: drop the run of options that o dominates. Times decrease
	// along the list, so the run ends at the first strictly faster option.
	for cur != nil && cur.opt.Time >= o.Time {
		cur = cur.next
		l.size--
	}
	// Stage 4: link o between prev and cur.
	n := newNode(o, cur)
	if prev == nil {
		l.front = n
	} else {
		prev.next = n
	}
	l.size++

	return true
}

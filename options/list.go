// SPDX-License-Identifier: MIT
//
// File: list.go
// Role: Container primitives: construction, size, clear, export, cloning.
// Determinism:
//   - Every export walks front to back; order is exactly the list order.

package options

// FromSequence builds a List holding exactly the options of seq, in order.
// Complexity: O(n).
func FromSequence(seq []Option) *List {
	l := New()
	// Pushing from the back keeps each push O(1).
	for i := len(seq) - 1; i >= 0; i-- {
		l.PushFront(seq[i].Price, seq[i].Time)
	}

	return l
}

// FromPairs is FromSequence for literal [price, time] pairs.
func FromPairs(pairs [][2]float64) *List {
	l := New()
	for i := len(pairs) - 1; i >= 0; i-- {
		l.PushFront(pairs[i][0], pairs[i][1])
	}

	return l
}

// Len returns the number of options in the list.
// Complexity: O(1).
func (l *List) Len() int {
	return l.size
}

// Clear drops every option.
// Complexity: O(1); nodes are reclaimed by the garbage collector.
func (l *List) Clear() {
	l.front = nil
	l.size = 0
}

// PushFront adds <price, time> at the front of the list without checking
// any invariant. It is the primitive used to build lists from sequences.
// Complexity: O(1).
func (l *List) PushFront(price, time float64) {
	l.front = newNode(Option{Price: price, Time: time}, l.front)
	l.size++
}

// Front returns the first option, or false when the list is empty.
func (l *List) Front() (Option, bool) {
	if l.front == nil {
		return Option{}, false
	}

	return l.front.opt, true
}

// Each calls fn for every option in order until fn returns false.
func (l *List) Each(fn func(Option) bool) {
	for p := l.front; p != nil; p = p.next {
		if !fn(p.opt) {
			return
		}
	}
}

// ToSequence exports the options in list order. An empty list yields an
// empty, non-nil slice.
// Complexity: O(n).
func (l *List) ToSequence() []Option {
	out := make([]Option, 0, l.size)
	for p := l.front; p != nil; p = p.next {
		out = append(out, p.opt)
	}

	return out
}

// Clone returns a copy of the list with freshly allocated nodes.
// Complexity: O(n).
func (l *List) Clone() *List {
	out := New()
	var b tailBuilder
	b.init(out)
	for p := l.front; p != nil; p = p.next {
		b.push(p.opt)
	}

	return out
}

// SortedClone returns a sorted copy built by repeated sorted insertion.
// The receiver is left as is.
// Complexity: O(n²).
func (l *List) SortedClone() *List {
	sorted := New()
	for p := l.front; p != nil; p = p.next {
		// sorted is sorted by construction, so the precondition always holds.
		sorted.insertSorted(p.opt)
	}

	return sorted
}

// Checksum XORs the identities of all nodes. Two lists with the same
// checksum (almost surely) share the same node set; relinking nodes between
// lists preserves the XOR of their checksums.
// Complexity: O(n).
func (l *List) Checksum() uint64 {
	var s uint64
	for p := l.front; p != nil; p = p.next {
		s ^= p.serial
	}

	return s
}

// tailBuilder appends nodes at the back of a list in O(1).
type tailBuilder struct {
	list *List
	tail *node
}

// init attaches the builder to an empty list.
func (b *tailBuilder) init(l *List) {
	b.list = l
	b.tail = nil
}

// push appends a fresh node holding o.
func (b *tailBuilder) push(o Option) {
	n := newNode(o, nil)
	if b.tail == nil {
		b.list.front = n
	} else {
		b.tail.next = n
	}
	b.tail = n
	b.list.size++
}

// last returns the most recently appended option.
func (b *tailBuilder) last() (Option, bool) {
	if b.tail == nil {
		return Option{}, false
	}

	return b.tail.opt, true
}

// pushFrontier appends o only when it is strictly faster than the last
// appended option. Fed with options in sorted order, this keeps exactly the
// non-dominated ones and yields a pareto-sorted list.
func (b *tailBuilder) pushFrontier(o Option) bool {
	if last, ok := b.last(); ok && o.Time >= last.Time {
		return false
	}
	b.push(o)

	return true
}

// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Option, Relationship, the node/List storage and sentinel errors.
// Ownership:
//   - A List exclusively owns its nodes. Nodes move between lists only through
//     SplitSortedPareto, which relinks them without allocating.
// Identity:
//   - Every node receives a unique, well-spread serial at allocation;
//     Checksum XORs serials.

package options

import (
	"errors"
	"sync/atomic"
)

// Sentinel errors for precondition violations.
var (
	// ErrNotSorted indicates the receiver is not sorted by (price, time).
	ErrNotSorted = errors.New("options: list is not sorted")

	// ErrNotParetoSorted indicates the receiver (or the argument) is not
	// strictly increasing in price and strictly decreasing in time.
	ErrNotParetoSorted = errors.New("options: list is not pareto-sorted")

	// ErrNilList indicates a nil *List was passed as the other operand.
	ErrNilList = errors.New("options: nil list")
)

// Option is a single <price, time> travel choice.
type Option struct {
	// Price is what the option costs.
	Price float64

	// Time is how long the option takes.
	Time float64
}

// Dominates reports whether o dominates other: o is no more expensive and no
// slower, and the two options are not identical.
func (o Option) Dominates(other Option) bool {
	return Compare(o, other) == Better
}

// less orders options by price, then by time.
func (o Option) less(other Option) bool {
	if o.Price != other.Price {
		return o.Price < other.Price
	}

	return o.Time < other.Time
}

// Relationship classifies option A relative to option B.
type Relationship int

const (
	// Better means A dominates B.
	Better Relationship = iota

	// Worse means B dominates A.
	Worse

	// Equal means A and B have identical price and time.
	Equal

	// Incomparable means one option is cheaper and the other is faster.
	Incomparable
)

// String implements fmt.Stringer.
func (r Relationship) String() string {
	switch r {
	case Better:
		return "better"
	case Worse:
		return "worse"
	case Equal:
		return "equal"
	case Incomparable:
		return "incomparable"
	default:
		return "unknown"
	}
}

// nodeSerial hands out node identities for Checksum.
var nodeSerial atomic.Uint64

// node is one cell of the singly linked list.
type node struct {
	opt    Option
	next   *node
	serial uint64
}

// newNode allocates a node with a fresh serial.
func newNode(o Option, next *node) *node {
	return &node{opt: o, next: next, serial: mix64(nodeSerial.Add(1))}
}

// mix64 is the splitmix64 finalizer. It is a bijection, so serials stay
// unique, and it spreads consecutive counters over all 64 bits so that XORs
// of runs of nodes do not cancel out.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// List is a singly linked list of travel options.
//
// The zero value is an empty list ready to use.
type List struct {
	front *node // first node, nil when empty
	size  int   // number of nodes reachable from front
}

// New returns an empty List.
// Complexity: O(1).
func New() *List {
	return &List{}
}

// SPDX-License-Identifier: MIT
// Package: travelopts/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Generators attach context with builderErrorf, which keeps %w.
//   • Generators never panic; validation panics are confined to option
//     constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a negative list length.
// Usage: if errors.Is(err, ErrBadSize) { /* fix n */ }.
var ErrBadSize = errors.New("builder: invalid size")

// ErrBadRange indicates that a price or time range holds fewer grid points
// than the generator needs (Frontier needs n distinct values per axis).
// Usage: if errors.Is(err, ErrBadRange) { /* widen range or shrink step */ }.
var ErrBadRange = errors.New("builder: range too narrow")

// builderErrorf wraps a sentinel with the given method context.
// It returns an error of the form "<Method>: <formatted message>: <sentinel>".
//
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}

// SPDX-License-Identifier: MIT
//
// File: display.go
// Role: Text rendering: the PRICE/TIME table and the compact String form.

package options

import (
	"fmt"
	"io"
	"strings"
)

// DefaultPrecision is the number of decimals Display prints.
const DefaultPrecision = 2

// Display writes a two-column PRICE/TIME table of the list to w.
func (l *List) Display(w io.Writer) error {
	return l.DisplayPrecision(w, DefaultPrecision)
}

// DisplayPrecision is Display with an explicit number of decimals.
// A negative precision falls back to DefaultPrecision.
func (l *List) DisplayPrecision(w io.Writer, precision int) error {
	if precision < 0 {
		precision = DefaultPrecision
	}
	if _, err := io.WriteString(w, "   PRICE      TIME\n---------------------\n"); err != nil {
		return err
	}
	for p := l.front; p != nil; p = p.next {
		if _, err := fmt.Fprintf(w, "   %5.*f      %5.*f\n", precision, p.opt.Price, precision, p.opt.Time); err != nil {
			return err
		}
	}

	return nil
}

// String renders the list as [<p,t> <p,t> ...].
func (l *List) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for p := l.front; p != nil; p = p.next {
		if p != l.front {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "<%g,%g>", p.opt.Price, p.opt.Time)
	}
	sb.WriteByte(']')

	return sb.String()
}

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/travelopts/options"
	"github.com/spf13/cobra"
)

// demoPairs is the list the demo walks through.
var demoPairs = [][2]float64{
	{1, 7}, {2, 8}, {2, 9},
	{3, 5}, {5, 8}, {5, 8},
	{5, 9}, {6, 12},
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through every list operation on a small fixed list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout(), a.cfg.Display.Precision)
		},
	}
}

func runDemo(w io.Writer, precision int) error {
	show := func(title string, l *options.List) error {
		fmt.Fprintf(w, "\n%s (%d):\n", title, l.Len())
		return l.DisplayPrecision(w, precision)
	}
	outcome := func(err error) string {
		if err != nil {
			return err.Error()
		}
		return "ok"
	}

	l := options.FromPairs(demoPairs)
	l2 := options.FromPairs(demoPairs)
	if err := show("options", l); err != nil {
		return err
	}
	fmt.Fprintf(w, "size: %d\n", l.Len())
	fmt.Fprintf(w, "compare(<10, 2.9>, <9, 1.9>): %s\n", options.CompareValues(10, 2.9, 9, 1.9))

	fmt.Fprintln(w, "\nexported sequence:")
	for _, o := range l.ToSequence() {
		fmt.Fprintf(w, "%g, %g\n", o.Price, o.Time)
	}

	fmt.Fprintf(w, "\nsorted: %t\npareto: %t\npareto-sorted: %t\n",
		l.IsSorted(), l.IsPareto(), l.IsParetoSorted())

	fmt.Fprintf(w, "insert sorted (22, 9.7): %s\n", outcome(l.InsertSorted(22, 9.7)))
	fmt.Fprintf(w, "insert pareto-sorted (21, 9.7): %s\n", outcome(l.InsertParetoSorted(21, 9.7)))

	_, err := l.UnionParetoSorted(l2)
	fmt.Fprintf(w, "union of raw lists: %s\n", outcome(err))

	f1, f2 := frontier(l), frontier(l2)
	u, err := f1.UnionParetoSorted(f2)
	if err != nil {
		return err
	}
	if err = show("union of frontiers", u); err != nil {
		return err
	}

	pruned := l.Clone()
	if err = pruned.PruneSorted(); err != nil {
		return err
	}
	if err = show("pruned", pruned); err != nil {
		return err
	}

	if err = show("join plus-plus", l.JoinPlusPlus(l2)); err != nil {
		return err
	}
	jm, err := f1.JoinPlusMax(f2)
	if err != nil {
		return err
	}
	if err = show("join plus-max", jm); err != nil {
		return err
	}

	l.Clear()
	fmt.Fprintf(w, "\nsize after clear: %d\n", l.Len())

	return nil
}

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/travelopts/builder"
	"github.com/katalvlaran/travelopts/optfile"
	"github.com/katalvlaran/travelopts/options"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// errBadMode is returned for an unknown join --mode.
var errBadMode = errors.New("travelopts: join mode must be plus or max")

func loadList(path string) (*options.List, error) {
	doc, err := optfile.Load(path)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", path).Int("options", len(doc.Options)).Msg("loaded")

	return doc.List(), nil
}

// frontier returns the Pareto-sorted frontier of l without touching l.
func frontier(l *options.List) *options.List {
	f := l.SortedClone()
	_ = f.PruneSorted() // SortedClone output is always sorted

	return f
}

func loadFrontier(path string, normalize bool) (*options.List, error) {
	l, err := loadList(path)
	if err != nil || !normalize {
		return l, err
	}

	return frontier(l), nil
}

// emit prints l as a table, or saves it when out names a file.
func (a *app) emit(cmd *cobra.Command, name string, l *options.List, out string) error {
	if out != "" {
		if err := optfile.Save(out, optfile.FromList(name, l)); err != nil {
			return err
		}
		log.Info().Str("file", out).Int("options", l.Len()).Msg("saved")
		return nil
	}

	return l.DisplayPrecision(cmd.OutOrStdout(), a.cfg.Display.Precision)
}

func baseName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE",
		Short: "Display a list with its invariant report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loadList(args[0])
			if err != nil {
				return err
			}
			if err = a.emit(cmd, "", l, ""); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "size:          %d\n", l.Len())
			fmt.Fprintf(w, "sorted:        %t\n", l.IsSorted())
			fmt.Fprintf(w, "pareto:        %t\n", l.IsPareto())
			fmt.Fprintf(w, "pareto-sorted: %t\n", l.IsParetoSorted())
			fmt.Fprintf(w, "checksum:      %016x\n", l.Checksum())
			return nil
		},
	}
}

func newPruneCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "prune FILE",
		Short: "Reduce a list to its Pareto frontier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loadList(args[0])
			if err != nil {
				return err
			}
			f := frontier(l)
			log.Info().Int("before", l.Len()).Int("after", f.Len()).Msg("pruned")
			return a.emit(cmd, baseName(args[0])+"-frontier", f, out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the result to a .yaml/.json file")

	return cmd
}

func newUnionCmd(a *app) *cobra.Command {
	var (
		out       string
		normalize bool
	)
	cmd := &cobra.Command{
		Use:   "union A B",
		Short: "Frontier of the union of two Pareto-sorted lists",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := loadFrontier(args[0], normalize)
			if err != nil {
				return err
			}
			y, err := loadFrontier(args[1], normalize)
			if err != nil {
				return err
			}
			u, err := x.UnionParetoSorted(y)
			if err != nil {
				return errors.Wrap(err, "union (try --normalize)")
			}
			return a.emit(cmd, baseName(args[0])+"-or-"+baseName(args[1]), u, out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the result to a .yaml/.json file")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "reduce inputs to their frontiers first")

	return cmd
}

func newJoinCmd(a *app) *cobra.Command {
	var (
		out       string
		mode      string
		normalize bool
	)
	cmd := &cobra.Command{
		Use:   "join A B",
		Short: "Combine two legs: --mode plus (sequential) or max (parallel)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var j *options.List
			switch strings.ToLower(mode) {
			case "plus":
				x, err := loadList(args[0])
				if err != nil {
					return err
				}
				y, err := loadList(args[1])
				if err != nil {
					return err
				}
				j = x.JoinPlusPlus(y)
			case "max":
				x, err := loadFrontier(args[0], normalize)
				if err != nil {
					return err
				}
				y, err := loadFrontier(args[1], normalize)
				if err != nil {
					return err
				}
				if j, err = x.JoinPlusMax(y); err != nil {
					return errors.Wrap(err, "join max (try --normalize)")
				}
			default:
				return errors.Wrapf(errBadMode, "got %q", mode)
			}
			return a.emit(cmd, baseName(args[0])+"-then-"+baseName(args[1]), j, out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the result to a .yaml/.json file")
	cmd.Flags().StringVar(&mode, "mode", "plus", "plus: sum prices and times; max: sum prices, slowest time")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "reduce inputs to their frontiers first (max mode)")

	return cmd
}

func newSplitCmd(a *app) *cobra.Command {
	var (
		maxPrice  string
		normalize bool
	)
	cmd := &cobra.Command{
		Use:   "split FILE",
		Short: "Split a Pareto-sorted list at a price ceiling",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ceiling, err := decimal.NewFromString(maxPrice)
			if err != nil {
				return errors.Wrap(err, "--max-price")
			}
			l, err := loadFrontier(args[0], normalize)
			if err != nil {
				return err
			}
			rest, err := l.SplitSortedPareto(ceiling.InexactFloat64())
			if err != nil {
				return errors.Wrap(err, "split (try --normalize)")
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "within %s:\n", ceiling)
			if err = a.emit(cmd, "", l, ""); err != nil {
				return err
			}
			fmt.Fprintf(w, "above %s:\n", ceiling)
			return a.emit(cmd, "", rest, "")
		},
	}
	cmd.Flags().StringVar(&maxPrice, "max-price", "", "price ceiling (inclusive)")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "reduce the input to its frontier first")
	_ = cmd.MarkFlagRequired("max-price")

	return cmd
}

func newGenerateCmd() *cobra.Command {
	var (
		kind   string
		n      int
		seed   int64
		out    string
		format string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Emit a synthetic option document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var gen func(int, ...builder.BuilderOption) (*options.List, error)
			switch {
			case strings.EqualFold(kind, builder.MethodFrontier):
				gen = builder.Frontier
			case strings.EqualFold(kind, builder.MethodRandom):
				gen = builder.Random
			case strings.EqualFold(kind, builder.MethodSorted):
				gen = builder.Sorted
			default:
				return errors.Errorf("travelopts: unknown kind %q", kind)
			}
			l, err := gen(n, builder.WithSeed(seed))
			if err != nil {
				return err
			}
			doc := optfile.FromList(fmt.Sprintf("%s-%d-seed%d", strings.ToLower(kind), n, seed), l)
			if out != "" {
				return optfile.Save(out, doc)
			}
			f, err := optfile.ParseFormat(format)
			if err != nil {
				return err
			}
			return optfile.Encode(cmd.OutOrStdout(), f, doc)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&kind, "kind", "frontier", "frontier|random|sorted")
	flags.IntVarP(&n, "count", "n", 8, "number of options")
	flags.Int64Var(&seed, "seed", builder.DefaultSeed, "random seed")
	flags.StringVarP(&out, "out", "o", "", "write to a .yaml/.json file instead of stdout")
	flags.StringVar(&format, "format", "yaml", "stdout format (yaml|json)")

	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zephyrtronium/graphcalc"
	"github.com/zephyrtronium/graphcalc/graph"
)

func (a *app) postfixCmd() *cobra.Command {
	var showTree bool
	cmd := &cobra.Command{
		Use:   "postfix expression...",
		Short: "Print expressions in postfix notation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, src := range args {
				e, err := graphcalc.Compile(src)
				if err != nil {
					return fmt.Errorf("%q: %w", src, err)
				}
				if showTree {
					fmt.Fprintln(out, e)
					continue
				}
				fmt.Fprintln(out, e.Postfix())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showTree, "tree", false, "print fully bracketed parse trees instead")
	return cmd
}

func (a *app) findRootCmd() *cobra.Command {
	var min, max, initial float64
	cmd := &cobra.Command{
		Use:   "root expression",
		Short: "Find one root of an expression in an interval",
		Long: `Find a root of an expression in [--min, --max], starting from --initial
or the midpoint. The expression must change sign or touch zero in the
interval.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := graphcalc.Compile(args[0])
			if err != nil {
				return fmt.Errorf("%q: %w", args[0], err)
			}
			f := a.zeroFinder()
			var x float64
			if cmd.Flags().Changed("initial") {
				x, err = f.FindRootFrom(e, min, initial, max)
			} else {
				x, err = f.FindRoot(e, min, max)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), x)
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&min, "min", -10, "left end of the interval")
	f.Float64Var(&max, "max", 10, "right end of the interval")
	f.Float64Var(&initial, "initial", 0, "starting guess (default midpoint)")
	return cmd
}

func (a *app) rootsCmd() *cobra.Command {
	var (
		scan   scanFlags
		digits int
		raw    bool
	)
	cmd := &cobra.Command{
		Use:   "roots expression",
		Short: "Find all roots of an expression in a window",
		Long: `Scan the window in slices and print every root found, in increasing
order. Points where the function reaches the pole threshold are dropped
unless --raw is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := graphcalc.Compile(args[0])
			if err != nil {
				return fmt.Errorf("%q: %w", args[0], err)
			}
			if err := scan.w.Validate(); err != nil {
				return err
			}
			f := a.zeroFinder()
			n := a.subintervals(scan.n)
			var xs []float64
			if raw {
				xs, err = f.FindAllRoots(e, scan.w.Min, scan.w.Max, n)
			} else {
				var pts []graph.Point
				pts, err = graph.Zeros(f, e, scan.w, n)
				for _, p := range pts {
					xs = append(xs, p.X)
				}
			}
			if err != nil {
				return err
			}
			a.log.Debug("found roots", zap.String("expr", e.Source()), zap.Int("count", len(xs)))
			out := cmd.OutOrStdout()
			for _, x := range xs {
				if digits >= 0 {
					x = graph.Point{X: x}.Round(digits).X
				}
				fmt.Fprintln(out, x)
			}
			return nil
		},
	}
	scan.register(cmd)
	cmd.Flags().IntVar(&digits, "digits", graph.ZeroDigits, "decimal places to round to (negative for none)")
	cmd.Flags().BoolVar(&raw, "raw", false, "keep roots at poles")
	return cmd
}

func (a *app) intersectCmd() *cobra.Command {
	var (
		scan   scanFlags
		digits int
	)
	cmd := &cobra.Command{
		Use:   "intersect expression other...",
		Short: "Find the intersections of an expression with others",
		Long: `Find the points where the first expression meets each of the others in
the window. Each line of output is x, y, and the other expression.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := graph.NewSheet(args...)
			if err != nil {
				return err
			}
			pts, err := graph.Intersections(a.intersectionFinder(), s, scan.w, a.subintervals(scan.n))
			if err != nil {
				return err
			}
			writeIntersections(cmd, s, pts, digits)
			return nil
		},
	}
	scan.register(cmd)
	cmd.Flags().IntVar(&digits, "digits", graph.IntersectionDigits, "decimal places to round to (negative for none)")
	return cmd
}

func writeIntersections(cmd *cobra.Command, s *graph.Sheet, pts []graph.Intersection, digits int) {
	out := cmd.OutOrStdout()
	for _, p := range pts {
		q := p.Point
		if digits >= 0 {
			q = q.Round(digits)
		}
		fmt.Fprintf(out, "%v\t%v\t%s\n", q.X, q.Y, s.Function(p.With).Source())
	}
}

func (a *app) tableCmd() *cobra.Command {
	var (
		w graph.Window
		n int
	)
	cmd := &cobra.Command{
		Use:   "table expression",
		Short: "Tabulate an expression over a window",
		Long: `Print x and the expression's value at evenly spaced points across the
window, including both ends. Values at poles print as NaN.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := graphcalc.Compile(args[0])
			if err != nil {
				return fmt.Errorf("%q: %w", args[0], err)
			}
			pts, err := graph.Sample(e, w, n)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range pts {
				fmt.Fprintf(out, "%v\t%v\n", p.X, p.Y)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&w.Min, "min", -10, "left end of the window")
	f.Float64Var(&w.Max, "max", 10, "right end of the window")
	f.IntVarP(&n, "points", "n", 21, "number of points")
	return cmd
}

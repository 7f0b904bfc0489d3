package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zephyrtronium/graphcalc/graph"
	"github.com/zephyrtronium/graphcalc/internal/config"
)

func (a *app) sheetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Work with worksheet files",
	}
	cmd.AddCommand(a.sheetShowCmd(), a.sheetNewCmd())
	return cmd
}

func (a *app) sheetShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show file",
		Short: "Print the zeros and intersections of a worksheet's active function",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := config.LoadWorksheet(args[0])
			if err != nil {
				return err
			}
			s, err := ws.Sheet()
			if err != nil {
				return err
			}
			w := ws.GraphWindow()
			n := ws.SubintervalsOr(a.cfg.Scan.Subintervals)
			a.log.Debug("loaded worksheet",
				zap.String("path", args[0]),
				zap.Int("functions", s.Len()),
				zap.Float64("min", w.Min),
				zap.Float64("max", w.Max),
				zap.Int("subintervals", n),
			)

			zeros, err := graph.ActiveZeros(a.zeroFinder(), s, w, n)
			if err != nil {
				return err
			}
			pts, err := graph.Intersections(a.intersectionFinder(), s, w, n)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "active\t%s\n", s.Function(s.Active()).Source())
			for _, p := range zeros {
				fmt.Fprintf(out, "zero\t%v\n", p.Round(graph.ZeroDigits).X)
			}
			for _, p := range pts {
				q := p.Round(graph.IntersectionDigits)
				fmt.Fprintf(out, "intersection\t%v\t%v\t%s\n", q.X, q.Y, s.Function(p.With).Source())
			}
			return nil
		},
	}
}

func (a *app) sheetNewCmd() *cobra.Command {
	var (
		ws    config.Worksheet
		win   config.Window
		force bool
	)
	cmd := &cobra.Command{
		Use:   "new file expression...",
		Short: "Write a worksheet file",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			ws.Functions = args[1:]
			if cmd.Flags().Changed("min") || cmd.Flags().Changed("max") {
				ws.Window = &win
			}
			// A written sheet must load.
			b, err := ws.Marshal()
			if err != nil {
				return err
			}
			chk, err := config.ParseWorksheet(b)
			if err != nil {
				return err
			}
			if _, err := chk.Sheet(); err != nil {
				return err
			}
			flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
			if !force {
				flag |= os.O_EXCL
			}
			f, err := os.OpenFile(path, flag, 0o644)
			if err != nil {
				if errors.Is(err, os.ErrExist) {
					return fmt.Errorf("%s already exists; use --force to overwrite", path)
				}
				return err
			}
			if _, err := f.Write(b); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	f := cmd.Flags()
	f.IntVar(&ws.Active, "active", 0, "index of the active function")
	f.IntVarP(&ws.Subintervals, "subintervals", "n", 0, "number of slices to scan (0 for the configured default)")
	f.Float64Var(&win.Min, "min", config.DefaultWindow.Min, "left end of the window")
	f.Float64Var(&win.Max, "max", config.DefaultWindow.Max, "right end of the window")
	f.BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

// Command graphcalc evaluates single-variable functions and finds their roots
// and intersections.
//
// Finder tolerances, the default scan resolution, and logging are read from
// GRAPHCALC_* environment variables; see package internal/config.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zephyrtronium/graphcalc/graph"
	"github.com/zephyrtronium/graphcalc/internal/config"
	"github.com/zephyrtronium/graphcalc/internal/logging"
	"github.com/zephyrtronium/graphcalc/roots"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the state shared by all subcommands.
type app struct {
	cfg *config.Config
	log *zap.Logger

	logLevel string
	dev      bool
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), log: zap.NewNop()}
	root := &cobra.Command{
		Use:   "graphcalc",
		Short: "Evaluate single-variable functions and find their roots",
		Long: `graphcalc compiles expressions in x, such as "3*x^2 - sin(x)/2",
evaluates them, and locates their zeros and intersections over a window.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			// Syncing stderr fails on most terminals.
			_ = a.log.Sync()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, or error")
	pf.BoolVar(&a.dev, "dev", false, "human-readable debug logging")

	root.AddCommand(
		a.evalCmd(),
		a.postfixCmd(),
		a.findRootCmd(),
		a.rootsCmd(),
		a.intersectCmd(),
		a.tableCmd(),
		a.sheetCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.dev {
		cfg.Logging.Development = true
		cfg.Logging.Level = "debug"
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	log, err := logging.New(cfg.LoggingConfig())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	a.log.Debug("configured",
		zap.String("command", cmd.Name()),
		zap.Float64("rel_accuracy", cfg.Finder.RelAccuracy),
		zap.Float64("abs_accuracy", cfg.Finder.AbsAccuracy),
		zap.Float64("fval_accuracy", cfg.Finder.FValAccuracy),
		zap.Int("max_iterations", cfg.Finder.MaxIterations),
		zap.Int("max_depth", cfg.Finder.MaxDepth),
		zap.Int("subintervals", cfg.Scan.Subintervals),
	)
	return nil
}

// zeroFinder returns the configured finder.
func (a *app) zeroFinder() *roots.Finder {
	return a.cfg.NewFinder(a.log)
}

// intersectionFinder returns a finder with the intersection tolerances and
// the configured limits.
func (a *app) intersectionFinder() *roots.Finder {
	return graph.IntersectionFinder(
		roots.MaxIterations(a.cfg.Finder.MaxIterations),
		roots.MaxDepth(a.cfg.Finder.MaxDepth),
		roots.Logger(a.log),
	)
}

// scanFlags are the flags of commands that scan a window.
type scanFlags struct {
	w graph.Window
	n int
}

func (s *scanFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&s.w.Min, "min", -10, "left end of the window")
	f.Float64Var(&s.w.Max, "max", 10, "right end of the window")
	f.IntVarP(&s.n, "subintervals", "n", 0, "number of slices to scan (default from GRAPHCALC_SCAN_SUBINTERVALS)")
}

func (a *app) subintervals(n int) int {
	if n > 0 {
		return n
	}
	return a.cfg.Scan.Subintervals
}

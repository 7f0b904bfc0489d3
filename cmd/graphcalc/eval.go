package main

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zephyrtronium/graphcalc"
)

func (a *app) evalCmd() *cobra.Command {
	var (
		inname, verb string
		at           []string
		prec         uint
		echo         bool
	)
	cmd := &cobra.Command{
		Use:   "eval [expression...]",
		Short: "Evaluate expressions at values of x",
		Long: `Evaluate each expression at each --at value. Values given to --at are
themselves expressions, evaluated with x = 0, so --at pi/2 works.

Expressions are read from the arguments and from --in, one per line. With
neither, they are read from standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			srcs, err := sources(cmd.InOrStdin(), inname, args)
			if err != nil {
				return err
			}
			xs, err := points(at, prec)
			if err != nil {
				return err
			}
			exprs := make([]*graphcalc.Expr, 0, len(srcs))
			for _, src := range srcs {
				e, err := graphcalc.Compile(src)
				if err != nil {
					return fmt.Errorf("%q: %w", src, err)
				}
				exprs = append(exprs, e)
			}
			a.log.Debug("evaluating", zap.Int("expressions", len(exprs)), zap.Int("points", len(xs)), zap.Uint("prec", prec))

			out := cmd.OutOrStdout()
			format := verb + "\n"
			for _, e := range exprs {
				for i, x := range xs {
					if echo {
						fmt.Fprintf(out, "%v : ", e)
					}
					if len(xs) > 1 {
						fmt.Fprintf(out, "x=%s : ", at[i])
					}
					r, err := evalAt(e, x, prec)
					if err != nil {
						fmt.Fprintln(out, err)
						continue
					}
					fmt.Fprintf(out, format, r)
				}
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&inname, "in", "", "input file, one expression per line (- for stdin)")
	f.StringVar(&verb, "fmt", "%g", "result formatting string")
	f.StringArrayVar(&at, "at", []string{"0"}, "value of x (any number of times)")
	f.UintVarP(&prec, "prec", "p", 0, "precision of calculations in bits (0 for float64)")
	f.BoolVar(&echo, "echo", false, "print parse trees")
	return cmd
}

// sources collects the expressions named by args and the input file.
func sources(stdin io.Reader, inname string, args []string) ([]string, error) {
	var r io.Reader
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	case inname == "-", len(args) == 0:
		r = stdin
	}
	var srcs []string
	if r != nil {
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			if s := strings.TrimSpace(sc.Text()); s != "" {
				srcs = append(srcs, s)
			}
		}
		if err := sc.Err(); err != nil {
			return nil, err
		}
	}
	return append(srcs, args...), nil
}

// points evaluates each --at value. The results are float64 if prec is 0 and
// *big.Float otherwise.
func points(at []string, prec uint) ([]any, error) {
	xs := make([]any, 0, len(at))
	for _, s := range at {
		e, err := graphcalc.Compile(s)
		if err != nil {
			return nil, fmt.Errorf("--at %q: %w", s, err)
		}
		var x any
		if prec == 0 {
			x, err = e.Eval(0)
		} else {
			x, err = e.EvalBig(new(big.Float).SetPrec(prec), prec)
		}
		if err != nil {
			return nil, fmt.Errorf("--at %q: %w", s, err)
		}
		xs = append(xs, x)
	}
	return xs, nil
}

func evalAt(e *graphcalc.Expr, x any, prec uint) (any, error) {
	switch x := x.(type) {
	case float64:
		return e.Eval(x)
	case *big.Float:
		return e.EvalBig(x, prec)
	}
	panic(fmt.Errorf("graphcalc: bad point type %T", x))
}

//go:build go1.18
// +build go1.18

package graphcalc_test

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/zephyrtronium/graphcalc"
)

func FuzzCompile(f *testing.F) {
	f.Add("x")
	f.Add("y")
	f.Add("3+4*sin(x)")
	f.Add("-(x^2)--1")
	f.Add("((")
	f.Fuzz(func(t *testing.T, s string) {
		e, err := graphcalc.Compile(s)
		if err != nil {
			if !errors.Is(err, graphcalc.ErrSyntax) {
				t.Errorf("%q: error %v is not ErrSyntax", s, err)
			}
			return
		}
		if _, err := e.Eval(1); err != nil {
			t.Errorf("%q compiled but failed to evaluate: %v", s, err)
		}
		if e.String() == "" {
			t.Errorf("%q compiled but has no infix form", s)
		}
	})
}

func FuzzEvalBig(f *testing.F) {
	f.Add("x", 1.0)
	f.Add("ln(x)", -1.0)
	f.Add("x^0.5", -4.0)
	f.Fuzz(func(t *testing.T, s string, x float64) {
		if math.IsNaN(x) {
			return
		}
		e, err := graphcalc.Compile(s)
		if err != nil {
			return
		}
		// Only domain errors are allowed; anything else panics.
		_, err = e.EvalBig(big.NewFloat(x), 64)
		var de *graphcalc.DomainError
		if err != nil && !errors.As(err, &de) {
			t.Errorf("%q at %g: unexpected error %v", s, x, err)
		}
	})
}

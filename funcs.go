package graphcalc

import (
	"errors"
	"math"
	"math/big"
	"sort"

	"github.com/zephyrtronium/bigfloat"
)

// function is a member of the fixed function vocabulary. Every function takes
// exactly one argument.
type function struct {
	name string
	// f evaluates the function in float64.
	f func(float64) float64
	// big evaluates the function to the precision of out. If big is nil, the
	// argument is rounded to float64 and widened back after calling f.
	big func(out, in *big.Float) *big.Float
	// domain reports whether an argument is inside the function's domain for
	// extended-precision evaluation. nil means every real is allowed.
	domain func(in *big.Float) bool
}

var funcs = map[string]*function{
	"sin":    {name: "sin", f: math.Sin},
	"cos":    {name: "cos", f: math.Cos},
	"tan":    {name: "tan", f: math.Tan},
	"arcsin": {name: "arcsin", f: math.Asin, domain: unitInterval},
	"arccos": {name: "arccos", f: math.Acos, domain: unitInterval},
	"arctan": {name: "arctan", f: math.Atan},
	"ln": {
		name:   "ln",
		f:      math.Log,
		big:    bigfloat.Log,
		domain: func(in *big.Float) bool { return in.Sign() > 0 },
	},
	"sqrt": {
		name:   "sqrt",
		f:      math.Sqrt,
		big:    (*big.Float).Sqrt,
		domain: func(in *big.Float) bool { return in.Sign() >= 0 },
	},
	"cbrt": {name: "cbrt", f: math.Cbrt},
	"abs":  {name: "abs", f: math.Abs, big: (*big.Float).Abs},
}

// Functions returns the names of the functions an expression may call, in
// sorted order.
func Functions() []string {
	names := make([]string, 0, len(funcs))
	for name := range funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func unitInterval(in *big.Float) bool {
	return new(big.Float).Abs(in).Cmp(big.NewFloat(1)) <= 0
}

// callBig evaluates fn at in to the precision of r, storing the result in r.
func (fn *function) callBig(r, in *big.Float) (err error) {
	if fn.domain != nil && !fn.domain(in) {
		return &DomainError{X: new(big.Float).Copy(in), Func: fn.name}
	}
	if fn.big == nil {
		x, _ := in.Float64()
		y := fn.f(x)
		if math.IsNaN(y) {
			return &DomainError{X: new(big.Float).Copy(in), Func: fn.name}
		}
		r.SetFloat64(y)
		return nil
	}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err = r.(error) // panic if not error
		if errors.As(err, &big.ErrNaN{}) {
			err = &DomainError{X: new(big.Float).Copy(in), Func: fn.name}
			return
		}
		panic(err)
	}()
	fn.big(r, in)
	return nil
}

// bigE sets out to Euler's number at the precision of out.
func bigE(out *big.Float) *big.Float {
	var one big.Float
	one.SetPrec(out.Prec()).SetFloat64(1)
	return bigfloat.Exp(out, &one)
}

// bigPi sets out to π at the precision of out.
func bigPi(out *big.Float) *big.Float {
	return bigfloat.Pi(out)
}

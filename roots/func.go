package roots

import (
	"gonum.org/v1/gonum/diff/fd"
)

// Func is a real function of one variable. At must be safe to call
// concurrently if the Func is searched from several goroutines.
type Func interface {
	At(x float64) float64
}

// FuncOf adapts an ordinary function to Func.
type FuncOf func(float64) float64

// At returns f(x).
func (f FuncOf) At(x float64) float64 {
	return f(x)
}

// Difference is F - G. Its roots are the x coordinates where F and G
// intersect.
type Difference struct {
	F, G Func
}

// At returns F(x) - G(x).
func (d Difference) At(x float64) float64 {
	return d.F.At(x) - d.G.At(x)
}

// DerivativeStep is the step of the centered difference Derivative uses when
// its Step is 0.
const DerivativeStep = 1e-6

// Derivative approximates the derivative of F by the centered difference
// (F(x+h) - F(x-h)) / 2h.
type Derivative struct {
	F Func
	// Step is the step h. If Step is 0, DerivativeStep is used.
	Step float64
}

// At returns the approximate derivative of F at x.
func (d Derivative) At(x float64) float64 {
	step := d.Step
	if step == 0 {
		step = DerivativeStep
	}
	return fd.Derivative(d.F.At, x, &fd.Settings{
		Formula: fd.Central,
		Step:    step,
	})
}

var (
	_ Func = FuncOf(nil)
	_ Func = Difference{}
	_ Func = Derivative{}
)

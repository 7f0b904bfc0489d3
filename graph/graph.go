// Package graph computes the marked points of a graphing worksheet: zeros of
// the active function and its intersections with the other functions, over a
// window of x values.
package graph

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/zephyrtronium/graphcalc"
	"github.com/zephyrtronium/graphcalc/roots"
)

const (
	// PoleThreshold is the magnitude at or above which a function value
	// counts as a pole rather than a point on the graph. Sign changes across
	// vertical asymptotes look like roots to the finder; this drops them.
	PoleThreshold = 10000
	// DefaultSubintervals is the number of slices a window is scanned in.
	DefaultSubintervals = 1000
	// ZeroDigits and IntersectionDigits are the decimal places points are
	// displayed with.
	ZeroDigits         = 3
	IntersectionDigits = 5
)

var _ roots.Func = (*graphcalc.Expr)(nil)

// ZeroFinder returns a Finder with the tolerances used for zeros.
func ZeroFinder(opts ...roots.Option) *roots.Finder {
	return roots.New(1e-15, 1e-17, 1e-17, opts...)
}

// IntersectionFinder returns a Finder with the tolerances used for
// intersections.
func IntersectionFinder(opts ...roots.Option) *roots.Finder {
	return roots.New(1e-15, 1e-15, 1e-17, opts...)
}

// Point is a point on a graph.
type Point struct {
	X, Y float64
}

// Round returns p with both coordinates rounded to the given number of
// decimal places. Negative zero becomes zero.
func (p Point) Round(digits int) Point {
	return Point{X: round(p.X, digits), Y: round(p.Y, digits)}
}

func round(x float64, digits int) float64 {
	s := math.Pow(10, float64(digits))
	r := math.Round(x*s) / s
	if r == 0 {
		return 0
	}
	return r
}

// Intersection is an intersection of the active function with another.
type Intersection struct {
	Point
	// With is the index of the other function.
	With int
}

// Window is the range of x values under consideration.
type Window struct {
	Min, Max float64
}

// Centered returns the window visible on a canvas width pixels wide, centered
// on the origin, at scale pixels per unit.
func Centered(width, scale float64) Window {
	return Window{Min: -width / 2 / scale, Max: width / 2 / scale}
}

// Validate returns a *roots.DomainError if w.Min > w.Max or either bound is
// not finite.
func (w Window) Validate() error {
	if !(w.Min <= w.Max) || math.IsInf(w.Min, 0) || math.IsInf(w.Max, 0) {
		return &roots.DomainError{Reason: roots.ErrInvalidInterval, Min: w.Min, Max: w.Max}
	}
	return nil
}

// Samples returns n evenly spaced x values spanning the window, including
// both ends. n must be at least 2.
func (w Window) Samples(n int) []float64 {
	return floats.Span(make([]float64, n), w.Min, w.Max)
}

// Sample evaluates fn at n evenly spaced points across the window. Points
// at poles or outside the function's domain have a Y of NaN.
func Sample(fn roots.Func, w Window, n int) ([]Point, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, &roots.DomainError{Reason: roots.ErrSubintervals, Min: w.Min, Max: w.Max}
	}
	xs := w.Samples(n)
	pts := make([]Point, len(xs))
	for i, x := range xs {
		y := fn.At(x)
		if !onGraph(y) {
			y = math.NaN()
		}
		pts[i] = Point{X: x, Y: y}
	}
	return pts, nil
}

// onGraph reports whether a function value is a finite point below the pole
// threshold.
func onGraph(y float64) bool {
	return math.Abs(y) < PoleThreshold
}

// Zeros finds the zeros of fn in the window, scanning it in n slices.
// Candidates where |fn| reaches PoleThreshold are dropped.
func Zeros(f *roots.Finder, fn roots.Func, w Window, n int) ([]Point, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	xs, err := f.FindAllRoots(fn, w.Min, w.Max, n)
	if err != nil {
		return nil, err
	}
	pts := make([]Point, 0, len(xs))
	for _, x := range xs {
		if onGraph(fn.At(x)) {
			pts = append(pts, Point{X: x})
		}
	}
	return pts, nil
}

// Intersections finds the points where the sheet's active function meets
// each other function in the window, scanning in n slices. Each point has the
// active function's value as its Y. Points where either function reaches
// PoleThreshold are dropped. The result is ordered by the index of the other
// function, then by X.
func Intersections(f *roots.Finder, s *Sheet, w Window, n int) ([]Intersection, error) {
	if s.Len() == 0 {
		return nil, ErrEmpty
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	act := s.Function(s.Active())
	var r []Intersection
	for i := 0; i < s.Len(); i++ {
		if i == s.Active() {
			continue
		}
		other := s.Function(i)
		xs, err := f.FindAllRoots(roots.Difference{F: act, G: other}, w.Min, w.Max, n)
		if err != nil {
			return nil, err
		}
		for _, x := range xs {
			y, y2 := act.At(x), other.At(x)
			if onGraph(y) && onGraph(y2) {
				r = append(r, Intersection{Point: Point{X: x, Y: y}, With: i})
			}
		}
	}
	return r, nil
}

// ActiveZeros finds the zeros of the sheet's active function.
func ActiveZeros(f *roots.Finder, s *Sheet, w Window, n int) ([]Point, error) {
	if s.Len() == 0 {
		return nil, ErrEmpty
	}
	return Zeros(f, s.Function(s.Active()), w, n)
}

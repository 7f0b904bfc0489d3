// Package roots finds zeros of real functions of one variable.
//
// A Finder locates a single root in an interval with Brent's method. When the
// function does not change sign over the interval, the Finder looks for a
// point where the function touches zero without crossing it, by searching for
// a zero of the numeric derivative and checking the function value there.
// FindAllRoots slices an interval and runs the single-root search on each
// slice, then removes near-duplicates with Decluster.
//
// Any type with an At(float64) float64 method is a Func, including compiled
// expressions from package graphcalc. Difference and Derivative compose Funcs
// for intersections and stationary points.
package roots

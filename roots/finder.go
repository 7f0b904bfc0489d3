package roots

import (
	"math"

	"go.uber.org/zap"
)

// Finder finds roots to fixed tolerances. A Finder is immutable and safe for
// concurrent use when the functions it searches are.
type Finder struct {
	rel, abs, fva float64

	maxIter  int
	maxDepth int
	log      *zap.Logger
}

// Option is an option used when creating a Finder.
type Option interface {
	finderOption()
}

type (
	iteropt  int
	depthopt int
	logopt   struct{ l *zap.Logger }
)

func (iteropt) finderOption()  {}
func (depthopt) finderOption() {}
func (logopt) finderOption()   {}

// MaxIterations caps the iterations of Brent's method in one bracket. The
// default is 1000.
func MaxIterations(n int) Option {
	return iteropt(n)
}

// MaxDepth caps how many derivatives deep the tangency search may go. The
// default is 3. MaxDepth(0) disables the search entirely, so only sign
// changes are found.
func MaxDepth(n int) Option {
	return depthopt(n)
}

// Logger sets a logger for debug messages about the search. The default
// discards everything.
func Logger(l *zap.Logger) Option {
	return logopt{l}
}

// Defaults for options.
const (
	DefaultMaxIterations = 1000
	DefaultMaxDepth      = 3
)

// New creates a Finder. relativeAccuracy and absoluteAccuracy bound the
// final bracket: Brent's method stops when half the bracket is within
// 2*relativeAccuracy*|b| + absoluteAccuracy of the estimate b.
// functionValueAccuracy bounds |f(x)| for a root found by the tangency
// search.
func New(relativeAccuracy, absoluteAccuracy, functionValueAccuracy float64, opts ...Option) *Finder {
	f := Finder{
		rel:      relativeAccuracy,
		abs:      absoluteAccuracy,
		fva:      functionValueAccuracy,
		maxIter:  DefaultMaxIterations,
		maxDepth: DefaultMaxDepth,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case iteropt:
			f.maxIter = int(opt)
		case depthopt:
			f.maxDepth = int(opt)
		case logopt:
			if opt.l != nil {
				f.log = opt.l
			}
		default:
			panic("roots: unknown option type")
		}
	}
	return &f
}

// RelativeAccuracy returns the relative accuracy of the Finder.
func (f *Finder) RelativeAccuracy() float64 { return f.rel }

// AbsoluteAccuracy returns the absolute accuracy of the Finder.
func (f *Finder) AbsoluteAccuracy() float64 { return f.abs }

// FunctionValueAccuracy returns the function value accuracy of the Finder.
func (f *Finder) FunctionValueAccuracy() float64 { return f.fva }

// MaxIterations returns the iteration cap of Brent's method.
func (f *Finder) MaxIterations() int { return f.maxIter }

// MaxDepth returns the depth cap of the tangency search.
func (f *Finder) MaxDepth() int { return f.maxDepth }

// FindRoot finds a root of fn in [min, max], starting from the midpoint.
func (f *Finder) FindRoot(fn Func, min, max float64) (float64, error) {
	initial := 0.5*min + 0.5*max
	if min == max {
		initial = min
	}
	return f.FindRootFrom(fn, min, initial, max)
}

// FindRootFrom finds a root of fn in [min, max] using initial to split the
// interval. The error is a *DomainError if min > max, if initial is outside
// the interval, or if no root can be found in it. It is ErrNoConvergence if
// Brent's method hits the iteration cap.
func (f *Finder) FindRootFrom(fn Func, min, initial, max float64) (float64, error) {
	r, err := f.search(fn, min, initial, max, 0)
	if err != nil {
		return 0, err
	}
	if !r.found {
		return 0, &DomainError{Reason: ErrNoBracket, Min: min, Initial: initial, Max: max}
	}
	return r.x, nil
}

// result is the outcome of a search that did not fail.
type result struct {
	x     float64
	found bool
}

// search finds a root of fn in [min, max]. Not finding one is not an error.
func (f *Finder) search(fn Func, min, initial, max float64, depth int) (result, error) {
	if min > max {
		return result{}, &DomainError{Reason: ErrInvalidInterval, Min: min, Initial: initial, Max: max}
	}
	if initial < min || initial > max {
		return result{}, &DomainError{Reason: ErrGuessOutOfRange, Min: min, Initial: initial, Max: max}
	}
	yInitial := fn.At(initial)
	if isZero(yInitial) {
		return result{initial, true}, nil
	}
	yMin := fn.At(min)
	if isZero(yMin) {
		return result{min, true}, nil
	}
	yMax := fn.At(max)
	if isZero(yMax) {
		return result{max, true}, nil
	}
	if opposite(yInitial, yMin) {
		x, err := f.brent(fn, min, initial, yMin, yInitial)
		return result{x, err == nil}, err
	}
	if opposite(yInitial, yMax) {
		x, err := f.brent(fn, initial, max, yInitial, yMax)
		return result{x, err == nil}, err
	}
	return f.tangency(fn, min, max, depth)
}

// tangency looks for a root where fn touches zero without changing sign. If
// the derivative changes sign over [min, max], its zero is a candidate, and
// the candidate is a root if |fn| is within the function value accuracy
// there. This is a heuristic; it can miss roots and only reports those that
// pass the function value check.
func (f *Finder) tangency(fn Func, min, max float64, depth int) (result, error) {
	if depth >= f.maxDepth {
		if f.maxDepth > 0 {
			f.log.Debug("tangency search depth cap reached",
				zap.Float64("min", min),
				zap.Float64("max", max),
				zap.Int("depth", depth),
			)
		}
		return result{}, nil
	}
	d := Derivative{F: fn}
	if !opposite(d.At(min), d.At(max)) {
		return result{}, nil
	}
	initial := 0.5*min + 0.5*max
	if min == max {
		initial = min
	}
	r, err := f.search(d, min, initial, max, depth+1)
	if err != nil || !r.found {
		return result{}, err
	}
	if y := fn.At(r.x); !(math.Abs(y) <= f.fva) {
		return result{}, nil
	}
	f.log.Debug("accepted stationary point as root",
		zap.Float64("x", r.x),
		zap.Int("depth", depth),
	)
	return r, nil
}

// brent runs Brent's method on [lo, hi], where flo and fhi are the function
// values at the ends and have opposite signs.
func (f *Finder) brent(fn Func, lo, hi, flo, fhi float64) (float64, error) {
	a, fa := lo, flo
	b, fb := hi, fhi
	c, fc := a, fa
	d := b - a
	e := d
	for i := 0; i < f.maxIter; i++ {
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		tol := 2*f.rel*math.Abs(b) + f.abs
		m := 0.5 * (c - b)
		if math.Abs(m) <= tol || isZero(fb) {
			return b, nil
		}
		if math.Abs(e) < tol || math.Abs(fa) <= math.Abs(fb) {
			// Bisect.
			d = m
			e = d
		} else {
			s := fb / fa
			var p, q float64
			if a == c {
				// Secant.
				p = 2 * m * s
				q = 1 - s
			} else {
				// Inverse quadratic interpolation.
				q = fa / fc
				r := fb / fc
				p = s * (2*m*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}
			s = e
			e = d
			if p >= 1.5*m*q-math.Abs(tol*q) || p >= math.Abs(0.5*s*q) {
				// The interpolated point is outside the bracket or is not
				// shrinking it fast enough.
				d = m
				e = d
			} else {
				d = p / q
			}
		}
		a, fa = b, fb
		switch {
		case math.Abs(d) > tol:
			b += d
		case m > 0:
			b += tol
		default:
			b -= tol
		}
		fb = fn.At(b)
		if fb > 0 && fc > 0 || fb <= 0 && fc <= 0 {
			c, fc = a, fa
			d = b - a
			e = d
		}
	}
	f.log.Debug("brent iteration cap reached",
		zap.Float64("lo", lo),
		zap.Float64("hi", hi),
		zap.Float64("b", b),
		zap.Int("iterations", f.maxIter),
	)
	return b, ErrNoConvergence
}

// isZero reports whether y is zero or smaller in magnitude than the smallest
// positive float64.
func isZero(y float64) bool {
	return math.Abs(y) <= math.SmallestNonzeroFloat64
}

// opposite reports whether a and b are nonzero with opposite signs.
func opposite(a, b float64) bool {
	return a < 0 && b > 0 || a > 0 && b < 0
}

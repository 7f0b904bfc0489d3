package roots

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidInterval means the lower bound of an interval is greater
	// than its upper bound.
	ErrInvalidInterval = errors.New("lower bound is greater than upper bound")
	// ErrGuessOutOfRange means an initial guess is outside its interval.
	ErrGuessOutOfRange = errors.New("initial guess is out of range")
	// ErrNoBracket means the function neither changes sign over an interval
	// nor touches zero at a stationary point in it.
	ErrNoBracket = errors.New("interval does not bracket a root")
	// ErrSubintervals means a scan was asked for fewer than one slice.
	ErrSubintervals = errors.New("number of subintervals must be positive")
)

// ErrNoConvergence is returned when Brent's method reaches the iteration cap
// without meeting its convergence criterion. It is not a DomainError.
var ErrNoConvergence = errors.New("roots: iteration limit reached without convergence")

// DomainError is an error for a search whose arguments cannot contain a root.
// It unwraps to its Reason, one of ErrInvalidInterval, ErrGuessOutOfRange,
// ErrNoBracket, or ErrSubintervals.
type DomainError struct {
	Reason  error
	Min     float64
	Initial float64
	Max     float64
}

func (err *DomainError) Error() string {
	r := "roots: " + err.Reason.Error()
	if err.Reason == ErrGuessOutOfRange {
		r += " " + ftoa(err.Initial)
	}
	return r + " [" + ftoa(err.Min) + ", " + ftoa(err.Max) + "]"
}

func (err *DomainError) Unwrap() error {
	return err.Reason
}

func ftoa(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

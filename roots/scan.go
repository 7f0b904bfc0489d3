package roots

import (
	"errors"
	"sort"

	"go.uber.org/zap"
)

// FindAllRoots looks for roots of fn in [min, max] by splitting the interval
// into subintervals slices of equal width and searching each one. Slices
// without a root are skipped. Roots closer together than half a slice width
// are merged, keeping the smallest. The result is in ascending order.
//
// The error is a *DomainError if subintervals < 1 or min > max. A search that
// fails to converge stops the scan with ErrNoConvergence.
//
// The scan is not guaranteed to find every root. In particular, a slice
// containing two roots of the same parity with no stationary point accepted
// by the tangency search yields neither.
func (f *Finder) FindAllRoots(fn Func, min, max float64, subintervals int) ([]float64, error) {
	if subintervals < 1 {
		return nil, &DomainError{Reason: ErrSubintervals, Min: min, Max: max}
	}
	if min > max {
		return nil, &DomainError{Reason: ErrInvalidInterval, Min: min, Max: max}
	}
	if min == max {
		return []float64{}, nil
	}
	width := (max - min) / float64(subintervals)
	var found []float64
	for i := 0; i < subintervals; i++ {
		lo := min + float64(i)*width
		hi := min + float64(i+1)*width
		if i == subintervals-1 || hi > max {
			hi = max
		}
		if lo > hi {
			// Rounding can push the last start past max.
			lo = hi
		}
		r, err := f.search(fn, lo, 0.5*lo+0.5*hi, hi, 0)
		if err != nil {
			var de *DomainError
			if errors.As(err, &de) {
				continue
			}
			return nil, err
		}
		if r.found {
			found = append(found, r.x)
		}
	}
	roots := Decluster(found, width/2)
	f.log.Debug("scanned for roots",
		zap.Float64("min", min),
		zap.Float64("max", max),
		zap.Int("subintervals", subintervals),
		zap.Int("candidates", len(found)),
		zap.Int("roots", len(roots)),
	)
	return roots, nil
}

// Decluster returns the candidates in ascending order with near-duplicates
// removed. The smallest candidate is kept, and each following candidate is
// kept only if it is more than minSeparation above the last one kept. The
// input slice is not modified.
func Decluster(candidates []float64, minSeparation float64) []float64 {
	r := make([]float64, 0, len(candidates))
	if len(candidates) == 0 {
		return r
	}
	sorted := append([]float64(nil), candidates...)
	sort.Float64s(sorted)
	r = append(r, sorted[0])
	for _, x := range sorted[1:] {
		if x-r[len(r)-1] > minSeparation {
			r = append(r, x)
		}
	}
	return r
}

package graph

import (
	"errors"
	"strconv"

	"github.com/zephyrtronium/graphcalc"
)

// ErrIndex is returned for a function index outside a Sheet.
var ErrIndex = errors.New("graph: function index out of range")

// ErrEmpty is returned when a Sheet has no active function.
var ErrEmpty = errors.New("graph: sheet has no functions")

// Sheet is an ordered list of compiled functions with one active function.
// A Sheet must not be modified concurrently.
type Sheet struct {
	fns    []*graphcalc.Expr
	active int
}

// NewSheet compiles each source and adds it to a new Sheet. The first
// function is active.
func NewSheet(sources ...string) (*Sheet, error) {
	s := &Sheet{fns: make([]*graphcalc.Expr, 0, len(sources))}
	for _, src := range sources {
		if _, err := s.Add(src); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add compiles src and appends it to the sheet. The error is a compile error
// with the function's index prepended.
func (s *Sheet) Add(src string) (*graphcalc.Expr, error) {
	e, err := graphcalc.Compile(src)
	if err != nil {
		return nil, &FunctionError{Index: len(s.fns), Src: src, Err: err}
	}
	s.fns = append(s.fns, e)
	return e, nil
}

// Remove removes the function at index i. The active function stays the same
// unless it is the one removed, in which case the function before it becomes
// active.
func (s *Sheet) Remove(i int) error {
	if i < 0 || i >= len(s.fns) {
		return ErrIndex
	}
	s.fns = append(s.fns[:i], s.fns[i+1:]...)
	if i < s.active || i == s.active && s.active > 0 {
		s.active--
	}
	return nil
}

// Len returns the number of functions in the sheet.
func (s *Sheet) Len() int {
	return len(s.fns)
}

// Function returns the function at index i, or nil if there is none.
func (s *Sheet) Function(i int) *graphcalc.Expr {
	if i < 0 || i >= len(s.fns) {
		return nil
	}
	return s.fns[i]
}

// SetActive makes the function at index i active.
func (s *Sheet) SetActive(i int) error {
	if i < 0 || i >= len(s.fns) {
		return ErrIndex
	}
	s.active = i
	return nil
}

// Active returns the index of the active function.
func (s *Sheet) Active() int {
	return s.active
}

// FunctionError is an error compiling a function of a Sheet.
type FunctionError struct {
	// Index is the position the function would have had in the sheet.
	Index int
	// Src is the function's source text.
	Src string
	// Err is the compile error.
	Err error
}

func (err *FunctionError) Error() string {
	return "function " + strconv.Itoa(err.Index) + " " + strconv.Quote(err.Src) + ": " + err.Err.Error()
}

func (err *FunctionError) Unwrap() error {
	return err.Err
}

package graphcalc

import (
	"errors"
	"math/big"
	"strconv"
)

// ErrSyntax is the error that every compile-time error unwraps to. Use
// errors.Is(err, ErrSyntax) to distinguish bad input from other failures.
var ErrSyntax = errors.New("syntax error")

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This is "number" for
	// malformed numeric literals or the empty string for an unexpected
	// character.
	Kind string
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *LexError) Error() string {
	if err.Kind == "" {
		return errpos(err.Col, "unexpected character "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "invalid "+err.Kind+" token "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Unwrap() error {
	return ErrSyntax
}

// NameError is an error indicating an identifier that is neither the
// variable, a constant, nor a known function. It implements InputError.
type NameError struct {
	// Col is the position of the identifier.
	Col int
	// Name is the identifier that was not understood.
	Name string
}

func (err *NameError) Error() string {
	return errpos(err.Col, "unknown identifier "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int {
	return err.Col
}

func (err *NameError) Unwrap() error {
	return ErrSyntax
}

// BracketError is an error indicating mismatched parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is the opening parenthesis, if it is the unmatched one.
	Left string
	// Right is the closing parenthesis, if it is the unmatched one.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "mismatched parentheses: "+err.Right+" with no open parenthesis")
	}
	return errpos(err.Col, "mismatched parentheses: "+err.Left+" with no close parenthesis")
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Unwrap() error {
	return ErrSyntax
}

// OperandError is an error indicating an operator or function that does not
// have enough operands. It implements InputError.
type OperandError struct {
	// Col is the position of the operator or function.
	Col int
	// Op is the operator or function name.
	Op string
	// Want is the number of operands Op takes.
	Want int
	// Have is the number of operands that were available.
	Have int
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "missing operand for "+strconv.Quote(err.Op)+": need "+strconv.Itoa(err.Want)+", have "+strconv.Itoa(err.Have))
}

func (err *OperandError) Pos() int {
	return err.Col
}

func (err *OperandError) Unwrap() error {
	return ErrSyntax
}

// StackError is an error indicating that an expression does not reduce to
// exactly one value, e.g. "" or "2 3". It implements InputError.
type StackError struct {
	// Col is the position just past the end of the input.
	Col int
	// Len is the number of values left after evaluation.
	Len int
}

func (err *StackError) Error() string {
	if err.Len == 0 {
		return errpos(err.Col, "invalid expression: no value")
	}
	return errpos(err.Col, "invalid expression: "+strconv.Itoa(err.Len)+" values with no operator between them")
}

func (err *StackError) Pos() int {
	return err.Col
}

func (err *StackError) Unwrap() error {
	return ErrSyntax
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*StackError)(nil)
)

// DomainError is an error returned from extended-precision evaluation when a
// function or operator is applied outside its domain. DomainError unwraps to
// big.ErrNaN.
type DomainError struct {
	// X is the out-of-domain argument.
	X *big.Float
	// Func is a name identifying the function or operator.
	Func string
}

func (err *DomainError) Error() string {
	r := "outside domain"
	if err.X != nil {
		r = err.X.String() + " " + r
	}
	if err.Func != "" {
		r += " of " + err.Func
	}
	return r
}

func (err *DomainError) Unwrap() error {
	return big.ErrNaN{}
}

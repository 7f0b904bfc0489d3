package graphcalc

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/zephyrtronium/bigfloat"
)

// Expr is a compiled expression in the single variable x. An Expr is
// immutable and safe for concurrent use.
type Expr struct {
	src     string
	postfix []token
	// depth is the greatest number of values on the stack during evaluation.
	depth int
}

// Compile tokenizes and converts an expression once, so that it can be
// evaluated cheaply for many values of x. Every syntax error is reported by
// Compile; the error unwraps to ErrSyntax and implements InputError.
func Compile(src string) (*Expr, error) {
	toks, err := tokenize(strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	postfix, err := toPostfix(toks)
	if err != nil {
		return nil, err
	}
	depth, err := check(postfix, utf8.RuneCountInString(src)+1)
	if err != nil {
		return nil, err
	}
	return &Expr{src: src, postfix: postfix, depth: depth}, nil
}

// MustCompile is like Compile but panics if the expression is invalid.
func MustCompile(src string) *Expr {
	e, err := Compile(src)
	if err != nil {
		panic("graphcalc: Compile(" + strconv.Quote(src) + "): " + err.Error())
	}
	return e
}

// Source returns the text the expression was compiled from.
func (e *Expr) Source() string {
	return e.src
}

// Postfix returns the expression in postfix order, with tokens separated by
// spaces and unary minus written as neg.
func (e *Expr) Postfix() string {
	return postfixString(e.postfix)
}

// String returns a fully bracketed infix rendering of the expression.
func (e *Expr) String() string {
	n := tree(e.postfix)
	if n == nil {
		return ""
	}
	return n.String()
}

// Eval evaluates the expression at x. An error is possible only for an Expr
// that did not come from Compile. Results are not checked for infinities or
// NaN; those propagate as IEEE arithmetic produces them.
func (e *Expr) Eval(x float64) (float64, error) {
	var arr [16]float64
	stack := arr[:0]
	if e.depth > len(arr) {
		stack = make([]float64, 0, e.depth)
	}
	for _, tok := range e.postfix {
		switch tok.kind {
		case tokenNum, tokenConst:
			stack = append(stack, tok.num)
		case tokenVar:
			stack = append(stack, x)
		case tokenFunc:
			if len(stack) < 1 {
				return 0, &OperandError{Col: tok.pos, Op: tok.text, Want: 1}
			}
			v := &stack[len(stack)-1]
			*v = tok.fn.f(*v)
		case tokenNeg:
			if len(stack) < 1 {
				return 0, &OperandError{Col: tok.pos, Op: tok.text, Want: 1}
			}
			v := &stack[len(stack)-1]
			*v = -*v
		case tokenOp:
			if len(stack) < 2 {
				return 0, &OperandError{Col: tok.pos, Op: tok.text, Want: 2, Have: len(stack)}
			}
			r := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			l := &stack[len(stack)-1]
			switch tok.text {
			case "+":
				*l += r
			case "-":
				*l -= r
			case "*":
				*l *= r
			case "/":
				*l /= r
			case "^":
				*l = math.Pow(*l, r)
			default:
				panic("graphcalc: invalid operator " + tok.String())
			}
		default:
			panic("graphcalc: invalid postfix token " + tok.String())
		}
	}
	if len(stack) != 1 {
		return 0, &StackError{Col: utf8.RuneCountInString(e.src) + 1, Len: len(stack)}
	}
	return stack[0], nil
}

// At evaluates the expression at x. It returns NaN if evaluation fails, which
// cannot happen for an expression returned by Compile.
func (e *Expr) At(x float64) float64 {
	r, err := e.Eval(x)
	if err != nil {
		return math.NaN()
	}
	return r
}

// EvalBig evaluates the expression at x to prec bits of precision. If prec is
// 0, it defaults to 64. Unlike Eval, arguments outside the domain of an
// operation produce a *DomainError instead of NaN.
//
// ln, ^, e, and π are computed to full precision, as are arithmetic, sqrt,
// and abs. The trigonometric functions and cbrt are computed in float64.
func (e *Expr) EvalBig(x *big.Float, prec uint) (r *big.Float, err error) {
	if prec == 0 {
		prec = 64
	}
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		err = p.(error) // panic if not error
		if errors.As(err, &big.ErrNaN{}) {
			r, err = nil, &DomainError{}
			return
		}
		panic(err)
	}()
	stack := make([]*big.Float, 0, e.depth)
	push := func() *big.Float {
		v := new(big.Float).SetPrec(prec)
		stack = append(stack, v)
		return v
	}
	for _, tok := range e.postfix {
		switch tok.kind {
		case tokenNum:
			if _, _, err := push().Parse(tok.text, 10); err != nil {
				return nil, &LexError{Text: tok.text, Kind: "number", Col: tok.pos}
			}
		case tokenConst:
			if tok.num == math.E {
				bigE(push())
			} else {
				bigPi(push())
			}
		case tokenVar:
			push().Set(x)
		case tokenFunc:
			if len(stack) < 1 {
				return nil, &OperandError{Col: tok.pos, Op: tok.text, Want: 1}
			}
			v := stack[len(stack)-1]
			in := new(big.Float).Copy(v)
			if err := tok.fn.callBig(v, in); err != nil {
				return nil, err
			}
		case tokenNeg:
			if len(stack) < 1 {
				return nil, &OperandError{Col: tok.pos, Op: tok.text, Want: 1}
			}
			v := stack[len(stack)-1]
			v.Neg(v)
		case tokenOp:
			if len(stack) < 2 {
				return nil, &OperandError{Col: tok.pos, Op: tok.text, Want: 2, Have: len(stack)}
			}
			r := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			l := stack[len(stack)-1]
			if err := bigop(tok.text, l, r); err != nil {
				return nil, err
			}
		default:
			panic("graphcalc: invalid postfix token " + tok.String())
		}
	}
	if len(stack) != 1 {
		return nil, &StackError{Col: utf8.RuneCountInString(e.src) + 1, Len: len(stack)}
	}
	return stack[0], nil
}

// bigop applies a binary operator, storing the result in l.
func bigop(op string, l, r *big.Float) error {
	switch op {
	case "+":
		if l.IsInf() && r.IsInf() && l.Signbit() != r.Signbit() {
			return &DomainError{X: new(big.Float).Copy(r), Func: op}
		}
		l.Add(l, r)
	case "-":
		if l.IsInf() && r.IsInf() && l.Signbit() == r.Signbit() {
			return &DomainError{X: new(big.Float).Copy(r), Func: op}
		}
		l.Sub(l, r)
	case "*":
		if l.IsInf() && r.Sign() == 0 || l.Sign() == 0 && r.IsInf() {
			return &DomainError{X: new(big.Float).Copy(r), Func: op}
		}
		l.Mul(l, r)
	case "/":
		// Guard against invalid divisions, 0/0 or inf/inf.
		if l.Sign() == 0 && r.Sign() == 0 || l.IsInf() && r.IsInf() {
			return &DomainError{X: new(big.Float).Copy(r), Func: op}
		}
		l.Quo(l, r)
	case "^":
		return bigpow(l, r)
	default:
		panic("graphcalc: invalid operator " + op)
	}
	return nil
}

// bigpow sets l to l^r. A negative base is allowed only with an integer
// exponent, and zero only with a non-negative exponent.
func bigpow(l, r *big.Float) error {
	switch {
	case r.Sign() == 0:
		l.SetFloat64(1)
		return nil
	case l.Sign() == 0:
		if r.Sign() < 0 {
			return &DomainError{X: new(big.Float).Copy(l), Func: "^"}
		}
		l.SetFloat64(0)
		return nil
	case l.IsInf() || r.IsInf():
		return &DomainError{X: new(big.Float).Copy(r), Func: "^"}
	case l.Sign() > 0:
		bigfloat.Pow(l, l, r)
		return nil
	case !r.IsInt():
		return &DomainError{X: new(big.Float).Copy(l), Func: "^"}
	}
	n, _ := r.Int(nil)
	l.Neg(l)
	bigfloat.Pow(l, l, r)
	if n.Bit(0) == 1 {
		l.Neg(l)
	}
	return nil
}

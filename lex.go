package graphcalc

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
)

type token struct {
	text string
	kind tokenKind
	pos  int
	// num is the value of a number or constant token.
	num float64
	// fn is the function of a function token.
	fn *function
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a numeric literal, possibly with a merged unary minus.
	tokenNum
	// tokenConst is e or π.
	tokenConst
	// tokenVar is the variable x.
	tokenVar
	// tokenOp is a binary operator.
	tokenOp
	// tokenNeg is a unary minus that could not be merged into a literal.
	tokenNeg
	// tokenFunc is a function name.
	tokenFunc
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token

// Operators contains the runes which are considered to be binary operators.
// A minus in prefix position is the unary negation operator instead.
const Operators = "+-*/^"

// Variable is the name of the single variable of an expression.
const Variable = "x"

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	// prev is the kind of the last token scanned, for deciding whether a
	// minus is unary.
	prev tokenKind
	eof  bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// tokenize scans all tokens from src, not including the final EOF token.
func tokenize(src io.RuneScanner) ([]token, error) {
	l := lex(src)
	var toks []token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokenEOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// unary reports whether a minus at the current position is a prefix minus:
// at the start of input or following an operator, an open parenthesis, or a
// function name.
func (l *lexer) unary() bool {
	switch l.prev {
	case tokenNone, tokenOp, tokenNeg, tokenOpen, tokenFunc:
		return true
	}
	return false
}

// next scans the next token from the input. The first time EOF is encountered,
// the result is an EOF token with a nil error. Subsequent calls return an
// empty token with io.EOF.
func (l *lexer) next() (tok token, err error) {
	if l.eof {
		return token{}, io.EOF
	}
	defer func() {
		if err == nil {
			l.prev = tok.kind
		}
	}()
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.eof = true
				return token{kind: tokenEOF, pos: l.rune + 1}, nil
			}
			return token{}, err
		}
		tok := token{pos: l.rune}
		switch {
		case unicode.IsSpace(r):
			continue
		case r == '-' && l.unary():
			// A prefix minus is merged into a numeric literal that follows
			// it, possibly after whitespace.
			if err := l.skipSpace(); err != nil {
				return tok, err
			}
			r, err := l.readRune()
			if err == nil {
				l.unreadRune()
			}
			if err == nil && isNumRune(r) {
				l.buf.WriteRune('-')
				if err := l.scanNum(); err != nil {
					return tok, err
				}
				return l.number(tok)
			}
			tok.text = "-"
			tok.kind = tokenNeg
			return tok, nil
		case isNumRune(r):
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			return l.number(tok)
		case unicode.IsLetter(r):
			l.unreadRune()
			if err := l.scanIdent(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			return classify(tok)
		case r == '(':
			tok.text = "("
			tok.kind = tokenOpen
			return tok, nil
		case r == ')':
			tok.text = ")"
			tok.kind = tokenClose
			return tok, nil
		case strings.ContainsRune(Operators, r):
			tok.text = string(r)
			tok.kind = tokenOp
			return tok, nil
		default:
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, l.error("")
		}
	}
}

func isNumRune(r rune) bool {
	return '0' <= r && r <= '9' || r == '.'
}

// skipSpace discards whitespace up to the next significant rune.
func (l *lexer) skipSpace() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if !unicode.IsSpace(r) {
			l.unreadRune()
			return nil
		}
	}
}

// scanNum scans a run of digits and dots into the buffer.
func (l *lexer) scanNum() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if !isNumRune(r) {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

// number finishes a numeric literal token from the buffer.
func (l *lexer) number(tok token) (token, error) {
	tok.text = l.buf.String()
	v, err := strconv.ParseFloat(tok.text, 64)
	if err != nil {
		var ne *strconv.NumError
		if !errors.As(err, &ne) || !errors.Is(ne.Err, strconv.ErrRange) {
			return tok, &LexError{Text: tok.text, Kind: "number", Col: tok.pos}
		}
		// Out of range literals are ±Inf or ±0 and are still numbers.
	}
	tok.num = v
	tok.kind = tokenNum
	return tok, nil
}

// scanIdent scans a run of letters into the buffer.
func (l *lexer) scanIdent() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// next unreads the rune that decides ident scanning before
				// calling scanIdent, so we have scanned at least one rune.
				return nil
			}
			return err
		}
		if !unicode.IsLetter(r) {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

// classify decides what an identifier names. The whole run of letters is one
// identifier, so e.g. "ex" is unknown rather than e followed by x.
func classify(tok token) (token, error) {
	switch tok.text {
	case Variable:
		tok.kind = tokenVar
	case "e":
		tok.kind = tokenConst
		tok.num = math.E
	case "p", "π":
		tok.kind = tokenConst
		tok.num = math.Pi
	default:
		fn := funcs[tok.text]
		if fn == nil {
			return tok, &NameError{Col: tok.pos, Name: tok.text}
		}
		tok.kind = tokenFunc
		tok.fn = fn
	}
	return tok, nil
}

func (l *lexer) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.rune,
	}
}

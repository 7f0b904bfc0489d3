package graphcalc

import "strings"

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// arity is the number of operands the operator consumes.
	arity int8
}

// opOf gets the operator for a token. Tokens that are not operators have a
// zero precedence, so no operator ever pops them off the stack.
func opOf(tok token) operator {
	switch tok.kind {
	case tokenOp:
		return binop(tok.text)
	case tokenNeg:
		return negop
	case tokenFunc:
		return operator{0, 1}
	default:
		return operator{}
	}
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has a zero arity.
func binop(text string) operator {
	switch text {
	case "+", "-":
		return operator{1, 2}
	case "*", "/":
		return operator{5, 2}
	case "^":
		return operator{15, 2}
	default:
		return operator{}
	}
}

// negop is unary minus. It binds tighter than multiplication and looser than
// exponentiation, so -x^2 is -(x^2) and -x*y is (-x)*y.
var negop = operator{10, 1}

// toPostfix converts a token sequence in infix order to postfix order using
// the shunting-yard algorithm.
//
// Every binary operator pops operators of greater or equal precedence before
// it is pushed, including ^, so 2^3^2 is (2^3)^2. Unary minus and function
// names are prefix operators and are pushed without popping anything.
// Function names are emitted when the parenthesis closing their argument is
// reached or at the end of the input.
func toPostfix(toks []token) ([]token, error) {
	out := make([]token, 0, len(toks))
	var stack []token
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum, tokenConst, tokenVar:
			out = append(out, tok)
		case tokenFunc, tokenNeg, tokenOpen:
			stack = append(stack, tok)
		case tokenOp:
			op := binop(tok.text)
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind == tokenOpen || top.kind == tokenFunc || opOf(top).prec < op.prec {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case tokenClose:
			for len(stack) > 0 && stack[len(stack)-1].kind != tokenOpen {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, &BracketError{Col: tok.pos, Right: tok.text}
			}
			stack = stack[:len(stack)-1]
			if len(stack) > 0 && stack[len(stack)-1].kind == tokenFunc {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
		default:
			panic("graphcalc: unknown token: " + tok.String())
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.kind == tokenOpen {
			return nil, &BracketError{Col: top.pos, Left: top.text}
		}
		out = append(out, top)
		stack = stack[:len(stack)-1]
	}
	return out, nil
}

// check verifies that a postfix sequence evaluates to exactly one value and
// returns the greatest stack depth evaluation reaches. end is the position
// just past the input, used for errors about the final stack.
func check(postfix []token, end int) (int, error) {
	depth, max := 0, 0
	for _, tok := range postfix {
		switch tok.kind {
		case tokenNum, tokenConst, tokenVar:
			depth++
		case tokenOp, tokenNeg, tokenFunc:
			op := opOf(tok)
			if depth < int(op.arity) {
				return 0, &OperandError{Col: tok.pos, Op: tok.text, Want: int(op.arity), Have: depth}
			}
			depth -= int(op.arity) - 1
		default:
			panic("graphcalc: unexpected postfix token: " + tok.String())
		}
		if depth > max {
			max = depth
		}
	}
	if depth != 1 {
		return 0, &StackError{Col: end, Len: depth}
	}
	return max, nil
}

// postfixString formats a postfix sequence with tokens separated by spaces.
// Unary minus is written as neg to distinguish it from subtraction.
func postfixString(postfix []token) string {
	var b strings.Builder
	for i, tok := range postfix {
		if i > 0 {
			b.WriteByte(' ')
		}
		if tok.kind == tokenNeg {
			b.WriteString("neg")
			continue
		}
		b.WriteString(tok.text)
	}
	return b.String()
}

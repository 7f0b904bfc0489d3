package graphcalc

import (
	"strings"
)

// node is a node in the expression tree rebuilt from a postfix sequence. It is
// used only for formatting.
type node struct {
	tok token

	left  *node
	right *node
}

// tree rebuilds the expression tree from a validated postfix sequence. Unary
// operators and functions use left only. The result is nil if the sequence
// does not reduce to one node.
func tree(postfix []token) *node {
	var stack []*node
	for _, tok := range postfix {
		n := &node{tok: tok}
		switch tok.kind {
		case tokenNum, tokenConst, tokenVar:
			// leaf
		case tokenNeg, tokenFunc:
			if len(stack) < 1 {
				return nil
			}
			n.left = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		case tokenOp:
			if len(stack) < 2 {
				return nil
			}
			n.left, n.right = stack[len(stack)-2], stack[len(stack)-1]
			stack = stack[:len(stack)-2]
		default:
			return nil
		}
		stack = append(stack, n)
	}
	if len(stack) != 1 {
		return nil
	}
	return stack[0]
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

// fmt writes the node fully bracketed. Brackets alternate between round and
// square with depth so that nesting stays readable.
func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.tok.kind {
	case tokenNum, tokenVar:
		b.WriteString(n.tok.text)
	case tokenConst:
		if n.tok.text == "p" {
			// p is an ASCII spelling of π.
			b.WriteString("π")
		} else {
			b.WriteString(n.tok.text)
		}
	case tokenNeg:
		b.WriteByte('-')
		n.left.fmt(b, !square)
	case tokenFunc:
		b.WriteString(n.tok.text)
		n.left.fmt(b, !square)
	case tokenOp:
		n.left.fmt(b, !square)
		b.WriteByte(' ')
		b.WriteString(n.tok.text)
		b.WriteByte(' ')
		n.right.fmt(b, !square)
	default:
		panic("graphcalc: invalid node " + n.tok.String() + " after writing " + b.String())
	}
}

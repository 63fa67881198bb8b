// Package postfix converts a validated infix token stream into postfix
// (reverse Polish) order with the shunting-yard algorithm.
package postfix

import (
	"strings"

	"intcalc/internal/stack"
	"intcalc/internal/token"
)

// Convert reorders toks into evaluation order. Precondition: the stream
// passed parser.Check, so parentheses balance and no Invalid tokens occur.
//
// The unary marker is pushed without a precedence comparison: it always
// immediately precedes its single operand, so nothing beneath it may pop
// first. Binary operators pop while the stack top is an operator of greater
// precedence, or equal precedence when the incoming operator associates to
// the left. The rule applies uniformly no matter how often any operator
// appears.
func Convert(toks []token.Token) []token.Token {
	ops := stack.New[token.Token](8)
	out := make([]token.Token, 0, len(toks))

	for _, tok := range toks {
		switch {
		case tok.Kind == token.EOF:

		case tok.Kind == token.Number:
			out = append(out, tok)

		case tok.Kind == token.LParen:
			ops.Push(tok)

		case tok.Kind == token.RParen:
			for {
				top, ok := ops.Pop()
				if !ok || top.Kind == token.LParen {
					// Скобка никогда не попадает в выход
					break
				}
				out = append(out, top)
			}

		case tok.Kind == token.Neg:
			ops.Push(tok)

		case tok.IsBinaryOperator():
			prec := token.Precedence(tok.Symbol())
			left := token.IsLeftAssociative(tok.Symbol())
			for {
				top, ok := ops.Peek()
				if !ok || top.Kind == token.LParen {
					break
				}
				topPrec := token.Precedence(top.Symbol())
				if topPrec > prec || (topPrec == prec && left) {
					ops.Pop()
					out = append(out, top)
					continue
				}
				break
			}
			ops.Push(tok)
		}
	}

	for {
		top, ok := ops.Pop()
		if !ok {
			break
		}
		out = append(out, top)
	}
	return out
}

// Render joins the postfix tokens with single spaces: numbers as their
// digit text, operators as their symbol.
func Render(toks []token.Token) string {
	var b strings.Builder
	for i, tok := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		if tok.Kind == token.Number {
			b.WriteString(tok.Text)
		} else {
			b.WriteByte(tok.Symbol())
		}
	}
	return b.String()
}

package token

import (
	"intcalc/internal/source"
)

// Token represents a single expression token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsOperand reports whether the token can stand as a complete operand.
func (t Token) IsOperand() bool {
	return t.Kind == Number
}

// IsBinaryOperator reports whether the token is a binary operator.
func (t Token) IsBinaryOperator() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Percent, Caret:
		return true
	default:
		return false
	}
}

// IsOperator reports whether the token is a unary or binary operator.
func (t Token) IsOperator() bool {
	return t.Kind == Neg || t.IsBinaryOperator()
}

// Symbol returns the single-character spelling of an operator or
// parenthesis token.
func (t Token) Symbol() byte {
	switch t.Kind {
	case Plus:
		return '+'
	case Minus:
		return '-'
	case Star:
		return 'x'
	case Slash:
		return '/'
	case Percent:
		return '%'
	case Caret:
		return '^'
	case Neg:
		return UnaryMarker
	case LParen:
		return '('
	case RParen:
		return ')'
	}
	return 0
}

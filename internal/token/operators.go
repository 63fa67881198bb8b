package token

// UnaryMarker is the internal symbol substituted for a negation minus during
// normalization. It is never typed as part of ordinary input but remains a
// valid symbol, matching the reference calculator's behavior.
const UnaryMarker byte = '~'

// Operator precedences. Higher binds first. The table is constant data,
// shared freely across concurrent evaluations.
//
//	~        4
//	^        3  (right associative)
//	x / %    2
//	+ -      1
func Precedence(symbol byte) int {
	switch symbol {
	case UnaryMarker:
		return 4
	case '^':
		return 3
	case 'x', '/', '%':
		return 2
	case '+', '-':
		return 1
	}
	return -1
}

// IsLeftAssociative reports whether the operator associates to the left.
// Only '^' is right associative.
func IsLeftAssociative(symbol byte) bool {
	return symbol != '^'
}

// IsBinaryOperator reports whether the symbol is one of the six binary
// operators.
func IsBinaryOperator(symbol byte) bool {
	switch symbol {
	case '+', '-', 'x', '/', '%', '^':
		return true
	}
	return false
}

// IsUnaryOperator reports whether the symbol is the unary marker.
func IsUnaryOperator(symbol byte) bool {
	return symbol == UnaryMarker
}

// IsOperator reports whether the symbol is any operator, unary or binary.
func IsOperator(symbol byte) bool {
	return IsBinaryOperator(symbol) || IsUnaryOperator(symbol)
}

// IsDigit reports whether the symbol is a decimal digit.
func IsDigit(symbol byte) bool {
	return symbol >= '0' && symbol <= '9'
}

// IsWhitespace reports whether the symbol is a space, tab, or newline.
func IsWhitespace(symbol byte) bool {
	return symbol == ' ' || symbol == '\t' || symbol == '\n'
}

// IsParenthesis reports whether the symbol is '(' or ')'.
func IsParenthesis(symbol byte) bool {
	return symbol == '(' || symbol == ')'
}

// IsValidSymbol reports whether the symbol may appear in an expression at
// all. Position-dependent rules are the parser's job.
func IsValidSymbol(symbol byte) bool {
	return IsDigit(symbol) || IsOperator(symbol) || IsParenthesis(symbol)
}

// KindOf maps an operator or parenthesis symbol to its token kind.
func KindOf(symbol byte) Kind {
	switch symbol {
	case '+':
		return Plus
	case '-':
		return Minus
	case 'x':
		return Star
	case '/':
		return Slash
	case '%':
		return Percent
	case '^':
		return Caret
	case UnaryMarker:
		return Neg
	case '(':
		return LParen
	case ')':
		return RParen
	}
	return Invalid
}

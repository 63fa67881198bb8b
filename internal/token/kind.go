package token

// Kind represents the category of an expression token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the expression.
	EOF

	// Number represents an unsigned decimal integer literal.
	Number

	// Plus represents the '+' operator.
	Plus // +
	// Minus represents the binary '-' operator.
	Minus // -
	// Star represents the 'x' multiplication operator.
	Star // x
	// Slash represents the '/' operator.
	Slash // /
	// Percent represents the '%' operator.
	Percent // %
	// Caret represents the '^' operator.
	Caret // ^
	// Neg represents the unary negation marker '~'.
	Neg // ~

	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Number:
		return "Number"
	case Plus:
		return "Plus"
	case Minus:
		return "Minus"
	case Star:
		return "Star"
	case Slash:
		return "Slash"
	case Percent:
		return "Percent"
	case Caret:
		return "Caret"
	case Neg:
		return "Neg"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	}
	return "Unknown"
}

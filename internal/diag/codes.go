package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexUnexpectedSymbol Code = 1001

	// Синтаксические
	SynExpectedOperator    Code = 2001
	SynExpectedOperand     Code = 2002
	SynMissingOperand      Code = 2003
	SynUnmatchedOpenParen  Code = 2004
	SynUnmatchedCloseParen Code = 2005
)

var codeDescription = map[Code]string{
	UnknownCode:            "Unknown error",
	LexUnexpectedSymbol:    "Unexpected symbol",
	SynExpectedOperator:    "Expected operator",
	SynExpectedOperand:     "Expected operand",
	SynMissingOperand:      "Missing operand",
	SynUnmatchedOpenParen:  "Unmatched '('",
	SynUnmatchedCloseParen: "Unmatched ')'",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

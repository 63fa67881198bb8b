// Package parser enforces well-formedness of a normalized, tokenized
// expression: operand/operator alternation and balanced parentheses.
package parser

import (
	"fmt"

	"intcalc/internal/diag"
	"intcalc/internal/source"
	"intcalc/internal/stack"
	"intcalc/internal/token"
)

// Check scans the token stream once and returns nil when the expression is
// well formed. The first violation wins: the scan stops and exactly one
// diagnostic comes back. Columns always address the original text.
//
// Precondition: Normalize produced no diagnostic, so every token is a
// Number, an operator, or a parenthesis.
func Check(expr source.Expression, toks []token.Token) *diag.Diagnostic {
	// Стек позиций открытых скобок
	opens := stack.New[source.Span](4)

	leading := true      // operand expected next
	prevOperand := false // a complete operand sits to the left with no operator after it

	for _, tok := range toks {
		switch {
		case tok.Kind == token.EOF:

		case tok.Kind == token.Number:
			if prevOperand {
				// Point at the boundary, one column left of the second
				// operand, the way the reference calculator does.
				sp := source.Span{Start: tok.Span.Start - 1, End: tok.Span.Start}
				return diag.New(diag.SynExpectedOperator, sp, fmt.Sprintf(
					"Expected operator at position %d.", sp.Col()))
			}
			prevOperand = true
			leading = false

		case tok.IsBinaryOperator():
			if leading {
				return diag.New(diag.SynExpectedOperand, tok.Span, fmt.Sprintf(
					"Expected operand, but found '%c' at position %d.",
					tok.Symbol(), tok.Span.Col()))
			}
			prevOperand = false
			leading = true

		case tok.Kind == token.Neg:
			if !leading {
				return diag.New(diag.SynExpectedOperator, tok.Span, fmt.Sprintf(
					"Expected operator, but found '%c' at position %d.",
					tok.Symbol(), tok.Span.Col()))
			}

		case tok.Kind == token.LParen:
			if !leading {
				return diag.New(diag.SynExpectedOperator, tok.Span, fmt.Sprintf(
					"Expected operator, but found '(' at position %d.", tok.Span.Col()))
			}
			opens.Push(tok.Span)

		case tok.Kind == token.RParen:
			if leading {
				return diag.New(diag.SynExpectedOperand, tok.Span, fmt.Sprintf(
					"Expected operand, but found ')' at position %d.", tok.Span.Col()))
			}
			if _, ok := opens.Pop(); !ok {
				return diag.New(diag.SynUnmatchedCloseParen, tok.Span, fmt.Sprintf(
					"Unmatched ')' found at position %d.", tok.Span.Col()))
			}
			// Closed group counts as one completed operand.
			prevOperand = true
			leading = false
		}
	}

	if leading {
		sp := source.Span{Start: expr.Len(), End: expr.Len() + 1}
		return diag.New(diag.SynMissingOperand, sp, fmt.Sprintf(
			"Missing operand at position %d.", sp.Col()))
	}
	if top, ok := opens.Peek(); ok {
		// The most recently pushed unmatched '(' is reported.
		return diag.New(diag.SynUnmatchedOpenParen, top, fmt.Sprintf(
			"Unmatched '(' found at position %d.", top.Col()))
	}
	return nil
}

// Package driver wires the pipeline stages together: normalize, validate,
// convert, evaluate. Stages run strictly in that order and short-circuit on
// the first syntax diagnostic.
package driver

import (
	"intcalc/internal/diag"
	"intcalc/internal/parser"
	"intcalc/internal/postfix"
	"intcalc/internal/scan"
	"intcalc/internal/source"
	"intcalc/internal/token"
	"intcalc/internal/vm"
)

// Result carries everything the CLI needs to render one evaluation attempt.
// Diag != nil means normalization or validation failed: Postfix and Value
// are absent and no evaluation took place. The returned error is non-nil
// only for evaluation failures; the postfix form is still present then,
// since conversion succeeded.
type Result struct {
	Expr          source.Expression
	Tokens        []token.Token
	Postfix       []token.Token
	PostfixString string
	Value         int64
	Diag          *diag.Diagnostic
}

// Run evaluates one infix expression end to end.
func Run(input string) (*Result, error) {
	expr, d := scan.Normalize(input)
	res := &Result{Expr: expr}
	if d != nil {
		res.Diag = d
		return res, nil
	}

	res.Tokens = scan.Scan(expr)
	if d := parser.Check(expr, res.Tokens); d != nil {
		res.Diag = d
		return res, nil
	}

	res.Postfix = postfix.Convert(res.Tokens)
	res.PostfixString = postfix.Render(res.Postfix)

	value, err := vm.Evaluate(res.Postfix)
	if err != nil {
		return res, err
	}
	res.Value = value
	return res, nil
}

// Tokenize runs only the front half of the pipeline. The token stream is
// produced even when normalization flagged a symbol, so the tokenize
// command can dump whatever the input looked like.
func Tokenize(input string) *Result {
	expr, d := scan.Normalize(input)
	return &Result{
		Expr:   expr,
		Tokens: scan.Scan(expr),
		Diag:   d,
	}
}

package scan

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"

	"intcalc/internal/diag"
	"intcalc/internal/source"
	"intcalc/internal/token"
)

// Normalize rewrites every negation minus in input into the unary marker and
// records the first structurally invalid symbol, if any. The scan keeps
// going after an invalid symbol so the returned expression is always fully
// built; later symbols never replace the first diagnostic.
//
// A '-' is a negation exactly when an operand is still expected: at the
// start of the expression, after '(', and after any operator. Whitespace is
// copied through unchanged, so the two forms stay column-aligned.
func Normalize(input string) (source.Expression, *diag.Diagnostic) {
	if _, err := safecast.Conv[uint32](len(input)); err != nil {
		panic(fmt.Errorf("input length overflow: %w", err))
	}

	var b strings.Builder
	b.Grow(len(input))

	var d *diag.Diagnostic
	leading := true // operand expected next

	for i, r := range input {
		ascii := r < utf8.RuneSelf
		if ascii && token.IsWhitespace(byte(r)) {
			b.WriteRune(r)
			continue
		}
		if !ascii || !token.IsValidSymbol(byte(r)) {
			if d == nil {
				sp := source.Span{
					Start: uint32(i),
					End:   uint32(i + utf8.RuneLen(r)),
				}
				d = diag.New(diag.LexUnexpectedSymbol, sp, fmt.Sprintf(
					"Unexpected symbol '%c' found at position %d.", r, sp.Col()))
			}
			b.WriteRune(r)
			leading = false
			continue
		}

		symbol := byte(r)
		out := symbol
		if leading && symbol == '-' {
			out = token.UnaryMarker
		}
		leading = symbol == '(' || token.IsOperator(symbol)
		b.WriteByte(out)
	}

	return source.Expression{Original: input, Normalized: b.String()}, d
}

package scan

import (
	"unicode/utf8"

	"intcalc/internal/source"
	"intcalc/internal/token"
)

// Scan tokenizes the normalized expression in one pass. Digit runs fold
// into a single Number token, whitespace is skipped, and every other symbol
// becomes a one-byte token. The stream always ends with an EOF token.
//
// Symbols the normalizer flagged as invalid come out as Invalid tokens, so
// the tokenize command can still dump a stream for bad input; the driver
// never converts or evaluates such a stream.
func Scan(expr source.Expression) []token.Token {
	cur := NewCursor(expr)
	tokens := make([]token.Token, 0, len(expr.Normalized)/2+1)

	for !cur.EOF() {
		ch := cur.Peek()
		switch {
		case token.IsWhitespace(ch):
			cur.Bump()

		case token.IsDigit(ch):
			tokens = append(tokens, scanNumber(&cur, expr))

		case token.IsValidSymbol(ch):
			start := cur.Mark()
			cur.Bump()
			sp := cur.SpanFrom(start)
			tokens = append(tokens, token.Token{
				Kind: token.KindOf(ch),
				Span: sp,
				Text: expr.Slice(sp),
			})

		default:
			// чужой символ: съедаем всю руну целиком
			start := cur.Mark()
			_, size := utf8.DecodeRuneInString(expr.Normalized[cur.off:])
			for i := 0; i < size; i++ {
				cur.Bump()
			}
			sp := cur.SpanFrom(start)
			tokens = append(tokens, token.Token{
				Kind: token.Invalid,
				Span: sp,
				Text: expr.Slice(sp),
			})
		}
	}

	tokens = append(tokens, token.Token{
		Kind: token.EOF,
		Span: source.Span{Start: expr.Len(), End: expr.Len()},
	})
	return tokens
}

// scanNumber consumes a contiguous digit run as one operand.
func scanNumber(cur *Cursor, expr source.Expression) token.Token {
	start := cur.Mark()
	for token.IsDigit(cur.Peek()) {
		cur.Bump()
	}
	sp := cur.SpanFrom(start)
	return token.Token{
		Kind: token.Number,
		Span: sp,
		Text: expr.Slice(sp),
	}
}

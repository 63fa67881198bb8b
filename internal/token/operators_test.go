package token_test

import (
	"testing"

	"intcalc/internal/token"
)

func TestPrecedenceTable(t *testing.T) {
	tests := []struct {
		symbol byte
		want   int
	}{
		{token.UnaryMarker, 4},
		{'^', 3},
		{'x', 2},
		{'/', 2},
		{'%', 2},
		{'+', 1},
		{'-', 1},
		{'(', -1},
		{')', -1},
		{'5', -1},
	}
	for _, tt := range tests {
		if got := token.Precedence(tt.symbol); got != tt.want {
			t.Errorf("Precedence(%q) = %d, want %d", tt.symbol, got, tt.want)
		}
	}
}

func TestAssociativity(t *testing.T) {
	if token.IsLeftAssociative('^') {
		t.Error("'^' must be right associative")
	}
	for _, symbol := range []byte{'+', '-', 'x', '/', '%'} {
		if !token.IsLeftAssociative(symbol) {
			t.Errorf("%q must be left associative", symbol)
		}
	}
}

func TestSymbolClasses(t *testing.T) {
	for _, symbol := range []byte{'+', '-', 'x', '/', '%', '^'} {
		if !token.IsBinaryOperator(symbol) {
			t.Errorf("IsBinaryOperator(%q) = false", symbol)
		}
	}
	if token.IsBinaryOperator(token.UnaryMarker) {
		t.Error("the unary marker is not a binary operator")
	}
	if !token.IsUnaryOperator(token.UnaryMarker) {
		t.Error("IsUnaryOperator('~') = false")
	}
	if token.IsValidSymbol('*') {
		t.Error("'*' is not part of the grammar; multiplication is 'x'")
	}
	for _, symbol := range []byte{'0', '9', '(', ')', '~', 'x'} {
		if !token.IsValidSymbol(symbol) {
			t.Errorf("IsValidSymbol(%q) = false", symbol)
		}
	}
	for _, symbol := range []byte{'a', '=', '.', ' '} {
		if token.IsValidSymbol(symbol) {
			t.Errorf("IsValidSymbol(%q) = true", symbol)
		}
	}
}

func TestKindSymbolRoundTrip(t *testing.T) {
	for _, symbol := range []byte{'+', '-', 'x', '/', '%', '^', '~', '(', ')'} {
		kind := token.KindOf(symbol)
		if kind == token.Invalid {
			t.Errorf("KindOf(%q) = Invalid", symbol)
			continue
		}
		tok := token.Token{Kind: kind}
		if got := tok.Symbol(); got != symbol {
			t.Errorf("Symbol(KindOf(%q)) = %q", symbol, got)
		}
	}
	if token.KindOf('a') != token.Invalid {
		t.Error("KindOf('a') must be Invalid")
	}
}

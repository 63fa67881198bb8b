package scan_test

import (
	"testing"

	"intcalc/internal/scan"
	"intcalc/internal/source"
)

func TestCursorWalk(t *testing.T) {
	expr := source.Expression{Original: "2+3", Normalized: "2+3"}
	cur := scan.NewCursor(expr)

	if cur.EOF() {
		t.Fatal("cursor at EOF before reading anything")
	}
	if got := cur.Peek(); got != '2' {
		t.Fatalf("Peek = %q, want '2'", got)
	}
	// Peek не двигает курсор
	if got := cur.Peek(); got != '2' {
		t.Fatalf("second Peek = %q, want '2'", got)
	}

	for _, want := range []byte{'2', '+', '3'} {
		if got := cur.Bump(); got != want {
			t.Errorf("Bump = %q, want %q", got, want)
		}
	}
	if !cur.EOF() {
		t.Error("cursor not at EOF after consuming everything")
	}
	if got := cur.Bump(); got != 0 {
		t.Errorf("Bump past EOF = %q, want 0", got)
	}
}

func TestCursorSpanFrom(t *testing.T) {
	expr := source.Expression{Original: "10+2", Normalized: "10+2"}
	cur := scan.NewCursor(expr)

	m := cur.Mark()
	cur.Bump()
	cur.Bump()
	sp := cur.SpanFrom(m)
	if sp.Start != 0 || sp.End != 2 {
		t.Errorf("SpanFrom = %s, want 0-2", sp)
	}
	if got := expr.Slice(sp); got != "10" {
		t.Errorf("Slice = %q, want %q", got, "10")
	}
}

package source_test

import (
	"testing"

	"intcalc/internal/source"
)

func TestSpanBasics(t *testing.T) {
	sp := source.Span{Start: 2, End: 5}
	if sp.Empty() {
		t.Error("non-empty span reported empty")
	}
	if sp.Len() != 3 {
		t.Errorf("Len = %d, want 3", sp.Len())
	}
	if sp.Col() != 3 {
		t.Errorf("Col = %d, want 3", sp.Col())
	}
	if sp.String() != "2-5" {
		t.Errorf("String = %q, want %q", sp.String(), "2-5")
	}
	if !(source.Span{Start: 4, End: 4}).Empty() {
		t.Error("empty span not reported empty")
	}
}

func TestSpanCover(t *testing.T) {
	a := source.Span{Start: 2, End: 5}
	b := source.Span{Start: 0, End: 3}
	got := a.Cover(b)
	if got.Start != 0 || got.End != 5 {
		t.Errorf("Cover = %s, want 0-5", got)
	}
}

func TestExpressionSlice(t *testing.T) {
	e := source.Expression{Original: "-5 + 3", Normalized: "~5 + 3"}
	if e.Len() != 6 {
		t.Errorf("Len = %d, want 6", e.Len())
	}
	if got := e.Slice(source.Span{Start: 0, End: 2}); got != "~5" {
		t.Errorf("Slice = %q, want %q", got, "~5")
	}
}

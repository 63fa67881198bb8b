package diagfmt_test

import (
	"encoding/json"
	"strings"
	"testing"

	"intcalc/internal/diag"
	"intcalc/internal/diagfmt"
	"intcalc/internal/scan"
	"intcalc/internal/source"
)

func TestPrettyCaretPlacement(t *testing.T) {
	tests := []struct {
		original string
		span     source.Span
		message  string
		want     string
	}{
		{
			original: "2 3",
			span:     source.Span{Start: 1, End: 2},
			message:  "Expected operator at position 2.",
			want:     "2 3\n ^ Expected operator at position 2.\n",
		},
		{
			original: "(1 + 2",
			span:     source.Span{Start: 0, End: 1},
			message:  "Unmatched '(' found at position 1.",
			want:     "(1 + 2\n^ Unmatched '(' found at position 1.\n",
		},
		{
			// Missing operand points one past the end of the text.
			original: "2 +",
			span:     source.Span{Start: 3, End: 4},
			message:  "Missing operand at position 4.",
			want:     "2 +\n   ^ Missing operand at position 4.\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.original, func(t *testing.T) {
			expr := source.Expression{Original: tt.original, Normalized: tt.original}
			d := diag.New(diag.SynExpectedOperator, tt.span, tt.message)
			var b strings.Builder
			diagfmt.Pretty(&b, expr, d, diagfmt.PrettyOpts{})
			if b.String() != tt.want {
				t.Errorf("Pretty output:\n%q\nwant:\n%q", b.String(), tt.want)
			}
		})
	}
}

func TestPrettyRendersAgainstOriginalText(t *testing.T) {
	// The diagnostic line shows the user's '-' even though the normalized
	// form carries the unary marker at the same column.
	expr, d := scan.Normalize("-5 $ 3")
	if d == nil {
		t.Fatal("expected a diagnostic for '$'")
	}
	var b strings.Builder
	diagfmt.Pretty(&b, expr, d, diagfmt.PrettyOpts{})
	lines := strings.SplitN(b.String(), "\n", 3)
	if lines[0] != "-5 $ 3" {
		t.Errorf("first line = %q, want the original text", lines[0])
	}
	if want := "   ^ Unexpected symbol '$' found at position 4."; lines[1] != want {
		t.Errorf("second line = %q, want %q", lines[1], want)
	}
}

func TestJSONDiagnostic(t *testing.T) {
	expr, d := scan.Normalize("2 # 3")
	if d == nil {
		t.Fatal("expected a diagnostic for '#'")
	}
	var b strings.Builder
	if err := diagfmt.JSON(&b, expr, d); err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	var out diagfmt.DiagnosticJSON
	if err := json.Unmarshal([]byte(b.String()), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Code != "LEX1001" {
		t.Errorf("code = %q, want LEX1001", out.Code)
	}
	if out.Position != 3 {
		t.Errorf("position = %d, want 3", out.Position)
	}
	if out.Expression != "2 # 3" {
		t.Errorf("expression = %q", out.Expression)
	}
	if out.Message != "Unexpected symbol '#' found at position 3." {
		t.Errorf("message = %q", out.Message)
	}
}

func TestFormatTokensPretty(t *testing.T) {
	expr, d := scan.Normalize("10 + 2")
	if d != nil {
		t.Fatalf("unexpected diagnostic: %s", d.Message)
	}
	toks := scan.Scan(expr)
	var b strings.Builder
	if err := diagfmt.FormatTokensPretty(&b, toks); err != nil {
		t.Fatalf("FormatTokensPretty failed: %v", err)
	}
	out := b.String()
	for _, want := range []string{"Number", `"10"`, "Plus", "EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

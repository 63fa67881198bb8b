package diagfmt

import (
	"encoding/json"
	"io"

	"intcalc/internal/diag"
	"intcalc/internal/source"
)

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Position   uint32 `json:"position"`
	Expression string `json:"expression"`
}

// JSON writes a single diagnostic in machine-readable form. Position is the
// 1-based column in the original text.
func JSON(w io.Writer, expr source.Expression, d *diag.Diagnostic) error {
	out := DiagnosticJSON{
		Code:       d.Code.ID(),
		Message:    d.Message,
		Position:   d.Col(),
		Expression: expr.Original,
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

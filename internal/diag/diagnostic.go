package diag

import (
	"intcalc/internal/source"
)

// Diagnostic is a single position-anchored syntax error.
type Diagnostic struct {
	Code    Code
	Message string
	Primary source.Span
}

func New(code Code, primary source.Span, msg string) *Diagnostic {
	return &Diagnostic{
		Code:    code,
		Message: msg,
		Primary: primary,
	}
}

// Col returns the 1-based column the diagnostic points at.
func (d *Diagnostic) Col() uint32 {
	return d.Primary.Col()
}

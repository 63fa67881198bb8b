package source

// Expression holds the user's infix expression in two index-aligned forms.
// Original is the text exactly as entered. Normalized is the same text with
// every negation minus replaced by the unary marker '~', so later stages
// never have to disambiguate '-'. Both strings always have equal length and
// every column in one addresses the same column in the other.
//
// Expressions are built once by scan.Normalize and never mutated.
type Expression struct {
	Original   string
	Normalized string
}

func (e Expression) Len() uint32 {
	return uint32(len(e.Original))
}

// Slice returns the normalized text covered by sp.
func (e Expression) Slice(sp Span) string {
	return e.Normalized[sp.Start:sp.End]
}

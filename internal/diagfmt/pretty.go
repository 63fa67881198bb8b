package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"intcalc/internal/diag"
	"intcalc/internal/source"
)

var caretColor = color.New(color.FgRed, color.Bold)

// Pretty renders a two-line presentation: the unmodified original text,
// then spaces up to the diagnostic's column followed by a caret and the
// message. The pad is measured in display cells, so a wide invalid symbol
// earlier in the line does not skew the caret.
func Pretty(w io.Writer, expr source.Expression, d *diag.Diagnostic, opts PrettyOpts) {
	fmt.Fprintln(w, expr.Original)

	start := int(d.Primary.Start)
	if start > len(expr.Original) {
		start = len(expr.Original)
	}
	pad := strings.Repeat(" ", runewidth.StringWidth(expr.Original[:start]))

	if opts.Color {
		fmt.Fprintf(w, "%s%s\n", pad, caretColor.Sprintf("^ %s", d.Message))
		return
	}
	fmt.Fprintf(w, "%s^ %s\n", pad, d.Message)
}

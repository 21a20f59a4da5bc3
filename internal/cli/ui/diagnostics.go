package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/signal-lang/sigc/internal/compiler/errors"
)

// FormatDiagnostic renders one diagnostic as "<Phase>: <diagnostic>", e.g.
// "Parser: Error (line: 1, column: 14): ';' expected but 'BEGIN' found"
func FormatDiagnostic(d *errors.Diagnostic, noColor bool) string {
	phase := color.New(color.FgMagenta, color.Bold)
	if d.Phase == errors.PhaseLexer {
		phase = color.New(color.FgYellow, color.Bold)
	}
	body := color.New(color.FgRed)
	if d.Severity == errors.SeverityWarning {
		body = color.New(color.FgYellow)
	}
	if noColor {
		phase.DisableColor()
		body.DisableColor()
	}

	return phase.Sprintf("%s:", d.Phase) + " " + body.Sprint(d.String())
}

// WriteDiagnostics writes every diagnostic on its own line followed by a
// count summary
func WriteDiagnostics(w io.Writer, diagnostics []*errors.Diagnostic, noColor bool) {
	for _, d := range diagnostics {
		fmt.Fprintln(w, FormatDiagnostic(d, noColor))
	}

	errs, warnings := errors.ErrorList(diagnostics).ErrorCount()
	summary := color.New(color.FgHiBlack)
	if noColor {
		summary.DisableColor()
	}
	summary.Fprintf(w, "%d error(s), %d warning(s)\n", errs, warnings)
}

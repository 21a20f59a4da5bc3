package errors

import (
	"fmt"
	"strings"
)

// FormatError returns a multi-line, human-readable rendering of d
func FormatError(d *Diagnostic) string {
	var b strings.Builder

	file := d.File
	if file == "" {
		file = "<source>"
	}

	fmt.Fprintf(&b, "%s %s in %s\n", severityIcon(d.Severity), phaseDisplayName(d.Phase), file)

	if d.Location.IsZero() {
		b.WriteString("At end of input:\n")
	} else {
		fmt.Fprintf(&b, "Line %d, Column %d:\n", d.Location.Line, d.Location.Column)
	}
	fmt.Fprintf(&b, "  %s\n", d.Message)

	if d.Expected != "" || d.Actual != "" {
		b.WriteString("\n")
		if d.Expected != "" {
			fmt.Fprintf(&b, "  Expected: %s\n", d.Expected)
		}
		if d.Actual != "" {
			fmt.Fprintf(&b, "  Actual:   %s\n", d.Actual)
		}
	}

	if d.Suggestion != "" {
		fmt.Fprintf(&b, "\n💡 %s\n", d.Suggestion)
	}

	return b.String()
}

// FormatErrorList returns a formatted string of all diagnostics
func FormatErrorList(list ErrorList) string {
	if len(list) == 0 {
		return "no errors"
	}

	var b strings.Builder

	errCount, warnCount := list.ErrorCount()
	fmt.Fprintf(&b, "Analysis failed with %d error(s), %d warning(s)\n\n", errCount, warnCount)

	for i, d := range list {
		if i > 0 {
			b.WriteString("\n" + strings.Repeat("-", 80) + "\n\n")
		}
		b.WriteString(FormatError(d))
	}

	return b.String()
}

// FormatCompact returns a compact one-line format suitable for editors
func FormatCompact(d *Diagnostic) string {
	file := d.File
	if file == "" {
		file = "<source>"
	}
	return fmt.Sprintf("%s:%d:%d: %s: %s [%s]",
		file, d.Location.Line, d.Location.Column,
		d.Severity, d.Message, d.Code)
}

func severityIcon(severity ErrorSeverity) string {
	switch severity {
	case SeverityError:
		return "❌"
	case SeverityWarning:
		return "⚠️ "
	default:
		return "❓"
	}
}

func phaseDisplayName(phase Phase) string {
	switch phase {
	case PhaseLexer:
		return "Lexical Error"
	case PhaseParser:
		return "Syntax Error"
	default:
		return "Compiler Error"
	}
}

package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// MessageLevel represents the severity of a CLI message
type MessageLevel int

const (
	LevelError MessageLevel = iota
	LevelWarning
	LevelInfo
)

// MessageOptions configures message formatting
type MessageOptions struct {
	Level        MessageLevel
	Context      string
	Problem      string
	Suggestions  []string
	HelpCommands []string
	NoColor      bool
}

// FormatMessage creates a standardized message with suggestions and help
// commands
//
// Example output:
//
//	❌ FILE NOT FOUND: mian.sig
//	   Did you mean: main.sig?
//
//	   → Get help: sigc parse --help
func FormatMessage(opts MessageOptions) string {
	var b strings.Builder

	var attrs []color.Attribute
	var symbol string
	switch opts.Level {
	case LevelWarning:
		attrs, symbol = []color.Attribute{color.FgYellow}, "⚠️"
	case LevelInfo:
		attrs, symbol = []color.Attribute{color.FgCyan}, "ℹ️"
	default:
		attrs, symbol = []color.Attribute{color.FgRed}, "❌"
	}

	header := color.New(append(attrs, color.Bold)...)
	if opts.NoColor {
		header.DisableColor()
	}

	if opts.Context != "" {
		header.Fprintf(&b, "%s %s: %s\n", symbol, strings.ToUpper(opts.Context), opts.Problem)
	} else {
		header.Fprintf(&b, "%s %s\n", symbol, opts.Problem)
	}

	if len(opts.Suggestions) > 0 {
		yellow := color.New(color.FgYellow)
		if opts.NoColor {
			yellow.DisableColor()
		}
		yellow.Fprintf(&b, "   Did you mean: %s?\n", strings.Join(opts.Suggestions, ", "))
	}

	if len(opts.HelpCommands) > 0 {
		b.WriteString("\n")
		cyan := color.New(color.FgCyan)
		if opts.NoColor {
			cyan.DisableColor()
		}
		for _, cmd := range opts.HelpCommands {
			cyan.Fprintf(&b, "   → %s\n", cmd)
		}
	}

	return b.String()
}

// WriteMessage writes a formatted message to the writer
func WriteMessage(w io.Writer, opts MessageOptions) {
	fmt.Fprint(w, FormatMessage(opts))
}

// FormatSuccess creates a success message
func FormatSuccess(message string, noColor bool) string {
	green := color.New(color.FgGreen, color.Bold)
	if noColor {
		green.DisableColor()
	}
	return green.Sprintf("✓ %s", message)
}

// WriteSuccess writes a success message to the writer
func WriteSuccess(w io.Writer, message string, noColor bool) {
	fmt.Fprintln(w, FormatSuccess(message, noColor))
}

// FileNotFoundError reports a missing source file
func FileNotFoundError(path string, suggestions []string, noColor bool) string {
	return FormatMessage(MessageOptions{
		Level:       LevelError,
		Context:     "FILE NOT FOUND",
		Problem:     path,
		Suggestions: suggestions,
		HelpCommands: []string{
			"Get help: sigc parse --help",
		},
		NoColor: noColor,
	})
}

// ConfigError reports an invalid sigc.yml
func ConfigError(message string, noColor bool) string {
	return FormatMessage(MessageOptions{
		Level:   LevelError,
		Context: "CONFIGURATION ERROR",
		Problem: message,
		HelpCommands: []string{
			"View config: cat sigc.yml",
			"Get help: sigc --help",
		},
		NoColor: noColor,
	})
}

// Warning creates a standardized warning message
func Warning(message string, noColor bool) string {
	return FormatMessage(MessageOptions{
		Level:   LevelWarning,
		Problem: message,
		NoColor: noColor,
	})
}

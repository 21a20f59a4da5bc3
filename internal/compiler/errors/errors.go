// Package errors provides structured diagnostics for the Signal compiler.
// Diagnostics are collected in an append-only Sink and rendered either as the
// one-line strings printed by the CLI or as JSON for tooling.
package errors

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorCode represents a unique diagnostic code
type ErrorCode string

// Phase names the compiler stage that produced a diagnostic
type Phase string

const (
	// PhaseLexer marks diagnostics from lexical analysis
	PhaseLexer Phase = "Lexer"
	// PhaseParser marks diagnostics from syntax analysis
	PhaseParser Phase = "Parser"
)

// ErrorSeverity indicates the severity level of a diagnostic
type ErrorSeverity string

const (
	// SeverityError indicates an error that prevents compilation
	SeverityError ErrorSeverity = "error"
	// SeverityWarning indicates a warning that suggests potential issues
	SeverityWarning ErrorSeverity = "warning"
)

// Location is a 1-based source position. The zero value means the
// diagnostic has no position (end of input).
type Location struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// IsZero reports whether the location is unset
func (l Location) IsZero() bool {
	return l.Line == 0 && l.Column == 0
}

// Diagnostic represents a single compiler diagnostic
type Diagnostic struct {
	// Code is the unique diagnostic code (e.g., "SYN002")
	Code ErrorCode `json:"code" yaml:"code"`
	// Type is a machine-readable identifier
	Type string `json:"type" yaml:"type"`
	// Phase is the compiler stage that reported it
	Phase Phase `json:"phase" yaml:"phase"`
	// Severity is the diagnostic severity level
	Severity ErrorSeverity `json:"severity" yaml:"severity"`
	// Message is the text following the position prefix
	Message string `json:"message" yaml:"message"`
	// Location is the source position of the offending token
	Location Location `json:"location" yaml:"location"`
	// File is the source file name (optional)
	File string `json:"file,omitempty" yaml:"file,omitempty"`
	// Expected describes what was expected (optional)
	Expected string `json:"expected,omitempty" yaml:"expected,omitempty"`
	// Actual describes what was actually found (optional)
	Actual string `json:"actual,omitempty" yaml:"actual,omitempty"`
	// Suggestion provides a hint for fixing the error (optional)
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// String returns the one-line form:
//
//	Error (line: 3, column: 7): ';' expected but 'BEGIN' found
//	Error: '.' expected but EOF found
func (d *Diagnostic) String() string {
	if d.Location.IsZero() {
		return "Error: " + d.Message
	}
	return fmt.Sprintf("Error (line: %d, column: %d): %s", d.Location.Line, d.Location.Column, d.Message)
}

// Error implements the error interface
func (d *Diagnostic) Error() string {
	return d.String()
}

// ToJSON returns the diagnostic as a JSON string
func (d *Diagnostic) ToJSON() (string, error) {
	bytes, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// WithFile sets the source file name
func (d *Diagnostic) WithFile(file string) *Diagnostic {
	d.File = file
	return d
}

// WithExpected sets the expected value
func (d *Diagnostic) WithExpected(expected string) *Diagnostic {
	d.Expected = expected
	return d
}

// WithActual sets the actual value
func (d *Diagnostic) WithActual(actual string) *Diagnostic {
	d.Actual = actual
	return d
}

// WithSuggestion sets a suggestion for fixing the error
func (d *Diagnostic) WithSuggestion(suggestion string) *Diagnostic {
	d.Suggestion = suggestion
	return d
}

// ErrorList is an ordered collection of diagnostics
type ErrorList []*Diagnostic

// Error implements the error interface
func (el ErrorList) Error() string {
	if len(el) == 0 {
		return "no errors"
	}
	lines := make([]string, len(el))
	for i, d := range el {
		lines[i] = d.String()
	}
	return strings.Join(lines, "\n")
}

// HasErrors returns true if the list contains any errors (excludes warnings)
func (el ErrorList) HasErrors() bool {
	for _, d := range el {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of diagnostics by severity
func (el ErrorList) ErrorCount() (errors, warnings int) {
	for _, d := range el {
		switch d.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return
}

// ToJSON returns all diagnostics as a JSON array
func (el ErrorList) ToJSON() (string, error) {
	bytes, err := json.MarshalIndent(el, "", "  ")
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// newError creates a new Diagnostic with the given parameters
func newError(code ErrorCode, typ string, phase Phase, message string, loc Location) *Diagnostic {
	return &Diagnostic{
		Code:     code,
		Type:     typ,
		Phase:    phase,
		Severity: SeverityError,
		Message:  message,
		Location: loc,
	}
}

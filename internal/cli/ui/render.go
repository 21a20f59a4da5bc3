package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/signal-lang/sigc/internal/compiler/ast"
	"github.com/signal-lang/sigc/internal/compiler/errors"
)

// Report output formats
const (
	FormatTree = "tree"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Report is the outcome of analyzing one source
type Report struct {
	File        string              `json:"file" yaml:"file"`
	Accepted    bool                `json:"accepted" yaml:"accepted"`
	Tree        *ast.Node           `json:"tree" yaml:"tree"`
	Diagnostics []*errors.Diagnostic `json:"diagnostics" yaml:"diagnostics"`
}

// ReportOptions configures WriteReport
type ReportOptions struct {
	Format  string
	NoColor bool
	// Verbose renders diagnostics in the detailed multi-line form
	Verbose bool
	// Quiet prints only file:line:column diagnostics, without the tree
	Quiet bool
}

// WriteReport renders r. The tree format prints the indented tree dump
// followed by the diagnostics or a success line; json and yaml encode the
// whole report.
func WriteReport(w io.Writer, r *Report, opts ReportOptions) error {
	switch opts.Format {
	case FormatTree, "":
		if opts.Quiet {
			for _, d := range r.Diagnostics {
				if _, err := fmt.Fprintln(w, errors.FormatCompact(d)); err != nil {
					return err
				}
			}
			return nil
		}
		if err := (&ast.Tree{Root: r.Tree}).Format(w); err != nil {
			return err
		}
		if r.Accepted {
			WriteSuccess(w, fmt.Sprintf("%s: accepted", r.File), opts.NoColor)
			return nil
		}
		if opts.Verbose {
			_, err := fmt.Fprint(w, errors.FormatErrorList(r.Diagnostics))
			return err
		}
		WriteDiagnostics(w, r.Diagnostics, opts.NoColor)
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", opts.Format)
	}
}

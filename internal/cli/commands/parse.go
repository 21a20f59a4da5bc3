package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/signal-lang/sigc/internal/cli/ui"
)

// NewParseCommand creates the parse command
func NewParseCommand() *cobra.Command {
	var verbose, quiet bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Check a Signal source file and print its syntax tree",
		Long: `Lex and parse a Signal source file.

The configured extension (.sig by default) is appended when the filename has
none. Without a file argument sigc prompts for one on a terminal, or reads the
source from stdin when input is piped.

Examples:
  sigc parse main
  sigc parse main.sig --format json
  cat main.sig | sigc parse --quiet`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeSourceFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, verbose, quiet)
		},
	}

	cmd.Flags().StringP("format", "f", "", "Output format: tree, json, yaml")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed diagnostics")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only diagnostics as file:line:column")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, verbose, quiet bool) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	name, source, err := s.readSource(cmd, args)
	if err != nil {
		return err
	}

	result := s.newParser().ParseSource(source)

	s.logger.Info("analysis finished",
		zap.String("file", name),
		zap.Bool("accepted", result.Accepted()),
		zap.Int("tokens", len(result.Tokens)),
		zap.Int("diagnostics", result.Diagnostics.Len()))

	diagnostics := result.Diagnostics.Diagnostics()
	for _, d := range diagnostics {
		d.WithFile(name)
	}

	report := &ui.Report{
		File:        name,
		Accepted:    result.Accepted(),
		Tree:        result.Tree.Root,
		Diagnostics: diagnostics,
	}
	opts := ui.ReportOptions{
		Format:  s.cfg.Output.Format,
		NoColor: s.noColor,
		Verbose: verbose,
		Quiet:   quiet,
	}
	if err := ui.WriteReport(cmd.OutOrStdout(), report, opts); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if !result.Accepted() {
		return fmt.Errorf("%s: analysis failed with %d diagnostic(s)", name, len(diagnostics))
	}
	return nil
}

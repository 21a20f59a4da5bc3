package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/signal-lang/sigc/internal/cli/ui"
	"github.com/signal-lang/sigc/internal/compiler/errors"
	"github.com/signal-lang/sigc/internal/compiler/lexer"
)

// NewTokensCommand creates the tokens command
func NewTokensCommand() *cobra.Command {
	var showTable bool

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the lexer output of a Signal source file",
		Long: `Tokenize a Signal source file and print one row per token.

With --table the code table is printed as well: keywords from 301,
constants from 501 and identifiers from 1001.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeSourceFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args, showTable)
		},
	}

	cmd.Flags().BoolVarP(&showTable, "table", "t", false, "Also print the code table")

	return cmd
}

func runTokens(cmd *cobra.Command, args []string, showTable bool) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	name, source, err := s.readSource(cmd, args)
	if err != nil {
		return err
	}

	lex := lexer.New(source, nil)
	tokens, lexErrors := lex.ScanTokens()
	out := cmd.OutOrStdout()

	ui.Header(out, "Tokens: "+name, s.noColor)
	table := ui.NewTable(out, []string{"Line", "Column", "Code", "Kind", "Name"}, &ui.TableOptions{
		NoColor:    s.noColor,
		RightAlign: []int{0, 1, 2},
	})
	for _, tok := range tokens {
		table.AddRow(strconv.Itoa(tok.Line), strconv.Itoa(tok.Column), strconv.Itoa(tok.Code), tok.Kind.String(), tok.Name)
	}
	table.Render()

	if showTable {
		fmt.Fprintln(out)
		ui.Header(out, "Code table", s.noColor)
		codes := ui.NewTable(out, []string{"Code", "Range", "Name"}, &ui.TableOptions{
			NoColor:    s.noColor,
			RightAlign: []int{0},
		})
		for _, r := range []lexer.Range{lexer.RangeKeyword, lexer.RangeConstant, lexer.RangeIdentifier} {
			for _, e := range lex.Table().Entries(r) {
				codes.AddRow(strconv.Itoa(e.Code), e.Range.String(), e.Name)
			}
		}
		codes.Render()
	}

	fmt.Fprintln(out)
	summary := ui.NewKeyValueTable(out, s.noColor)
	summary.AddRow("Tokens", strconv.Itoa(len(tokens)))
	summary.AddRow("Constants", strconv.Itoa(len(lex.Table().Entries(lexer.RangeConstant))))
	summary.AddRow("Identifiers", strconv.Itoa(len(lex.Table().Entries(lexer.RangeIdentifier))))
	summary.Render()

	if len(lexErrors) > 0 {
		sink := errors.NewSink()
		lexer.Report(lexErrors, sink)
		fmt.Fprintln(out)
		ui.WriteDiagnostics(out, sink.Diagnostics(), s.noColor)
		return fmt.Errorf("%s: %d lexical error(s)", name, len(lexErrors))
	}
	return nil
}

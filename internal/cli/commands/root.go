package commands

import (
	"fmt"
	"io"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sigc",
		Short: "Signal syntax analyzer",
		Long: color.CyanString(`sigc - Signal language front end

sigc tokenizes Signal source files and checks them against the Signal
grammar, printing the syntax tree or the first syntax error.

Features:
  • Lexical analysis with a shared code table
  • Recursive descent syntax analysis
  • Tree output as text, JSON or YAML
  • Language server for editor diagnostics`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.Bool("no-color", false, "Disable colored output")
	flags.String("log-level", "", "Log level: debug, info, warn, error, off")
	flags.Bool("trace", false, "Trace parser productions (implies --log-level debug)")

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewParseCommand())
	rootCmd.AddCommand(NewTokensCommand())
	rootCmd.AddCommand(NewCheckCommand())
	rootCmd.AddCommand(NewLSPCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display the sigc version, Git commit, build date, and Go version",
		Run: func(cmd *cobra.Command, args []string) {
			noColor, _ := cmd.Flags().GetBool("no-color")
			writeVersion(cmd.OutOrStdout(), noColor)
		},
	}
}

func writeVersion(w io.Writer, noColor bool) {
	// Set GoVersion to actual runtime if not set at build time
	goVer := GoVersion
	if goVer == "unknown" {
		goVer = runtime.Version()
	}

	titleColor := color.New(color.FgCyan, color.Bold)
	if noColor {
		titleColor.DisableColor()
	}

	for _, row := range [][2]string{
		{"sigc version: ", Version},
		{"Git commit: ", GitCommit},
		{"Build date: ", BuildDate},
		{"Go version: ", goVer},
	} {
		titleColor.Fprint(w, row[0])
		fmt.Fprintln(w, row[1])
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}

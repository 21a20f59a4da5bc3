package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/signal-lang/sigc/internal/lsp"
)

// NewLSPCommand creates the LSP command
func NewLSPCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		Long: `Start the Signal Language Server Protocol (LSP) server.

The server publishes lexical and syntax diagnostics as documents are opened
and edited, and answers document symbol requests (program, procedure and
label names).

The LSP server communicates via JSON-RPC over stdin/stdout.
It is typically started automatically by your editor/IDE.`,
		RunE: runLSP,
	}
}

func runLSP(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	server := lsp.NewServer(s.logger.Named("lsp"), Version)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle signals for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	return server.Run(ctx)
}

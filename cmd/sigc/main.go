package main

import (
	"os"

	"github.com/signal-lang/sigc/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

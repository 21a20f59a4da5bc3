package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/signal-lang/sigc/internal/cli/config"
)

// NewCompletionCommand creates the completion command for shell completions
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate a shell completion script for sigc.

Besides subcommands and flags, the scripts complete source arguments:
parse and tokens offer files with the configured source extension
(.sig unless sigc.yml says otherwise), check offers those files and
directories.

Bash:
  $ source <(sigc completion bash)

Zsh:
  $ sigc completion zsh > "${fpath[1]}/_sigc"

Fish:
  $ sigc completion fish > ~/.config/fish/completions/sigc.fish

PowerShell:
  PS> sigc completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			root := cmd.Root()

			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}

// sourceExtension is the configured extension without its dot. A broken
// config falls back to the default so completion keeps working.
func sourceExtension() string {
	ext := config.DefaultSourceExtension
	if cfg, err := config.Load(); err == nil {
		ext = cfg.SourceExtension
	}
	return strings.TrimPrefix(ext, ".")
}

// completeSourceFile completes the single file argument of parse and tokens
func completeSourceFile(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{sourceExtension()}, cobra.ShellCompDirectiveFilterFileExt
}

// completeSourcePaths completes any number of source files or directories
func completeSourcePaths(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{sourceExtension()}, cobra.ShellCompDirectiveFilterFileExt
}

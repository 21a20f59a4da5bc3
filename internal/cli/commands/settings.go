package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/signal-lang/sigc/internal/cli/config"
	"github.com/signal-lang/sigc/internal/cli/ui"
	"github.com/signal-lang/sigc/internal/compiler/parser"
)

// stdinName labels sources read from a pipe
const stdinName = "<stdin>"

// settings is the configuration of one command invocation: sigc.yml and
// SIGC_* overlaid with command-line flags
type settings struct {
	cfg     *config.Config
	logger  *zap.Logger
	noColor bool
	// configFile is set when sigc.yml or sigc.yaml was found
	configFile bool
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Flags()
	noColor, _ := flags.GetBool("no-color")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), ui.ConfigError(err.Error(), noColor))
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if flags.Changed("no-color") {
		cfg.Output.Color = !noColor
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("trace") {
		cfg.Parser.Trace, _ = flags.GetBool("trace")
	}
	if flags.Lookup("format") != nil && flags.Changed("format") {
		cfg.Output.Format, _ = flags.GetString("format")
	}
	if cfg.Parser.Trace {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	configFile := config.HasConfigFile(".")
	logger.Debug("configuration loaded",
		zap.Bool("config_file", configFile),
		zap.String("format", cfg.Output.Format),
		zap.String("level", cfg.Log.Level))

	return &settings{
		cfg:        cfg,
		logger:     logger,
		noColor:    !cfg.Output.Color,
		configFile: configFile,
	}, nil
}

func (s *settings) newParser() *parser.Parser {
	if !s.cfg.Parser.Trace {
		return parser.New()
	}
	return parser.New(parser.WithLogger(s.logger.Named("parser")))
}

// readSource returns the source named by args. Without an argument it
// prompts for a filename on a terminal and reads stdin otherwise.
func (s *settings) readSource(cmd *cobra.Command, args []string) (name, content string, err error) {
	var filename string
	if len(args) > 0 {
		filename = args[0]
	} else if in := cmd.InOrStdin(); !isTerminal(in) {
		data, err := io.ReadAll(in)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return stdinName, string(data), nil
	} else {
		prompt := &survey.Input{
			Message: fmt.Sprintf("Source filename [%s]:", s.cfg.SourceExtension),
		}
		if err := survey.AskOne(prompt, &filename, survey.WithValidator(survey.Required)); err != nil {
			return "", "", err
		}
	}

	path := s.cfg.SourcePath(strings.TrimSpace(filename))
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			suggestions := ui.SimilarSources(path, s.cfg.SourceExtension)
			fmt.Fprint(cmd.ErrOrStderr(), ui.FileNotFoundError(path, suggestions, s.noColor))
			return "", "", fmt.Errorf("source file not found: %s", path)
		}
		return "", "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	s.logger.Debug("source loaded", zap.String("file", path), zap.Int("bytes", len(data)))
	return path, string(data), nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

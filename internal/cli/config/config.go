package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Supported output formats
const (
	FormatTree = "tree"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// EnvPrefix prefixes environment overrides, e.g. SIGC_LOG_LEVEL
const EnvPrefix = "SIGC"

// DefaultSourceExtension is used when source_extension is not configured
const DefaultSourceExtension = ".sig"

// Config represents the sigc configuration
type Config struct {
	SourceExtension string       `mapstructure:"source_extension"`
	Output          OutputConfig `mapstructure:"output"`
	Log             LogConfig    `mapstructure:"log"`
	Parser          ParserConfig `mapstructure:"parser"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// LogConfig controls the diagnostic logger on stderr
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// ParserConfig controls syntax analysis
type ParserConfig struct {
	Trace bool `mapstructure:"trace"`
}

// Load loads the configuration from sigc.yml or sigc.yaml in the working
// directory, overlaid with SIGC_* environment variables
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("source_extension", DefaultSourceExtension)
	v.SetDefault("output.format", FormatTree)
	v.SetDefault("output.color", true)
	v.SetDefault("log.level", "warn")
	v.SetDefault("parser.trace", false)

	v.SetConfigName("sigc")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// HasConfigFile reports whether dir holds sigc.yml or sigc.yaml
func HasConfigFile(dir string) bool {
	for _, name := range []string{"sigc.yml", "sigc.yaml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// SourcePath appends the configured extension to name unless it already
// carries one
func (c *Config) SourcePath(name string) string {
	if filepath.Ext(name) != "" {
		return name
	}
	return name + c.SourceExtension
}

// Validate checks the configuration after flag overrides
func (c *Config) Validate() error {
	return validateConfig(c)
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if !strings.HasPrefix(cfg.SourceExtension, ".") || len(cfg.SourceExtension) < 2 {
		return fmt.Errorf("source_extension must start with '.', got: %q", cfg.SourceExtension)
	}

	switch cfg.Output.Format {
	case FormatTree, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("output.format must be one of tree, json, yaml, got: %s", cfg.Output.Format)
	}

	if _, err := parseLevel(cfg.Log.Level); err != nil {
		return err
	}

	return nil
}

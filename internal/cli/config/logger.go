package config

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelOff disables logging entirely
const LevelOff = "off"

// NewLogger builds the stderr logger for the configured level: console
// output for debug, JSON otherwise
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	if level == nil {
		return zap.NewNop(), nil
	}

	zc := zap.NewProductionConfig()
	if *level == zapcore.DebugLevel {
		zc = zap.NewDevelopmentConfig()
		if c.Output.Color {
			zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
	}
	zc.Level = zap.NewAtomicLevelAt(*level)
	zc.DisableStacktrace = true

	return zc.Build()
}

// parseLevel returns nil for "off"
func parseLevel(s string) (*zapcore.Level, error) {
	if strings.EqualFold(s, LevelOff) {
		return nil, nil
	}

	var level zapcore.Level
	switch strings.ToLower(s) {
	case "debug", "info", "warn", "error":
		if err := level.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
			return nil, err
		}
		return &level, nil
	default:
		return nil, fmt.Errorf("log.level must be one of debug, info, warn, error, off, got: %s", s)
	}
}

// Package logging builds the zap logger used across egolog.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rustyeddy/egolog/config"
)

// New builds a logger from cfg. verbose forces debug level. Output goes to
// stderr so it never mixes with command output.
func New(cfg config.LogConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	level := cfg.Level
	if level == "" {
		level = "warn"
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	if verbose {
		lvl.SetLevel(zapcore.DebugLevel)
	}
	zc.Level = lvl

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Named("egolog"), nil
}

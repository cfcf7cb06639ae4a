// Package logging constructs the structured logger shared by the tuple
// and cola packages.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a *zap.SugaredLogger at the given level ("debug",
// "info", "warn", "error"; anything else falls back to "info"). Output
// is JSON by default; setting COLAKV_LOG_PRETTY switches to zap's
// human-readable console encoder, matching the common "JSON in
// production, console for a developer at a terminal" split.
func NewLogger(level string) *zap.SugaredLogger {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	if _, pretty := os.LookupEnv("COLAKV_LOG_PRETTY"); pretty {
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		// zap's own config construction failing indicates a broken
		// encoder/level pair, not a runtime condition callers can act
		// on; fall back to a logger that still prints.
		logger = zap.NewExample()
	}
	return logger.Sugar()
}

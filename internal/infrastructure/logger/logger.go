package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger from environment variables.
//
// Supported env vars:
//   - LOG_LEVEL (debug|info|warn|error, default: info)
//   - LOG_FORMAT (json|console, default: json)
func New() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if lvl := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL"))); lvl != "" {
		parsed, err := zapcore.ParseLevel(lvl)
		if err != nil {
			return nil, err
		}
		cfg.Level = zap.NewAtomicLevelAt(parsed)
	}
	if format := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_FORMAT"))); format == "console" {
		cfg.Encoding = "console"
	}

	return cfg.Build()
}

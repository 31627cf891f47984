// Package observability builds the structured loggers used by the server and CLI.
package observability

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cory-johannsen/ttkcalc/internal/config"
)

// NewLogger creates a logger from cfg that writes to stderr, leaving stdout
// to CLI results. Every entry carries a "service" field naming the binary.
//
// Precondition: cfg.Level must be one of "debug", "info", "warn", "error".
// Precondition: cfg.Format must be "json" or "console".
// Postcondition: Returns a configured zap.Logger or a non-nil error.
func NewLogger(cfg config.LoggingConfig, service string) (*zap.Logger, error) {
	return NewLoggerTo(cfg, service, zapcore.Lock(os.Stderr))
}

// NewLoggerTo is NewLogger with an explicit destination.
//
// Precondition: out must be non-nil.
// Postcondition: Returns a configured zap.Logger or a non-nil error.
func NewLoggerTo(cfg config.LoggingConfig, service string, out zapcore.WriteSyncer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
	}

	var (
		encoder zapcore.Encoder
		opts    = []zap.Option{zap.AddStacktrace(zapcore.ErrorLevel)}
	)
	switch cfg.Format {
	case "json":
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encCfg)
	case "console":
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
		opts = append(opts, zap.AddCaller())
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	logger := zap.New(zapcore.NewCore(encoder, out, level), opts...)
	if service != "" {
		logger = logger.With(zap.String("service", service))
	}
	return logger, nil
}

// SessionLogger returns base annotated with the fields that identify one
// telnet session.
func SessionLogger(base *zap.Logger, sessionID, remoteAddr string) *zap.Logger {
	return base.With(
		zap.String("session_id", sessionID),
		zap.String("remote_addr", remoteAddr),
	)
}

// Package logger builds the process-wide structured logger. Records go to
// stdout as JSON and, when a Sentry DSN is configured, errors are also
// reported to Sentry.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"

	"tigertrade/internal/config"
)

// New creates the application logger writing to stdout.
func New(cfg *config.Config) *slog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter creates the application logger writing JSON to w.
// Without a Sentry DSN only w receives records.
func NewWithWriter(cfg *config.Config, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if cfg.IsDev() {
		level = slog.LevelDebug
	}
	jsonHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})

	if cfg.SentryDSN == "" {
		return slog.New(jsonHandler)
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.Env,
		EnableLogs:  true,
	}); err != nil {
		slog.New(jsonHandler).Error("failed to initialize Sentry", "error", err)
		return slog.New(jsonHandler)
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError},
	}.NewSentryHandler(context.Background())

	return slog.New(newMultiHandler(jsonHandler, sentryHandler))
}

// Flush waits for buffered Sentry events. It is a no-op without Sentry.
func Flush(timeout time.Duration) {
	sentry.Flush(timeout)
}

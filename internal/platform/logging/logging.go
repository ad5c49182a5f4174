// Package logging builds the service's slog logger and carries it through
// request contexts.
//
//	logger := logging.New("info", "json", logging.Output(cfg.Log))
//	ctx = logging.WithLogger(ctx, logger)
//	logging.FromContext(ctx).InfoContext(ctx, "broadcast dispatched")
//
// Failures are logged with the operation name, the identifiers involved and
// the full error chain:
//
//	logger.ErrorContext(ctx, "broadcast failed",
//	    slog.String("operation", "Critical"),
//	    slog.String("patient_id", id),
//	    slog.String("stage", "dispatch"),
//	    slog.Any("error", err),
//	)
//
// Request-scoped loggers installed by the HTTP middleware already carry
// request_id and correlation_id.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// New creates a *slog.Logger writing to w.
//
// Level is one of "debug", "info", "warn" or "error" (case-insensitive,
// anything else means info). Format "text" selects the text handler; every
// other value produces JSON. Source locations are attached at debug level.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

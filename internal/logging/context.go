package logging

import (
	"context"
	"log/slog"
)

const (
	FieldComponent = "component"
	// FieldRunID carries the per-invocation run identifier.
	FieldRunID = "run_id"
	// FieldEventType classifies a log line for filtering (e.g. "backup_written").
	FieldEventType = "event_type"
	FieldPath      = "path"
)

type runIDKey struct{}

// WithRunID returns a context carrying the run identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// WithContext returns logger tagged with the run identifier stored in ctx.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if id, ok := ctx.Value(runIDKey{}).(string); ok && id != "" {
		return logger.With(slog.String(FieldRunID, id))
	}
	return logger
}

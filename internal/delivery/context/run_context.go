package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRunID is the key for storing the import run id in context.
	KeyRunID ContextKey = "run_id"

	// KeyLogger is the key for storing the run-scoped logger in context.
	KeyLogger ContextKey = "logger"
)

// NewRunID returns a fresh run identifier.
func NewRunID() uuid.UUID {
	return uuid.New()
}

// GetRunID extracts the run id from context.Context.
// If not found, returns uuid.Nil.
func GetRunID(ctx context.Context) uuid.UUID {
	if id, ok := ctx.Value(KeyRunID).(uuid.UUID); ok {
		return id
	}

	return uuid.Nil
}

// WithRunID returns a new context with the run id.
func WithRunID(ctx context.Context, runID uuid.UUID) context.Context {
	return context.WithValue(ctx, KeyRunID, runID)
}

// GetLogger extracts the run-scoped logger from context.Context.
// If not found, returns nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the run-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// StartRun returns a context carrying a new run id and a logger annotated
// with it and the dataset.
func StartRun(ctx context.Context, base *slog.Logger, dataset string) (context.Context, uuid.UUID) {
	runID := NewRunID()
	logger := base.With(slog.String("run_id", runID.String()), slog.String("dataset", dataset))

	return WithLogger(WithRunID(ctx, runID), logger), runID
}

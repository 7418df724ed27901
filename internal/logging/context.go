package logging

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

const (
	// FieldComponent is the structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID identifies one conversion, preview or inspect invocation.
	FieldRunID = "run_id"
	// FieldKeymode is the key count of the keymode being processed.
	FieldKeymode = "keymode"
	// FieldAsset is the texture or sample key being processed.
	FieldAsset = "asset"
	// FieldFormat is the skin format ("osu" or "fluxis").
	FieldFormat = "format"
	// FieldStage names the conversion step.
	FieldStage = "stage"
	// FieldEventType classifies warnings so they can be grouped.
	FieldEventType = "event_type"
)

type runIDKey struct{}

// NewRunID returns a fresh run identifier.
func NewRunID() string { return uuid.NewString() }

// WithRunID stores id on ctx.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the run ID stored on ctx.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(runIDKey{}).(string)
	return id, ok && id != ""
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if id, ok := RunIDFromContext(ctx); ok {
		return []slog.Attr{slog.String(FieldRunID, id)}
	}
	return nil
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}

package logger

import (
	"context"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const traceKey = "trace_id"

type ctxKey string

// GetTraceID returns the trace id stored in ctx, or "".
func GetTraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxKey(traceKey)).(string); ok {
		return v
	}
	return ""
}

// SetTraceID returns a child context carrying the given trace id.
func SetTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, ctxKey(traceKey), traceID)
}

// EnsureTraceID returns ctx with a trace id, generating one if absent.
func EnsureTraceID(ctx context.Context) (context.Context, string) {
	if traceID := GetTraceID(ctx); traceID != "" {
		return ctx, traceID
	}
	traceID := gonanoid.Must()
	return SetTraceID(ctx, traceID), traceID
}

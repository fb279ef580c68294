//go:build notrace

package minihtml

import (
	"context"
	"log/slog"
	"time"
)

// Span marks the end of a traced operation. With tracing compiled out
// it does nothing.
type Span interface {
	End()
}

type noOpSpan struct{}

func (noOpSpan) End() {}

// SpanInfo describes a span. It is never populated in notrace builds.
type SpanInfo struct {
	ID       string
	ParentID string
	Name     string
	Start    time.Time
	Tags     map[string]string
}

// TracingEnabled is always false in notrace builds.
var TracingEnabled = false

// WithTraceLogger returns ctx unchanged; the logger is ignored.
func WithTraceLogger(ctx context.Context, _ *slog.Logger) context.Context {
	return ctx
}

// WithSpan returns ctx unchanged and a nil SpanInfo.
func WithSpan(ctx context.Context, _ string) (context.Context, *SpanInfo) {
	return ctx, nil
}

// StartSpan returns ctx and a Span whose End does nothing.
func StartSpan(ctx context.Context, _ string) (context.Context, Span) {
	return ctx, noOpSpan{}
}

// TraceEvent is compiled out.
func TraceEvent(context.Context, string, ...slog.Attr) {}

// TraceError is compiled out.
func TraceError(context.Context, error, string, ...slog.Attr) {}

// SetTracingEnabled has no effect in notrace builds.
func SetTracingEnabled(bool) {}

//go:build !notrace

package minihtml

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"runtime"
	"time"
)

type traceLoggerKey struct{}
type spanIDKey struct{}

// Span is the handle returned by StartSpan. Call End when the traced
// operation completes.
type Span interface {
	End()
}

// SpanInfo holds information about a tracing span
type SpanInfo struct {
	ID       string
	ParentID string
	Name     string
	Start    time.Time
	Tags     map[string]string
}

// TracingEnabled controls whether trace events are emitted at all.
var TracingEnabled = true

// the null logger is a logger that does nothing
var nullLogger = slog.New(slog.DiscardHandler)

// WithTraceLogger returns a context that carries tlog. Parsers that
// receive this context report their progress to tlog at debug level.
func WithTraceLogger(ctx context.Context, tlog *slog.Logger) context.Context {
	// If the context already has a trace logger, return the context as is
	if _, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger); ok {
		return ctx
	}

	return context.WithValue(ctx, traceLoggerKey{}, tlog)
}

// WithSpan creates a new span, nested under the span already in ctx
// if there is one.
func WithSpan(ctx context.Context, name string) (context.Context, *SpanInfo) {
	info := &SpanInfo{
		ID:    generateSpanID(),
		Name:  name,
		Start: time.Now(),
	}
	if parent, ok := ctx.Value(spanIDKey{}).(*SpanInfo); ok {
		info.ParentID = parent.ID
	}
	return context.WithValue(ctx, spanIDKey{}, info), info
}

type span struct {
	tlog *slog.Logger
	info *SpanInfo
}

func (s *span) End() {
	s.tlog.Debug("END",
		slog.String("span_id", s.info.ID),
		slog.String("span_name", s.info.Name),
		slog.Duration("duration", time.Since(s.info.Start)),
	)
}

type noOpSpan struct{}

func (noOpSpan) End() {}

// StartSpan logs the start of spanName and returns a Span whose End
// method logs its completion along with the elapsed time.
func StartSpan(ctx context.Context, spanName string) (context.Context, Span) {
	if !TracingEnabled {
		return ctx, noOpSpan{}
	}

	ctx, info := WithSpan(ctx, spanName)
	tlog := getTraceLogFromContext(ctx)
	tlog.Debug("START",
		slog.String("span_id", info.ID),
		slog.String("span_name", info.Name),
	)
	return ctx, &span{tlog: tlog, info: info}
}

// TraceEvent logs a structured event at debug level
func TraceEvent(ctx context.Context, msg string, attrs ...slog.Attr) {
	if !TracingEnabled {
		return
	}
	tlog := getTraceLogFromContext(ctx)
	tlog.LogAttrs(ctx, slog.LevelDebug, msg, append(spanAttrs(ctx), attrs...)...)
}

// TraceError logs err at error level
func TraceError(ctx context.Context, err error, msg string, attrs ...slog.Attr) {
	if !TracingEnabled {
		return
	}
	tlog := getTraceLogFromContext(ctx)
	attrs = append(spanAttrs(ctx), append(attrs, slog.String("error", err.Error()))...)
	tlog.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func SetTracingEnabled(enabled bool) {
	TracingEnabled = enabled
}

func spanAttrs(ctx context.Context) []slog.Attr {
	if info, ok := ctx.Value(spanIDKey{}).(*SpanInfo); ok {
		return []slog.Attr{slog.String("span_id", info.ID)}
	}
	return nil
}

func getTraceLogFromContext(ctx context.Context) *slog.Logger {
	if tlog, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger); ok {
		// Retrieve the function name of the caller for tracing
		pc, _, _, ok := runtime.Caller(2)
		if ok {
			fn := runtime.FuncForPC(pc)
			if fn != nil {
				tlog = tlog.With(slog.String("fn", fn.Name()))
			}
		}

		return tlog
	}

	return nullLogger
}

// 8 random bytes, hex encoded
func generateSpanID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// Package log provides slog handlers.
package log

import (
	"context"
	"log/slog"

	"github.com/xfwduke/blueking-dbm/internal/middleware"
	"github.com/xfwduke/blueking-dbm/pkg/model"
	"go.opentelemetry.io/otel/trace"
)

// Attribute key of the trace a log record belongs to.
const traceIDKey = "traceId"

// ContextHandler adds request scoped values found in the [context.Context] to every
// [slog.Record]. Keys are shared with [middleware.RequestLogger] so a request log line and the
// logs written while serving it can be matched. None of the values has to be present: the CLI and
// background work log without them.
type ContextHandler struct {
	slog.Handler
}

func New(handler slog.Handler) *ContextHandler {
	return &ContextHandler{Handler: handler}
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	r.AddAttrs(contextAttrs(ctx)...)
	return h.Handler.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return New(h.Handler.WithAttrs(attrs))
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return New(h.Handler.WithGroup(name))
}

func contextAttrs(ctx context.Context) []slog.Attr {
	var attrs []slog.Attr
	if id, ok := middleware.GetCorrelationID(ctx); ok {
		attrs = append(attrs, slog.String(middleware.RequestLoggerKeyCorrelationID, id))
	}
	if id, ok := model.GetTicketIDFromContext(ctx); ok {
		attrs = append(attrs, slog.Uint64(middleware.RequestLoggerKeyTicketID, uint64(id)))
	}
	if span := trace.SpanContextFromContext(ctx); span.HasTraceID() {
		attrs = append(attrs, slog.String(traceIDKey, span.TraceID().String()))
	}
	return attrs
}

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Attribute keys shared by the [RequestLogger] and the context aware slog handler.
const (
	RequestLoggerKeyCorrelationID = "correlationId"
	RequestLoggerKeyTicketID      = "ticketId"
)

// CorrelationIDHeader carries the correlation ID of a request. A valid ID sent by the caller is
// kept so logs can be followed across services.
const CorrelationIDHeader = "X-Correlation-ID"

type ctxKey int

var correlationIDKey ctxKey

// CorrelationID is a Gin middleware that adds a correlation ID to the [http.Request.Context] and
// the response headers. The ID is taken from the [CorrelationIDHeader] if it's a UUID and
// generated otherwise.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(CorrelationIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Header(CorrelationIDHeader, id)

		ctx := NewContextWithCorrelationID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// NewContextWithCorrelationID returns a new [context.Context] that carries value correlationID.
func NewContextWithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDKey, correlationID)
}

// GetCorrelationID returns the correlation ID stored in the ctx, if any. It had to have been set by
// the [CorrelationID] middleware before.
func GetCorrelationID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(correlationIDKey).(string)
	return id, ok
}

// RequestLogger logs every request once it has been served. Client errors are logged as warnings
// and server errors as errors, both including the errors added to the Gin context. Successful
// requests to routes ending in one of quietRoutes, like probes, are logged at debug level.
func RequestLogger(logger *slog.Logger, quietRoutes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		end := time.Now()
		status := c.Writer.Status()

		attrs := []slog.Attr{
			requestAttr(c, start),
			slog.Group("response",
				slog.Time("time", end),
				slog.Duration("latency", end.Sub(start)),
				slog.Int("status", status),
				slog.Int("size", c.Writer.Size()),
			),
		}
		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
			attrs = append(attrs, slog.String("error", c.Errors.String()))
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
			attrs = append(attrs, slog.String("error", c.Errors.String()))
		case isQuiet(c.FullPath(), quietRoutes):
			level = slog.LevelDebug
		}

		logger.LogAttrs(c.Request.Context(), level, "Processed HTTP request", attrs...)
	}
}

func requestAttr(c *gin.Context, start time.Time) slog.Attr {
	params := make(map[string]string, len(c.Params))
	for _, param := range c.Params {
		params[param.Key] = param.Value
	}

	return slog.Group("request",
		slog.Time("time", start),
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("route", c.FullPath()),
		slog.String("query", c.Request.URL.RawQuery),
		slog.Any("params", params),
		slog.String("host", c.Request.Host),
		slog.String("userAgent", c.Request.UserAgent()),
		slog.String("ip", c.ClientIP()),
	)
}

func isQuiet(route string, quietRoutes []string) bool {
	return route != "" && slices.ContainsFunc(quietRoutes, func(quiet string) bool {
		return strings.HasSuffix(route, quiet)
	})
}

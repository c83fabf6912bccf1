package log

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xfwduke/blueking-dbm/internal/errdef"
	"github.com/xfwduke/blueking-dbm/internal/middleware"
	"github.com/xfwduke/blueking-dbm/pkg/model"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestLogs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.CorrelationID())

	var b bytes.Buffer
	logger := slog.New(New(slog.NewJSONHandler(&b, nil)))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.ErrorHandler())

	t.Run("ContainCorrelationIDAndTicketID", func(t *testing.T) {
		b.Reset()
		var correlationID string
		r.GET("/test1/:id", func(c *gin.Context) {
			correlationID, _ = middleware.GetCorrelationID(c.Request.Context())
			ctx := model.NewContextWithTicketID(c.Request.Context(), 100)
			logger.InfoContext(ctx, "info")
			c.String(http.StatusOK, "success")
		})

		w := httptest.NewRecorder()
		req, err := http.NewRequest("GET", "/test1/100", nil)
		require.NoError(t, err)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		lines := readLines(t, &b)
		require.Len(t, lines, 2)
		for _, got := range lines {
			assertLogAttributeEquals(t, got, "correlationId", correlationID)
		}
		assertLogAttributeEquals(t, lines[0], "ticketId", 100)
		_, ok := lines[1]["ticketId"]
		assert.False(t, ok, "want no key `ticketId` on the request log line")
	})

	t.Run("ContainsQueryAndURLParameters", func(t *testing.T) {
		b.Reset()
		r.GET("/test2/:urlParam", func(c *gin.Context) {
			c.String(http.StatusOK, "success")
		})

		w := httptest.NewRecorder()
		req, err := http.NewRequest("GET", "/test2/100?query1=true", nil)
		require.NoError(t, err)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		for _, got := range readLines(t, &b) {
			v := assertLogAttributeKey(t, got, "request")
			gotRequest, ok := v.(map[string]any)
			assert.True(t, ok, "want log line to have key `request` of type map[string]any")

			assertLogAttributeEquals(t, gotRequest, "path", "/test2/100")
			assertLogAttributeEquals(t, gotRequest, "route", "/test2/:urlParam")
			assertLogAttributeEquals(t, gotRequest, "query", "query1=true")
			assertLogAttributeEquals(t, gotRequest, "params", map[string]any{"urlParam": "100"})
		}
	})

	t.Run("UseLogLevelInfoByDefault", func(t *testing.T) {
		b.Reset()
		r.GET("/test3", func(c *gin.Context) {
			c.String(http.StatusOK, "success")
		})

		w := httptest.NewRecorder()
		req, err := http.NewRequest("GET", "/test3", nil)
		require.NoError(t, err)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		for _, got := range readLines(t, &b) {
			assertLogAttributeEquals(t, got, "level", "INFO")
			_, ok := got["error"]
			assert.False(t, ok, "want no key `error` for non warn/error levels")
		}
	})

	t.Run("UseLogLevelWarningOnClientError", func(t *testing.T) {
		b.Reset()
		r.GET("/test4", func(c *gin.Context) {
			_ = c.Error(errdef.NewBadRequest("ticket type %q can't be cloned", "MYSQL_HA_APPLY"))
		})

		w := httptest.NewRecorder()
		req, err := http.NewRequest("GET", "/test4", nil)
		require.NoError(t, err)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code)

		for _, got := range readLines(t, &b) {
			assertLogAttributeEquals(t, got, "level", "WARN")
			assertLogAttributeContains(t, got, "error", "can't be cloned")
		}
	})

	t.Run("UseLogLevelErrorOnServerError", func(t *testing.T) {
		b.Reset()
		r.GET("/test5", func(c *gin.Context) {
			_ = c.Error(errors.New("unknown error"))
		})

		w := httptest.NewRecorder()
		req, err := http.NewRequest("GET", "/test5", nil)
		require.NoError(t, err)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusInternalServerError, w.Code)

		for _, got := range readLines(t, &b) {
			assertLogAttributeEquals(t, got, "level", "ERROR")
			assertLogAttributeContains(t, got, "error", "unknown error")
		}
	})
}

func TestContextHandler(t *testing.T) {
	t.Run("AddsTraceID", func(t *testing.T) {
		var b bytes.Buffer
		logger := slog.New(New(slog.NewJSONHandler(&b, nil)))
		ctx, span := sdktrace.NewTracerProvider().Tracer("test").Start(context.Background(), "clone")
		defer span.End()

		logger.InfoContext(ctx, "cloned")

		lines := readLines(t, &b)
		require.Len(t, lines, 1)
		assertLogAttributeEquals(t, lines[0], "traceId", span.SpanContext().TraceID().String())
	})

	t.Run("WithoutRequestScope", func(t *testing.T) {
		var b bytes.Buffer
		logger := slog.New(New(slog.NewJSONHandler(&b, nil))).With("command", "clone-file")

		logger.InfoContext(context.Background(), "cloned")

		lines := readLines(t, &b)
		require.Len(t, lines, 1)
		assertLogAttributeEquals(t, lines[0], "command", "clone-file")
		for _, key := range []string{"correlationId", "ticketId", "traceId"} {
			_, ok := lines[0][key]
			assert.Falsef(t, ok, "want no key %q", key)
		}
	})
}

func readLines(t *testing.T, b *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	sc := bufio.NewScanner(b)
	for sc.Scan() {
		line := sc.Text()
		got := make(map[string]any)
		require.NoError(t, json.Unmarshal([]byte(line), &got))
		t.Log("log line:", line)
		lines = append(lines, got)
	}
	require.NotEmpty(t, lines, "want at least one log line")
	return lines
}

func assertLogAttributeEquals(t *testing.T, got map[string]any, wantKey string, wantValue any) {
	v := assertLogAttributeKey(t, got, wantKey)
	assert.EqualValuesf(t, wantValue, v, "want log line to have key %q", wantKey)
}

func assertLogAttributeContains(t *testing.T, got map[string]any, wantKey string, wantValue any) {
	v := assertLogAttributeKey(t, got, wantKey)
	assert.Containsf(t, v, wantValue, "want log line to have key %q", wantKey)
}

func assertLogAttributeKey(t *testing.T, got map[string]any, wantKey string) any {
	v, ok := got[wantKey]
	assert.Truef(t, ok, "want log line to have key %q", wantKey)
	return v
}

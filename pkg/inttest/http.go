package inttest

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xfwduke/blueking-dbm/internal/handler"
	"github.com/xfwduke/blueking-dbm/internal/middleware"
	"github.com/xfwduke/blueking-dbm/internal/server"
)

// SetupHTTPServer serves the routes registered by register on an engine carrying the same
// middleware as the service. The returned client talks to that server.
func SetupHTTPServer(t *testing.T, register func(engine *gin.Engine)) *HTTPClient {
	t.Helper()

	require.NoError(t, handler.RegisterValidation(), "failed to register validation")
	gin.SetMode(gin.TestMode)

	engine := server.GetEngine(slog.New(slog.NewTextHandler(io.Discard, nil)))
	register(engine)

	srv := httptest.NewServer(engine.Handler())
	t.Cleanup(srv.Close)

	return &HTTPClient{Client: srv.Client(), ServerURL: srv.URL}
}

// HTTPClient sends requests to a test server and fails the test on anything unexpected.
type HTTPClient struct {
	Client    *http.Client
	ServerURL string
}

// RequestOption modifies the headers of a request.
type RequestOption func(http.Header)

func WithHeader(key string, value string) RequestOption {
	return func(header http.Header) {
		header.Add(key, value)
	}
}

func WithJSONBody() RequestOption {
	return WithHeader("Content-Type", gin.MIMEJSON)
}

func WithCorrelationID(id string) RequestOption {
	return WithHeader(middleware.CorrelationIDHeader, id)
}

// Get returns the body of a GET request to path which must respond with 200.
func (hc *HTTPClient) Get(t *testing.T, path string, options ...RequestOption) []byte {
	t.Helper()
	return hc.Do(t, http.MethodGet, path, nil, http.StatusOK, options...)
}

// Post returns the body of a POST request to path which must respond with 200.
func (hc *HTTPClient) Post(t *testing.T, path string, requestBody io.Reader, options ...RequestOption) []byte {
	t.Helper()
	return hc.Do(t, http.MethodPost, path, requestBody, http.StatusOK, options...)
}

// Do sends a request and returns the response body. The test fails if the response status isn't
// expectedStatus.
func (hc *HTTPClient) Do(t *testing.T, method, path string, requestBody io.Reader, expectedStatus int, options ...RequestOption) []byte {
	t.Helper()

	what := fmt.Sprintf("%s %q", method, path)

	req, err := http.NewRequest(method, hc.ServerURL+path, requestBody)
	require.NoError(t, err, "%s: failed to create request", what)
	for _, option := range options {
		option(req.Header)
	}

	res, err := hc.Client.Do(req)
	require.NoError(t, err, "%s: request failed", what)
	defer func() {
		require.NoError(t, res.Body.Close(), "%s: failed to close response body", what)
	}()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err, "%s: failed to read response body", what)
	require.Equal(t, expectedStatus, res.StatusCode, "%s: unexpected status, body: %s", what, body)
	return body
}

// GetJSON decodes the body of a successful GET request to path into responseBody.
func (hc *HTTPClient) GetJSON(t *testing.T, path string, responseBody any, options ...RequestOption) {
	t.Helper()

	body := hc.Get(t, path, options...)
	require.NoError(t, json.Unmarshal(body, responseBody), "GET %q: failed to decode response body", path)
}

// PostJSON posts the JSON requestBody to path and decodes the body of the successful response into
// responseBody.
func (hc *HTTPClient) PostJSON(t *testing.T, path string, requestBody io.Reader, responseBody any, options ...RequestOption) {
	t.Helper()

	if requestBody != nil {
		options = append(options, WithJSONBody())
	}
	body := hc.Post(t, path, requestBody, options...)
	require.NoError(t, json.Unmarshal(body, responseBody), "POST %q: failed to decode response body", path)
}

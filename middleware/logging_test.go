package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/spaserver/core/handler"
	"github.com/dmitrymomot/spaserver/core/logger"
	"github.com/dmitrymomot/spaserver/core/response"
	"github.com/dmitrymomot/spaserver/core/router"
	"github.com/dmitrymomot/spaserver/middleware"
)

func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func newLoggedRouter(buf *bytes.Buffer, h handler.HandlerFunc[*router.Context], cfg middleware.LoggingConfig) http.Handler {
	cfg.Logger = logger.New(
		logger.WithJSONFormatter(),
		logger.WithOutput(buf),
		logger.WithLevel(slog.LevelDebug),
		logger.WithContextExtractors(middleware.RequestIDExtractor),
	)

	r := router.New[*router.Context](
		router.WithErrorHandler(response.ErrorHandler[*router.Context]),
		router.WithMiddleware(
			middleware.RequestID[*router.Context](),
			middleware.LoggingWithConfig[*router.Context](cfg),
		),
	)
	r.Get(h)
	return r
}

func TestLoggingSuccess(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := newLoggedRouter(&buf, func(ctx *router.Context) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			_, err := io.WriteString(w, "hello")
			return err
		}
	}, middleware.LoggingConfig{})

	req := httptest.NewRequest(http.MethodGet, "/app.js?v=1", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	recs := records(t, &buf)
	require.Len(t, recs, 1)

	rec := recs[0]
	assert.Equal(t, "HTTP request completed", rec["msg"])
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, "GET", rec["method"])
	assert.Equal(t, "/app.js", rec["path"])
	assert.EqualValues(t, 200, rec["status_code"])
	assert.EqualValues(t, 5, rec["bytes_out"])
	assert.Len(t, rec["request_id"], 36)
}

func TestLoggingErrorStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		level  string
	}{
		{"not found", response.ErrNotFound, http.StatusNotFound, "WARN"},
		{"forbidden", response.ErrForbidden, http.StatusForbidden, "WARN"},
		{"internal", errors.New("disk on fire"), http.StatusInternalServerError, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newLoggedRouter(&buf, func(ctx *router.Context) handler.Response {
				return response.Error(tt.err)
			}, middleware.LoggingConfig{})

			req := httptest.NewRequest(http.MethodGet, "/missing", nil)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)

			recs := records(t, &buf)
			require.Len(t, recs, 1)
			assert.EqualValues(t, tt.status, recs[0]["status_code"])
			assert.Equal(t, tt.level, recs[0]["level"])
			if tt.status >= 500 {
				assert.Equal(t, "disk on fire", recs[0]["error"])
			} else {
				assert.NotContains(t, recs[0], "error")
			}
		})
	}
}

func TestLoggingRequestRecordAndHeaders(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := newLoggedRouter(&buf, func(ctx *router.Context) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusNoContent)
			return nil
		}
	}, middleware.LoggingConfig{LogRequest: true, LogHeaders: true})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer secret")
	req.Header.Set("Accept", "text/html")
	h.ServeHTTP(httptest.NewRecorder(), req)

	recs := records(t, &buf)
	require.Len(t, recs, 2)
	assert.Equal(t, "HTTP request started", recs[0]["msg"])

	headers, ok := recs[0]["request_headers"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "[REDACTED]", headers["Authorization"])
	assert.Equal(t, "text/html", headers["Accept"])
	assert.NotContains(t, buf.String(), "Bearer secret")

	assert.EqualValues(t, 204, recs[1]["status_code"])
	assert.Equal(t, recs[0]["request_id"], recs[1]["request_id"])
}

func TestLoggingSkip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := newLoggedRouter(&buf, func(ctx *router.Context) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error { return nil }
	}, middleware.LoggingConfig{
		Skip: func(ctx handler.Context) bool { return ctx.Request().URL.Path == "/health" },
	})

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, buf.String())
}

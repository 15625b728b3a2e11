package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clientes/config"
	deliverycontext "clientes/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRequestIDMiddleware_GeneratesAndPropagates(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	mw := NewRequestIDMiddleware(newBufferLogger(&buf))

	var seen string
	e.GET("/", func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside")

		return c.NoContent(http.StatusOK)
	}, mw.Process)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, buf.String(), seen)
}

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.Default())
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, mw.Process)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-id.42")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "client-id.42", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_TagsRoute(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	mw := NewRequestIDMiddleware(newBufferLogger(&buf))
	e.Use(mw.Process)
	e.GET("/api/clientes/:id", func(c echo.Context) error {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside")

		return c.NoContent(http.StatusOK)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/clientes/42", nil))

	assert.Contains(t, buf.String(), `"method":"GET"`)
	assert.Contains(t, buf.String(), `"route":"/api/clientes/:id"`)
	assert.NotContains(t, buf.String(), "/api/clientes/42")
}

func TestRequestIDMiddleware_ReplacesMalformedClientID(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.Default())
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, mw.Process)

	for _, sent := range []string{
		"line\nbreak",
		"with space",
		strings.Repeat("a", maxRequestIDLength+1),
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, sent)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		got := rec.Header().Get(deliverycontext.HeaderXRequestID)
		assert.NotEqual(t, sent, got)
		_, err := uuid.Parse(got)
		assert.NoError(t, err, "sent %q", sent)
	}
}

func TestLoggerMiddleware_LogsRenderedStatus(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	mw := NewLoggerMiddleware(newBufferLogger(&buf), cfg)
	e.GET("/missing", func(echo.Context) error { return echo.ErrNotFound }, mw.Handle)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, buf.String(), `"status":404`)
	assert.Contains(t, buf.String(), `"uri":"/missing"`)
}

func TestLoggerMiddleware_QuietOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	mw := NewLoggerMiddleware(newBufferLogger(&buf), &config.Config{})
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, mw.Handle)
	e.GET("/boom", func(echo.Context) error { return echo.ErrInternalServerError }, mw.Handle)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Empty(t, buf.String())

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Contains(t, buf.String(), `"status":500`)
}

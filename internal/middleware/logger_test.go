package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	original := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(original) })
	return &buf
}

func TestLogger_InjectsRequestScopedLogger(t *testing.T) {
	logs := captureLogs(t)

	e := echo.New()
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: func() string { return "req-123" },
	}))
	e.Use(Logger)
	e.GET("/", func(c echo.Context) error {
		FromContext(c.Request().Context()).Info("inside handler")
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, logs.String(), "inside handler")
	assert.Contains(t, logs.String(), "request_id=req-123")
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Same(t, slog.Default(), FromContext(req.Context()))
}

func TestAccessLog(t *testing.T) {
	logs := captureLogs(t)

	e := echo.New()
	e.Use(Logger, AccessLog())
	e.GET("/ok", func(c echo.Context) error { return c.String(http.StatusOK, "OK") })
	e.GET("/fail", func(c echo.Context) error { return errors.New("boom") })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Contains(t, logs.String(), "msg=request")
	assert.Contains(t, logs.String(), "uri=/ok")
	assert.Contains(t, logs.String(), "status=200")

	logs.Reset()
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Contains(t, logs.String(), `msg="request failed"`)
	assert.Contains(t, logs.String(), "error=boom")
}

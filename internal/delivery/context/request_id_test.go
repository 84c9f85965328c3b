package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestScope(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	ctx, logger := Scope(context.Background(), base, "req-42")
	logger.Info("hello")

	assert.Equal(t, "req-42", RequestID(ctx))
	assert.Same(t, logger, Logger(ctx, base))
	assert.Contains(t, buf.String(), "request_id=req-42")
}

func TestLoggerFallsBack(t *testing.T) {
	fallback := slog.Default()

	assert.Same(t, fallback, Logger(context.Background(), fallback))
	assert.Empty(t, RequestID(context.Background()))
}

func TestEchoRequestID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	generated := EchoRequestID(c)
	assert.NotEmpty(t, generated)

	SetEchoRequestID(c, "abc")
	assert.Equal(t, "abc", EchoRequestID(c))
}

// Package context carries the request id and the request-scoped logger through
// API requests, push deliveries and in-process dispatches.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	loggerKey
)

// HeaderXRequestID is echoed back on every API response.
const HeaderXRequestID = "X-Request-Id"

// echoRequestIDKey is the echo.Context key read by the response envelope.
const echoRequestIDKey = "request_id"

// Scope attaches requestID and a logger tagged with it to ctx.
func Scope(ctx context.Context, logger *slog.Logger, requestID string) (context.Context, *slog.Logger) {
	scoped := logger.With(slog.String("request_id", requestID))
	ctx = context.WithValue(ctx, requestIDKey, requestID)

	return context.WithValue(ctx, loggerKey, scoped), scoped
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestID returns the request id stored in ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// Logger returns the request-scoped logger, or fallback when ctx has none.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// SetEchoRequestID stores requestID on the echo context.
func SetEchoRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// EchoRequestID returns the id set by the request id middleware. Handlers
// mounted without it still get a fresh one so envelopes never go out empty.
func EchoRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

package middleware

import (
	"log/slog"
	"strings"
	"time"

	"muslimapp/config"
	deliverycontext "muslimapp/internal/delivery/context"
	domainerrors "muslimapp/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LoggerMiddleware writes one access line per request. Health probes are only
// logged in debug mode.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		if !m.debug && strings.HasSuffix(c.Path(), "/health") {
			return err
		}
		m.log(c, time.Since(start), err)

		return err
	}
}

func (m *LoggerMiddleware) log(c echo.Context, latency time.Duration, err error) {
	req := c.Request()
	status := c.Response().Status
	// The error handler runs after this middleware, so derive the final status here.
	if err != nil {
		var appErr domainerrors.AppError
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			status = appErr.HTTPCode()
		case errors.As(err, &httpErr):
			status = httpErr.Code
		case status < 400:
			status = 500
		}
	}

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.Int("status", status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
	}
	if req.URL.RawQuery != "" && m.debug {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}

	logger := deliverycontext.Logger(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), level, "HTTP request", attrs...)
}

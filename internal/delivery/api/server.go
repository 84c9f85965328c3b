package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"muslimapp/config"
	"muslimapp/internal/delivery"
	apimiddleware "muslimapp/internal/delivery/api/middleware"
	"muslimapp/internal/delivery/api/router"
	"muslimapp/internal/delivery/api/validator"
	deliverycontext "muslimapp/internal/delivery/context"
	"muslimapp/internal/delivery/middleware"
	"muslimapp/internal/domain/constants"
	"muslimapp/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// configureEcho installs the middleware chain, the error handler and the validator.
func configureEcho(e *echo.Echo, cfg *config.Config, logger *slog.Logger) {
	// Recover first so panics in later middleware are caught
	e.Use(echomiddleware.Recover())

	// Request ID must precede the logger so log lines carry it
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowHeaders: []string{echo.HeaderContentType, constants.HeaderAPIKey, deliverycontext.HeaderXRequestID},
	}))
	e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()
}

type apiServer struct {
	cfg           *config.Config
	logger        *slog.Logger
	server        *echo.Echo
	apiKeyEnabled bool
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	configureEcho(echoServer, params.Cfg, params.Logger)

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	srv := &apiServer{
		cfg:           params.Cfg,
		logger:        params.Logger,
		server:        echoServer,
		apiKeyEnabled: params.RouterParams.APIKeyMiddleware.Enabled(),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))
	if !s.apiKeyEnabled {
		s.logger.Warn("No API keys configured, API routes are open")
	}
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}

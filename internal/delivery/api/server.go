// Package api serves the job board REST API over echo.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"jobboard/config"
	"jobboard/internal/delivery"
	apimiddleware "jobboard/internal/delivery/api/middleware"
	"jobboard/internal/delivery/api/router"
	"jobboard/internal/delivery/api/validator"
	"jobboard/internal/delivery/middleware"
	"jobboard/internal/domain/lifecycle"
	"jobboard/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc              fx.Lifecycle
	Cfg             *config.Config
	Logger          *slog.Logger
	ErrorMiddleware *apimiddleware.ErrorMiddleware
	RouterParams    router.RouterParams
}

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	echo   *echo.Echo
}

// NewServer builds the echo instance and registers its shutdown hook. Serving
// starts when the delivery is started.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		echo:   newEcho(params.Cfg.HTTP.Timeouts),
	}

	srv.useMiddleware(params.ErrorMiddleware)
	router.NewRouter(params.RouterParams).RegisterRoutes(srv.echo)

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(timeouts config.HTTPTimeouts) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout
	e.Validator = validator.New()

	return e
}

// useMiddleware installs the global chain. Order matters: recover first, then
// the request id so every later log line carries it.
func (s *apiServer) useMiddleware(errorMiddleware *apimiddleware.ErrorMiddleware) {
	s.echo.Pre(echomiddleware.RemoveTrailingSlash())

	s.echo.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(s.logger).Process,
		middleware.NewLoggerMiddleware(s.logger, s.cfg).Handle,
		echomiddleware.CORS(),
		echomiddleware.Secure(),
		echomiddleware.BodyLimit(s.cfg.HTTP.MaxRequestBodySize),
	)

	s.echo.HTTPErrorHandler = errorMiddleware.HandleHTTPError
}

func (s *apiServer) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Job board API listening", slog.String("host_port", hostPort))

	h2s := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.echo.StartH2CServer(hostPort, h2s); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "serve job board API")
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down job board API")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}

// Package server wires the HTTP API
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/Ramsey-B/fern/internal/services/reconciliation"
	"github.com/Ramsey-B/fern/pkg/middleware"
	"github.com/Ramsey-B/fern/pkg/routes/accounts"
	"github.com/Ramsey-B/fern/pkg/routes/health"
	"github.com/Ramsey-B/fern/pkg/routes/inquiries"
	"github.com/Ramsey-B/fern/pkg/routes/normalize"
	"github.com/Ramsey-B/fern/pkg/routes/wallet"
)

type Config struct {
	ServiceName       string
	Port              int
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	MaxHeaderBytes    int
	AllowOrigins      []string
	AllowMethods      []string
}

// Server is the HTTP API. It implements the startup dependency contract.
type Server struct {
	cfg        Config
	logger     ectologger.Logger
	echo       *echo.Echo
	health     *health.Checker
	httpServer *http.Server
	listener   net.Listener
	done       chan struct{}
}

func New(cfg Config, logger ectologger.Logger, service *reconciliation.Service, checker *health.Checker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.Error(logger)

	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: cfg.AllowMethods,
	}))
	e.Use(otelecho.Middleware(cfg.ServiceName))
	e.Use(middleware.Context())
	e.Use(middleware.Logger(logger))

	checker.RegisterRoutes(e)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	accounts.NewHandler(service).Register(api.Group("/accounts"))
	inquiries.NewHandler(service).Register(api.Group("/inquiries"))
	wallet.NewHandler(service).Register(api.Group("/wallet"))
	normalize.NewHandler(service).Register(api.Group("/normalize"))

	return &Server{
		cfg:    cfg,
		logger: logger,
		echo:   e,
		health: checker,
	}
}

// Handler exposes the router for in-process requests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Addr returns the bound listen address once started
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) GetName() string {
	return "http-server"
}

func (s *Server) DependsOn() []string {
	return []string{"tracing"}
}

// Start binds the port and serves in the background
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return errors.Wrapf(err, "failed to listen on port %d", s.cfg.Port)
	}

	s.listener = listener
	s.done = make(chan struct{})
	s.httpServer = &http.Server{
		Handler:           s.echo,
		ReadTimeout:       s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
		MaxHeaderBytes:    s.cfg.MaxHeaderBytes,
	}

	go func() {
		defer close(s.done)
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.WithError(err).Error("HTTP server stopped unexpectedly")
		}
	}()

	s.health.SetReady(true)
	s.logger.WithContext(ctx).WithField("addr", s.Addr()).Info("HTTP server started")
	return nil
}

// Stop drains in-flight requests
func (s *Server) Stop(ctx context.Context) error {
	s.health.SetReady(false)
	if s.httpServer == nil {
		return nil
	}

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "failed to shut down HTTP server")
	}
	<-s.done
	return nil
}

// Package api provides the HTTP server for the web application.
// It uses the Echo framework to serve the landing page, the liveness probe
// and the JSON info and status endpoints.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "evalgo.org/webapp/docs" // Import generated docs
	"evalgo.org/webapp/internal/config"
	"evalgo.org/webapp/internal/sysinfo"
	"evalgo.org/webapp/internal/web"
)

const (
	textRequestLogFormat = "[${time_rfc3339}] ${status} ${method} ${uri} (${latency_human}) id=${id}\n"
	jsonRequestLogFormat = `{"time":"${time_rfc3339_nano}","id":"${id}","remote_ip":"${remote_ip}",` +
		`"method":"${method}","uri":"${uri}","status":${status},"latency_human":"${latency_human}"}` + "\n"
)

// Server represents the web application HTTP server.
type Server struct {
	echo      *echo.Echo
	config    *config.Config
	collector *sysinfo.Collector
	logger    *log.Logger
}

// New creates a new server instance.
func New(cfg *config.Config, collector *sysinfo.Collector, logger *log.Logger) *Server {
	e := echo.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.Server.Debug
	e.Logger = logger

	// Set custom error handler
	e.HTTPErrorHandler = HTTPErrorHandler

	server := &Server{
		echo:      e,
		config:    cfg,
		collector: collector,
		logger:    logger,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

// setupMiddleware configures Echo middleware.
func (s *Server) setupMiddleware() {
	format := jsonRequestLogFormat
	if s.config.Logging.Format == "text" {
		format = textRequestLogFormat
	}

	// Request ID middleware, ahead of the logger so ${id} is populated
	s.echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	if s.logger.Level() != log.OFF {
		s.echo.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
			Format: format,
			Output: s.logger.Output(),
		}))
	}

	s.echo.Use(middleware.Recover())
	s.echo.Use(SecurityHeaders)

	if len(s.config.Security.AllowedOrigins) > 0 {
		s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.config.Security.AllowedOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodHead},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		}))
	}
}

// setupRoutes configures routes.
func (s *Server) setupRoutes() {
	webHandler := web.NewHandler(s.collector, s.config)

	// Landing page
	s.echo.GET("/", webHandler.Home)

	// Liveness probe for the load balancer
	s.echo.GET("/health", s.healthCheck)
	s.echo.HEAD("/health", s.healthCheck)

	// Swagger UI documentation
	s.echo.GET("/docs/*", echoSwagger.WrapHandler)

	api := s.echo.Group("/api")
	api.GET("/info", s.getInstanceInfo)
	api.GET("/status", s.getStatus)
}

// Start starts the HTTP server. It blocks until the server stops and
// returns http.ErrServerClosed after a graceful shutdown.
func (s *Server) Start() error {
	addr := s.config.Server.Addr()

	s.logger.Infof("starting web application on http://%s (environment=%s region=%s instance=%s)",
		addr, s.config.App.Environment, s.config.App.Region, s.config.App.InstanceID)

	s.echo.Server.ReadTimeout = s.config.Server.ReadTimeout
	s.echo.Server.WriteTimeout = s.config.Server.WriteTimeout

	if err := s.echo.Start(addr); err != nil {
		if err == http.ErrServerClosed {
			return err
		}
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down web application")

	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// ServeHTTP allows Server to implement http.Handler for testing
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

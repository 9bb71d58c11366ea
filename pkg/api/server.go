// Package api exposes the HTTP surface: the WebSocket event stream,
// liveness/readiness, and Prometheus metrics. There are no REST handlers;
// alerts enter through the service layer and all observable state flows out
// over the event stream.
package api

import (
	"context"
	"net"
	"net/http"

	echo "github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tarsy-project/tarsy/pkg/config"
	"github.com/tarsy-project/tarsy/pkg/database"
	"github.com/tarsy-project/tarsy/pkg/events"
	"github.com/tarsy-project/tarsy/pkg/queue"
)

// Server is the HTTP server. Optional dependencies (workerPool, connManager)
// may be nil; their endpoints degrade accordingly.
type Server struct {
	cfg         *config.Config
	dbClient    *database.Client
	workerPool  *queue.WorkerPool
	connManager *events.ConnectionManager

	echo *echo.Echo
	http *http.Server
}

// NewServer creates the HTTP server and registers its routes.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	workerPool *queue.WorkerPool,
	connManager *events.ConnectionManager,
) *Server {
	s := &Server{
		cfg:         cfg,
		dbClient:    dbClient,
		workerPool:  workerPool,
		connManager: connManager,
		echo:        echo.New(),
	}

	s.echo.Use(securityHeaders())

	s.echo.GET("/healthz", s.healthHandler)
	s.echo.GET("/ws", s.wsHandler)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return s
}

// Handler returns the underlying HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on addr and serves until Shutdown is called. Blocks;
// returns http.ErrServerClosed on clean shutdown.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:    addr,
		Handler: s.echo,
	}
	return s.http.ListenAndServe()
}

// StartWithListener serves on an existing listener. Used by tests that need
// an OS-assigned port.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.http = &http.Server{
		Handler: s.echo,
	}
	return s.http.Serve(ln)
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

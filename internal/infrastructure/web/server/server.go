package server

import (
	"context"
	"crypto-tracker/internal/infrastructure/config"
	"crypto-tracker/internal/infrastructure/logging"
	"fmt"
	"net/http"
	"time"
)

const idleTimeout = 60 * time.Second

// Server encapsulates HTTP server configuration
type Server struct {
	httpServer *http.Server
	port       int
}

// NewServer creates a new server instance from the server section of the config
func NewServer(handler http.Handler, cfg config.ServerConfig) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       idleTimeout,
		},
		port: cfg.Port,
	}
}

// Start starts the HTTP server. Blocks until the server stops.
func (s *Server) Start() error {
	ctx := context.Background()

	logging.Info(ctx, "HTTP server starting", logging.Fields{
		"port": s.port,
	})

	logging.Info(ctx, "Available endpoints", logging.Fields{
		"endpoints": s.Endpoints(),
	})

	return s.httpServer.ListenAndServe()
}

// Endpoints lista las rutas públicas para el log de arranque
func (s *Server) Endpoints() []string {
	base := fmt.Sprintf("http://localhost:%d", s.port)
	return []string{
		"GET  " + base + "/",
		"GET  " + base + "/?q=btc&sort=price_desc",
		"GET  " + base + "/coin/bitcoin",
		"GET  " + base + "/api/v1/coins?q=eth&sort=market_cap",
		"GET  " + base + "/api/v1/coins/bitcoin",
		"GET  " + base + "/health",
		"GET  " + base + "/ready",
		"GET  " + base + "/metrics",
		"GET  " + base + "/swagger/index.html",
	}
}

// Stop stops the HTTP server gracefully
func (s *Server) Stop(ctx context.Context) error {
	logging.Info(ctx, "Stopping HTTP server gracefully", logging.Fields{
		"port": s.port,
	})

	return s.httpServer.Shutdown(ctx)
}

// GetPort returns the configured port
func (s *Server) GetPort() int {
	return s.port
}

package main

import (
	"context"
	"crypto-tracker/internal/infrastructure/config"
	"crypto-tracker/internal/infrastructure/exchange/coingecko"
	"crypto-tracker/internal/infrastructure/logging"
	"crypto-tracker/internal/infrastructure/metrics"
	"crypto-tracker/internal/infrastructure/web/handlers"
	"crypto-tracker/internal/infrastructure/web/router"
	"crypto-tracker/internal/infrastructure/web/server"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
)

// @title Crypto Tracker API
// @version 1.0.0
// @description Market viewer for the top cryptocurrencies by market cap, quoted in EUR, backed by the CoinGecko public API.
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	loggerConfig := logging.NewConfig(cfg.App.Name, cfg.App.Version, cfg.App.Environment).
		WithLevel(logging.LogLevelFromString(cfg.Logging.Level)).
		WithFormat(logging.LogFormatFromString(cfg.Logging.Format))
	if err := logging.InitializeGlobalLoggers(loggerConfig); err != nil {
		fmt.Fprintf(os.Stderr, "logging error: %v\n", err)
		os.Exit(1)
	}

	metrics.SetApplicationInfo(cfg.App.Version, cfg.App.Environment, runtime.Version())

	logging.Info(ctx, "Starting Crypto Tracker", logging.Fields{
		"version":      cfg.App.Version,
		"environment":  cfg.App.Environment,
		"coingecko":    cfg.CoinGecko.BaseURL,
		"max_attempts": cfg.CoinGecko.MaxAttempts,
		"has_api_key":  cfg.CoinGecko.APIKey != "",
		"timezone":     cfg.Display.Timezone,
		"chart_days":   cfg.Display.ChartDays,
	})

	srv, err := buildServer(cfg)
	if err != nil {
		logging.ErrorWithError(ctx, "Failed to build HTTP server", err, nil)
		os.Exit(1)
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logging.Info(ctx, "Shutdown signal received", logging.Fields{"signal": sig.String()})
	case err := <-serverErr:
		logging.ErrorWithError(ctx, "HTTP server failed", err, nil)
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logging.ErrorWithError(ctx, "Server forced to shutdown", err, nil)
		return
	}

	logging.Info(ctx, "Server shutdown completed", nil)
}

// loadConfig lee .env, config.yaml y variables de entorno, y valida el resultado
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return nil, err
	}
	if err := config.NewValidator().Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildServer conecta cliente de mercado, handlers y router
func buildServer(cfg *config.Config) (*server.Server, error) {
	client := coingecko.NewClientWithConfig(cfg.CoinGecko)

	viewConfig := handlers.ViewConfig{
		Location:  cfg.Display.Location(),
		ChartDays: cfg.Display.ChartDays,
	}

	pages, err := handlers.NewPagesHandler(client, viewConfig)
	if err != nil {
		return nil, err
	}

	r := router.NewRouter(router.Handlers{
		Pages:  pages,
		API:    handlers.NewAPIHandler(client, viewConfig),
		Health: handlers.NewHealthHandler(client),
	})

	return server.NewServer(r, cfg.Server), nil
}

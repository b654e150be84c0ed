package handlers

import (
	"context"
	"crypto-tracker/internal/application/dto"
	"crypto-tracker/internal/domain/interfaces"
	"net/http"
	"time"
)

// DefaultReadyTimeout acota la comprobación contra el proveedor de mercado
const DefaultReadyTimeout = 3 * time.Second

// HealthHandler maneja los endpoints de health check
type HealthHandler struct {
	client       interfaces.MarketDataClient
	readyTimeout time.Duration
}

// NewHealthHandler crea una nueva instancia del health handler
func NewHealthHandler(client interfaces.MarketDataClient) *HealthHandler {
	return &HealthHandler{
		client:       client,
		readyTimeout: DefaultReadyTimeout,
	}
}

// Health godoc
// @Summary Basic health check
// @Description Verifies that the service is running correctly. Responds quickly without checking external dependencies.
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is running correctly"
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	services := map[string]string{
		"service": "running",
	}

	writeJSONResponse(r.Context(), w, http.StatusOK, dto.NewHealthResponse("healthy", services))
}

// Ready godoc
// @Summary Readiness check
// @Description Verifies that the market data provider answers the listing request within a short timeout.
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is ready to receive traffic"
// @Failure 503 {object} dto.HealthResponse "Market data provider is failing"
// @Router /ready [get]
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.readyTimeout)
	defer cancel()

	services := make(map[string]string)

	if _, err := h.client.ListMarkets(ctx); err != nil {
		services["coingecko"] = "error: " + err.Error()
		writeJSONResponse(r.Context(), w, http.StatusServiceUnavailable, dto.NewHealthResponse("unhealthy", services))
		return
	}

	services["coingecko"] = "ready"
	services["service"] = "ready"

	writeJSONResponse(r.Context(), w, http.StatusOK, dto.NewHealthResponse("ready", services))
}

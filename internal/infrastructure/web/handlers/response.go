package handlers

import (
	"context"
	"crypto-tracker/internal/application/dto"
	"crypto-tracker/internal/domain/interfaces"
	"crypto-tracker/internal/infrastructure/logging"
	"encoding/json"
	"net/http"
	"strconv"
	"time"
)

// ViewConfig agrupa lo que necesitan los handlers para montar los view models
type ViewConfig struct {
	Location  *time.Location
	ChartDays int
}

func (c ViewConfig) chartDays() int {
	if c.ChartDays <= 0 {
		return interfaces.DefaultChartDays
	}
	return c.ChartDays
}

func (c ViewConfig) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// writeJSONResponse writes a JSON response preserving the request context for logging
func writeJSONResponse(ctx context.Context, w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.ErrorWithError(ctx, "Failed to encode JSON response", err, logging.Fields{
			"status_code": statusCode,
		})
	}
}

// writeErrorResponse writes a standard error response
func writeErrorResponse(ctx context.Context, w http.ResponseWriter, statusCode int, errorCode, message string) {
	response := dto.NewErrorResponseWithCode(errorCode, message, strconv.Itoa(statusCode))
	writeJSONResponse(ctx, w, statusCode, response)
}

// NotFound responde 404 en JSON para rutas desconocidas
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeErrorResponse(r.Context(), w, http.StatusNotFound, "NOT_FOUND", "The requested resource does not exist")
}

package router

import (
	"crypto-tracker/internal/infrastructure/metrics"
	"crypto-tracker/internal/infrastructure/web/handlers"
	"crypto-tracker/internal/infrastructure/web/middleware"
	"net/http"

	_ "crypto-tracker/internal/docs"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Handlers agrupa los handlers que monta el router
type Handlers struct {
	Pages  *handlers.PagesHandler
	API    *handlers.APIHandler
	Health *handlers.HealthHandler
}

// NewRouter monta páginas, API JSON, health checks, métricas y documentación
func NewRouter(h Handlers) *mux.Router {
	r := mux.NewRouter()
	r.StrictSlash(true)

	// Orden: tracing primero para que el request ID esté en el contexto de todo lo demás
	r.Use(middleware.RequestTracingMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(metrics.HTTPMetricsMiddleware)

	// Páginas
	r.HandleFunc("/", h.Pages.Listing).Methods(http.MethodGet)
	r.HandleFunc("/coin/{id}", h.Pages.Detail).Methods(http.MethodGet)

	// API JSON
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.CORSMiddleware)
	api.HandleFunc("/coins", h.API.ListCoins).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/coins/{id}", h.API.GetCoin).Methods(http.MethodGet, http.MethodOptions)

	// Health checks
	r.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)
	r.HandleFunc("/ready", h.Health.Ready).Methods(http.MethodGet)

	// Monitoring
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Documentación
	r.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.HandleFunc("/docs", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/swagger/index.html", http.StatusMovedPermanently)
	})

	r.NotFoundHandler = http.HandlerFunc(handlers.NotFound)

	return r
}

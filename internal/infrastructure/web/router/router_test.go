package router

import (
	"context"
	"crypto-tracker/internal/domain/entities"
	"crypto-tracker/internal/infrastructure/web/handlers"
	"crypto-tracker/internal/infrastructure/web/middleware"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient responde siempre lo mismo; el router no necesita más
type stubClient struct{}

func (stubClient) ListMarkets(ctx context.Context) ([]entities.CoinSummary, error) {
	return []entities.CoinSummary{
		{ID: "bitcoin", Name: "Bitcoin", Symbol: "btc", CurrentPrice: 60000, MarketCap: 1.2e12, MarketCapRank: 1},
	}, nil
}

func (stubClient) GetCoin(ctx context.Context, id string) (*entities.CoinDetail, error) {
	return &entities.CoinDetail{ID: id, Name: "Bitcoin", Symbol: "btc", MarketCapRank: 1, CurrentPrice: 60000}, nil
}

func (stubClient) GetChart(ctx context.Context, id string, days int) ([]entities.PricePoint, error) {
	return []entities.PricePoint{entities.NewPricePoint(1704067200000, 42000)}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	client := stubClient{}
	viewConfig := handlers.ViewConfig{Location: time.UTC, ChartDays: 7}

	pages, err := handlers.NewPagesHandler(client, viewConfig)
	require.NoError(t, err)

	return NewRouter(Handlers{
		Pages:  pages,
		API:    handlers.NewAPIHandler(client, viewConfig),
		Health: handlers.NewHealthHandler(client),
	})
}

func TestRouter_Routes(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name        string
		method      string
		path        string
		wantStatus  int
		contentType string
	}{
		{"listado html", http.MethodGet, "/", http.StatusOK, "text/html"},
		{"detalle html", http.MethodGet, "/coin/bitcoin", http.StatusOK, "text/html"},
		{"listado json", http.MethodGet, "/api/v1/coins?q=btc", http.StatusOK, "application/json"},
		{"detalle json", http.MethodGet, "/api/v1/coins/bitcoin", http.StatusOK, "application/json"},
		{"health", http.MethodGet, "/health", http.StatusOK, "application/json"},
		{"ready", http.MethodGet, "/ready", http.StatusOK, "application/json"},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK, "text/plain"},
		{"swagger doc.json", http.MethodGet, "/swagger/doc.json", http.StatusOK, "application/json"},
		{"ruta desconocida", http.MethodGet, "/nope", http.StatusNotFound, "application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), tt.contentType)
		})
	}
}

func TestRouter_RequestIDOnMatchedRoutes(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_DocsRedirect(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))

	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/swagger/index.html", rec.Header().Get("Location"))
}

func TestRouter_APIPreflight(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/v1/coins", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_SwaggerSpecDescribesAPI(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Crypto Tracker API")
	assert.Contains(t, rec.Body.String(), "/api/v1/coins/{id}")
}

package handlers

import (
	"context"
	"crypto-tracker/internal/application/dto"
	"crypto-tracker/internal/domain/entities"
	"crypto-tracker/internal/domain/interfaces"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMarketDataClient es un mock de interfaces.MarketDataClient
type MockMarketDataClient struct {
	mock.Mock
}

func (m *MockMarketDataClient) ListMarkets(ctx context.Context) ([]entities.CoinSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.CoinSummary), args.Error(1)
}

func (m *MockMarketDataClient) GetCoin(ctx context.Context, id string) (*entities.CoinDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CoinDetail), args.Error(1)
}

func (m *MockMarketDataClient) GetChart(ctx context.Context, id string, days int) ([]entities.PricePoint, error) {
	args := m.Called(ctx, id, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.PricePoint), args.Error(1)
}

var (
	errUpstream = fmt.Errorf("markets: %w", interfaces.ErrFetch)
	errNotFound = fmt.Errorf("coin: %w: %w", interfaces.ErrNotFound, interfaces.ErrFetch)
)

func testCoins() []entities.CoinSummary {
	return []entities.CoinSummary{
		{ID: "bitcoin", Name: "Bitcoin", Symbol: "btc", CurrentPrice: 60000, MarketCap: 1.2e12, MarketCapRank: 1, PriceChangePercentage24h: 1.5},
		{ID: "ethereum", Name: "Ethereum", Symbol: "eth", CurrentPrice: 3000, MarketCap: 3.6e11, MarketCapRank: 2, PriceChangePercentage24h: -0.5},
		{ID: "bitcoin-cash", Name: "Bitcoin Cash", Symbol: "bch", CurrentPrice: 450, MarketCap: 8.9e9, MarketCapRank: 17, PriceChangePercentage24h: 3},
	}
}

func testDetail() *entities.CoinDetail {
	supply := 19500000.0
	return &entities.CoinDetail{
		ID: "bitcoin", Name: "Bitcoin", Symbol: "btc", MarketCapRank: 1,
		CurrentPrice: 60000, High24h: 61000, Low24h: 59000,
		MarketCap: 1.2e12, TotalVolume: 3.5e10, CirculatingSupply: &supply,
		PriceChangePercentage24h: 1.5,
	}
}

func testPoints() []entities.PricePoint {
	return []entities.PricePoint{
		entities.NewPricePoint(1704067200000, 42000),
		entities.NewPricePoint(1704153600000, 43000),
	}
}

func withID(req *http.Request, id string) *http.Request {
	return mux.SetURLVars(req, map[string]string{"id": id})
}

var testViewConfig = ViewConfig{Location: time.UTC, ChartDays: 7}

// ===== API =====

func TestAPIHandler_ListCoins(t *testing.T) {
	client := new(MockMarketDataClient)
	client.On("ListMarkets", mock.Anything).Return(testCoins(), nil).Once()
	handler := NewAPIHandler(client, testViewConfig)

	rec := httptest.NewRecorder()
	handler.ListCoins(rec, httptest.NewRequest(http.MethodGet, "/api/v1/coins?q=BIT&sort=price", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp dto.ListingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, "BIT", resp.Query)
	assert.Equal(t, "price_asc", resp.Sort)
	assert.Equal(t, "bitcoin-cash", resp.Coins[0].ID)
	assert.Equal(t, "€450.00", resp.Coins[0].PriceDisplay)
	client.AssertExpectations(t)
}

func TestAPIHandler_ListCoins_UpstreamFailure(t *testing.T) {
	client := new(MockMarketDataClient)
	client.On("ListMarkets", mock.Anything).Return(nil, errUpstream).Once()
	handler := NewAPIHandler(client, testViewConfig)

	rec := httptest.NewRecorder()
	handler.ListCoins(rec, httptest.NewRequest(http.MethodGet, "/api/v1/coins", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", resp.Error)
	assert.Equal(t, "Failed to load crypto data. Please try again later.", resp.Message)
	assert.Equal(t, "502", resp.Code)
}

func TestAPIHandler_GetCoin(t *testing.T) {
	client := new(MockMarketDataClient)
	client.On("GetCoin", mock.Anything, "bitcoin").Return(testDetail(), nil)
	client.On("GetChart", mock.Anything, "bitcoin", 7).Return(testPoints(), nil)
	handler := NewAPIHandler(client, testViewConfig)

	rec := httptest.NewRecorder()
	handler.GetCoin(rec, withID(httptest.NewRequest(http.MethodGet, "/api/v1/coins/Bitcoin", nil), "Bitcoin"))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.DetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Coin)
	assert.Equal(t, "€60,000.00", resp.Coin.CurrentPrice)
	assert.Equal(t, "N/A", resp.Coin.TotalSupply)
	assert.True(t, resp.ChartAvailable)
	assert.Equal(t, []entities.ChartPoint{{Label: "Jan 1", Price: "42000.00"}, {Label: "Jan 2", Price: "43000.00"}}, resp.Chart)
	assert.False(t, resp.NotFound)
}

func TestAPIHandler_GetCoin_ChartFailure(t *testing.T) {
	client := new(MockMarketDataClient)
	client.On("GetCoin", mock.Anything, "bitcoin").Return(testDetail(), nil)
	client.On("GetChart", mock.Anything, "bitcoin", 7).Return(nil, errUpstream)
	handler := NewAPIHandler(client, testViewConfig)

	rec := httptest.NewRecorder()
	handler.GetCoin(rec, withID(httptest.NewRequest(http.MethodGet, "/api/v1/coins/bitcoin", nil), "bitcoin"))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.DetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Coin)
	assert.False(t, resp.ChartAvailable)
	assert.Empty(t, resp.Chart)
	assert.Contains(t, rec.Body.String(), `"chart":[]`)
}

func TestAPIHandler_GetCoin_NotFound(t *testing.T) {
	client := new(MockMarketDataClient)
	client.On("GetCoin", mock.Anything, "nope").Return(nil, errNotFound)
	client.On("GetChart", mock.Anything, "nope", 7).Return(nil, errNotFound)
	handler := NewAPIHandler(client, testViewConfig)

	rec := httptest.NewRecorder()
	handler.GetCoin(rec, withID(httptest.NewRequest(http.MethodGet, "/api/v1/coins/nope", nil), "nope"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var resp dto.DetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.NotFound)
	assert.Nil(t, resp.Coin)
	assert.Equal(t, "Coin not found", resp.Message)
}

func TestAPIHandler_GetCoin_UpstreamFailure(t *testing.T) {
	client := new(MockMarketDataClient)
	client.On("GetCoin", mock.Anything, "bitcoin").Return(nil, errUpstream)
	client.On("GetChart", mock.Anything, "bitcoin", 7).Return(testPoints(), nil)
	handler := NewAPIHandler(client, testViewConfig)

	rec := httptest.NewRecorder()
	handler.GetCoin(rec, withID(httptest.NewRequest(http.MethodGet, "/api/v1/coins/bitcoin", nil), "bitcoin"))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestAPIHandler_GetCoin_InvalidID(t *testing.T) {
	client := new(MockMarketDataClient)
	handler := NewAPIHandler(client, testViewConfig)

	rec := httptest.NewRecorder()
	handler.GetCoin(rec, withID(httptest.NewRequest(http.MethodGet, "/api/v1/coins/x", nil), "  "))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	client.AssertNotCalled(t, "GetCoin", mock.Anything, mock.Anything)
	client.AssertNotCalled(t, "GetChart", mock.Anything, mock.Anything, mock.Anything)
}

// ===== HEALTH =====

func TestHealthHandler_Health(t *testing.T) {
	handler := NewHealthHandler(new(MockMarketDataClient))

	rec := httptest.NewRecorder()
	handler.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp dto.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
}

func TestHealthHandler_Ready(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantState  string
	}{
		{"proveedor disponible", nil, http.StatusOK, "ready"},
		{"proveedor caído", errUpstream, http.StatusServiceUnavailable, "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockMarketDataClient)
			if tt.err != nil {
				client.On("ListMarkets", mock.Anything).Return(nil, tt.err)
			} else {
				client.On("ListMarkets", mock.Anything).Return(testCoins(), nil)
			}

			rec := httptest.NewRecorder()
			NewHealthHandler(client).Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var resp dto.HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantState, resp.Status)
			assert.Contains(t, resp.Services, "coingecko")
		})
	}
}

// ===== PÁGINAS =====

func newTestPages(t *testing.T, client *MockMarketDataClient) *PagesHandler {
	t.Helper()
	pages, err := NewPagesHandler(client, testViewConfig)
	require.NoError(t, err)
	return pages
}

func TestPagesHandler_Listing(t *testing.T) {
	client := new(MockMarketDataClient)
	client.On("ListMarkets", mock.Anything).Return(testCoins(), nil)

	rec := httptest.NewRecorder()
	newTestPages(t, client).Listing(rec, httptest.NewRequest(http.MethodGet, "/?q=eth&sort=name", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, "Ethereum")
	assert.NotContains(t, body, "Bitcoin Cash")
	assert.Contains(t, body, `href="/coin/ethereum"`)
	assert.Contains(t, body, `<option value="name" selected>`)
	assert.Contains(t, body, "↓ 0.50%")
}

func TestPagesHandler_Listing_Error(t *testing.T) {
	client := new(MockMarketDataClient)
	client.On("ListMarkets", mock.Anything).Return(nil, errUpstream)

	rec := httptest.NewRecorder()
	newTestPages(t, client).Listing(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to load crypto data. Please try again later.")
}

func TestPagesHandler_Listing_EscapesQuery(t *testing.T) {
	client := new(MockMarketDataClient)
	client.On("ListMarkets", mock.Anything).Return(testCoins(), nil)

	rec := httptest.NewRecorder()
	newTestPages(t, client).Listing(rec, httptest.NewRequest(http.MethodGet, "/?q=%3Cb%3E", nil))

	assert.NotContains(t, rec.Body.String(), "<b>")
	assert.Contains(t, rec.Body.String(), "&lt;b&gt;")
}

func TestPagesHandler_Detail(t *testing.T) {
	client := new(MockMarketDataClient)
	client.On("GetCoin", mock.Anything, "bitcoin").Return(testDetail(), nil)
	client.On("GetChart", mock.Anything, "bitcoin", 7).Return(testPoints(), nil)

	rec := httptest.NewRecorder()
	newTestPages(t, client).Detail(rec, withID(httptest.NewRequest(http.MethodGet, "/coin/bitcoin", nil), "bitcoin"))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Rank # 1")
	assert.Contains(t, body, "€60,000.00")
	assert.Contains(t, body, "↑ 1.50%")
	assert.Contains(t, body, "€1.20T")
	assert.Contains(t, body, "19,500,000")
	assert.Contains(t, body, "N/A")
	assert.Contains(t, body, "<polyline")
	assert.Contains(t, body, "Go Back")
}

func TestPagesHandler_Detail_ChartUnavailable(t *testing.T) {
	client := new(MockMarketDataClient)
	client.On("GetCoin", mock.Anything, "bitcoin").Return(testDetail(), nil)
	client.On("GetChart", mock.Anything, "bitcoin", 7).Return(nil, errUpstream)

	rec := httptest.NewRecorder()
	newTestPages(t, client).Detail(rec, withID(httptest.NewRequest(http.MethodGet, "/coin/bitcoin", nil), "bitcoin"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "€60,000.00")
	assert.Contains(t, rec.Body.String(), "Chart data is not available.")
	assert.NotContains(t, rec.Body.String(), "<polyline")
}

func TestPagesHandler_Detail_NotFound(t *testing.T) {
	client := new(MockMarketDataClient)
	client.On("GetCoin", mock.Anything, "nope").Return(nil, errNotFound)
	client.On("GetChart", mock.Anything, "nope", 7).Return(nil, errNotFound)

	rec := httptest.NewRecorder()
	newTestPages(t, client).Detail(rec, withID(httptest.NewRequest(http.MethodGet, "/coin/nope", nil), "nope"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Coin not found")
	assert.Contains(t, body, "Go Back")
	assert.NotContains(t, body, "Try Again")
}

func TestNewChartSVG(t *testing.T) {
	assert.Nil(t, newChartSVG(nil))
	assert.Nil(t, newChartSVG([]entities.ChartPoint{{Label: "Jan 1", Price: "bad"}}))

	chart := newChartSVG([]entities.ChartPoint{
		{Label: "Jan 1", Price: "10.00"},
		{Label: "Jan 2", Price: "20.00"},
		{Label: "Jan 3", Price: "15.00"},
	})
	require.NotNil(t, chart)
	assert.Equal(t, "0.0,280.0 400.0,20.0 800.0,150.0", chart.Points)
	assert.Equal(t, "10.00", chart.Min)
	assert.Equal(t, "20.00", chart.Max)
	assert.Equal(t, "Jan 1", chart.FirstLabel)
	assert.Equal(t, "Jan 3", chart.LastLabel)

	flat := newChartSVG([]entities.ChartPoint{{Label: "Jan 1", Price: "5.00"}})
	require.NotNil(t, flat)
	assert.Equal(t, "0.0,150.0", flat.Points)
}

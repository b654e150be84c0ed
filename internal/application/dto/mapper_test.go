package dto

import (
	"crypto-tracker/internal/application/services"
	"crypto-tracker/internal/domain/entities"
	"crypto-tracker/internal/domain/interfaces"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewMapper_ToListingResponse(t *testing.T) {
	snap := services.ListingSnapshot{
		Coins: []entities.CoinSummary{
			{ID: "bitcoin", Name: "Bitcoin", Symbol: "btc", CurrentPrice: 1234.5, MarketCap: 1.5e12, MarketCapRank: 1, PriceChangePercentage24h: -2.5},
			{ID: "shiba-inu", Name: "Shiba Inu", Symbol: "shib", CurrentPrice: 0.00000123, MarketCap: 2.3e6, MarketCapRank: 12},
		},
		Total:   100,
		Query:   "i",
		SortKey: services.SortByName,
	}

	resp := NewViewMapper().ToListingResponse(snap)

	require.Len(t, resp.Coins, 2)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, 100, resp.Total)
	assert.Equal(t, "name", resp.Sort)
	assert.Empty(t, resp.Error)

	btc := resp.Coins[0]
	assert.Equal(t, "BTC", btc.Symbol)
	assert.Equal(t, "€1,234.50", btc.PriceDisplay)
	assert.Equal(t, "1.50T", btc.MarketCapDisplay)
	assert.Equal(t, ChangeBadge{Positive: false, Arrow: "↓", Percent: "2.50%"}, btc.Change)
	assert.Equal(t, "/coin/bitcoin", btc.DetailURL)

	shib := resp.Coins[1]
	assert.Equal(t, "0.00000123", shib.PriceDisplay)
	assert.Equal(t, "2.30M", shib.MarketCapDisplay)
	assert.True(t, shib.Change.Positive)

	require.Len(t, resp.SortOptions, len(services.SortKeys()))
	for _, opt := range resp.SortOptions {
		assert.Equal(t, opt.Value == "name", opt.Selected, opt.Value)
		assert.NotEmpty(t, opt.Label)
	}
}

func TestViewMapper_ToListingResponse_LoadError(t *testing.T) {
	resp := NewViewMapper().ToListingResponse(services.ListingSnapshot{
		SortKey:   services.SortByRank,
		LoadError: services.LoadErrorMessage,
	})

	assert.NotNil(t, resp.Coins)
	assert.Empty(t, resp.Coins)
	assert.Equal(t, services.LoadErrorMessage, resp.Error)
}

func TestViewMapper_ToDetailResponse_Full(t *testing.T) {
	circulating := 19500000.0
	snap := services.DetailSnapshot{
		ID: "bitcoin",
		Coin: &entities.CoinDetail{
			ID: "bitcoin", Name: "Bitcoin", Symbol: "btc", MarketCapRank: 1,
			CurrentPrice: 60000.5, High24h: 61000, Low24h: 59000,
			MarketCap: 1.2e12, TotalVolume: 3.5e10,
			CirculatingSupply: &circulating, PriceChangePercentage24h: 0,
		},
		Chart: []entities.ChartPoint{{Label: "Jan 1", Price: "42000.13"}},
	}

	resp := NewViewMapper().ToDetailResponse(snap, 7)

	require.NotNil(t, resp.Coin)
	assert.Equal(t, "€60,000.50", resp.Coin.CurrentPrice)
	assert.Equal(t, "€61,000.00", resp.Coin.High24h)
	assert.Equal(t, "€59,000.00", resp.Coin.Low24h)
	assert.Equal(t, "€1.20T", resp.Coin.MarketCap)
	assert.Equal(t, "€35.00B", resp.Coin.TotalVolume)
	assert.Equal(t, "19,500,000", resp.Coin.CirculatingSupply)
	assert.Equal(t, "N/A", resp.Coin.TotalSupply)
	assert.Equal(t, "↑", resp.Coin.Change.Arrow)
	assert.Equal(t, "0.00%", resp.Coin.Change.Percent)
	assert.True(t, resp.ChartAvailable)
	assert.Len(t, resp.Chart, 1)
	assert.False(t, resp.NotFound)
	assert.Empty(t, resp.Message)
	assert.Equal(t, 7, resp.ChartDays)
}

func TestViewMapper_ToDetailResponse_ChartFailed(t *testing.T) {
	snap := services.DetailSnapshot{
		ID:       "bitcoin",
		Coin:     &entities.CoinDetail{ID: "bitcoin", Name: "Bitcoin", MarketCap: math.NaN()},
		ChartErr: fmt.Errorf("chart: %w", interfaces.ErrFetch),
	}

	resp := NewViewMapper().ToDetailResponse(snap, 7)

	require.NotNil(t, resp.Coin)
	assert.Equal(t, "—", resp.Coin.MarketCap)
	assert.False(t, resp.ChartAvailable)
	assert.NotNil(t, resp.Chart)
	assert.Empty(t, resp.Chart)
}

func TestViewMapper_ToDetailResponse_EmptyStates(t *testing.T) {
	mapper := NewViewMapper()

	notFound := mapper.ToDetailResponse(services.DetailSnapshot{
		ID:      "nope",
		CoinErr: fmt.Errorf("%w: %w", interfaces.ErrNotFound, interfaces.ErrFetch),
	}, 7)
	assert.Nil(t, notFound.Coin)
	assert.True(t, notFound.NotFound)
	assert.Equal(t, "Coin not found", notFound.Message)

	failed := mapper.ToDetailResponse(services.DetailSnapshot{
		ID:      "bitcoin",
		CoinErr: fmt.Errorf("coin: %w", interfaces.ErrFetch),
	}, 7)
	assert.Nil(t, failed.Coin)
	assert.False(t, failed.NotFound)
	assert.Equal(t, genericFailureMessage, failed.Message)

	loading := mapper.ToDetailResponse(services.DetailSnapshot{ID: "bitcoin", CoinLoading: true}, 7)
	assert.Empty(t, loading.Message)
}

func TestNewListingRequest(t *testing.T) {
	req := NewListingRequest("  btc  ", "price")
	assert.Equal(t, "btc", req.Query)
	assert.Equal(t, services.SortByPriceAsc, req.Sort)

	long := NewListingRequest(string(make([]rune, 300)), "unknown")
	assert.Len(t, []rune(long.Query), MaxQueryLength)
	assert.Equal(t, services.SortByRank, long.Sort)
}

func TestNewDetailRequest(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		want    string
		wantErr bool
	}{
		{"id válido", "bitcoin", "bitcoin", false},
		{"normaliza mayúsculas", " Bitcoin-Cash ", "bitcoin-cash", false},
		{"vacío", "", "", true},
		{"con barra", "a/b", "", true},
		{"demasiado largo", string(make([]byte, MaxCoinIDLength+1)), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewDetailRequest(tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, interfaces.ErrInvalidID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.ID)
		})
	}
}

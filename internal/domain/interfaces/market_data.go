package interfaces

import (
	"context"

	"crypto-tracker/internal/domain/entities"
)

// DefaultChartDays is the trailing window of the detail chart.
const DefaultChartDays = 7

// MarketDataClient es la única frontera de red: tres lecturas contra la API de mercado.
type MarketDataClient interface {
	// ListMarkets returns the top assets by market cap, quoted in EUR.
	ListMarkets(ctx context.Context) ([]entities.CoinSummary, error)

	// GetCoin returns the metadata of a single asset.
	GetCoin(ctx context.Context, id string) (*entities.CoinDetail, error)

	// GetChart returns the price history for the trailing days, oldest first.
	GetChart(ctx context.Context, id string, days int) ([]entities.PricePoint, error)
}

package services

import (
	"context"
	"crypto-tracker/internal/domain/entities"

	"github.com/stretchr/testify/mock"
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

package coingecko

import (
	"crypto-tracker/internal/domain/entities"
	"errors"
	"fmt"
	"math"
)

const eur = "eur"

var (
	errMissingMarketData = errors.New("missing market_data")
	errBadChartPair      = errors.New("chart entry is not a [timestamp, price] pair")
)

// MarketCoin es un elemento de /coins/markets. CoinGecko envía null en campos
// numéricos de activos recién listados, por eso son punteros.
type MarketCoin struct {
	ID                       string   `json:"id"`
	Symbol                   string   `json:"symbol"`
	Name                     string   `json:"name"`
	Image                    string   `json:"image"`
	CurrentPrice             *float64 `json:"current_price"`
	MarketCap                *float64 `json:"market_cap"`
	MarketCapRank            *int     `json:"market_cap_rank"`
	PriceChangePercentage24h *float64 `json:"price_change_percentage_24h"`
}

// ToEntity convierte el modelo de la API en la entidad de dominio
func (m MarketCoin) ToEntity() entities.CoinSummary {
	return entities.CoinSummary{
		ID:                       m.ID,
		Name:                     m.Name,
		Symbol:                   m.Symbol,
		ImageURL:                 m.Image,
		CurrentPrice:             valueOrZero(m.CurrentPrice),
		MarketCap:                valueOrZero(m.MarketCap),
		MarketCapRank:            intOrZero(m.MarketCapRank),
		PriceChangePercentage24h: valueOrZero(m.PriceChangePercentage24h),
	}
}

// CoinResponse es la respuesta de /coins/{id}
type CoinResponse struct {
	ID            string      `json:"id"`
	Symbol        string      `json:"symbol"`
	Name          string      `json:"name"`
	MarketCapRank *int        `json:"market_cap_rank"`
	Image         CoinImage   `json:"image"`
	MarketData    *MarketData `json:"market_data"`
}

type CoinImage struct {
	Thumb string `json:"thumb"`
	Small string `json:"small"`
	Large string `json:"large"`
}

// MarketData agrupa las cifras de mercado, cotizadas por moneda
type MarketData struct {
	CurrentPrice             map[string]float64 `json:"current_price"`
	High24h                  map[string]float64 `json:"high_24h"`
	Low24h                   map[string]float64 `json:"low_24h"`
	MarketCap                map[string]float64 `json:"market_cap"`
	TotalVolume              map[string]float64 `json:"total_volume"`
	CirculatingSupply        *float64           `json:"circulating_supply"`
	TotalSupply              *float64           `json:"total_supply"`
	PriceChangePercentage24h *float64           `json:"price_change_percentage_24h"`
}

// ToEntity extrae los valores en EUR. Un total_supply ausente se conserva como nil.
func (c CoinResponse) ToEntity() (*entities.CoinDetail, error) {
	if c.MarketData == nil {
		return nil, errMissingMarketData
	}
	md := c.MarketData

	return &entities.CoinDetail{
		ID:                       c.ID,
		Name:                     c.Name,
		Symbol:                   c.Symbol,
		ImageURL:                 c.Image.Large,
		MarketCapRank:            intOrZero(c.MarketCapRank),
		CurrentPrice:             md.CurrentPrice[eur],
		High24h:                  md.High24h[eur],
		Low24h:                   md.Low24h[eur],
		MarketCap:                md.MarketCap[eur],
		TotalVolume:              md.TotalVolume[eur],
		CirculatingSupply:        md.CirculatingSupply,
		TotalSupply:              md.TotalSupply,
		PriceChangePercentage24h: valueOrZero(md.PriceChangePercentage24h),
	}, nil
}

// ChartResponse es la respuesta de /coins/{id}/market_chart; cada entrada es [ms, precio]
type ChartResponse struct {
	Prices       [][]float64 `json:"prices"`
	MarketCaps   [][]float64 `json:"market_caps"`
	TotalVolumes [][]float64 `json:"total_volumes"`
}

// ToEntities mantiene el orden de la API, que ya es cronológico
func (c ChartResponse) ToEntities() ([]entities.PricePoint, error) {
	points := make([]entities.PricePoint, 0, len(c.Prices))
	for i, pair := range c.Prices {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: index %d has %d values", errBadChartPair, i, len(pair))
		}
		points = append(points, entities.NewPricePoint(int64(math.Round(pair[0])), pair[1]))
	}
	return points, nil
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

package entities

// CoinSummary is one row of the market listing, in the order the API returned it.
type CoinSummary struct {
	ID                       string  `json:"id"`
	Name                     string  `json:"name"`
	Symbol                   string  `json:"symbol"`
	ImageURL                 string  `json:"image,omitempty"`
	CurrentPrice             float64 `json:"current_price"`
	MarketCap                float64 `json:"market_cap"`
	MarketCapRank            int     `json:"market_cap_rank"`
	PriceChangePercentage24h float64 `json:"price_change_percentage_24h"`
}

// CoinDetail holds the metadata and EUR market data for a single asset.
// Supply fields are optional: uncapped assets have no total supply.
type CoinDetail struct {
	ID                       string   `json:"id"`
	Name                     string   `json:"name"`
	Symbol                   string   `json:"symbol"`
	ImageURL                 string   `json:"image_url"`
	MarketCapRank            int      `json:"market_cap_rank"`
	CurrentPrice             float64  `json:"current_price"`
	High24h                  float64  `json:"high_24h"`
	Low24h                   float64  `json:"low_24h"`
	MarketCap                float64  `json:"market_cap"`
	TotalVolume              float64  `json:"total_volume"`
	CirculatingSupply        *float64 `json:"circulating_supply,omitempty"`
	TotalSupply              *float64 `json:"total_supply,omitempty"`
	PriceChangePercentage24h float64  `json:"price_change_percentage_24h"`
}

// IsPositive reports whether the 24h change counts as an increase (zero included).
func (c *CoinDetail) IsPositive() bool {
	return c.PriceChangePercentage24h >= 0
}

package dto

import (
	"crypto-tracker/internal/domain/entities"
	"time"
)

// ChangeBadge is the 24h change indicator
// @Description Direction and magnitude of the 24h price change
type ChangeBadge struct {
	Positive bool   `json:"positive" example:"true"` // True when the change is zero or positive
	Arrow    string `json:"arrow" example:"↑"`       // ↑ or ↓
	Percent  string `json:"percent" example:"2.35%"` // Absolute change with 2 decimals
}

// CoinRow represents one asset of the listing
// @Description One row of the market listing, formatted for display
type CoinRow struct {
	ID                       string      `json:"id" example:"bitcoin"`
	Name                     string      `json:"name" example:"Bitcoin"`
	Symbol                   string      `json:"symbol" example:"BTC"`
	ImageURL                 string      `json:"image,omitempty" example:"https://assets.coingecko.com/coins/images/1/large/bitcoin.png"`
	Rank                     int         `json:"market_cap_rank" example:"1"`
	CurrentPrice             float64     `json:"current_price" example:"60000.5"`            // Raw EUR price
	MarketCap                float64     `json:"market_cap" example:"1200000000000"`         // Raw EUR market cap
	PriceChangePercentage24h float64     `json:"price_change_percentage_24h" example:"2.35"` // Raw 24h change
	PriceDisplay             string      `json:"price_display" example:"€60,000.50"`         // Formatted EUR price
	MarketCapDisplay         string      `json:"market_cap_display" example:"1.20T"`         // Abbreviated market cap
	Change                   ChangeBadge `json:"change"`                                     // Change badge
	DetailURL                string      `json:"detail_url" example:"/coin/bitcoin"`         // Link to the detail page
}

// SortOption is one entry of the sort selector
type SortOption struct {
	Value    string `json:"value" example:"rank"`
	Label    string `json:"label" example:"Rank"`
	Selected bool   `json:"selected"`
}

// ListingResponse represents the response from /api/v1/coins and the listing page
// @Description Filtered and sorted market listing
type ListingResponse struct {
	Coins       []CoinRow    `json:"coins" validate:"required"` // Rows after search and sort
	Count       int          `json:"count" example:"2"`         // Rows shown
	Total       int          `json:"total" example:"100"`       // Rows loaded from the upstream
	Query       string       `json:"query" example:"bit"`       // Active search query
	Sort        string       `json:"sort" example:"rank" enums:"rank,name,price_asc,price_desc,market_cap,change"`
	Loading     bool         `json:"loading"`                   // True before the first load completed
	Error       string       `json:"error,omitempty" example:"Failed to load crypto data. Please try again later."`
	SortOptions []SortOption `json:"-"`
}

// CoinDetailData holds the formatted metadata of a single asset
// @Description Formatted detail of a single asset
type CoinDetailData struct {
	ID                string      `json:"id" example:"bitcoin"`
	Name              string      `json:"name" example:"Bitcoin"`
	Symbol            string      `json:"symbol" example:"BTC"`
	ImageURL          string      `json:"image,omitempty"`
	Rank              int         `json:"market_cap_rank" example:"1"`
	CurrentPrice      string      `json:"current_price" example:"€60,000.50"`
	High24h           string      `json:"high_24h" example:"€61,000.00"`
	Low24h            string      `json:"low_24h" example:"€59,000.00"`
	MarketCap         string      `json:"market_cap" example:"€1.20T"`
	TotalVolume       string      `json:"total_volume" example:"€35.00B"`
	CirculatingSupply string      `json:"circulating_supply" example:"19,500,000"`
	TotalSupply       string      `json:"total_supply" example:"N/A"` // N/A when the asset has no cap
	Change            ChangeBadge `json:"change"`
}

// DetailResponse represents the response from /api/v1/coins/{id} and the detail page
// @Description Coin metadata plus the 7-day chart series
type DetailResponse struct {
	ID             string                `json:"id" example:"bitcoin"`
	Coin           *CoinDetailData       `json:"coin,omitempty"`                             // Absent when the coin could not be loaded
	Chart          []entities.ChartPoint `json:"chart"`                                      // Empty when the chart failed
	ChartAvailable bool                  `json:"chart_available"`                            // False when the chart failed or is empty
	ChartDays      int                   `json:"chart_days" example:"7"`                     // Chart window
	NotFound       bool                  `json:"not_found"`                                  // True when the upstream answered 404
	Message        string                `json:"message,omitempty" example:"Coin not found"` // Empty-state message
}

// ErrorResponse represents a standard error response for endpoints
// @Description Standard error response for endpoints
type ErrorResponse struct {
	Error   string `json:"error" example:"UPSTREAM_UNAVAILABLE" validate:"required"`                        // Main error message
	Message string `json:"message,omitempty" example:"Failed to load crypto data. Please try again later."` // Detailed error description
	Code    string `json:"code,omitempty" example:"502"`                                                    // HTTP error code or internal code
}

// HealthResponse represents the health check response with service status
// @Description Health check response with service status
type HealthResponse struct {
	Status    string            `json:"status" example:"healthy" validate:"required" enums:"healthy,unhealthy"` // Overall service status
	Timestamp time.Time         `json:"timestamp" example:"2023-12-01T10:30:00Z" validate:"required"`           // When the health check was performed
	Services  map[string]string `json:"services,omitempty" example:"coingecko:healthy"`                         // Individual service statuses
}

// NewErrorResponseWithCode creates an error response with code
func NewErrorResponseWithCode(error string, message string, code string) *ErrorResponse {
	return &ErrorResponse{
		Error:   error,
		Message: message,
		Code:    code,
	}
}

// NewHealthResponse creates a health check response
func NewHealthResponse(status string, services map[string]string) *HealthResponse {
	return &HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Services:  services,
	}
}

package entities

import "time"

// PricePoint is a single sample of the historical market chart.
type PricePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price"`
}

// NewPricePoint builds a point from the raw [timestampMs, price] pair of the API.
func NewPricePoint(timestampMs int64, price float64) PricePoint {
	return PricePoint{
		Timestamp: time.UnixMilli(timestampMs).UTC(),
		Price:     price,
	}
}

// ChartPoint is a chart-ready sample: a short date label and a price rounded for display.
type ChartPoint struct {
	Label string `json:"label"`
	Price string `json:"price"`
}

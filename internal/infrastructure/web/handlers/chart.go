package handlers

import (
	"crypto-tracker/internal/domain/entities"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	chartWidth   = 800
	chartHeight  = 300
	chartPadding = 20
)

// chartSVG son las coordenadas ya calculadas de la polilínea del gráfico
type chartSVG struct {
	Width      int
	Height     int
	BottomY    int
	Points     string
	Min        string
	Max        string
	FirstLabel string
	LastLabel  string
}

// newChartSVG escala la serie al área del SVG. Devuelve nil si no hay nada que dibujar.
func newChartSVG(series []entities.ChartPoint) *chartSVG {
	if len(series) == 0 {
		return nil
	}

	prices := make([]decimal.Decimal, 0, len(series))
	for _, p := range series {
		d, err := decimal.NewFromString(p.Price)
		if err != nil {
			return nil
		}
		prices = append(prices, d)
	}

	lo, hi := decimal.Min(prices[0], prices[1:]...), decimal.Max(prices[0], prices[1:]...)
	span := hi.Sub(lo)

	plotW := float64(chartWidth)
	plotH := float64(chartHeight - 2*chartPadding)

	var b strings.Builder
	for i, price := range prices {
		x := 0.0
		if len(prices) > 1 {
			x = plotW * float64(i) / float64(len(prices)-1)
		}
		// serie plana: línea horizontal en el centro
		y := float64(chartPadding) + plotH/2
		if !span.IsZero() {
			ratio := price.Sub(lo).Div(span).InexactFloat64()
			y = float64(chartPadding) + plotH*(1-ratio)
		}

		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(x, 'f', 1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(y, 'f', 1, 64))
	}

	return &chartSVG{
		Width:      chartWidth,
		Height:     chartHeight,
		BottomY:    chartHeight - chartPadding,
		Points:     b.String(),
		Min:        lo.StringFixed(2),
		Max:        hi.StringFixed(2),
		FirstLabel: series[0].Label,
		LastLabel:  series[len(series)-1].Label,
	}
}

// Package format convierte valores numéricos de mercado en cadenas de presentación.
// Todas las funciones son puras y seguras para uso concurrente.
package format

import (
	"math"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// Placeholder renders a missing or non-numeric magnitude.
	Placeholder = "—"
	// NotAvailable renders a missing supply figure.
	NotAvailable = "N/A"

	currencySymbol  = "€"
	shortDateLayout = "Jan 2"

	// below this a price is printed as a raw 8-decimal number
	smallPriceThreshold = 0.01
	localeMaxFraction   = 3
)

var magnitudes = []struct {
	threshold float64
	divisor   decimal.Decimal
	suffix    string
}{
	{1e12, decimal.New(1, 12), "T"},
	{1e9, decimal.New(1, 9), "B"},
	{1e6, decimal.New(1, 6), "M"},
	{1e3, decimal.New(1, 3), "K"},
}

// FormatPrice formatea un precio en EUR.
// Precios menores que 0.01 (incluidos los negativos) se devuelven con 8 decimales y sin símbolo;
// el resto como moneda en-US con separador de miles y exactamente 2 decimales.
func FormatPrice(price float64) string {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return Placeholder
	}

	if price < smallPriceThreshold {
		return strconv.FormatFloat(price, 'f', 8, 64)
	}

	rounded := decimal.NewFromFloat(price).Round(2).InexactFloat64()
	return currencySymbol + grouped(rounded, number.MinFractionDigits(2), number.MaxFractionDigits(2))
}

// FormatMarketCap abrevia una magnitud con sufijo T/B/M/K y 2 decimales.
// Valores por debajo de mil se agrupan como en en-US con hasta 3 decimales.
func FormatMarketCap(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Placeholder
	}

	for _, m := range magnitudes {
		if value >= m.threshold {
			return decimal.NewFromFloat(value).Div(m.divisor).StringFixed(2) + m.suffix
		}
	}

	return grouped(value, number.MaxFractionDigits(localeMaxFraction))
}

// FormatOptionalMarketCap is FormatMarketCap for values the upstream may omit.
func FormatOptionalMarketCap(value *float64) string {
	if value == nil {
		return Placeholder
	}
	return FormatMarketCap(*value)
}

// FormatSupply groups a supply figure, or returns "N/A" when it is absent.
func FormatSupply(supply *float64) string {
	if supply == nil || math.IsNaN(*supply) {
		return NotAvailable
	}
	return grouped(*supply, number.MaxFractionDigits(localeMaxFraction))
}

// FormatChartPrice rounds a chart price to 2 decimals.
func FormatChartPrice(price float64) string {
	return decimal.NewFromFloat(price).StringFixed(2)
}

// Change is the display form of a 24h percentage change.
type Change struct {
	Positive bool
	Arrow    string
	Percent  string
}

// String renders the badge text, e.g. "↑ 2.35%".
func (c Change) String() string {
	return c.Arrow + " " + c.Percent
}

// FormatChange builds the change badge. Zero counts as positive.
func FormatChange(pct float64) Change {
	if math.IsNaN(pct) {
		pct = 0
	}

	positive := pct >= 0
	arrow := "↓"
	if positive {
		arrow = "↑"
	}

	return Change{
		Positive: positive,
		Arrow:    arrow,
		Percent:  decimal.NewFromFloat(math.Abs(pct)).StringFixed(2) + "%",
	}
}

// ShortDateLabel formats a timestamp as "Jan 2" in the given location (UTC when nil).
func ShortDateLabel(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(shortDateLayout)
}

func grouped(value float64, opts ...number.Option) string {
	p := message.NewPrinter(language.AmericanEnglish)
	return p.Sprint(number.Decimal(value, opts...))
}

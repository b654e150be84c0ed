package dto

import (
	"crypto-tracker/internal/application/format"
	"crypto-tracker/internal/application/services"
	"crypto-tracker/internal/domain/entities"
	"net/url"
	"strings"
)

const notFoundMessage = "Coin not found"

// genericFailureMessage se muestra cuando el fallo no es un 404
const genericFailureMessage = "Failed to load coin data. Please try again later."

var sortLabels = map[services.SortKey]string{
	services.SortByRank:      "Rank",
	services.SortByName:      "Name",
	services.SortByPriceAsc:  "Price (Low to High)",
	services.SortByPriceDesc: "Price (High to Low)",
	services.SortByMarketCap: "Market Cap",
	services.SortByChange:    "24h Change",
}

// ViewMapper maneja la conversión entre el estado de los view models y los DTOs
type ViewMapper struct{}

// NewViewMapper crea una nueva instancia del mapper
func NewViewMapper() *ViewMapper {
	return &ViewMapper{}
}

// ToListingResponse convierte el snapshot del listado a DTO de respuesta
func (m *ViewMapper) ToListingResponse(snap services.ListingSnapshot) *ListingResponse {
	rows := make([]CoinRow, len(snap.Coins))
	for i, coin := range snap.Coins {
		rows[i] = m.toCoinRow(coin)
	}

	return &ListingResponse{
		Coins:       rows,
		Count:       len(rows),
		Total:       snap.Total,
		Query:       snap.Query,
		Sort:        string(snap.SortKey),
		Loading:     snap.Loading,
		Error:       snap.LoadError,
		SortOptions: m.sortOptions(snap.SortKey),
	}
}

func (m *ViewMapper) toCoinRow(coin entities.CoinSummary) CoinRow {
	return CoinRow{
		ID:                       coin.ID,
		Name:                     coin.Name,
		Symbol:                   strings.ToUpper(coin.Symbol),
		ImageURL:                 coin.ImageURL,
		Rank:                     coin.MarketCapRank,
		CurrentPrice:             coin.CurrentPrice,
		MarketCap:                coin.MarketCap,
		PriceChangePercentage24h: coin.PriceChangePercentage24h,
		PriceDisplay:             format.FormatPrice(coin.CurrentPrice),
		MarketCapDisplay:         format.FormatMarketCap(coin.MarketCap),
		Change:                   toChangeBadge(coin.PriceChangePercentage24h),
		DetailURL:                DetailURL(coin.ID),
	}
}

func (m *ViewMapper) sortOptions(selected services.SortKey) []SortOption {
	keys := services.SortKeys()
	options := make([]SortOption, len(keys))
	for i, key := range keys {
		options[i] = SortOption{
			Value:    string(key),
			Label:    sortLabels[key],
			Selected: key == selected,
		}
	}
	return options
}

// ToDetailResponse convierte el snapshot del detalle a DTO de respuesta.
// Un fallo del gráfico deja Chart vacío pero nunca oculta los datos del activo.
func (m *ViewMapper) ToDetailResponse(snap services.DetailSnapshot, chartDays int) *DetailResponse {
	resp := &DetailResponse{
		ID:             snap.ID,
		Chart:          []entities.ChartPoint{},
		ChartAvailable: snap.ChartAvailable(),
		ChartDays:      chartDays,
		NotFound:       snap.NotFound(),
	}

	if snap.ChartAvailable() {
		resp.Chart = snap.Chart
	}

	switch {
	case snap.Coin != nil:
		resp.Coin = m.toCoinDetailData(snap.Coin)
	case snap.NotFound():
		resp.Message = notFoundMessage
	case snap.IsEmpty():
		resp.Message = genericFailureMessage
	}

	return resp
}

func (m *ViewMapper) toCoinDetailData(coin *entities.CoinDetail) *CoinDetailData {
	return &CoinDetailData{
		ID:                coin.ID,
		Name:              coin.Name,
		Symbol:            strings.ToUpper(coin.Symbol),
		ImageURL:          coin.ImageURL,
		Rank:              coin.MarketCapRank,
		CurrentPrice:      format.FormatPrice(coin.CurrentPrice),
		High24h:           format.FormatPrice(coin.High24h),
		Low24h:            format.FormatPrice(coin.Low24h),
		MarketCap:         euroMagnitude(coin.MarketCap),
		TotalVolume:       euroMagnitude(coin.TotalVolume),
		CirculatingSupply: format.FormatSupply(coin.CirculatingSupply),
		TotalSupply:       format.FormatSupply(coin.TotalSupply),
		Change:            toChangeBadge(coin.PriceChangePercentage24h),
	}
}

func toChangeBadge(pct float64) ChangeBadge {
	change := format.FormatChange(pct)
	return ChangeBadge{
		Positive: change.Positive,
		Arrow:    change.Arrow,
		Percent:  change.Percent,
	}
}

func euroMagnitude(v float64) string {
	s := format.FormatMarketCap(v)
	if s == format.Placeholder {
		return s
	}
	return "€" + s
}

// DetailURL builds the page link for a coin id.
func DetailURL(id string) string {
	return "/coin/" + url.PathEscape(id)
}

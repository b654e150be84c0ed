package handlers

import (
	"crypto-tracker/internal/application/dto"
	"crypto-tracker/internal/application/services"
	"crypto-tracker/internal/domain/interfaces"
	"crypto-tracker/internal/infrastructure/logging"
	"net/http"

	"github.com/gorilla/mux"
)

// APIHandler expone las vistas de listado y detalle como JSON
type APIHandler struct {
	client interfaces.MarketDataClient
	mapper *dto.ViewMapper
	config ViewConfig
}

// NewAPIHandler creates a new instance of the API handler
func NewAPIHandler(client interfaces.MarketDataClient, config ViewConfig) *APIHandler {
	return &APIHandler{
		client: client,
		mapper: dto.NewViewMapper(),
		config: config,
	}
}

// ListCoins godoc
// @Summary Market listing
// @Description Returns the top 100 assets by market cap in EUR, filtered by a case-insensitive search on name or symbol and sorted by the given key.
// @Tags coins
// @Produce json
// @Param q query string false "Search on name or symbol" example(btc)
// @Param sort query string false "Sort key" Enums(rank, name, price_asc, price_desc, market_cap, change) default(rank)
// @Success 200 {object} dto.ListingResponse "Filtered and sorted listing"
// @Failure 502 {object} dto.ErrorResponse "Market data provider unavailable"
// @Router /api/v1/coins [get]
func (h *APIHandler) ListCoins(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	request := dto.NewListingRequest(r.URL.Query().Get("q"), r.URL.Query().Get("sort"))

	vm := services.NewListingViewModel(h.client)
	vm.SetQuery(request.Query)
	vm.SetSortKey(request.Sort)
	vm.Load(ctx)

	snap := vm.Snapshot()
	if snap.LoadError != "" {
		writeErrorResponse(ctx, w, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", snap.LoadError)
		return
	}

	logging.Debug(ctx, "Listing served", logging.Fields{
		"query": request.Query,
		"sort":  request.Sort,
		"count": len(snap.Coins),
	})

	writeJSONResponse(ctx, w, http.StatusOK, h.mapper.ToListingResponse(snap))
}

// GetCoin godoc
// @Summary Coin detail
// @Description Returns the metadata of one asset plus its price chart. A chart failure still returns the coin with chart_available=false.
// @Tags coins
// @Produce json
// @Param id path string true "CoinGecko coin id" example(bitcoin)
// @Success 200 {object} dto.DetailResponse "Coin detail"
// @Failure 400 {object} dto.ErrorResponse "Invalid coin id"
// @Failure 404 {object} dto.DetailResponse "Coin not found"
// @Failure 502 {object} dto.ErrorResponse "Market data provider unavailable"
// @Router /api/v1/coins/{id} [get]
func (h *APIHandler) GetCoin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	request, err := dto.NewDetailRequest(mux.Vars(r)["id"])
	if err != nil {
		writeErrorResponse(ctx, w, http.StatusBadRequest, "INVALID_PARAMETER", err.Error())
		return
	}

	vm := services.NewDetailViewModel(h.client,
		services.WithLocation(h.config.location()),
		services.WithChartDays(h.config.chartDays()),
	)
	defer vm.Close()

	snap := vm.Load(ctx, request.ID)
	response := h.mapper.ToDetailResponse(snap, h.config.chartDays())

	switch {
	case snap.NotFound():
		writeJSONResponse(ctx, w, http.StatusNotFound, response)
	case snap.Coin == nil:
		writeErrorResponse(ctx, w, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", response.Message)
	default:
		writeJSONResponse(ctx, w, http.StatusOK, response)
	}
}

package services

import (
	"cmp"
	"context"
	"crypto-tracker/internal/domain/entities"
	"crypto-tracker/internal/domain/interfaces"
	"crypto-tracker/internal/infrastructure/logging"
	"crypto-tracker/internal/infrastructure/metrics"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	ListingView = "listing"

	// LoadErrorMessage es el texto que ve el usuario cuando falla la carga del listado
	LoadErrorMessage = "Failed to load crypto data. Please try again later."
)

// SortKey selecciona el orden del listado
type SortKey string

const (
	SortByRank      SortKey = "rank"
	SortByName      SortKey = "name"
	SortByPriceAsc  SortKey = "price_asc"
	SortByPriceDesc SortKey = "price_desc"
	SortByMarketCap SortKey = "market_cap"
	SortByChange    SortKey = "change"
)

// SortKeys lists every key in the order the UI offers them.
func SortKeys() []SortKey {
	return []SortKey{SortByRank, SortByName, SortByPriceAsc, SortByPriceDesc, SortByMarketCap, SortByChange}
}

// ParseSortKey accepts the canonical keys plus the legacy aliases
// "market_cap_rank" and "price". Anything else falls back to rank.
func ParseSortKey(s string) SortKey {
	switch key := SortKey(strings.ToLower(strings.TrimSpace(s))); key {
	case SortByName, SortByPriceAsc, SortByPriceDesc, SortByMarketCap, SortByChange:
		return key
	case "price":
		return SortByPriceAsc
	default:
		return SortByRank
	}
}

// DeriveView filtra y ordena una copia de raw; raw nunca se modifica.
// El filtro es una búsqueda de subcadena sin distinguir mayúsculas sobre nombre o símbolo,
// y el orden es estable, así que empates conservan el orden de la API.
func DeriveView(raw []entities.CoinSummary, query string, sortKey SortKey) []entities.CoinSummary {
	q := strings.ToLower(query)

	view := make([]entities.CoinSummary, 0, len(raw))
	for _, coin := range raw {
		if q == "" || strings.Contains(strings.ToLower(coin.Name), q) || strings.Contains(strings.ToLower(coin.Symbol), q) {
			view = append(view, coin)
		}
	}

	slices.SortStableFunc(view, comparator(sortKey))
	return view
}

func comparator(sortKey SortKey) func(a, b entities.CoinSummary) int {
	switch sortKey {
	case SortByName:
		// collate da el mismo orden que una comparación de locale en inglés
		col := collate.New(language.English)
		return func(a, b entities.CoinSummary) int {
			return col.CompareString(a.Name, b.Name)
		}
	case SortByPriceAsc:
		return func(a, b entities.CoinSummary) int { return cmp.Compare(a.CurrentPrice, b.CurrentPrice) }
	case SortByPriceDesc:
		return func(a, b entities.CoinSummary) int { return cmp.Compare(b.CurrentPrice, a.CurrentPrice) }
	case SortByMarketCap:
		return func(a, b entities.CoinSummary) int { return cmp.Compare(a.MarketCap, b.MarketCap) }
	case SortByChange:
		return func(a, b entities.CoinSummary) int {
			return cmp.Compare(a.PriceChangePercentage24h, b.PriceChangePercentage24h)
		}
	default:
		return func(a, b entities.CoinSummary) int { return cmp.Compare(a.MarketCapRank, b.MarketCapRank) }
	}
}

// ListingSnapshot is a consistent copy of the listing state.
type ListingSnapshot struct {
	Coins     []entities.CoinSummary
	Total     int
	Query     string
	SortKey   SortKey
	Loading   bool
	LoadError string
}

// ListingViewModel mantiene la lista cruda, la búsqueda y el orden de la vista de listado.
// Hace una única petición por montaje; es seguro para uso concurrente.
type ListingViewModel struct {
	client interfaces.MarketDataClient
	logger logging.ViewLogger
	once   sync.Once

	mu        sync.Mutex
	raw       []entities.CoinSummary
	query     string
	sortKey   SortKey
	loading   bool
	loadError string
}

// NewListingViewModel crea el view model en estado de carga
func NewListingViewModel(client interfaces.MarketDataClient) *ListingViewModel {
	return &ListingViewModel{
		client:  client,
		logger:  logging.View(),
		sortKey: SortByRank,
		loading: true,
	}
}

// Load trae el listado. Solo la primera llamada hace la petición; las demás no hacen nada.
func (vm *ListingViewModel) Load(ctx context.Context) {
	vm.once.Do(func() {
		vm.fetch(ctx)
	})
}

func (vm *ListingViewModel) fetch(ctx context.Context) {
	start := time.Now()
	vm.logger.LoadStarted(ctx, ListingView, "")

	coins, err := vm.client.ListMarkets(ctx)

	vm.mu.Lock()
	vm.loading = false
	if err != nil {
		vm.raw = nil
		vm.loadError = LoadErrorMessage
	} else {
		vm.raw = coins
		vm.loadError = ""
	}
	vm.mu.Unlock()

	if err != nil {
		metrics.RecordViewLoad(ListingView, "markets", "error")
		vm.logger.LoadFailed(ctx, ListingView, "", err)
		return
	}

	metrics.RecordViewLoad(ListingView, "markets", "success")
	metrics.UpdateListingSize(len(coins))
	vm.logger.LoadCompleted(ctx, ListingView, "", len(coins), float64(time.Since(start).Nanoseconds())/1e6)
}

func (vm *ListingViewModel) SetQuery(query string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.query = query
}

func (vm *ListingViewModel) SetSortKey(key SortKey) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.sortKey = key
}

// View devuelve la lista derivada para la búsqueda y el orden actuales
func (vm *ListingViewModel) View() []entities.CoinSummary {
	vm.mu.Lock()
	raw, query, key := vm.raw, vm.query, vm.sortKey
	vm.mu.Unlock()

	return DeriveView(raw, query, key)
}

func (vm *ListingViewModel) Snapshot() ListingSnapshot {
	vm.mu.Lock()
	snap := ListingSnapshot{
		Total:     len(vm.raw),
		Query:     vm.query,
		SortKey:   vm.sortKey,
		Loading:   vm.loading,
		LoadError: vm.loadError,
	}
	raw := vm.raw
	vm.mu.Unlock()

	snap.Coins = DeriveView(raw, snap.Query, snap.SortKey)
	return snap
}

package services

import (
	"context"
	"crypto-tracker/internal/application/format"
	"crypto-tracker/internal/domain/entities"
	"crypto-tracker/internal/domain/interfaces"
	"crypto-tracker/internal/infrastructure/logging"
	"crypto-tracker/internal/infrastructure/metrics"
	"errors"
	"slices"
	"sync"
	"time"
)

const (
	DetailView = "detail"

	resourceCoin  = "coin"
	resourceChart = "chart"
)

// DetailSnapshot es una copia consistente del estado de la vista de detalle
type DetailSnapshot struct {
	ID           string
	Generation   uint64
	Coin         *entities.CoinDetail
	Chart        []entities.ChartPoint
	CoinLoading  bool
	ChartLoading bool
	CoinErr      error
	ChartErr     error
}

// IsLoading is true until both fetches of the current load have completed.
func (s DetailSnapshot) IsLoading() bool {
	return s.CoinLoading || s.ChartLoading
}

// IsEmpty means loading finished without coin metadata.
func (s DetailSnapshot) IsEmpty() bool {
	return !s.IsLoading() && s.Coin == nil
}

// NotFound distingue un 404 del upstream de un fallo transitorio
func (s DetailSnapshot) NotFound() bool {
	return s.IsEmpty() && errors.Is(s.CoinErr, interfaces.ErrNotFound)
}

// ChartAvailable is false when the chart fetch failed or returned no points.
func (s DetailSnapshot) ChartAvailable() bool {
	return s.ChartErr == nil && len(s.Chart) > 0
}

// DetailOption configura un DetailViewModel
type DetailOption func(*DetailViewModel)

// WithLocation sets the timezone used for chart labels.
func WithLocation(loc *time.Location) DetailOption {
	return func(vm *DetailViewModel) {
		if loc != nil {
			vm.loc = loc
		}
	}
}

// WithChartDays sets the chart window; non-positive values keep the default.
func WithChartDays(days int) DetailOption {
	return func(vm *DetailViewModel) {
		if days > 0 {
			vm.chartDays = days
		}
	}
}

// DetailViewModel carga metadatos e histórico de un activo con dos peticiones independientes.
// Cada carga recibe una generación; una respuesta de una generación anterior se descarta.
type DetailViewModel struct {
	client    interfaces.MarketDataClient
	logger    logging.ViewLogger
	loc       *time.Location
	chartDays int

	mu           sync.Mutex
	id           string
	generation   uint64
	cancel       context.CancelFunc
	coin         *entities.CoinDetail
	chart        []entities.ChartPoint
	coinLoading  bool
	chartLoading bool
	coinErr      error
	chartErr     error
}

// NewDetailViewModel crea el view model; no hace ninguna petición hasta Start
func NewDetailViewModel(client interfaces.MarketDataClient, opts ...DetailOption) *DetailViewModel {
	vm := &DetailViewModel{
		client:    client,
		logger:    logging.View(),
		loc:       time.UTC,
		chartDays: interfaces.DefaultChartDays,
	}
	for _, opt := range opts {
		opt(vm)
	}
	return vm
}

// Start cancela la carga en curso, avanza la generación y lanza las dos peticiones.
// El canal devuelto se cierra cuando ambas han terminado, se apliquen o no.
func (vm *DetailViewModel) Start(ctx context.Context, id string) <-chan struct{} {
	loadCtx, cancel := context.WithCancel(ctx)

	vm.mu.Lock()
	if vm.cancel != nil {
		vm.cancel()
	}
	vm.generation++
	gen := vm.generation
	vm.cancel = cancel
	vm.id = id
	vm.coin, vm.chart = nil, nil
	vm.coinErr, vm.chartErr = nil, nil
	vm.coinLoading, vm.chartLoading = true, true
	vm.mu.Unlock()

	vm.logger.LoadStarted(ctx, DetailView, id)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		vm.loadCoin(loadCtx, gen, id)
	}()
	go func() {
		defer wg.Done()
		vm.loadChart(loadCtx, gen, id)
	}()
	go func() {
		wg.Wait()
		cancel()
		close(done)
	}()

	return done
}

// Load es Start más la espera; devuelve el estado al terminar o al cancelarse ctx
func (vm *DetailViewModel) Load(ctx context.Context, id string) DetailSnapshot {
	done := vm.Start(ctx, id)
	select {
	case <-done:
	case <-ctx.Done():
	}
	return vm.Snapshot()
}

// Close cancels any in-flight load.
func (vm *DetailViewModel) Close() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.cancel != nil {
		vm.cancel()
		vm.cancel = nil
	}
}

func (vm *DetailViewModel) loadCoin(ctx context.Context, gen uint64, id string) {
	start := time.Now()
	coin, err := vm.client.GetCoin(ctx, id)

	vm.mu.Lock()
	current := gen == vm.generation
	if current {
		vm.coinLoading = false
		vm.coin = coin
		vm.coinErr = err
		if err != nil {
			vm.coin = nil
		}
	}
	vm.mu.Unlock()

	if !current {
		vm.discard(ctx, resourceCoin, id, gen)
		return
	}
	vm.record(ctx, resourceCoin, id, err, 1, start)
}

func (vm *DetailViewModel) loadChart(ctx context.Context, gen uint64, id string) {
	start := time.Now()
	points, err := vm.client.GetChart(ctx, id, vm.chartDays)

	var series []entities.ChartPoint
	if err == nil {
		series = make([]entities.ChartPoint, 0, len(points))
		for _, p := range points {
			series = append(series, entities.ChartPoint{
				Label: format.ShortDateLabel(p.Timestamp, vm.loc),
				Price: format.FormatChartPrice(p.Price),
			})
		}
	}

	vm.mu.Lock()
	current := gen == vm.generation
	if current {
		vm.chartLoading = false
		vm.chart = series
		vm.chartErr = err
	}
	vm.mu.Unlock()

	if !current {
		vm.discard(ctx, resourceChart, id, gen)
		return
	}
	vm.record(ctx, resourceChart, id, err, len(series), start)
}

func (vm *DetailViewModel) discard(ctx context.Context, resource, id string, gen uint64) {
	metrics.RecordStaleResponse(resource)
	vm.logger.StaleResponseDiscarded(ctx, resource, id, gen)
}

// record: los fallos se registran como warning y nunca son fatales
func (vm *DetailViewModel) record(ctx context.Context, resource, id string, err error, items int, start time.Time) {
	switch {
	case err == nil:
		metrics.RecordViewLoad(DetailView, resource, "success")
		vm.logger.LoadCompleted(ctx, DetailView, id, items, float64(time.Since(start).Nanoseconds())/1e6)
	case errors.Is(err, interfaces.ErrNotFound):
		metrics.RecordViewLoad(DetailView, resource, "not_found")
		vm.logger.LoadFailed(ctx, DetailView, id, err)
	default:
		metrics.RecordViewLoad(DetailView, resource, "error")
		vm.logger.LoadFailed(ctx, DetailView, id, err)
	}
}

// Snapshot devuelve una copia del estado actual
func (vm *DetailViewModel) Snapshot() DetailSnapshot {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	snap := DetailSnapshot{
		ID:           vm.id,
		Generation:   vm.generation,
		CoinLoading:  vm.coinLoading,
		ChartLoading: vm.chartLoading,
		CoinErr:      vm.coinErr,
		ChartErr:     vm.chartErr,
	}
	if vm.coin != nil {
		coin := *vm.coin
		snap.Coin = &coin
	}
	if vm.chart != nil {
		snap.Chart = slices.Clone(vm.chart)
	}
	return snap
}

package coingecko

import (
	"context"
	"crypto-tracker/internal/domain/entities"
	"crypto-tracker/internal/domain/interfaces"
	"crypto-tracker/internal/infrastructure/config"
	"crypto-tracker/internal/infrastructure/logging"
	"crypto-tracker/internal/infrastructure/metrics"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
)

const (
	ServiceName    = "coingecko"
	DefaultBaseURL = "https://api.coingecko.com/api/v3"
	DefaultTimeout = 15 * time.Second
	RequestTimeout = 10 * time.Second // Context timeout per request
	BaseBackoff    = 200 * time.Millisecond
	MaxBackoff     = 2 * time.Second

	apiKeyHeader = "x-cg-demo-api-key"
	marketsLimit = 100

	endpointMarkets = "/coins/markets"
	endpointCoin    = "/coins/{id}"
	endpointChart   = "/coins/{id}/market_chart"
)

// Client implementa interfaces.MarketDataClient contra la API REST de CoinGecko
type Client struct {
	baseURL        string
	apiKey         string
	userAgent      string
	httpClient     *http.Client
	requestTimeout time.Duration
	maxAttempts    uint
	logger         logging.ExternalAPILogger
}

var _ interfaces.MarketDataClient = (*Client)(nil)

// NewClient crea un cliente con los valores por defecto: una única petición por llamada
func NewClient() *Client {
	return &Client{
		baseURL:        DefaultBaseURL,
		userAgent:      "crypto-tracker/1.0",
		httpClient:     &http.Client{Timeout: DefaultTimeout},
		requestTimeout: RequestTimeout,
		maxAttempts:    1,
		logger:         logging.ExternalAPI(),
	}
}

// NewClientWithConfig crea un cliente a partir de la configuración cargada
func NewClientWithConfig(cfg config.CoinGeckoConfig) *Client {
	c := NewClient()
	if cfg.BaseURL != "" {
		c.baseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	if cfg.UserAgent != "" {
		c.userAgent = cfg.UserAgent
	}
	if cfg.Timeout > 0 {
		c.httpClient.Timeout = cfg.Timeout
	}
	if cfg.RequestTimeout > 0 {
		c.requestTimeout = cfg.RequestTimeout
	}
	if cfg.MaxAttempts > 0 {
		c.maxAttempts = uint(cfg.MaxAttempts)
	}
	c.apiKey = cfg.APIKey
	return c
}

// ListMarkets obtiene los 100 activos con mayor capitalización, en EUR
func (c *Client) ListMarkets(ctx context.Context) ([]entities.CoinSummary, error) {
	query := url.Values{}
	query.Set("vs_currency", eur)
	query.Set("order", "market_cap_desc")
	query.Set("per_page", strconv.Itoa(marketsLimit))
	query.Set("page", "1")
	query.Set("sparkline", "false")

	var resp []MarketCoin
	if err := c.get(ctx, endpointMarkets, "/coins/markets", query, &resp); err != nil {
		return nil, fmt.Errorf("failed to list markets: %w", err)
	}

	coins := make([]entities.CoinSummary, 0, len(resp))
	for _, m := range resp {
		coins = append(coins, m.ToEntity())
	}
	return coins, nil
}

// GetCoin obtiene los metadatos y datos de mercado de un activo
func (c *Client) GetCoin(ctx context.Context, id string) (*entities.CoinDetail, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("localization", "false")
	query.Set("tickers", "false")
	query.Set("market_data", "true")
	query.Set("community_data", "false")
	query.Set("developer_data", "false")
	query.Set("sparkline", "false")

	var resp CoinResponse
	if err := c.get(ctx, endpointCoin, "/coins/"+url.PathEscape(id), query, &resp); err != nil {
		return nil, fmt.Errorf("failed to get coin %s: %w", id, err)
	}

	coin, err := resp.ToEntity()
	if err != nil {
		return nil, fmt.Errorf("failed to get coin %s: %w", id, newParseError(endpointCoin, http.StatusOK, err))
	}
	return coin, nil
}

// GetChart obtiene el histórico de precios; days <= 0 usa la ventana por defecto
func (c *Client) GetChart(ctx context.Context, id string, days int) ([]entities.PricePoint, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if days <= 0 {
		days = interfaces.DefaultChartDays
	}

	query := url.Values{}
	query.Set("vs_currency", eur)
	query.Set("days", strconv.Itoa(days))

	var resp ChartResponse
	if err := c.get(ctx, endpointChart, "/coins/"+url.PathEscape(id)+"/market_chart", query, &resp); err != nil {
		return nil, fmt.Errorf("failed to get chart for %s: %w", id, err)
	}

	points, err := resp.ToEntities()
	if err != nil {
		return nil, fmt.Errorf("failed to get chart for %s: %w", id, newParseError(endpointChart, http.StatusOK, err))
	}
	return points, nil
}

// get ejecuta la petición con retry-go. Con maxAttempts = 1 hace exactamente un GET.
func (c *Client) get(ctx context.Context, endpoint, path string, query url.Values, out interface{}) error {
	err := retry.Do(
		func() error {
			reqCtx, cancel := context.WithTimeout(ctx, c.requestTimeout)
			defer cancel()

			return c.doRequest(reqCtx, endpoint, path, query, out)
		},
		retry.Attempts(c.maxAttempts),
		retry.Delay(BaseBackoff),
		retry.MaxDelay(MaxBackoff),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(isRetryableError),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			metrics.RecordExternalAPIRetry(ServiceName, endpoint, int(n+1))

			logging.Warn(ctx, "CoinGecko API retry attempt", logging.Fields{
				"service":      ServiceName,
				"endpoint":     endpoint,
				"attempt":      n + 1,
				"max_attempts": c.maxAttempts,
				"error":        err.Error(),
			})
		}),
	)
	if err == nil {
		return nil
	}

	// retry-go devuelve el error del contexto si se cancela entre intentos
	var fe *FetchError
	if !errors.As(err, &fe) {
		return newTransportError(endpoint, err)
	}
	return err
}

// doRequest performs a single HTTP GET and decodes the JSON body into out
func (c *Client) doRequest(ctx context.Context, endpoint, path string, query url.Values, out interface{}) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return newTransportError(endpoint, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	c.logger.RequestStarted(ctx, ServiceName, endpoint, http.MethodGet)

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	requestDuration := time.Since(requestStart)
	durationMs := float64(requestDuration.Nanoseconds()) / 1e6

	if err != nil {
		metrics.RecordExternalAPICall(ServiceName, endpoint, 0, requestDuration.Seconds())
		c.logger.RequestFailed(ctx, ServiceName, endpoint, 0, err, durationMs)
		return newTransportError(endpoint, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	metrics.RecordExternalAPICall(ServiceName, endpoint, resp.StatusCode, requestDuration.Seconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := newStatusError(endpoint, resp.StatusCode)
		c.logger.RequestFailed(ctx, ServiceName, endpoint, resp.StatusCode, statusErr, durationMs)
		return statusErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		parseErr := newParseError(endpoint, resp.StatusCode, err)
		c.logger.RequestFailed(ctx, ServiceName, endpoint, resp.StatusCode, parseErr, durationMs)
		return parseErr
	}

	c.logger.RequestCompleted(ctx, ServiceName, endpoint, resp.StatusCode, durationMs)
	return nil
}

// validateID rechaza ids vacíos o con "/" antes de hacer cualquier petición
func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: empty id", interfaces.ErrInvalidID)
	}
	if strings.Contains(id, "/") {
		return fmt.Errorf("%w: %q contains '/'", interfaces.ErrInvalidID, id)
	}
	return nil
}

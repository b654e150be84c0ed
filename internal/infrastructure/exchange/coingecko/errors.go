package coingecko

import (
	"crypto-tracker/internal/domain/interfaces"
	"errors"
	"fmt"
	"net/http"
)

// FetchError describe un fallo contra un endpoint concreto de CoinGecko.
// StatusCode es 0 cuando la petición no llegó a obtener respuesta.
type FetchError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("coingecko %s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("coingecko %s: HTTP %d: %v", e.Endpoint, e.StatusCode, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func newStatusError(endpoint string, statusCode int) *FetchError {
	var err error
	if statusCode == http.StatusNotFound {
		err = fmt.Errorf("%w: %w", interfaces.ErrNotFound, interfaces.ErrFetch)
	} else {
		err = fmt.Errorf("%w: unexpected status %d", interfaces.ErrFetch, statusCode)
	}
	return &FetchError{Endpoint: endpoint, StatusCode: statusCode, Err: err}
}

func newTransportError(endpoint string, cause error) *FetchError {
	return &FetchError{Endpoint: endpoint, Err: fmt.Errorf("%w: %w", interfaces.ErrFetch, cause)}
}

func newParseError(endpoint string, statusCode int, cause error) *FetchError {
	return &FetchError{Endpoint: endpoint, StatusCode: statusCode, Err: fmt.Errorf("%w: %w", interfaces.ErrParse, cause)}
}

// isRetryableError: solo fallos de transporte y 5xx. 404 y errores de parseo nunca se reintentan.
func isRetryableError(err error) bool {
	var fe *FetchError
	if !errors.As(err, &fe) {
		return false
	}
	if errors.Is(fe.Err, interfaces.ErrParse) {
		return false
	}
	return fe.StatusCode == 0 || fe.StatusCode >= http.StatusInternalServerError
}

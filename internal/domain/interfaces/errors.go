package interfaces

import "errors"

// Errores devueltos por cualquier implementación de MarketDataClient
var (
	// ErrFetch covers transport failures and non-2xx responses.
	ErrFetch = errors.New("market data fetch failed")
	// ErrNotFound is a 404 from the upstream. Errors carrying it also match ErrFetch.
	ErrNotFound = errors.New("coin not found")
	// ErrParse means the body was not JSON of the expected shape.
	ErrParse = errors.New("invalid market data response")
	// ErrInvalidID is returned before any request is made.
	ErrInvalidID = errors.New("invalid coin id")
)

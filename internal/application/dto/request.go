package dto

import (
	"crypto-tracker/internal/application/services"
	"crypto-tracker/internal/domain/interfaces"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	MaxQueryLength  = 100
	MaxCoinIDLength = 128
)

// ListingRequest representa los parámetros de búsqueda y orden del listado
type ListingRequest struct {
	// Query es la búsqueda libre sobre nombre o símbolo (ej: "btc")
	Query string `json:"q"`
	// Sort es la clave de orden ya normalizada
	Sort services.SortKey `json:"sort"`
}

// NewListingRequest crea una request desde query parameters.
// La búsqueda se recorta a MaxQueryLength runas; un orden desconocido cae a rank.
func NewListingRequest(queryParam, sortParam string) *ListingRequest {
	query := strings.TrimSpace(queryParam)
	if utf8.RuneCountInString(query) > MaxQueryLength {
		query = string([]rune(query)[:MaxQueryLength])
	}

	return &ListingRequest{
		Query: query,
		Sort:  services.ParseSortKey(sortParam),
	}
}

// DetailRequest representa la request de detalle de un activo
type DetailRequest struct {
	ID string `json:"id"`
}

// NewDetailRequest valida el id del path antes de llegar al cliente de mercado
func NewDetailRequest(idParam string) (*DetailRequest, error) {
	id := strings.TrimSpace(idParam)

	if id == "" {
		return nil, fmt.Errorf("%w: coin id is required", interfaces.ErrInvalidID)
	}
	if strings.Contains(id, "/") {
		return nil, fmt.Errorf("%w: coin id must not contain '/'", interfaces.ErrInvalidID)
	}
	if len(id) > MaxCoinIDLength {
		return nil, fmt.Errorf("%w: coin id longer than %d characters", interfaces.ErrInvalidID, MaxCoinIDLength)
	}

	return &DetailRequest{ID: strings.ToLower(id)}, nil
}

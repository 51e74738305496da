package services

import (
	"context"

	"github.com/tripflow/tripflow_backend/internal/core/domain"
)

// GeocoderSvcFacade is the external geocoding collaborator: a free-text
// search returning ranked candidates, and a reverse lookup by coordinates.
// The provider is a black box; internal/clients/nominatim implements this.
type GeocoderSvcFacade interface {
	// Search returns up to a provider-defined number of candidates for the query.
	Search(ctx context.Context, query string) ([]domain.GeoPlace, error)

	// Reverse resolves coordinates to a place, or apperrors.ErrNotFound.
	Reverse(ctx context.Context, lat, lon float64) (*domain.GeoPlace, error)
}

package services

import (
	"context"

	"github.com/tripflow/tripflow_backend/internal/core/domain"
	"github.com/tripflow/tripflow_backend/internal/dto"
)

// TripSvcFacade defines trip operations. Every accessor takes the requesting
// user's ID and fails with apperrors.ErrForbidden when the trip belongs to
// someone else.
type TripSvcFacade interface {
	// CreateTrip creates a trip owned by userID.
	CreateTrip(ctx context.Context, userID int64, req dto.CreateTripRequest) (*domain.Trip, error)

	// GetTripByID retrieves one of the requesting user's trips.
	GetTripByID(ctx context.Context, tripID, userID int64) (*domain.Trip, error)

	// ListTripsByUser lists the user's trips, newest first.
	ListTripsByUser(ctx context.Context, userID int64) ([]domain.Trip, error)

	// UpdateTrip applies the non-nil fields of req to the trip.
	UpdateTrip(ctx context.Context, tripID, userID int64, req dto.UpdateTripRequest) (*domain.Trip, error)

	// DeleteTrip removes the trip and all dependent rows.
	DeleteTrip(ctx context.Context, tripID, userID int64) error
}

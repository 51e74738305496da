package repositories

import (
	"context"

	"github.com/tripflow/tripflow_backend/internal/core/domain"
)

// TripRepository defines storage operations for trip rows.
type TripRepository interface {
	// CreateTrip inserts a new trip and returns its assigned ID.
	CreateTrip(ctx context.Context, trip domain.Trip) (int64, error)

	// FindTripByID retrieves a trip by ID, or apperrors.ErrNotFound.
	FindTripByID(ctx context.Context, tripID int64) (*domain.Trip, error)

	// FindTripsByUserID lists a user's trips, newest first.
	FindTripsByUserID(ctx context.Context, userID int64) ([]domain.Trip, error)

	// UpdateTrip overwrites the mutable fields of an existing trip.
	UpdateTrip(ctx context.Context, trip domain.Trip) error

	// DeleteTrip removes the trip; steps, journal entries, checklists and
	// checklist items go with it through the enforced foreign-key cascade.
	DeleteTrip(ctx context.Context, tripID int64) error
}

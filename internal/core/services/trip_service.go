package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tripflow/tripflow_backend/internal/apperrors"
	"github.com/tripflow/tripflow_backend/internal/core/domain"
	portsrepo "github.com/tripflow/tripflow_backend/internal/core/ports/repositories"
	portssvc "github.com/tripflow/tripflow_backend/internal/core/ports/services"
	"github.com/tripflow/tripflow_backend/internal/dto"
)

// TripService implements trip CRUD with per-user ownership checks.
type TripService struct {
	tripRepo portsrepo.TripRepository
}

// NewTripService creates a new trip service.
func NewTripService(tripRepo portsrepo.TripRepository) *TripService {
	return &TripService{tripRepo: tripRepo}
}

// Ensure TripService implements portssvc.TripSvcFacade
var _ portssvc.TripSvcFacade = (*TripService)(nil)

func validateDateRange(start, end *string) error {
	if start != nil && end != nil && *end < *start {
		return fmt.Errorf("end date %s precedes start date %s: %w", *end, *start, apperrors.ErrValidation)
	}
	return nil
}

// CreateTrip creates a trip owned by userID.
func (s *TripService) CreateTrip(ctx context.Context, userID int64, req dto.CreateTripRequest) (*domain.Trip, error) {
	if err := validateDateRange(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	now := time.Now()
	trip := domain.Trip{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.tripRepo.CreateTrip(ctx, trip)
	if err != nil {
		return nil, err
	}
	trip.ID = id
	return &trip, nil
}

// GetTripByID retrieves one of the requesting user's trips.
func (s *TripService) GetTripByID(ctx context.Context, tripID, userID int64) (*domain.Trip, error) {
	return s.findOwnedTrip(ctx, tripID, userID)
}

// ListTripsByUser lists the user's trips, newest first.
func (s *TripService) ListTripsByUser(ctx context.Context, userID int64) ([]domain.Trip, error) {
	return s.tripRepo.FindTripsByUserID(ctx, userID)
}

// UpdateTrip applies the non-nil fields of req to the trip.
func (s *TripService) UpdateTrip(ctx context.Context, tripID, userID int64, req dto.UpdateTripRequest) (*domain.Trip, error) {
	trip, err := s.findOwnedTrip(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		trip.Title = *req.Title
	}
	if req.Description != nil {
		trip.Description = req.Description
	}
	if req.CoverImage != nil {
		trip.CoverImage = req.CoverImage
	}
	if req.StartDate != nil {
		trip.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		trip.EndDate = req.EndDate
	}

	if err := validateDateRange(trip.StartDate, trip.EndDate); err != nil {
		return nil, err
	}

	trip.UpdatedAt = time.Now()
	if err := s.tripRepo.UpdateTrip(ctx, *trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// DeleteTrip removes the trip; the schema cascade takes its steps, journal
// entries, checklists and items with it.
func (s *TripService) DeleteTrip(ctx context.Context, tripID, userID int64) error {
	if _, err := s.findOwnedTrip(ctx, tripID, userID); err != nil {
		return err
	}
	return s.tripRepo.DeleteTrip(ctx, tripID)
}

func (s *TripService) findOwnedTrip(ctx context.Context, tripID, userID int64) (*domain.Trip, error) {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.UserID != userID {
		return nil, fmt.Errorf("trip %d is not owned by user %d: %w", tripID, userID, apperrors.ErrForbidden)
	}
	return trip, nil
}

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
	"github.com/tripflow/tripflow_backend/internal/middleware"
)

// StepService implements step CRUD plus the two itinerary rules: the order
// index is derived from the start date, and date ranges are checked for
// overlap on request. Ownership is checked through the owning trip.
type StepService struct {
	stepRepo portsrepo.StepRepository
	tripRepo portsrepo.TripRepository
}

// NewStepService creates a new step service.
func NewStepService(stepRepo portsrepo.StepRepository, tripRepo portsrepo.TripRepository) *StepService {
	return &StepService{stepRepo: stepRepo, tripRepo: tripRepo}
}

// Ensure StepService implements portssvc.StepSvcFacade
var _ portssvc.StepSvcFacade = (*StepService)(nil)

// CreateStep creates a step in the trip. The order index starts at one plus
// the number of steps with a strictly earlier start date; the reorder pass
// that follows makes the whole trip's indices contiguous again, so steps on
// the same date keep insertion order.
func (s *StepService) CreateStep(ctx context.Context, tripID, userID int64, req dto.CreateStepRequest) (*domain.Step, error) {
	trip, err := s.findOwnedTripForStep(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}
	if err := validateDateRange(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}
	s.warnIfOutsideTrip(ctx, trip, req.StartDate, req.EndDate)

	orderIndex := 0
	if req.StartDate != nil {
		count, err := s.stepRepo.CountStepsStartingBefore(ctx, tripID, *req.StartDate)
		if err != nil {
			return nil, err
		}
		orderIndex = count + 1
	}

	step := domain.Step{
		TripID:      tripID,
		Title:       req.Title,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Address:     req.Address,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		OrderIndex:  orderIndex,
		CreatedAt:   time.Now(),
	}

	id, err := s.stepRepo.CreateStep(ctx, step)
	if err != nil {
		return nil, err
	}

	if err := s.stepRepo.ReorderSteps(ctx, tripID); err != nil {
		return nil, err
	}
	// Re-fetch so the response carries the index the reorder pass settled on.
	return s.stepRepo.FindStepByID(ctx, id)
}

// GetStepByID retrieves one step of the requesting user.
func (s *StepService) GetStepByID(ctx context.Context, stepID, userID int64) (*domain.Step, error) {
	return s.findOwnedStep(ctx, stepID, userID)
}

// ListStepsByTrip lists the trip's steps in itinerary order.
func (s *StepService) ListStepsByTrip(ctx context.Context, tripID, userID int64) ([]domain.Step, error) {
	if _, err := s.findOwnedTripForStep(ctx, tripID, userID); err != nil {
		return nil, err
	}
	return s.stepRepo.FindStepsByTripID(ctx, tripID)
}

// UpdateStep applies the non-nil fields of req to the step. A date change
// reruns the reorder pass for the whole trip.
func (s *StepService) UpdateStep(ctx context.Context, stepID, userID int64, req dto.UpdateStepRequest) (*domain.Step, error) {
	step, err := s.findOwnedStep(ctx, stepID, userID)
	if err != nil {
		return nil, err
	}

	datesChanged := false
	if req.Title != nil {
		step.Title = *req.Title
	}
	if req.Description != nil {
		step.Description = req.Description
	}
	if req.Latitude != nil {
		step.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		step.Longitude = req.Longitude
	}
	if req.Address != nil {
		step.Address = req.Address
	}
	if req.StartDate != nil {
		step.StartDate = req.StartDate
		datesChanged = true
	}
	if req.EndDate != nil {
		step.EndDate = req.EndDate
		datesChanged = true
	}

	if err := validateDateRange(step.StartDate, step.EndDate); err != nil {
		return nil, err
	}

	if err := s.stepRepo.UpdateStep(ctx, *step); err != nil {
		return nil, err
	}

	if datesChanged {
		trip, err := s.tripRepo.FindTripByID(ctx, step.TripID)
		if err != nil {
			return nil, err
		}
		s.warnIfOutsideTrip(ctx, trip, step.StartDate, step.EndDate)

		if err := s.stepRepo.ReorderSteps(ctx, step.TripID); err != nil {
			return nil, err
		}
		return s.stepRepo.FindStepByID(ctx, stepID)
	}
	return step, nil
}

// DeleteStep removes the step; the repository re-closes the order index gap
// in the same transaction.
func (s *StepService) DeleteStep(ctx context.Context, stepID, userID int64) error {
	if _, err := s.findOwnedStep(ctx, stepID, userID); err != nil {
		return err
	}
	return s.stepRepo.DeleteStep(ctx, stepID)
}

// CheckDateConflicts returns the trip's steps whose inclusive date range
// overlaps [startDate, endDate]. Conflicts are advisory; nothing blocks
// saving an overlapping step.
func (s *StepService) CheckDateConflicts(ctx context.Context, tripID, userID int64, startDate, endDate string, excludeStepID int64) ([]domain.Step, error) {
	if _, err := s.findOwnedTripForStep(ctx, tripID, userID); err != nil {
		return nil, err
	}
	if endDate < startDate {
		return nil, fmt.Errorf("end date %s precedes start date %s: %w", endDate, startDate, apperrors.ErrValidation)
	}
	return s.stepRepo.FindConflictingSteps(ctx, tripID, startDate, endDate, excludeStepID)
}

// warnIfOutsideTrip logs when a step's dates fall outside the trip's own date
// range. The save still succeeds; the range is a planning aid, not a
// constraint.
func (s *StepService) warnIfOutsideTrip(ctx context.Context, trip *domain.Trip, startDate, endDate *string) {
	if trip.StartDate == nil || trip.EndDate == nil {
		return
	}
	outside := (startDate != nil && *startDate < *trip.StartDate) ||
		(endDate != nil && *endDate > *trip.EndDate)
	if outside {
		middleware.GetLoggerFromCtx(ctx).Warn("step dates fall outside trip range",
			"trip_id", trip.ID, "trip_start", *trip.StartDate, "trip_end", *trip.EndDate)
	}
}

func (s *StepService) findOwnedStep(ctx context.Context, stepID, userID int64) (*domain.Step, error) {
	step, err := s.stepRepo.FindStepByID(ctx, stepID)
	if err != nil {
		return nil, err
	}
	if _, err := s.findOwnedTripForStep(ctx, step.TripID, userID); err != nil {
		return nil, err
	}
	return step, nil
}

func (s *StepService) findOwnedTripForStep(ctx context.Context, tripID, userID int64) (*domain.Trip, error) {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.UserID != userID {
		return nil, fmt.Errorf("trip %d is not owned by user %d: %w", tripID, userID, apperrors.ErrForbidden)
	}
	return trip, nil
}

package services

import (
	"context"

	"github.com/tripflow/tripflow_backend/internal/core/domain"
	"github.com/tripflow/tripflow_backend/internal/dto"
)

// StepSvcFacade defines step operations, including the ordering and
// date-conflict rules. Ownership is checked through the owning trip.
type StepSvcFacade interface {
	// CreateStep creates a step in the trip, assigns its order index from the
	// start date, and runs the reorder pass so indices stay contiguous.
	CreateStep(ctx context.Context, tripID, userID int64, req dto.CreateStepRequest) (*domain.Step, error)

	// GetStepByID retrieves one step of the requesting user.
	GetStepByID(ctx context.Context, stepID, userID int64) (*domain.Step, error)

	// ListStepsByTrip lists the trip's steps in itinerary order.
	ListStepsByTrip(ctx context.Context, tripID, userID int64) ([]domain.Step, error)

	// UpdateStep applies the non-nil fields of req to the step and reruns the
	// reorder pass when dates changed.
	UpdateStep(ctx context.Context, stepID, userID int64, req dto.UpdateStepRequest) (*domain.Step, error)

	// DeleteStep removes the step and re-closes the order index gap.
	DeleteStep(ctx context.Context, stepID, userID int64) error

	// CheckDateConflicts returns the trip's steps whose inclusive date range
	// overlaps [startDate, endDate]. excludeStepID (0 = none) ignores the
	// step being edited.
	CheckDateConflicts(ctx context.Context, tripID, userID int64, startDate, endDate string, excludeStepID int64) ([]domain.Step, error)
}

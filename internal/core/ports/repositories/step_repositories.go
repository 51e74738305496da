package repositories

import (
	"context"

	"github.com/tripflow/tripflow_backend/internal/core/domain"
)

// StepRepository defines storage operations for step rows, including the
// ordering primitives the step service builds on.
type StepRepository interface {
	// CreateStep inserts a new step and returns its assigned ID.
	CreateStep(ctx context.Context, step domain.Step) (int64, error)

	// FindStepByID retrieves a step by ID, or apperrors.ErrNotFound.
	FindStepByID(ctx context.Context, stepID int64) (*domain.Step, error)

	// FindStepsByTripID lists a trip's steps ordered by start date ascending,
	// then order index ascending; steps without a start date come last.
	FindStepsByTripID(ctx context.Context, tripID int64) ([]domain.Step, error)

	// UpdateStep overwrites the mutable fields of an existing step.
	UpdateStep(ctx context.Context, step domain.Step) error

	// DeleteStep removes the step and re-closes the gap in order indices by
	// running the full reorder pass, in one transaction.
	DeleteStep(ctx context.Context, stepID int64) error

	// CountStepsStartingBefore counts the trip's steps whose start date is
	// strictly earlier than the given ISO date. Steps without a start date
	// are not counted.
	CountStepsStartingBefore(ctx context.Context, tripID int64, startDate string) (int, error)

	// FindConflictingSteps returns the trip's steps whose inclusive date range
	// overlaps [startDate, endDate]. excludeStepID ignores the step being
	// edited; pass 0 to check against every step.
	FindConflictingSteps(ctx context.Context, tripID int64, startDate, endDate string, excludeStepID int64) ([]domain.Step, error)

	// ReorderSteps is the authoritative recomputation: it sorts the trip's
	// steps by start date ascending and reassigns order_index = 1-based
	// position for every step, in one transaction.
	ReorderSteps(ctx context.Context, tripID int64) error
}

package repositories

import (
	"context"

	"github.com/tripflow/tripflow_backend/internal/core/domain"
)

// ChecklistRepository defines storage operations for checklists and their items.
type ChecklistRepository interface {
	// CreateChecklist inserts a new checklist and returns its assigned ID.
	CreateChecklist(ctx context.Context, checklist domain.Checklist) (int64, error)

	// FindChecklistByID retrieves a checklist by ID, or apperrors.ErrNotFound.
	FindChecklistByID(ctx context.Context, checklistID int64) (*domain.Checklist, error)

	// FindChecklistsByTripID lists a trip's checklists in creation order.
	FindChecklistsByTripID(ctx context.Context, tripID int64) ([]domain.Checklist, error)

	// UpdateChecklist renames an existing checklist.
	UpdateChecklist(ctx context.Context, checklist domain.Checklist) error

	// DeleteChecklist removes the checklist and, via the foreign-key cascade,
	// all of its items.
	DeleteChecklist(ctx context.Context, checklistID int64) error

	// CreateChecklistItem inserts a new item and returns its assigned ID.
	CreateChecklistItem(ctx context.Context, item domain.ChecklistItem) (int64, error)

	// FindChecklistItemByID retrieves an item by ID, or apperrors.ErrNotFound.
	FindChecklistItemByID(ctx context.Context, itemID int64) (*domain.ChecklistItem, error)

	// FindChecklistItems lists a checklist's items in creation order.
	FindChecklistItems(ctx context.Context, checklistID int64) ([]domain.ChecklistItem, error)

	// UpdateChecklistItem overwrites title and checked flag of an item.
	UpdateChecklistItem(ctx context.Context, item domain.ChecklistItem) error

	// DeleteChecklistItem removes a single item.
	DeleteChecklistItem(ctx context.Context, itemID int64) error
}

package services

import (
	"context"

	"github.com/tripflow/tripflow_backend/internal/core/domain"
	"github.com/tripflow/tripflow_backend/internal/dto"
)

// ChecklistSvcFacade defines checklist and checklist item operations.
// Ownership is checked through the owning trip.
type ChecklistSvcFacade interface {
	// CreateChecklist creates a checklist in the trip.
	CreateChecklist(ctx context.Context, tripID, userID int64, req dto.CreateChecklistRequest) (*domain.Checklist, error)

	// GetChecklistByID retrieves one checklist of the requesting user.
	GetChecklistByID(ctx context.Context, checklistID, userID int64) (*domain.Checklist, error)

	// ListChecklistsByTrip lists the trip's checklists in creation order.
	ListChecklistsByTrip(ctx context.Context, tripID, userID int64) ([]domain.Checklist, error)

	// DeleteChecklist removes the checklist and its items.
	DeleteChecklist(ctx context.Context, checklistID, userID int64) error

	// CreateChecklistItem adds an item to the checklist, unchecked.
	CreateChecklistItem(ctx context.Context, checklistID, userID int64, req dto.CreateChecklistItemRequest) (*domain.ChecklistItem, error)

	// ListChecklistItems lists the checklist's items in creation order.
	ListChecklistItems(ctx context.Context, checklistID, userID int64) ([]domain.ChecklistItem, error)

	// UpdateChecklistItem applies the non-nil fields of req to the item.
	UpdateChecklistItem(ctx context.Context, itemID, userID int64, req dto.UpdateChecklistItemRequest) (*domain.ChecklistItem, error)

	// DeleteChecklistItem removes a single item.
	DeleteChecklistItem(ctx context.Context, itemID, userID int64) error
}

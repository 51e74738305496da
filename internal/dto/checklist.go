package dto

import (
	"time"

	"github.com/tripflow/tripflow_backend/internal/core/domain"
)

// CreateChecklistRequest is the payload for checklist creation.
type CreateChecklistRequest struct {
	Title string `json:"title" binding:"required"`
}

// CreateChecklistItemRequest is the payload for adding an item. New items
// start unchecked.
type CreateChecklistItemRequest struct {
	Title string `json:"title" binding:"required"`
}

// UpdateChecklistItemRequest carries the item fields to change. Nil fields
// are left untouched.
type UpdateChecklistItemRequest struct {
	Title     *string `json:"title" binding:"omitempty,min=1"`
	IsChecked *bool   `json:"is_checked"`
}

// ChecklistResponse is the API shape of a checklist.
type ChecklistResponse struct {
	ID        int64     `json:"id"`
	TripID    int64     `json:"trip_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// ChecklistItemResponse is the API shape of a checklist item.
type ChecklistItemResponse struct {
	ID          int64     `json:"id"`
	ChecklistID int64     `json:"checklist_id"`
	Title       string    `json:"title"`
	IsChecked   bool      `json:"is_checked"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListChecklistsResponse wraps a checklist listing.
type ListChecklistsResponse struct {
	Checklists []ChecklistResponse `json:"checklists"`
}

// ListChecklistItemsResponse wraps an item listing.
type ListChecklistItemsResponse struct {
	Items []ChecklistItemResponse `json:"items"`
}

// ToChecklistResponse maps a domain checklist to its API shape.
func ToChecklistResponse(cl *domain.Checklist) ChecklistResponse {
	return ChecklistResponse{
		ID:        cl.ID,
		TripID:    cl.TripID,
		Title:     cl.Title,
		CreatedAt: cl.CreatedAt,
	}
}

// ToChecklistItemResponse maps a domain checklist item to its API shape.
func ToChecklistItemResponse(it *domain.ChecklistItem) ChecklistItemResponse {
	return ChecklistItemResponse{
		ID:          it.ID,
		ChecklistID: it.ChecklistID,
		Title:       it.Title,
		IsChecked:   it.IsChecked,
		CreatedAt:   it.CreatedAt,
	}
}

package dto

import (
	"time"

	"github.com/tripflow/tripflow_backend/internal/core/domain"
)

// CreateStepRequest is the payload for step creation. Coordinates and address
// typically come from a geocoder candidate picked by the client.
type CreateStepRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description *string  `json:"description"`
	Latitude    *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	Address     *string  `json:"address"`
	StartDate   *string  `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string  `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateStepRequest carries the step fields to change. Nil fields are left
// untouched.
type UpdateStepRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=1"`
	Description *string  `json:"description"`
	Latitude    *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	Address     *string  `json:"address"`
	StartDate   *string  `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string  `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

// ConflictCheckQuery is the query payload for the date-conflict endpoint.
type ConflictCheckQuery struct {
	StartDate     string `form:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate       string `form:"end_date" binding:"required,datetime=2006-01-02"`
	ExcludeStepID int64  `form:"exclude_step_id"`
}

// StepResponse is the API shape of a step.
type StepResponse struct {
	ID          int64     `json:"id"`
	TripID      int64     `json:"trip_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Address     *string   `json:"address,omitempty"`
	StartDate   *string   `json:"start_date,omitempty"`
	EndDate     *string   `json:"end_date,omitempty"`
	OrderIndex  int       `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListStepsResponse wraps a step listing in itinerary order.
type ListStepsResponse struct {
	Steps []StepResponse `json:"steps"`
}

// ConflictsResponse lists the steps overlapping a candidate date range.
type ConflictsResponse struct {
	Conflicts []StepResponse `json:"conflicts"`
}

// ToStepResponse maps a domain step to its API shape.
func ToStepResponse(s *domain.Step) StepResponse {
	return StepResponse{
		ID:          s.ID,
		TripID:      s.TripID,
		Title:       s.Title,
		Description: s.Description,
		Latitude:    s.Latitude,
		Longitude:   s.Longitude,
		Address:     s.Address,
		StartDate:   s.StartDate,
		EndDate:     s.EndDate,
		OrderIndex:  s.OrderIndex,
		CreatedAt:   s.CreatedAt,
	}
}

// ToStepResponses maps a slice of domain steps.
func ToStepResponses(steps []domain.Step) []StepResponse {
	out := make([]StepResponse, len(steps))
	for i := range steps {
		out[i] = ToStepResponse(&steps[i])
	}
	return out
}

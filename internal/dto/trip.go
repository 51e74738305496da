package dto

import (
	"time"

	"github.com/tripflow/tripflow_backend/internal/core/domain"
)

// CreateTripRequest is the payload for trip creation. Dates are ISO calendar
// dates without a time component.
type CreateTripRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	CoverImage  *string `json:"cover_image"`
	StartDate   *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateTripRequest carries the trip fields to change. Nil fields are left
// untouched.
type UpdateTripRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	CoverImage  *string `json:"cover_image"`
	StartDate   *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

// TripResponse is the API shape of a trip.
type TripResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	CoverImage  *string   `json:"cover_image,omitempty"`
	StartDate   *string   `json:"start_date,omitempty"`
	EndDate     *string   `json:"end_date,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListTripsResponse wraps a trip listing.
type ListTripsResponse struct {
	Trips []TripResponse `json:"trips"`
}

// ToTripResponse maps a domain trip to its API shape.
func ToTripResponse(t *domain.Trip) TripResponse {
	return TripResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		CoverImage:  t.CoverImage,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

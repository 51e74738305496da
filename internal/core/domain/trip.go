package domain

import "time"

// Trip is a user-owned journey with optional date bounds and cover image.
// StartDate and EndDate are calendar dates in ISO format (YYYY-MM-DD),
// without a time component.
type Trip struct {
	ID          int64
	UserID      int64
	Title       string
	Description *string
	CoverImage  *string
	StartDate   *string
	EndDate     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

package domain

import "time"

// Checklist is a named list of checkable to-do entries scoped to a trip.
type Checklist struct {
	ID        int64
	TripID    int64
	Title     string
	CreatedAt time.Time
}

// ChecklistItem is a single checkable entry within a checklist.
type ChecklistItem struct {
	ID          int64
	ChecklistID int64
	Title       string
	IsChecked   bool
	CreatedAt   time.Time
}

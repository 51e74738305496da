package domain

import "time"

// Step is an ordered, dated, optionally geo-located stop within a trip.
// OrderIndex is the 1-based position of the step in the trip's sequence,
// assigned by start date and kept contiguous by the reorder pass.
type Step struct {
	ID          int64
	TripID      int64
	Title       string
	Description *string
	Latitude    *float64
	Longitude   *float64
	Address     *string
	StartDate   *string
	EndDate     *string
	OrderIndex  int
	CreatedAt   time.Time
}

// HasDateRange reports whether the step carries both a start and an end date.
func (s Step) HasDateRange() bool {
	return s.StartDate != nil && s.EndDate != nil
}

// DateRangesOverlap reports whether two inclusive ISO date ranges overlap.
// ISO date strings compare correctly with plain string ordering.
func DateRangesOverlap(aStart, aEnd, bStart, bEnd string) bool {
	return aStart <= bEnd && aEnd >= bStart
}

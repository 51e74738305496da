package models

import "database/sql"

// Step mirrors the steps table.
type Step struct {
	ID          int64
	TripID      int64
	Title       string
	Description sql.NullString
	Latitude    sql.NullFloat64
	Longitude   sql.NullFloat64
	Address     sql.NullString
	StartDate   sql.NullString
	EndDate     sql.NullString
	OrderIndex  int
	CreatedAt   string
}

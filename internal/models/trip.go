package models

import "database/sql"

// Trip mirrors the trips table.
type Trip struct {
	ID          int64
	UserID      int64
	Title       string
	Description sql.NullString
	CoverImage  sql.NullString
	StartDate   sql.NullString
	EndDate     sql.NullString
	CreatedAt   string
	UpdatedAt   string
}

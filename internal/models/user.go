// Package models holds the database row shapes for the sqlite repositories.
// Every row read from storage is scanned into one of these structs and
// converted to a strongly-typed domain value at the repository boundary.
package models

// User mirrors the users table.
type User struct {
	ID        int64
	Email     string
	Password  string
	Name      string
	CreatedAt string
}

// Package sqlite implements the repository ports over the embedded SQLite
// database. Rows are scanned into internal/models structs and validated into
// domain values at this boundary; nothing downstream sees a raw row.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// timestampFormat is the storage format for created_at/updated_at columns.
const timestampFormat = time.RFC3339

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampFormat)
}

func parseTimestamp(column, value string) (time.Time, error) {
	t, err := time.Parse(timestampFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s %q: %w", column, value, err)
	}
	return t, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func floatPtr(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	f := nf.Float64
	return &f
}

// isUniqueViolation reports whether the driver error is a UNIQUE constraint
// failure. modernc.org/sqlite exposes no typed constraint error, so the
// message is the only discriminator available.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

package models

import "database/sql"

// JournalEntry mirrors the journal_entries table. Images holds a JSON-encoded
// string array for entries migrated from the legacy image-list format.
type JournalEntry struct {
	ID        int64
	StepID    int64
	Type      string
	Content   string
	Images    sql.NullString
	FilePath  sql.NullString
	EntryDate sql.NullString
	CreatedAt string
}

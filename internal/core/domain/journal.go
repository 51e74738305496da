package domain

import "time"

// Journal entry type discriminators.
const (
	JournalTypeText  = "text"
	JournalTypePhoto = "photo"
	JournalTypeAudio = "audio"
)

// JournalEntry is the single persisted block-content document attached to
// one step. Content is an opaque serialized block list owned by the caller;
// Images is a legacy list kept for entries written before block content.
// CreatedAt is refreshed on every save, so it acts as a last-modified marker.
type JournalEntry struct {
	ID        int64
	StepID    int64
	Type      string
	Content   string
	Images    []string
	FilePath  *string
	EntryDate *string
	CreatedAt time.Time
}

package repositories

import (
	"context"

	"github.com/tripflow/tripflow_backend/internal/core/domain"
)

// JournalRepository defines storage operations for journal entries. The
// one-entry-per-step rule is enforced by the journal service, which looks up
// the existing entry and decides between insert and in-place update.
type JournalRepository interface {
	// FindJournalEntryByStepID retrieves the entry attached to a step, or
	// apperrors.ErrNotFound.
	FindJournalEntryByStepID(ctx context.Context, stepID int64) (*domain.JournalEntry, error)

	// InsertJournalEntry inserts a new entry and returns its assigned ID.
	InsertJournalEntry(ctx context.Context, entry domain.JournalEntry) (int64, error)

	// UpdateJournalEntry overwrites every field of the entry identified by
	// entry.ID, including its timestamp.
	UpdateJournalEntry(ctx context.Context, entry domain.JournalEntry) error
}

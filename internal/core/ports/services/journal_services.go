package services

import (
	"context"

	"github.com/tripflow/tripflow_backend/internal/core/domain"
	"github.com/tripflow/tripflow_backend/internal/dto"
)

// JournalSvcFacade defines journal entry operations. A step has at most one
// journal entry; saving overwrites the existing entry in place.
type JournalSvcFacade interface {
	// GetJournalEntryForStep retrieves the step's entry, or apperrors.ErrNotFound
	// when nothing has been written yet.
	GetJournalEntryForStep(ctx context.Context, stepID, userID int64) (*domain.JournalEntry, error)

	// SaveJournalEntryForStep creates the step's entry if absent, otherwise
	// overwrites all of its fields. No history of prior versions is kept.
	SaveJournalEntryForStep(ctx context.Context, stepID, userID int64, req dto.SaveJournalEntryRequest) (*domain.JournalEntry, error)
}

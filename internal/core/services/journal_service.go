package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tripflow/tripflow_backend/internal/apperrors"
	"github.com/tripflow/tripflow_backend/internal/core/domain"
	portsrepo "github.com/tripflow/tripflow_backend/internal/core/ports/repositories"
	portssvc "github.com/tripflow/tripflow_backend/internal/core/ports/services"
	"github.com/tripflow/tripflow_backend/internal/dto"
)

// JournalService implements the one-entry-per-step journal. Saving looks up
// the existing entry first and overwrites it in place, so a step never
// accumulates more than one row.
type JournalService struct {
	journalRepo portsrepo.JournalRepository
	stepRepo    portsrepo.StepRepository
	tripRepo    portsrepo.TripRepository
}

// NewJournalService creates a new journal service.
func NewJournalService(journalRepo portsrepo.JournalRepository, stepRepo portsrepo.StepRepository, tripRepo portsrepo.TripRepository) *JournalService {
	return &JournalService{journalRepo: journalRepo, stepRepo: stepRepo, tripRepo: tripRepo}
}

// Ensure JournalService implements portssvc.JournalSvcFacade
var _ portssvc.JournalSvcFacade = (*JournalService)(nil)

// GetJournalEntryForStep retrieves the step's entry, or apperrors.ErrNotFound
// when nothing has been written yet.
func (s *JournalService) GetJournalEntryForStep(ctx context.Context, stepID, userID int64) (*domain.JournalEntry, error) {
	if err := s.requireStepOwner(ctx, stepID, userID); err != nil {
		return nil, err
	}
	return s.journalRepo.FindJournalEntryByStepID(ctx, stepID)
}

// SaveJournalEntryForStep upserts the step's entry. The timestamp is
// refreshed on every save, including updates, so it marks the last write.
func (s *JournalService) SaveJournalEntryForStep(ctx context.Context, stepID, userID int64, req dto.SaveJournalEntryRequest) (*domain.JournalEntry, error) {
	if err := s.requireStepOwner(ctx, stepID, userID); err != nil {
		return nil, err
	}

	entry := domain.JournalEntry{
		StepID:    stepID,
		Type:      req.Type,
		Content:   req.Content,
		Images:    req.Images,
		FilePath:  req.FilePath,
		EntryDate: req.EntryDate,
		CreatedAt: time.Now(),
	}

	existing, err := s.journalRepo.FindJournalEntryByStepID(ctx, stepID)
	switch {
	case err == nil:
		entry.ID = existing.ID
		if err := s.journalRepo.UpdateJournalEntry(ctx, entry); err != nil {
			return nil, err
		}
	case errors.Is(err, apperrors.ErrNotFound):
		id, err := s.journalRepo.InsertJournalEntry(ctx, entry)
		if err != nil {
			return nil, err
		}
		entry.ID = id
	default:
		return nil, err
	}
	return &entry, nil
}

func (s *JournalService) requireStepOwner(ctx context.Context, stepID, userID int64) error {
	step, err := s.stepRepo.FindStepByID(ctx, stepID)
	if err != nil {
		return err
	}
	trip, err := s.tripRepo.FindTripByID(ctx, step.TripID)
	if err != nil {
		return err
	}
	if trip.UserID != userID {
		return fmt.Errorf("step %d is not owned by user %d: %w", stepID, userID, apperrors.ErrForbidden)
	}
	return nil
}

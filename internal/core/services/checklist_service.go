package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tripflow/tripflow_backend/internal/apperrors"
	"github.com/tripflow/tripflow_backend/internal/core/domain"
	portsrepo "github.com/tripflow/tripflow_backend/internal/core/ports/repositories"
	portssvc "github.com/tripflow/tripflow_backend/internal/core/ports/services"
	"github.com/tripflow/tripflow_backend/internal/dto"
)

// ChecklistService implements checklist and checklist item CRUD. Ownership is
// checked through the owning trip.
type ChecklistService struct {
	checklistRepo portsrepo.ChecklistRepository
	tripRepo      portsrepo.TripRepository
}

// NewChecklistService creates a new checklist service.
func NewChecklistService(checklistRepo portsrepo.ChecklistRepository, tripRepo portsrepo.TripRepository) *ChecklistService {
	return &ChecklistService{checklistRepo: checklistRepo, tripRepo: tripRepo}
}

// Ensure ChecklistService implements portssvc.ChecklistSvcFacade
var _ portssvc.ChecklistSvcFacade = (*ChecklistService)(nil)

// CreateChecklist creates a checklist in the trip.
func (s *ChecklistService) CreateChecklist(ctx context.Context, tripID, userID int64, req dto.CreateChecklistRequest) (*domain.Checklist, error) {
	if err := s.requireTripOwner(ctx, tripID, userID); err != nil {
		return nil, err
	}

	checklist := domain.Checklist{
		TripID:    tripID,
		Title:     req.Title,
		CreatedAt: time.Now(),
	}
	id, err := s.checklistRepo.CreateChecklist(ctx, checklist)
	if err != nil {
		return nil, err
	}
	checklist.ID = id
	return &checklist, nil
}

// GetChecklistByID retrieves one checklist of the requesting user.
func (s *ChecklistService) GetChecklistByID(ctx context.Context, checklistID, userID int64) (*domain.Checklist, error) {
	return s.findOwnedChecklist(ctx, checklistID, userID)
}

// ListChecklistsByTrip lists the trip's checklists in creation order.
func (s *ChecklistService) ListChecklistsByTrip(ctx context.Context, tripID, userID int64) ([]domain.Checklist, error) {
	if err := s.requireTripOwner(ctx, tripID, userID); err != nil {
		return nil, err
	}
	return s.checklistRepo.FindChecklistsByTripID(ctx, tripID)
}

// DeleteChecklist removes the checklist and its items.
func (s *ChecklistService) DeleteChecklist(ctx context.Context, checklistID, userID int64) error {
	if _, err := s.findOwnedChecklist(ctx, checklistID, userID); err != nil {
		return err
	}
	return s.checklistRepo.DeleteChecklist(ctx, checklistID)
}

// CreateChecklistItem adds an item to the checklist, unchecked.
func (s *ChecklistService) CreateChecklistItem(ctx context.Context, checklistID, userID int64, req dto.CreateChecklistItemRequest) (*domain.ChecklistItem, error) {
	if _, err := s.findOwnedChecklist(ctx, checklistID, userID); err != nil {
		return nil, err
	}

	item := domain.ChecklistItem{
		ChecklistID: checklistID,
		Title:       req.Title,
		IsChecked:   false,
		CreatedAt:   time.Now(),
	}
	id, err := s.checklistRepo.CreateChecklistItem(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = id
	return &item, nil
}

// ListChecklistItems lists the checklist's items in creation order.
func (s *ChecklistService) ListChecklistItems(ctx context.Context, checklistID, userID int64) ([]domain.ChecklistItem, error) {
	if _, err := s.findOwnedChecklist(ctx, checklistID, userID); err != nil {
		return nil, err
	}
	return s.checklistRepo.FindChecklistItems(ctx, checklistID)
}

// UpdateChecklistItem applies the non-nil fields of req to the item. Toggling
// is an update with only is_checked set.
func (s *ChecklistService) UpdateChecklistItem(ctx context.Context, itemID, userID int64, req dto.UpdateChecklistItemRequest) (*domain.ChecklistItem, error) {
	item, err := s.findOwnedChecklistItem(ctx, itemID, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.IsChecked != nil {
		item.IsChecked = *req.IsChecked
	}

	if err := s.checklistRepo.UpdateChecklistItem(ctx, *item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteChecklistItem removes a single item.
func (s *ChecklistService) DeleteChecklistItem(ctx context.Context, itemID, userID int64) error {
	if _, err := s.findOwnedChecklistItem(ctx, itemID, userID); err != nil {
		return err
	}
	return s.checklistRepo.DeleteChecklistItem(ctx, itemID)
}

func (s *ChecklistService) requireTripOwner(ctx context.Context, tripID, userID int64) error {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		return err
	}
	if trip.UserID != userID {
		return fmt.Errorf("trip %d is not owned by user %d: %w", tripID, userID, apperrors.ErrForbidden)
	}
	return nil
}

func (s *ChecklistService) findOwnedChecklist(ctx context.Context, checklistID, userID int64) (*domain.Checklist, error) {
	checklist, err := s.checklistRepo.FindChecklistByID(ctx, checklistID)
	if err != nil {
		return nil, err
	}
	if err := s.requireTripOwner(ctx, checklist.TripID, userID); err != nil {
		return nil, err
	}
	return checklist, nil
}

func (s *ChecklistService) findOwnedChecklistItem(ctx context.Context, itemID, userID int64) (*domain.ChecklistItem, error) {
	item, err := s.checklistRepo.FindChecklistItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if _, err := s.findOwnedChecklist(ctx, item.ChecklistID, userID); err != nil {
		return nil, err
	}
	return item, nil
}

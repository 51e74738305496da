package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tripflow/tripflow_backend/internal/apperrors"
	"github.com/tripflow/tripflow_backend/internal/core/domain"
	portsrepo "github.com/tripflow/tripflow_backend/internal/core/ports/repositories"
	"github.com/tripflow/tripflow_backend/internal/models"
)

// SqliteChecklistRepository persists checklists and their items.
type SqliteChecklistRepository struct {
	db *sql.DB
}

func newSqliteChecklistRepository(db *sql.DB) portsrepo.ChecklistRepository {
	return &SqliteChecklistRepository{db: db}
}

// Ensure SqliteChecklistRepository implements portsrepo.ChecklistRepository
var _ portsrepo.ChecklistRepository = (*SqliteChecklistRepository)(nil)

func toDomainChecklist(m models.Checklist) (*domain.Checklist, error) {
	createdAt, err := parseTimestamp("created_at", m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &domain.Checklist{
		ID:        m.ID,
		TripID:    m.TripID,
		Title:     m.Title,
		CreatedAt: createdAt,
	}, nil
}

func toDomainChecklistItem(m models.ChecklistItem) (*domain.ChecklistItem, error) {
	createdAt, err := parseTimestamp("created_at", m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &domain.ChecklistItem{
		ID:          m.ID,
		ChecklistID: m.ChecklistID,
		Title:       m.Title,
		IsChecked:   m.IsChecked != 0,
		CreatedAt:   createdAt,
	}, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (r *SqliteChecklistRepository) CreateChecklist(ctx context.Context, checklist domain.Checklist) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO checklists (trip_id, title, created_at) VALUES (?, ?, ?)`,
		checklist.TripID, checklist.Title, formatTimestamp(checklist.CreatedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert checklist: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new checklist id: %w", err)
	}
	return id, nil
}

func (r *SqliteChecklistRepository) FindChecklistByID(ctx context.Context, checklistID int64) (*domain.Checklist, error) {
	var m models.Checklist
	err := r.db.QueryRowContext(ctx,
		`SELECT id, trip_id, title, created_at FROM checklists WHERE id = ?`, checklistID,
	).Scan(&m.ID, &m.TripID, &m.Title, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find checklist %d: %w", checklistID, err)
	}
	return toDomainChecklist(m)
}

func (r *SqliteChecklistRepository) FindChecklistsByTripID(ctx context.Context, tripID int64) ([]domain.Checklist, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, trip_id, title, created_at FROM checklists WHERE trip_id = ? ORDER BY created_at ASC, id ASC`, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to query checklists for trip %d: %w", tripID, err)
	}
	defer rows.Close()

	checklists := []domain.Checklist{}
	for rows.Next() {
		var m models.Checklist
		if err := rows.Scan(&m.ID, &m.TripID, &m.Title, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan checklist row: %w", err)
		}
		c, err := toDomainChecklist(m)
		if err != nil {
			return nil, err
		}
		checklists = append(checklists, *c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating checklist rows: %w", rows.Err())
	}
	return checklists, nil
}

func (r *SqliteChecklistRepository) UpdateChecklist(ctx context.Context, checklist domain.Checklist) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE checklists SET title = ? WHERE id = ?`, checklist.Title, checklist.ID)
	if err != nil {
		return fmt.Errorf("failed to update checklist %d: %w", checklist.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteChecklist removes the checklist row; the foreign-key cascade removes
// its items.
func (r *SqliteChecklistRepository) DeleteChecklist(ctx context.Context, checklistID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM checklists WHERE id = ?`, checklistID)
	if err != nil {
		return fmt.Errorf("failed to delete checklist %d: %w", checklistID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *SqliteChecklistRepository) CreateChecklistItem(ctx context.Context, item domain.ChecklistItem) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO checklist_items (checklist_id, title, is_checked, created_at) VALUES (?, ?, ?, ?)`,
		item.ChecklistID, item.Title, boolToInt(item.IsChecked), formatTimestamp(item.CreatedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert checklist item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new checklist item id: %w", err)
	}
	return id, nil
}

func (r *SqliteChecklistRepository) FindChecklistItemByID(ctx context.Context, itemID int64) (*domain.ChecklistItem, error) {
	var m models.ChecklistItem
	err := r.db.QueryRowContext(ctx,
		`SELECT id, checklist_id, title, is_checked, created_at FROM checklist_items WHERE id = ?`, itemID,
	).Scan(&m.ID, &m.ChecklistID, &m.Title, &m.IsChecked, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find checklist item %d: %w", itemID, err)
	}
	return toDomainChecklistItem(m)
}

func (r *SqliteChecklistRepository) FindChecklistItems(ctx context.Context, checklistID int64) ([]domain.ChecklistItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, checklist_id, title, is_checked, created_at FROM checklist_items
		 WHERE checklist_id = ? ORDER BY created_at ASC, id ASC`, checklistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items for checklist %d: %w", checklistID, err)
	}
	defer rows.Close()

	items := []domain.ChecklistItem{}
	for rows.Next() {
		var m models.ChecklistItem
		if err := rows.Scan(&m.ID, &m.ChecklistID, &m.Title, &m.IsChecked, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan checklist item row: %w", err)
		}
		it, err := toDomainChecklistItem(m)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating checklist item rows: %w", rows.Err())
	}
	return items, nil
}

func (r *SqliteChecklistRepository) UpdateChecklistItem(ctx context.Context, item domain.ChecklistItem) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE checklist_items SET title = ?, is_checked = ? WHERE id = ?`,
		item.Title, boolToInt(item.IsChecked), item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update checklist item %d: %w", item.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *SqliteChecklistRepository) DeleteChecklistItem(ctx context.Context, itemID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM checklist_items WHERE id = ?`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete checklist item %d: %w", itemID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

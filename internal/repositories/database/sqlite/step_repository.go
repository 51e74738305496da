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

// SqliteStepRepository persists steps and implements the ordering primitives:
// insertion-position counting, inclusive date-overlap lookup, the full
// reorder pass, and gap closure on deletion.
type SqliteStepRepository struct {
	db *sql.DB
}

func newSqliteStepRepository(db *sql.DB) portsrepo.StepRepository {
	return &SqliteStepRepository{db: db}
}

// Ensure SqliteStepRepository implements portsrepo.StepRepository
var _ portsrepo.StepRepository = (*SqliteStepRepository)(nil)

const stepColumns = `id, trip_id, title, description, latitude, longitude, address, start_date, end_date, order_index, created_at`

// itineraryOrder sorts by start date ascending with undated steps last;
// order_index and id break ties deterministically.
const itineraryOrder = ` ORDER BY CASE WHEN start_date IS NULL THEN 1 ELSE 0 END, start_date ASC, order_index ASC, id ASC`

func scanStep(row interface{ Scan(...any) error }) (models.Step, error) {
	var m models.Step
	err := row.Scan(&m.ID, &m.TripID, &m.Title, &m.Description, &m.Latitude, &m.Longitude,
		&m.Address, &m.StartDate, &m.EndDate, &m.OrderIndex, &m.CreatedAt)
	return m, err
}

func toDomainStep(m models.Step) (*domain.Step, error) {
	createdAt, err := parseTimestamp("created_at", m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &domain.Step{
		ID:          m.ID,
		TripID:      m.TripID,
		Title:       m.Title,
		Description: stringPtr(m.Description),
		Latitude:    floatPtr(m.Latitude),
		Longitude:   floatPtr(m.Longitude),
		Address:     stringPtr(m.Address),
		StartDate:   stringPtr(m.StartDate),
		EndDate:     stringPtr(m.EndDate),
		OrderIndex:  m.OrderIndex,
		CreatedAt:   createdAt,
	}, nil
}

func (r *SqliteStepRepository) CreateStep(ctx context.Context, step domain.Step) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO steps (trip_id, title, description, latitude, longitude, address, start_date, end_date, order_index, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		step.TripID, step.Title, nullString(step.Description),
		nullFloat(step.Latitude), nullFloat(step.Longitude), nullString(step.Address),
		nullString(step.StartDate), nullString(step.EndDate),
		step.OrderIndex, formatTimestamp(step.CreatedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert step: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new step id: %w", err)
	}
	return id, nil
}

func (r *SqliteStepRepository) FindStepByID(ctx context.Context, stepID int64) (*domain.Step, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+stepColumns+` FROM steps WHERE id = ?`, stepID)
	m, err := scanStep(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find step %d: %w", stepID, err)
	}
	return toDomainStep(m)
}

func (r *SqliteStepRepository) FindStepsByTripID(ctx context.Context, tripID int64) ([]domain.Step, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+stepColumns+` FROM steps WHERE trip_id = ?`+itineraryOrder, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to query steps for trip %d: %w", tripID, err)
	}
	defer rows.Close()
	return collectSteps(rows)
}

func collectSteps(rows *sql.Rows) ([]domain.Step, error) {
	steps := []domain.Step{}
	for rows.Next() {
		m, err := scanStep(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan step row: %w", err)
		}
		s, err := toDomainStep(m)
		if err != nil {
			return nil, err
		}
		steps = append(steps, *s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating step rows: %w", rows.Err())
	}
	return steps, nil
}

func (r *SqliteStepRepository) UpdateStep(ctx context.Context, step domain.Step) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE steps SET title = ?, description = ?, latitude = ?, longitude = ?, address = ?, start_date = ?, end_date = ?
		 WHERE id = ?`,
		step.Title, nullString(step.Description),
		nullFloat(step.Latitude), nullFloat(step.Longitude), nullString(step.Address),
		nullString(step.StartDate), nullString(step.EndDate), step.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update step %d: %w", step.ID, err)
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

// DeleteStep removes the step and immediately recloses the order-index gap by
// running the full reorder pass over the remaining steps, all in one
// transaction. The full pass is used instead of a localized decrement so a
// pre-existing duplicate or gap cannot survive the deletion.
func (r *SqliteStepRepository) DeleteStep(ctx context.Context, stepID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin step deletion: %w", err)
	}
	defer tx.Rollback()

	var tripID int64
	err = tx.QueryRowContext(ctx, `SELECT trip_id FROM steps WHERE id = ?`, stepID).Scan(&tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to find step %d: %w", stepID, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM steps WHERE id = ?`, stepID); err != nil {
		return fmt.Errorf("failed to delete step %d: %w", stepID, err)
	}

	if err := reorderStepsTx(ctx, tx, tripID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit step deletion: %w", err)
	}
	return nil
}

func (r *SqliteStepRepository) CountStepsStartingBefore(ctx context.Context, tripID int64, startDate string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM steps WHERE trip_id = ? AND start_date IS NOT NULL AND start_date < ?`,
		tripID, startDate,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count steps before %s in trip %d: %w", startDate, tripID, err)
	}
	return count, nil
}

// FindConflictingSteps applies the canonical inclusive overlap test:
// existing.start <= candidate.end AND existing.end >= candidate.start.
// ISO date strings compare correctly as text. excludeStepID of 0 matches no
// row, so it disables the exclusion.
func (r *SqliteStepRepository) FindConflictingSteps(ctx context.Context, tripID int64, startDate, endDate string, excludeStepID int64) ([]domain.Step, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+stepColumns+` FROM steps
		 WHERE trip_id = ? AND id <> ?
		   AND start_date IS NOT NULL AND end_date IS NOT NULL
		   AND start_date <= ? AND end_date >= ?`+itineraryOrder,
		tripID, excludeStepID, endDate, startDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query conflicting steps for trip %d: %w", tripID, err)
	}
	defer rows.Close()
	return collectSteps(rows)
}

// ReorderSteps runs the authoritative order recomputation for a trip.
func (r *SqliteStepRepository) ReorderSteps(ctx context.Context, tripID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin reorder: %w", err)
	}
	defer tx.Rollback()

	if err := reorderStepsTx(ctx, tx, tripID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reorder: %w", err)
	}
	return nil
}

// reorderStepsTx reassigns order_index = 1-based itinerary position for every
// step of the trip. After it runs, the trip's indices are exactly {1..n}.
func reorderStepsTx(ctx context.Context, tx *sql.Tx, tripID int64) error {
	rows, err := tx.QueryContext(ctx, `SELECT id FROM steps WHERE trip_id = ?`+itineraryOrder, tripID)
	if err != nil {
		return fmt.Errorf("failed to query steps for reorder of trip %d: %w", tripID, err)
	}
	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan step id for reorder: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating steps for reorder: %w", err)
	}

	for pos, id := range ids {
		if _, err := tx.ExecContext(ctx, `UPDATE steps SET order_index = ? WHERE id = ?`, pos+1, id); err != nil {
			return fmt.Errorf("failed to reassign order index for step %d: %w", id, err)
		}
	}
	return nil
}

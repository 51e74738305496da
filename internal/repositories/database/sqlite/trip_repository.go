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

// SqliteTripRepository persists trips.
type SqliteTripRepository struct {
	db *sql.DB
}

func newSqliteTripRepository(db *sql.DB) portsrepo.TripRepository {
	return &SqliteTripRepository{db: db}
}

// Ensure SqliteTripRepository implements portsrepo.TripRepository
var _ portsrepo.TripRepository = (*SqliteTripRepository)(nil)

const tripColumns = `id, user_id, title, description, cover_image, start_date, end_date, created_at, updated_at`

func scanTrip(row interface{ Scan(...any) error }) (models.Trip, error) {
	var m models.Trip
	err := row.Scan(&m.ID, &m.UserID, &m.Title, &m.Description, &m.CoverImage,
		&m.StartDate, &m.EndDate, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func toDomainTrip(m models.Trip) (*domain.Trip, error) {
	createdAt, err := parseTimestamp("created_at", m.CreatedAt)
	if err != nil {
		return nil, err
	}
	updatedAt, err := parseTimestamp("updated_at", m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &domain.Trip{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		Description: stringPtr(m.Description),
		CoverImage:  stringPtr(m.CoverImage),
		StartDate:   stringPtr(m.StartDate),
		EndDate:     stringPtr(m.EndDate),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

func (r *SqliteTripRepository) CreateTrip(ctx context.Context, trip domain.Trip) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO trips (user_id, title, description, cover_image, start_date, end_date, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		trip.UserID, trip.Title, nullString(trip.Description), nullString(trip.CoverImage),
		nullString(trip.StartDate), nullString(trip.EndDate),
		formatTimestamp(trip.CreatedAt), formatTimestamp(trip.UpdatedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert trip: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new trip id: %w", err)
	}
	return id, nil
}

func (r *SqliteTripRepository) FindTripByID(ctx context.Context, tripID int64) (*domain.Trip, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+tripColumns+` FROM trips WHERE id = ?`, tripID)
	m, err := scanTrip(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find trip %d: %w", tripID, err)
	}
	return toDomainTrip(m)
}

func (r *SqliteTripRepository) FindTripsByUserID(ctx context.Context, userID int64) ([]domain.Trip, error) {
	// Newest first; id breaks ties between trips created within one second.
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+tripColumns+` FROM trips WHERE user_id = ? ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips for user %d: %w", userID, err)
	}
	defer rows.Close()

	trips := []domain.Trip{}
	for rows.Next() {
		m, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip row: %w", err)
		}
		t, err := toDomainTrip(m)
		if err != nil {
			return nil, err
		}
		trips = append(trips, *t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating trip rows: %w", rows.Err())
	}
	return trips, nil
}

func (r *SqliteTripRepository) UpdateTrip(ctx context.Context, trip domain.Trip) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE trips SET title = ?, description = ?, cover_image = ?, start_date = ?, end_date = ?, updated_at = ?
		 WHERE id = ?`,
		trip.Title, nullString(trip.Description), nullString(trip.CoverImage),
		nullString(trip.StartDate), nullString(trip.EndDate),
		formatTimestamp(trip.UpdatedAt), trip.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip %d: %w", trip.ID, err)
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

// DeleteTrip removes the trip row; the foreign-key cascade removes its steps,
// their journal entries, its checklists and their items in the same statement.
func (r *SqliteTripRepository) DeleteTrip(ctx context.Context, tripID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trips WHERE id = ?`, tripID)
	if err != nil {
		return fmt.Errorf("failed to delete trip %d: %w", tripID, err)
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

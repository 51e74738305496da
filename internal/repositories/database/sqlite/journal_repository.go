package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tripflow/tripflow_backend/internal/apperrors"
	"github.com/tripflow/tripflow_backend/internal/core/domain"
	portsrepo "github.com/tripflow/tripflow_backend/internal/core/ports/repositories"
	"github.com/tripflow/tripflow_backend/internal/models"
)

// SqliteJournalRepository persists journal entries. The images column stores
// the legacy image list as a JSON array; an empty list is stored as NULL.
type SqliteJournalRepository struct {
	db *sql.DB
}

func newSqliteJournalRepository(db *sql.DB) portsrepo.JournalRepository {
	return &SqliteJournalRepository{db: db}
}

// Ensure SqliteJournalRepository implements portsrepo.JournalRepository
var _ portsrepo.JournalRepository = (*SqliteJournalRepository)(nil)

func encodeImages(images []string) (sql.NullString, error) {
	if len(images) == 0 {
		return sql.NullString{}, nil
	}
	raw, err := json.Marshal(images)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("failed to encode journal images: %w", err)
	}
	return sql.NullString{String: string(raw), Valid: true}, nil
}

func decodeImages(ns sql.NullString) ([]string, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}
	var images []string
	if err := json.Unmarshal([]byte(ns.String), &images); err != nil {
		return nil, fmt.Errorf("failed to decode journal images %q: %w", ns.String, err)
	}
	return images, nil
}

func toDomainJournalEntry(m models.JournalEntry) (*domain.JournalEntry, error) {
	createdAt, err := parseTimestamp("created_at", m.CreatedAt)
	if err != nil {
		return nil, err
	}
	images, err := decodeImages(m.Images)
	if err != nil {
		return nil, err
	}
	return &domain.JournalEntry{
		ID:        m.ID,
		StepID:    m.StepID,
		Type:      m.Type,
		Content:   m.Content,
		Images:    images,
		FilePath:  stringPtr(m.FilePath),
		EntryDate: stringPtr(m.EntryDate),
		CreatedAt: createdAt,
	}, nil
}

func (r *SqliteJournalRepository) FindJournalEntryByStepID(ctx context.Context, stepID int64) (*domain.JournalEntry, error) {
	var m models.JournalEntry
	err := r.db.QueryRowContext(ctx,
		`SELECT id, step_id, type, content, images, file_path, entry_date, created_at
		 FROM journal_entries WHERE step_id = ?`, stepID,
	).Scan(&m.ID, &m.StepID, &m.Type, &m.Content, &m.Images, &m.FilePath, &m.EntryDate, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry for step %d: %w", stepID, err)
	}
	return toDomainJournalEntry(m)
}

func (r *SqliteJournalRepository) InsertJournalEntry(ctx context.Context, entry domain.JournalEntry) (int64, error) {
	images, err := encodeImages(entry.Images)
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO journal_entries (step_id, type, content, images, file_path, entry_date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.StepID, entry.Type, entry.Content, images,
		nullString(entry.FilePath), nullString(entry.EntryDate), formatTimestamp(entry.CreatedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert journal entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new journal entry id: %w", err)
	}
	return id, nil
}

func (r *SqliteJournalRepository) UpdateJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	images, err := encodeImages(entry.Images)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE journal_entries SET type = ?, content = ?, images = ?, file_path = ?, entry_date = ?, created_at = ?
		 WHERE id = ?`,
		entry.Type, entry.Content, images,
		nullString(entry.FilePath), nullString(entry.EntryDate), formatTimestamp(entry.CreatedAt), entry.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update journal entry %d: %w", entry.ID, err)
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

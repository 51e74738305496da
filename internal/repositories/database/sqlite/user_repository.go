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

// SqliteUserRepository persists users and owns the transactional account
// deletion cascade.
type SqliteUserRepository struct {
	db *sql.DB
}

func newSqliteUserRepository(db *sql.DB) portsrepo.UserRepository {
	return &SqliteUserRepository{db: db}
}

// Ensure SqliteUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*SqliteUserRepository)(nil)

func toDomainUser(m models.User) (*domain.User, error) {
	createdAt, err := parseTimestamp("created_at", m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &domain.User{
		ID:        m.ID,
		Email:     m.Email,
		Password:  m.Password,
		Name:      m.Name,
		CreatedAt: createdAt,
	}, nil
}

func (r *SqliteUserRepository) CreateUser(ctx context.Context, user domain.User) (int64, error) {
	// Lookup-before-insert keeps the duplicate check on one error path; the
	// schema's UNIQUE constraint is the backstop for the insert race.
	var existingID int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM users WHERE email = ?`, user.Email).Scan(&existingID)
	if err == nil {
		return 0, fmt.Errorf("email %s already registered: %w", user.Email, apperrors.ErrDuplicate)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to check email uniqueness: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (email, password, name, created_at) VALUES (?, ?, ?, ?)`,
		user.Email, user.Password, user.Name, formatTimestamp(user.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("email %s already registered: %w", user.Email, apperrors.ErrDuplicate)
		}
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new user id: %w", err)
	}
	return id, nil
}

func (r *SqliteUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return r.findUser(ctx, `SELECT id, email, password, name, created_at FROM users WHERE id = ?`, userID)
}

func (r *SqliteUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUser(ctx, `SELECT id, email, password, name, created_at FROM users WHERE email = ?`, email)
}

func (r *SqliteUserRepository) findUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var m models.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&m.ID, &m.Email, &m.Password, &m.Name, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return toDomainUser(m)
}

func (r *SqliteUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET name = ?, password = ? WHERE id = ?`,
		user.Name, user.Password, user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user %d: %w", user.ID, err)
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

// DeleteUser removes the user and all owned trips inside one transaction.
// Deleting the trips fires the foreign-key cascade that removes steps,
// journal entries, checklists and checklist items; any failure rolls the
// whole deletion back, so readers never observe a partially deleted account.
func (r *SqliteUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin account deletion: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM trips WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("failed to delete trips for user %d: %w", userID, err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", userID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit account deletion: %w", err)
	}
	return nil
}

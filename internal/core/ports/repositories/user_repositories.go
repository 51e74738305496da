// Package repositories defines the storage port interfaces the services
// depend on. The sqlite adapters implement them.
package repositories

import (
	"context"

	"github.com/tripflow/tripflow_backend/internal/core/domain"
)

// UserRepository defines storage operations for user rows.
type UserRepository interface {
	// CreateUser inserts a new user and returns its assigned ID.
	// Returns apperrors.ErrDuplicate when the email is already taken.
	CreateUser(ctx context.Context, user domain.User) (int64, error)

	// FindUserByID retrieves a user by ID, or apperrors.ErrNotFound.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// FindUserByEmail retrieves a user by exact email, or apperrors.ErrNotFound.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdateUser updates name and password of an existing user.
	UpdateUser(ctx context.Context, user domain.User) error

	// DeleteUser removes the user together with all owned trips and every
	// row cascading from them, inside a single transaction. Either the whole
	// account is removed or nothing is.
	DeleteUser(ctx context.Context, userID int64) error
}

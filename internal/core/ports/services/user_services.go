// Package services defines the service facade interfaces consumed by the
// HTTP handlers. Implementations live in internal/core/services.
package services

import (
	"context"

	"github.com/tripflow/tripflow_backend/internal/core/domain"
	"github.com/tripflow/tripflow_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// Register creates a new user account. Fails with apperrors.ErrDuplicate
	// when the email is already registered.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// UpdateUser updates the requesting user's own profile.
	UpdateUser(ctx context.Context, userID int64, req dto.UpdateUserRequest) (*domain.User, error)
}

// UserAuthSvc defines operations for user authentication.
type UserAuthSvc interface {
	// Authenticate matches email and password against the stored values and
	// returns the user row, or apperrors.ErrNotFound on mismatch.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

// UserLifecycleSvc defines operations for managing user lifecycle.
type UserLifecycleSvc interface {
	// DeleteUser removes the account and everything it owns, transactionally.
	DeleteUser(ctx context.Context, userID int64) error
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
	UserLifecycleSvc
}

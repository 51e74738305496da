// Package services implements the core application services behind the
// facade interfaces in internal/core/ports/services.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tripflow/tripflow_backend/internal/apperrors"
	"github.com/tripflow/tripflow_backend/internal/core/domain"
	portsrepo "github.com/tripflow/tripflow_backend/internal/core/ports/repositories"
	portssvc "github.com/tripflow/tripflow_backend/internal/core/ports/services"
	"github.com/tripflow/tripflow_backend/internal/dto"
)

// UserService implements account registration, authentication, profile
// updates, and full account deletion.
type UserService struct {
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Ensure UserService implements portssvc.UserSvcFacade
var _ portssvc.UserSvcFacade = (*UserService)(nil)

// Register creates a new account. The email is lowercased before storage so
// lookups stay case-insensitive.
func (s *UserService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user := domain.User{
		Email:     email,
		Password:  req.Password,
		Name:      req.Name,
		CreatedAt: time.Now(),
	}

	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id
	return &user, nil
}

// Authenticate matches the credentials against the stored row. A wrong
// password and an unknown email both return apperrors.ErrNotFound, so the
// response never reveals which half was wrong.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if user.Password != password {
		return nil, fmt.Errorf("password mismatch for %s: %w", email, apperrors.ErrNotFound)
	}
	return user, nil
}

// GetUserByID retrieves a user by ID.
func (s *UserService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// UpdateUser applies the non-nil fields of req to the user's profile.
func (s *UserService) UpdateUser(ctx context.Context, userID int64, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		user.Password = *req.Password
	}

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the account and everything it owns. The repository runs
// the whole cascade in one transaction.
func (s *UserService) DeleteUser(ctx context.Context, userID int64) error {
	return s.userRepo.DeleteUser(ctx, userID)
}

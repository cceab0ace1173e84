package repositories

import (
	"context"

	"github.com/SscSPs/procedure_control_app/internal/core/domain"
)

// UserRepository defines persistence operations for application accounts.
type UserRepository interface {
	// FindUsers returns all accounts.
	FindUsers(ctx context.Context) ([]domain.User, error)

	// FindUserByID returns one account or apperrors.ErrNotFound.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername returns one account or apperrors.ErrNotFound.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// SaveUser inserts a new account.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing account.
	UpdateUser(ctx context.Context, user domain.User) error

	// DeleteUser removes an account permanently.
	DeleteUser(ctx context.Context, userID string) error
}

package storage

import (
	"context"

	"github.com/vblinov/gophblog/internal/models"
)

// UserStorage defines interface for user data persistence
type UserStorage interface {
	// CreateUser inserts a new user and returns the assigned id.
	// Returns ErrUserAlreadyExists if username is already taken
	// (enforced by the UNIQUE constraint, not by a prior lookup)
	CreateUser(ctx context.Context, user *models.User) (int64, error)

	// GetUserByUsername retrieves user by username
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByID retrieves user by id
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
}

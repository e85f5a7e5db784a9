package repositories

import (
	"context"

	"github.com/arsipku/arsip_backend/internal/core/domain"
)

// UserReader defines read operations for user accounts.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a specific user by their email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for user accounts.
type UserWriter interface {
	// SaveUser persists a new user. It returns ErrDuplicate when the email
	// is already registered.
	SaveUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}

package services

import (
	"context"

	"github.com/arsipku/arsip_backend/internal/core/domain"
	"github.com/arsipku/arsip_backend/internal/dto"
)

// UserSvcFacade defines account operations used by the auth handlers.
type UserSvcFacade interface {
	// CreateUser registers a new account with a hashed password.
	CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email address.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

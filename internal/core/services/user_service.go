package services

import (
	"context"
	"fmt"
	"time"

	"github.com/arsipku/arsip_backend/internal/core/domain"
	portsrepo "github.com/arsipku/arsip_backend/internal/core/ports/repositories"
	"github.com/arsipku/arsip_backend/internal/dto"
	"github.com/arsipku/arsip_backend/internal/utils"
	"github.com/google/uuid"
)

const defaultUserRole = "staff"

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

func NewUserService(userRepo portsrepo.UserRepositoryFacade) *userService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         defaultUserRole,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user in service: %w", err)
	}
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email in service: %w", err)
	}
	return user, nil
}

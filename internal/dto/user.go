package dto

import "github.com/arsipku/arsip_backend/internal/core/domain"

// LoginRequest carries the credentials for password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest carries the fields for creating a new account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// UserResponse is the public shape of a user; the password hash never
// leaves the service layer.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse wraps the authenticated user summary.
type LoginResponse struct {
	User UserResponse `json:"user"`
}

// MeResponse reports the session user, or null when no valid session exists.
type MeResponse struct {
	User *UserResponse `json:"user"`
}

// ToUserResponse converts a domain user to its public shape.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:    u.UserID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

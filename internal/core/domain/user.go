package domain

import "time"

// User is an application account able to sign in to the archive system.
type User struct {
	UserID       string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

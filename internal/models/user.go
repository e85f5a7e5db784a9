package models

import "time"

// User is the persistence shape of a row in the users table.
type User struct {
	UserID       string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user account.
//
// Accounts are created through the registration flow and are immutable
// afterwards; there is no update or delete path.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Username is the unique login name (4-32 chars, alphanumeric only).
	Username string

	// Email is the user's email address (unique).
	Email string

	// PasswordHash is the bcrypt digest of the user's password.
	// Never serialized in API responses.
	PasswordHash string

	// Salt is the bcrypt cost+salt prefix of PasswordHash, stored in its
	// own column so credentials can be verified by callers that only
	// carry hash+plaintext.
	Salt string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last modification.
	UpdatedAt int64
}

// NewUser creates a User with a fresh UUID and timestamps.
func NewUser(username, email, passwordHash, salt string) *User {
	now := time.Now().Unix()
	return &User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Salt:         salt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

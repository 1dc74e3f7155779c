package models

import (
	"strings"
	"time"
)

// User represents an account entity used for authentication and invoice
// ownership. Users are created once at signup and never updated afterwards.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the opaque unique identifier (UUID v7) assigned at creation.
	UserID string `json:"id"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the login identifier. It is always stored normalized
	// (trimmed and lower-cased), see [NormalizeEmail].
	Email string `json:"email"`

	// PasswordHash stores the one-way derived credential.
	// This value MUST be a derived value, never plaintext, and is never
	// serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// NormalizeEmail returns the canonical form of an email address used for
// storage and lookups: surrounding whitespace removed and lower-cased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

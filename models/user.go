package models

import "time"

// User represents a hub account used for authentication and profile display.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the opaque unique identifier of the user (uuid v4 string).
	// Random rather than sequential so account IDs cannot be enumerated.
	ID string `json:"id"`

	// Email is the unique, case-folded login identifier.
	Email string `json:"email"`

	// PasswordHash stores the PBKDF2-derived credential in its
	// self-describing base64(salt||key) encoding. It is carried on the
	// resolved user so the settings flow can verify the current password
	// without a second lookup, and MUST never be serialized to clients.
	PasswordHash string `json:"-"`

	// Name is the optional display name. Nil when the user never set one.
	Name *string `json:"name"`

	// Role is the account role. Defaults to "user" on signup.
	Role string `json:"role"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`

	// UpdatedAt is bumped on every settings mutation.
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

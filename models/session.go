package models

import "time"

// Session is a server-side login session referenced by the opaque token
// stored in the browser cookie. Many sessions may reference one user
// (multiple devices); a session never owns the user it points at.
type Session struct {
	// ID is the opaque unguessable session token (uuid v4 string).
	ID string `json:"-"`

	// UserID is the owning user's identifier.
	UserID string `json:"-"`

	// ExpiresAt is fixed at creation time. A session is valid only while
	// now < ExpiresAt; expiry never slides.
	ExpiresAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

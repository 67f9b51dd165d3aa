package store

import (
	"context"
	"time"

	"github.com/blackroad-os/hub/models"
)

// UserRepository is the data-access contract for user accounts.
//
// Email uniqueness is deliberately NOT guaranteed at this layer: the auth
// service performs an existence check before calling CreateUser, and the
// users table carries no unique constraint on email. See DESIGN.md.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)

	// UpdateName and UpdatePassword are separate statements on purpose:
	// the settings flow persists the name before running the password
	// guard, and a failed guard must not roll the name back. A nil name
	// clears the stored value.
	UpdateName(ctx context.Context, id string, name *string) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}

// SessionRepository is the data-access contract for login sessions.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error

	// FindUserBySession joins sessions with users and only matches rows
	// whose expiry is strictly in the future of now. An expired-but-present
	// row yields ErrSessionNotFound, same as a missing one.
	FindUserBySession(ctx context.Context, sessionID string, now time.Time) (models.User, error)

	// DeleteSession is idempotent: deleting an unknown or already-deleted
	// session is not an error.
	DeleteSession(ctx context.Context, sessionID string) error
}

// SiteDataRepository reads the marketing-page data (stats, GitHub orgs,
// domain portfolio). Callers fall back to compiled-in values on error.
type SiteDataRepository interface {
	Stats(ctx context.Context) (map[string]string, error)
	GithubOrgs(ctx context.Context) ([]string, error)
	Domains(ctx context.Context) ([]models.Domain, error)
}

package service

import (
	"context"

	"github.com/blackroad-os/hub/models"
)

// AuthService owns account and session lifecycle: signup, login, logout,
// session resolution and the settings mutations.
type AuthService interface {
	Signup(ctx context.Context, email, password, name string) (models.User, models.Session, error)
	Login(ctx context.Context, email, password string) (models.User, models.Session, error)
	Logout(ctx context.Context, sessionID string) error
	Resolve(ctx context.Context, sessionID string) (models.User, error)
	ChangeName(ctx context.Context, userID, name string) error
	ChangePassword(ctx context.Context, user models.User, currentPassword, newPassword string) error
}

// InventoryService aggregates the upstream platform inventories. Its methods
// never return an error: upstream failure degrades into a payload that
// carries the failure message alongside an empty list.
type InventoryService interface {
	Workers(ctx context.Context) models.WorkerList
	Projects(ctx context.Context) models.ProjectList
	Summary(ctx context.Context) models.InventorySummary
}

// SiteDataService serves the marketing-page numbers. Reads degrade to the
// built-in fallback values instead of failing.
type SiteDataService interface {
	Stats(ctx context.Context) map[string]string
	GithubOrgs(ctx context.Context) []string
	Domains(ctx context.Context) []models.Domain
}

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/blackroad-os/hub/internal/logger"
	"github.com/blackroad-os/hub/internal/service"
	"github.com/blackroad-os/hub/internal/utils"
	"github.com/blackroad-os/hub/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case; unset fields make the
// test fail loudly when called unexpectedly.
type mockAuthService struct {
	signupFn         func(ctx context.Context, email, password, name string) (models.User, models.Session, error)
	loginFn          func(ctx context.Context, email, password string) (models.User, models.Session, error)
	logoutFn         func(ctx context.Context, sessionID string) error
	resolveFn        func(ctx context.Context, sessionID string) (models.User, error)
	changeNameFn     func(ctx context.Context, userID, name string) error
	changePasswordFn func(ctx context.Context, user models.User, currentPassword, newPassword string) error
}

func (m *mockAuthService) Signup(ctx context.Context, email, password, name string) (models.User, models.Session, error) {
	return m.signupFn(ctx, email, password, name)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, models.Session, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID string) error {
	return m.logoutFn(ctx, sessionID)
}

func (m *mockAuthService) Resolve(ctx context.Context, sessionID string) (models.User, error) {
	if m.resolveFn == nil {
		return models.User{}, service.ErrNoSession
	}
	return m.resolveFn(ctx, sessionID)
}

func (m *mockAuthService) ChangeName(ctx context.Context, userID, name string) error {
	return m.changeNameFn(ctx, userID, name)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, user models.User, currentPassword, newPassword string) error {
	return m.changePasswordFn(ctx, user, currentPassword, newPassword)
}

// ─────────────────────────────────────────────
// Mock InventoryService
// ─────────────────────────────────────────────

type mockInventoryService struct {
	workersFn  func(ctx context.Context) models.WorkerList
	projectsFn func(ctx context.Context) models.ProjectList
	summaryFn  func(ctx context.Context) models.InventorySummary
}

func (m *mockInventoryService) Workers(ctx context.Context) models.WorkerList {
	if m.workersFn == nil {
		return models.WorkerList{Workers: []models.Worker{}}
	}
	return m.workersFn(ctx)
}

func (m *mockInventoryService) Projects(ctx context.Context) models.ProjectList {
	if m.projectsFn == nil {
		return models.ProjectList{Projects: []models.Project{}}
	}
	return m.projectsFn(ctx)
}

func (m *mockInventoryService) Summary(ctx context.Context) models.InventorySummary {
	if m.summaryFn == nil {
		return models.InventorySummary{}
	}
	return m.summaryFn(ctx)
}

// ─────────────────────────────────────────────
// Mock SiteDataService
// ─────────────────────────────────────────────

type mockSiteDataService struct {
	statsFn      func(ctx context.Context) map[string]string
	githubOrgsFn func(ctx context.Context) []string
	domainsFn    func(ctx context.Context) []models.Domain
}

func (m *mockSiteDataService) Stats(ctx context.Context) map[string]string {
	if m.statsFn == nil {
		return map[string]string{}
	}
	return m.statsFn(ctx)
}

func (m *mockSiteDataService) GithubOrgs(ctx context.Context) []string {
	if m.githubOrgsFn == nil {
		return nil
	}
	return m.githubOrgsFn(ctx)
}

func (m *mockSiteDataService) Domains(ctx context.Context) []models.Domain {
	if m.domainsFn == nil {
		return nil
	}
	return m.domainsFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given service mocks. Nil mocks
// are replaced with empty ones so pages can still render.
func newTestHandler(t *testing.T, auth *mockAuthService, inventory *mockInventoryService, siteData *mockSiteDataService) *Handler {
	t.Helper()

	if auth == nil {
		auth = &mockAuthService{}
	}
	if inventory == nil {
		inventory = &mockInventoryService{}
	}
	if siteData == nil {
		siteData = &mockSiteDataService{}
	}

	svcs := &service.Services{
		AuthService:      auth,
		InventoryService: inventory,
		SiteDataService:  siteData,
	}
	return NewHandler(svcs, "test", logger.Nop())
}

// testUser is a convenience fixture used across multiple tests.
var testUser = models.User{
	ID:    "user-1",
	Email: "a@b.com",
	Role:  "user",
}

// withUser injects an authenticated user the way the session middleware
// would, for handler tests that bypass the router.
func withUser(r *http.Request, user models.User) *http.Request {
	ctx := context.WithValue(r.Context(), utils.UserCtxKey, user)
	return r.WithContext(ctx)
}

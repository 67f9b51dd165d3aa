package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackroad-os/hub/internal/service"
	"github.com/blackroad-os/hub/models"
)

func formRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	return nil
}

// ─────────────────────────────────────────────
// signup
// ─────────────────────────────────────────────

// Signup then /api/me through the full router: the cookie handed out by the
// redirect must resolve back to the same account.
func TestSignup_SetsCookieAndResolvesViaAPIMe(t *testing.T) {
	session := models.Session{ID: "token-1", UserID: testUser.ID, ExpiresAt: time.Now().Add(720 * time.Hour)}

	auth := &mockAuthService{
		signupFn: func(_ context.Context, email, password, name string) (models.User, models.Session, error) {
			assert.Equal(t, "a@b.com", email)
			assert.Equal(t, "password1", password)
			return testUser, session, nil
		},
		resolveFn: func(_ context.Context, sessionID string) (models.User, error) {
			require.Equal(t, session.ID, sessionID)
			return testUser, nil
		},
	}
	router := newTestHandler(t, auth, nil, nil).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, formRequest("/signup", url.Values{
		"email":    {"a@b.com"},
		"password": {"password1"},
	}))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Equal(t, session.ID, cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, sessionCookieMaxAge, cookie.MaxAge)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: cookie.Value})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, testUser.ID, body["id"])
	assert.Equal(t, testUser.Email, body["email"])
	assert.Equal(t, "user", body["role"])
	assert.Nil(t, body["name"])
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestSignup_ValidationErrorRerendersForm(t *testing.T) {
	auth := &mockAuthService{
		signupFn: func(_ context.Context, _, _, _ string) (models.User, models.Session, error) {
			return models.User{}, models.Session{}, service.ErrPasswordTooShort
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	rec := httptest.NewRecorder()
	h.signup(rec, formRequest("/signup", url.Values{
		"email":    {"a@b.com"},
		"password": {"short"},
		"name":     {"Alice"},
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), msgPasswordTooShort)
	// submitted values survive the round trip
	assert.Contains(t, rec.Body.String(), "a@b.com")
	assert.Contains(t, rec.Body.String(), "Alice")
	assert.Nil(t, sessionCookie(t, rec))
}

func TestSignup_EmailTaken(t *testing.T) {
	auth := &mockAuthService{
		signupFn: func(_ context.Context, _, _, _ string) (models.User, models.Session, error) {
			return models.User{}, models.Session{}, service.ErrEmailTaken
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	rec := httptest.NewRecorder()
	h.signup(rec, formRequest("/signup", url.Values{
		"email":    {"a@b.com"},
		"password": {"password1"},
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), msgEmailTaken)
	assert.Nil(t, sessionCookie(t, rec))
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	session := models.Session{ID: "token-2", UserID: testUser.ID}

	auth := &mockAuthService{
		loginFn: func(_ context.Context, email, password string) (models.User, models.Session, error) {
			assert.Equal(t, "a@b.com", email)
			assert.Equal(t, "password1", password)
			return testUser, session, nil
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	rec := httptest.NewRecorder()
	h.login(rec, formRequest("/login", url.Values{
		"email":    {"a@b.com"},
		"password": {"password1"},
	}))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Equal(t, session.ID, cookie.Value)
}

// Unknown email and wrong password produce the same generic message so the
// form cannot be used to probe which accounts exist, and no cookie is set.
func TestLogin_UnknownEmailRendersGenericError(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, models.Session, error) {
			return models.User{}, models.Session{}, service.ErrInvalidCredentials
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	rec := httptest.NewRecorder()
	h.login(rec, formRequest("/login", url.Values{
		"email":    {"nobody@b.com"},
		"password": {"password1"},
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidCredentials)
	assert.Nil(t, sessionCookie(t, rec))
}

func TestLogin_StorageErrorShowsGenericInternalMessage(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, models.Session, error) {
			return models.User{}, models.Session{}, assert.AnError
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	rec := httptest.NewRecorder()
	h.login(rec, formRequest("/login", url.Values{
		"email":    {"a@b.com"},
		"password": {"password1"},
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInternal)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

// Authenticated visitors are bounced straight to the dashboard from both
// auth forms.
func TestLoginForm_AuthenticatedRedirectsToDashboard(t *testing.T) {
	h := newTestHandler(t, nil, nil, nil)

	for _, handler := range []http.HandlerFunc{h.loginForm, h.signupForm} {
		rec := httptest.NewRecorder()
		req := withUser(httptest.NewRequest(http.MethodGet, "/login", nil), testUser)
		handler(rec, req)

		require.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
	}
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

func TestLogout_DeletesSessionAndClearsCookie(t *testing.T) {
	var deleted string
	auth := &mockAuthService{
		logoutFn: func(_ context.Context, sessionID string) error {
			deleted = sessionID
			return nil
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "token-3"})
	rec := httptest.NewRecorder()
	h.logout(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, "token-3", deleted)

	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

// Logging out without a cookie still clears and redirects.
func TestLogout_Idempotent(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil, nil)

	rec := httptest.NewRecorder()
	h.logout(rec, httptest.NewRequest(http.MethodGet, "/logout", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	require.NotNil(t, sessionCookie(t, rec))
}

// ─────────────────────────────────────────────
// dashboard
// ─────────────────────────────────────────────

func TestDashboard_AnonymousRedirectsToLogin(t *testing.T) {
	h := newTestHandler(t, nil, nil, nil)

	rec := httptest.NewRecorder()
	h.dashboard(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestDashboard_ShowsAccountDetails(t *testing.T) {
	h := newTestHandler(t, nil, nil, nil)

	name := "Alice"
	user := testUser
	user.Name = &name

	rec := httptest.NewRecorder()
	h.dashboard(rec, withUser(httptest.NewRequest(http.MethodGet, "/dashboard", nil), user))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome back, Alice")
	assert.Contains(t, rec.Body.String(), user.Email)
}

// ─────────────────────────────────────────────
// /api/me
// ─────────────────────────────────────────────

func TestMe_Anonymous(t *testing.T) {
	h := newTestHandler(t, nil, nil, nil)

	rec := httptest.NewRecorder()
	h.me(rec, httptest.NewRequest(http.MethodGet, "/api/me", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Not authenticated"}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// settings
// ─────────────────────────────────────────────

func TestSettings_NameOnlyChange(t *testing.T) {
	var gotName string
	auth := &mockAuthService{
		changeNameFn: func(_ context.Context, userID, name string) error {
			assert.Equal(t, testUser.ID, userID)
			gotName = name
			return nil
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	rec := httptest.NewRecorder()
	h.settings(rec, withUser(formRequest("/settings", url.Values{"name": {"Alice"}}), testUser))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Alice", gotName)
	assert.Contains(t, rec.Body.String(), msgSettingsSaved)
}

// A failing password guard must not roll back the already-persisted name
// change.
func TestSettings_WrongCurrentPasswordKeepsNameChange(t *testing.T) {
	nameChanged := false
	auth := &mockAuthService{
		changeNameFn: func(_ context.Context, _, _ string) error {
			nameChanged = true
			return nil
		},
		changePasswordFn: func(_ context.Context, _ models.User, _, _ string) error {
			return service.ErrWrongPassword
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	rec := httptest.NewRecorder()
	h.settings(rec, withUser(formRequest("/settings", url.Values{
		"name":             {"Alice"},
		"current_password": {"wrong"},
		"new_password":     {"password2"},
	}), testUser))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, nameChanged)
	assert.Contains(t, rec.Body.String(), msgWrongPassword)
	assert.NotContains(t, rec.Body.String(), msgSettingsSaved)
}

func TestSettings_PasswordChangeSkippedWhenFieldsEmpty(t *testing.T) {
	auth := &mockAuthService{
		changeNameFn: func(_ context.Context, _, _ string) error { return nil },
		changePasswordFn: func(_ context.Context, _ models.User, _, _ string) error {
			t.Fatal("ChangePassword must not be called without password fields")
			return nil
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	rec := httptest.NewRecorder()
	h.settings(rec, withUser(formRequest("/settings", url.Values{"name": {"Alice"}}), testUser))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), msgSettingsSaved)
}

func TestSettings_AnonymousRedirectsToLogin(t *testing.T) {
	h := newTestHandler(t, nil, nil, nil)

	rec := httptest.NewRecorder()
	h.settings(rec, formRequest("/settings", url.Values{"name": {"Alice"}}))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

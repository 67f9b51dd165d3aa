package http

import (
	"errors"
	"net/http"

	"github.com/blackroad-os/hub/internal/logger"
	"github.com/blackroad-os/hub/internal/service"
	"github.com/blackroad-os/hub/internal/utils"
	"github.com/blackroad-os/hub/internal/web"
	"github.com/blackroad-os/hub/models"
)

// sessionCookieMaxAge matches the server-side session lifetime (30 days) so
// the cookie and the sessions row expire together.
const sessionCookieMaxAge = 30 * 24 * 60 * 60

// user-facing form messages. Login keeps a single generic message for every
// credential failure so the form cannot be used to probe which emails exist.
const (
	msgInvalidCredentials = "Invalid email or password"
	msgInvalidEmail       = "Please enter a valid email"
	msgPasswordTooShort   = "Password must be at least 8 characters"
	msgEmailTaken         = "An account with that email already exists"
	msgWrongPassword      = "Current password is incorrect"
	msgInternal           = "Something went wrong, please try again"
	msgSettingsSaved      = "Settings saved"
)

type loginFormData struct {
	Error string
	Email string
}

type signupFormData struct {
	Error string
	Email string
	Name  string
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.GetUserFromContext(r.Context()); ok {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}

	h.renderPage(w, r, "login", web.Page{
		Title:  "Sign In",
		Active: "login",
		Data:   loginFormData{},
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	user, session, err := h.services.AuthService.Login(r.Context(), email, password)
	if err != nil {
		message := msgInternal
		if errors.Is(err, service.ErrInvalidCredentials) {
			message = msgInvalidCredentials
		} else {
			logger.FromRequest(r).Err(err).Msg("login failed")
		}

		h.renderPage(w, r, "login", web.Page{
			Title:  "Sign In",
			Active: "login",
			Data:   loginFormData{Error: message, Email: email},
		})
		return
	}

	logger.FromRequest(r).Info().Str("user_id", user.ID).Msg("user logged in")
	setSessionCookie(w, session)
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (h *Handler) signupForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.GetUserFromContext(r.Context()); ok {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}

	h.renderPage(w, r, "signup", web.Page{
		Title:  "Create Account",
		Active: "signup",
		Data:   signupFormData{},
	})
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")
	name := r.FormValue("name")

	user, session, err := h.services.AuthService.Signup(r.Context(), email, password, name)
	if err != nil {
		h.renderPage(w, r, "signup", web.Page{
			Title:  "Create Account",
			Active: "signup",
			Data: signupFormData{
				Error: h.signupErrorMessage(r, err),
				Email: email,
				Name:  name,
			},
		})
		return
	}

	logger.FromRequest(r).Info().Str("user_id", user.ID).Msg("user signed up")
	setSessionCookie(w, session)
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (h *Handler) signupErrorMessage(r *http.Request, err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidEmail):
		return msgInvalidEmail
	case errors.Is(err, service.ErrPasswordTooShort):
		return msgPasswordTooShort
	case errors.Is(err, service.ErrEmailTaken):
		return msgEmailTaken
	default:
		logger.FromRequest(r).Err(err).Msg("signup failed")
		return msgInternal
	}
}

// logout deletes the session row, clears the cookie and sends the visitor
// back to the landing page. It is idempotent: without a cookie (or with an
// already-deleted token) it still clears and redirects.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		if err := h.services.AuthService.Logout(r.Context(), cookie.Value); err != nil {
			logger.FromRequest(r).Err(err).Msg("session delete failed")
		}
	}

	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

func setSessionCookie(w http.ResponseWriter, session models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.ID,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1, // serialized as Max-Age=0, deleting the cookie
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

package http

import (
	"net/http"

	"github.com/blackroad-os/hub/internal/logger"
	"github.com/blackroad-os/hub/internal/utils"
	"github.com/blackroad-os/hub/internal/web"
)

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	h.renderPage(w, r, "dashboard", web.Page{
		Title:  "Dashboard",
		Active: "dashboard",
		User:   &user,
	})
}

// me reports the authenticated identity as JSON. The User model's json tags
// keep the password hash and timestamps out of the payload.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		if _, err := utils.WriteJSON(w, map[string]string{"error": "Not authenticated"}, http.StatusUnauthorized); err != nil {
			logger.FromRequest(r).Err(err).Msg("writing response")
		}
		return
	}

	if _, err := utils.WriteJSON(w, user, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response")
	}
}

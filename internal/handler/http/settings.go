package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/blackroad-os/hub/internal/logger"
	"github.com/blackroad-os/hub/internal/service"
	"github.com/blackroad-os/hub/internal/utils"
	"github.com/blackroad-os/hub/internal/web"
	"github.com/blackroad-os/hub/models"
)

type settingsFormData struct {
	Error   string
	Success string
	Name    string
}

func (h *Handler) settingsForm(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	name := ""
	if user.Name != nil {
		name = *user.Name
	}

	h.renderPage(w, r, "settings", web.Page{
		Title: "Settings",
		User:  &user,
		Data:  settingsFormData{Name: name},
	})
}

// settings applies the profile mutations. The name change is persisted
// first and on its own; a failing password guard afterwards re-renders with
// the error but does not roll the name back.
func (h *Handler) settings(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	name := r.FormValue("name")
	currentPassword := r.FormValue("current_password")
	newPassword := r.FormValue("new_password")

	data := settingsFormData{Name: name}

	if err := h.services.AuthService.ChangeName(r.Context(), user.ID, name); err != nil {
		logger.FromRequest(r).Err(err).Msg("name update failed")
		data.Error = msgInternal
		h.renderSettings(w, r, user, data)
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		user.Name = nil
	} else {
		user.Name = &trimmed
	}

	if currentPassword != "" || newPassword != "" {
		err := h.services.AuthService.ChangePassword(r.Context(), user, currentPassword, newPassword)
		if err != nil {
			data.Error = h.passwordErrorMessage(r, err)
			h.renderSettings(w, r, user, data)
			return
		}
	}

	data.Success = msgSettingsSaved
	h.renderSettings(w, r, user, data)
}

func (h *Handler) renderSettings(w http.ResponseWriter, r *http.Request, user models.User, data settingsFormData) {
	h.renderPage(w, r, "settings", web.Page{
		Title: "Settings",
		User:  &user,
		Data:  data,
	})
}

func (h *Handler) passwordErrorMessage(r *http.Request, err error) string {
	switch {
	case errors.Is(err, service.ErrWrongPassword):
		return msgWrongPassword
	case errors.Is(err, service.ErrPasswordTooShort):
		return msgPasswordTooShort
	default:
		logger.FromRequest(r).Err(err).Msg("password update failed")
		return msgInternal
	}
}

package http

import (
	"bytes"
	"net/http"

	"github.com/blackroad-os/hub/internal/logger"
	"github.com/blackroad-os/hub/internal/utils"
	"github.com/blackroad-os/hub/internal/web"
)

// renderPage fills in the resolved user (so the header can swap "Sign In"
// for "Dashboard") and writes the page. Rendering goes through a buffer so a
// template failure can still produce a clean 500 instead of a torn page.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, name string, page web.Page) {
	h.renderPageStatus(w, r, name, page, http.StatusOK)
}

func (h *Handler) renderPageStatus(w http.ResponseWriter, r *http.Request, name string, page web.Page, statusCode int) {
	if page.User == nil {
		if user, ok := utils.GetUserFromContext(r.Context()); ok {
			page.User = &user
		}
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, name, page); err != nil {
		logger.FromRequest(r).Err(err).Str("page", name).Msg("page render failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = buf.WriteTo(w)
}

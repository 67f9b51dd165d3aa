package http

import (
	"net/http"
	"time"

	"github.com/blackroad-os/hub/internal/logger"
	"github.com/blackroad-os/hub/internal/utils"
	"github.com/blackroad-os/hub/internal/web"
)

func (h *Handler) platformDashboard(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "platform", web.Page{
		Title:       "Platform Hub",
		Description: "Live infrastructure inventory",
	})
}

type healthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

func (h *Handler) platformHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, healthResponse{
		Status:    "operational",
		Version:   h.version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) platformInventory(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, h.services.InventoryService.Summary(r.Context()))
}

// platformWorkers proxies the Cloudflare Workers inventory. Upstream
// failure still answers 200 with the error carried in the payload.
func (h *Handler) platformWorkers(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, h.services.InventoryService.Workers(r.Context()))
}

func (h *Handler) platformVercel(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, h.services.InventoryService.Projects(r.Context()))
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response")
	}
}

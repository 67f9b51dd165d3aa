package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/blackroad-os/hub/internal/logger"
	"github.com/blackroad-os/hub/internal/utils"
	"github.com/blackroad-os/hub/internal/web"
	"github.com/blackroad-os/hub/models"
)

type homeData struct {
	Stats map[string]string
}

type githubData struct {
	Orgs []string
}

type domainsData struct {
	Domains []models.Domain
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "home", web.Page{
		Title:       "The Road Ahead Is Infinite",
		Description: "Browser-native operating system for AI agent orchestration",
		Active:      "home",
		Data:        homeData{Stats: h.services.SiteDataService.Stats(r.Context())},
	})
}

func (h *Handler) connect(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "connect", web.Page{
		Title:       "Connect",
		Description: "Link your tools and platforms to BlackRoad",
		Active:      "connect",
	})
}

func (h *Handler) ecosystem(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "ecosystem", web.Page{
		Title:       "Ecosystem",
		Description: "The complete BlackRoad infrastructure",
		Active:      "ecosystem",
	})
}

func (h *Handler) github(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "github", web.Page{
		Title:       "GitHub",
		Description: "16 organizations, 40+ repositories",
		Active:      "github",
		Data:        githubData{Orgs: h.services.SiteDataService.GithubOrgs(r.Context())},
	})
}

func (h *Handler) domains(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "domains", web.Page{
		Title:       "Domains",
		Description: "21 domains across the BlackRoad network",
		Active:      "domains",
		Data:        domainsData{Domains: h.services.SiteDataService.Domains(r.Context())},
	})
}

func (h *Handler) about(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "about", web.Page{
		Title:       "About",
		Description: "The story behind BlackRoad",
		Active:      "about",
	})
}

func (h *Handler) design(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "design", web.Page{
		Title:       "Design System",
		Description: "The BlackRoad visual language",
	})
}

// notFound answers unknown paths: JSON under /api, the 404 page elsewhere.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		if _, err := utils.WriteJSON(w, map[string]string{"error": "Not found"}, http.StatusNotFound); err != nil {
			logger.FromRequest(r).Err(err).Msg("writing response")
		}
		return
	}

	h.renderPageStatus(w, r, "notfound", web.Page{
		Title:       "404",
		Description: "Page not found",
	}, http.StatusNotFound)
}

// templatesIndex lists the raw template-library files served under
// /templates for agents and tooling to consume.
func (h *Handler) templatesIndex(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "library", web.Page{
		Title:       "Template Library",
		Description: "Reusable page templates for the BlackRoad network",
		Active:      "templates",
	})
}

// templateAsset serves one embedded library file verbatim.
func (h *Handler) templateAsset(name, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := web.Asset(name)
		if err != nil {
			logger.FromRequest(r).Err(err).Str("asset", name).Msg("asset lookup failed")
			h.notFound(w, r)
			return
		}

		w.Header().Set("Content-Type", contentType)
		fmt.Fprint(w, raw)
	}
}

// githubOrg forwards /gh/{org} to the organization's GitHub page.
func (h *Handler) githubOrg(w http.ResponseWriter, r *http.Request) {
	org := chi.URLParam(r, "org")
	http.Redirect(w, r, "https://github.com/"+org, http.StatusFound)
}

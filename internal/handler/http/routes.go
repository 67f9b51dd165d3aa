package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init wires the full route table: marketing pages, the template library,
// the auth flow, the platform API, and the external redirects.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withSecurityHeaders)
	router.Use(h.withSession)

	// marketing pages
	router.Get("/", h.home)
	router.Get("/connect", h.connect)
	router.Get("/ecosystem", h.ecosystem)
	router.Get("/github", h.github)
	router.Get("/domains", h.domains)
	router.Get("/about", h.about)
	router.Get("/design", h.design)

	// template library
	router.Get("/templates", h.templatesIndex)
	router.Get("/templates/base.css", h.templateAsset("base.css", "text/css; charset=utf-8"))
	router.Get("/templates/components/header", h.templateAsset("component-header.html", "text/plain; charset=utf-8"))
	router.Get("/templates/components/footer", h.templateAsset("component-footer.html", "text/plain; charset=utf-8"))
	router.Get("/templates/layouts/base", h.templateAsset("layout-base.html", "text/plain; charset=utf-8"))
	router.Get("/templates/pages/home", h.templateAsset("page-home.html", "text/plain; charset=utf-8"))
	router.Get("/templates/pages/about", h.templateAsset("page-about.html", "text/plain; charset=utf-8"))
	router.Get("/templates/pages/404", h.templateAsset("page-404.html", "text/plain; charset=utf-8"))
	router.Get("/templates/pages/coming-soon", h.templateAsset("page-coming-soon.html", "text/plain; charset=utf-8"))

	// auth flow
	router.Get("/login", h.loginForm)
	router.Post("/login", h.login)
	router.Get("/signup", h.signupForm)
	router.Post("/signup", h.signup)
	router.Get("/logout", h.logout)
	router.Get("/dashboard", h.dashboard)
	router.Get("/settings", h.settingsForm)
	router.Post("/settings", h.settings)
	router.Get("/api/me", h.me)

	// platform hub
	router.Get("/platform", h.platformDashboard)
	router.Get("/platform/", h.platformDashboard)
	router.Get("/api/platform/health", h.platformHealth)
	router.Get("/api/platform/inventory", h.platformInventory)
	router.Get("/api/platform/workers", h.platformWorkers)
	router.Get("/api/platform/vercel", h.platformVercel)

	// external redirects
	router.Get("/cloudflare", redirect("https://dash.cloudflare.com"))
	router.Get("/vercel", redirect("https://vercel.com"))
	router.Get("/stripe", redirect("https://dashboard.stripe.com"))
	router.Get("/notion", redirect("https://notion.so"))
	router.Get("/salesforce", redirect("https://login.salesforce.com"))
	router.Get("/instagram", redirect("https://instagram.com/blackroad.io"))
	router.Get("/gh/{org}", h.githubOrg)

	router.NotFound(h.notFound)

	return router
}

// redirect answers every request with a 302 to the fixed external location.
func redirect(location string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, location, http.StatusFound)
	}
}

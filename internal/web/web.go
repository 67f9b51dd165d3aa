// Package web renders the hub's HTML: the marketing pages, the auth forms,
// and the platform dashboard. Templates are embedded at build time and
// parsed once on construction; the raw template-library assets served under
// /templates are embedded alongside them.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/blackroad-os/hub/models"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

//go:embed assets
var assetFS embed.FS

// pages rendered inside the shared layout.
var layoutPages = []string{
	"home", "connect", "ecosystem", "github", "domains", "about",
	"notfound", "library",
	"login", "signup", "settings", "dashboard",
}

// standalone documents with their own <html> skeleton.
var standalonePages = []string{"design", "platform"}

// Page is the data envelope every layout template receives. Data carries the
// page-specific payload; User is nil for anonymous visitors.
type Page struct {
	Title       string
	Description string
	Active      string
	User        *models.User
	Data        any
}

// Renderer holds the parsed template set.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses all embedded templates. It panics on a malformed
// template, which only happens when the binary itself is broken.
func NewRenderer() *Renderer {
	templates := make(map[string]*template.Template, len(layoutPages)+len(standalonePages))

	for _, name := range layoutPages {
		templates[name] = template.Must(template.ParseFS(templateFS,
			"templates/layout.gohtml",
			fmt.Sprintf("templates/%s.gohtml", name),
		))
	}
	for _, name := range standalonePages {
		templates[name] = template.Must(template.ParseFS(templateFS,
			fmt.Sprintf("templates/%s.gohtml", name),
		))
	}

	return &Renderer{templates: templates}
}

// Render writes the named page to w.
func (r *Renderer) Render(w io.Writer, name string, page Page) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}

	if err := tmpl.ExecuteTemplate(w, "layout", page); err != nil {
		return fmt.Errorf("rendering %q: %w", name, err)
	}

	return nil
}

// Asset returns one of the raw template-library files served under
// /templates, by its embed path relative to assets/.
func Asset(name string) (string, error) {
	raw, err := assetFS.ReadFile("assets/" + name)
	if err != nil {
		return "", fmt.Errorf("reading asset %q: %w", name, err)
	}
	return string(raw), nil
}

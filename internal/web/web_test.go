package web

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackroad-os/hub/models"
)

func TestNewRenderer_ParsesEveryPage(t *testing.T) {
	r := NewRenderer()

	for _, name := range append(append([]string{}, layoutPages...), standalonePages...) {
		assert.Contains(t, r.templates, name)
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	r := NewRenderer()

	err := r.Render(&strings.Builder{}, "no-such-page", Page{})
	require.Error(t, err)
}

func TestRender_HomeShowsStats(t *testing.T) {
	r := NewRenderer()

	var buf strings.Builder
	err := r.Render(&buf, "home", Page{
		Title:       "The Road Ahead Is Infinite",
		Description: "Browser-native operating system for AI agent orchestration",
		Active:      "home",
		Data: struct{ Stats map[string]string }{Stats: map[string]string{
			"agents": "1,000", "domains": "21", "github_orgs": "16", "repositories": "40+",
		}},
	})
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "The Road Ahead Is Infinite — BlackRoad")
	assert.Contains(t, html, "1,000")
	assert.Contains(t, html, "40+")
	assert.Contains(t, html, `href="/login"`, "anonymous visitors get the sign-in link")
}

func TestRender_LoginEscapesErrorText(t *testing.T) {
	r := NewRenderer()

	var buf strings.Builder
	err := r.Render(&buf, "login", Page{
		Title: "Sign In",
		Data:  struct{ Error, Email string }{Error: "<script>alert(1)</script>", Email: ""},
	})
	require.NoError(t, err)

	html := buf.String()
	assert.NotContains(t, html, "<script>alert(1)")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRender_DashboardShowsUser(t *testing.T) {
	r := NewRenderer()

	name := "Alice"
	var buf strings.Builder
	err := r.Render(&buf, "dashboard", Page{
		Title:  "Dashboard",
		Active: "dashboard",
		User:   &models.User{ID: "u1", Email: "alice@example.com", Name: &name, Role: "user"},
	})
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "alice@example.com")
	assert.Contains(t, html, "Alice")
	assert.Contains(t, html, `href="/dashboard"`, "signed-in visitors get the dashboard nav link")
}

func TestRender_DomainsBadges(t *testing.T) {
	r := NewRenderer()

	var buf strings.Builder
	err := r.Render(&buf, "domains", Page{
		Title: "Domains",
		Data: struct{ Domains []models.Domain }{Domains: []models.Domain{
			{Name: "blackroad.io", Primary: true},
			{Name: "roadchain.io"},
		}},
	})
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "blackroad.io")
	assert.Contains(t, html, "PRIMARY")
	assert.Contains(t, html, "ACTIVE")
}

func TestAsset_KnownAndUnknown(t *testing.T) {
	css, err := Asset("base.css")
	require.NoError(t, err)
	assert.Contains(t, css, "--font-headline")

	layout, err := Asset("layout-base.html")
	require.NoError(t, err)
	assert.Contains(t, layout, "{Title}")
	assert.Contains(t, layout, "{Footer}")

	_, err = Asset("nope.css")
	require.Error(t, err)
}

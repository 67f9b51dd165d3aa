package http

import "net/http"

// securityHeaders are attached to every response. The X-AI-* and
// X-Robots-Tag entries assert the EU DSM Article 4 text-and-data-mining
// reservation for the whole site.
var securityHeaders = map[string]string{
	"X-Content-Type-Options":    "nosniff",
	"X-Frame-Options":           "SAMEORIGIN",
	"X-XSS-Protection":          "1; mode=block",
	"Referrer-Policy":           "strict-origin-when-cross-origin",
	"Permissions-Policy":        "geolocation=(), microphone=(), camera=()",
	"Strict-Transport-Security": "max-age=31536000; includeSubDomains; preload",
	"X-Robots-Tag":              "noai, noimageai",
	"X-AI-Use-Policy":           "no-training, no-indexing, rights-reserved",
	"X-AI-Training":             "disallow",
}

var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type, Authorization",
}

func (h *Handler) withSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		for k, v := range securityHeaders {
			header.Set(k, v)
		}
		for k, v := range corsHeaders {
			header.Set(k, v)
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

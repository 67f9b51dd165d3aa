// Package http implements the HTTP transport layer of the hub: middleware,
// page and API handlers, and the route table. Identity resolution, logging,
// tracing, and the security headers are all applied at this layer before
// requests reach the service layer.
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/blackroad-os/hub/internal/logger"
	"github.com/blackroad-os/hub/internal/service"
	"github.com/blackroad-os/hub/internal/utils"
)

// sessionCookieName is the cookie carrying the opaque session token.
const sessionCookieName = "session"

// withSession resolves the session cookie into a user and stores the result
// in the request context. It never rejects a request: a missing cookie, an
// unknown or expired token, and even a storage failure all continue as
// anonymous. Storage failures are logged loudly since they silently sign
// everyone out.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Resolve(ctx, cookie.Value)
		if err != nil {
			if !errors.Is(err, service.ErrNoSession) {
				log.Err(err).Msg("session lookup failed, continuing as anonymous")
			}
			next.ServeHTTP(w, r)
			return
		}

		ctx = context.WithValue(ctx, utils.UserCtxKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

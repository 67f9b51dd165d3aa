// Package utils contains small cross-cutting helpers shared between the
// transport and service layers: type-safe context keys and JSON response
// writing.
package utils

import (
	"context"

	"github.com/blackroad-os/hub/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key under which the auth middleware stores the resolved
// user record. Absent for anonymous requests.
var UserCtxKey = contextKey("user")

// GetUserFromContext retrieves the resolved user stored by the auth
// middleware.
//
// Returns the user and an ok flag:
//   - ok == true  — the request carries an authenticated user
//   - ok == false — the request is anonymous
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}

package middleware

import (
	"net/http"

	"github.com/scribehq/scribe/internal/domain"
)

// RequireRole returns middleware that checks if the authenticated caller holds
// one of the allowed roles. It must be chained after Auth, which stores the
// caller's identity in the request context.
//
// Returns 401 Unauthorized when no identity is found in context (Auth not
// applied or authentication failed). Returns 403 Forbidden when the caller's
// role does not match any of the allowed roles.
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			if !ok || id.Role == "" {
				unauthorized(w, "authentication required")
				return
			}

			if _, match := allowed[id.Role]; !match {
				http.Error(w, `{"title":"Forbidden","status":403,"detail":"insufficient permissions"}`, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience wrapper for RequireRole(domain.RoleAdmin).
func RequireAdmin() func(http.Handler) http.Handler {
	return RequireRole(domain.RoleAdmin)
}

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/scribehq/scribe/internal/auth"
)

// Auth decodes the bearer token once per request and injects the typed
// identity context used by everything downstream. Missing, malformed, or
// expired tokens are rejected with 401 before any handler runs; the gate
// itself never touches the store.
func Auth(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := extractBearer(r)
			if tok == "" {
				unauthorized(w, "missing bearer token")
				return
			}

			claims, err := auth.DecodeToken(jwtSecret, tok)
			if err != nil {
				if errors.Is(err, auth.ErrExpiredToken) {
					log.Debug().Str("path", r.URL.Path).Msg("auth: expired token")
				}
				unauthorized(w, "invalid or expired token")
				return
			}

			userID, tenantID, err := claims.SubjectIDs()
			if err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}

			ctx := WithIdentity(r.Context(), Identity{
				UserID:     userID,
				TenantID:   tenantID,
				Role:       claims.Role,
				TenantName: claims.TenantName,
				TenantSlug: claims.TenantSlug,
				TenantPlan: claims.TenantPlan,
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearer(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return header[7:]
	}
	return ""
}

func unauthorized(w http.ResponseWriter, detail string) {
	http.Error(w, `{"title":"Unauthorized","status":401,"detail":"`+detail+`"}`, http.StatusUnauthorized)
}

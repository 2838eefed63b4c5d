package middleware

import (
	"context"

	"github.com/google/uuid"

	"github.com/scribehq/scribe/internal/domain"
)

type contextKey string

// ContextKeyIdentity carries the decoded identity of the authenticated caller.
const ContextKeyIdentity contextKey = "identity"

// Identity is the request-scoped claim set describing the authenticated
// caller. TenantName, TenantSlug, and TenantPlan are snapshots from token
// issue time; plan-dependent decisions must re-read the store instead.
type Identity struct {
	UserID     uuid.UUID
	TenantID   uuid.UUID
	Role       domain.Role
	TenantName string
	TenantSlug string
	TenantPlan domain.Plan
}

// WithIdentity returns a context carrying the given identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ContextKeyIdentity, id)
}

// IdentityFromContext extracts the authenticated caller's identity.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	v, ok := ctx.Value(ContextKeyIdentity).(Identity)
	return v, ok
}

package v1

import (
	"context"

	"github.com/google/uuid"

	"github.com/scribehq/scribe/internal/domain"
)

// DataStore abstracts the repository accessor pattern for handler testing.
// *postgres.Store satisfies this interface.
type DataStore interface {
	Tenants() domain.TenantRepository
	Users() domain.UserRepository
	Notes() domain.NoteRepository
}

// AuthService abstracts authentication and provisioning operations for
// handler testing. *auth.Service satisfies this interface.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Signup(ctx context.Context, email, password, companyName string) (string, error)
	Invite(ctx context.Context, tenantID uuid.UUID, email string, role domain.Role) (*domain.User, string, error)
}

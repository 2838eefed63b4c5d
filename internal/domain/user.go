package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Role is the permission level a user holds within their tenant.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

// Valid reports whether r is a known role value.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

type User struct {
	ID           uuid.UUID `json:"id"`
	TenantID     uuid.UUID `json:"tenant_id"` // immutable after creation
	Email        string    `json:"email"`     // unique across all tenants, exact match
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	// GetByEmail looks up a user by exact email match. Email uniqueness is
	// global, so no tenant filter applies here.
	GetByEmail(ctx context.Context, email string) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

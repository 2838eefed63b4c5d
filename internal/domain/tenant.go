package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Plan is the billing tier attached to a tenant.
type Plan string

const (
	PlanFree Plan = "FREE"
	PlanPro  Plan = "PRO"
)

// FreePlanNoteLimit is the maximum number of notes a FREE tenant may hold.
const FreePlanNoteLimit = 3

// Valid reports whether p is a known plan value.
func (p Plan) Valid() bool {
	return p == PlanFree || p == PlanPro
}

// Unlimited reports whether the plan lifts the note quota entirely.
func (p Plan) Unlimited() bool {
	return p == PlanPro
}

type Tenant struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"` // immutable once assigned, unique across all tenants
	Plan      Plan      `json:"plan"`
	CreatedAt time.Time `json:"created_at"`
}

type TenantRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*Tenant, error)
	// SetPlan updates the tenant's plan and returns the updated row.
	// Setting a plan the tenant already has succeeds and is a no-op in effect.
	SetPlan(ctx context.Context, slug string, plan Plan) (*Tenant, error)
}

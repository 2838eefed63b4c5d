package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Note belongs to a tenant, not to its creator: any user in the owning tenant
// may read, update, or delete it. The creator is recorded but never used for
// access control.
type Note struct {
	ID        uuid.UUID `json:"id"`
	TenantID  uuid.UUID `json:"tenant_id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type NoteRepository interface {
	// CreateWithinQuota inserts the note only if the owning tenant's current
	// plan admits another note. The plan read, note count, and insert run in
	// one serializable transaction so the limit holds under concurrent
	// creations. Returns ErrQuotaExceeded when a FREE tenant is at the limit.
	CreateWithinQuota(ctx context.Context, n *Note, freeLimit int) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*Note, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]*Note, error)
	// Update applies a partial update: nil fields keep their stored value.
	Update(ctx context.Context, tenantID, id uuid.UUID, title, content *string) (*Note, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

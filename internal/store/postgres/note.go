package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scribehq/scribe/internal/domain"
)

type NoteRepo struct {
	pool *pgxpool.Pool
}

func NewNoteRepo(pool *pgxpool.Pool) *NoteRepo {
	return &NoteRepo{pool: pool}
}

// CreateWithinQuota reads the tenant's current plan and note count and inserts
// the note in one serializable transaction, so two concurrent creations can
// never both slip under the limit. The plan comes from the store, never from
// the caller's token, so a just-upgraded tenant is admitted immediately.
// Serialization failures are not retried here; they surface to the caller.
func (r *NoteRepo) CreateWithinQuota(ctx context.Context, n *domain.Note, freeLimit int) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("noteRepo.CreateWithinQuota: begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	var plan domain.Plan
	err = tx.QueryRow(ctx,
		`SELECT plan FROM tenants WHERE id = $1`,
		n.TenantID,
	).Scan(&plan)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("noteRepo.CreateWithinQuota: tenant: %w", domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("noteRepo.CreateWithinQuota: plan: %w", err)
	}

	if !plan.Unlimited() {
		var count int64
		err = tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM notes WHERE tenant_id = $1`,
			n.TenantID,
		).Scan(&count)
		if err != nil {
			return fmt.Errorf("noteRepo.CreateWithinQuota: count: %w", err)
		}

		if count >= int64(freeLimit) {
			return fmt.Errorf("noteRepo.CreateWithinQuota: %w", domain.ErrQuotaExceeded)
		}
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO notes (id, tenant_id, user_id, title, content, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		n.ID, n.TenantID, n.UserID, n.Title, n.Content, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("noteRepo.CreateWithinQuota: insert: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("noteRepo.CreateWithinQuota: commit: %w", err)
	}

	return nil
}

func (r *NoteRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Note, error) {
	var n domain.Note

	err := r.pool.QueryRow(ctx,
		`SELECT id, tenant_id, user_id, title, content, created_at
		 FROM notes WHERE tenant_id = $1 AND id = $2`,
		tenantID, id,
	).Scan(&n.ID, &n.TenantID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("noteRepo.GetByID: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("noteRepo.GetByID: %w", err)
	}

	return &n, nil
}

func (r *NoteRepo) List(ctx context.Context, tenantID uuid.UUID) ([]*domain.Note, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, tenant_id, user_id, title, content, created_at
		 FROM notes WHERE tenant_id = $1 ORDER BY created_at DESC`,
		tenantID,
	)
	if err != nil {
		return nil, fmt.Errorf("noteRepo.List: %w", err)
	}
	defer rows.Close()

	var notes []*domain.Note
	for rows.Next() {
		var n domain.Note

		err = rows.Scan(&n.ID, &n.TenantID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("noteRepo.List: scan: %w", err)
		}

		notes = append(notes, &n)
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("noteRepo.List: rows: %w", err)
	}

	return notes, nil
}

// Update applies a partial update via COALESCE: nil fields keep their stored
// value. The row is matched by tenant and id only, never by the creator.
func (r *NoteRepo) Update(ctx context.Context, tenantID, id uuid.UUID, title, content *string) (*domain.Note, error) {
	var n domain.Note

	err := r.pool.QueryRow(ctx,
		`UPDATE notes SET title = COALESCE($1, title), content = COALESCE($2, content)
		 WHERE tenant_id = $3 AND id = $4
		 RETURNING id, tenant_id, user_id, title, content, created_at`,
		title, content, tenantID, id,
	).Scan(&n.ID, &n.TenantID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("noteRepo.Update: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("noteRepo.Update: %w", err)
	}

	return &n, nil
}

func (r *NoteRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM notes WHERE tenant_id = $1 AND id = $2`,
		tenantID, id,
	)
	if err != nil {
		return fmt.Errorf("noteRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("noteRepo.Delete: %w", domain.ErrNotFound)
	}

	return nil
}

func (r *NoteRepo) CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64

	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM notes WHERE tenant_id = $1`,
		tenantID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("noteRepo.CountByTenant: %w", err)
	}

	return count, nil
}

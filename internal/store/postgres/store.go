package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scribehq/scribe/internal/domain"
)

// Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

type Store struct {
	pool    *pgxpool.Pool
	tenants *TenantRepo
	users   *UserRepo
	notes   *NoteRepo
}

func New(ctx context.Context, dsn string, maxConns int32) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres.New: parse config: %w", err)
	}

	cfg.MaxConns = maxConns

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("postgres.New: connect: %w", err)
	}

	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres.New: ping: %w", err)
	}

	return &Store{
		pool:    pool,
		tenants: NewTenantRepo(pool),
		users:   NewUserRepo(pool),
		notes:   NewNoteRepo(pool),
	}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) Tenants() domain.TenantRepository { return s.tenants }
func (s *Store) Users() domain.UserRepository     { return s.users }
func (s *Store) Notes() domain.NoteRepository     { return s.notes }

// ProvisionTenant creates a tenant and its first admin user in one
// transaction: the tenant must not exist without its admin, and vice versa.
func (s *Store) ProvisionTenant(ctx context.Context, t *domain.Tenant, admin *domain.User) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("store.ProvisionTenant: begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	_, err = tx.Exec(ctx,
		`INSERT INTO tenants (id, name, slug, plan, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		t.ID, t.Name, t.Slug, t.Plan, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("store.ProvisionTenant: insert tenant: %w", mapUniqueViolation(err))
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO users (id, tenant_id, email, password, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		admin.ID, admin.TenantID, admin.Email, admin.PasswordHash, admin.Role, admin.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("store.ProvisionTenant: insert admin: %w", mapEmailViolation(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("store.ProvisionTenant: commit: %w", err)
	}

	return nil
}

// mapUniqueViolation converts a Postgres unique violation to the domain
// conflict sentinel.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.ConstraintName)
	}
	return err
}

// mapEmailViolation converts a unique violation on the users.email constraint
// to ErrEmailTaken. A concurrent signup racing the pre-insert existence check
// surfaces here.
func mapEmailViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.ErrEmailTaken
	}
	return err
}

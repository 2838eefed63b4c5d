package v1_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/scribehq/scribe/internal/domain"
	"github.com/scribehq/scribe/internal/server/middleware"
)

// ---------------------------------------------------------------------------
// Context helpers — inject caller identity into context for *Ctx requests
// ---------------------------------------------------------------------------

func identityCtx(tenantID uuid.UUID, role domain.Role) context.Context {
	return middleware.WithIdentity(context.Background(), middleware.Identity{
		UserID:     uuid.New(),
		TenantID:   tenantID,
		Role:       role,
		TenantName: "Acme Inc.",
		TenantSlug: "acme",
		TenantPlan: domain.PlanFree,
	})
}

func memberCtx(tenantID uuid.UUID) context.Context {
	return identityCtx(tenantID, domain.RoleMember)
}

func adminCtx(tenantID uuid.UUID) context.Context {
	return identityCtx(tenantID, domain.RoleAdmin)
}

// ---------------------------------------------------------------------------
// Mock DataStore
// ---------------------------------------------------------------------------

type mockDataStore struct {
	tenants domain.TenantRepository
	users   domain.UserRepository
	notes   domain.NoteRepository
}

func (m *mockDataStore) Tenants() domain.TenantRepository { return m.tenants }
func (m *mockDataStore) Users() domain.UserRepository     { return m.users }
func (m *mockDataStore) Notes() domain.NoteRepository     { return m.notes }

// ---------------------------------------------------------------------------
// Mock TenantRepository
// ---------------------------------------------------------------------------

type mockTenantRepo struct {
	getByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	getBySlugFunc func(ctx context.Context, slug string) (*domain.Tenant, error)
	setPlanFunc   func(ctx context.Context, slug string, plan domain.Plan) (*domain.Tenant, error)
}

func (m *mockTenantRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockTenantRepo) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	return m.getBySlugFunc(ctx, slug)
}

func (m *mockTenantRepo) SetPlan(ctx context.Context, slug string, plan domain.Plan) (*domain.Tenant, error) {
	return m.setPlanFunc(ctx, slug, plan)
}

// ---------------------------------------------------------------------------
// Mock UserRepository
// ---------------------------------------------------------------------------

type mockUserRepo struct {
	createFunc      func(ctx context.Context, u *domain.User) error
	getByEmailFunc  func(ctx context.Context, email string) (*domain.User, error)
	emailExistsFunc func(ctx context.Context, email string) (bool, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	return m.createFunc(ctx, u)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.getByEmailFunc(ctx, email)
}

func (m *mockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return m.emailExistsFunc(ctx, email)
}

// ---------------------------------------------------------------------------
// Mock NoteRepository
// ---------------------------------------------------------------------------

type mockNoteRepo struct {
	createWithinQuotaFunc func(ctx context.Context, n *domain.Note, freeLimit int) error
	getByIDFunc           func(ctx context.Context, tenantID, id uuid.UUID) (*domain.Note, error)
	listFunc              func(ctx context.Context, tenantID uuid.UUID) ([]*domain.Note, error)
	updateFunc            func(ctx context.Context, tenantID, id uuid.UUID, title, content *string) (*domain.Note, error)
	deleteFunc            func(ctx context.Context, tenantID, id uuid.UUID) error
	countByTenantFunc     func(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

func (m *mockNoteRepo) CreateWithinQuota(ctx context.Context, n *domain.Note, freeLimit int) error {
	return m.createWithinQuotaFunc(ctx, n, freeLimit)
}

func (m *mockNoteRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Note, error) {
	return m.getByIDFunc(ctx, tenantID, id)
}

func (m *mockNoteRepo) List(ctx context.Context, tenantID uuid.UUID) ([]*domain.Note, error) {
	return m.listFunc(ctx, tenantID)
}

func (m *mockNoteRepo) Update(ctx context.Context, tenantID, id uuid.UUID, title, content *string) (*domain.Note, error) {
	return m.updateFunc(ctx, tenantID, id, title, content)
}

func (m *mockNoteRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return m.deleteFunc(ctx, tenantID, id)
}

func (m *mockNoteRepo) CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	return m.countByTenantFunc(ctx, tenantID)
}

// ---------------------------------------------------------------------------
// Mock AuthService
// ---------------------------------------------------------------------------

type mockAuthService struct {
	loginFunc  func(ctx context.Context, email, password string) (string, error)
	signupFunc func(ctx context.Context, email, password, companyName string) (string, error)
	inviteFunc func(ctx context.Context, tenantID uuid.UUID, email string, role domain.Role) (*domain.User, string, error)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return m.loginFunc(ctx, email, password)
}

func (m *mockAuthService) Signup(ctx context.Context, email, password, companyName string) (string, error) {
	return m.signupFunc(ctx, email, password, companyName)
}

func (m *mockAuthService) Invite(ctx context.Context, tenantID uuid.UUID, email string, role domain.Role) (*domain.User, string, error) {
	return m.inviteFunc(ctx, tenantID, email, role)
}

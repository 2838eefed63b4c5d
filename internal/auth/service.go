package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/scribehq/scribe/internal/domain"
)

// ErrInvalidCredentials is returned for every login failure. Unknown email and
// wrong password produce the same error so callers cannot enumerate accounts.
var ErrInvalidCredentials = errors.New("auth: invalid email or password")

// TenantProvisioner creates a tenant together with its first admin user as a
// single atomic unit. *postgres.Store satisfies this interface.
type TenantProvisioner interface {
	ProvisionTenant(ctx context.Context, t *domain.Tenant, admin *domain.User) error
}

// Service provides authentication and tenant provisioning operations.
type Service struct {
	users       domain.UserRepository
	tenants     domain.TenantRepository
	provisioner TenantProvisioner
	jwtSecret   string
	tokenTTL    time.Duration
}

// NewService creates a new auth service.
func NewService(users domain.UserRepository, tenants domain.TenantRepository, provisioner TenantProvisioner, jwtSecret string, tokenTTL time.Duration) *Service {
	return &Service{
		users:       users,
		tenants:     tenants,
		provisioner: provisioner,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
	}
}

// Login validates email/password and returns a signed identity token. The
// token embeds the user's current role and the tenant's current name, slug,
// and plan as read at login time.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("auth.Login: %w", ErrInvalidCredentials)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", fmt.Errorf("auth.Login: %w", ErrInvalidCredentials)
	}

	tenant, err := s.tenants.GetByID(ctx, user.TenantID)
	if err != nil {
		return "", fmt.Errorf("auth.Login: tenant lookup: %w", err)
	}

	token, err := IssueToken(s.jwtSecret, user, tenant, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("auth.Login: %w", err)
	}

	return token, nil
}

// Signup creates a new tenant on the FREE plan with the caller as its ADMIN,
// atomically: the tenant never exists without its admin and vice versa.
// Returns a signed identity token for the new admin.
func (s *Service) Signup(ctx context.Context, email, password, companyName string) (string, error) {
	taken, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return "", fmt.Errorf("auth.Signup: %w", err)
	}
	if taken {
		return "", fmt.Errorf("auth.Signup: %w", domain.ErrEmailTaken)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("auth.Signup: %w", err)
	}

	now := time.Now()
	tenant := &domain.Tenant{
		ID:        uuid.New(),
		Name:      companyName,
		Slug:      uniqueSlug(companyName, now),
		Plan:      domain.PlanFree,
		CreatedAt: now,
	}
	admin := &domain.User{
		ID:           uuid.New(),
		TenantID:     tenant.ID,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
	}

	if err := s.provisioner.ProvisionTenant(ctx, tenant, admin); err != nil {
		return "", fmt.Errorf("auth.Signup: %w", err)
	}

	token, err := IssueToken(s.jwtSecret, admin, tenant, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("auth.Signup: %w", err)
	}

	return token, nil
}

// Invite creates a user in the inviter's tenant with a random temporary
// password, returned exactly once for out-of-band delivery. Role gating is the
// caller's responsibility.
func (s *Service) Invite(ctx context.Context, tenantID uuid.UUID, email string, role domain.Role) (*domain.User, string, error) {
	taken, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("auth.Invite: %w", err)
	}
	if taken {
		return nil, "", fmt.Errorf("auth.Invite: %w", domain.ErrEmailTaken)
	}

	tempPassword, err := randomPassword()
	if err != nil {
		return nil, "", fmt.Errorf("auth.Invite: %w", err)
	}

	hash, err := HashPassword(tempPassword)
	if err != nil {
		return nil, "", fmt.Errorf("auth.Invite: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		TenantID:     tenantID,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("auth.Invite: %w", err)
	}

	return user, tempPassword, nil
}

// HashPassword hashes a password with bcrypt at the default cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// randomPassword generates a temporary credential for invited users. Invited
// accounts never start with a known constant.
func randomPassword() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating temporary password: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

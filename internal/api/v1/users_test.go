package v1_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/scribehq/scribe/internal/api/v1"
	"github.com/scribehq/scribe/internal/domain"
)

// ---------------------------------------------------------------------------
// TestSignup
// ---------------------------------------------------------------------------

func TestSignup(t *testing.T) {
	t.Parallel()

	t.Run("happy_path", func(t *testing.T) {
		t.Parallel()

		var signupCalled bool
		_, api := humatest.New(t)
		svc := &mockAuthService{
			signupFunc: func(_ context.Context, email, password, companyName string) (string, error) {
				signupCalled = true
				assert.Equal(t, "founder@initech.test", email)
				assert.Equal(t, "hunter22", password)
				assert.Equal(t, "Initech", companyName)
				return "signed.jwt.token", nil
			},
		}
		v1.RegisterSignupRoutes(api, svc)

		resp := api.Post("/users/signup", map[string]any{
			"email":       "founder@initech.test",
			"password":    "hunter22",
			"companyName": "Initech",
		})

		require.Equal(t, http.StatusCreated, resp.Code)
		assert.True(t, signupCalled, "AuthService.Signup must be invoked")

		var body struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "signed.jwt.token", body.Token)
	})

	t.Run("email_taken", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		svc := &mockAuthService{
			signupFunc: func(_ context.Context, _, _, _ string) (string, error) {
				return "", domain.ErrEmailTaken
			},
		}
		v1.RegisterSignupRoutes(api, svc)

		resp := api.Post("/users/signup", map[string]any{
			"email":       "admin@acme.test",
			"password":    "hunter22",
			"companyName": "Acme Clone",
		})

		assert.Equal(t, http.StatusConflict, resp.Code)

		var errBody map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
		assert.Equal(t, "A user with this email already exists.", errBody["detail"])
	})

	t.Run("provisioning_error", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		svc := &mockAuthService{
			signupFunc: func(_ context.Context, _, _, _ string) (string, error) {
				return "", errors.New("tx aborted")
			},
		}
		v1.RegisterSignupRoutes(api, svc)

		resp := api.Post("/users/signup", map[string]any{
			"email":       "founder@initech.test",
			"password":    "hunter22",
			"companyName": "Initech",
		})

		assert.Equal(t, http.StatusInternalServerError, resp.Code)
	})
}

// ---------------------------------------------------------------------------
// TestInviteUser
// ---------------------------------------------------------------------------

func TestInviteUser(t *testing.T) {
	t.Parallel()

	tenantID := uuid.New()

	t.Run("admin_invites_member", func(t *testing.T) {
		t.Parallel()

		var inviteCalled bool
		_, api := humatest.New(t)
		svc := &mockAuthService{
			inviteFunc: func(_ context.Context, tid uuid.UUID, email string, role domain.Role) (*domain.User, string, error) {
				inviteCalled = true
				assert.Equal(t, tenantID, tid, "invite must target the caller's own tenant")
				assert.Equal(t, "newhire@acme.test", email)
				assert.Equal(t, domain.RoleMember, role)
				return &domain.User{
					ID:       uuid.New(),
					TenantID: tid,
					Email:    email,
					Role:     role,
				}, "a1b2c3d4e5f60718a1b2c3d4e5f60718", nil
			},
		}
		v1.RegisterInviteRoutes(api, svc)

		resp := api.PostCtx(adminCtx(tenantID), "/users/invite", map[string]any{
			"email": "newhire@acme.test",
			"role":  "MEMBER",
		})

		require.Equal(t, http.StatusCreated, resp.Code)
		assert.True(t, inviteCalled, "AuthService.Invite must be invoked")

		var body struct {
			Message      string       `json:"message"`
			User         *domain.User `json:"user"`
			TempPassword string       `json:"temp_password"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "User invited successfully!", body.Message)
		require.NotNil(t, body.User)
		assert.Equal(t, "newhire@acme.test", body.User.Email)
		assert.Equal(t, domain.RoleMember, body.User.Role)
		assert.NotEmpty(t, body.TempPassword)
	})

	t.Run("member_forbidden", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		svc := &mockAuthService{
			inviteFunc: func(_ context.Context, _ uuid.UUID, _ string, _ domain.Role) (*domain.User, string, error) {
				t.Fatal("Invite must not be called for a member")
				return nil, "", nil
			},
		}
		v1.RegisterInviteRoutes(api, svc)

		resp := api.PostCtx(memberCtx(tenantID), "/users/invite", map[string]any{
			"email": "newhire@acme.test",
			"role":  "MEMBER",
		})

		assert.Equal(t, http.StatusForbidden, resp.Code)

		var errBody map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
		assert.Equal(t, "Forbidden: Admins only.", errBody["detail"])
	})

	t.Run("no_identity_unauthorized", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		svc := &mockAuthService{
			inviteFunc: func(_ context.Context, _ uuid.UUID, _ string, _ domain.Role) (*domain.User, string, error) {
				t.Fatal("Invite must not be called without identity")
				return nil, "", nil
			},
		}
		v1.RegisterInviteRoutes(api, svc)

		resp := api.PostCtx(context.Background(), "/users/invite", map[string]any{
			"email": "newhire@acme.test",
			"role":  "MEMBER",
		})

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("email_taken", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		svc := &mockAuthService{
			inviteFunc: func(_ context.Context, _ uuid.UUID, _ string, _ domain.Role) (*domain.User, string, error) {
				return nil, "", domain.ErrEmailTaken
			},
		}
		v1.RegisterInviteRoutes(api, svc)

		resp := api.PostCtx(adminCtx(tenantID), "/users/invite", map[string]any{
			"email": "admin@acme.test",
			"role":  "ADMIN",
		})

		assert.Equal(t, http.StatusConflict, resp.Code)
	})

	t.Run("invalid_role_rejected", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		svc := &mockAuthService{
			inviteFunc: func(_ context.Context, _ uuid.UUID, _ string, _ domain.Role) (*domain.User, string, error) {
				t.Fatal("Invite must not be called for an unknown role")
				return nil, "", nil
			},
		}
		v1.RegisterInviteRoutes(api, svc)

		resp := api.PostCtx(adminCtx(tenantID), "/users/invite", map[string]any{
			"email": "newhire@acme.test",
			"role":  "SUPERUSER",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})
}

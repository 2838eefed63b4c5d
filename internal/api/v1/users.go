package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/scribehq/scribe/internal/domain"
	"github.com/scribehq/scribe/internal/server/middleware"
)

type SignupInput struct {
	Body struct {
		Email       string `json:"email" format:"email" maxLength:"255" doc:"Admin email"`
		Password    string `json:"password" minLength:"6" maxLength:"128" doc:"Password (at least 6 characters)"` //nolint:gosec // G117: signup credential DTO
		CompanyName string `json:"companyName" minLength:"2" maxLength:"255" doc:"Company name"`
	}
}

type SignupOutput struct {
	Body struct {
		Token string `json:"token"` //nolint:gosec // G117: auth response DTO
	}
}

type InviteInput struct {
	Body struct {
		Email string      `json:"email" format:"email" maxLength:"255" doc:"Invitee email"`
		Role  domain.Role `json:"role" enum:"ADMIN,MEMBER" doc:"Role within the inviter's tenant"`
	}
}

type InviteOutput struct {
	Body struct {
		Message string       `json:"message"`
		User    *domain.User `json:"user"`
		// TempPassword is returned exactly once for out-of-band delivery to
		// the invitee. It is never stored in the clear.
		TempPassword string `json:"temp_password"` //nolint:gosec // G117: one-time invite credential DTO
	}
}

// RegisterSignupRoutes registers the unauthenticated signup endpoint.
func RegisterSignupRoutes(api huma.API, authSvc AuthService) {
	huma.Register(api, huma.Operation{
		OperationID:   "signup",
		Method:        http.MethodPost,
		Path:          "/users/signup",
		Summary:       "Create a new tenant with its first admin user",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *SignupInput) (*SignupOutput, error) {
		token, err := authSvc.Signup(ctx, input.Body.Email, input.Body.Password, input.Body.CompanyName)
		if err != nil {
			if errors.Is(err, domain.ErrEmailTaken) {
				return nil, huma.Error409Conflict("A user with this email already exists.")
			}
			return nil, huma.Error500InternalServerError("signup failed", err)
		}

		out := &SignupOutput{}
		out.Body.Token = token
		return out, nil
	})
}

// RegisterInviteRoutes registers the admin-only invite endpoint.
func RegisterInviteRoutes(api huma.API, authSvc AuthService) {
	huma.Register(api, huma.Operation{
		OperationID:   "invite-user",
		Method:        http.MethodPost,
		Path:          "/users/invite",
		Summary:       "Invite a user into the caller's tenant",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *InviteInput) (*InviteOutput, error) {
		id, ok := middleware.IdentityFromContext(ctx)
		if !ok {
			return nil, huma.Error401Unauthorized("authentication required")
		}
		if id.Role != domain.RoleAdmin {
			return nil, huma.Error403Forbidden("Forbidden: Admins only.")
		}

		user, tempPassword, err := authSvc.Invite(ctx, id.TenantID, input.Body.Email, input.Body.Role)
		if err != nil {
			if errors.Is(err, domain.ErrEmailTaken) {
				return nil, huma.Error409Conflict("A user with this email already exists.")
			}
			return nil, huma.Error500InternalServerError("invite failed", err)
		}

		out := &InviteOutput{}
		out.Body.Message = "User invited successfully!"
		out.Body.User = user
		out.Body.TempPassword = tempPassword
		return out, nil
	})
}

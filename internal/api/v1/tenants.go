package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/scribehq/scribe/internal/domain"
	"github.com/scribehq/scribe/internal/server/middleware"
)

type UpgradeTenantInput struct {
	Slug string `path:"slug" maxLength:"255" doc:"Tenant slug"`
}

type UpgradeTenantOutput struct {
	Body struct {
		Message string         `json:"message"`
		Tenant  *domain.Tenant `json:"tenant"`
	}
}

// RegisterTenantRoutes registers the plan upgrade endpoint. An admin may
// upgrade only their own tenant: the slug in the path must resolve to the
// tenant id in the caller's identity context.
func RegisterTenantRoutes(api huma.API, store DataStore) {
	huma.Register(api, huma.Operation{
		OperationID: "upgrade-tenant",
		Method:      http.MethodPost,
		Path:        "/tenants/{slug}/upgrade",
		Summary:     "Upgrade a tenant to the PRO plan",
		Tags:        []string{"Tenants"},
	}, func(ctx context.Context, input *UpgradeTenantInput) (*UpgradeTenantOutput, error) {
		id, ok := middleware.IdentityFromContext(ctx)
		if !ok {
			return nil, huma.Error401Unauthorized("authentication required")
		}
		if id.Role != domain.RoleAdmin {
			return nil, huma.Error403Forbidden("Forbidden: Only admins can perform this action.")
		}

		tenant, err := store.Tenants().GetBySlug(ctx, input.Slug)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("Tenant not found")
			}
			return nil, huma.Error500InternalServerError("failed to look up tenant", err)
		}

		if tenant.ID != id.TenantID {
			return nil, huma.Error403Forbidden("Forbidden: You cannot upgrade another tenant.")
		}

		// Unconditional set: upgrading an already-PRO tenant succeeds and is
		// a no-op in effect.
		upgraded, err := store.Tenants().SetPlan(ctx, input.Slug, domain.PlanPro)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("Tenant not found")
			}
			return nil, huma.Error500InternalServerError("failed to upgrade tenant", err)
		}

		out := &UpgradeTenantOutput{}
		out.Body.Message = "Upgrade successful!"
		out.Body.Tenant = upgraded
		return out, nil
	})
}

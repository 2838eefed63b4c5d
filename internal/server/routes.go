package server

import (
	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/scribehq/scribe/internal/api/v1"
	"github.com/scribehq/scribe/internal/auth"
	"github.com/scribehq/scribe/internal/store/postgres"
)

func registerPublicRoutes(api huma.API, authSvc *auth.Service) {
	v1.RegisterAuthRoutes(api, authSvc)
	v1.RegisterSignupRoutes(api, authSvc)
}

func registerNoteRoutes(api huma.API, store *postgres.Store) {
	v1.RegisterNoteRoutes(api, store)
}

func registerAdminRoutes(api huma.API, store *postgres.Store, authSvc *auth.Service) {
	v1.RegisterInviteRoutes(api, authSvc)
	v1.RegisterTenantRoutes(api, store)
}

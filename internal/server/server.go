package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/scribehq/scribe/internal/auth"
	"github.com/scribehq/scribe/internal/config"
	"github.com/scribehq/scribe/internal/server/middleware"
	"github.com/scribehq/scribe/internal/store/postgres"
)

// Server is the HTTP server that wires all application routes and middleware.
type Server struct {
	router     chi.Router
	httpServer *http.Server
	store      *postgres.Store
	auth       *auth.Service
	cfg        *config.Config
}

// New creates a Server with all routes wired. Three route groups hang off the
// root router: public (login/signup), authenticated (notes), and admin
// (invite, plan upgrade). The authorization guard runs once per request on
// the latter two; role gating stacks on top for the admin group.
func New(ctx context.Context, cfg *config.Config, store *postgres.Store, authSvc *auth.Service) *Server {
	router := chi.NewRouter()

	// Global middleware stack.
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(chimw.Logger)
	router.Use(chimw.Recoverer)
	router.Use(middleware.Metrics)
	router.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler)

	s := &Server{
		router: router,
		store:  store,
		auth:   authSvc,
		cfg:    cfg,
		httpServer: &http.Server{
			Addr:         cfg.Server.Addr,
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}

	// Unauthenticated credential routes, rate limited per IP against
	// brute-force attempts.
	router.Group(func(r chi.Router) {
		r.Use(middleware.RateLimitByIP(ctx, 5, 10))

		api := humachi.New(r, humaConfig("Scribe Auth API"))
		registerPublicRoutes(api, authSvc)
	})

	// Authenticated routes: the guard decodes the bearer token once and
	// injects the identity context everything downstream reads.
	router.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT.Secret))
		r.Use(middleware.RateLimit(ctx, 100, 200))

		api := humachi.New(r, humaConfig("Scribe API"))
		registerNoteRoutes(api, store)
	})

	// Admin-only routes.
	router.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT.Secret))
		r.Use(middleware.RequireAdmin())
		r.Use(middleware.RateLimit(ctx, 100, 200))

		api := humachi.New(r, humaConfig("Scribe Admin API"))
		registerAdminRoutes(api, store, authSvc)
	})

	// Health check (unauthenticated).
	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Prometheus metrics (unauthenticated; bind behind the ingress in prod).
	router.Handle("/metrics", promhttp.Handler())

	return s
}

func humaConfig(title string) huma.Config {
	cfg := huma.DefaultConfig(title, "1.0.0")
	cfg.Servers = []*huma.Server{{URL: "/"}}
	return cfg
}

// Start begins listening for HTTP requests.
func (s *Server) Start(_ context.Context) error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server.Start: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

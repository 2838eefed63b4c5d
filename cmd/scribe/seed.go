package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/scribehq/scribe/internal/auth"
	"github.com/scribehq/scribe/internal/domain"
	"github.com/scribehq/scribe/internal/store/postgres"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load development fixtures (wipes existing data)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			_, store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			return seed(ctx, store)
		},
	}
}

// seed loads two FREE tenants with an admin and a member each, all with the
// password "password", plus a couple of notes per tenant. Development fixtures
// only.
func seed(ctx context.Context, store *postgres.Store) error {
	if err := store.Migrate(ctx); err != nil {
		return err
	}
	if err := store.Reset(ctx); err != nil {
		return err
	}

	hash, err := auth.HashPassword("password")
	if err != nil {
		return err
	}

	tenants := []struct {
		name string
		slug string
	}{
		{"Acme Inc.", "acme"},
		{"Globex Corporation", "globex"},
	}

	for _, t := range tenants {
		now := time.Now()
		tenant := &domain.Tenant{
			ID:        uuid.New(),
			Name:      t.name,
			Slug:      t.slug,
			Plan:      domain.PlanFree,
			CreatedAt: now,
		}
		admin := &domain.User{
			ID:           uuid.New(),
			TenantID:     tenant.ID,
			Email:        "admin@" + t.slug + ".test",
			PasswordHash: hash,
			Role:         domain.RoleAdmin,
			CreatedAt:    now,
		}

		if err := store.ProvisionTenant(ctx, tenant, admin); err != nil {
			return err
		}

		member := &domain.User{
			ID:           uuid.New(),
			TenantID:     tenant.ID,
			Email:        "user@" + t.slug + ".test",
			PasswordHash: hash,
			Role:         domain.RoleMember,
			CreatedAt:    now,
		}

		if err := store.Users().Create(ctx, member); err != nil {
			return err
		}

		for _, title := range []string{"Welcome to " + t.name, "Getting started"} {
			note := &domain.Note{
				ID:        uuid.New(),
				TenantID:  tenant.ID,
				UserID:    admin.ID,
				Title:     title,
				Content:   "Seeded sample note.",
				CreatedAt: time.Now(),
			}
			if err := store.Notes().CreateWithinQuota(ctx, note, domain.FreePlanNoteLimit); err != nil {
				return err
			}
		}

		count, err := store.Notes().CountByTenant(ctx, tenant.ID)
		if err != nil {
			return err
		}

		log.Info().Str("tenant", t.slug).Int64("notes", count).Msg("seeded tenant")
	}

	return nil
}

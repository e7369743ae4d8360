package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/open-sspm/open-aigov/internal/config"
	"github.com/open-sspm/open-aigov/internal/db/gen"
	"github.com/open-sspm/open-aigov/internal/integrations"
	"github.com/spf13/cobra"
)

var seedIntegrationsTenant string

var seedIntegrationsCmd = &cobra.Command{
	Use:   "seed-integrations",
	Short: "Insert the default integration catalog for a tenant (idempotent).",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		slug := strings.TrimSpace(seedIntegrationsTenant)
		if slug == "" {
			return errors.New("--tenant is required")
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()

		q := gen.New(pool)
		tenant, err := q.GetTenantBySlug(ctx, slug)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("tenant not found: %s", slug)
		}
		if err != nil {
			return err
		}

		// Seeding never touches credentials, so no secrets backend is needed.
		svc := integrations.NewService(integrations.NewPGStore(q), nil, nil, nil)
		inserted, err := svc.Seed(ctx, tenant.ID)
		if err != nil {
			return err
		}
		slog.Info("integrations seeded", "tenant", tenant.Slug, "inserted", inserted)
		return nil
	},
}

func init() {
	seedIntegrationsCmd.Flags().StringVar(&seedIntegrationsTenant, "tenant", "", "Slug of the tenant to seed")
	_ = seedIntegrationsCmd.MarkFlagRequired("tenant")
}

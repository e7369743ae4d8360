package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/pgxstore"
	"github.com/alexedwards/scs/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/open-sspm/open-aigov/internal/assets"
	"github.com/open-sspm/open-aigov/internal/config"
	"github.com/open-sspm/open-aigov/internal/db/gen"
	httpapp "github.com/open-sspm/open-aigov/internal/http"
	"github.com/open-sspm/open-aigov/internal/http/handlers"
	"github.com/open-sspm/open-aigov/internal/integrations"
	"github.com/open-sspm/open-aigov/internal/integrations/secrets"
	"github.com/open-sspm/open-aigov/internal/metrics"
	"github.com/open-sspm/open-aigov/internal/models"
	"github.com/open-sspm/open-aigov/internal/toolcatalog"
	"github.com/open-sspm/open-aigov/internal/usecases"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func runServe() error {
	cfg, err := config.LoadWithOptions(config.LoadOptions{RequireDatabaseURL: true, RequireStaticBucket: true})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	queries := gen.New(pool)

	resolver, err := assets.NewResolver(cfg.StaticFilesBucket)
	if err != nil {
		return fmt.Errorf("static files bucket: %w", err)
	}

	backend, err := newSecretsBackend(cfg)
	if err != nil {
		return fmt.Errorf("credentials backend: %w", err)
	}

	sessions := scs.New()
	sessions.Store = pgxstore.New(pool)
	sessions.Lifetime = cfg.SessionLifetime
	sessions.Cookie.Secure = cfg.AuthCookieSecure
	sessions.Cookie.HttpOnly = true
	sessions.Cookie.SameSite = http.SameSiteLaxMode

	tools, err := toolcatalog.Default()
	if err != nil {
		return fmt.Errorf("load tool catalog: %w", err)
	}

	h := &handlers.Handlers{
		Cfg:          cfg,
		Q:            queries,
		Counts:       queries,
		Sessions:     sessions,
		Integrations: integrations.NewService(integrations.NewPGStore(queries), backend, integrations.NewCache(cfg.IntegrationCacheSize, cfg.IntegrationCacheTTL), resolver),
		Models:       models.NewService(models.NewPGStore(queries)),
		UseCases:     usecases.NewService(usecases.NewPGStore(pool, queries)),
		Drafts:       usecases.NewDrafts(sessions),
		Tools:        tools,
		Assets:       resolver,
	}

	srv, err := httpapp.NewEchoServer(h, slog.Default())
	if err != nil {
		return err
	}

	_, metricsErrCh := metrics.StartServer(ctx, cfg.MetricsAddr)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http listening", "addr", cfg.HTTPAddr, "credentials_backend", backend.Name())
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		slog.Info("shutting down")
		return httpServer.Shutdown(shutdownCtx)
	case err := <-metricsErrCh:
		return fmt.Errorf("metrics server: %w", err)
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func newSecretsBackend(cfg config.Config) (secrets.Backend, error) {
	switch cfg.CredentialsBackend {
	case config.CredentialsBackendVault:
		return secrets.NewVault(secrets.VaultOptions{
			Address:   cfg.VaultAddr,
			Token:     cfg.VaultToken,
			Namespace: cfg.VaultNamespace,
			Mount:     cfg.VaultKVMount,
		})
	default:
		return secrets.NewDatabase(), nil
	}
}

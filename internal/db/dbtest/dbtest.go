// Package dbtest opens a rolled-back Postgres transaction for store tests.
// Tests are skipped when no database is configured.
package dbtest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/open-sspm/open-aigov/internal/db/gen"
)

const initMigration = "000001_init.up.sql"

type Harness struct {
	Ctx context.Context
	Tx  pgx.Tx
	Q   *gen.Queries
}

// Open begins a transaction that is rolled back when the test ends. The
// schema is created inside the transaction when it is missing.
func Open(t *testing.T) *Harness {
	t.Helper()

	dsn := DatabaseURLFromEnv()
	if dsn == "" {
		t.Skip("skipping DB-backed test: set OPEN_AIGOV_TEST_DATABASE_URL or DATABASE_URL")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		cancel()
		t.Skipf("skipping DB-backed test: open database pool failed: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		cancel()
		t.Skipf("skipping DB-backed test: database ping failed: %v", err)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		pool.Close()
		cancel()
		t.Fatalf("begin tx: %v", err)
	}
	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
		pool.Close()
		cancel()
	})

	ensureSchema(t, ctx, tx)
	return &Harness{Ctx: ctx, Tx: tx, Q: gen.New(tx)}
}

// Tenant creates a tenant with a unique slug and one application.
func (h *Harness) Tenant(t *testing.T) (gen.Tenant, gen.Application) {
	t.Helper()

	slug := fmt.Sprintf("test-%d", time.Now().UnixNano())
	tenant, err := h.Q.UpsertTenant(h.Ctx, gen.UpsertTenantParams{Slug: slug, Name: "Test " + slug})
	if err != nil {
		t.Fatalf("create tenant: %v", err)
	}
	var appID int64
	if err := h.Tx.QueryRow(h.Ctx,
		`INSERT INTO applications (tenant_id, name, description) VALUES ($1, 'Support assistant', '') RETURNING id`,
		tenant.ID,
	).Scan(&appID); err != nil {
		t.Fatalf("create application: %v", err)
	}
	app, err := h.Q.GetApplication(h.Ctx, gen.GetApplicationParams{TenantID: tenant.ID, ID: appID})
	if err != nil {
		t.Fatalf("load application: %v", err)
	}
	return tenant, app
}

// User creates an active admin in tenant and returns its id.
func (h *Harness) User(t *testing.T, tenantID int64) int64 {
	t.Helper()

	u, err := h.Q.CreateAuthUser(h.Ctx, gen.CreateAuthUserParams{
		TenantID:     tenantID,
		Email:        fmt.Sprintf("owner-%d@example.com", time.Now().UnixNano()),
		PasswordHash: "unused",
		Role:         "admin",
		IsActive:     true,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u.ID
}

func ensureSchema(t *testing.T, ctx context.Context, tx pgx.Tx) {
	t.Helper()

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT to_regclass('public.use_cases') IS NOT NULL`).Scan(&exists); err != nil {
		t.Fatalf("check schema: %v", err)
	}
	if exists {
		return
	}

	migrationSQL, err := readFirstFile(migrationCandidates()...)
	if err != nil {
		t.Skipf("skipping DB-backed test: schema migration not found: %v", err)
	}
	if _, err := tx.Exec(ctx, migrationSQL); err != nil {
		t.Skipf("skipping DB-backed test: applying schema migration failed: %v", err)
	}
}

func migrationCandidates() []string {
	out := make([]string, 0, 5)
	rel := filepath.Join("db", "migrations", initMigration)
	prefix := ""
	for range 5 {
		out = append(out, filepath.Join(prefix, rel))
		prefix = filepath.Join(prefix, "..")
	}
	return out
}

func readFirstFile(paths ...string) (string, error) {
	for _, candidate := range paths {
		data, err := os.ReadFile(candidate)
		if err != nil {
			continue
		}
		return string(data), nil
	}
	return "", fmt.Errorf("none of the candidate paths exist")
}

// DatabaseURLFromEnv reads the test DSN from the environment or a .env file
// in the working directory or the repository root.
func DatabaseURLFromEnv() string {
	for _, key := range []string{"OPEN_AIGOV_TEST_DATABASE_URL", "DATABASE_URL"} {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}

	prefix := ""
	for range 5 {
		env, err := godotenv.Read(filepath.Join(prefix, ".env"))
		prefix = filepath.Join(prefix, "..")
		if err != nil {
			continue
		}
		if value := strings.TrimSpace(env["DATABASE_URL"]); value != "" {
			return value
		}
	}
	return ""
}

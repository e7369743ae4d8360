package main

import (
	"bufio"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/open-sspm/open-aigov/internal/auth"
	"github.com/open-sspm/open-aigov/internal/config"
	"github.com/open-sspm/open-aigov/internal/db/gen"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const generatedPasswordLength = 24

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage Open-AIGov users.",
}

// bootstrapAdminFlags are the flags of users bootstrap-admin.
type bootstrapAdminFlags struct {
	Email      string
	Tenant     string
	TenantName string
	Password   passwordOptions
}

// passwordOptions says where the admin password comes from. At most one
// source may be chosen; with none, the password is prompted for on a terminal.
type passwordOptions struct {
	Value    string
	Stdin    bool
	Generate bool
}

var bootstrapAdmin bootstrapAdminFlags

var bootstrapAdminCmd = &cobra.Command{
	Use:   "bootstrap-admin",
	Short: "Create the first admin of a tenant, creating the tenant if needed (idempotent).",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBootstrapAdmin(cmd, bootstrapAdmin)
	},
}

func runBootstrapAdmin(cmd *cobra.Command, flags bootstrapAdminFlags) error {
	email := auth.NormalizeEmail(flags.Email)
	if email == "" {
		return errors.New("--email is required")
	}
	slug := strings.ToLower(strings.TrimSpace(flags.Tenant))
	if slug == "" {
		return errors.New("--tenant is required")
	}

	password, generated, err := flags.Password.resolve(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	q := gen.New(pool)

	tenant, err := ensureTenant(ctx, q, slug, strings.TrimSpace(flags.TenantName))
	if err != nil {
		return err
	}

	admins, err := q.CountAuthAdmins(ctx, tenant.ID)
	if err != nil {
		return err
	}
	if admins > 0 {
		cmd.Printf("tenant %s already has an admin; nothing to do\n", tenant.Slug)
		return nil
	}

	if _, err := q.GetAuthUserByEmail(ctx, email); err == nil {
		return fmt.Errorf("user already exists: %s", email)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	if _, err := q.CreateAuthUser(ctx, gen.CreateAuthUserParams{
		TenantID:     tenant.ID,
		Email:        email,
		PasswordHash: hash,
		Role:         auth.RoleAdmin,
		IsActive:     true,
	}); err != nil {
		return err
	}

	cmd.Printf("created admin user %s for tenant %s\n", email, tenant.Slug)
	if generated {
		cmd.Printf("generated password: %s\n", password)
	}
	return nil
}

// ensureTenant returns the tenant with slug, creating it when missing. An
// empty name keeps the stored one; new tenants default to the slug.
func ensureTenant(ctx context.Context, q *gen.Queries, slug, name string) (gen.Tenant, error) {
	tenant, err := q.GetTenantBySlug(ctx, slug)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		if name == "" {
			name = slug
		}
	case err != nil:
		return gen.Tenant{}, err
	case name == "" || name == tenant.Name:
		return tenant, nil
	}
	return q.UpsertTenant(ctx, gen.UpsertTenantParams{Slug: slug, Name: name})
}

func (o passwordOptions) validate() error {
	chosen := []string{}
	if o.Value != "" {
		chosen = append(chosen, "--password")
	}
	if o.Stdin {
		chosen = append(chosen, "--password-stdin")
	}
	if o.Generate {
		chosen = append(chosen, "--generate-password")
	}
	if len(chosen) > 1 {
		return fmt.Errorf("%s are mutually exclusive", strings.Join(chosen, " and "))
	}
	return nil
}

// resolve returns the password and whether it was generated.
func (o passwordOptions) resolve(cmd *cobra.Command) (string, bool, error) {
	if err := o.validate(); err != nil {
		return "", false, err
	}

	switch {
	case o.Value != "":
		return o.Value, false, nil
	case o.Generate:
		password, err := generatePassword(generatedPasswordLength)
		return password, err == nil, err
	case o.Stdin:
		if info, err := os.Stdin.Stat(); err != nil {
			return "", false, err
		} else if info.Mode()&os.ModeCharDevice != 0 {
			return "", false, errors.New("stdin is a terminal; use --password or omit to prompt")
		}
		password, err := readPasswordLine(os.Stdin)
		return password, false, err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", false, errors.New("no password provided (use --password, --password-stdin, or --generate-password)")
	}
	password, err := promptPassword(cmd, int(os.Stdin.Fd()))
	return password, false, err
}

// readPasswordLine returns the first line of r without its line ending.
func readPasswordLine(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", errors.New("password is empty")
	}
	password := strings.TrimRight(scanner.Text(), "\r\n")
	if password == "" {
		return "", errors.New("password is empty")
	}
	return password, nil
}

func promptPassword(cmd *cobra.Command, fd int) (string, error) {
	cmd.Print("Password: ")
	first, err := term.ReadPassword(fd)
	cmd.Println()
	if err != nil {
		return "", err
	}
	if len(first) == 0 {
		return "", errors.New("password is empty")
	}

	cmd.Print("Confirm password: ")
	second, err := term.ReadPassword(fd)
	cmd.Println()
	if err != nil {
		return "", err
	}
	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	return string(first), nil
}

func generatePassword(length int) (string, error) {
	if length < 16 {
		return "", errors.New("password length too short")
	}
	const alphabet = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = alphabet[int(b[i])%len(alphabet)]
	}
	return string(b), nil
}

func init() {
	usersCmd.AddCommand(bootstrapAdminCmd)
	flags := bootstrapAdminCmd.Flags()
	flags.StringVar(&bootstrapAdmin.Email, "email", "", "Email address for the admin user")
	flags.StringVar(&bootstrapAdmin.Tenant, "tenant", "", "Slug of the tenant the admin belongs to")
	flags.StringVar(&bootstrapAdmin.TenantName, "tenant-name", "", "Display name used when the tenant is created (defaults to the slug)")
	flags.StringVar(&bootstrapAdmin.Password.Value, "password", "", "Password for the admin user (discouraged; prefer --password-stdin)")
	flags.BoolVar(&bootstrapAdmin.Password.Stdin, "password-stdin", false, "Read the password from stdin")
	flags.BoolVar(&bootstrapAdmin.Password.Generate, "generate-password", false, "Generate a random password and print it")
	_ = bootstrapAdminCmd.MarkFlagRequired("email")
	_ = bootstrapAdminCmd.MarkFlagRequired("tenant")
}

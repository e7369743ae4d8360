package providers

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/open-sspm/open-aigov/internal/auth"
	"github.com/open-sspm/open-aigov/internal/db/gen"
)

type fakeUsers struct {
	users   map[string]gen.AuthUser
	tenants map[int64]gen.Tenant
}

func (f fakeUsers) GetAuthUserByEmail(_ context.Context, email string) (gen.AuthUser, error) {
	u, ok := f.users[email]
	if !ok {
		return gen.AuthUser{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f fakeUsers) GetTenant(_ context.Context, id int64) (gen.Tenant, error) {
	t, ok := f.tenants[id]
	if !ok {
		return gen.Tenant{}, pgx.ErrNoRows
	}
	return t, nil
}

func TestPasswordProviderAuthenticate(t *testing.T) {
	t.Parallel()

	hash, err := auth.HashPassword("long enough secret")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	store := fakeUsers{
		users: map[string]gen.AuthUser{
			"ada@example.com":  {ID: 1, TenantID: 3, Email: "ada@example.com", PasswordHash: hash, Role: auth.RoleAdmin, IsActive: true},
			"gone@example.com": {ID: 2, TenantID: 3, Email: "gone@example.com", PasswordHash: hash, Role: auth.RoleViewer},
		},
		tenants: map[int64]gen.Tenant{3: {ID: 3, Slug: "acme", Name: "Acme"}},
	}
	p := NewPasswordProvider(store)

	principal, err := p.Authenticate(context.Background(), " Ada@Example.com ", "long enough secret")
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if principal.TenantSlug != "acme" || principal.TenantID != 3 || !principal.IsAdmin() {
		t.Fatalf("Authenticate() principal = %+v", principal)
	}

	for _, tc := range []struct{ email, password string }{
		{"ada@example.com", "wrong password!!"},
		{"gone@example.com", "long enough secret"},
		{"nobody@example.com", "long enough secret"},
		{"", "x"},
	} {
		if _, err := p.Authenticate(context.Background(), tc.email, tc.password); !errors.Is(err, auth.ErrInvalidCredentials) {
			t.Fatalf("Authenticate(%q) error = %v, want ErrInvalidCredentials", tc.email, err)
		}
	}
}

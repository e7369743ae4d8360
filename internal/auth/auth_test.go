package auth

import (
	"errors"
	"testing"
)

func TestPrincipalCanAccessTenant(t *testing.T) {
	t.Parallel()

	p := Principal{UserID: 1, TenantID: 7, TenantSlug: "acme", Role: RoleViewer}
	tests := []struct {
		slug string
		want bool
	}{
		{slug: "acme", want: true},
		{slug: "ACME", want: true},
		{slug: "globex", want: false},
		{slug: "", want: false},
	}
	for _, tt := range tests {
		if got := p.CanAccessTenant(tt.slug); got != tt.want {
			t.Fatalf("CanAccessTenant(%q) = %v, want %v", tt.slug, got, tt.want)
		}
	}
	if (Principal{TenantSlug: "acme"}).CanAccessTenant("acme") {
		t.Fatal("principal without tenant id must not access tenant")
	}
}

func TestNormalizeRole(t *testing.T) {
	t.Parallel()

	if role, ok := NormalizeRole(" Admin "); !ok || role != RoleAdmin {
		t.Fatalf("NormalizeRole(admin) = %q, %v", role, ok)
	}
	if _, ok := NormalizeRole("owner"); ok {
		t.Fatal("NormalizeRole(owner) should fail")
	}
}

func TestHashPassword(t *testing.T) {
	t.Parallel()

	if _, err := HashPassword("short"); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("HashPassword(short) error = %v", err)
	}

	hash, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	ok, err := ComparePassword("correct horse battery", hash)
	if err != nil || !ok {
		t.Fatalf("ComparePassword() = %v, %v", ok, err)
	}
	ok, err = ComparePassword("wrong horse battery", hash)
	if err != nil || ok {
		t.Fatalf("ComparePassword(wrong) = %v, %v", ok, err)
	}
}

package secrets

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDatabaseRoundTrip(t *testing.T) {
	t.Parallel()

	db := NewDatabase()
	ref := Ref{TenantID: 1, IntegrationID: 9}
	stored, err := db.Put(context.Background(), ref, map[string]any{"api_key": "sk-x"})
	if err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	got, err := db.Get(context.Background(), ref, stored)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if diff := cmp.Diff(map[string]any{"api_key": "sk-x"}, got); diff != "" {
		t.Fatalf("Get() mismatch (-want +got):\n%s", diff)
	}
}

func TestDatabaseRoundTripNonObject(t *testing.T) {
	t.Parallel()

	db := NewDatabase()
	ref := Ref{TenantID: 1, IntegrationID: 9}
	for _, config := range []any{[]any{"a"}, float64(42), "x", true, nil} {
		stored, err := db.Put(context.Background(), ref, config)
		if err != nil {
			t.Fatalf("Put(%v) error = %v", config, err)
		}
		got, err := db.Get(context.Background(), ref, stored)
		if err != nil {
			t.Fatalf("Get(%s) error = %v", stored, err)
		}
		if diff := cmp.Diff(config, got); diff != "" {
			t.Fatalf("Get(%s) mismatch (-want +got):\n%s", stored, diff)
		}
	}
}

func TestKVDataWrapsNonObjects(t *testing.T) {
	t.Parallel()

	values, keys, wrapped := kvData(map[string]any{"token": "t", "region": "us"})
	if wrapped || values["token"] != "t" {
		t.Fatalf("kvData(object) = %v, %v, %v", values, keys, wrapped)
	}
	if diff := cmp.Diff([]string{"region", "token"}, keys); diff != "" {
		t.Fatalf("kvData(object) keys mismatch (-want +got):\n%s", diff)
	}

	values, keys, wrapped = kvData([]any{"a"})
	if !wrapped || keys != nil {
		t.Fatalf("kvData(array) = %v, %v, %v", values, keys, wrapped)
	}
	if diff := cmp.Diff(map[string]any{wrappedKey: []any{"a"}}, values); diff != "" {
		t.Fatalf("kvData(array) mismatch (-want +got):\n%s", diff)
	}

	stored, err := marshalRef(vaultRef{Mount: "secret", Path: "p", Wrapped: wrapped})
	if err != nil {
		t.Fatalf("marshalRef() error = %v", err)
	}
	r, ok := parseRef(stored)
	if !ok || !r.Wrapped || r.Path != "p" {
		t.Fatalf("parseRef(%s) = %+v, %v", stored, r, ok)
	}
	if _, ok := parseRef([]byte(`{"api_key":"k"}`)); ok {
		t.Fatal("parseRef(inline config) ok = true, want false")
	}
}

func TestKeys(t *testing.T) {
	t.Parallel()

	ref, err := marshalRef(vaultRef{Mount: "secret", Path: "open-aigov/tenants/1/integrations/2", Keys: []string{"api_key", "host_url"}})
	if err != nil {
		t.Fatalf("marshalRef() error = %v", err)
	}

	tests := []struct {
		name   string
		stored []byte
		want   []string
	}{
		{name: "empty", stored: nil, want: []string{}},
		{name: "empty object", stored: []byte(`{}`), want: []string{}},
		{name: "inline", stored: []byte(`{"host_url":"h","api_key":"k"}`), want: []string{"api_key", "host_url"}},
		{name: "vault ref", stored: ref, want: []string{"api_key", "host_url"}},
		{name: "array", stored: []byte(`["a"]`), want: nil},
		{name: "garbage", stored: []byte(`nope`), want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, Keys(tt.stored)); diff != "" {
				t.Fatalf("Keys() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRefPath(t *testing.T) {
	t.Parallel()

	if got := (Ref{TenantID: 3, IntegrationID: 14}).Path(); got != "tenants/3/integrations/14" {
		t.Fatalf("Path() = %q", got)
	}
}

func TestNewVaultRequiresAddressAndToken(t *testing.T) {
	t.Parallel()

	if _, err := NewVault(VaultOptions{Token: "t"}); err == nil {
		t.Fatal("expected missing address error")
	}
	if _, err := NewVault(VaultOptions{Address: "http://127.0.0.1:8200"}); err == nil {
		t.Fatal("expected missing token error")
	}
	v, err := NewVault(VaultOptions{Address: "http://127.0.0.1:8200", Token: "t", Mount: "/kv/"})
	if err != nil {
		t.Fatalf("NewVault() error = %v", err)
	}
	if v.mount != "kv" || v.Name() != "vault" {
		t.Fatalf("NewVault() = %+v", v)
	}
}

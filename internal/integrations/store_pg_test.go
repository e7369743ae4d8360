package integrations

import (
	"errors"
	"testing"

	"github.com/open-sspm/open-aigov/internal/db/dbtest"
)

func TestPGStoreLifecycle(t *testing.T) {
	h := dbtest.Open(t)
	tenant, _ := h.Tenant(t)
	svc := NewService(NewPGStore(h.Q), nil, NewCache(4, 0), staticLogos{})

	n, err := svc.Seed(h.Ctx, tenant.ID)
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if n != len(DefaultCatalog) {
		t.Fatalf("Seed() = %d, want %d", n, len(DefaultCatalog))
	}
	if n, err := svc.Seed(h.Ctx, tenant.ID); err != nil || n != 0 {
		t.Fatalf("second Seed() = %d, %v", n, err)
	}

	items, err := svc.List(h.Ctx, tenant.ID)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	var openai Integration
	for _, it := range items {
		if it.Name == "OpenAI" {
			openai = it
		}
	}
	if openai.ID == 0 {
		t.Fatalf("OpenAI not seeded: %+v", items)
	}

	if _, err := svc.Toggle(h.Ctx, tenant.ID, openai.ID, true); !errors.Is(err, ErrCredentialsRequired) {
		t.Fatalf("Toggle() without credentials error = %v", err)
	}

	withCreds, err := svc.AddCredentials(h.Ctx, tenant.ID, openai.ID, map[string]string{"api_key": "sk-test"})
	if err != nil {
		t.Fatalf("AddCredentials() error = %v", err)
	}
	if !withCreds.IsCredentialsAdded || len(withCreds.CredentialKeys) != 1 {
		t.Fatalf("AddCredentials() = %+v", withCreds)
	}

	enabled, err := svc.Toggle(h.Ctx, tenant.ID, openai.ID, true)
	if err != nil || !enabled.Enabled {
		t.Fatalf("Toggle() = %+v, %v", enabled, err)
	}

	cleared, err := svc.RemoveCredentials(h.Ctx, tenant.ID, openai.ID)
	if err != nil {
		t.Fatalf("RemoveCredentials() error = %v", err)
	}
	if cleared.Enabled || cleared.IsCredentialsAdded || len(cleared.CredentialKeys) != 0 {
		t.Fatalf("RemoveCredentials() = %+v", cleared)
	}

	if _, err := svc.Get(h.Ctx, tenant.ID+100000, openai.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-tenant Get() error = %v", err)
	}
}

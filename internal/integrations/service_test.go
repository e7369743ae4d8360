package integrations

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/open-sspm/open-aigov/internal/integrations/credentials"
	"github.com/open-sspm/open-aigov/internal/integrations/secrets"
	"github.com/open-sspm/open-aigov/internal/search"
	"github.com/open-sspm/open-aigov/internal/validate"
)

type staticLogos struct{}

func (staticLogos) URL(file string) string { return "https://cdn.test/static/" + file }

const tenant = int64(42)

func seededService(t *testing.T) (*Service, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	svc := NewService(store, nil, NewCache(8, 0), staticLogos{})
	n, err := svc.Seed(context.Background(), tenant)
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if n != len(DefaultCatalog) {
		t.Fatalf("Seed() = %d, want %d", n, len(DefaultCatalog))
	}
	return svc, store
}

func TestSeedIsIdempotent(t *testing.T) {
	t.Parallel()

	svc, _ := seededService(t)
	n, err := svc.Seed(context.Background(), tenant)
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if n != 0 {
		t.Fatalf("second Seed() = %d, want 0", n)
	}

	items, err := svc.List(context.Background(), tenant)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(items) != len(DefaultCatalog) {
		t.Fatalf("List() len = %d, want %d", len(items), len(DefaultCatalog))
	}
	if items[0].LogoURL != "https://cdn.test/static/"+items[0].LogoFile {
		t.Fatalf("LogoURL = %q", items[0].LogoURL)
	}
}

func TestToggleWithoutCredentialsIsRejected(t *testing.T) {
	t.Parallel()

	svc, store := seededService(t)
	openai := store.byName(tenant, "OpenAI")

	got, err := svc.Toggle(context.Background(), tenant, openai.ID, true)
	if !errors.Is(err, ErrCredentialsRequired) {
		t.Fatalf("Toggle() error = %v, want ErrCredentialsRequired", err)
	}
	if got.Enabled {
		t.Fatal("Toggle() returned an enabled integration")
	}
	if store.byName(tenant, "OpenAI").Enabled {
		t.Fatal("store was modified on rejected toggle")
	}
}

func TestAddCredentialsThenEnable(t *testing.T) {
	t.Parallel()

	svc, store := seededService(t)
	anthropic := store.byName(tenant, "Anthropic")
	ctx := context.Background()

	updated, err := svc.AddCredentials(ctx, tenant, anthropic.ID, map[string]string{credentials.FieldAPIKey: "sk-x"})
	if err != nil {
		t.Fatalf("AddCredentials() error = %v", err)
	}
	if !updated.IsCredentialsAdded || !updated.HasCredentials() {
		t.Fatalf("AddCredentials() = %+v, want credentials added", updated)
	}

	enabled, err := svc.Toggle(ctx, tenant, anthropic.ID, true)
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if !enabled.Enabled || !store.byName(tenant, "Anthropic").Enabled {
		t.Fatal("Toggle() did not persist enabled state")
	}

	items, err := svc.List(ctx, tenant)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	got := Filter(items, search.Filter{Status: search.StatusEnabled})
	if len(got) != 1 || got[0].Name != "Anthropic" {
		t.Fatalf("enabled filter = %+v", got)
	}
}

func TestAddCredentialsValidationError(t *testing.T) {
	t.Parallel()

	svc, store := seededService(t)
	databricks := store.byName(tenant, "Databricks")

	_, err := svc.AddCredentials(context.Background(), tenant, databricks.ID, map[string]string{credentials.FieldAPIKey: "dapi"})
	var fe validate.FieldErrors
	if !errors.As(err, &fe) || fe[credentials.FieldHostURL] == "" {
		t.Fatalf("AddCredentials() error = %v, want host_url field error", err)
	}
	if store.byName(tenant, "Databricks").IsCredentialsAdded {
		t.Fatal("credentials stored despite validation error")
	}
}

func TestAddCredentialsKeepsStoredSecretWhenBlank(t *testing.T) {
	t.Parallel()

	svc, store := seededService(t)
	databricks := store.byName(tenant, "Databricks")
	ctx := context.Background()

	if _, err := svc.AddCredentials(ctx, tenant, databricks.ID, map[string]string{
		credentials.FieldHostURL: "old.cloud.databricks.com",
		credentials.FieldAPIKey:  "dapi-old",
	}); err != nil {
		t.Fatalf("AddCredentials() error = %v", err)
	}

	if _, err := svc.AddCredentials(ctx, tenant, databricks.ID, map[string]string{
		credentials.FieldHostURL: "new.cloud.databricks.com",
		credentials.FieldAPIKey:  "",
	}); err != nil {
		t.Fatalf("AddCredentials(blank key) error = %v", err)
	}

	got, err := svc.secrets.Get(ctx, secrets.Ref{TenantID: tenant, IntegrationID: databricks.ID}, store.byName(tenant, "Databricks").config)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	want := map[string]any{credentials.FieldHostURL: "https://new.cloud.databricks.com", credentials.FieldAPIKey: "dapi-old"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("stored config mismatch (-want +got):\n%s", diff)
	}

	_, err = svc.AddCredentials(ctx, tenant, databricks.ID, map[string]string{credentials.FieldAPIKey: "dapi-new"})
	var fe validate.FieldErrors
	if !errors.As(err, &fe) || fe[credentials.FieldHostURL] == "" {
		t.Fatalf("AddCredentials(blank host) error = %v, want host_url field error", err)
	}
}

func TestAddCredentialsFreeformNonObject(t *testing.T) {
	t.Parallel()

	svc, store := seededService(t)
	pinecone := store.byName(tenant, "Pinecone")
	ctx := context.Background()

	updated, err := svc.AddCredentials(ctx, tenant, pinecone.ID, map[string]string{credentials.FieldConfig: `["pc-key","us-east"]`})
	if err != nil {
		t.Fatalf("AddCredentials() error = %v", err)
	}
	if !updated.IsCredentialsAdded || !updated.HasCredentials() || len(updated.CredentialKeys) != 0 {
		t.Fatalf("AddCredentials() = %+v, want credentials added without keys", updated)
	}
	got, err := svc.secrets.Get(ctx, secrets.Ref{TenantID: tenant, IntegrationID: pinecone.ID}, store.byName(tenant, "Pinecone").config)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if diff := cmp.Diff([]any{"pc-key", "us-east"}, got); diff != "" {
		t.Fatalf("stored config mismatch (-want +got):\n%s", diff)
	}
	if _, err := svc.Toggle(ctx, tenant, pinecone.ID, true); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
}

func TestRemoveCredentialsDisables(t *testing.T) {
	t.Parallel()

	svc, store := seededService(t)
	cohere := store.byName(tenant, "Cohere")
	ctx := context.Background()

	if _, err := svc.AddCredentials(ctx, tenant, cohere.ID, map[string]string{credentials.FieldAPIKey: "co-1"}); err != nil {
		t.Fatalf("AddCredentials() error = %v", err)
	}
	if _, err := svc.Toggle(ctx, tenant, cohere.ID, true); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}

	got, err := svc.RemoveCredentials(ctx, tenant, cohere.ID)
	if err != nil {
		t.Fatalf("RemoveCredentials() error = %v", err)
	}
	if got.Enabled || got.IsCredentialsAdded || got.HasCredentials() {
		t.Fatalf("RemoveCredentials() = %+v, want disabled without credentials", got)
	}
}

func TestToggleRestoresCacheOnWriteFailure(t *testing.T) {
	t.Parallel()

	svc, store := seededService(t)
	ctx := context.Background()
	openai := store.byName(tenant, "OpenAI")
	if _, err := svc.AddCredentials(ctx, tenant, openai.ID, map[string]string{credentials.FieldAPIKey: "sk"}); err != nil {
		t.Fatalf("AddCredentials() error = %v", err)
	}
	if _, err := svc.List(ctx, tenant); err != nil {
		t.Fatalf("List() error = %v", err)
	}

	store.mu.Lock()
	store.setErr = errors.New("connection reset")
	store.mu.Unlock()

	if _, err := svc.Toggle(ctx, tenant, openai.ID, true); err == nil {
		t.Fatal("expected toggle error")
	}

	listsBefore := store.lists
	items, err := svc.List(ctx, tenant)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if store.lists != listsBefore {
		t.Fatal("List() missed the cache after rollback")
	}
	for _, it := range items {
		if it.ID == openai.ID && it.Enabled {
			t.Fatal("cached integration still enabled after rollback")
		}
	}
}

func TestGetUnknownIntegration(t *testing.T) {
	t.Parallel()

	svc, _ := seededService(t)
	if _, err := svc.Get(context.Background(), tenant, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get() error = %v, want ErrNotFound", err)
	}
	if _, err := svc.Get(context.Background(), tenant+1, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get() other tenant error = %v, want ErrNotFound", err)
	}
}

func TestSchemaUsesIntegrationName(t *testing.T) {
	t.Parallel()

	svc, store := seededService(t)
	s, err := svc.Schema(context.Background(), tenant, store.byName(tenant, "Azure AI Foundry").ID)
	if err != nil {
		t.Fatalf("Schema() error = %v", err)
	}
	if s.Freeform || len(s.Fields) != 2 {
		t.Fatalf("Schema() = %+v", s)
	}
}

func TestFilterMatchesCategoryLabel(t *testing.T) {
	t.Parallel()

	svc, _ := seededService(t)
	items, err := svc.List(context.Background(), tenant)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	got := Filter(items, search.Filter{Query: "llm providers"})
	var want []string
	for _, e := range DefaultCatalog {
		if e.Category == CategoryLLMProviders {
			want = append(want, e.Name)
		}
	}
	var names []string
	for _, it := range got {
		names = append(names, it.Name)
	}
	if len(want) == 0 || len(names) != len(want) {
		t.Fatalf("Filter(llm providers) = %q, want %q", names, want)
	}

	if got := Filter(items, search.Filter{Query: "Vector Databases"}); len(got) == 0 || got[0].Category != CategoryVectorDatabases {
		t.Fatalf("Filter(Vector Databases) = %+v", got)
	}
}

package integrations

import (
	"context"
	"errors"
	"fmt"

	"github.com/open-sspm/open-aigov/internal/integrations/credentials"
	"github.com/open-sspm/open-aigov/internal/integrations/secrets"
	"github.com/open-sspm/open-aigov/internal/logging"
	"github.com/open-sspm/open-aigov/internal/metrics"
)

// Store persists integrations. Records returned by a Store carry the raw
// config column.
type Store interface {
	List(ctx context.Context, tenantID int64) ([]Integration, error)
	Get(ctx context.Context, tenantID, id int64) (Integration, error)
	SetEnabled(ctx context.Context, tenantID, id int64, enabled bool) (Integration, error)
	SetCredentials(ctx context.Context, tenantID, id int64, config []byte) (Integration, error)
	ClearCredentials(ctx context.Context, tenantID, id int64) (Integration, error)
	InsertIfMissing(ctx context.Context, tenantID int64, entry CatalogEntry) (bool, error)
}

type LogoResolver interface {
	URL(fileName string) string
}

type Service struct {
	store   Store
	secrets secrets.Backend
	cache   *Cache
	logos   LogoResolver
}

func NewService(store Store, backend secrets.Backend, cache *Cache, logos LogoResolver) *Service {
	if backend == nil {
		backend = secrets.NewDatabase()
	}
	if cache == nil {
		cache = NewCache(256, 0)
	}
	return &Service{store: store, secrets: backend, cache: cache, logos: logos}
}

func (s *Service) decorate(i Integration) Integration {
	if s.logos != nil {
		i.LogoURL = s.logos.URL(i.LogoFile)
	}
	i.CredentialKeys = secrets.Keys(i.config)
	if i.CredentialKeys == nil {
		i.CredentialKeys = []string{}
	}
	return i
}

// List returns the tenant's integrations, serving from the cache when fresh.
func (s *Service) List(ctx context.Context, tenantID int64) ([]Integration, error) {
	if items, ok := s.cache.Get(tenantID); ok {
		return items, nil
	}
	rows, err := s.store.List(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list integrations: %w", err)
	}
	items := make([]Integration, 0, len(rows))
	for _, row := range rows {
		items = append(items, s.decorate(row))
	}
	s.cache.Set(tenantID, items)
	return items, nil
}

func (s *Service) Get(ctx context.Context, tenantID, id int64) (Integration, error) {
	row, err := s.store.Get(ctx, tenantID, id)
	if err != nil {
		return Integration{}, err
	}
	return s.decorate(row), nil
}

// Schema returns the credential form for the integration's provider.
func (s *Service) Schema(ctx context.Context, tenantID, id int64) (credentials.Schema, error) {
	row, err := s.store.Get(ctx, tenantID, id)
	if err != nil {
		return credentials.Schema{}, err
	}
	return credentials.SchemaFor(row.Name), nil
}

// Toggle enables or disables an integration. Enabling requires stored
// credentials. The cached record is flipped before the write and restored if
// the write fails.
func (s *Service) Toggle(ctx context.Context, tenantID, id int64, enabled bool) (Integration, error) {
	current, err := s.Get(ctx, tenantID, id)
	if err != nil {
		metrics.IntegrationTogglesTotal.WithLabelValues(metrics.ResultError).Inc()
		return Integration{}, err
	}
	if enabled && !current.IsCredentialsAdded {
		metrics.IntegrationTogglesTotal.WithLabelValues(metrics.ResultRejected).Inc()
		return current, ErrCredentialsRequired
	}
	if current.Enabled == enabled {
		metrics.IntegrationTogglesTotal.WithLabelValues(metrics.ResultSuccess).Inc()
		return current, nil
	}

	speculative := current
	speculative.Enabled = enabled
	prev, cached := s.cache.Swap(speculative)

	updated, err := s.store.SetEnabled(ctx, tenantID, id, enabled)
	if err != nil {
		if cached {
			s.cache.Swap(prev)
		}
		metrics.IntegrationTogglesTotal.WithLabelValues(metrics.ResultError).Inc()
		logging.FromContext(ctx).Warn("integration toggle rolled back",
			"integration_id", id,
			"enabled", enabled,
			"error", err,
		)
		return current, fmt.Errorf("toggle integration %d: %w", id, err)
	}

	out := s.decorate(updated)
	if _, ok := s.cache.Swap(out); !ok {
		s.cache.Invalidate(tenantID)
	}
	metrics.IntegrationTogglesTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	return out, nil
}

// AddCredentials validates values against the provider's form and stores the
// resulting configuration. When credentials already exist, blank secret
// fields keep their stored value. Validation failures are returned as
// validate.FieldErrors.
func (s *Service) AddCredentials(ctx context.Context, tenantID, id int64, values map[string]string) (Integration, error) {
	current, err := s.store.Get(ctx, tenantID, id)
	if err != nil {
		return Integration{}, err
	}

	ref := secrets.Ref{TenantID: tenantID, IntegrationID: id}
	if current.IsCredentialsAdded && credentials.Known(current.Name) {
		stored, err := s.secrets.Get(ctx, ref, current.config)
		switch {
		case err == nil:
			values = credentials.MergeStored(current.Name, stored, values)
		case errors.Is(err, secrets.ErrNotFound):
		default:
			metrics.IntegrationCredentialChangesTotal.WithLabelValues("add", metrics.ResultError).Inc()
			return Integration{}, fmt.Errorf("load credentials via %s: %w", s.secrets.Name(), err)
		}
	}

	cfg, err := credentials.BuildConfig(current.Name, values)
	if err != nil {
		metrics.IntegrationCredentialChangesTotal.WithLabelValues("add", metrics.ResultRejected).Inc()
		return Integration{}, err
	}

	stored, err := s.secrets.Put(ctx, ref, cfg)
	if err != nil {
		metrics.IntegrationCredentialChangesTotal.WithLabelValues("add", metrics.ResultError).Inc()
		return Integration{}, fmt.Errorf("store credentials via %s: %w", s.secrets.Name(), err)
	}

	updated, err := s.store.SetCredentials(ctx, tenantID, id, stored)
	if err != nil {
		metrics.IntegrationCredentialChangesTotal.WithLabelValues("add", metrics.ResultError).Inc()
		return Integration{}, fmt.Errorf("save credentials: %w", err)
	}

	out := s.decorate(updated)
	if _, ok := s.cache.Swap(out); !ok {
		s.cache.Invalidate(tenantID)
	}
	metrics.IntegrationCredentialChangesTotal.WithLabelValues("add", metrics.ResultSuccess).Inc()
	return out, nil
}

// RemoveCredentials clears the configuration and disables the integration.
func (s *Service) RemoveCredentials(ctx context.Context, tenantID, id int64) (Integration, error) {
	current, err := s.store.Get(ctx, tenantID, id)
	if err != nil {
		return Integration{}, err
	}

	updated, err := s.store.ClearCredentials(ctx, tenantID, id)
	if err != nil {
		metrics.IntegrationCredentialChangesTotal.WithLabelValues("remove", metrics.ResultError).Inc()
		return Integration{}, fmt.Errorf("clear credentials: %w", err)
	}

	ref := secrets.Ref{TenantID: tenantID, IntegrationID: id}
	if err := s.secrets.Delete(ctx, ref, current.config); err != nil && !errors.Is(err, secrets.ErrNotFound) {
		logging.FromContext(ctx).Warn("stored credentials not deleted",
			"integration_id", id,
			"backend", s.secrets.Name(),
			"error", err,
		)
	}

	out := s.decorate(updated)
	if _, ok := s.cache.Swap(out); !ok {
		s.cache.Invalidate(tenantID)
	}
	metrics.IntegrationCredentialChangesTotal.WithLabelValues("remove", metrics.ResultSuccess).Inc()
	return out, nil
}

// Seed inserts every DefaultCatalog entry the tenant does not have yet and
// returns how many rows were created.
func (s *Service) Seed(ctx context.Context, tenantID int64) (int, error) {
	count := 0
	for _, entry := range DefaultCatalog {
		inserted, err := s.store.InsertIfMissing(ctx, tenantID, entry)
		if err != nil {
			s.cache.Invalidate(tenantID)
			return count, fmt.Errorf("seed %q: %w", entry.Name, err)
		}
		if inserted {
			count++
		}
	}
	s.cache.Invalidate(tenantID)
	metrics.IntegrationsSeededTotal.Add(float64(count))
	return count, nil
}

package handlers

import (
	"context"
	"maps"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v5"
	"github.com/open-sspm/open-aigov/internal/auth"
	"github.com/open-sspm/open-aigov/internal/http/authn"
	"github.com/open-sspm/open-aigov/internal/integrations"
	"github.com/open-sspm/open-aigov/internal/usecases"
)

const (
	testTenantID = 1
	testTenant   = "acme"
	testAppID    = 10
	testOwnerID  = 7
)

var testAdmin = auth.Principal{UserID: testOwnerID, TenantID: testTenantID, TenantSlug: testTenant, Email: "admin@acme.test", Role: auth.RoleAdmin}

// newAPIContext builds a JSON request for an authenticated admin. params are
// name/value pairs for path parameters.
func newAPIContext(t *testing.T, method, target, body string, params ...string) (*echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	if len(params)%2 != 0 {
		t.Fatalf("params must be name/value pairs: %v", params)
	}
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(authn.ContextKeyPrincipal, testAdmin)

	values := echo.PathValues{{Name: authn.TenantParam, Value: testTenant}}
	for i := 0; i < len(params); i += 2 {
		values = append(values, echo.PathValue{Name: params[i], Value: params[i+1]})
	}
	c.SetPathValues(values)
	return c, rec
}

type memIntegrations struct {
	mu   sync.Mutex
	rows []integrations.Integration
}

func (m *memIntegrations) List(_ context.Context, tenantID int64) ([]integrations.Integration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []integrations.Integration
	for _, r := range m.rows {
		if r.TenantID == tenantID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memIntegrations) Get(_ context.Context, tenantID, id int64) (integrations.Integration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.ID == id && r.TenantID == tenantID {
			return r, nil
		}
	}
	return integrations.Integration{}, integrations.ErrNotFound
}

func (m *memIntegrations) update(tenantID, id int64, fn func(*integrations.Integration)) (integrations.Integration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == id && m.rows[i].TenantID == tenantID {
			fn(&m.rows[i])
			return m.rows[i], nil
		}
	}
	return integrations.Integration{}, integrations.ErrNotFound
}

func (m *memIntegrations) SetEnabled(_ context.Context, tenantID, id int64, enabled bool) (integrations.Integration, error) {
	return m.update(tenantID, id, func(r *integrations.Integration) { r.Enabled = enabled })
}

func (m *memIntegrations) SetCredentials(_ context.Context, tenantID, id int64, _ []byte) (integrations.Integration, error) {
	return m.update(tenantID, id, func(r *integrations.Integration) { r.IsCredentialsAdded = true })
}

func (m *memIntegrations) ClearCredentials(_ context.Context, tenantID, id int64) (integrations.Integration, error) {
	return m.update(tenantID, id, func(r *integrations.Integration) {
		r.IsCredentialsAdded = false
		r.Enabled = false
	})
}

func (m *memIntegrations) InsertIfMissing(_ context.Context, tenantID int64, entry integrations.CatalogEntry) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.TenantID == tenantID && r.Name == entry.Name {
			return false, nil
		}
	}
	m.rows = append(m.rows, integrations.Integration{
		ID:          int64(len(m.rows) + 1),
		TenantID:    tenantID,
		Name:        entry.Name,
		Category:    entry.Category,
		Description: entry.Description,
	})
	return true, nil
}

// newIntegrationsHandler returns handlers over a tenant seeded with the
// default catalog.
func newIntegrationsHandler(t *testing.T) (*Handlers, *memIntegrations) {
	t.Helper()
	store := &memIntegrations{}
	svc := integrations.NewService(store, nil, integrations.NewCache(16, 0), nil)
	if _, err := svc.Seed(context.Background(), testTenantID); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	return &Handlers{Integrations: svc}, store
}

type memSession struct {
	mu     sync.Mutex
	values map[string]any
}

func (s *memSession) Put(_ context.Context, key string, val any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		s.values = map[string]any{}
	}
	s.values[key] = val
}

func (s *memSession) GetBytes(_ context.Context, key string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, _ := s.values[key].([]byte)
	return b
}

func (s *memSession) Remove(_ context.Context, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

func (s *memSession) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values)
}

// memUseCases stores use cases for one tenant owning testAppID. A failed
// InTx restores the previous state; failCreateRisk makes every risk insert
// fail.
type memUseCases struct {
	mu             sync.Mutex
	useCases       map[int64]usecases.UseCase
	nextID         int64
	failCreateRisk error
}

func newMemUseCases() *memUseCases {
	return &memUseCases{useCases: map[int64]usecases.UseCase{}}
}

func (m *memUseCases) ApplicationInTenant(_ context.Context, tenantID, applicationID int64) (bool, error) {
	return tenantID == testTenantID && applicationID == testAppID, nil
}

func (m *memUseCases) GetUseCase(_ context.Context, tenantID, id int64) (usecases.UseCase, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	uc, ok := m.useCases[id]
	if !ok || tenantID != testTenantID {
		return usecases.UseCase{}, usecases.ErrNotFound
	}
	uc.Risks = slices.Clone(uc.Risks)
	return uc, nil
}

func (m *memUseCases) CountTenantUsers(_ context.Context, tenantID int64, ids []int64) (int, error) {
	n := 0
	for _, id := range ids {
		if tenantID == testTenantID && id == testOwnerID {
			n++
		}
	}
	return n, nil
}

func (m *memUseCases) ListAIRisks(context.Context, int64) ([]usecases.AIRisk, error) {
	return []usecases.AIRisk{{ID: 1, Title: "Hallucination", Category: "accuracy"}}, nil
}

func (m *memUseCases) InTx(_ context.Context, fn func(usecases.TxStore) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	saved, savedID := maps.Clone(m.useCases), m.nextID
	for id, uc := range saved {
		uc.Risks = slices.Clone(uc.Risks)
		saved[id] = uc
	}
	if err := fn(m); err != nil {
		m.useCases, m.nextID = saved, savedID
		return err
	}
	return nil
}

func (m *memUseCases) CreateUseCase(_ context.Context, appID int64, f usecases.Fields, a usecases.Assessments) (usecases.UseCase, error) {
	m.nextID++
	uc := usecases.UseCase{ID: m.nextID, ApplicationID: appID, Fields: f, Assessments: a}
	m.useCases[uc.ID] = uc
	return uc, nil
}

func (m *memUseCases) UpdateUseCase(_ context.Context, id int64, f usecases.Fields, a usecases.Assessments) (usecases.UseCase, error) {
	uc, ok := m.useCases[id]
	if !ok {
		return usecases.UseCase{}, usecases.ErrNotFound
	}
	uc.Fields, uc.Assessments = f, a
	m.useCases[id] = uc
	return uc, nil
}

func (m *memUseCases) CreateRisk(_ context.Context, ucID int64, r usecases.Risk) (usecases.Risk, error) {
	if m.failCreateRisk != nil {
		return usecases.Risk{}, m.failCreateRisk
	}
	m.nextID++
	r.ID = m.nextID
	uc := m.useCases[ucID]
	uc.Risks = append(uc.Risks, r)
	m.useCases[ucID] = uc
	return r, nil
}

func (m *memUseCases) UpdateRisk(_ context.Context, ucID int64, r usecases.Risk) (usecases.Risk, error) {
	uc := m.useCases[ucID]
	for i := range uc.Risks {
		if uc.Risks[i].ID == r.ID {
			uc.Risks[i] = r
			return r, nil
		}
	}
	return usecases.Risk{}, usecases.ErrRiskNotFound
}

func (m *memUseCases) DeleteRisk(_ context.Context, ucID, id int64) error {
	uc := m.useCases[ucID]
	for i := range uc.Risks {
		if uc.Risks[i].ID == id {
			uc.Risks = slices.Delete(uc.Risks, i, i+1)
			m.useCases[ucID] = uc
			return nil
		}
	}
	return usecases.ErrRiskNotFound
}

func newWizardHandler() (*Handlers, *memUseCases, *memSession) {
	store := newMemUseCases()
	sess := &memSession{}
	return &Handlers{
		UseCases: usecases.NewService(store),
		Drafts:   usecases.NewDrafts(sess),
	}, store, sess
}

type memCounter struct {
	useCases, enabled, models int64
	err                       error
}

func (m memCounter) CountTenantUseCases(context.Context, int64) (int64, error) {
	return m.useCases, m.err
}

func (m memCounter) CountEnabledIntegrations(context.Context, int64) (int64, error) {
	return m.enabled, m.err
}

func (m memCounter) CountTenantModels(context.Context, int64) (int64, error) {
	return m.models, m.err
}

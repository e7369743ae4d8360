package integrations

import (
	"context"
	"errors"
	"sync"
	"time"
)

type fakeStore struct {
	mu      sync.Mutex
	nextID  int64
	rows    map[int64]Integration
	listErr error
	setErr  error
	lists   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: make(map[int64]Integration)}
}

func (f *fakeStore) List(_ context.Context, tenantID int64) ([]Integration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []Integration
	for id := int64(1); id <= f.nextID; id++ {
		if row, ok := f.rows[id]; ok && row.TenantID == tenantID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeStore) Get(_ context.Context, tenantID, id int64) (Integration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok || row.TenantID != tenantID {
		return Integration{}, ErrNotFound
	}
	return row, nil
}

func (f *fakeStore) update(tenantID, id int64, fn func(*Integration) error) (Integration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok || row.TenantID != tenantID {
		return Integration{}, ErrNotFound
	}
	if err := fn(&row); err != nil {
		return Integration{}, err
	}
	row.UpdatedAt = time.Now()
	f.rows[id] = row
	return row, nil
}

func (f *fakeStore) SetEnabled(_ context.Context, tenantID, id int64, enabled bool) (Integration, error) {
	return f.update(tenantID, id, func(row *Integration) error {
		if f.setErr != nil {
			return f.setErr
		}
		if enabled && !row.IsCredentialsAdded {
			return errors.New("violates check constraint integrations_enabled_requires_credentials")
		}
		row.Enabled = enabled
		return nil
	})
}

func (f *fakeStore) SetCredentials(_ context.Context, tenantID, id int64, config []byte) (Integration, error) {
	return f.update(tenantID, id, func(row *Integration) error {
		row.config = config
		row.IsCredentialsAdded = true
		return nil
	})
}

func (f *fakeStore) ClearCredentials(_ context.Context, tenantID, id int64) (Integration, error) {
	return f.update(tenantID, id, func(row *Integration) error {
		row.config = []byte(`{}`)
		row.IsCredentialsAdded = false
		row.Enabled = false
		return nil
	})
}

func (f *fakeStore) InsertIfMissing(_ context.Context, tenantID int64, entry CatalogEntry) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.TenantID == tenantID && row.Name == entry.Name {
			return false, nil
		}
	}
	f.nextID++
	f.rows[f.nextID] = Integration{
		ID:          f.nextID,
		TenantID:    tenantID,
		Name:        entry.Name,
		Category:    entry.Category,
		LogoFile:    entry.LogoFile,
		Description: entry.Description,
		config:      []byte(`{}`),
	}
	return true, nil
}

func (f *fakeStore) byName(tenantID int64, name string) Integration {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.TenantID == tenantID && row.Name == name {
			return row
		}
	}
	return Integration{}
}

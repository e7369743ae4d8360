package integrations

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/open-sspm/open-aigov/internal/db/gen"
)

type PGStore struct {
	q *gen.Queries
}

func NewPGStore(q *gen.Queries) *PGStore {
	return &PGStore{q: q}
}

func fromRow(row gen.Integration) Integration {
	return Integration{
		ID:                 row.ID,
		TenantID:           row.TenantID,
		Name:               row.Name,
		Category:           Category(row.Category),
		LogoFile:           row.LogoFile,
		Description:        row.Description,
		Enabled:            row.Enabled,
		IsCredentialsAdded: row.IsCredentialsAdded,
		UpdatedAt:          row.UpdatedAt.Time,
		config:             row.Config,
	}
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *PGStore) List(ctx context.Context, tenantID int64) ([]Integration, error) {
	rows, err := s.q.ListIntegrationsByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]Integration, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromRow(row))
	}
	return out, nil
}

func (s *PGStore) Get(ctx context.Context, tenantID, id int64) (Integration, error) {
	row, err := s.q.GetIntegration(ctx, gen.GetIntegrationParams{TenantID: tenantID, ID: id})
	if err != nil {
		return Integration{}, notFound(err)
	}
	return fromRow(row), nil
}

func (s *PGStore) SetEnabled(ctx context.Context, tenantID, id int64, enabled bool) (Integration, error) {
	row, err := s.q.UpdateIntegrationEnabled(ctx, gen.UpdateIntegrationEnabledParams{TenantID: tenantID, ID: id, Enabled: enabled})
	if err != nil {
		return Integration{}, notFound(err)
	}
	return fromRow(row), nil
}

func (s *PGStore) SetCredentials(ctx context.Context, tenantID, id int64, config []byte) (Integration, error) {
	row, err := s.q.SetIntegrationCredentials(ctx, gen.SetIntegrationCredentialsParams{TenantID: tenantID, ID: id, Config: config})
	if err != nil {
		return Integration{}, notFound(err)
	}
	return fromRow(row), nil
}

func (s *PGStore) ClearCredentials(ctx context.Context, tenantID, id int64) (Integration, error) {
	row, err := s.q.ClearIntegrationCredentials(ctx, gen.ClearIntegrationCredentialsParams{TenantID: tenantID, ID: id})
	if err != nil {
		return Integration{}, notFound(err)
	}
	return fromRow(row), nil
}

func (s *PGStore) InsertIfMissing(ctx context.Context, tenantID int64, entry CatalogEntry) (bool, error) {
	n, err := s.q.InsertIntegrationIfMissing(ctx, gen.InsertIntegrationIfMissingParams{
		TenantID:    tenantID,
		Name:        entry.Name,
		Category:    string(entry.Category),
		LogoFile:    entry.LogoFile,
		Description: entry.Description,
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

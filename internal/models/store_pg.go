package models

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/open-sspm/open-aigov/internal/db/gen"
)

const uniqueViolation = "23505"

type PGStore struct {
	q *gen.Queries
}

func NewPGStore(q *gen.Queries) *PGStore {
	return &PGStore{q: q}
}

func mapErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicate
	}
	return err
}

func appModelFromRow(r gen.ApplicationModel) ApplicationModel {
	return ApplicationModel{
		ID:            r.ID,
		ApplicationID: r.ApplicationID,
		Details: Details{
			Provider:            r.Provider,
			ModelID:             r.ModelID,
			HostingLocation:     r.HostingLocation,
			Architecture:        r.Architecture,
			Objectives:          r.Objectives,
			ComputeRequirements: r.ComputeRequirements,
			TrainingDuration:    r.TrainingDuration,
			DatasetSize:         r.DatasetSize,
			ModelSize:           r.ModelSize,
			InferenceLatency:    r.InferenceLatency,
			PromptRegistryRef:   r.PromptRegistryRef,
		},
		CreatedAt: r.CreatedAt.Time,
		UpdatedAt: r.UpdatedAt.Time,
	}
}

func providerModelFromRow(r gen.ProviderModel) ProviderModel {
	return ProviderModel{
		ID: r.ID,
		Details: Details{
			Provider:            r.Provider,
			ModelID:             r.ModelID,
			HostingLocation:     r.HostingLocation,
			Architecture:        r.Architecture,
			Objectives:          r.Objectives,
			ComputeRequirements: r.ComputeRequirements,
			TrainingDuration:    r.TrainingDuration,
			DatasetSize:         r.DatasetSize,
			ModelSize:           r.ModelSize,
			InferenceLatency:    r.InferenceLatency,
			PromptRegistryRef:   r.PromptRegistryRef,
		},
		CreatedAt: r.CreatedAt.Time,
		UpdatedAt: r.UpdatedAt.Time,
	}
}

func (s *PGStore) ApplicationInTenant(ctx context.Context, tenantID, applicationID int64) (bool, error) {
	_, err := s.q.GetApplication(ctx, gen.GetApplicationParams{TenantID: tenantID, ID: applicationID})
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (s *PGStore) ListApplicationModels(ctx context.Context, applicationID int64) ([]ApplicationModel, error) {
	rows, err := s.q.ListApplicationModels(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	out := make([]ApplicationModel, 0, len(rows))
	for _, r := range rows {
		out = append(out, appModelFromRow(r))
	}
	return out, nil
}

func (s *PGStore) ListTenantModels(ctx context.Context, tenantID int64) ([]ApplicationModel, error) {
	rows, err := s.q.ListTenantModels(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]ApplicationModel, 0, len(rows))
	for _, r := range rows {
		out = append(out, appModelFromRow(r))
	}
	return out, nil
}

func (s *PGStore) CreateApplicationModel(ctx context.Context, applicationID int64, d Details) (ApplicationModel, error) {
	row, err := s.q.CreateApplicationModel(ctx, gen.CreateApplicationModelParams{
		ApplicationID:       applicationID,
		Provider:            d.Provider,
		ModelID:             d.ModelID,
		HostingLocation:     d.HostingLocation,
		Architecture:        d.Architecture,
		Objectives:          d.Objectives,
		ComputeRequirements: d.ComputeRequirements,
		TrainingDuration:    d.TrainingDuration,
		DatasetSize:         d.DatasetSize,
		ModelSize:           d.ModelSize,
		InferenceLatency:    d.InferenceLatency,
		PromptRegistryRef:   d.PromptRegistryRef,
	})
	if err != nil {
		return ApplicationModel{}, mapErr(err)
	}
	return appModelFromRow(row), nil
}

func (s *PGStore) UpdateApplicationModel(ctx context.Context, applicationID, id int64, d Details) (ApplicationModel, error) {
	row, err := s.q.UpdateApplicationModel(ctx, gen.UpdateApplicationModelParams{
		ApplicationID:       applicationID,
		ID:                  id,
		Provider:            d.Provider,
		ModelID:             d.ModelID,
		HostingLocation:     d.HostingLocation,
		Architecture:        d.Architecture,
		Objectives:          d.Objectives,
		ComputeRequirements: d.ComputeRequirements,
		TrainingDuration:    d.TrainingDuration,
		DatasetSize:         d.DatasetSize,
		ModelSize:           d.ModelSize,
		InferenceLatency:    d.InferenceLatency,
		PromptRegistryRef:   d.PromptRegistryRef,
	})
	if err != nil {
		return ApplicationModel{}, mapErr(err)
	}
	return appModelFromRow(row), nil
}

func (s *PGStore) DeleteApplicationModel(ctx context.Context, applicationID, id int64) (bool, error) {
	n, err := s.q.DeleteApplicationModel(ctx, gen.DeleteApplicationModelParams{ApplicationID: applicationID, ID: id})
	return n > 0, err
}

func (s *PGStore) ListProviderModels(ctx context.Context, provider string) ([]ProviderModel, error) {
	var (
		rows []gen.ProviderModel
		err  error
	)
	if provider == "" {
		rows, err = s.q.ListProviderModels(ctx)
	} else {
		rows, err = s.q.ListProviderModelsByProvider(ctx, provider)
	}
	if err != nil {
		return nil, err
	}
	out := make([]ProviderModel, 0, len(rows))
	for _, r := range rows {
		out = append(out, providerModelFromRow(r))
	}
	return out, nil
}

func (s *PGStore) CreateProviderModel(ctx context.Context, d Details) (ProviderModel, error) {
	row, err := s.q.CreateProviderModel(ctx, gen.CreateProviderModelParams{
		Provider:            d.Provider,
		ModelID:             d.ModelID,
		HostingLocation:     d.HostingLocation,
		Architecture:        d.Architecture,
		Objectives:          d.Objectives,
		ComputeRequirements: d.ComputeRequirements,
		TrainingDuration:    d.TrainingDuration,
		DatasetSize:         d.DatasetSize,
		ModelSize:           d.ModelSize,
		InferenceLatency:    d.InferenceLatency,
		PromptRegistryRef:   d.PromptRegistryRef,
	})
	if err != nil {
		return ProviderModel{}, mapErr(err)
	}
	return providerModelFromRow(row), nil
}

func (s *PGStore) UpdateProviderModel(ctx context.Context, id int64, d Details) (ProviderModel, error) {
	row, err := s.q.UpdateProviderModel(ctx, gen.UpdateProviderModelParams{
		ID:                  id,
		Provider:            d.Provider,
		ModelID:             d.ModelID,
		HostingLocation:     d.HostingLocation,
		Architecture:        d.Architecture,
		Objectives:          d.Objectives,
		ComputeRequirements: d.ComputeRequirements,
		TrainingDuration:    d.TrainingDuration,
		DatasetSize:         d.DatasetSize,
		ModelSize:           d.ModelSize,
		InferenceLatency:    d.InferenceLatency,
		PromptRegistryRef:   d.PromptRegistryRef,
	})
	if err != nil {
		return ProviderModel{}, mapErr(err)
	}
	return providerModelFromRow(row), nil
}

func (s *PGStore) DeleteProviderModel(ctx context.Context, id int64) (bool, error) {
	n, err := s.q.DeleteProviderModel(ctx, id)
	return n > 0, err
}

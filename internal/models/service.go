package models

import (
	"context"
	"fmt"
	"strings"
)

type Store interface {
	ApplicationInTenant(ctx context.Context, tenantID, applicationID int64) (bool, error)

	ListApplicationModels(ctx context.Context, applicationID int64) ([]ApplicationModel, error)
	ListTenantModels(ctx context.Context, tenantID int64) ([]ApplicationModel, error)
	CreateApplicationModel(ctx context.Context, applicationID int64, d Details) (ApplicationModel, error)
	UpdateApplicationModel(ctx context.Context, applicationID, id int64, d Details) (ApplicationModel, error)
	DeleteApplicationModel(ctx context.Context, applicationID, id int64) (bool, error)

	ListProviderModels(ctx context.Context, provider string) ([]ProviderModel, error)
	CreateProviderModel(ctx context.Context, d Details) (ProviderModel, error)
	UpdateProviderModel(ctx context.Context, id int64, d Details) (ProviderModel, error)
	DeleteProviderModel(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) requireApplication(ctx context.Context, tenantID, applicationID int64) error {
	ok, err := s.store.ApplicationInTenant(ctx, tenantID, applicationID)
	if err != nil {
		return fmt.Errorf("load application %d: %w", applicationID, err)
	}
	if !ok {
		return ErrApplicationNotFound
	}
	return nil
}

func (s *Service) GetApplicationModels(ctx context.Context, tenantID, applicationID int64) ([]ApplicationModel, error) {
	if err := s.requireApplication(ctx, tenantID, applicationID); err != nil {
		return nil, err
	}
	return s.store.ListApplicationModels(ctx, applicationID)
}

// GetTenantModels lists the models of every application in the tenant.
func (s *Service) GetTenantModels(ctx context.Context, tenantID int64) ([]ApplicationModel, error) {
	return s.store.ListTenantModels(ctx, tenantID)
}

func (s *Service) CreateApplicationModel(ctx context.Context, tenantID, applicationID int64, d Details) (ApplicationModel, error) {
	if err := d.Validate(); err != nil {
		return ApplicationModel{}, err
	}
	if err := s.requireApplication(ctx, tenantID, applicationID); err != nil {
		return ApplicationModel{}, err
	}
	return s.store.CreateApplicationModel(ctx, applicationID, d.Normalized())
}

func (s *Service) UpdateApplicationModel(ctx context.Context, tenantID, applicationID, id int64, d Details) (ApplicationModel, error) {
	if err := d.Validate(); err != nil {
		return ApplicationModel{}, err
	}
	if err := s.requireApplication(ctx, tenantID, applicationID); err != nil {
		return ApplicationModel{}, err
	}
	return s.store.UpdateApplicationModel(ctx, applicationID, id, d.Normalized())
}

func (s *Service) DeleteApplicationModel(ctx context.Context, tenantID, applicationID, id int64) error {
	if err := s.requireApplication(ctx, tenantID, applicationID); err != nil {
		return err
	}
	deleted, err := s.store.DeleteApplicationModel(ctx, applicationID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// GetModelsByProvider lists provider catalog models; an empty provider lists
// all of them. Matching is case-insensitive.
func (s *Service) GetModelsByProvider(ctx context.Context, provider string) ([]ProviderModel, error) {
	return s.store.ListProviderModels(ctx, strings.TrimSpace(provider))
}

func (s *Service) CreateProviderModel(ctx context.Context, d Details) (ProviderModel, error) {
	if err := d.Validate(); err != nil {
		return ProviderModel{}, err
	}
	return s.store.CreateProviderModel(ctx, d.Normalized())
}

func (s *Service) UpdateProviderModel(ctx context.Context, id int64, d Details) (ProviderModel, error) {
	if err := d.Validate(); err != nil {
		return ProviderModel{}, err
	}
	return s.store.UpdateProviderModel(ctx, id, d.Normalized())
}

func (s *Service) DeleteProviderModel(ctx context.Context, id int64) error {
	deleted, err := s.store.DeleteProviderModel(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

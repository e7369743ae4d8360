package usecases

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
)

// fakeStore keeps use cases in memory. InTx works on a copy that replaces
// the committed state only when fn succeeds.
type fakeStore struct {
	mu       sync.Mutex
	apps     map[int64]int64 // application -> tenant
	users    map[int64]int64 // user -> tenant
	useCases map[int64]UseCase
	nextID   int64
	failOn   string
	aiRisks  []AIRisk
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		apps:     map[int64]int64{},
		users:    map[int64]int64{},
		useCases: map[int64]UseCase{},
	}
}

var errInjected = errors.New("injected failure")

func (s *fakeStore) ApplicationInTenant(_ context.Context, tenantID, applicationID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apps[applicationID] == tenantID, nil
}

func (s *fakeStore) GetUseCase(_ context.Context, tenantID, id int64) (UseCase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	uc, ok := s.useCases[id]
	if !ok || s.apps[uc.ApplicationID] != tenantID {
		return UseCase{}, ErrNotFound
	}
	uc.Risks = slices.Clone(uc.Risks)
	return uc, nil
}

func (s *fakeStore) CountTenantUsers(_ context.Context, tenantID int64, ids []int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, id := range ids {
		if s.users[id] == tenantID {
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) ListAIRisks(context.Context, int64) ([]AIRisk, error) {
	return s.aiRisks, nil
}

func (s *fakeStore) InTx(_ context.Context, fn func(TxStore) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx := &fakeTx{store: s, useCases: maps.Clone(s.useCases), nextID: s.nextID}
	for id, uc := range tx.useCases {
		uc.Risks = slices.Clone(uc.Risks)
		tx.useCases[id] = uc
	}
	if err := fn(tx); err != nil {
		return err
	}
	s.useCases = tx.useCases
	s.nextID = tx.nextID
	return nil
}

type fakeTx struct {
	store    *fakeStore
	useCases map[int64]UseCase
	nextID   int64
}

func (tx *fakeTx) id() int64 {
	tx.nextID++
	return tx.nextID
}

func (tx *fakeTx) CreateUseCase(_ context.Context, applicationID int64, f Fields, a Assessments) (UseCase, error) {
	uc := UseCase{ID: tx.id(), ApplicationID: applicationID, Fields: f.Normalized(), Assessments: a}
	tx.useCases[uc.ID] = uc
	return uc, nil
}

func (tx *fakeTx) UpdateUseCase(_ context.Context, id int64, f Fields, a Assessments) (UseCase, error) {
	uc, ok := tx.useCases[id]
	if !ok {
		return UseCase{}, ErrNotFound
	}
	uc.Fields = f.Normalized()
	uc.Assessments = a
	tx.useCases[id] = uc
	return uc, nil
}

func (tx *fakeTx) CreateRisk(_ context.Context, useCaseID int64, r Risk) (Risk, error) {
	if tx.store.failOn == "create" {
		return Risk{}, errInjected
	}
	uc := tx.useCases[useCaseID]
	r.ID = tx.id()
	uc.Risks = append(uc.Risks, r)
	tx.useCases[useCaseID] = uc
	return r, nil
}

func (tx *fakeTx) UpdateRisk(_ context.Context, useCaseID int64, r Risk) (Risk, error) {
	uc := tx.useCases[useCaseID]
	i := slices.IndexFunc(uc.Risks, func(x Risk) bool { return x.ID == r.ID })
	if i < 0 {
		return Risk{}, ErrRiskNotFound
	}
	uc.Risks[i] = r
	return r, nil
}

func (tx *fakeTx) DeleteRisk(_ context.Context, useCaseID, id int64) error {
	uc := tx.useCases[useCaseID]
	i := slices.IndexFunc(uc.Risks, func(x Risk) bool { return x.ID == id })
	if i < 0 {
		return ErrRiskNotFound
	}
	uc.Risks = slices.Delete(uc.Risks, i, i+1)
	tx.useCases[useCaseID] = uc
	return nil
}

type fakeSession struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeSession() *fakeSession {
	return &fakeSession{data: map[string][]byte{}}
}

func (s *fakeSession) Put(_ context.Context, key string, val any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = val.([]byte)
}

func (s *fakeSession) GetBytes(_ context.Context, key string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[key]
}

func (s *fakeSession) Remove(_ context.Context, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

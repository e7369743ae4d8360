package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/open-sspm/open-aigov/internal/db/gen"
)

// Beginner is satisfied by *pgxpool.Pool and by pgx.Tx (nested transactions
// become savepoints).
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PGStore struct {
	db Beginner
	q  *gen.Queries
}

func NewPGStore(db Beginner, q *gen.Queries) *PGStore {
	return &PGStore{db: db, q: q}
}

func (s *PGStore) ApplicationInTenant(ctx context.Context, tenantID, applicationID int64) (bool, error) {
	_, err := s.q.GetApplication(ctx, gen.GetApplicationParams{TenantID: tenantID, ID: applicationID})
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *PGStore) GetUseCase(ctx context.Context, tenantID, id int64) (UseCase, error) {
	row, err := s.q.GetUseCase(ctx, gen.GetUseCaseParams{TenantID: tenantID, ID: id})
	if errors.Is(err, pgx.ErrNoRows) {
		return UseCase{}, ErrNotFound
	}
	if err != nil {
		return UseCase{}, err
	}
	uc, err := useCaseFromRow(row)
	if err != nil {
		return UseCase{}, err
	}
	risks, err := s.q.ListRisksByUseCase(ctx, id)
	if err != nil {
		return UseCase{}, err
	}
	uc.Risks = make([]Risk, 0, len(risks))
	for _, r := range risks {
		uc.Risks = append(uc.Risks, riskFromRow(r))
	}
	return uc, nil
}

func (s *PGStore) CountTenantUsers(ctx context.Context, tenantID int64, ids []int64) (int, error) {
	n, err := s.q.CountTenantUsersByIDs(ctx, gen.CountTenantUsersByIDsParams{TenantID: tenantID, Ids: ids})
	return int(n), err
}

func (s *PGStore) ListAIRisks(ctx context.Context, tenantID int64) ([]AIRisk, error) {
	rows, err := s.q.ListAIRisksByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]AIRisk, 0, len(rows))
	for _, r := range rows {
		out = append(out, AIRisk{ID: r.ID, Title: r.Title, Category: r.Category, Description: r.Description})
	}
	return out, nil
}

func (s *PGStore) InTx(ctx context.Context, fn func(TxStore) error) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()
	if err := fn(&pgTxStore{q: s.q.WithTx(tx)}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

type pgTxStore struct {
	q *gen.Queries
}

func (s *pgTxStore) CreateUseCase(ctx context.Context, applicationID int64, f Fields, a Assessments) (UseCase, error) {
	f = f.Normalized()
	blob, err := marshalAssessments(a)
	if err != nil {
		return UseCase{}, err
	}
	row, err := s.q.CreateUseCase(ctx, gen.CreateUseCaseParams{
		ApplicationID:    applicationID,
		BusinessFunction: f.BusinessFunction,
		UseCase:          f.UseCase,
		WhatItDoes:       f.WhatItDoes,
		AgentPatterns:    f.AgentPatterns,
		KeyInputs:        f.KeyInputs,
		PrimaryOutputs:   f.PrimaryOutputs,
		BusinessImpacts:  f.BusinessImpacts,
		Kpis:             f.KPIs,
		Assessments:      blob,
	})
	if err != nil {
		return UseCase{}, err
	}
	return useCaseFromRow(row)
}

func (s *pgTxStore) UpdateUseCase(ctx context.Context, id int64, f Fields, a Assessments) (UseCase, error) {
	f = f.Normalized()
	blob, err := marshalAssessments(a)
	if err != nil {
		return UseCase{}, err
	}
	row, err := s.q.UpdateUseCase(ctx, gen.UpdateUseCaseParams{
		ID:               id,
		BusinessFunction: f.BusinessFunction,
		UseCase:          f.UseCase,
		WhatItDoes:       f.WhatItDoes,
		AgentPatterns:    f.AgentPatterns,
		KeyInputs:        f.KeyInputs,
		PrimaryOutputs:   f.PrimaryOutputs,
		BusinessImpacts:  f.BusinessImpacts,
		Kpis:             f.KPIs,
		Assessments:      blob,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return UseCase{}, ErrNotFound
	}
	if err != nil {
		return UseCase{}, err
	}
	return useCaseFromRow(row)
}

func (s *pgTxStore) CreateRisk(ctx context.Context, useCaseID int64, r Risk) (Risk, error) {
	r = r.Normalized()
	date, err := toDate(r.TargetDate)
	if err != nil {
		return Risk{}, err
	}
	row, err := s.q.CreateRisk(ctx, gen.CreateRiskParams{
		UseCaseID:        useCaseID,
		Name:             r.Name,
		OwnerID:          r.OwnerID,
		Description:      r.Description,
		RiskLevel:        string(r.RiskLevel),
		Likelihood:       string(r.Likelihood),
		MitigationStatus: string(r.MitigationStatus),
		TargetDate:       date,
		MitigationPlan:   r.MitigationPlan,
	})
	if err != nil {
		return Risk{}, err
	}
	return riskFromRow(row), nil
}

func (s *pgTxStore) UpdateRisk(ctx context.Context, useCaseID int64, r Risk) (Risk, error) {
	r = r.Normalized()
	date, err := toDate(r.TargetDate)
	if err != nil {
		return Risk{}, err
	}
	row, err := s.q.UpdateRisk(ctx, gen.UpdateRiskParams{
		UseCaseID:        useCaseID,
		ID:               r.ID,
		Name:             r.Name,
		OwnerID:          r.OwnerID,
		Description:      r.Description,
		RiskLevel:        string(r.RiskLevel),
		Likelihood:       string(r.Likelihood),
		MitigationStatus: string(r.MitigationStatus),
		TargetDate:       date,
		MitigationPlan:   r.MitigationPlan,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return Risk{}, ErrRiskNotFound
	}
	if err != nil {
		return Risk{}, err
	}
	return riskFromRow(row), nil
}

func (s *pgTxStore) DeleteRisk(ctx context.Context, useCaseID, id int64) error {
	n, err := s.q.DeleteRisk(ctx, gen.DeleteRiskParams{UseCaseID: useCaseID, ID: id})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRiskNotFound
	}
	return nil
}

func marshalAssessments(a Assessments) ([]byte, error) {
	if a == nil {
		a = Assessments{}
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("encode assessments: %w", err)
	}
	return b, nil
}

func useCaseFromRow(row gen.UseCase) (UseCase, error) {
	uc := UseCase{
		ID:            row.ID,
		ApplicationID: row.ApplicationID,
		Fields: Fields{
			BusinessFunction: row.BusinessFunction,
			UseCase:          row.UseCase,
			WhatItDoes:       row.WhatItDoes,
			AgentPatterns:    row.AgentPatterns,
			KeyInputs:        row.KeyInputs,
			PrimaryOutputs:   row.PrimaryOutputs,
			BusinessImpacts:  row.BusinessImpacts,
			KPIs:             row.Kpis,
		},
		Assessments: Assessments{},
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
	if len(row.Assessments) > 0 {
		if err := json.Unmarshal(row.Assessments, &uc.Assessments); err != nil {
			return UseCase{}, fmt.Errorf("decode assessments of use case %d: %w", row.ID, err)
		}
	}
	return uc, nil
}

func riskFromRow(row gen.Risk) Risk {
	r := Risk{
		ID:               row.ID,
		Name:             row.Name,
		OwnerID:          row.OwnerID,
		Description:      row.Description,
		RiskLevel:        RiskLevel(row.RiskLevel),
		Likelihood:       Likelihood(row.Likelihood),
		MitigationStatus: MitigationStatus(row.MitigationStatus),
		MitigationPlan:   row.MitigationPlan,
	}
	if row.TargetDate.Valid {
		r.TargetDate = row.TargetDate.Time.Format(DateLayout)
	}
	return r
}

func toDate(s string) (pgtype.Date, error) {
	if s == "" {
		return pgtype.Date{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return pgtype.Date{}, fmt.Errorf("parse target date %q: %w", s, err)
	}
	return pgtype.Date{Time: t, Valid: true}, nil
}

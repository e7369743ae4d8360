package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/open-sspm/open-aigov/internal/logging"
	"github.com/open-sspm/open-aigov/internal/metrics"
)

// Store reads use cases and opens write transactions.
type Store interface {
	ApplicationInTenant(ctx context.Context, tenantID, applicationID int64) (bool, error)
	GetUseCase(ctx context.Context, tenantID, id int64) (UseCase, error)
	CountTenantUsers(ctx context.Context, tenantID int64, ids []int64) (int, error)
	ListAIRisks(ctx context.Context, tenantID int64) ([]AIRisk, error)
	InTx(ctx context.Context, fn func(TxStore) error) error
}

// TxStore is the write side, valid only inside Store.InTx.
type TxStore interface {
	CreateUseCase(ctx context.Context, applicationID int64, f Fields, a Assessments) (UseCase, error)
	UpdateUseCase(ctx context.Context, id int64, f Fields, a Assessments) (UseCase, error)
	CreateRisk(ctx context.Context, useCaseID int64, r Risk) (Risk, error)
	UpdateRisk(ctx context.Context, useCaseID int64, r Risk) (Risk, error)
	DeleteRisk(ctx context.Context, useCaseID, id int64) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) StartCreate(ctx context.Context, tenantID, applicationID int64) (*Wizard, error) {
	ok, err := s.store.ApplicationInTenant(ctx, tenantID, applicationID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrApplicationNotFound
	}
	return NewCreateWizard(tenantID, applicationID), nil
}

func (s *Service) StartEdit(ctx context.Context, tenantID, useCaseID int64) (*Wizard, error) {
	uc, err := s.store.GetUseCase(ctx, tenantID, useCaseID)
	if err != nil {
		return nil, err
	}
	return NewEditWizard(tenantID, uc), nil
}

func (s *Service) Get(ctx context.Context, tenantID, id int64) (UseCase, error) {
	return s.store.GetUseCase(ctx, tenantID, id)
}

func (s *Service) AIRisks(ctx context.Context, tenantID int64) ([]AIRisk, error) {
	return s.store.ListAIRisks(ctx, tenantID)
}

// Submit persists w in one transaction. Every tab is validated again first;
// when one fails the wizard moves back to it. The wizard is closed only
// after the transaction commits.
func (s *Service) Submit(ctx context.Context, w *Wizard) (UseCase, error) {
	if w.Closed {
		return UseCase{}, ErrClosed
	}
	if tab, fe := w.ValidateAll(); fe.Any() {
		w.Current = tab
		return UseCase{}, fmt.Errorf("%w: %w", ErrTabInvalid, fe)
	}
	if err := s.checkOwners(ctx, w); err != nil {
		return UseCase{}, err
	}
	if w.Mode == ModeEdit {
		if _, err := s.store.GetUseCase(ctx, w.TenantID, w.UseCaseID); err != nil {
			return UseCase{}, err
		}
	} else {
		ok, err := s.store.ApplicationInTenant(ctx, w.TenantID, w.ApplicationID)
		if err != nil {
			return UseCase{}, err
		}
		if !ok {
			return UseCase{}, ErrApplicationNotFound
		}
	}

	plan := w.Risks.Plan()
	var id int64
	err := s.store.InTx(ctx, func(tx TxStore) error {
		var uc UseCase
		var err error
		if w.Mode == ModeEdit {
			uc, err = tx.UpdateUseCase(ctx, w.UseCaseID, w.Fields, w.Assessments)
		} else {
			uc, err = tx.CreateUseCase(ctx, w.ApplicationID, w.Fields, w.Assessments)
		}
		if err != nil {
			return fmt.Errorf("save use case: %w", err)
		}
		id = uc.ID
		return applyPlan(ctx, tx, uc.ID, plan)
	})
	if err != nil {
		logging.FromContext(ctx).Error("use case save failed",
			slog.String("mode", string(w.Mode)),
			slog.Int64("use_case_id", w.UseCaseID),
			slog.Any("err", err),
		)
		return UseCase{}, err
	}
	w.Close()
	logging.FromContext(ctx).Info("use case saved",
		slog.String("mode", string(w.Mode)),
		slog.Int64("use_case_id", id),
		slog.Int("risks_created", len(plan.Creates)),
		slog.Int("risks_updated", len(plan.Updates)),
		slog.Int("risks_deleted", len(plan.Deletes)),
	)
	return s.store.GetUseCase(ctx, w.TenantID, id)
}

func applyPlan(ctx context.Context, tx TxStore, useCaseID int64, plan RiskPlan) error {
	for _, r := range plan.Updates {
		_, err := tx.UpdateRisk(ctx, useCaseID, r)
		countOp("update", err)
		if err != nil {
			return fmt.Errorf("update risk %d: %w", r.ID, err)
		}
	}
	for _, id := range plan.Deletes {
		err := tx.DeleteRisk(ctx, useCaseID, id)
		countOp("delete", err)
		if err != nil {
			return fmt.Errorf("delete risk %d: %w", id, err)
		}
	}
	for _, r := range plan.Creates {
		_, err := tx.CreateRisk(ctx, useCaseID, r)
		countOp("create", err)
		if err != nil {
			return fmt.Errorf("create risk %q: %w", r.Name, err)
		}
	}
	return nil
}

func countOp(op string, err error) {
	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultError
	}
	metrics.RiskReconcileOpsTotal.WithLabelValues(op, result).Inc()
}

// checkOwners requires the owner of every new or edited risk to be an active
// user of the tenant. Untouched stored risks keep their owner as-is.
func (s *Service) checkOwners(ctx context.Context, w *Wizard) error {
	var ids []int64
	for _, item := range w.Risks.Items() {
		if item.State != RiskStateNew && item.State != RiskStateEdited {
			continue
		}
		if !slices.Contains(ids, item.Risk.OwnerID) {
			ids = append(ids, item.Risk.OwnerID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	n, err := s.store.CountTenantUsers(ctx, w.TenantID, ids)
	if err != nil {
		return err
	}
	if n != len(ids) {
		w.Current = TabRisks
		return ErrUnknownOwner
	}
	return nil
}

// IsValidation reports whether err is a user-correctable wizard error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrTabInvalid) || errors.Is(err, ErrLastRisk) ||
		errors.Is(err, ErrUnknownOwner) || errors.Is(err, ErrForwardSkip) ||
		errors.Is(err, ErrUnknownTab)
}

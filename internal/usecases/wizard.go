package usecases

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/open-sspm/open-aigov/internal/metrics"
	"github.com/open-sspm/open-aigov/internal/validate"
)

type Tab string

const (
	TabUseCase             Tab = "usecase"
	TabRisks               Tab = "risks"
	TabTransparency        Tab = "transparency"
	TabHumanOversight      Tab = "human-oversight"
	TabBiasFairness        Tab = "bias-fairness"
	TabBiasMonitoring      Tab = "bias-monitoring"
	TabExplainability      Tab = "explainability"
	TabEnvironmentalImpact Tab = "environmental-impact"
)

// Tabs is the fixed order of the wizard.
var Tabs = []Tab{
	TabUseCase,
	TabRisks,
	TabTransparency,
	TabHumanOversight,
	TabBiasFairness,
	TabBiasMonitoring,
	TabExplainability,
	TabEnvironmentalImpact,
}

func (t Tab) index() int {
	return slices.Index(Tabs, t)
}

func (t Tab) Valid() bool {
	return t.index() >= 0
}

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

type Outcome string

const (
	OutcomeAdvanced Outcome = "advanced"
	OutcomeSubmit   Outcome = "submit"
)

var (
	ErrClosed      = errors.New("wizard is closed")
	ErrTabInvalid  = errors.New("current tab has invalid fields")
	ErrForwardSkip = errors.New("cannot skip ahead of the current tab")
	ErrUnknownTab  = errors.New("unknown wizard tab")
)

// Wizard is the in-progress state of a use case create or edit. Nothing is
// written to the database until the caller submits it.
type Wizard struct {
	ID            string      `json:"id"`
	Mode          Mode        `json:"mode"`
	TenantID      int64       `json:"tenant_id"`
	ApplicationID int64       `json:"application_id"`
	UseCaseID     int64       `json:"use_case_id,omitempty"`
	Current       Tab         `json:"current"`
	Closed        bool        `json:"closed"`
	Fields        Fields      `json:"fields"`
	Assessments   Assessments `json:"assessments"`
	Risks         *RiskSet    `json:"risks"`
}

// NewCreateWizard starts an empty wizard for a new use case.
func NewCreateWizard(tenantID, applicationID int64) *Wizard {
	return &Wizard{
		ID:            uuid.NewString(),
		Mode:          ModeCreate,
		TenantID:      tenantID,
		ApplicationID: applicationID,
		Current:       TabUseCase,
		Assessments:   Assessments{},
		Risks:         NewRiskSet(nil),
	}
}

// NewEditWizard starts a wizard prefilled from a stored use case.
func NewEditWizard(tenantID int64, uc UseCase) *Wizard {
	w := &Wizard{
		ID:            uuid.NewString(),
		Mode:          ModeEdit,
		TenantID:      tenantID,
		ApplicationID: uc.ApplicationID,
		UseCaseID:     uc.ID,
		Current:       TabUseCase,
		Fields:        uc.Fields.Normalized(),
		Assessments:   Assessments{},
		Risks:         NewRiskSet(uc.Risks),
	}
	for tab, answers := range uc.Assessments {
		if !IsQuestionnaire(tab) {
			continue
		}
		w.Assessments[tab] = make(map[string]string, len(answers))
		for k, v := range answers {
			w.Assessments[tab][k] = v
		}
	}
	return w
}

// Next validates the current tab and moves one step forward. On the last
// tab it returns OutcomeSubmit and leaves the wizard where it is; the
// caller persists and then calls Close.
func (w *Wizard) Next() (Outcome, error) {
	if w.Closed {
		return "", ErrClosed
	}
	from := w.Current
	if fe := w.ValidateTab(from); fe.Any() {
		metrics.WizardTransitionsTotal.WithLabelValues(string(from), metrics.ResultRejected).Inc()
		return "", fmt.Errorf("%w: %w", ErrTabInvalid, fe)
	}
	metrics.WizardTransitionsTotal.WithLabelValues(string(from), metrics.ResultSuccess).Inc()
	i := from.index()
	if i == len(Tabs)-1 {
		return OutcomeSubmit, nil
	}
	w.Current = Tabs[i+1]
	return OutcomeAdvanced, nil
}

// Back moves one step backward without validating. It is a no-op on the
// first tab.
func (w *Wizard) Back() error {
	if w.Closed {
		return ErrClosed
	}
	if i := w.Current.index(); i > 0 {
		w.Current = Tabs[i-1]
	}
	return nil
}

// GoTo jumps to tab, which must not be ahead of the current tab.
func (w *Wizard) GoTo(tab Tab) error {
	if w.Closed {
		return ErrClosed
	}
	if !tab.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTab, tab)
	}
	if tab.index() > w.Current.index() {
		return ErrForwardSkip
	}
	w.Current = tab
	return nil
}

func (w *Wizard) Close() {
	w.Closed = true
}

func (w *Wizard) SetFields(f Fields) error {
	if w.Closed {
		return ErrClosed
	}
	w.Fields = f.Normalized()
	return nil
}

// SetAnswers stores questionnaire answers for tab.
func (w *Wizard) SetAnswers(tab Tab, answers map[string]string) error {
	if w.Closed {
		return ErrClosed
	}
	if !IsQuestionnaire(tab) {
		return fmt.Errorf("%w: %q", ErrUnknownTab, tab)
	}
	if w.Assessments == nil {
		w.Assessments = Assessments{}
	}
	if fe := w.Assessments.Set(tab, answers); fe.Any() {
		return fe
	}
	return nil
}

func (w *Wizard) ValidateTab(tab Tab) validate.FieldErrors {
	switch tab {
	case TabUseCase:
		return w.Fields.Validate()
	case TabRisks:
		return w.Risks.Validate()
	default:
		return w.Assessments.Validate(tab)
	}
}

// ValidateAll checks every tab in order and returns the first invalid one.
func (w *Wizard) ValidateAll() (Tab, validate.FieldErrors) {
	for _, tab := range Tabs {
		if fe := w.ValidateTab(tab); fe.Any() {
			return tab, fe
		}
	}
	return "", nil
}

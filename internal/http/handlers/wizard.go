package handlers

import (
	"net/http"

	"github.com/labstack/echo/v5"
	"github.com/open-sspm/open-aigov/internal/usecases"
)

type wizardTab struct {
	Key       usecases.Tab        `json:"key"`
	Questions []usecases.Question `json:"questions,omitempty"`
	Complete  bool                `json:"complete"`
}

type wizardResponse struct {
	ID            string               `json:"id"`
	Mode          usecases.Mode        `json:"mode"`
	ApplicationID int64                `json:"application_id"`
	UseCaseID     int64                `json:"use_case_id,omitempty"`
	Current       usecases.Tab         `json:"current"`
	Tabs          []wizardTab          `json:"tabs"`
	Fields        usecases.Fields      `json:"fields"`
	Assessments   usecases.Assessments `json:"assessments"`
	Risks         []usecases.RiskItem  `json:"risks"`
	TotalRisks    int                  `json:"total_risks"`
}

func newWizardResponse(w *usecases.Wizard) wizardResponse {
	out := wizardResponse{
		ID:            w.ID,
		Mode:          w.Mode,
		ApplicationID: w.ApplicationID,
		UseCaseID:     w.UseCaseID,
		Current:       w.Current,
		Fields:        w.Fields,
		Assessments:   w.Assessments,
		Risks:         nonNil(w.Risks.Items()),
		TotalRisks:    w.Risks.Total(),
		Tabs:          make([]wizardTab, 0, len(usecases.Tabs)),
	}
	for _, tab := range usecases.Tabs {
		out.Tabs = append(out.Tabs, wizardTab{
			Key:       tab,
			Questions: usecases.QuestionsFor(tab),
			Complete:  !w.ValidateTab(tab).Any(),
		})
	}
	return out
}

// loadDraft returns the draft named by :draft. Drafts of another tenant or
// another application are reported as not found.
func (h *Handlers) loadDraft(c *echo.Context) (*usecases.Wizard, error) {
	p, err := principal(c)
	if err != nil {
		return nil, err
	}
	appID, err := paramID(c, "app")
	if err != nil {
		return nil, err
	}
	w, err := h.Drafts.Load(c.Request().Context(), p.TenantID, c.Param("draft"))
	if err != nil {
		return nil, err
	}
	if w.ApplicationID != appID {
		return nil, usecases.ErrDraftNotFound
	}
	return w, nil
}

// saveDraft stores w and responds with its current state.
func (h *Handlers) saveDraft(c *echo.Context, status int, w *usecases.Wizard) error {
	if err := h.Drafts.Save(c.Request().Context(), w); err != nil {
		return err
	}
	return c.JSON(status, newWizardResponse(w))
}

type startWizardRequest struct {
	UseCaseID int64 `json:"use_case_id"`
}

// HandleWizardStart opens a create wizard, or an edit wizard when the body
// names an existing use case of the application.
func (h *Handlers) HandleWizardStart(c *echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	appID, err := paramID(c, "app")
	if err != nil {
		return RespondError(c, err)
	}
	var req startWizardRequest
	if c.Request().ContentLength != 0 {
		if err := bindJSON(c, &req); err != nil {
			return RespondError(c, err)
		}
	}

	ctx := c.Request().Context()
	var w *usecases.Wizard
	if req.UseCaseID > 0 {
		w, err = h.UseCases.StartEdit(ctx, p.TenantID, req.UseCaseID)
		if err == nil && w.ApplicationID != appID {
			err = usecases.ErrNotFound
		}
	} else {
		w, err = h.UseCases.StartCreate(ctx, p.TenantID, appID)
	}
	if err != nil {
		return RespondError(c, err)
	}
	return h.saveDraft(c, http.StatusCreated, w)
}

func (h *Handlers) HandleWizardGet(c *echo.Context) error {
	w, err := h.loadDraft(c)
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusOK, newWizardResponse(w))
}

// HandleWizardCancel discards the draft. Nothing was written, so there is
// nothing to undo.
func (h *Handlers) HandleWizardCancel(c *echo.Context) error {
	w, err := h.loadDraft(c)
	if err != nil {
		return RespondError(c, err)
	}
	h.Drafts.Discard(c.Request().Context(), w.ID)
	return noContent(c)
}

func (h *Handlers) HandleWizardFields(c *echo.Context) error {
	w, err := h.loadDraft(c)
	if err != nil {
		return RespondError(c, err)
	}
	var f usecases.Fields
	if err := bindJSON(c, &f); err != nil {
		return RespondError(c, err)
	}
	if err := w.SetFields(f); err != nil {
		return RespondError(c, err)
	}
	return h.saveDraft(c, http.StatusOK, w)
}

func (h *Handlers) HandleWizardAnswers(c *echo.Context) error {
	w, err := h.loadDraft(c)
	if err != nil {
		return RespondError(c, err)
	}
	answers := map[string]string{}
	if err := bindJSON(c, &answers); err != nil {
		return RespondError(c, err)
	}
	if err := w.SetAnswers(usecases.Tab(c.Param("tab")), answers); err != nil {
		return RespondError(c, err)
	}
	return h.saveDraft(c, http.StatusOK, w)
}

func (h *Handlers) HandleWizardGoTo(c *echo.Context) error {
	w, err := h.loadDraft(c)
	if err != nil {
		return RespondError(c, err)
	}
	if err := w.GoTo(usecases.Tab(c.Param("tab"))); err != nil {
		return RespondError(c, err)
	}
	return h.saveDraft(c, http.StatusOK, w)
}

func (h *Handlers) HandleWizardRiskAdd(c *echo.Context) error {
	w, err := h.loadDraft(c)
	if err != nil {
		return RespondError(c, err)
	}
	if w.Closed {
		return RespondError(c, usecases.ErrClosed)
	}
	var r usecases.Risk
	if err := bindJSON(c, &r); err != nil {
		return RespondError(c, err)
	}
	w.Risks.Add(r)
	return h.saveDraft(c, http.StatusCreated, w)
}

func (h *Handlers) HandleWizardRiskUpdate(c *echo.Context) error {
	w, err := h.loadDraft(c)
	if err != nil {
		return RespondError(c, err)
	}
	if w.Closed {
		return RespondError(c, usecases.ErrClosed)
	}
	var r usecases.Risk
	if err := bindJSON(c, &r); err != nil {
		return RespondError(c, err)
	}
	if err := w.Risks.Update(c.Param("key"), r); err != nil {
		return RespondError(c, err)
	}
	return h.saveDraft(c, http.StatusOK, w)
}

func (h *Handlers) HandleWizardRiskRemove(c *echo.Context) error {
	w, err := h.loadDraft(c)
	if err != nil {
		return RespondError(c, err)
	}
	if w.Closed {
		return RespondError(c, usecases.ErrClosed)
	}
	if err := w.Risks.Remove(c.Param("key")); err != nil {
		return RespondError(c, err)
	}
	return h.saveDraft(c, http.StatusOK, w)
}

func (h *Handlers) HandleWizardBack(c *echo.Context) error {
	w, err := h.loadDraft(c)
	if err != nil {
		return RespondError(c, err)
	}
	if err := w.Back(); err != nil {
		return RespondError(c, err)
	}
	return h.saveDraft(c, http.StatusOK, w)
}

type submitResponse struct {
	Status  string           `json:"status"`
	UseCase usecases.UseCase `json:"use_case"`
}

// HandleWizardNext validates the current tab and advances. On the last tab
// it submits: the draft is discarded once the use case is saved and kept
// (possibly moved back to the failing tab) otherwise.
func (h *Handlers) HandleWizardNext(c *echo.Context) error {
	w, err := h.loadDraft(c)
	if err != nil {
		return RespondError(c, err)
	}
	outcome, err := w.Next()
	if err != nil {
		return RespondError(c, err)
	}
	if outcome == usecases.OutcomeAdvanced {
		return h.saveDraft(c, http.StatusOK, w)
	}

	ctx := c.Request().Context()
	uc, err := h.UseCases.Submit(ctx, w)
	if err != nil {
		if saveErr := h.Drafts.Save(ctx, w); saveErr != nil {
			c.Logger().Warn("wizard draft not saved after failed submit", "draft", w.ID, "error", saveErr)
		}
		return RespondError(c, err)
	}
	h.Drafts.Discard(ctx, w.ID)
	return c.JSON(http.StatusOK, submitResponse{Status: "submitted", UseCase: uc})
}

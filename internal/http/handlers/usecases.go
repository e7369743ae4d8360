package handlers

import (
	"net/http"

	"github.com/labstack/echo/v5"
)

// HandleUseCaseGet returns a stored use case with its risks.
func (h *Handlers) HandleUseCaseGet(c *echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return RespondError(c, err)
	}
	uc, err := h.UseCases.Get(c.Request().Context(), p.TenantID, id)
	if err != nil {
		return RespondError(c, err)
	}
	uc.Risks = nonNil(uc.Risks)
	return c.JSON(http.StatusOK, uc)
}

// HandleAIRisks lists the tenant's AI risk library.
func (h *Handlers) HandleAIRisks(c *echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	items, err := h.UseCases.AIRisks(c.Request().Context(), p.TenantID)
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": nonNil(items)})
}

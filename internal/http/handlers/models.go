package handlers

import (
	"net/http"

	"github.com/labstack/echo/v5"
	"github.com/open-sspm/open-aigov/internal/models"
)

func (h *Handlers) HandleApplicationModelsList(c *echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	appID, err := paramID(c, "app")
	if err != nil {
		return RespondError(c, err)
	}
	items, err := h.Models.GetApplicationModels(c.Request().Context(), p.TenantID, appID)
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": nonNil(items)})
}

func (h *Handlers) HandleApplicationModelCreate(c *echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	appID, err := paramID(c, "app")
	if err != nil {
		return RespondError(c, err)
	}
	var d models.Details
	if err := bindJSON(c, &d); err != nil {
		return RespondError(c, err)
	}
	m, err := h.Models.CreateApplicationModel(c.Request().Context(), p.TenantID, appID, d)
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handlers) HandleApplicationModelUpdate(c *echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	appID, err := paramID(c, "app")
	if err != nil {
		return RespondError(c, err)
	}
	id, err := paramID(c, "id")
	if err != nil {
		return RespondError(c, err)
	}
	var d models.Details
	if err := bindJSON(c, &d); err != nil {
		return RespondError(c, err)
	}
	m, err := h.Models.UpdateApplicationModel(c.Request().Context(), p.TenantID, appID, id, d)
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handlers) HandleApplicationModelDelete(c *echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	appID, err := paramID(c, "app")
	if err != nil {
		return RespondError(c, err)
	}
	id, err := paramID(c, "id")
	if err != nil {
		return RespondError(c, err)
	}
	if err := h.Models.DeleteApplicationModel(c.Request().Context(), p.TenantID, appID, id); err != nil {
		return RespondError(c, err)
	}
	return noContent(c)
}

// HandleTenantModels lists the models of every application in the tenant.
func (h *Handlers) HandleTenantModels(c *echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	items, err := h.Models.GetTenantModels(c.Request().Context(), p.TenantID)
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": nonNil(items)})
}

// HandleProviderModelsList serves both /api/provider-models (optionally
// filtered by ?provider=) and /api/provider-models/:provider.
func (h *Handlers) HandleProviderModelsList(c *echo.Context) error {
	provider := c.Param("provider")
	if provider == "" {
		provider = c.QueryParam("provider")
	}
	items, err := h.Models.GetModelsByProvider(c.Request().Context(), provider)
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": nonNil(items)})
}

func (h *Handlers) HandleProviderModelCreate(c *echo.Context) error {
	var d models.Details
	if err := bindJSON(c, &d); err != nil {
		return RespondError(c, err)
	}
	m, err := h.Models.CreateProviderModel(c.Request().Context(), d)
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handlers) HandleProviderModelUpdate(c *echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return RespondError(c, err)
	}
	var d models.Details
	if err := bindJSON(c, &d); err != nil {
		return RespondError(c, err)
	}
	m, err := h.Models.UpdateProviderModel(c.Request().Context(), id, d)
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handlers) HandleProviderModelDelete(c *echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return RespondError(c, err)
	}
	if err := h.Models.DeleteProviderModel(c.Request().Context(), id); err != nil {
		return RespondError(c, err)
	}
	return noContent(c)
}

// nonNil keeps empty lists encoded as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

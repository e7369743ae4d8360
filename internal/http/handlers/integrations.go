package handlers

import (
	"net/http"

	"github.com/labstack/echo/v5"
	"github.com/open-sspm/open-aigov/internal/http/viewmodels"
	"github.com/open-sspm/open-aigov/internal/http/views"
	"github.com/open-sspm/open-aigov/internal/integrations"
	"github.com/open-sspm/open-aigov/internal/search"
)

type integrationsResponse struct {
	Items []integrations.Integration `json:"items"`
	Total int                        `json:"total"`
}

// HandleIntegrationsList returns the tenant's integrations filtered by the
// q, category, status and credentials query parameters.
func (h *Handlers) HandleIntegrationsList(c *echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	all, err := h.Integrations.List(c.Request().Context(), p.TenantID)
	if err != nil {
		return RespondError(c, err)
	}
	items := integrations.Filter(all, search.FromValues(c.QueryParams()))
	return c.JSON(http.StatusOK, integrationsResponse{Items: items, Total: len(all)})
}

func (h *Handlers) HandleIntegrationsSeed(c *echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	count, err := h.Integrations.Seed(c.Request().Context(), p.TenantID)
	if err != nil {
		return RespondError(c, err)
	}
	c.Logger().Info("integrations seeded", "tenant", p.TenantSlug, "count", count)
	return c.JSON(http.StatusOK, map[string]int{"count": count})
}

func (h *Handlers) HandleIntegrationGet(c *echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return RespondError(c, err)
	}
	item, err := h.Integrations.Get(c.Request().Context(), p.TenantID, id)
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

type toggleRequest struct {
	Enabled bool `json:"enabled"`
}

// HandleIntegrationToggle enables or disables an integration. The body is
// either JSON or the form values the integrations page posts.
func (h *Handlers) HandleIntegrationToggle(c *echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return RespondError(c, err)
	}
	var req toggleRequest
	if isFormRequest(c) {
		req.Enabled = ParseBoolForm(c.FormValue("enabled"))
	} else if err := bindJSON(c, &req); err != nil {
		return RespondError(c, err)
	}

	item, err := h.Integrations.Toggle(c.Request().Context(), p.TenantID, id, req.Enabled)
	if err != nil {
		return RespondError(c, err)
	}
	if isHX(c) {
		title := item.Name + " disabled"
		if item.Enabled {
			title = item.Name + " enabled"
		}
		setHXToast(c, "success", title)
	}
	return c.JSON(http.StatusOK, item)
}

type credentialsRequest struct {
	Values map[string]string `json:"values"`
}

func (h *Handlers) HandleIntegrationCredentialsPut(c *echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return RespondError(c, err)
	}
	var req credentialsRequest
	if err := bindJSON(c, &req); err != nil {
		return RespondError(c, err)
	}

	item, err := h.Integrations.AddCredentials(c.Request().Context(), p.TenantID, id, req.Values)
	if err != nil {
		return RespondError(c, err)
	}
	c.Logger().Info("integration credentials added", "tenant", p.TenantSlug, "integration_id", id, "keys", item.CredentialKeys)
	return c.JSON(http.StatusOK, item)
}

func (h *Handlers) HandleIntegrationCredentialsDelete(c *echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return RespondError(c, err)
	}
	item, err := h.Integrations.RemoveCredentials(c.Request().Context(), p.TenantID, id)
	if err != nil {
		return RespondError(c, err)
	}
	if isHX(c) {
		setHXToast(c, "success", "Credentials removed from "+item.Name)
	}
	c.Logger().Info("integration credentials removed", "tenant", p.TenantSlug, "integration_id", id)
	return c.JSON(http.StatusOK, item)
}

func (h *Handlers) HandleIntegrationSchema(c *echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return RespondError(c, err)
	}
	schema, err := h.Integrations.Schema(c.Request().Context(), p.TenantID, id)
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusOK, schema)
}

// HandleIntegrationsPage renders the integrations search page, or only the
// results fragment for htmx filter requests.
func (h *Handlers) HandleIntegrationsPage(c *echo.Context) error {
	addVary(c, "HX-Request")

	p, err := principal(c)
	if err != nil {
		return err
	}
	all, err := h.Integrations.List(c.Request().Context(), p.TenantID)
	if err != nil {
		return h.RenderError(c, err)
	}

	filter := search.FromValues(c.QueryParams())
	data := buildIntegrationsViewData(h.LayoutData(c, "Integrations"), all, filter)
	if isHX(c) {
		return h.RenderComponent(c, views.IntegrationsPageResults(data))
	}
	return h.RenderComponent(c, views.IntegrationsPage(data))
}

// HandleIntegrationsResults always renders the results fragment.
func (h *Handlers) HandleIntegrationsResults(c *echo.Context) error {
	addVary(c, "HX-Request")

	p, err := principal(c)
	if err != nil {
		return err
	}
	all, err := h.Integrations.List(c.Request().Context(), p.TenantID)
	if err != nil {
		return h.RenderError(c, err)
	}
	data := buildIntegrationsViewData(h.LayoutData(c, "Integrations"), all, search.FromValues(c.QueryParams()))
	return h.RenderComponent(c, views.IntegrationsPageResults(data))
}

func buildIntegrationsViewData(layout viewmodels.LayoutData, all []integrations.Integration, f search.Filter) viewmodels.IntegrationsViewData {
	matched := integrations.Filter(all, f)

	data := viewmodels.IntegrationsViewData{
		Layout:         layout,
		TenantSlug:     layout.TenantSlug,
		Query:          f.Query,
		Category:       f.Category,
		Status:         string(f.Status),
		HasCredentials: string(f.HasCredentials),
		TotalCount:     len(all),
		Items:          make([]viewmodels.IntegrationItem, 0, len(matched)),
	}

	data.Categories = append(data.Categories, viewmodels.FilterOption{Value: "all", Label: "All categories", Selected: f.Category == ""})
	for _, cat := range integrations.Categories {
		data.Categories = append(data.Categories, viewmodels.FilterOption{
			Value:    string(cat),
			Label:    cat.Label(),
			Selected: string(cat) == f.Category,
		})
	}
	data.Statuses = []viewmodels.FilterOption{
		{Value: string(search.StatusAll), Label: "Any status", Selected: f.Status == search.StatusAll},
		{Value: string(search.StatusEnabled), Label: "Enabled", Selected: f.Status == search.StatusEnabled},
		{Value: string(search.StatusDisabled), Label: "Disabled", Selected: f.Status == search.StatusDisabled},
	}
	data.CredentialOpts = []viewmodels.FilterOption{
		{Value: string(search.CredentialsAll), Label: "Any credentials", Selected: f.HasCredentials == search.CredentialsAll},
		{Value: string(search.CredentialsYes), Label: "With credentials", Selected: f.HasCredentials == search.CredentialsYes},
		{Value: string(search.CredentialsNo), Label: "Without credentials", Selected: f.HasCredentials == search.CredentialsNo},
	}

	for _, it := range matched {
		data.Items = append(data.Items, viewmodels.IntegrationItem{
			ID:             it.ID,
			Name:           it.Name,
			CategoryLabel:  it.Category.Label(),
			LogoURL:        it.LogoURL,
			Description:    it.Description,
			Enabled:        it.Enabled,
			HasCredentials: it.HasCredentials(),
			CredentialKeys: it.CredentialKeys,
			CanEnable:      it.IsCredentialsAdded,
		})
	}

	switch {
	case len(all) == 0:
		data.EmptyState = "No integrations yet. Seed the default catalog to get started."
	case len(matched) == 0:
		data.EmptyState = "No integrations match these filters."
	}
	return data
}

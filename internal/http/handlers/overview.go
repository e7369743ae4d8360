package handlers

import (
	"net/http"

	"github.com/labstack/echo/v5"
	"golang.org/x/sync/errgroup"
)

type overviewResponse struct {
	Tenant              string `json:"tenant"`
	Integrations        int    `json:"integrations"`
	EnabledIntegrations int64  `json:"enabled_integrations"`
	UseCases            int64  `json:"use_cases"`
	Models              int64  `json:"models"`
}

// HandleOverview reports the tenant's headline counts. The queries are
// independent and run concurrently.
func (h *Handlers) HandleOverview(c *echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	out := overviewResponse{Tenant: p.TenantSlug}
	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() error {
		items, err := h.Integrations.List(ctx, p.TenantID)
		out.Integrations = len(items)
		return err
	})
	g.Go(func() error {
		n, err := h.Counts.CountEnabledIntegrations(ctx, p.TenantID)
		out.EnabledIntegrations = n
		return err
	})
	g.Go(func() error {
		n, err := h.Counts.CountTenantUseCases(ctx, p.TenantID)
		out.UseCases = n
		return err
	})
	g.Go(func() error {
		n, err := h.Counts.CountTenantModels(ctx, p.TenantID)
		out.Models = n
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

package handlers

import (
	"net/http"

	"github.com/labstack/echo/v5"
	"github.com/open-sspm/open-aigov/internal/http/views"
)

// RenderForbidden answers 403: JSON for API routes, the access denied page
// otherwise.
func (h *Handlers) RenderForbidden(c *echo.Context) error {
	if IsAPIRequest(c) {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
	}

	layout := h.LayoutData(c, "Forbidden")
	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	c.Response().WriteHeader(http.StatusForbidden)
	return views.ForbiddenPage(layout).Render(c.Request().Context(), c.Response())
}

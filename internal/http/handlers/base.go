// Package handlers contains HTTP handler logic split by domain.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/alexedwards/scs/v2"
	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/open-sspm/open-aigov/internal/assets"
	"github.com/open-sspm/open-aigov/internal/auth"
	"github.com/open-sspm/open-aigov/internal/config"
	"github.com/open-sspm/open-aigov/internal/db/gen"
	"github.com/open-sspm/open-aigov/internal/http/authn"
	"github.com/open-sspm/open-aigov/internal/http/viewmodels"
	"github.com/open-sspm/open-aigov/internal/integrations"
	"github.com/open-sspm/open-aigov/internal/models"
	"github.com/open-sspm/open-aigov/internal/toolcatalog"
	"github.com/open-sspm/open-aigov/internal/usecases"
)

const (
	// ContextKeyRequestID stores the request id (X-Request-ID) for logging and client error references.
	ContextKeyRequestID = "request_id"

	// InternalErrorCode is a stable error code safe to return to clients.
	InternalErrorCode = "INTERNAL_ERROR"
)

// AuthStore is the subset of queries used by login and session loading.
type AuthStore interface {
	authn.PrincipalStore
	GetAuthUserByEmail(ctx context.Context, email string) (gen.AuthUser, error)
	UpdateAuthUserLastLogin(ctx context.Context, arg gen.UpdateAuthUserLastLoginParams) error
}

// Counter answers the per-tenant totals shown on the overview.
type Counter interface {
	CountTenantUseCases(ctx context.Context, tenantID int64) (int64, error)
	CountEnabledIntegrations(ctx context.Context, tenantID int64) (int64, error)
	CountTenantModels(ctx context.Context, tenantID int64) (int64, error)
}

// Handlers groups all HTTP handlers and shared dependencies.
type Handlers struct {
	Cfg          config.Config
	Q            AuthStore
	Counts       Counter
	Sessions     *scs.SessionManager
	Integrations *integrations.Service
	Models       *models.Service
	UseCases     *usecases.Service
	Drafts       *usecases.Drafts
	Tools        *toolcatalog.Catalog
	Assets       *assets.Resolver
}

// LayoutData builds the common layout data for page rendering.
func (h *Handlers) LayoutData(c *echo.Context, title string) viewmodels.LayoutData {
	principal, ok := authn.PrincipalFromContext(c)
	csrfToken, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
	return viewmodels.LayoutData{
		Title:      title,
		CSRFToken:  csrfToken,
		UserEmail:  principal.Email,
		UserRole:   principal.Role,
		IsAdmin:    ok && principal.IsAdmin(),
		TenantSlug: principal.TenantSlug,
		Toast:      popFlashToast(c),
		ActivePath: c.Request().URL.Path,
		ScriptURL:  h.Assets.URL("htmx.min.js"),
	}
}

// RenderComponent renders a templ component as the response.
func (h *Handlers) RenderComponent(c *echo.Context, component templ.Component) error {
	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(c.Request().Context(), c.Response()); err != nil {
		return h.RenderError(c, err)
	}
	return nil
}

// RenderError returns a plain text error response.
func (h *Handlers) RenderError(c *echo.Context, err error) error {
	requestID, _ := c.Get(ContextKeyRequestID).(string)
	path := ""
	if req := c.Request(); req != nil && req.URL != nil {
		path = req.URL.Path
	}
	method := ""
	if req := c.Request(); req != nil {
		method = req.Method
	}
	c.Logger().Error("http error",
		"request_id", requestID,
		"method", method,
		"path", path,
		"ip", c.RealIP(),
		"error", err,
	)

	msg := "Internal server error."
	if requestID != "" {
		msg = fmt.Sprintf("%s Reference: %s.", msg, requestID)
	}
	msg = fmt.Sprintf("%s Code: %s.", msg, InternalErrorCode)
	if IsAPIRequest(c) {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error":      msg,
			"code":       InternalErrorCode,
			"request_id": requestID,
		})
	}
	return c.String(http.StatusInternalServerError, msg)
}

// RenderNotFound returns a 404 response.
func RenderNotFound(c *echo.Context) error {
	if IsAPIRequest(c) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.String(http.StatusNotFound, "404 page not found")
}

func IsAPIRequest(c *echo.Context) bool {
	if c == nil || c.Request() == nil {
		return false
	}
	return strings.HasPrefix(c.Path(), "/api/") || strings.HasPrefix(c.Request().URL.Path, "/api/")
}

// principal returns the authenticated principal. Routes using it sit behind
// authn.RequireAuth, so a missing principal is a wiring bug.
func principal(c *echo.Context) (auth.Principal, error) {
	p, ok := authn.PrincipalFromContext(c)
	if !ok {
		return auth.Principal{}, errors.New("no principal on authenticated route")
	}
	return p, nil
}

// errBadID is returned for path ids that are not positive integers.
var errBadID = errors.New("invalid id")

func paramID(c *echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s", errBadID, name)
	}
	return id, nil
}

// ParseBoolForm parses a form value as a boolean.
func ParseBoolForm(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

package authn

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/alexedwards/scs/v2"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v5"
	"github.com/open-sspm/open-aigov/internal/auth"
	"github.com/open-sspm/open-aigov/internal/db/gen"
	"github.com/open-sspm/open-aigov/internal/logging"
)

const (
	ContextKeyPrincipal = "auth_principal"

	SessionKeyUserID = "auth_user_id"

	// TenantParam is the route parameter holding the tenant slug.
	TenantParam = "tenant"
)

// PrincipalStore is the subset of queries needed to rebuild a principal from
// the session.
type PrincipalStore interface {
	GetAuthUser(ctx context.Context, id int64) (gen.AuthUser, error)
	GetTenant(ctx context.Context, id int64) (gen.Tenant, error)
}

func PrincipalFromContext(c *echo.Context) (auth.Principal, bool) {
	p, ok := c.Get(ContextKeyPrincipal).(auth.Principal)
	return p, ok
}

func LoadPrincipal(c *echo.Context, sessions *scs.SessionManager, q PrincipalStore) (auth.Principal, bool, error) {
	ctx := c.Request().Context()
	userID := sessions.GetInt64(ctx, SessionKeyUserID)
	if userID <= 0 {
		return auth.Principal{}, false, nil
	}

	user, err := q.GetAuthUser(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			_ = sessions.Destroy(ctx)
			return auth.Principal{}, false, nil
		}
		return auth.Principal{}, false, err
	}
	if !user.IsActive {
		_ = sessions.Destroy(ctx)
		return auth.Principal{}, false, nil
	}

	tenant, err := q.GetTenant(ctx, user.TenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			_ = sessions.Destroy(ctx)
			return auth.Principal{}, false, nil
		}
		return auth.Principal{}, false, err
	}

	return auth.Principal{
		UserID:     user.ID,
		TenantID:   tenant.ID,
		TenantSlug: tenant.Slug,
		Email:      user.Email,
		Role:       user.Role,
		Method:     auth.MethodPassword,
	}, true, nil
}

func RequireAuth(sessions *scs.SessionManager, q PrincipalStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			principal, ok, err := LoadPrincipal(c, sessions, q)
			if err != nil {
				return err
			}
			if !ok {
				return handleUnauth(c)
			}
			c.Set(ContextKeyPrincipal, principal)
			return next(c)
		}
	}
}

// RequireTenant rejects requests whose :tenant parameter is not the
// principal's tenant, and attaches a tenant-scoped logger to the request.
func RequireTenant() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			p, ok := PrincipalFromContext(c)
			if !ok {
				return handleUnauth(c)
			}
			if !p.CanAccessTenant(c.Param(TenantParam)) {
				return forbidden(c)
			}
			req := c.Request()
			ctx := logging.WithTenant(req.Context(), c.Logger(), p.TenantSlug)
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}

func RequireRole(role string) echo.MiddlewareFunc {
	role = strings.ToLower(strings.TrimSpace(role))
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			p, ok := PrincipalFromContext(c)
			if !ok {
				return handleUnauth(c)
			}
			if strings.ToLower(strings.TrimSpace(p.Role)) != role {
				return forbidden(c)
			}
			return next(c)
		}
	}
}

func isAPIRequest(c *echo.Context) bool {
	return strings.HasPrefix(c.Path(), "/api/") || strings.HasPrefix(c.Request().URL.Path, "/api/")
}

// forbidden answers API requests directly; pages are left to the server's
// error handler, which renders the access denied page.
func forbidden(c *echo.Context) error {
	if isAPIRequest(c) {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
	}
	return echo.ErrForbidden
}

func handleUnauth(c *echo.Context) error {
	if isAPIRequest(c) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}

	location := "/login"
	if c.Request().Method == http.MethodGet {
		if next := SanitizeNext(c.Request().URL.RequestURI()); next != "" {
			location = "/login?next=" + url.QueryEscape(next)
		}
	}
	return c.Redirect(http.StatusSeeOther, location)
}

// SanitizeNext returns next when it is a local path safe to redirect to
// after login, and "" otherwise.
func SanitizeNext(next string) string {
	next = strings.TrimSpace(next)
	if next == "" || next == "/" || len(next) > 2048 {
		return ""
	}
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return ""
	}
	if strings.Contains(next, "\\") {
		return ""
	}

	u, err := url.Parse(next)
	if err != nil || u.IsAbs() || u.Host != "" || u.Scheme != "" {
		return ""
	}
	if strings.HasPrefix(u.Path, "//") || strings.Contains(u.Path, "\\") {
		return ""
	}
	if u.Path == "/login" || strings.HasPrefix(u.Path, "/login/") {
		return ""
	}
	return next
}

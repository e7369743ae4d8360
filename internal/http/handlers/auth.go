package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/open-sspm/open-aigov/internal/auth"
	"github.com/open-sspm/open-aigov/internal/auth/providers"
	"github.com/open-sspm/open-aigov/internal/db/gen"
	"github.com/open-sspm/open-aigov/internal/http/authn"
	"github.com/open-sspm/open-aigov/internal/http/viewmodels"
	"github.com/open-sspm/open-aigov/internal/http/views"
)

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Next     string `json:"next" form:"next"`
}

type principalResponse struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Tenant string `json:"tenant"`
}

func toPrincipalResponse(p auth.Principal) principalResponse {
	return principalResponse{UserID: p.UserID, Email: p.Email, Role: p.Role, Tenant: p.TenantSlug}
}

func wantsJSON(c *echo.Context) bool {
	ct := c.Request().Header.Get(echo.HeaderContentType)
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(ct)), echo.MIMEApplicationJSON)
}

func homePath(p auth.Principal) string {
	return "/t/" + p.TenantSlug + "/integrations"
}

func (h *Handlers) HandleHealthz(c *echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (h *Handlers) HandleLoginGet(c *echo.Context) error {
	if h.Sessions == nil {
		return errors.New("auth sessions not configured")
	}

	if p, ok, err := authn.LoadPrincipal(c, h.Sessions, h.Q); err != nil {
		return err
	} else if ok {
		return c.Redirect(http.StatusSeeOther, homePath(p))
	}

	csrfToken, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
	data := viewmodels.LoginViewData{
		CSRFToken: csrfToken,
		Next:      authn.SanitizeNext(c.QueryParam("next")),
		Toast:     popFlashToast(c),
	}
	return h.RenderComponent(c, views.LoginPage(data))
}

// HandleLoginPost accepts a form post from the login page or a JSON body from
// API clients.
func (h *Handlers) HandleLoginPost(c *echo.Context) error {
	if h.Sessions == nil {
		return errors.New("auth sessions not configured")
	}

	ctx := c.Request().Context()
	asJSON := wantsJSON(c)

	var req loginRequest
	if asJSON {
		if err := bindJSON(c, &req); err != nil {
			return RespondError(c, err)
		}
	} else {
		req = loginRequest{Email: c.FormValue("email"), Password: c.FormValue("password"), Next: c.FormValue("next")}
	}
	email := auth.NormalizeEmail(req.Email)
	next := authn.SanitizeNext(req.Next)

	csrfToken, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
	data := viewmodels.LoginViewData{
		CSRFToken: csrfToken,
		Email:     email,
		Next:      next,
	}
	reject := func() error {
		if asJSON {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": auth.ErrInvalidCredentials.Error()})
		}
		data.ErrorMessage = "Invalid email or password."
		return h.RenderComponent(c, views.LoginPage(data))
	}

	if email == "" || strings.TrimSpace(req.Password) == "" {
		return reject()
	}

	passwordProvider := providers.NewPasswordProvider(h.Q)
	principal, err := passwordProvider.Authenticate(ctx, email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return reject()
		}
		return err
	}

	if err := h.Sessions.RenewToken(ctx); err != nil {
		return err
	}
	h.Sessions.Put(ctx, authn.SessionKeyUserID, principal.UserID)

	if err := h.Q.UpdateAuthUserLastLogin(ctx, gen.UpdateAuthUserLastLoginParams{
		ID:          principal.UserID,
		LastLoginAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}); err != nil {
		c.Logger().Warn("last login not recorded", "user_id", principal.UserID, "error", err)
	}

	if asJSON {
		return c.JSON(http.StatusOK, toPrincipalResponse(principal))
	}
	if next != "" {
		return c.Redirect(http.StatusSeeOther, next)
	}
	return c.Redirect(http.StatusSeeOther, homePath(principal))
}

func (h *Handlers) HandleLogoutPost(c *echo.Context) error {
	if h.Sessions == nil {
		return errors.New("auth sessions not configured")
	}

	if err := h.Sessions.Destroy(c.Request().Context()); err != nil {
		return err
	}
	if wantsJSON(c) {
		return noContent(c)
	}

	addVary(c, "HX-Request")
	setFlashToast(c, viewmodels.ToastViewData{
		Category: "success",
		Title:    "Signed out",
	})
	if isHX(c) {
		setHXRedirect(c, "/login")
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, "/login")
}

// HandleMe returns the authenticated principal.
func (h *Handlers) HandleMe(c *echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPrincipalResponse(p))
}

package httpapp

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/open-sspm/open-aigov/internal/auth"
	"github.com/open-sspm/open-aigov/internal/http/authn"
	"github.com/open-sspm/open-aigov/internal/http/handlers"
)

// EchoServer is the HTTP server wrapper.
type EchoServer struct {
	h      *handlers.Handlers
	e      *echo.Echo
	logger *slog.Logger
}

// NewEchoServer creates the router for h. h.Sessions and h.Q must be set.
func NewEchoServer(h *handlers.Handlers, logger *slog.Logger) (*EchoServer, error) {
	if h == nil || h.Sessions == nil || h.Q == nil {
		return nil, errors.New("http server requires sessions and an auth store")
	}
	if logger == nil {
		logger = slog.Default()
	}
	e := echo.New()
	e.Logger = logger
	es := &EchoServer{h: h, e: e, logger: logger}
	e.HTTPErrorHandler = es.httpErrorHandler
	e.Use(es.requestContext)
	es.registerRoutes()
	return es, nil
}

func (es *EchoServer) registerRoutes() {
	h := es.h
	es.e.GET("/healthz", h.HandleHealthz)

	web := es.e.Group("")
	web.Use(middleware.CSRFWithConfig(middleware.CSRFConfig{
		Skipper:        isJSONRequest,
		TokenLookup:    "header:" + echo.HeaderXCSRFToken + ",form:csrf",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   h.Cfg.AuthCookieSecure,
		CookieSameSite: http.SameSiteLaxMode,
	}))
	web.GET("/login", h.HandleLoginGet)
	web.POST("/login", h.HandleLoginPost)
	web.POST("/logout", h.HandleLogoutPost)

	authed := web.Group("", authn.RequireAuth(h.Sessions, h.Q))
	admin := authn.RequireRole(auth.RoleAdmin)

	authed.GET("/api/me", h.HandleMe)

	pages := authed.Group("/t/:"+authn.TenantParam, authn.RequireTenant())
	pages.GET("/integrations", h.HandleIntegrationsPage)
	pages.GET("/integrations/results", h.HandleIntegrationsResults)

	api := authed.Group("/api/tenants/:"+authn.TenantParam, authn.RequireTenant())
	api.GET("/overview", h.HandleOverview)

	api.GET("/integrations", h.HandleIntegrationsList)
	api.POST("/integrations/seed", h.HandleIntegrationsSeed, admin)
	api.GET("/integrations/:id", h.HandleIntegrationGet)
	api.POST("/integrations/:id/toggle", h.HandleIntegrationToggle, admin)
	api.PUT("/integrations/:id/credentials", h.HandleIntegrationCredentialsPut, admin)
	api.DELETE("/integrations/:id/credentials", h.HandleIntegrationCredentialsDelete, admin)
	api.GET("/integrations/:id/schema", h.HandleIntegrationSchema)

	api.GET("/models", h.HandleTenantModels)
	api.GET("/applications/:app/models", h.HandleApplicationModelsList)
	api.POST("/applications/:app/models", h.HandleApplicationModelCreate, admin)
	api.PUT("/applications/:app/models/:id", h.HandleApplicationModelUpdate, admin)
	api.DELETE("/applications/:app/models/:id", h.HandleApplicationModelDelete, admin)

	// Drafts are only ever started by admins, so the whole group is gated.
	wizard := api.Group("/applications/:app/wizard", admin)
	wizard.POST("", h.HandleWizardStart)
	wizard.GET("/:draft", h.HandleWizardGet)
	wizard.DELETE("/:draft", h.HandleWizardCancel)
	wizard.PUT("/:draft/fields", h.HandleWizardFields)
	wizard.PUT("/:draft/answers/:tab", h.HandleWizardAnswers)
	wizard.POST("/:draft/goto/:tab", h.HandleWizardGoTo)
	wizard.POST("/:draft/risks", h.HandleWizardRiskAdd)
	wizard.PUT("/:draft/risks/:key", h.HandleWizardRiskUpdate)
	wizard.DELETE("/:draft/risks/:key", h.HandleWizardRiskRemove)
	wizard.POST("/:draft/next", h.HandleWizardNext)
	wizard.POST("/:draft/back", h.HandleWizardBack)

	api.GET("/use-cases/:id", h.HandleUseCaseGet)
	api.GET("/ai-risks", h.HandleAIRisks)

	authed.GET("/api/provider-models", h.HandleProviderModelsList)
	authed.POST("/api/provider-models", h.HandleProviderModelCreate, admin)
	authed.GET("/api/provider-models/:provider", h.HandleProviderModelsList)
	authed.PUT("/api/provider-models/id/:id", h.HandleProviderModelUpdate, admin)
	authed.DELETE("/api/provider-models/id/:id", h.HandleProviderModelDelete, admin)

	authed.GET("/api/tools", h.HandleToolsList)
	authed.GET("/api/tools/:slug", h.HandleToolGet)
}

// isJSONRequest skips CSRF checks for JSON bodies; browsers cannot send them
// cross-site without a CORS preflight.
func isJSONRequest(c *echo.Context) bool {
	ct := c.Request().Header.Get(echo.HeaderContentType)
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(ct)), echo.MIMEApplicationJSON)
}

// Handler returns the full handler chain: request id, access log and
// metrics, then session loading, then the router.
func (es *EchoServer) Handler() http.Handler {
	return es.observe(es.h.Sessions.LoadAndSave(es.e))
}

func (es *EchoServer) httpErrorHandler(c *echo.Context, err error) {
	if info := requestInfoFrom(c.Request().Context()); info != nil && info.wroteHeader {
		c.Logger().Warn("error after response was written", "request_id", info.id, "error", err)
		return
	}

	status := httpStatusFromError(err)
	var writeErr error
	switch {
	case status == http.StatusNotFound:
		writeErr = handlers.RenderNotFound(c)
	case status == http.StatusForbidden:
		writeErr = es.h.RenderForbidden(c)
	case status >= http.StatusInternalServerError:
		writeErr = es.h.RenderError(c, err)
	case handlers.IsAPIRequest(c):
		writeErr = c.JSON(status, map[string]string{"error": strings.ToLower(http.StatusText(status))})
	default:
		writeErr = c.String(status, http.StatusText(status))
	}
	if writeErr != nil {
		c.Logger().Error("write error response", "status", status, "error", writeErr)
	}
}

func httpStatusFromError(err error) int {
	var coder interface{ StatusCode() int }
	if errors.As(err, &coder) {
		if code := coder.StatusCode(); code >= 400 && code <= 599 {
			return code
		}
	}
	return http.StatusInternalServerError
}

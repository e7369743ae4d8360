package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v5"
	"github.com/open-sspm/open-aigov/internal/http/viewmodels"
)

func newTestContext(method, target string) (*echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return c, rec
}

func parseVaryHeader(value string) map[string]int {
	parts := strings.Split(value, ",")
	out := make(map[string]int, len(parts))
	for _, part := range parts {
		token := strings.ToLower(strings.TrimSpace(part))
		if token == "" {
			continue
		}
		out[token]++
	}
	return out
}

func TestAddVary(t *testing.T) {
	c, _ := newTestContext(http.MethodGet, "http://example.com/")
	c.Response().Header().Set(echo.HeaderVary, "Accept-Encoding")

	addVary(c, "HX-Request", "hx-target", "Accept-Encoding")

	got := parseVaryHeader(c.Response().Header().Get(echo.HeaderVary))
	if got["accept-encoding"] != 1 {
		t.Fatalf("Vary missing accept-encoding: %v", got)
	}
	if got["hx-request"] != 1 {
		t.Fatalf("Vary missing hx-request: %v", got)
	}
	if got["hx-target"] != 1 {
		t.Fatalf("Vary missing hx-target: %v", got)
	}
}

func TestAddVaryPreservesWildcard(t *testing.T) {
	c, _ := newTestContext(http.MethodGet, "http://example.com/")
	c.Response().Header().Set(echo.HeaderVary, "*")

	addVary(c, "HX-Request")

	if got := c.Response().Header().Get(echo.HeaderVary); got != "*" {
		t.Fatalf("Vary = %q, want *", got)
	}
}

func TestFlashToastRoundTrip(t *testing.T) {
	c, rec := newTestContext(http.MethodPost, "http://example.com/logout")
	setFlashToast(c, viewmodels.ToastViewData{Category: "SUCCESS", Title: " Signed out "})

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != flashToastCookieName {
		t.Fatalf("cookies = %v", cookies)
	}

	next, rec2 := newTestContext(http.MethodGet, "http://example.com/login")
	next.Request().AddCookie(cookies[0])
	toast := popFlashToast(next)
	if toast == nil || toast.Category != "success" || toast.Title != "Signed out" {
		t.Fatalf("popFlashToast() = %+v", toast)
	}
	if cleared := rec2.Result().Cookies(); len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Fatalf("toast cookie not cleared: %v", cleared)
	}
}

func TestFlashToastIgnoresEmpty(t *testing.T) {
	c, rec := newTestContext(http.MethodPost, "http://example.com/logout")
	setFlashToast(c, viewmodels.ToastViewData{Category: "error"})
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("empty toast set a cookie")
	}
}

package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v5"
	"github.com/open-sspm/open-aigov/internal/integrations"
	"github.com/open-sspm/open-aigov/internal/models"
	"github.com/open-sspm/open-aigov/internal/usecases"
	"github.com/open-sspm/open-aigov/internal/validate"
)

func TestRenderErrorDoesNotLeakError(t *testing.T) {
	e := echo.New()
	e.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	req := httptest.NewRequest(http.MethodGet, "http://example.com/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyRequestID, "req-123")

	h := &Handlers{}
	if err := h.RenderError(c, errors.New("db password=secret")); err != nil {
		t.Fatalf("RenderError: %v", err)
	}

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d want %d", rec.Code, http.StatusInternalServerError)
	}

	body := rec.Body.String()
	if strings.Contains(body, "db password") || strings.Contains(body, "secret") {
		t.Fatalf("response leaked error details: %q", body)
	}
	if !strings.Contains(body, "Internal server error") {
		t.Fatalf("response missing generic message: %q", body)
	}
	if !strings.Contains(body, "Reference: req-123") {
		t.Fatalf("response missing request reference: %q", body)
	}
	if !strings.Contains(body, "Code: "+InternalErrorCode) {
		t.Fatalf("response missing error code: %q", body)
	}
}

func TestClassifyError(t *testing.T) {
	t.Parallel()

	fe := validate.FieldErrors{"api_key": "This field is required"}
	tests := []struct {
		name   string
		err    error
		status int
		ok     bool
	}{
		{name: "field errors", err: fe, status: http.StatusUnprocessableEntity, ok: true},
		{name: "tab invalid", err: fmt.Errorf("%w: %w", usecases.ErrTabInvalid, fe), status: http.StatusUnprocessableEntity, ok: true},
		{name: "integration missing", err: integrations.ErrNotFound, status: http.StatusNotFound, ok: true},
		{name: "draft missing", err: usecases.ErrDraftNotFound, status: http.StatusNotFound, ok: true},
		{name: "credentials required", err: integrations.ErrCredentialsRequired, status: http.StatusConflict, ok: true},
		{name: "duplicate model", err: fmt.Errorf("create: %w", models.ErrDuplicate), status: http.StatusConflict, ok: true},
		{name: "last risk", err: usecases.ErrLastRisk, status: http.StatusUnprocessableEntity, ok: true},
		{name: "internal", err: errors.New("connection refused"), ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ce, ok := ClassifyError(tt.err)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && ce.Status != tt.status {
				t.Fatalf("status = %d, want %d", ce.Status, tt.status)
			}
		})
	}
}

func TestRespondErrorWritesFieldMap(t *testing.T) {
	c, rec := newTestContext(http.MethodPut, "http://example.com/api/tenants/acme/integrations/1/credentials")
	err := RespondError(c, validate.FieldErrors{"api_key": "This field is required"})
	if err != nil {
		t.Fatalf("RespondError() error = %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"api_key":"This field is required"`) {
		t.Fatalf("body = %s", rec.Body.String())
	}

	internal := errors.New("boom")
	if err := RespondError(c, internal); !errors.Is(err, internal) {
		t.Fatalf("RespondError(internal) = %v, want passthrough", err)
	}
}

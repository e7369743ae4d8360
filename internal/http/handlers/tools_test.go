package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/open-sspm/open-aigov/internal/toolcatalog"
)

func newToolsHandler(t *testing.T) *Handlers {
	t.Helper()
	cat, err := toolcatalog.Default()
	if err != nil {
		t.Fatalf("toolcatalog.Default() error = %v", err)
	}
	return &Handlers{Tools: cat}
}

func TestHandleToolsListPaginates(t *testing.T) {
	h := newToolsHandler(t)

	c, rec := newAPIContext(t, http.MethodGet, "/api/tools?page=999", "")
	if err := h.HandleToolsList(c); err != nil {
		t.Fatalf("HandleToolsList() error = %v", err)
	}
	var got toolsResponse
	decodeBody(t, rec.Body.String(), &got)
	if got.Total != len(h.Tools.Tools) {
		t.Fatalf("total = %d, want %d", got.Total, len(h.Tools.Tools))
	}
	if got.Page != got.TotalPages {
		t.Fatalf("page = %d, want clamped to %d", got.Page, got.TotalPages)
	}
	if len(got.Items) == 0 || got.ShowingTo != got.Total {
		t.Fatalf("last page = %+v", got)
	}
}

func TestPageOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                   string
		total, requested, size int
		want                   toolPage
	}{
		{name: "empty", total: 0, requested: 3, size: 20, want: toolPage{Page: 1, TotalPages: 1}},
		{name: "first", total: 45, requested: 1, size: 20, want: toolPage{Page: 1, TotalPages: 3, Start: 0, End: 20, From: 1, To: 20}},
		{name: "partial last", total: 45, requested: 3, size: 20, want: toolPage{Page: 3, TotalPages: 3, Start: 40, End: 45, From: 41, To: 45}},
		{name: "clamped high", total: 45, requested: 99, size: 20, want: toolPage{Page: 3, TotalPages: 3, Start: 40, End: 45, From: 41, To: 45}},
		{name: "clamped low", total: 5, requested: -2, size: 20, want: toolPage{Page: 1, TotalPages: 1, Start: 0, End: 5, From: 1, To: 5}},
		{name: "exact fit", total: 40, requested: 2, size: 20, want: toolPage{Page: 2, TotalPages: 2, Start: 20, End: 40, From: 21, To: 40}},
		{name: "zero size", total: 2, requested: 2, size: 0, want: toolPage{Page: 2, TotalPages: 2, Start: 1, End: 2, From: 2, To: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := pageOf(tt.total, tt.requested, tt.size); got != tt.want {
				t.Fatalf("pageOf(%d, %d, %d) = %+v, want %+v", tt.total, tt.requested, tt.size, got, tt.want)
			}
		})
	}
}

func TestHandleToolsListBadPageIsFirst(t *testing.T) {
	h := newToolsHandler(t)

	for _, raw := range []string{"abc", "0", "-4", ""} {
		c, rec := newAPIContext(t, http.MethodGet, "/api/tools?page="+url.QueryEscape(raw), "")
		if err := h.HandleToolsList(c); err != nil {
			t.Fatalf("HandleToolsList(page=%q) error = %v", raw, err)
		}
		var got toolsResponse
		decodeBody(t, rec.Body.String(), &got)
		if got.Page != 1 || got.ShowingFrom != 1 {
			t.Fatalf("page=%q: page = %d, showing from %d, want first page", raw, got.Page, got.ShowingFrom)
		}
	}
}

func TestHandleToolsListSearch(t *testing.T) {
	h := newToolsHandler(t)
	want := h.Tools.Tools[0]

	c, rec := newAPIContext(t, http.MethodGet, "/api/tools?q="+url.QueryEscape(want.Name), "")
	if err := h.HandleToolsList(c); err != nil {
		t.Fatalf("HandleToolsList() error = %v", err)
	}
	var got toolsResponse
	decodeBody(t, rec.Body.String(), &got)
	found := false
	for _, item := range got.Items {
		if item.TrustScore != item.Tool.TrustScore() {
			t.Fatalf("trust score of %s = %v", item.Slug, item.TrustScore)
		}
		found = found || item.Slug == want.Slug
	}
	if !found {
		t.Fatalf("search for %q did not return %s", want.Name, want.Slug)
	}
}

func TestHandleToolGet(t *testing.T) {
	h := newToolsHandler(t)
	slug := h.Tools.Tools[0].Slug

	c, rec := newAPIContext(t, http.MethodGet, "/api/tools/"+slug, "", "slug", slug)
	if err := h.HandleToolGet(c); err != nil {
		t.Fatalf("HandleToolGet() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	c, rec = newAPIContext(t, http.MethodGet, "/api/tools/missing", "", "slug", "missing-tool")
	if err := h.HandleToolGet(c); err != nil {
		t.Fatalf("HandleToolGet() error = %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

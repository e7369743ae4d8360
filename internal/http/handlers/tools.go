package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v5"
	"github.com/open-sspm/open-aigov/internal/search"
	"github.com/open-sspm/open-aigov/internal/toolcatalog"
)

const toolsPerPage = 20

type toolView struct {
	toolcatalog.Tool
	TrustScore float64 `json:"trust_score"`
}

type toolsResponse struct {
	Items       []toolView `json:"items"`
	Categories  []string   `json:"categories"`
	Total       int        `json:"total"`
	Page        int        `json:"page"`
	TotalPages  int        `json:"total_pages"`
	ShowingFrom int        `json:"showing_from"`
	ShowingTo   int        `json:"showing_to"`
}

// toolPage is one window of a search result. From and To are 1-based and
// both zero when the window is empty.
type toolPage struct {
	Page, TotalPages int
	Start, End       int
	From, To         int
}

// pageOf clamps the requested page into [1, TotalPages] and slices total
// results into windows of size. An empty result still has one page.
func pageOf(total, requested, size int) toolPage {
	size = max(size, 1)
	pages := max((total+size-1)/size, 1)
	p := toolPage{Page: min(max(requested, 1), pages), TotalPages: pages}
	p.Start = (p.Page - 1) * size
	p.End = min(p.Start+size, total)
	if p.End > p.Start {
		p.From, p.To = p.Start+1, p.End
	}
	return p
}

// requestedPage reads ?page=; anything but a positive integer means page 1.
func requestedPage(c *echo.Context) int {
	n, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// HandleToolsList searches the AI tool catalog by q and category, one page
// at a time.
func (h *Handlers) HandleToolsList(c *echo.Context) error {
	matched := h.Tools.Search(search.FromValues(c.QueryParams()))
	p := pageOf(len(matched), requestedPage(c), toolsPerPage)

	items := make([]toolView, 0, p.End-p.Start)
	for _, t := range matched[p.Start:p.End] {
		items = append(items, toolView{Tool: t, TrustScore: t.TrustScore()})
	}
	return c.JSON(http.StatusOK, toolsResponse{
		Items:       items,
		Categories:  nonNil(h.Tools.Categories()),
		Total:       len(matched),
		Page:        p.Page,
		TotalPages:  p.TotalPages,
		ShowingFrom: p.From,
		ShowingTo:   p.To,
	})
}

func (h *Handlers) HandleToolGet(c *echo.Context) error {
	t, ok := h.Tools.BySlug(c.Param("slug"))
	if !ok {
		return RenderNotFound(c)
	}
	return c.JSON(http.StatusOK, toolView{Tool: t, TrustScore: t.TrustScore()})
}

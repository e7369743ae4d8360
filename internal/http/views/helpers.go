package views

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/open-sspm/open-aigov/internal/http/viewmodels"
	"github.com/open-sspm/open-aigov/internal/search"
)

func FormatInt(v int) string {
	return strconv.Itoa(v)
}

func FormatInt64(v int64) string {
	return strconv.FormatInt(v, 10)
}

// IntegrationsListURL builds the integrations page URL for a tenant and filter.
func IntegrationsListURL(tenantSlug string, f search.Filter) string {
	path := "/t/" + url.PathEscape(strings.TrimSpace(tenantSlug)) + "/integrations"
	values := f.Values()
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}

// integrationAPIURL is the JSON endpoint of one integration; suffix is
// appended as a sub-path.
func integrationAPIURL(tenantSlug string, id int64, suffix string) string {
	return "/api/tenants/" + url.PathEscape(tenantSlug) + "/integrations/" + FormatInt64(id) + suffix
}

// filterTrigger is the hx-trigger of the search forms: text input is
// debounced, selects fire almost immediately.
func filterTrigger() string {
	return fmt.Sprintf("input changed delay:%dms from:input[name='q'], change delay:150ms from:select, submit",
		search.DebounceWindow/time.Millisecond)
}

func pageTitle(title string) string {
	if title == "" {
		return "Open AI Governance"
	}
	return title + " · Open AI Governance"
}

func csrfHeaders(token string) string {
	return `{"X-CSRF-Token": "` + token + `"}`
}

func toggleVals(enabled bool) string {
	return `{"enabled": ` + strconv.FormatBool(enabled) + `}`
}

func toggleLabel(it viewmodels.IntegrationItem) string {
	if it.Enabled {
		return "Disable"
	}
	return "Enable"
}

func resultCount(data viewmodels.IntegrationsViewData) string {
	return FormatInt(len(data.Items)) + " of " + FormatInt(data.TotalCount) + " integrations"
}

// credentialSummary lists stored credential keys. A freeform document that
// is not an object has none, so only its presence is shown.
func credentialSummary(keys []string) string {
	if len(keys) == 0 {
		return "saved"
	}
	return strings.Join(keys, ", ")
}

// Package search filters in-memory catalogs (integrations, AI tools) by text,
// category, status and credential presence.
package search

import (
	"net/url"
	"strings"
	"time"
)

// DebounceWindow is how long the search input waits after the last keystroke
// before requesting new results.
const DebounceWindow = 300 * time.Millisecond

type Status string

const (
	StatusAll      Status = "all"
	StatusEnabled  Status = "enabled"
	StatusDisabled Status = "disabled"
)

type Credentials string

const (
	CredentialsAll Credentials = "all"
	CredentialsYes Credentials = "yes"
	CredentialsNo  Credentials = "no"
)

type Filter struct {
	Query          string
	Category       string
	Status         Status
	HasCredentials Credentials
}

// Fields is the searchable projection of a catalog item. CategoryLabel is
// the display name of Category and only takes part in the query match.
type Fields struct {
	Name           string
	Description    string
	Category       string
	CategoryLabel  string
	Enabled        bool
	HasCredentials bool
}

// FromValues reads q, category, status and credentials query parameters.
// Unknown status or credentials values fall back to "all".
func FromValues(v url.Values) Filter {
	return Filter{
		Query:          v.Get("q"),
		Category:       v.Get("category"),
		Status:         ParseStatus(v.Get("status")),
		HasCredentials: ParseCredentials(v.Get("credentials")),
	}.Normalized()
}

func ParseStatus(raw string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusEnabled:
		return StatusEnabled
	case StatusDisabled:
		return StatusDisabled
	default:
		return StatusAll
	}
}

func ParseCredentials(raw string) Credentials {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "true", "1":
		return CredentialsYes
	case "no", "false", "0":
		return CredentialsNo
	default:
		return CredentialsAll
	}
}

func (f Filter) Normalized() Filter {
	f.Query = strings.TrimSpace(f.Query)
	f.Category = strings.TrimSpace(f.Category)
	if strings.EqualFold(f.Category, "all") {
		f.Category = ""
	}
	if f.Status == "" {
		f.Status = StatusAll
	}
	if f.HasCredentials == "" {
		f.HasCredentials = CredentialsAll
	}
	return f
}

// IsZero reports whether the filter keeps every item.
func (f Filter) IsZero() bool {
	n := f.Normalized()
	return n.Query == "" && n.Category == "" && n.Status == StatusAll && n.HasCredentials == CredentialsAll
}

// Values is the inverse of FromValues; zero fields are omitted.
func (f Filter) Values() url.Values {
	f = f.Normalized()
	v := url.Values{}
	if f.Query != "" {
		v.Set("q", f.Query)
	}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.Status != StatusAll {
		v.Set("status", string(f.Status))
	}
	if f.HasCredentials != CredentialsAll {
		v.Set("credentials", string(f.HasCredentials))
	}
	return v
}

// Match reports whether item passes every predicate of f.
func (f Filter) Match(item Fields) bool {
	f = f.Normalized()
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(item.Name), q) &&
			!strings.Contains(strings.ToLower(item.Description), q) &&
			!strings.Contains(strings.ToLower(item.Category), q) &&
			!strings.Contains(strings.ToLower(item.CategoryLabel), q) {
			return false
		}
	}
	if f.Category != "" && !strings.EqualFold(f.Category, item.Category) {
		return false
	}
	switch f.Status {
	case StatusEnabled:
		if !item.Enabled {
			return false
		}
	case StatusDisabled:
		if item.Enabled {
			return false
		}
	}
	switch f.HasCredentials {
	case CredentialsYes:
		if !item.HasCredentials {
			return false
		}
	case CredentialsNo:
		if item.HasCredentials {
			return false
		}
	}
	return true
}

// Apply returns the items that match f, preserving order. A zero filter
// returns a copy of items.
func Apply[T any](items []T, f Filter, fields func(T) Fields) []T {
	out := make([]T, 0, len(items))
	if f.IsZero() {
		return append(out, items...)
	}
	for _, item := range items {
		if f.Match(fields(item)) {
			out = append(out, item)
		}
	}
	return out
}

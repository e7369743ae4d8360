// Package integrations manages a tenant's third-party AI integrations: the
// default catalog, credential storage and the enable/disable lifecycle.
package integrations

import (
	"errors"
	"strings"
	"time"

	"github.com/open-sspm/open-aigov/internal/search"
)

type Category string

const (
	CategoryDataPlatforms   Category = "data_platforms"
	CategoryMLPlatforms     Category = "ml_platforms"
	CategoryLLMProviders    Category = "llm_providers"
	CategoryAISecurity      Category = "ai_security"
	CategoryVectorDatabases Category = "vector_databases"
	CategoryCloudProviders  Category = "cloud_providers"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryLLMProviders,
	CategoryDataPlatforms,
	CategoryMLPlatforms,
	CategoryVectorDatabases,
	CategoryAISecurity,
	CategoryCloudProviders,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) Label() string {
	switch c {
	case CategoryDataPlatforms:
		return "Data Platforms"
	case CategoryMLPlatforms:
		return "ML Platforms"
	case CategoryLLMProviders:
		return "LLM Providers"
	case CategoryAISecurity:
		return "AI Security"
	case CategoryVectorDatabases:
		return "Vector Databases"
	case CategoryCloudProviders:
		return "Cloud Providers"
	default:
		return strings.ReplaceAll(string(c), "_", " ")
	}
}

var (
	ErrNotFound            = errors.New("integration not found")
	ErrCredentialsRequired = errors.New("credentials must be added before the integration can be enabled")
)

// Integration is a tenant's view of one vendor. CredentialKeys lists the
// top-level keys of the stored configuration; secret values never leave
// the service.
type Integration struct {
	ID                 int64     `json:"id"`
	TenantID           int64     `json:"tenant_id"`
	Name               string    `json:"name"`
	Category           Category  `json:"category"`
	LogoFile           string    `json:"-"`
	LogoURL            string    `json:"logo_url"`
	Description        string    `json:"description"`
	Enabled            bool      `json:"enabled"`
	IsCredentialsAdded bool      `json:"is_credentials_added"`
	CredentialKeys     []string  `json:"credential_keys"`
	UpdatedAt          time.Time `json:"updated_at"`

	config []byte
}

// HasCredentials reports whether credentials were saved or the stored
// configuration has any keys. A freeform document need not be an object.
func (i Integration) HasCredentials() bool {
	return i.IsCredentialsAdded || len(i.CredentialKeys) > 0
}

// SearchFields projects the integration for catalog filtering.
func SearchFields(i Integration) search.Fields {
	return search.Fields{
		Name:           i.Name,
		Description:    i.Description,
		Category:       string(i.Category),
		CategoryLabel:  i.Category.Label(),
		Enabled:        i.Enabled,
		HasCredentials: i.HasCredentials(),
	}
}

// Filter applies f to items, keeping their order.
func Filter(items []Integration, f search.Filter) []Integration {
	return search.Apply(items, f, SearchFields)
}

package viewmodels

type IntegrationsViewData struct {
	Layout LayoutData

	TenantSlug     string
	Query          string
	Category       string
	Status         string
	HasCredentials string
	Categories     []FilterOption
	Statuses       []FilterOption
	CredentialOpts []FilterOption

	Items      []IntegrationItem
	TotalCount int
	EmptyState string
}

type FilterOption struct {
	Value    string
	Label    string
	Selected bool
}

type IntegrationItem struct {
	ID             int64
	Name           string
	CategoryLabel  string
	LogoURL        string
	Description    string
	Enabled        bool
	HasCredentials bool
	CredentialKeys []string
	// CanEnable is false while no credentials are stored.
	CanEnable bool
}

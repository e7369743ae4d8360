package viewmodels

type LayoutData struct {
	Title      string
	CSRFToken  string
	UserEmail  string
	UserRole   string
	IsAdmin    bool
	TenantSlug string
	Toast      *ToastViewData
	ActivePath string
	// ScriptURL is where htmx is served from; empty omits the script.
	ScriptURL string
}

type ToastViewData struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

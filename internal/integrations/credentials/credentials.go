// Package credentials describes the credential form of each integration
// provider: which fields it asks for, how each is validated, and how the
// submitted values become the stored configuration object.
package credentials

import (
	"encoding/json"
	"strings"

	"github.com/open-sspm/open-aigov/internal/validate"
)

const (
	FieldAPIKey    = "api_key"
	FieldAPISecret = "api_secret"
	FieldHostURL   = "host_url"
	// FieldConfig holds a raw JSON document for providers without a fixed form.
	FieldConfig = "config"
)

type InputType string

const (
	InputText     InputType = "text"
	InputPassword InputType = "password"
	InputURL      InputType = "url"
	InputTextarea InputType = "textarea"
)

type Field struct {
	Name        string    `json:"name"`
	Label       string    `json:"label"`
	Type        InputType `json:"type"`
	Placeholder string    `json:"placeholder,omitempty"`

	validate func(string) string
}

type Schema struct {
	Provider string  `json:"provider"`
	Freeform bool    `json:"freeform"`
	Fields   []Field `json:"fields"`
}

// Required returns the names of the fields the schema requires, in form order.
func (s Schema) Required() []string {
	out := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		out = append(out, f.Name)
	}
	return out
}

var (
	apiKeyField = Field{Name: FieldAPIKey, Label: "API Key", Type: InputPassword, Placeholder: "sk-...", validate: validate.Required}
	secretField = Field{Name: FieldAPISecret, Label: "API Secret", Type: InputPassword, validate: validate.Required}
	hostField   = Field{Name: FieldHostURL, Label: "Host URL", Type: InputURL, Placeholder: "https://your-workspace.example.com", validate: validate.HostURL}
	configField = Field{Name: FieldConfig, Label: "Configuration (JSON)", Type: InputTextarea, Placeholder: `{"token": "..."}`, validate: validate.JSON}
)

var schemas = map[string][]Field{
	"openai":           {apiKeyField},
	"anthropic":        {apiKeyField},
	"cohere":           {apiKeyField},
	"databricks":       {hostField, apiKeyField},
	"snowflake":        {hostField, apiKeyField},
	"azure ai foundry": {apiKeyField, secretField},
}

func providerKey(provider string) string {
	return strings.Join(strings.Fields(strings.ToLower(provider)), " ")
}

// SchemaFor returns the credential form for provider. Unknown providers get a
// single freeform JSON field.
func SchemaFor(provider string) Schema {
	name := strings.TrimSpace(provider)
	if fields, ok := schemas[providerKey(provider)]; ok {
		return Schema{Provider: name, Fields: append([]Field(nil), fields...)}
	}
	return Schema{Provider: name, Freeform: true, Fields: []Field{configField}}
}

// Known reports whether provider has a fixed credential form.
func Known(provider string) bool {
	_, ok := schemas[providerKey(provider)]
	return ok
}

// Validate checks every field of the provider's schema against values.
// Keys in values that the schema does not track are ignored.
func Validate(provider string, values map[string]string) validate.FieldErrors {
	fe := validate.FieldErrors{}
	for _, f := range SchemaFor(provider).Fields {
		fe.Check(f.Name, values[f.Name], f.validate)
	}
	return fe
}

// BuildConfig validates values and assembles the configuration that is stored
// for the integration. Known providers yield a map keyed by field name; the
// freeform path yields whatever JSON document was submitted, parsed as-is.
func BuildConfig(provider string, values map[string]string) (any, error) {
	if err := Validate(provider, values).Err(); err != nil {
		return nil, err
	}

	schema := SchemaFor(provider)
	if schema.Freeform {
		var out any
		if err := json.Unmarshal([]byte(strings.TrimSpace(values[FieldConfig])), &out); err != nil {
			return nil, validate.FieldErrors{FieldConfig: "Enter valid JSON"}
		}
		return out, nil
	}

	out := make(map[string]any, len(schema.Fields))
	for _, f := range schema.Fields {
		v := strings.TrimSpace(values[f.Name])
		if f.Name == FieldHostURL {
			v, _ = validate.NormalizeHostURL(v)
		}
		out[f.Name] = v
	}
	return out, nil
}

// MergeStored fills blank password fields of values from the configuration
// stored for the integration, so a host change does not force re-entering
// the key. Non-secret fields and the freeform document are never merged.
func MergeStored(provider string, stored any, values map[string]string) map[string]string {
	prev, ok := stored.(map[string]any)
	schema := SchemaFor(provider)
	if !ok || schema.Freeform {
		return values
	}

	out := make(map[string]string, len(values))
	for k, v := range values {
		out[k] = v
	}
	for _, f := range schema.Fields {
		if f.Type != InputPassword || strings.TrimSpace(out[f.Name]) != "" {
			continue
		}
		if s, ok := prev[f.Name].(string); ok && s != "" {
			out[f.Name] = s
		}
	}
	return out
}

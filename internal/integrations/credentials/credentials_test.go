package credentials

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/open-sspm/open-aigov/internal/validate"
)

func TestSchemaFor_RequiredFieldSets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		provider string
		want     []string
		freeform bool
	}{
		{provider: "OpenAI", want: []string{FieldAPIKey}},
		{provider: "anthropic", want: []string{FieldAPIKey}},
		{provider: " Cohere ", want: []string{FieldAPIKey}},
		{provider: "Databricks", want: []string{FieldHostURL, FieldAPIKey}},
		{provider: "Snowflake", want: []string{FieldHostURL, FieldAPIKey}},
		{provider: "Azure AI Foundry", want: []string{FieldAPIKey, FieldAPISecret}},
		{provider: "azure  ai foundry", want: []string{FieldAPIKey, FieldAPISecret}},
		{provider: "Pinecone", want: []string{FieldConfig}, freeform: true},
		{provider: "", want: []string{FieldConfig}, freeform: true},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			t.Parallel()
			s := SchemaFor(tt.provider)
			if diff := cmp.Diff(tt.want, s.Required()); diff != "" {
				t.Fatalf("Required() mismatch (-want +got):\n%s", diff)
			}
			if s.Freeform != tt.freeform {
				t.Fatalf("Freeform = %v, want %v", s.Freeform, tt.freeform)
			}
		})
	}
}

func TestValidate_ReportsEveryMissingField(t *testing.T) {
	t.Parallel()

	fe := Validate("Databricks", map[string]string{})
	if len(fe) != 2 || fe[FieldHostURL] == "" || fe[FieldAPIKey] == "" {
		t.Fatalf("Validate() = %v, want host_url and api_key errors", fe)
	}

	fe = Validate("OpenAI", map[string]string{FieldAPIKey: "sk-x", "unexpected": ""})
	if fe.Any() {
		t.Fatalf("Validate() = %v, want none", fe)
	}
}

func TestValidate_FreeformJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		ok    bool
	}{
		{value: `{"token":"abc","region":"us"}`, ok: true},
		{value: `{}`, ok: true},
		{value: `{"token":`, ok: false},
		{value: `not json`, ok: false},
		{value: `["a"]`, ok: true},
		{value: `42`, ok: true},
		{value: `"x"`, ok: true},
		{value: `true`, ok: true},
		{value: `null`, ok: true},
		{value: ``, ok: false},
		{value: `   `, ok: false},
	}
	for _, tt := range tests {
		fe := Validate("Weights & Biases", map[string]string{FieldConfig: tt.value})
		if tt.ok == fe.Any() {
			t.Fatalf("Validate(%q) = %v, want ok=%v", tt.value, fe, tt.ok)
		}
	}
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	got, err := BuildConfig("Snowflake", map[string]string{
		FieldHostURL: "xy12345.snowflakecomputing.com/",
		FieldAPIKey:  " key ",
	})
	if err != nil {
		t.Fatalf("BuildConfig() error = %v", err)
	}
	want := map[string]any{FieldHostURL: "https://xy12345.snowflakecomputing.com", FieldAPIKey: "key"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("BuildConfig() mismatch (-want +got):\n%s", diff)
	}

	got, err = BuildConfig("Pinecone", map[string]string{FieldConfig: `{"api_key":"pc","environment":"gcp"}`})
	if err != nil {
		t.Fatalf("BuildConfig(freeform) error = %v", err)
	}
	if obj, ok := got.(map[string]any); !ok || obj["environment"] != "gcp" {
		t.Fatalf("BuildConfig(freeform) = %v", got)
	}

	_, err = BuildConfig("Azure AI Foundry", map[string]string{FieldAPIKey: "k"})
	var fe validate.FieldErrors
	if !errors.As(err, &fe) || fe[FieldAPISecret] == "" {
		t.Fatalf("BuildConfig() error = %v, want api_secret field error", err)
	}
}

func TestBuildConfig_FreeformKeepsDocumentShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  any
	}{
		{value: `["a"]`, want: []any{"a"}},
		{value: `42`, want: float64(42)},
		{value: ` "x" `, want: "x"},
		{value: `true`, want: true},
		{value: `null`, want: nil},
	}
	for _, tt := range tests {
		got, err := BuildConfig("Pinecone", map[string]string{FieldConfig: tt.value})
		if err != nil {
			t.Fatalf("BuildConfig(%q) error = %v", tt.value, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Fatalf("BuildConfig(%q) mismatch (-want +got):\n%s", tt.value, diff)
		}
	}

	_, err := BuildConfig("Pinecone", map[string]string{FieldConfig: `{"a":`})
	var fe validate.FieldErrors
	if !errors.As(err, &fe) || fe[FieldConfig] == "" {
		t.Fatalf("BuildConfig(malformed) error = %v, want config field error", err)
	}
}

func TestMergeStored(t *testing.T) {
	t.Parallel()

	stored := map[string]any{FieldHostURL: "https://old.cloud.databricks.com", FieldAPIKey: "dapi-old"}

	got := MergeStored("Databricks", stored, map[string]string{FieldHostURL: "new.cloud.databricks.com"})
	want := map[string]string{FieldHostURL: "new.cloud.databricks.com", FieldAPIKey: "dapi-old"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("MergeStored() mismatch (-want +got):\n%s", diff)
	}

	got = MergeStored("Databricks", stored, map[string]string{FieldAPIKey: "dapi-new"})
	if got[FieldHostURL] != "" || got[FieldAPIKey] != "dapi-new" {
		t.Fatalf("MergeStored() = %v, want host left blank and new key kept", got)
	}

	free := map[string]string{FieldConfig: ""}
	if got := MergeStored("Pinecone", map[string]any{FieldConfig: "x"}, free); got[FieldConfig] != "" {
		t.Fatalf("MergeStored(freeform) = %v, want unchanged", got)
	}
	if got := MergeStored("OpenAI", []any{"a"}, map[string]string{}); len(got) != 0 {
		t.Fatalf("MergeStored(non-object) = %v, want unchanged", got)
	}
}

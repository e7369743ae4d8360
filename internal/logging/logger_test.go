package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		level     string
		want      Config
		wantError bool
	}{
		{name: "defaults", want: Config{Format: "json", Level: slog.LevelInfo}},
		{name: "text debug", format: "text", level: "debug", want: Config{Format: "text", Level: slog.LevelDebug}},
		{name: "warning alias", level: "WARNING", want: Config{Format: "json", Level: slog.LevelWarn}},
		{name: "invalid format", format: "yaml", wantError: true},
		{name: "invalid level", level: "trace", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvFormat, tt.format)
			t.Setenv(EnvLevel, tt.level)

			cfg, err := LoadConfigFromEnv()
			if tt.wantError {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfigFromEnv() error = %v", err)
			}
			if cfg != tt.want {
				t.Fatalf("LoadConfigFromEnv() = %+v, want %+v", cfg, tt.want)
			}
		})
	}
}

func decodeLine(t *testing.T, out *bytes.Buffer) map[string]any {
	t.Helper()
	line := strings.TrimSpace(out.String())
	if line == "" {
		t.Fatal("expected JSON log line")
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	return payload
}

func TestNewLogger_JSONIncludesStaticAttrs(t *testing.T) {
	var out bytes.Buffer
	logger := NewLogger(DefaultConfig(), &out, "open-aigov serve")
	logger.Info("hello")

	payload := decodeLine(t, &out)
	if got := payload["app"]; got != AppName {
		t.Fatalf("app = %v, want %q", got, AppName)
	}
	if got := payload["command"]; got != "open-aigov serve" {
		t.Fatalf("command = %v, want %q", got, "open-aigov serve")
	}
}

func TestWithTenant_FromContext(t *testing.T) {
	var out bytes.Buffer
	base := NewLogger(DefaultConfig(), &out, "")

	ctx := WithTenant(context.Background(), base, "acme")
	FromContext(ctx).Info("scoped")

	payload := decodeLine(t, &out)
	if got := payload["tenant"]; got != "acme" {
		t.Fatalf("tenant = %v, want %q", got, "acme")
	}
	if got := payload["command"]; got != AppName {
		t.Fatalf("command = %v, want %q", got, AppName)
	}
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	if FromContext(context.Background()) != slog.Default() {
		t.Fatal("expected default logger")
	}
}

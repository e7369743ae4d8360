package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestEmitCommandError_StructuredForScopedCommands(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "info")
	setCommandExecutionContext(commandExecutionContext{
		CommandPath:       "open-aigov serve",
		UsesStructuredLog: true,
	})
	t.Cleanup(resetCommandExecutionContext)

	var out bytes.Buffer
	emitCommandError(errors.New("boom"), "command failed", 1, &out)

	line := strings.TrimSpace(out.String())
	if line == "" {
		t.Fatal("expected structured log output")
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if got := payload["app"]; got != "open-aigov" {
		t.Fatalf("app = %v, want %q", got, "open-aigov")
	}
	if got := payload["command"]; got != "open-aigov serve" {
		t.Fatalf("command = %v, want %q", got, "open-aigov serve")
	}
	if got := payload["exit_code"]; got != float64(1) {
		t.Fatalf("exit_code = %v, want %v", got, 1)
	}
	if got := payload["error"]; got != "boom" {
		t.Fatalf("error = %v, want %q", got, "boom")
	}
}

func TestEmitCommandError_FallsBackToJSONWhenLogFormatInvalid(t *testing.T) {
	t.Setenv("LOG_FORMAT", "invalid")
	t.Setenv("LOG_LEVEL", "info")
	setCommandExecutionContext(commandExecutionContext{
		CommandPath:       "open-aigov migrate",
		UsesStructuredLog: true,
	})
	t.Cleanup(resetCommandExecutionContext)

	var out bytes.Buffer
	emitCommandError(errors.New("boom"), "command failed", 1, &out)

	line := strings.TrimSpace(out.String())
	if line == "" {
		t.Fatal("expected structured log output")
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("expected JSON fallback log, got parse error: %v", err)
	}
}

func TestEmitCommandError_PlainOutputForNonScopedCommands(t *testing.T) {
	setCommandExecutionContext(commandExecutionContext{
		CommandPath:       "open-aigov users bootstrap-admin",
		UsesStructuredLog: false,
	})
	t.Cleanup(resetCommandExecutionContext)

	var out bytes.Buffer
	emitCommandError(errors.New("plain boom"), "command failed", 1, &out)
	if got := out.String(); got != "plain boom\n" {
		t.Fatalf("output = %q, want %q", got, "plain boom\n")
	}
}

func TestEmitCommandError_CanceledOutputForNonScopedCommands(t *testing.T) {
	setCommandExecutionContext(commandExecutionContext{
		CommandPath:       "open-aigov users bootstrap-admin",
		UsesStructuredLog: false,
	})
	t.Cleanup(resetCommandExecutionContext)

	var out bytes.Buffer
	emitCommandError(context.Canceled, "command canceled", 130, &out)
	if got := out.String(); got != "canceled\n" {
		t.Fatalf("output = %q, want %q", got, "canceled\n")
	}
}

func TestRunMain_ExitCodes(t *testing.T) {
	setCommandExecutionContext(commandExecutionContext{CommandPath: "open-aigov validate-catalog"})
	t.Cleanup(resetCommandExecutionContext)

	tests := []struct {
		name    string
		err     error
		want    int
		wantOut string
	}{
		{name: "success", err: nil, want: 0, wantOut: ""},
		{name: "plain error", err: errors.New("boom"), want: 1, wantOut: "boom\n"},
		{name: "exit error", err: &exitError{code: 2, err: errors.New("bad catalog")}, want: 2, wantOut: "bad catalog\n"},
		{name: "silent exit error", err: &exitError{code: 3, silent: true}, want: 3, wantOut: ""},
		{name: "canceled", err: context.Canceled, want: 130, wantOut: "canceled\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got := runMain(func() error { return tc.err }, &out)
			if got != tc.want {
				t.Fatalf("runMain() = %d, want %d", got, tc.want)
			}
			if out.String() != tc.wantOut {
				t.Fatalf("output = %q, want %q", out.String(), tc.wantOut)
			}
		})
	}
}

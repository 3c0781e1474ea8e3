package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	cerrors "github.com/salmonumbrella/dt-cli/internal/errors"
)

func TestExecute_JSONErrorsAreStructuredAndStdoutIsClean(t *testing.T) {
	setupTestEnvironment(t)

	stdout := captureStdout(t, func() {
		stderr := captureStderr(t, func() {
			err := Execute([]string{"--output=json", "boundaries"})
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
		})

		// Stderr should be a single JSON document.
		var payload map[string]any
		if err := json.Unmarshal([]byte(stderr), &payload); err != nil {
			t.Fatalf("stderr is not valid JSON: %v; stderr=%q", err, stderr)
		}

		errObj, ok := payload["error"].(map[string]any)
		if !ok {
			t.Fatalf("expected payload.error object, got: %T (%v)", payload["error"], payload["error"])
		}
		msg, _ := errObj["message"].(string)
		if msg == "" || !strings.Contains(msg, "accepts 1 arg") {
			t.Fatalf("unexpected error.message: %q", msg)
		}
	})

	if strings.TrimSpace(stdout) != "" {
		t.Fatalf("expected stdout to be empty for JSON error, got: %q", stdout)
	}
}

func TestExecute_JSONErrorsCarrySuggestion(t *testing.T) {
	setupTestEnvironment(t)

	stderr := captureStderr(t, func() {
		_ = captureStdout(t, func() {
			if err := Execute([]string{"--output=json", "resolve", "now/x"}); err == nil {
				t.Fatalf("expected error, got nil")
			}
		})
	})

	var payload struct {
		Error struct {
			Message    string `json:"message"`
			Suggestion string `json:"suggestion"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(stderr), &payload); err != nil {
		t.Fatalf("stderr is not valid JSON: %v; stderr=%q", err, stderr)
	}
	if !strings.Contains(payload.Error.Message, "unsupported time unit") {
		t.Fatalf("unexpected error.message: %q", payload.Error.Message)
	}
	if payload.Error.Suggestion != cerrors.SuggestionUnits {
		t.Fatalf("error.suggestion = %q, want %q", payload.Error.Suggestion, cerrors.SuggestionUnits)
	}
}

func TestExecute_TextErrorsAreNotJSON(t *testing.T) {
	setupTestEnvironment(t)

	out := captureStderr(t, func() {
		err := Execute([]string{"--tz", "Mars/Olympus", "resolve", "now"})
		if err == nil {
			t.Fatalf("expected error, got nil")
		}
	})

	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Fatalf("expected non-JSON stderr in text mode, got: %q", out)
	}
	if !strings.Contains(out, "Error:") {
		t.Fatalf("expected stderr to contain 'Error:', got: %q", out)
	}
	if !strings.Contains(out, "Suggestion: "+cerrors.SuggestionTimezone) {
		t.Fatalf("expected timezone suggestion, got: %q", out)
	}
}

func TestExecute_InvalidOutputMode(t *testing.T) {
	setupTestEnvironment(t)

	out := captureStderr(t, func() {
		if err := Execute([]string{"--output=yaml", "words", "10"}); err == nil {
			t.Fatalf("expected error, got nil")
		}
	})
	if !strings.Contains(out, "invalid output format") {
		t.Fatalf("unexpected stderr: %q", out)
	}
}

func TestExecute_JSONSuccessIsSingleJSONDocument(t *testing.T) {
	setupTestEnvironment(t)

	cases := []struct {
		name string
		args []string
		key  string
	}{
		{name: "resolve", args: []string{"--output=json", "resolve", "now/d"}, key: "time"},
		{name: "boundaries", args: []string{"--output=json", "boundaries", "yesterday"}, key: "start"},
		{name: "words", args: []string{"--output=json", "words", "3610"}, key: "words"},
		{name: "format", args: []string{"--output=json", "format", "Y-m-d", "1640961000"}, key: "output"},
		{name: "config show", args: []string{"--output=json", "config", "show"}, key: "timezone"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stderr := captureStderr(t, func() {
				stdout := captureStdout(t, func() {
					if err := Execute(tc.args); err != nil {
						t.Fatalf("Execute returned error: %v", err)
					}
				})

				var payload map[string]any
				if err := json.Unmarshal([]byte(stdout), &payload); err != nil {
					t.Fatalf("stdout is not valid JSON: %v; stdout=%q", err, stdout)
				}
				if _, ok := payload[tc.key]; !ok {
					t.Fatalf("expected %s field, got: %v", tc.key, payload)
				}
			})

			if strings.TrimSpace(stderr) != "" {
				t.Fatalf("expected empty stderr, got: %q", stderr)
			}
		})
	}
}

func TestExecute_QueryFiltersJSON(t *testing.T) {
	setupTestEnvironment(t)

	stdout := captureStdout(t, func() {
		if err := Execute([]string{"--output=json", "--query", ".unix", "mysql-to-unix", "2021-12-31 14:30:00"}); err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
	})

	if strings.TrimSpace(stdout) != "1640961000" {
		t.Fatalf("unexpected filtered output: %q", stdout)
	}
}

package outfmt

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", Text, false},
		{"text", Text, false},
		{"JSON", JSON, false},
		{"yaml", Text, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWriteJSONFiltered(t *testing.T) {
	var buf bytes.Buffer
	v := map[string]any{"start": "2021-12-30", "end": "2021-12-30T23:59:59"}
	if err := WriteJSONFiltered(&buf, v, ".start"); err != nil {
		t.Fatalf("WriteJSONFiltered error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != `"2021-12-30"` {
		t.Fatalf("WriteJSONFiltered = %q", got)
	}

	buf.Reset()
	if err := WriteJSONFiltered(&buf, v, ""); err != nil {
		t.Fatalf("WriteJSONFiltered error = %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"end\"") {
		t.Fatalf("expected indented JSON, got %q", buf.String())
	}

	if err := WriteJSONFiltered(&buf, v, ".start["); err == nil {
		t.Fatalf("expected error for invalid query")
	}
}

func TestWriteFields(t *testing.T) {
	var buf bytes.Buffer
	err := WriteFields(&buf,
		Field{"start", "2021-12-30 00:00:00"},
		Field{"end_time", "2021-12-30\t23:59:59"},
	)
	if err != nil {
		t.Fatalf("WriteFields error = %v", err)
	}
	want := "start     2021-12-30 00:00:00\nend_time  2021-12-30 23:59:59\n"
	if buf.String() != want {
		t.Fatalf("WriteFields = %q, want %q", buf.String(), want)
	}
}

func TestSanitizeTab(t *testing.T) {
	if got := SanitizeTab("a\tb\tc"); got != "a b c" {
		t.Fatalf("SanitizeTab() = %q, want %q", got, "a b c")
	}
	if got := SanitizeTab("no tabs"); got != "no tabs" {
		t.Fatalf("SanitizeTab() = %q, want %q", got, "no tabs")
	}
}

package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestPrintList(t *testing.T) {
	var buf bytes.Buffer
	printList(&buf, "Dialects:", []string{"native", "icu"})

	if buf.String() != "Dialects:\n  - native\n  - icu\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestPrintNoResults(t *testing.T) {
	out := captureStderr(t, func() {
		printNoResults("No aliases found for locale %s", "xx")
	})

	if strings.TrimSpace(out) != "No aliases found for locale xx" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestPrintCancelled(t *testing.T) {
	out := captureStderr(t, func() {
		printCancelled()
	})

	if strings.TrimSpace(out) != "Cancelled" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestInstantText(t *testing.T) {
	app := newTestApp()
	end := time.Date(2021, 12, 30, 23, 59, 59, 999999000, time.UTC)

	if got := app.instantText(end); got != "2021-12-30T23:59:59.999999Z" {
		t.Fatalf("instantText = %q", got)
	}
	if got := app.instantText(testNow); got != "2021-12-31T14:30:00Z" {
		t.Fatalf("instantText = %q", got)
	}

	app.Flags.Unix = true
	if got := app.instantText(end); got != "1640908799" {
		t.Fatalf("instantText --unix = %q", got)
	}
}

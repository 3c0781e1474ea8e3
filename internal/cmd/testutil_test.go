package cmd

import (
	"bytes"
	"io"
	"os"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

// testNow is the fake clock's instant in command tests: a Friday.
var testNow = time.Date(2021, 12, 31, 14, 30, 0, 0, time.UTC)

// setupTestEnvironment isolates a test from the user's config file and
// DT_* variables. The timezone is pinned to UTC.
func setupTestEnvironment(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, key := range []string{"DT_LOCALE", "DT_STRIP_LEADING_ZEROS", "DT_STRICT", "DT_OS", "DT_DAY_START", "DT_DAY_END", "DT_CONFIG", "DT_OUTPUT", "DT_COLOR", "DT_UNIX", "DT_LOG_FORMAT", "NO_COLOR"} {
		t.Setenv(key, "")
	}
	t.Setenv("DT_TIMEZONE", "UTC")
}

// captureStdout captures stdout output for assertions in tests.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	stdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = stdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	_ = r.Close()

	return buf.String()
}

// captureStderr captures stderr output for assertions in tests.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	stderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stderr = w

	fn()

	_ = w.Close()
	os.Stderr = stderr

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	_ = r.Close()

	return buf.String()
}

// newTestApp returns an App on a fake clock stopped at testNow.
func newTestApp() *App {
	return &App{
		Flags: &rootFlags{Color: "never", Output: "text"},
		Clock: clockwork.NewFakeClockAt(testNow),
	}
}

// runCommand executes args against a fresh root command on a test App and
// returns what it printed to stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var err error
	out := captureStdout(t, func() {
		root := NewRootCmd(newTestApp())
		root.SetArgs(args)
		err = root.Execute()
	})
	return out, err
}

// withStdin replaces os.Stdin with a pipe holding input for the duration
// of the test and makes it look like a non-terminal.
func withStdin(t *testing.T, input string) {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	_, _ = w.WriteString(input)
	_ = w.Close()

	stdin, isTerminal := os.Stdin, stdinIsTerminal
	os.Stdin = r
	stdinIsTerminal = func() bool { return false }
	t.Cleanup(func() {
		os.Stdin = stdin
		stdinIsTerminal = isTerminal
		_ = r.Close()
	})
}

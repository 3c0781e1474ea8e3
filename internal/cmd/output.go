package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/dt-cli/internal/outfmt"
)

// instantLayout is RFC 3339 with microseconds when they are non-zero.
const instantLayout = "2006-01-02T15:04:05.999999Z07:00"

// instantResult is the JSON shape of a resolved instant.
type instantResult struct {
	Input string    `json:"input,omitempty"`
	Time  time.Time `json:"time"`
	Unix  int64     `json:"unix"`
}

func newInstantResult(input string, t time.Time) instantResult {
	return instantResult{Input: input, Time: t, Unix: t.Unix()}
}

// rangeResult is the JSON shape of a start/end pair.
type rangeResult struct {
	Input string        `json:"input,omitempty"`
	Start instantResult `json:"start"`
	End   instantResult `json:"end"`
}

func newRangeResult(input string, start, end time.Time) rangeResult {
	return rangeResult{
		Input: input,
		Start: newInstantResult("", start),
		End:   newInstantResult("", end),
	}
}

// instantText renders t for text output, honoring --unix.
func (a *App) instantText(t time.Time) string {
	if a.Flags != nil && a.Flags.Unix {
		return strconv.FormatInt(t.Unix(), 10)
	}
	return t.Format(instantLayout)
}

// printInstant prints a single resolved instant in the current output mode.
func (a *App) printInstant(cmd *cobra.Command, input string, t time.Time) error {
	if a.IsJSON(cmd.Context()) {
		return a.PrintJSON(cmd, newInstantResult(input, t))
	}
	fmt.Println(a.instantText(t))
	return nil
}

// printRange prints a start/end pair in the current output mode.
func (a *App) printRange(cmd *cobra.Command, input string, start, end time.Time) error {
	if a.IsJSON(cmd.Context()) {
		return a.PrintJSON(cmd, newRangeResult(input, start, end))
	}
	return outfmt.WriteFields(os.Stdout,
		outfmt.Field{Key: "start", Value: a.instantText(start)},
		outfmt.Field{Key: "end", Value: a.instantText(end)},
	)
}

func newTabWriter() *tabwriter.Writer {
	return outfmt.NewTabWriter()
}

// printList prints header followed by one indented bullet per item.
func printList(w io.Writer, header string, items []string) {
	fmt.Fprintln(w, header)
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}

func printNoResults(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func printCancelled() {
	fmt.Fprintln(os.Stderr, "Cancelled")
}

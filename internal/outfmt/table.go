package outfmt

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

// NewTabWriter returns a tabwriter configured for stdout.
func NewTabWriter() *tabwriter.Writer {
	return newTabWriter(os.Stdout)
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// SanitizeTab replaces tab characters with spaces for clean tabwriter output.
func SanitizeTab(s string) string {
	return strings.ReplaceAll(s, "\t", " ")
}

// Field is one labelled value of a key/value listing.
type Field struct {
	Key   string
	Value string
}

// WriteFields writes fields as aligned "key  value" lines.
func WriteFields(w io.Writer, fields ...Field) error {
	tw := newTabWriter(w)
	for _, f := range fields {
		fmt.Fprintf(tw, "%s\t%s\n", SanitizeTab(f.Key), SanitizeTab(f.Value))
	}
	return tw.Flush()
}

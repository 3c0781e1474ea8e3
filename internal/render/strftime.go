package render

import (
	"strings"
	"time"

	"github.com/itchyny/timefmt-go"
)

// Strftime renders t with a C-library format. The Windows "%#" no-padding
// flag is read as "%-".
func Strftime(t time.Time, format string) string {
	return timefmt.Format(t, normalizeFlags(format))
}

func normalizeFlags(format string) string {
	if !strings.Contains(format, "%#") {
		return format
	}

	var b strings.Builder
	b.Grow(len(format))
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || i+1 >= len(format) {
			b.WriteByte(c)
			continue
		}
		next := format[i+1]
		b.WriteByte('%')
		if next == '#' {
			b.WriteByte('-')
		} else {
			b.WriteByte(next)
		}
		i++
	}
	return b.String()
}

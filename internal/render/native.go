// Package render turns instants into strings: the native token renderer,
// C-library strftime rendering and the locale-aware Formatter.
package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dromara/carbon/v2"
	"github.com/goodsign/monday"
)

// carbonTokens are the native tokens carbon renders exactly like the native
// set. The others are rendered by nativeToken and passed to carbon escaped.
const carbonTokens = "dDjlFmMnYyaAgGhHisOPTLUt"

// nameLayouts maps the name tokens to the layouts monday translates.
var nameLayouts = map[byte]string{
	'D': "Mon",
	'l': "Monday",
	'M': "Jan",
	'F': "January",
}

// Native renders t with the native token set (d, D, j, l, N, S, w, z, W,
// F, m, M, n, t, L, o, Y, y, a, A, B, g, G, h, H, i, s, u, v, e, I, O, P,
// p, T, Z, c, r, U). A backslash emits the following byte literally; any
// other byte is copied as is.
func Native(t time.Time, format string) string {
	return carbon.CreateFromStdTime(t).Format(carbonLayout(t, format, ""))
}

// NativeLocalized is Native with day and month names (D, l, M, F) in
// locale. Every other token renders as in Native.
func NativeLocalized(t time.Time, format string, locale monday.Locale) string {
	return carbon.CreateFromStdTime(t).Format(carbonLayout(t, format, locale))
}

// carbonLayout rewrites a native format into a carbon layout: shared tokens
// stay, every other token becomes its escaped value and literal letters are
// escaped.
func carbonLayout(t time.Time, format string, locale monday.Locale) string {
	var b strings.Builder
	b.Grow(len(format) * 2)

	for i := 0; i < len(format); i++ {
		c := format[i]
		if c == '\\' {
			if i+1 < len(format) {
				i++
				writeLiteral(&b, format[i])
			}
			continue
		}
		if locale != "" {
			if layout, ok := nameLayouts[c]; ok {
				writeEscaped(&b, monday.Format(t, layout, locale))
				continue
			}
		}
		if strings.IndexByte(carbonTokens, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		if s, ok := nativeToken(t, c); ok {
			writeEscaped(&b, s)
			continue
		}
		writeLiteral(&b, c)
	}
	return b.String()
}

func writeEscaped(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		writeLiteral(b, s[i])
	}
}

// writeLiteral escapes ASCII letters and backslashes, the only bytes carbon
// reads as tokens. Other bytes, including multi-byte UTF-8, pass through.
func writeLiteral(b *strings.Builder, c byte) {
	if c == '\\' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
		b.WriteByte('\\')
	}
	b.WriteByte(c)
}

// nativeToken renders the native tokens carbon lacks or renders
// differently.
func nativeToken(t time.Time, c byte) (string, bool) {
	switch c {
	// day
	case 'N':
		return strconv.Itoa(isoWeekday(t)), true
	case 'S':
		return ordinalSuffix(t.Day()), true
	case 'w':
		return strconv.Itoa(int(t.Weekday())), true
	case 'z':
		return strconv.Itoa(t.YearDay() - 1), true

	// week
	case 'W':
		_, week := t.ISOWeek()
		return fmt.Sprintf("%02d", week), true

	// year
	case 'o':
		year, _ := t.ISOWeek()
		return fmt.Sprintf("%04d", year), true

	// time
	case 'B':
		return swatch(t), true
	case 'u':
		return fmt.Sprintf("%06d", t.Nanosecond()/1000), true
	case 'v':
		return fmt.Sprintf("%03d", t.Nanosecond()/1000000), true

	// zone
	case 'e':
		if loc := t.Location(); loc != time.Local {
			return loc.String(), true
		}
		name, _ := t.Zone()
		return name, true
	case 'I':
		if t.IsDST() {
			return "1", true
		}
		return "0", true
	case 'p':
		if _, offset := t.Zone(); offset == 0 {
			return "Z", true
		}
		return t.Format("-07:00"), true
	case 'Z':
		_, offset := t.Zone()
		return strconv.Itoa(offset), true

	// full
	case 'c':
		return t.Format("2006-01-02T15:04:05-07:00"), true
	case 'r':
		return t.Format("Mon, 02 Jan 2006 15:04:05 -0700"), true
	}
	return "", false
}

func isoWeekday(t time.Time) int {
	if wd := t.Weekday(); wd != time.Sunday {
		return int(wd)
	}
	return 7
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// swatch returns Swatch Internet Time, measured from UTC+1.
func swatch(t time.Time) string {
	u := t.UTC()
	seconds := (u.Hour()*3600 + u.Minute()*60 + u.Second() + 3600) % 86400
	return fmt.Sprintf("%03d", seconds*10/864)
}

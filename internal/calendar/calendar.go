// Package calendar holds small calendar utilities: day/night windows,
// localized day and month listings, year ranges and timestamp helpers.
package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"github.com/itchyny/timefmt-go"

	"github.com/salmonumbrella/dt-cli/internal/dateparse"
	"github.com/salmonumbrella/dt-cli/internal/dialect"
	cerrors "github.com/salmonumbrella/dt-cli/internal/errors"
	"github.com/salmonumbrella/dt-cli/internal/render"
)

// Default day window, in minutes past midnight: 05:00 to 21:00.
const (
	DefaultDayStart = 300
	DefaultDayEnd   = 1260
)

// Width selects short or long names.
type Width int

const (
	Narrow Width = iota
	Long
)

// ParseWidth maps "long" to Long and anything else to Narrow.
func ParseWidth(s string) Width {
	if strings.EqualFold(strings.TrimSpace(s), "long") {
		return Long
	}
	return Narrow
}

var clockRE = regexp.MustCompile(`^([0-9]{2}):([0-9]{2})$`)

// ParseClock converts "HH:MM" to minutes past midnight.
func ParseClock(s string) (int, error) {
	m := clockRE.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("%w: clock time %q must be HH:MM", cerrors.ErrInvalidArgument, s)
	}
	h, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return h*60 + minute, nil
}

// IsDay reports whether t's wall clock falls in [start, end), both given
// in minutes past midnight.
func IsDay(t time.Time, start, end int) bool {
	seconds := t.Hour()*3600 + t.Minute()*60 + t.Second()
	return seconds >= start*60 && seconds < end*60
}

// IsNight is the complement of IsDay.
func IsNight(t time.Time, start, end int) bool {
	return !IsDay(t, start, end)
}

// ListDays returns the weekday names for locale, Monday first.
func ListDays(width Width, locale string) []string {
	layout := "Mon"
	if width == Long {
		layout = "Monday"
	}
	// 2020-01-06 is the first Monday of 2020.
	first := time.Date(2020, time.January, 6, 12, 0, 0, 0, time.UTC)
	loc := render.MondayLocale(locale)

	days := make([]string, 7)
	for i := range days {
		days[i] = monday.Format(first.AddDate(0, 0, i), layout, loc)
	}
	return days
}

// ListMonths returns the month names for locale, January first.
func ListMonths(width Width, locale string) []string {
	layout := "Jan"
	if width == Long {
		layout = "January"
	}
	loc := render.MondayLocale(locale)

	months := make([]string, 12)
	for i := range months {
		months[i] = monday.Format(time.Date(2020, time.Month(i+1), 1, 12, 0, 0, 0, time.UTC), layout, loc)
	}
	return months
}

// ListYears returns the years from..to inclusive. A zero from is a
// century before current; a zero to, or one not after from, is current's
// year.
func ListYears(from, to int, current time.Time) []int {
	if from == 0 {
		from = current.Year() - 100
	}
	if to == 0 || to <= from {
		to = current.Year()
	}
	if to < from {
		return nil
	}

	years := make([]int, 0, to-from+1)
	for y := from; y <= to; y++ {
		years = append(years, y)
	}
	return years
}

// MySQLToUnix converts a MySQL DATETIME ("2021-12-31 14:30:00") or its
// compact form ("20211231143000") in loc to Unix seconds.
func MySQLToUnix(s string, loc *time.Location) (int64, error) {
	compact := strings.NewReplacer("-", "", ":", "", " ", "").Replace(strings.TrimSpace(s))
	if len(compact) < 8 || len(compact) > 14 {
		return 0, fmt.Errorf("%w: %q is not a MySQL date-time", cerrors.ErrInvalidDateFormat, s)
	}
	for _, c := range compact {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q is not a MySQL date-time", cerrors.ErrInvalidDateFormat, s)
		}
	}
	compact += strings.Repeat("0", 14-len(compact))

	field := func(from, to int) int {
		n, _ := strconv.Atoi(compact[from:to])
		return n
	}
	if loc == nil {
		loc = time.Local
	}
	t := time.Date(field(0, 4), time.Month(field(4, 6)), field(6, 8), field(8, 10), field(10, 12), field(12, 14), 0, loc)
	return t.Unix(), nil
}

// CreateTimestamp parses s in loc and returns its Unix seconds.
func CreateTimestamp(s string, loc *time.Location, current time.Time) (int64, error) {
	t, err := dateparse.Parse(s, loc, current)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

// Parse parses value strictly with a native format or alias in loc. It
// reports false for empty or malformed input instead of an error.
func Parse(value, formatOrAlias string, loc *time.Location, locale string, resolver *dialect.Resolver) (time.Time, bool) {
	if value == "" || formatOrAlias == "" {
		return time.Time{}, false
	}
	if resolver == nil {
		resolver = dialect.NewResolver()
	}
	if loc == nil {
		loc = time.Local
	}

	// Parsing needs the padded directives; timefmt rejects flags.
	strict := *resolver
	strict.StripLeadingZeros = false
	layout := strict.Convert(formatOrAlias, dialect.CLib, strings.ToLower(strings.TrimSpace(locale)))

	t, err := timefmt.ParseInLocation(value, layout, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

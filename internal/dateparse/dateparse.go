// Package dateparse constructs instants from the loosely typed values users
// pass around: timestamps, time.Time values, ISO or human date strings and
// freeform modifiers such as "-2 hour -5 minutes" or "next friday".
package dateparse

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/now"

	cerrors "github.com/salmonumbrella/dt-cli/internal/errors"
)

// LoadLocation resolves an IANA zone name. An empty name or "Local" selects
// the host zone.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, cerrors.WithSuggestion(fmt.Errorf("%w: unknown time zone %q", cerrors.ErrInvalidArgument, name), cerrors.SuggestionTimezone)
	}
	return loc, nil
}

// FromTimestamp returns the instant sec seconds and nsec nanoseconds after
// the Unix epoch, in loc (UTC when loc is nil).
func FromTimestamp(sec, nsec int64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Unix(sec, nsec).In(loc)
}

var numericRE = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// IsNumeric reports whether s is a plain or decimal number.
func IsNumeric(s string) bool {
	return numericRE.MatchString(strings.TrimSpace(s))
}

// FromNumeric interprets s as a Unix timestamp. Integers longer than 11
// digits are milliseconds; decimals are fractional seconds.
func FromNumeric(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !numericRE.MatchString(s) {
		return time.Time{}, fmt.Errorf("%w: %q is not a timestamp", cerrors.ErrInvalidDateFormat, s)
	}

	if strings.Contains(s, ".") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q: %v", cerrors.ErrInvalidDateFormat, s, err)
		}
		return FromFloat(f, loc), nil
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", cerrors.ErrInvalidDateFormat, s, err)
	}
	if len(strings.TrimPrefix(s, "-")) > 11 {
		return FromTimestamp(n/1000, (n%1000)*int64(time.Millisecond), loc), nil
	}
	return FromTimestamp(n, 0, loc), nil
}

// FromFloat interprets f as fractional Unix seconds, rounded to microseconds.
func FromFloat(f float64, loc *time.Location) time.Time {
	sec, frac := math.Modf(f)
	micros := math.Round(frac * 1e6)
	return FromTimestamp(int64(sec), int64(micros)*int64(time.Microsecond), loc)
}

// From is the general-purpose constructor. It accepts nil (the current
// instant), time.Time, *time.Time, integer and float timestamps, and
// strings understood by Parse. A non-nil loc converts the result into loc;
// a nil loc keeps a time.Time's own location and uses UTC otherwise.
func From(value any, loc *time.Location, current time.Time) (time.Time, error) {
	var t time.Time
	switch v := value.(type) {
	case nil:
		t = current
	case time.Time:
		t = v
	case *time.Time:
		if v == nil {
			t = current
		} else {
			t = *v
		}
	case int:
		t = FromTimestamp(int64(v), 0, loc)
	case int64:
		t = FromTimestamp(v, 0, loc)
	case int32:
		t = FromTimestamp(int64(v), 0, loc)
	case uint32:
		t = FromTimestamp(int64(v), 0, loc)
	case float64:
		t = FromFloat(v, loc)
	case float32:
		t = FromFloat(float64(v), loc)
	case string:
		parsed, err := Parse(v, loc, current)
		if err != nil {
			return time.Time{}, err
		}
		t = parsed
	default:
		return time.Time{}, fmt.Errorf("%w: cannot build a time from %T", cerrors.ErrInvalidArgument, value)
	}

	if loc != nil {
		t = t.In(loc)
	}
	return t, nil
}

// Parse parses s in loc using current as the reference for relative words.
// It understands numeric timestamps, RFC3339, ISO dates and date-times,
// now/today/yesterday/tomorrow, weekday names, "2h ago" style offsets, and
// the layouts of github.com/jinzhu/now ("2021-12-31 14:30", "16:30", ...).
func Parse(s string, loc *time.Location, current time.Time) (time.Time, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: empty date", cerrors.ErrInvalidDateFormat)
	}
	if loc == nil {
		loc = current.Location()
	}
	current = current.In(loc)

	if IsNumeric(raw) {
		return FromNumeric(raw, loc)
	}

	normalized := strings.ToLower(raw)
	normalized = strings.TrimSpace(strings.Trim(normalized, ".,"))

	switch normalized {
	case "now":
		return current, nil
	case "today", "midnight":
		return startOfDay(current), nil
	case "noon":
		return startOfDay(current).Add(12 * time.Hour), nil
	case "yesterday":
		return startOfDay(current.AddDate(0, 0, -1)), nil
	case "tomorrow":
		return startOfDay(current.AddDate(0, 0, 1)), nil
	}

	if t, ok := parseWeekday(normalized, current); ok {
		return t, nil
	}

	if t, ok, err := parseRelative(normalized, current); ok {
		return t, err
	}

	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, nil
	}

	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}

	cfg := &now.Config{
		WeekStartDay: time.Monday,
		TimeLocation: loc,
		TimeFormats:  layouts,
	}
	if t, err := cfg.With(current).Parse(raw); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", cerrors.ErrInvalidDateFormat, raw)
}

var isoLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// layouts are tried before jinzhu/now's defaults.
var layouts = append([]string{
	"2.1.2006 15:04:05",
	"2.1.2006 15:04",
	"2.1.2006",
	"1/2/2006 3:04:05 PM",
	"1/2/2006 15:04:05",
	"1/2/2006",
	"3:04 PM",
	"3:04:05 PM",
	"2006-01-02 3:04:05 PM",
	"2006-01-02 3:04 PM",
	"15:04:05",
	"15:04",
}, now.TimeFormats...)

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func parseRelative(input string, current time.Time) (time.Time, bool, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return time.Time{}, false, nil
	}

	if strings.HasSuffix(trimmed, "ago") {
		value := strings.TrimSpace(strings.TrimSuffix(trimmed, "ago"))
		if value == "" {
			return time.Time{}, true, fmt.Errorf("%w: invalid relative time %q", cerrors.ErrInvalidDateFormat, input)
		}

		t, ok := applyOffsets(current, value, -1)
		if !ok {
			return time.Time{}, true, fmt.Errorf("%w: invalid relative time %q", cerrors.ErrInvalidDateFormat, input)
		}
		return t, true, nil
	}

	if d, err := time.ParseDuration(trimmed); err == nil {
		return current.Add(d), true, nil
	}

	matches := durationTokenRE.FindStringSubmatch(trimmed)
	if len(matches) != 3 {
		return time.Time{}, false, nil
	}
	t, ok := applyOffsets(current, matches[1]+" "+matches[2], 1)
	return t, ok, nil
}

func parseWeekday(input string, current time.Time) (time.Time, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, false
	}

	direction := 0
	switch {
	case strings.HasPrefix(s, "next "):
		s = strings.TrimSpace(strings.TrimPrefix(s, "next "))
		direction = 1
	case strings.HasPrefix(s, "last "):
		s = strings.TrimSpace(strings.TrimPrefix(s, "last "))
		direction = -1
	case strings.HasPrefix(s, "previous "):
		s = strings.TrimSpace(strings.TrimPrefix(s, "previous "))
		direction = -1
	case strings.HasPrefix(s, "this "):
		s = strings.TrimSpace(strings.TrimPrefix(s, "this "))
	}

	weekday, ok := weekdayAliases[s]
	if !ok {
		return time.Time{}, false
	}

	base := startOfDay(current)
	today := base.Weekday()
	if direction < 0 {
		delta := (int(today) - int(weekday) + 7) % 7
		if delta == 0 {
			delta = 7
		}
		return base.AddDate(0, 0, -delta), true
	}

	delta := (int(weekday) - int(today) + 7) % 7
	if direction > 0 && delta == 0 {
		delta = 7
	}
	return base.AddDate(0, 0, delta), true
}

var weekdayAliases = map[string]time.Weekday{
	"sun":       time.Sunday,
	"sunday":    time.Sunday,
	"mon":       time.Monday,
	"monday":    time.Monday,
	"tue":       time.Tuesday,
	"tues":      time.Tuesday,
	"tuesday":   time.Tuesday,
	"wed":       time.Wednesday,
	"weds":      time.Wednesday,
	"wednesday": time.Wednesday,
	"thu":       time.Thursday,
	"thur":      time.Thursday,
	"thurs":     time.Thursday,
	"thursday":  time.Thursday,
	"fri":       time.Friday,
	"friday":    time.Friday,
	"sat":       time.Saturday,
	"saturday":  time.Saturday,
}

var durationTokenRE = regexp.MustCompile(`^(\d+)(mo|w|d|h|m|s|y)$`)

package period

import (
	"fmt"
	"math"
	"time"

	cerrors "github.com/salmonumbrella/dt-cli/internal/errors"
)

// maxCalendarUnits bounds whole-unit shifts so year arithmetic stays in
// range of time.Time.
const maxCalendarUnits = math.MaxInt32

// Shift moves t by n units. Seconds, minutes and hours are exact durations;
// days and weeks are calendar days, so a day across a DST change keeps the
// wall clock. Months and years never overflow: the day is clamped to the
// last day of the target month, so Jan 31 minus one month is Feb 28 (or 29).
func Shift(t time.Time, n int, unit Unit) time.Time {
	switch unit {
	case Second:
		return t.Add(time.Duration(n) * time.Second)
	case Minute:
		return t.Add(time.Duration(n) * time.Minute)
	case Hour:
		return t.Add(time.Duration(n) * time.Hour)
	case Day:
		return t.AddDate(0, 0, n)
	case Week:
		return t.AddDate(0, 0, 7*n)
	case Month:
		return addMonthsNoOverflow(t, n)
	case Year:
		return addMonthsNoOverflow(t, 12*n)
	}
	return t
}

// ShiftOverflow is Shift with plain time.AddDate semantics for months and
// years: Dec 31 minus one month is Dec 1 (Nov 31 normalized).
func ShiftOverflow(t time.Time, n int, unit Unit) time.Time {
	switch unit {
	case Month:
		return t.AddDate(0, n, 0)
	case Year:
		return t.AddDate(n, 0, 0)
	}
	return Shift(t, n, unit)
}

// ShiftDuration moves t back or forth by a fractional number of units.
// Fractions are honoured for seconds, minutes and hours; larger units are
// truncated to whole units. A value whose shift does not fit in a
// time.Duration, or in a calendar unit count, is ErrInvalidArgument.
func ShiftDuration(t time.Time, value float64, unit Unit) (time.Time, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return time.Time{}, overflow(value, unit)
	}

	var step time.Duration
	switch unit {
	case Second:
		step = time.Second
	case Minute:
		step = time.Minute
	case Hour:
		step = time.Hour
	}
	if step != 0 {
		ns := value * float64(step)
		if math.Abs(ns) >= math.MaxInt64 {
			return time.Time{}, overflow(value, unit)
		}
		return t.Add(time.Duration(ns)), nil
	}

	if math.Abs(value) > maxCalendarUnits {
		return time.Time{}, overflow(value, unit)
	}
	return ShiftOverflow(t, int(value), unit), nil
}

func overflow(value float64, unit Unit) error {
	err := fmt.Errorf("%w: shift of %v %s is out of range", cerrors.ErrInvalidArgument, value, unit)
	return cerrors.WithSuggestion(err, cerrors.SuggestionShiftRange)
}

func addMonthsNoOverflow(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()

	total := int(month) - 1 + months
	targetYear := year + floorDiv(total, 12)
	targetMonth := time.Month(total - floorDiv(total, 12)*12 + 1)

	if last := DaysIn(targetYear, targetMonth); day > last {
		day = last
	}
	return time.Date(targetYear, targetMonth, day, hour, minute, sec, t.Nanosecond(), t.Location())
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

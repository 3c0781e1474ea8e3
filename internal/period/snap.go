package period

import (
	"time"

	"github.com/jinzhu/now"
)

// Edge selects which side of a period Snap returns.
type Edge int

const (
	Start Edge = iota
	End
)

// EdgeOf returns End when end is true.
func EdgeOf(end bool) Edge {
	if end {
		return End
	}
	return Start
}

// Precision is the smallest step of a boundary. End boundaries are one
// Precision before the start of the next period.
const Precision = time.Microsecond

// weeks start on Monday (ISO 8601).
var calendar = &now.Config{WeekStartDay: time.Monday}

// Snap returns the start or end of the unit-long period containing t, in
// t's own location. A None unit returns t unchanged.
func Snap(t time.Time, unit Unit, edge Edge) time.Time {
	n := calendar.With(t)

	var out time.Time
	switch unit {
	case Second:
		out = truncate(t, time.Second)
		if edge == End {
			out = out.Add(time.Second - Precision)
		}
		return out
	case Minute:
		// Wall-clock fields: offsets such as PMT (+00:57:44) carry seconds.
		out = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
		if edge == End {
			out = out.Add(time.Minute - Precision)
		}
		return out
	case Hour:
		if edge == End {
			out = n.EndOfHour()
		} else {
			out = n.BeginningOfHour()
		}
	case Day:
		if edge == End {
			out = n.EndOfDay()
		} else {
			out = n.BeginningOfDay()
		}
	case Week:
		if edge == End {
			out = n.EndOfWeek()
		} else {
			out = n.BeginningOfWeek()
		}
	case Month:
		if edge == End {
			out = n.EndOfMonth()
		} else {
			out = n.BeginningOfMonth()
		}
	case Year:
		if edge == End {
			out = n.EndOfYear()
		} else {
			out = n.BeginningOfYear()
		}
	default:
		return t
	}
	return truncate(out, Precision)
}

// truncate drops the sub-second part of t below d. d must divide time.Second.
func truncate(t time.Time, d time.Duration) time.Time {
	return t.Add(-(time.Duration(t.Nanosecond()) % d))
}

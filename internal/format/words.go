package format

import (
	"strconv"
	"time"
)

// SecondsToWords renders a duration in seconds as "1h 0m 10s", "2m 5s" or
// "59s". Non-positive values render as "0s".
func SecondsToWords(seconds int64) string {
	if seconds <= 0 {
		return "0s"
	}

	h := seconds / 3600
	m := (seconds - h*3600) / 60
	s := seconds - h*3600 - m*60

	switch {
	case seconds >= 3600:
		return strconv.FormatInt(h, 10) + "h " + strconv.FormatInt(m, 10) + "m " + strconv.FormatInt(s, 10) + "s"
	case seconds >= 60:
		return strconv.FormatInt(m, 10) + "m " + strconv.FormatInt(s, 10) + "s"
	}
	return strconv.FormatInt(s, 10) + "s"
}

// DurationToWords is SecondsToWords for a time.Duration, truncated to
// whole seconds.
func DurationToWords(d time.Duration) string {
	return SecondsToWords(int64(d / time.Second))
}

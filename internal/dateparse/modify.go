package dateparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	cerrors "github.com/salmonumbrella/dt-cli/internal/errors"
	"github.com/salmonumbrella/dt-cli/internal/period"
)

var (
	nlpOnce   sync.Once
	nlpParser *when.Parser
)

func naturalLanguage() *when.Parser {
	nlpOnce.Do(func() {
		nlpParser = when.New(nil)
		nlpParser.Add(en.All...)
		nlpParser.Add(common.All...)
	})
	return nlpParser
}

// Modify applies a freeform modifier to t and returns the result. It
// understands sequences of signed offsets ("-2 hour -5 minutes", "+1 week
// 2 days"), "3 days ago", the day keywords, weekday names with next/last,
// and falls back to natural language ("next tuesday at 5pm").
func Modify(t time.Time, modifier string) (time.Time, error) {
	raw := strings.TrimSpace(modifier)
	if raw == "" {
		return t, nil
	}
	s := strings.ToLower(raw)

	switch s {
	case "now":
		return t, nil
	case "today", "midnight":
		return startOfDay(t), nil
	case "noon":
		return startOfDay(t).Add(12 * time.Hour), nil
	case "yesterday":
		return startOfDay(t.AddDate(0, 0, -1)), nil
	case "tomorrow":
		return startOfDay(t.AddDate(0, 0, 1)), nil
	}

	if got, ok := parseWeekday(s, t); ok {
		return got, nil
	}

	if strings.HasSuffix(s, " ago") {
		if got, ok := applyOffsets(t, strings.TrimSuffix(s, " ago"), -1); ok {
			return got, nil
		}
	}
	if got, ok := applyOffsets(t, s, 1); ok {
		return got, nil
	}

	r, err := naturalLanguage().Parse(raw, t)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", cerrors.ErrInvalidDateFormat, raw, err)
	}
	if r == nil {
		return time.Time{}, fmt.Errorf("%w: %q", cerrors.ErrInvalidDateFormat, raw)
	}
	return r.Time, nil
}

var offsetTermRE = regexp.MustCompile(`^([+-]?)\s*(\d+)\s*([a-z]+)\s*`)

var offsetUnits = map[string]period.Unit{
	"s":       period.Second,
	"sec":     period.Second,
	"secs":    period.Second,
	"second":  period.Second,
	"seconds": period.Second,
	"m":       period.Minute,
	"min":     period.Minute,
	"mins":    period.Minute,
	"minute":  period.Minute,
	"minutes": period.Minute,
	"h":       period.Hour,
	"hour":    period.Hour,
	"hours":   period.Hour,
	"d":       period.Day,
	"day":     period.Day,
	"days":    period.Day,
	"w":       period.Week,
	"week":    period.Week,
	"weeks":   period.Week,
	"mo":      period.Month,
	"month":   period.Month,
	"months":  period.Month,
	"y":       period.Year,
	"year":    period.Year,
	"years":   period.Year,
}

// applyOffsets consumes s as a sequence of "[+-]N unit" terms. A term's
// sign carries over to following unsigned terms. direction multiplies the
// whole sequence. Months and years overflow like calendar arithmetic does
// ("Jan 31 +1 month" is March 3rd in a common year).
func applyOffsets(t time.Time, s string, direction int) (time.Time, bool) {
	rest := strings.TrimSpace(s)
	if rest == "" {
		return time.Time{}, false
	}

	sign := 1
	for rest != "" {
		m := offsetTermRE.FindStringSubmatch(rest)
		if m == nil {
			return time.Time{}, false
		}
		unit, ok := offsetUnits[m[3]]
		if !ok {
			return time.Time{}, false
		}
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return time.Time{}, false
		}
		switch m[1] {
		case "-":
			sign = -1
		case "+":
			sign = 1
		}
		t = period.ShiftOverflow(t, direction*sign*n, unit)
		rest = rest[len(m[0]):]
	}
	return t, true
}

package relative

import (
	"regexp"
	"strings"

	"github.com/salmonumbrella/dt-cli/internal/period"
)

// periodSynonyms maps human period names to canonical "<offset>/<unit>"
// expressions. Keys are lower case with single spaces.
var periodSynonyms = map[string]string{
	"sec":    "now/s",
	"second": "now/s",
	"min":    "now/m",
	"minute": "now/m",
	"hour":   "now/h",

	"day":           "now/d",
	"today":         "now/d",
	"this day":      "now/d",
	"yesterday":     "-1d/d",
	"previous day":  "-1d/d",
	"previous_day":  "-1d/d",
	"last day":      "-1d/d",
	"tomorrow":      "+1d/d",
	"next day":      "+1d/d",
	"next_day":      "+1d/d",
	"week":          "now/w",
	"this week":     "now/w",
	"previous week": "-1w/w",
	"previous_week": "-1w/w",
	"last week":     "-1w/w",
	"week ago":      "-1w/w",
	"week_ago":      "-1w/w",
	"next week":     "+1w/w",
	"next_week":     "+1w/w",

	"mo":             "now/M",
	"month":          "now/M",
	"this month":     "now/M",
	"previous month": "-1M/M",
	"previous_month": "-1M/M",
	"last month":     "-1M/M",
	"month ago":      "-1M/M",
	"month_ago":      "-1M/M",
	"next month":     "+1M/M",
	"next_month":     "+1M/M",

	"year":          "now/y",
	"this year":     "now/y",
	"previous year": "-1y/y",
	"previous_year": "-1y/y",
	"last year":     "-1y/y",
	"year ago":      "-1y/y",
	"year_ago":      "-1y/y",
	"next year":     "+1y/y",
	"next_year":     "+1y/y",
}

// keywordUnits maps the unit keywords accepted by RelativeTime.
var keywordUnits = map[string]period.Unit{
	"s":       period.Second,
	"sec":     period.Second,
	"second":  period.Second,
	"seconds": period.Second,
	"m":       period.Minute,
	"min":     period.Minute,
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
	"M":       period.Month,
	"month":   period.Month,
	"months":  period.Month,
	"y":       period.Year,
	"year":    period.Year,
	"years":   period.Year,
}

var spaceRE = regexp.MustCompile(`\s+`)

// Canonicalize rewrites a period name into the expression Boundaries
// resolves. Synonyms come from a fixed vocabulary; a bare offset such as
// "-2d" gains its own unit as boundary ("-2d/d", "mo" becomes "M"). The
// second result reports whether the input was recognized; unrecognized
// input is returned trimmed and otherwise unchanged.
func Canonicalize(name string) (string, bool) {
	trimmed := strings.TrimSpace(name)
	key := spaceRE.ReplaceAllString(strings.ToLower(trimmed), " ")
	if canonical, ok := periodSynonyms[key]; ok {
		return canonical, true
	}

	if m := bareOffsetRE.FindStringSubmatch(trimmed); m != nil {
		unit := m[3]
		if unit == "mo" {
			unit = "M"
		}
		return trimmed + "/" + unit, true
	}

	return trimmed, strings.Contains(trimmed, "/")
}

// KeywordUnit resolves a RelativeTime unit keyword.
func KeywordUnit(keyword string) (period.Unit, bool) {
	u, ok := keywordUnits[strings.TrimSpace(keyword)]
	return u, ok
}

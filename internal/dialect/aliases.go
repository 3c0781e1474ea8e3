package dialect

import "strings"

// Frequently used alias names. Every locale group defines them.
const (
	AliasDate          = "date"
	AliasDateShort     = "date_short"
	AliasDateTime      = "date_time"
	AliasDateTimeShort = "date_time_short"
	AliasTime          = "time"
	AliasTimeShort     = "time_short"
)

// group is a set of locales sharing the same alias table.
type group string

const (
	groupEN group = "en"
	groupEU group = "eu"
)

var localeGroups = map[string]group{
	"en": groupEN,
	"us": groupEN,
	"sk": groupEU,
	"cs": groupEU,
	"da": groupEU,
	"de": groupEU,
	"es": groupEU,
	"fr": groupEU,
	"hu": groupEU,
}

var aliases = map[group]map[string]string{
	groupEN: {
		"date":               "n/j/Y",
		"date_short":         "n/j/Y",
		"date_medium":        "M j, Y",
		"date_long":          "F j, Y",
		"date_full":          "F j, Y",
		"date_time":          "n/j/Y g:i:s A",
		"date_time_short":    "n/j/Y g:i A",
		"date_time_short_tz": "n/j/Y g:i A T",
		"date_time_medium":   "M j, Y g:i A",
		"date_time_long":     "F j, Y g:i:s A",
		"date_time_full":     "F j, Y g:i:s.u A T",
		"date_time_tz":       "n/j/Y g:i:s A T",
		"date_time_ms":       "n/j/Y g:i:s.u A",
		"date_human":         "D, M j",
		"time":               "g:i:s A",
		"time_short":         "g:i A",
		"time_short_tz":      "g:i A T",
		"time_medium":        "g:i:s A",
		"time_long":          "g:i:s A",
		"time_full":          "g:i:s A T",
		"time_ms":            "g:i.u A",
	},
	groupEU: {
		"date":               "j.n.Y",
		"date_short":         "j.n.Y",
		"date_medium":        "j M Y",
		"date_long":          "j F Y",
		"date_full":          "j F Y e",
		"date_time":          "j.n.Y H:i:s",
		"date_time_short":    "j.n.Y H:i",
		"date_time_short_tz": "j.n.Y H:i T",
		"date_time_medium":   "j. M Y H:i",
		"date_time_long":     "j. F Y H:i:s",
		"date_time_full":     "j. F Y H:i:s T",
		"date_time_tz":       "j.n.Y H:i:s T",
		"date_time_ms":       "j.n.Y H:i:s.u",
		"date_human":         "j.n.Y",
		"time":               "H:i:s",
		"time_short":         "H:i",
		"time_short_tz":      "H:i T",
		"time_medium":        "H:i:s",
		"time_long":          "H:i:s",
		"time_full":          "H:i:s T",
		"time_ms":            "H:i:s.u",
	},
}

// NormalizeLocale lower-cases a locale and drops its region and encoding:
// "cs_CZ.UTF-8" and "cs-cz" both become "cs".
func NormalizeLocale(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(locale, "_-."); i >= 0 {
		locale = locale[:i]
	}
	return locale
}

func groupFor(locale string) group {
	if g, ok := localeGroups[NormalizeLocale(locale)]; ok {
		return g
	}
	return groupEN
}

// LookupAlias returns the native format registered for alias in the group of
// locale. Unrecognized locales use the English group.
func LookupAlias(alias, locale string) (string, bool) {
	f, ok := aliases[groupFor(locale)][alias]
	return f, ok
}

// AliasNames returns the alias names known for locale, unsorted.
func AliasNames(locale string) []string {
	table := aliases[groupFor(locale)]
	out := make([]string, 0, len(table))
	for name := range table {
		out = append(out, name)
	}
	return out
}

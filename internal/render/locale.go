package render

import (
	"strings"

	"github.com/goodsign/monday"

	"github.com/salmonumbrella/dt-cli/internal/dialect"
)

var defaultRegions = map[string]string{
	"en": "en_US",
	"sk": "sk_SK",
	"cs": "cs_CZ",
	"da": "da_DK",
	"de": "de_DE",
	"es": "es_ES",
	"fr": "fr_FR",
	"hu": "hu_HU",
	"it": "it_IT",
	"pl": "pl_PL",
	"pt": "pt_PT",
	"nl": "nl_NL",
	"ru": "ru_RU",
	"uk": "uk_UA",
	"sv": "sv_SE",
	"fi": "fi_FI",
}

// MondayLocale maps a locale such as "sk", "de-AT" or "cs_CZ.UTF-8" to the
// locale name used for translated month and day names. Bare languages get a
// default region; unknown languages fall back to en_US.
func MondayLocale(locale string) monday.Locale {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexByte(locale, '.'); i >= 0 {
		locale = locale[:i]
	}
	lang := dialect.NormalizeLocale(locale)
	if lang == "" {
		return monday.LocaleEnUS
	}

	if i := strings.IndexAny(locale, "_-"); i >= 0 && i+1 < len(locale) {
		return monday.Locale(lang + "_" + strings.ToUpper(locale[i+1:]))
	}
	if region, ok := defaultRegions[lang]; ok {
		return monday.Locale(region)
	}
	return monday.LocaleEnUS
}

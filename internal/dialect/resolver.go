package dialect

import (
	"log/slog"
	"runtime"
	"strings"

	cerrors "github.com/salmonumbrella/dt-cli/internal/errors"
)

// DefaultLocale is used when neither the call nor the Resolver names one.
const DefaultLocale = "en"

// Resolver resolves format aliases and converts formats between dialects.
// The zero value is not ready for use; call NewResolver.
type Resolver struct {
	// Locale is used when a call passes an empty locale.
	Locale string
	// StripLeadingZeros rewrites CLib day-of-month and month tokens to their
	// non-padded variants.
	StripLeadingZeros bool
	// GOOS selects the CLib non-padding modifier: "%#" on windows, "%-"
	// elsewhere.
	GOOS string
	// Strict makes ConvertNamed fail on unknown dialect names instead of
	// returning the format unchanged.
	Strict bool
	Logger *slog.Logger
}

// NewResolver returns a Resolver with the default settings: English locale,
// leading zeros stripped, host operating system, permissive.
func NewResolver() *Resolver {
	return &Resolver{
		Locale:            DefaultLocale,
		StripLeadingZeros: true,
		GOOS:              runtime.GOOS,
		Logger:            slog.Default(),
	}
}

func (r *Resolver) locale(locale string) string {
	if locale = strings.TrimSpace(locale); locale != "" {
		return locale
	}
	if r.Locale != "" {
		return r.Locale
	}
	return DefaultLocale
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

func (r *Resolver) windows() bool {
	return strings.EqualFold(r.GOOS, "windows")
}

// ResolveAlias returns the native format registered for aliasOrLiteral in
// the locale's group, or aliasOrLiteral itself when it is not an alias.
func (r *Resolver) ResolveAlias(aliasOrLiteral, locale string) string {
	if f, ok := LookupAlias(aliasOrLiteral, r.locale(locale)); ok {
		return f
	}
	return aliasOrLiteral
}

// Convert resolves formatOrAlias and translates it into target. Native
// returns the resolved native format.
func (r *Resolver) Convert(formatOrAlias string, target Dialect, locale string) string {
	if formatOrAlias == "" {
		return ""
	}

	target = target.canonical()
	f := r.ResolveAlias(formatOrAlias, locale)
	if !HasTable(target) {
		return f
	}

	f = Translate(f, target)
	if target == CLib {
		f = strings.ReplaceAll(f, "%l ", "%l")
		if r.StripLeadingZeros {
			modifier := "%-"
			if r.windows() {
				modifier = "%#"
			}
			f = rewriteDirectives(f, map[byte]string{
				'e': modifier + "e",
				'm': modifier + "m",
			})
		}
	}
	return f
}

// ConvertNamed is Convert for a dialect given by name. An unknown name
// returns the alias-resolved format unchanged, or ErrUnknownDialect when the
// Resolver is strict.
func (r *Resolver) ConvertNamed(formatOrAlias, target, locale string) (string, error) {
	d, err := Parse(target)
	if err != nil {
		if r.Strict {
			return "", cerrors.WithSuggestion(err, cerrors.SuggestionListDialects)
		}
		r.logger().Debug("unknown format dialect, returning format unconverted", "dialect", target, "format", formatOrAlias)
		return r.ResolveAlias(formatOrAlias, locale), nil
	}
	return r.Convert(formatOrAlias, d, locale), nil
}

// Get returns formatOrAlias as a format string of the target dialect. An
// empty input yields an empty string. For CLib on windows a padded %e that
// survived conversion is replaced by %#d, which the Microsoft C runtime
// understands.
func (r *Resolver) Get(formatOrAlias string, target Dialect, locale string) string {
	if formatOrAlias == "" {
		return ""
	}
	if target == Native {
		return r.ResolveAlias(formatOrAlias, locale)
	}

	f := r.Convert(formatOrAlias, target, locale)
	if target == CLib && r.windows() {
		f = rewriteDirectives(f, map[byte]string{'e': "%#d"})
	}
	return f
}

// rewriteDirectives replaces the strftime directives %<key> of f. Escaped
// percent signs ("%%") and flagged directives ("%-e") are copied as is.
func rewriteDirectives(f string, repl map[byte]string) string {
	var b strings.Builder
	b.Grow(len(f) + 8)
	for i := 0; i < len(f); i++ {
		if f[i] != '%' || i+1 == len(f) {
			b.WriteByte(f[i])
			continue
		}
		next := f[i+1]
		if r, ok := repl[next]; ok {
			b.WriteString(r)
		} else {
			b.WriteByte('%')
			b.WriteByte(next)
		}
		i++
	}
	return b.String()
}

package render

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/salmonumbrella/dt-cli/internal/dateparse"
	"github.com/salmonumbrella/dt-cli/internal/dialect"
)

// Formatter renders instants with format aliases or native formats.
type Formatter struct {
	Dialects *dialect.Resolver
	Clock    clockwork.Clock
	// Location is the zone used for timestamps and strings when a call
	// does not override it.
	Location *time.Location
}

// NewFormatter returns a Formatter on the real clock in the host zone.
func NewFormatter(dialects *dialect.Resolver) *Formatter {
	return &Formatter{
		Dialects: dialects,
		Clock:    clockwork.NewRealClock(),
		Location: time.Local,
	}
}

// Format renders value with formatOrAlias. value is anything
// dateparse.From accepts; nil is the current instant. A non-empty tz
// converts the instant into that zone. With a locale aliases resolve in
// that locale and day and month names are translated; without one alias
// lookup falls back to the Formatter's default locale. An empty format
// renders as an empty string. The only error is an unknown tz.
func (f *Formatter) Format(formatOrAlias string, value any, tz, locale string) (string, error) {
	if formatOrAlias == "" {
		return "", nil
	}

	t, err := f.Instant(value, tz)
	if err != nil {
		return "", err
	}

	if locale == "" {
		return Native(t, f.dialects().Get(formatOrAlias, dialect.Native, "")), nil
	}
	native := f.dialects().Get(formatOrAlias, dialect.Native, locale)
	return NativeLocalized(t, native, MondayLocale(locale)), nil
}

// Instant resolves value the way Format does.
func (f *Formatter) Instant(value any, tz string) (time.Time, error) {
	loc := f.location()
	override := tz != ""
	if override {
		var err error
		if loc, err = dateparse.LoadLocation(tz); err != nil {
			return time.Time{}, err
		}
	}

	current := f.now().In(loc)
	switch value.(type) {
	case time.Time, *time.Time:
		t, err := dateparse.From(value, nil, current)
		if err != nil {
			return time.Time{}, err
		}
		if override {
			t = t.In(loc)
		}
		return t, nil
	}
	return dateparse.From(value, loc, current)
}

func (f *Formatter) dialects() *dialect.Resolver {
	if f.Dialects == nil {
		return dialect.NewResolver()
	}
	return f.Dialects
}

func (f *Formatter) location() *time.Location {
	if f.Location == nil {
		return time.Local
	}
	return f.Location
}

func (f *Formatter) now() time.Time {
	if f.Clock == nil {
		return time.Now()
	}
	return f.Clock.Now()
}

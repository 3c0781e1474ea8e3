// Package relative resolves relative-time expressions ("-1d/d", "now+3h",
// "yesterday", ISO literals, Unix timestamps) into instants and period
// boundaries.
package relative

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/salmonumbrella/dt-cli/internal/dateparse"
	cerrors "github.com/salmonumbrella/dt-cli/internal/errors"
	"github.com/salmonumbrella/dt-cli/internal/period"
)

var isoRE = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})(T(\d{2}):(\d{2}):(\d{2})(\.(\d{1,6}))?)?$`)

// Resolver resolves expressions against a clock and a default location.
type Resolver struct {
	Clock    clockwork.Clock
	Location *time.Location
	// Strict rejects period names outside the known vocabulary instead of
	// treating them as literal date-times.
	Strict bool
	Logger *slog.Logger
}

// NewResolver returns a resolver on the real clock in the host zone.
func NewResolver() *Resolver {
	return &Resolver{
		Clock:    clockwork.NewRealClock(),
		Location: time.Local,
	}
}

// Option adjusts a single resolution.
type Option func(*options)

type options struct {
	end       bool
	base      any
	loc       *time.Location
	micros    int
	hasMicros bool
}

// WithEnd snaps to the end of the boundary unit instead of its start.
func WithEnd(end bool) Option {
	return func(o *options) { o.end = end }
}

// WithBase sets the instant offsets are applied to. It accepts anything
// dateparse.From does: time.Time, Unix timestamps and date strings.
func WithBase(base any) Option {
	return func(o *options) { o.base = base }
}

// WithLocation resolves in loc instead of the resolver's location.
func WithLocation(loc *time.Location) Option {
	return func(o *options) { o.loc = loc }
}

// WithMicros sets the sub-second part, in microseconds, of offset results
// that are not snapped to a boundary.
func WithMicros(micros int) Option {
	return func(o *options) {
		o.micros = micros
		o.hasMicros = true
	}
}

func (r *Resolver) options(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.loc == nil {
		o.loc = r.Location
	}
	if o.loc == nil {
		o.loc = time.Local
	}
	return o
}

func (r *Resolver) now() time.Time {
	if r.Clock == nil {
		return time.Now()
	}
	return r.Clock.Now()
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}

// base resolves the base instant of o. Without a base it is current.
func (r *Resolver) base(o options, current time.Time) (time.Time, error) {
	return dateparse.From(o.base, o.loc, current)
}

// ResolveTime resolves expr into an instant. An empty expression resolves
// to the zero time and no error.
func (r *Resolver) ResolveTime(expr string, opts ...Option) (time.Time, error) {
	o := r.options(opts)
	current := r.now().In(o.loc)
	base, err := r.base(o, current)
	if err != nil {
		return time.Time{}, err
	}
	return r.resolve(expr, o, base, current)
}

// Resolve is ResolveTime for loosely typed input: a time.Time is returned
// unchanged, numbers are Unix timestamps and strings are expressions.
func (r *Resolver) Resolve(value any, opts ...Option) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v != nil {
			return *v, nil
		}
		return time.Time{}, nil
	case string:
		return r.ResolveTime(v, opts...)
	case nil:
		return time.Time{}, nil
	}

	o := r.options(opts)
	return dateparse.From(value, o.loc, r.now())
}

func (r *Resolver) resolve(expr string, o options, base, current time.Time) (time.Time, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return time.Time{}, nil
	}

	if dateparse.IsNumeric(expr) {
		return dateparse.FromNumeric(expr, o.loc)
	}

	left, right, hasBoundary := splitBoundary(expr)
	edge := period.EdgeOf(o.end)
	if !hasBoundary && strings.EqualFold(left, "now") {
		return current, nil
	}

	if isoRE.MatchString(left) {
		boundary, err := parseBoundary(right, hasBoundary)
		if err != nil {
			return time.Time{}, err
		}
		t, err := parseISO(left, o.loc)
		if err != nil {
			return time.Time{}, err
		}
		return period.Snap(t, boundary, edge), nil
	}

	e, err := Parse(expr)
	if errors.Is(err, errNoMatch) {
		boundary, berr := parseBoundary(right, hasBoundary)
		if berr != nil {
			return time.Time{}, berr
		}
		return r.literal(left, o, base, boundary, edge)
	}
	if err != nil {
		return time.Time{}, err
	}

	t := period.Shift(base, e.Offset(), e.Unit)
	if e.Boundary != period.None {
		return period.Snap(t, e.Boundary, edge), nil
	}
	if o.hasMicros {
		t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), o.micros*int(time.Microsecond), t.Location())
	}
	return t, nil
}

// literal resolves input that is not an offset expression as a date-time
// string relative to base.
func (r *Resolver) literal(s string, o options, base time.Time, boundary period.Unit, edge period.Edge) (time.Time, error) {
	t, err := dateparse.Parse(s, o.loc, base)
	if err != nil {
		return time.Time{}, cerrors.WithSuggestion(fmt.Errorf("%w: %q", cerrors.ErrInvalidDateFormat, s), cerrors.SuggestionExpression)
	}
	r.logger().Debug("resolved expression as literal date-time", "expr", s, "time", t)
	return period.Snap(t.In(o.loc), boundary, edge), nil
}

func parseISO(s string, loc *time.Location) (time.Time, error) {
	layout := "2006-01-02"
	if len(s) > len(layout) {
		layout = "2006-01-02T15:04:05.999999"
	}
	t, err := time.ParseInLocation(layout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", cerrors.ErrInvalidDateFormat, s, err)
	}
	return t, nil
}

// Boundaries resolves a period name ("yesterday", "next month", "-2d") to
// the start and end of that period. Both ends are resolved against the
// same current instant and base.
func (r *Resolver) Boundaries(name string, opts ...Option) (start, end time.Time, err error) {
	canonical, ok := Canonicalize(name)
	if !ok {
		if r.Strict {
			err = cerrors.WithSuggestion(fmt.Errorf("%w: %q", cerrors.ErrUnrecognizedPeriod, name), cerrors.SuggestionPeriod)
			return time.Time{}, time.Time{}, err
		}
		r.logger().Debug("unrecognized period, resolving as literal", "period", name)
	}

	o := r.options(opts)
	current := r.now().In(o.loc)
	base, err := r.base(o, current)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	o.end = false
	if start, err = r.resolve(canonical, o, base, current); err != nil {
		return time.Time{}, time.Time{}, err
	}
	o.end = true
	if end, err = r.resolve(canonical, o, base, current); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// Time returns the start of the named period.
func (r *Resolver) Time(name string, opts ...Option) (time.Time, error) {
	start, _, err := r.Boundaries(name, opts...)
	return start, err
}

// RelativeTime moves value units back from the base. Unknown keywords are
// applied to the base as a freeform modifier ("-2 hour -5 minutes",
// "last friday") and value is ignored.
func (r *Resolver) RelativeTime(keyword string, value float64, opts ...Option) (time.Time, error) {
	o := r.options(opts)
	base, err := r.base(o, r.now().In(o.loc))
	if err != nil {
		return time.Time{}, err
	}
	return r.relative(keyword, value, base)
}

// RelativeTimeBoundaries returns the RelativeTime result and the base it
// was computed from, in that order.
func (r *Resolver) RelativeTimeBoundaries(keyword string, value float64, opts ...Option) (earlier, anchor time.Time, err error) {
	o := r.options(opts)
	anchor, err = r.base(o, r.now().In(o.loc))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	earlier, err = r.relative(keyword, value, anchor)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return earlier, anchor, nil
}

func (r *Resolver) relative(keyword string, value float64, base time.Time) (time.Time, error) {
	if unit, ok := KeywordUnit(keyword); ok {
		return period.ShiftDuration(base, -value, unit)
	}
	r.logger().Debug("applying freeform modifier", "modifier", keyword)
	return dateparse.Modify(base, keyword)
}

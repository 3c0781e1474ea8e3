package relative

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	cerrors "github.com/salmonumbrella/dt-cli/internal/errors"
	"github.com/salmonumbrella/dt-cli/internal/period"
)

var (
	bareOffsetRE = regexp.MustCompile(`^([+-])?(\d+)?([a-zA-Z]{1,2})$`)
	nowOffsetRE  = regexp.MustCompile(`^now([+\-\s])(\d+)([a-zA-Z]{1,2})$`)
	strippedRE   = regexp.MustCompile(`[^a-zA-Z0-9+\-\s]`)
)

// errNoMatch marks input that is not an offset expression at all.
var errNoMatch = fmt.Errorf("%w: not an offset expression", cerrors.ErrInvalidDateFormat)

// Expression is a parsed offset expression such as "-2d/d" or "now+3h".
type Expression struct {
	Sign     int
	Count    int
	Unit     period.Unit
	Boundary period.Unit
}

// Offset returns the signed count.
func (e Expression) Offset() int {
	return e.Sign * e.Count
}

// String renders e in canonical form.
func (e Expression) String() string {
	sign := "+"
	if e.Sign < 0 {
		sign = "-"
	}
	s := sign + strconv.Itoa(e.Count) + e.Unit.Token()
	if e.Boundary != period.None {
		s += "/" + e.Boundary.Token()
	}
	return s
}

// Parse parses an offset expression: "[sign][count]unit[/boundary]" or
// "now<sign>count unit". A unit alone ("w") refers to the current period;
// a sign without a count moves by one. "now/<unit>" is the current period
// snapped to unit.
func Parse(expr string) (Expression, error) {
	left, right, hasBoundary := splitBoundary(expr)

	b, err := parseBoundary(right, hasBoundary)
	if err != nil {
		return Expression{}, err
	}
	e := Expression{Boundary: b}
	if hasBoundary && strings.EqualFold(left, "now") {
		left = "d"
	}

	sign, count, unit, err := parseOffset(left)
	if err != nil {
		return Expression{}, err
	}
	e.Sign, e.Count, e.Unit = sign, count, unit
	return e, nil
}

func parseBoundary(token string, ok bool) (period.Unit, error) {
	if !ok {
		return period.None, nil
	}
	b, err := period.ParseUnit(token)
	if err != nil {
		return period.None, cerrors.WithSuggestion(err, cerrors.SuggestionUnits)
	}
	return b, nil
}

// splitBoundary splits "left/right" once. Left is URL-decoded ("%2B1d").
func splitBoundary(expr string) (left, right string, ok bool) {
	expr = strings.TrimSpace(expr)
	parts := strings.Split(expr, "/")
	if len(parts) == 2 {
		return decode(parts[0]), strings.TrimSpace(parts[1]), true
	}
	return decode(expr), "", false
}

func decode(s string) string {
	if decoded, err := url.PathUnescape(s); err == nil {
		s = decoded
	}
	return strings.TrimSpace(s)
}

func parseOffset(s string) (sign, count int, unit period.Unit, err error) {
	s = strippedRE.ReplaceAllString(s, "")

	var token string
	if m := bareOffsetRE.FindStringSubmatch(s); m != nil {
		sign = 1
		if m[1] == "-" {
			sign = -1
		}
		switch {
		case m[2] != "":
			count, _ = strconv.Atoi(m[2])
		case m[1] != "":
			count = 1
		}
		token = m[3]
	} else if m := nowOffsetRE.FindStringSubmatch(s); m != nil {
		sign = 1
		if m[1] == "-" {
			sign = -1
		}
		count, _ = strconv.Atoi(m[2])
		token = m[3]
	} else {
		return 0, 0, period.None, errNoMatch
	}

	unit, err = period.ParseUnit(token)
	if err != nil {
		return 0, 0, period.None, cerrors.WithSuggestion(err, cerrors.SuggestionUnits)
	}
	return sign, count, unit, nil
}

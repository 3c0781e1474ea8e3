// Package period holds the calendar units used by relative-time expressions,
// snapping an instant to the start or end of the period containing it, and
// unit arithmetic that never overflows into the following month.
package period

import (
	"fmt"

	cerrors "github.com/salmonumbrella/dt-cli/internal/errors"
)

// Unit is a calendar unit of a relative-time expression.
type Unit int

const (
	None Unit = iota
	Second
	Minute
	Hour
	Day
	Week
	Month
	Year
)

// Units lists every unit from the smallest to the largest.
var Units = []Unit{Second, Minute, Hour, Day, Week, Month, Year}

// AllowedTokens are the unit tokens accepted by ParseUnit.
var AllowedTokens = []string{"s", "m", "h", "d", "w", "M", "mo", "y"}

// ParseUnit maps a unit token to a Unit. Tokens are case-sensitive:
// "m" is a minute, "M" and "mo" are a month.
func ParseUnit(token string) (Unit, error) {
	switch token {
	case "s":
		return Second, nil
	case "m":
		return Minute, nil
	case "h":
		return Hour, nil
	case "d":
		return Day, nil
	case "w":
		return Week, nil
	case "M", "mo":
		return Month, nil
	case "y":
		return Year, nil
	}
	return None, fmt.Errorf("%w: %q", cerrors.ErrUnsupportedUnit, token)
}

// Token returns the canonical token of u ("M" for months).
func (u Unit) Token() string {
	switch u {
	case Second:
		return "s"
	case Minute:
		return "m"
	case Hour:
		return "h"
	case Day:
		return "d"
	case Week:
		return "w"
	case Month:
		return "M"
	case Year:
		return "y"
	}
	return ""
}

func (u Unit) String() string {
	switch u {
	case Second:
		return "second"
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	case Year:
		return "year"
	}
	return "none"
}

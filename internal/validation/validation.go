package validation

import (
	"fmt"
	"strings"

	"github.com/salmonumbrella/dt-cli/internal/calendar"
)

// Required checks for empty strings
func Required(name, value string) error {
	if value == "" {
		return fmt.Errorf("%s is required", name)
	}
	return nil
}

// OneOf checks that value is one of allowed, ignoring case.
func OneOf(name, value string, allowed ...string) error {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %s, got %q", name, strings.Join(allowed, "|"), value)
}

// Clock validates an HH:MM wall-clock time and returns it in minutes past
// midnight.
func Clock(name, value string) (int, error) {
	minutes, err := calendar.ParseClock(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if minutes > 24*60 {
		return 0, fmt.Errorf("%s must not be later than 24:00, got %s", name, value)
	}
	return minutes, nil
}

// YearRange checks a from/to pair where zero means "unset".
func YearRange(from, to int) error {
	if from < 0 || to < 0 {
		return fmt.Errorf("years must not be negative")
	}
	if from != 0 && to != 0 && to < from {
		return fmt.Errorf("year range %d..%d is reversed", from, to)
	}
	return nil
}

// Package errors provides contextual error handling with user-facing suggestions.
package errors

import (
	"errors"
	"fmt"
)

// Common suggestion constants for user-facing error messages
const (
	SuggestionTimezone     = "Use an IANA zone name such as 'UTC' or 'Europe/Bratislava'"
	SuggestionUnits        = "Supported units: s, m, h, d, w, M (or mo) and y"
	SuggestionExpression   = "Use 'now', an ISO date like 2021-12-31T14:30:00, a Unix timestamp or an offset like -1d/d"
	SuggestionPeriod       = "Run 'dt boundaries --help' to see the recognized period names"
	SuggestionListDialects = "Run 'dt dialects' to see the available format dialects"
	SuggestionClock        = "Use a 24-hour HH:MM clock time such as 05:00 or 21:00"
	SuggestionShiftRange   = "Use a smaller value or a larger unit"
)

// Sentinel errors shared by the date/time packages. Callers match them with
// errors.Is; packages wrap them with additional detail.
var (
	// ErrInvalidArgument reports a malformed timezone or similar argument.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnsupportedUnit reports a relative-time unit outside s, m, h, d, w, M, mo, y.
	ErrUnsupportedUnit = errors.New("unsupported time unit")
	// ErrInvalidDateFormat reports an expression no rule could resolve.
	ErrInvalidDateFormat = errors.New("invalid date format")
	// ErrUnrecognizedPeriod reports an unknown period name in strict mode.
	ErrUnrecognizedPeriod = errors.New("unrecognized period")
	// ErrUnknownDialect reports an unknown format dialect in strict mode.
	ErrUnknownDialect = errors.New("unknown format dialect")
)

// ContextError wraps an error with additional context and optional user-facing suggestion.
type ContextError struct {
	Context    string // Contextual information (e.g., "while resolving -1d/d")
	Err        error  // The underlying error
	Suggestion string // Optional user-facing suggestion
}

// Error implements the error interface.
// Returns "context: error" format, or just the error message if no context.
func (e *ContextError) Error() string {
	if e.Err == nil {
		return ""
	}
	if e.Context == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Context, e.Err.Error())
}

// Unwrap returns the underlying error for errors.Is and errors.As compatibility.
func (e *ContextError) Unwrap() error {
	return e.Err
}

// WithContext wraps an error with contextual information.
// Returns nil if the error is nil.
func WithContext(err error, context string) error {
	if err == nil {
		return nil
	}
	return &ContextError{
		Context: context,
		Err:     err,
	}
}

// WithSuggestion adds a user-facing suggestion to an error.
// Returns nil if the error is nil. A ContextError is copied, not modified.
func WithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}

	if ce, ok := err.(*ContextError); ok {
		c := *ce
		c.Suggestion = suggestion
		return &c
	}

	return &ContextError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// ContainsSuggestion checks if an error has a user-facing suggestion.
// Returns false if the error is nil.
func ContainsSuggestion(err error) bool {
	return GetSuggestion(err) != ""
}

// GetSuggestion returns the outermost non-empty suggestion in err's chain.
// A ContextError that only adds context does not hide a suggestion
// attached further down.
func GetSuggestion(err error) string {
	for err != nil {
		var ce *ContextError
		if !errors.As(err, &ce) {
			return ""
		}
		if ce.Suggestion != "" {
			return ce.Suggestion
		}
		err = ce.Err
	}
	return ""
}

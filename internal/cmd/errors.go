package cmd

import (
	"errors"

	cerrors "github.com/salmonumbrella/dt-cli/internal/errors"
)

// mapCommandError adds common suggestions for known error types.
func mapCommandError(err error) error {
	if err == nil {
		return nil
	}
	if cerrors.ContainsSuggestion(err) {
		return err
	}

	switch {
	case errors.Is(err, cerrors.ErrUnsupportedUnit):
		return cerrors.WithSuggestion(err, cerrors.SuggestionUnits)
	case errors.Is(err, cerrors.ErrUnrecognizedPeriod):
		return cerrors.WithSuggestion(err, cerrors.SuggestionPeriod)
	case errors.Is(err, cerrors.ErrUnknownDialect):
		return cerrors.WithSuggestion(err, cerrors.SuggestionListDialects)
	case errors.Is(err, cerrors.ErrInvalidDateFormat):
		return cerrors.WithSuggestion(err, cerrors.SuggestionExpression)
	case errors.Is(err, cerrors.ErrInvalidArgument):
		return cerrors.WithSuggestion(err, cerrors.SuggestionTimezone)
	}

	return err
}

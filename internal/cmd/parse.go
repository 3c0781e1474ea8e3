package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/dt-cli/internal/calendar"
	cerrors "github.com/salmonumbrella/dt-cli/internal/errors"
)

func newParseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <value> <format|alias>",
		Short: "Parse a date strictly with a native format or alias",
		Long: `Parse a date strictly with a native format or a locale-aware alias.
The whole value must match the format.

Examples:
  dt parse '12/31/2021 2:30:00 PM' date_time
  dt --locale sk parse '31.12.2021 14:30:00' date_time
  dt parse 2021-12-31 Y-m-d --unix`,
		Args: cobra.ExactArgs(2),
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			t, ok := calendar.Parse(args[0], args[1], app.Location, app.Settings.Locale, app.Dialects)
			if !ok {
				err := fmt.Errorf("%w: %q does not match %q", cerrors.ErrInvalidDateFormat, args[0], app.Dialects.ResolveAlias(args[1], ""))
				return Suggest(err, "Check the value against 'dt get-format "+args[1]+"'")
			}
			return app.printInstant(cmd, args[0], t)
		}),
	}

	return cmd
}

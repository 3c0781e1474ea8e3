package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cerrors "github.com/salmonumbrella/dt-cli/internal/errors"
)

func newBoundariesCmd(app *App) *cobra.Command {
	var flags resolveFlags

	cmd := &cobra.Command{
		Use:     "boundaries <period>",
		Aliases: []string{"range"},
		Short:   "Show the start and end of a named period",
		Long: `Show the start and end of a named period.

Period names: second, minute, hour, day/today, yesterday, tomorrow,
week, previous week, next week, month, previous month, next month,
year, previous year, next year (with "last", "ago" and underscore
variants). Bare offsets such as -2d or +1M and full expressions such as
-1w/w are accepted as well.

Examples:
  dt boundaries yesterday
  dt boundaries 'previous month' --base 2021-12-31
  dt boundaries --unix -- -2d`,
		Args: cobra.ExactArgs(1),
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			start, end, err := app.Resolver.Boundaries(args[0], flags.options()...)
			if err != nil {
				return err
			}
			return app.printRange(cmd, args[0], start, end)
		}),
	}

	flags.register(cmd, false)

	return cmd
}

func newTimeCmd(app *App) *cobra.Command {
	var flags resolveFlags

	cmd := &cobra.Command{
		Use:   "time <period>",
		Short: "Show the start of a named period",
		Long: `Show the start of a named period. Accepts the same names as
'dt boundaries'.

Examples:
  dt time hour
  dt time 'next week' --tz Europe/Bratislava`,
		Args: cobra.ExactArgs(1),
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			t, err := app.Resolver.Time(args[0], flags.options()...)
			if err != nil {
				return err
			}
			return app.printInstant(cmd, args[0], t)
		}),
	}

	flags.register(cmd, false)

	return cmd
}

func newAgoCmd(app *App) *cobra.Command {
	var (
		flags     resolveFlags
		withRange bool
	)

	cmd := &cobra.Command{
		Use:   "ago <unit> [value]",
		Short: "Move a number of units back from now",
		Long: `Move value units back from the base (default now). value defaults to
1 and may be fractional for seconds through days.

Units: second(s), minute(s), hour(s), day(s), week(s), month(s), year(s)
and their short forms. Anything else is applied as a freeform modifier
such as "-2 hour -5 minutes" or "last friday", and value is ignored.

With --range, both the earlier instant and the base are printed.

Examples:
  dt ago day
  dt ago hours 36
  dt ago month 2 --range
  dt ago 'last friday'`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			value := 1.0
			if len(args) > 1 {
				v, err := strconv.ParseFloat(args[1], 64)
				if err != nil {
					err = fmt.Errorf("%w: value %q is not a number", cerrors.ErrInvalidArgument, args[1])
					return Suggest(err, "Pass the number of units, e.g. 2 or 1.5")
				}
				value = v
			}

			if withRange {
				earlier, anchor, err := app.Resolver.RelativeTimeBoundaries(args[0], value, flags.options()...)
				if err != nil {
					return err
				}
				return app.printRange(cmd, args[0], earlier, anchor)
			}

			t, err := app.Resolver.RelativeTime(args[0], value, flags.options()...)
			if err != nil {
				return err
			}
			return app.printInstant(cmd, args[0], t)
		}),
	}

	flags.register(cmd, false)
	cmd.Flags().BoolVar(&withRange, "range", false, "Print the earlier instant and the base")

	return cmd
}

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/dt-cli/internal/calendar"
	cerrors "github.com/salmonumbrella/dt-cli/internal/errors"
	"github.com/salmonumbrella/dt-cli/internal/validation"
)

type dayWindowFlags struct {
	start string
	end   string
}

// window returns the day window in minutes, falling back to the configured
// day_start and day_end.
func (f dayWindowFlags) window(app *App) (start, end int, err error) {
	startClock, endClock := app.Settings.DayStart, app.Settings.DayEnd
	if f.start != "" {
		startClock = f.start
	}
	if f.end != "" {
		endClock = f.end
	}

	if start, err = validation.Clock("start", startClock); err != nil {
		return 0, 0, Suggest(err, cerrors.SuggestionClock)
	}
	if end, err = validation.Clock("end", endClock); err != nil {
		return 0, 0, Suggest(err, cerrors.SuggestionClock)
	}
	if end <= start {
		err = fmt.Errorf("%w: end %s must be after start %s", cerrors.ErrInvalidArgument, endClock, startClock)
		return 0, 0, Suggest(err, cerrors.SuggestionClock)
	}
	return start, end, nil
}

func newIsDayCmd(app *App) *cobra.Command {
	return newDayNightCmd(app, "is-day", "Report whether an instant falls in the day window", true)
}

func newIsNightCmd(app *App) *cobra.Command {
	return newDayNightCmd(app, "is-night", "Report whether an instant falls outside the day window", false)
}

func newDayNightCmd(app *App, use, short string, day bool) *cobra.Command {
	var flags dayWindowFlags

	cmd := &cobra.Command{
		Use:   use + " [time]",
		Short: short,
		Long: short + `.

The day window runs from --start (inclusive) to --end (exclusive), by
default 05:00 to 21:00 or day_start/day_end from the config file. The
time may be any expression 'dt resolve' accepts and defaults to now.

Examples:
  dt ` + use + `
  dt ` + use + ` '2021-12-31 22:15'
  dt ` + use + ` --start 07:00 --end 19:30 +3h`,
		Args: cobra.MaximumNArgs(1),
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			start, end, err := flags.window(app)
			if err != nil {
				return err
			}

			t := app.Now()
			input := ""
			if len(args) > 0 {
				input = args[0]
				if t, err = app.Resolver.ResolveTime(input); err != nil {
					return err
				}
			}

			result := calendar.IsNight(t, start, end)
			if day {
				result = calendar.IsDay(t, start, end)
			}

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, map[string]any{
					"time":   t.Format(time.RFC3339),
					"start":  clockText(start),
					"end":    clockText(end),
					"result": result,
				})
			}

			fmt.Println(result)
			return nil
		}),
	}

	cmd.Flags().StringVar(&flags.start, "start", "", "Start of the day window (HH:MM)")
	cmd.Flags().StringVar(&flags.end, "end", "", "End of the day window (HH:MM)")

	return cmd
}

func clockText(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

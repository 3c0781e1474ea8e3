package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	cerrors "github.com/salmonumbrella/dt-cli/internal/errors"
	"github.com/salmonumbrella/dt-cli/internal/format"
)

func newWordsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words <seconds|duration>",
		Short: "Spell a number of seconds as hours, minutes and seconds",
		Long: `Spell a number of seconds as "1h 0m 10s", "2m 5s" or "59s".
A Go duration such as 90m or 1h0m10s is accepted too.

Examples:
  dt words 3610
  dt words 125
  dt words 1h30m`,
		Args: cobra.ExactArgs(1),
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			var words string
			seconds, err := strconv.ParseInt(args[0], 10, 64)
			if err == nil {
				words = format.SecondsToWords(seconds)
			} else {
				d, derr := time.ParseDuration(args[0])
				if derr != nil {
					err = fmt.Errorf("%w: %q is neither seconds nor a duration", cerrors.ErrInvalidArgument, args[0])
					return Suggest(err, "Pass a whole number of seconds or a duration, e.g. 3610 or 1h0m10s")
				}
				seconds = int64(d / time.Second)
				words = format.DurationToWords(d)
			}

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, map[string]any{
					"seconds": seconds,
					"words":   words,
				})
			}

			fmt.Println(words)
			return nil
		}),
	}

	return cmd
}

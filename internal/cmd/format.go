package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/dt-cli/internal/dialect"
	"github.com/salmonumbrella/dt-cli/internal/logging"
	"github.com/salmonumbrella/dt-cli/internal/render"
)

func newFormatCmd(app *App) *cobra.Command {
	var localized bool

	cmd := &cobra.Command{
		Use:   "format <format|alias> [time]",
		Short: "Render an instant with a native format or alias",
		Long: `Render an instant with a native (PHP date()-style) format or a
locale-aware alias such as date_time, date_short or time_ms.

The time may be a Unix timestamp, a date string or a relative keyword;
it defaults to now. Month and day names are translated when --locale is
given or --localized is set.

Examples:
  dt format date_time 1640961000
  dt format 'l, jS F Y' 2021-12-31
  dt --locale de format date_long now
  dt --tz Europe/Bratislava format 'H:i T' '2021-12-31 14:30'`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			var value any
			if len(args) > 1 {
				value = args[1]
			}

			locale := ""
			if localized || app.Flags.Locale != "" {
				locale = app.Settings.Locale
			}

			out, err := app.Formatter.Format(args[0], value, "", locale)
			if err != nil {
				return err
			}

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, map[string]any{
					"format":   args[0],
					"resolved": app.Dialects.ResolveAlias(args[0], app.Settings.Locale),
					"locale":   locale,
					"output":   out,
				})
			}

			fmt.Println(out)
			return nil
		}),
	}

	cmd.Flags().BoolVar(&localized, "localized", false, "Translate names into the configured locale")

	return cmd
}

func newStrftimeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strftime <clib-format> [time]",
		Short: "Render an instant with a C-library strftime format",
		Long: `Render an instant with a strftime format, for example the output of
"dt convert <format> --to clib". The Windows "%#" no-padding flag is
accepted as well as "%-".

Examples:
  dt strftime '%-m/%-e/%Y %l:%M %p' 1640961000
  dt strftime "$(dt convert date_time --to clib)" now`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			var value any
			if len(args) > 1 {
				value = args[1]
			}

			t, err := app.Formatter.Instant(value, "")
			if err != nil {
				return err
			}
			out := render.Strftime(t, args[0])

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, map[string]any{
					"format": args[0],
					"time":   t.Format(instantLayout),
					"output": out,
				})
			}

			fmt.Println(out)
			return nil
		}),
	}

	return cmd
}

func newConvertCmd(app *App) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert <format|alias> --to <dialect>",
		Short: "Translate a format into another dialect",
		Long: `Translate a native format (or an alias) into the tokens of another
formatting dialect: icu, carbon, clib, moment, yii2 or go.

Unknown dialect names return the format unchanged unless strict mode is
enabled (DT_STRICT=true or strict: true in the config file).

Examples:
  dt convert 'm/d/Y H:i:s' --to moment
  dt convert date_time --to icu --locale sk`,
		Args: cobra.ExactArgs(1),
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			out, err := app.Dialects.ConvertNamed(args[0], to, "")
			if err != nil {
				return err
			}
			return printConverted(cmd, app, args[0], to, out)
		}),
	}

	cmd.Flags().StringVar(&to, "to", "", "Target dialect (required)")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newGetFormatCmd(app *App) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "get-format <format|alias>",
		Short: "Resolve an alias and return it in a dialect",
		Long: `Resolve an alias for the configured locale and return the format in
the requested dialect (native by default). For clib on windows the
padding modifier is adjusted for the Microsoft C runtime.

Examples:
  dt get-format date_time
  dt get-format date_time --to icu --locale sk
  dt get-format date --to clib`,
		Args: cobra.ExactArgs(1),
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			d, err := dialect.Parse(to)
			if err != nil {
				if app.Settings.Strict {
					return err
				}
				logging.FromContext(cmd.Context()).Debug("unknown format dialect, returning format unconverted", "dialect", to)
				return printConverted(cmd, app, args[0], to, app.Dialects.ResolveAlias(args[0], ""))
			}
			return printConverted(cmd, app, args[0], d.String(), app.Dialects.Get(args[0], d, ""))
		}),
	}

	cmd.Flags().StringVar(&to, "to", "native", "Target dialect")

	return cmd
}

func printConverted(cmd *cobra.Command, app *App, in, target, out string) error {
	if app.IsJSON(cmd.Context()) {
		return app.PrintJSON(cmd, map[string]any{
			"format":  in,
			"dialect": strings.ToLower(target),
			"locale":  app.Settings.Locale,
			"output":  out,
		})
	}
	fmt.Println(out)
	return nil
}

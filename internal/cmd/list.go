package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/dt-cli/internal/calendar"
	"github.com/salmonumbrella/dt-cli/internal/validation"
)

func newListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List localized day names, month names or years",
		Long: `List localized day names (Monday first), month names or a range of
years. Names follow the configured locale.`,
	}

	cmd.AddCommand(newListNamesCmd(app, "days", "List weekday names", calendar.ListDays))
	cmd.AddCommand(newListNamesCmd(app, "months", "List month names", calendar.ListMonths))
	cmd.AddCommand(newListYearsCmd(app))

	return cmd
}

func newListNamesCmd(app *App, use, short string, list func(calendar.Width, string) []string) *cobra.Command {
	var width string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Example: `  dt list ` + use + `
  dt list ` + use + ` --width long --locale sk`,
		Args: cobra.NoArgs,
		RunE: runE(app, func(cmd *cobra.Command, _ []string, app *App) error {
			if err := validation.OneOf("width", width, "narrow", "long"); err != nil {
				return err
			}

			names := list(calendar.ParseWidth(width), app.Settings.Locale)
			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, names)
			}

			fmt.Println(strings.Join(names, "\n"))
			return nil
		}),
	}

	cmd.Flags().StringVar(&width, "width", "narrow", "Name width: narrow|long")

	return cmd
}

func newListYearsCmd(app *App) *cobra.Command {
	var from, to int

	cmd := &cobra.Command{
		Use:   "years",
		Short: "List a range of years",
		Long: `List the years from --from to --to inclusive. --from defaults to a
century ago and --to to the current year.`,
		Example: `  dt list years --from 2015
  dt list years --from 1990 --to 1999 --output json`,
		Args: cobra.NoArgs,
		RunE: runE(app, func(cmd *cobra.Command, _ []string, app *App) error {
			if err := validation.YearRange(from, to); err != nil {
				return err
			}

			years := calendar.ListYears(from, to, app.Now())
			if app.IsJSON(cmd.Context()) {
				if years == nil {
					years = []int{}
				}
				return app.PrintJSON(cmd, years)
			}

			if len(years) == 0 {
				printNoResults("No years in range")
				return nil
			}
			for _, y := range years {
				fmt.Println(y)
			}
			return nil
		}),
	}

	cmd.Flags().IntVar(&from, "from", 0, "First year")
	cmd.Flags().IntVar(&to, "to", 0, "Last year")

	return cmd
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/dt-cli/internal/calendar"
)

func newMySQLToUnixCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mysql-to-unix <datetime>",
		Short: "Convert a MySQL DATETIME to a Unix timestamp",
		Long: `Convert a MySQL DATETIME ("2021-12-31 14:30:00") or its compact form
("20211231143000") in the configured timezone to Unix seconds.

Examples:
  dt --tz UTC mysql-to-unix '2021-12-31 14:30:00'
  dt mysql-to-unix 20211231`,
		Args: cobra.ExactArgs(1),
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			ts, err := calendar.MySQLToUnix(args[0], app.Location)
			if err != nil {
				return err
			}
			return printTimestamp(cmd, app, args[0], ts)
		}),
	}

	return cmd
}

func newTimestampCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timestamp <date>",
		Short: "Convert a date string to a Unix timestamp",
		Long: `Convert a date string, keyword or relative duration in the configured
timezone to Unix seconds.

Examples:
  dt timestamp '2021-12-31 14:30'
  dt timestamp '31.12.2021 08:30:00' --tz Europe/Bratislava
  dt timestamp '2h ago'`,
		Args: cobra.ExactArgs(1),
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			ts, err := calendar.CreateTimestamp(args[0], app.Location, app.Now())
			if err != nil {
				return err
			}
			return printTimestamp(cmd, app, args[0], ts)
		}),
	}

	return cmd
}

func printTimestamp(cmd *cobra.Command, app *App, input string, ts int64) error {
	if app.IsJSON(cmd.Context()) {
		return app.PrintJSON(cmd, map[string]any{
			"input": input,
			"unix":  ts,
		})
	}
	fmt.Println(ts)
	return nil
}

package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/dt-cli/internal/dialect"
)

type aliasRow struct {
	Name   string `json:"name"`
	Format string `json:"format"`
}

func newDialectsCmd(app *App) *cobra.Command {
	var aliases bool

	cmd := &cobra.Command{
		Use:     "dialects",
		Aliases: []string{"dialect"},
		Short:   "List format dialects or the aliases of a locale",
		Long: `List the dialects formats can be converted into.

With --aliases, list the format aliases of the configured locale and the
native format each one stands for.

Examples:
  dt dialects
  dt dialects --aliases --locale sk`,
		Args: cobra.NoArgs,
		RunE: runE(app, func(cmd *cobra.Command, _ []string, app *App) error {
			if aliases {
				return printAliases(cmd, app)
			}

			names := make([]string, 0, len(dialect.Dialects))
			for _, d := range dialect.Dialects {
				names = append(names, d.String())
			}

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, names)
			}
			printList(os.Stdout, "Dialects:", names)
			return nil
		}),
	}

	cmd.Flags().BoolVar(&aliases, "aliases", false, "List format aliases instead")

	return cmd
}

func printAliases(cmd *cobra.Command, app *App) error {
	locale := app.Settings.Locale
	names := dialect.AliasNames(locale)
	sort.Strings(names)

	rows := make([]aliasRow, 0, len(names))
	for _, name := range names {
		f, _ := dialect.LookupAlias(name, locale)
		rows = append(rows, aliasRow{Name: name, Format: f})
	}

	if app.IsJSON(cmd.Context()) {
		return app.PrintJSON(cmd, rows)
	}

	if len(rows) == 0 {
		printNoResults("No aliases found for locale %s", locale)
		return nil
	}

	tw := newTabWriter()
	fmt.Fprintln(tw, "ALIAS\tFORMAT")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", r.Name, r.Format)
	}
	return tw.Flush()
}

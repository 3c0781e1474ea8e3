package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/dt-cli/internal/config"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the config file",
		Long: `Show or create the config file.

Settings are read from the config file, then from DT_* environment
variables (DT_LOCALE, DT_TIMEZONE, DT_STRIP_LEADING_ZEROS, DT_STRICT,
DT_OS, DT_DAY_START, DT_DAY_END), then from --locale and --tz.`,
	}

	cmd.AddCommand(newConfigPathCmd(app))
	cmd.AddCommand(newConfigShowCmd(app))
	cmd.AddCommand(newConfigInitCmd(app))

	return cmd
}

func configPath(app *App) string {
	if app.Flags != nil && app.Flags.Config != "" {
		return app.Flags.Config
	}
	return config.DefaultPath()
}

func newConfigPathCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "path",
		Short:       "Print the config file location",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationMissingConfigOK: "true"},
		RunE: runE(app, func(cmd *cobra.Command, _ []string, app *App) error {
			path := configPath(app)
			_, err := os.Stat(path)
			exists := err == nil

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, map[string]any{
					"path":   path,
					"exists": exists,
				})
			}

			fmt.Println(path)
			return nil
		}),
	}
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: runE(app, func(cmd *cobra.Command, _ []string, app *App) error {
			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, map[string]any{
					"locale":              app.Settings.Locale,
					"timezone":            app.Location.String(),
					"strip_leading_zeros": app.Settings.StripLeadingZeros,
					"strict":              app.Settings.Strict,
					"os":                  app.Settings.OS,
					"day_start":           app.Settings.DayStart,
					"day_end":             app.Settings.DayEnd,
				})
			}

			data, err := app.Settings.Marshal()
			if err != nil {
				return fmt.Errorf("failed to encode settings: %w", err)
			}
			fmt.Print(string(data))
			return nil
		}),
	}
}

func newConfigInitCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Long: `Write a config file with the default settings. An existing file is
only replaced after confirmation, or with --force/--yes.

Examples:
  dt config init
  dt config init --config ./dt.yaml --force`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationMissingConfigOK: "true"},
		RunE: runE(app, func(cmd *cobra.Command, _ []string, app *App) error {
			path := configPath(app)

			_, err := os.Stat(path)
			switch {
			case err == nil:
				ok, err := app.Confirm(cmd, force, fmt.Sprintf("Overwrite %s? [y/N] ", path), "y", "yes")
				if err != nil {
					return err
				}
				if !ok {
					printCancelled()
					return nil
				}
			case !errors.Is(err, fs.ErrNotExist):
				return fmt.Errorf("failed to check %s: %w", path, err)
			}

			data, err := config.Defaults().Marshal()
			if err != nil {
				return fmt.Errorf("failed to encode settings: %w", err)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("failed to create config directory: %w", err)
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, map[string]any{
					"path":    path,
					"written": true,
				})
			}
			app.UI.Success("Wrote " + path)
			return nil
		}),
	}

	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing file without asking")

	return cmd
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/dt-cli/internal/config"
	cerrors "github.com/salmonumbrella/dt-cli/internal/errors"
	"github.com/salmonumbrella/dt-cli/internal/logging"
	"github.com/salmonumbrella/dt-cli/internal/outfmt"
	"github.com/salmonumbrella/dt-cli/internal/ui"
	"github.com/salmonumbrella/dt-cli/internal/validation"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

type rootFlags struct {
	Color     string
	Output    string
	Debug     bool
	LogFormat string
	Query     string
	Config    string
	Locale    string
	TZ        string
	Unix      bool
	Yes       bool
}

type contextKey string

const (
	outputModeKey contextKey = "outputMode"
	queryKey      contextKey = "query"
)

// annotationMissingConfigOK marks commands that run when an explicit
// --config file does not exist yet.
const annotationMissingConfigOK = "dt/missing-config-ok"

func Execute(args []string) error {
	app := NewApp()
	root := NewRootCmd(app)
	root.SetArgs(args)

	err := root.Execute()
	if err != nil {
		if app.Flags.Output == "json" {
			payload := map[string]any{
				"error": map[string]any{
					"message": err.Error(),
				},
			}
			if cerrors.ContainsSuggestion(err) {
				payload["error"].(map[string]any)["suggestion"] = cerrors.GetSuggestion(err)
			}
			_ = outfmt.WriteJSON(os.Stderr, payload)
		} else {
			// Print the main error
			fmt.Fprintln(os.Stderr, "Error:", err)

			// Print suggestion if available
			if cerrors.ContainsSuggestion(err) {
				fmt.Fprintln(os.Stderr, "")
				fmt.Fprintln(os.Stderr, "Suggestion:", cerrors.GetSuggestion(err))
			}
		}
	}
	return err
}

func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "dt",
		Short:         "Date/time formatting, conversion and relative-time resolution",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: false,
		},
		Example: strings.TrimSpace(`
  # Render an instant with a locale-aware alias or a native format
  dt format date_time 1640961000
  dt --locale sk format date_time now
  dt format 'D, d M Y H:i' '2021-12-31 14:30'

  # Translate formats between dialects
  dt convert 'm/d/Y H:i:s' --to moment
  dt get-format date_time --to icu --locale sk

  # Resolve relative expressions
  dt resolve now/d -1d/d +2w
  dt resolve --end now/M
  dt boundaries yesterday
  dt ago month 2 --range

  # JSON output for scripting
  dt --output=json boundaries 'last week' | jq .
`),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// UI (must come first)
			if err := validateColor(app.Flags.Color); err != nil {
				return err
			}
			u := ui.New(app.Flags.Color)
			ctx := ui.WithUI(cmd.Context(), u)
			app.UI = u

			// Output format
			mode, err := outfmt.ParseMode(app.Flags.Output)
			if err != nil {
				return err
			}
			ctx = context.WithValue(ctx, outputModeKey, mode)

			// Query filter
			ctx = context.WithValue(ctx, queryKey, app.Flags.Query)

			// Logging
			logFormat, err := logging.ParseFormat(app.Flags.LogFormat)
			if err != nil {
				return err
			}
			logger := logging.New(logging.Options{Debug: app.Flags.Debug, Format: logFormat})
			ctx = logging.WithLogger(ctx, logger)
			app.Logger = logger

			// Settings: config file and DT_* variables, then flags
			settings, err := config.Load(app.Flags.Config)
			if err != nil && errors.Is(err, fs.ErrNotExist) && cmd.Annotations[annotationMissingConfigOK] != "" {
				settings = config.Defaults()
				err = settings.ApplyEnv(os.Getenv)
			}
			if err != nil {
				return err
			}
			if app.Flags.Locale != "" {
				settings.Locale = app.Flags.Locale
			}
			if app.Flags.TZ != "" {
				settings.Timezone = app.Flags.TZ
			}
			if err := settings.Validate(); err != nil {
				return err
			}
			if err := app.configure(settings); err != nil {
				return err
			}
			logger.Debug("settings loaded", "locale", settings.Locale, "timezone", app.Location.String(), "strict", settings.Strict)

			ctx = WithApp(ctx, app)
			cmd.SetContext(ctx)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&app.Flags.Color, "color", app.Flags.Color, "Color output: auto|always|never")
	root.PersistentFlags().StringVar(&app.Flags.Output, "output", app.Flags.Output, "Output format: text|json")
	root.PersistentFlags().BoolVar(&app.Flags.Debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&app.Flags.LogFormat, "log-format", envOr("DT_LOG_FORMAT", logging.FormatText), "Log format: text|json")
	root.PersistentFlags().StringVar(&app.Flags.Query, "query", "", "JQ filter expression for JSON output")
	root.PersistentFlags().StringVar(&app.Flags.Config, "config", envOr("DT_CONFIG", ""), "Config file (default $XDG_CONFIG_HOME/dt/config.yaml)")
	root.PersistentFlags().StringVar(&app.Flags.Locale, "locale", "", "Locale for aliases and names, e.g. en, sk, de_DE (env DT_LOCALE)")
	root.PersistentFlags().StringVar(&app.Flags.TZ, "tz", "", "IANA timezone, e.g. Europe/Bratislava (env DT_TIMEZONE)")
	root.PersistentFlags().BoolVar(&app.Flags.Unix, "unix", envBool("DT_UNIX", false), "Print instants as Unix timestamps")
	root.PersistentFlags().BoolVarP(&app.Flags.Yes, "yes", "y", false, "Skip confirmation prompts (non-interactive)")

	root.AddCommand(newFormatCmd(app))
	root.AddCommand(newConvertCmd(app))
	root.AddCommand(newStrftimeCmd(app))
	root.AddCommand(newGetFormatCmd(app))
	root.AddCommand(newDialectsCmd(app))
	root.AddCommand(newResolveCmd(app))
	root.AddCommand(newBoundariesCmd(app))
	root.AddCommand(newTimeCmd(app))
	root.AddCommand(newAgoCmd(app))
	root.AddCommand(newWordsCmd(app))
	root.AddCommand(newIsDayCmd(app))
	root.AddCommand(newIsNightCmd(app))
	root.AddCommand(newListCmd(app))
	root.AddCommand(newParseCmd(app))
	root.AddCommand(newMySQLToUnixCmd(app))
	root.AddCommand(newTimestampCmd(app))
	root.AddCommand(newConfigCmd(app))
	return root
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	if v == "" {
		return fallback
	}
	switch v {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return fallback
	}
}

func validateColor(mode string) error {
	return validation.OneOf("color", mode, ui.ColorModes...)
}

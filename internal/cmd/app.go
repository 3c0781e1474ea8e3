package cmd

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/salmonumbrella/dt-cli/internal/config"
	"github.com/salmonumbrella/dt-cli/internal/dateparse"
	"github.com/salmonumbrella/dt-cli/internal/dialect"
	cerrors "github.com/salmonumbrella/dt-cli/internal/errors"
	"github.com/salmonumbrella/dt-cli/internal/outfmt"
	"github.com/salmonumbrella/dt-cli/internal/relative"
	"github.com/salmonumbrella/dt-cli/internal/render"
	"github.com/salmonumbrella/dt-cli/internal/ui"
)

type appKey struct{}

type App struct {
	Flags  *rootFlags
	UI     *ui.UI
	Logger *slog.Logger

	// Clock is shared by every resolver the App builds.
	Clock    clockwork.Clock
	Settings config.Settings
	Location *time.Location

	Dialects  *dialect.Resolver
	Resolver  *relative.Resolver
	Formatter *render.Formatter
}

func NewApp() *App {
	flags := rootFlags{
		Color:  envOr("DT_COLOR", "auto"),
		Output: envOr("DT_OUTPUT", "text"),
	}
	return &App{Flags: &flags, Clock: clockwork.NewRealClock()}
}

// configure builds the resolvers from s. s must be valid.
func (a *App) configure(s config.Settings) error {
	loc, err := dateparse.LoadLocation(s.Timezone)
	if err != nil {
		return err
	}
	if a.Clock == nil {
		a.Clock = clockwork.NewRealClock()
	}
	if a.Logger == nil {
		a.Logger = slog.Default()
	}

	a.Settings = s
	a.Location = loc
	a.Dialects = &dialect.Resolver{
		Locale:            s.Locale,
		StripLeadingZeros: s.StripLeadingZeros,
		GOOS:              s.OS,
		Strict:            s.Strict,
		Logger:            a.Logger,
	}
	a.Resolver = &relative.Resolver{
		Clock:    a.Clock,
		Location: loc,
		Strict:   s.Strict,
		Logger:   a.Logger,
	}
	a.Formatter = &render.Formatter{
		Dialects: a.Dialects,
		Clock:    a.Clock,
		Location: loc,
	}
	return nil
}

func WithApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey{}, app)
}

func AppFromContext(ctx context.Context) *App {
	if app, ok := ctx.Value(appKey{}).(*App); ok {
		return app
	}
	return nil
}

// runE wraps a cobra RunE to inject the App and normalize errors.
func runE(app *App, fn func(cmd *cobra.Command, args []string, app *App) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if app == nil {
			app = AppFromContext(cmd.Context())
		}
		if app == nil {
			app = NewApp()
		}
		if app.UI == nil {
			app.UI = ui.New("never")
		}
		if app.Resolver == nil {
			if err := app.configure(config.Defaults()); err != nil {
				return mapCommandError(err)
			}
		}
		return mapCommandError(fn(cmd, args, app))
	}
}

func (a *App) IsJSON(ctx context.Context) bool {
	mode, ok := ctx.Value(outputModeKey).(outfmt.Mode)
	return ok && mode == outfmt.JSON
}

func (a *App) Query(ctx context.Context) string {
	query, _ := ctx.Value(queryKey).(string)
	return query
}

func (a *App) PrintJSON(cmd *cobra.Command, v any) error {
	return outfmt.PrintJSONFiltered(v, a.Query(cmd.Context()))
}

func (a *App) Confirm(cmd *cobra.Command, skip bool, prompt string, accepted ...string) (bool, error) {
	if skip || a.IsJSON(cmd.Context()) || (a.Flags != nil && a.Flags.Yes) {
		return true, nil
	}
	return confirmPrompt(os.Stdin, os.Stderr, prompt, accepted...)
}

// Now is the App clock's current instant in the configured zone.
func (a *App) Now() time.Time {
	return a.Clock.Now().In(a.Location)
}

// Suggest wraps an error with a user-facing suggestion.
func Suggest(err error, suggestion string) error {
	return cerrors.WithSuggestion(err, suggestion)
}

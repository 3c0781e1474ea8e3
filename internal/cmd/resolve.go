package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/salmonumbrella/dt-cli/internal/relative"
	"github.com/salmonumbrella/dt-cli/internal/ui"
	"github.com/salmonumbrella/dt-cli/internal/validation"
)

// stdinIsTerminal is replaced in tests.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// resolveFlags are shared by the commands that resolve against a base.
type resolveFlags struct {
	base   string
	end    bool
	micros int
}

func (f *resolveFlags) register(cmd *cobra.Command, withEnd bool) {
	f.micros = -1
	cmd.Flags().StringVar(&f.base, "base", "", "Base instant offsets are applied to (default now)")
	if withEnd {
		cmd.Flags().BoolVar(&f.end, "end", false, "Snap to the end of the boundary unit")
		cmd.Flags().IntVar(&f.micros, "micros", -1, "Microseconds to set on unsnapped results")
	}
}

func (f *resolveFlags) options() []relative.Option {
	var opts []relative.Option
	if f.base != "" {
		opts = append(opts, relative.WithBase(f.base))
	}
	if f.end {
		opts = append(opts, relative.WithEnd(true))
	}
	if f.micros >= 0 {
		opts = append(opts, relative.WithMicros(f.micros))
	}
	return opts
}

func newResolveCmd(app *App) *cobra.Command {
	var flags resolveFlags

	cmd := &cobra.Command{
		Use:     "resolve [expr...]",
		Aliases: []string{"r"},
		Short:   "Resolve relative-time expressions",
		Long: `Resolve relative-time expressions into instants.

An expression is an offset with an optional boundary: "-2d", "+3h",
"now/d" (start of today), "-1M/M" (start of last month). A bare unit
such as "d/d" means the current one. ISO dates, Unix timestamps and
date strings are accepted too. --end snaps to the end of the boundary
instead of its start. Put expressions that start with "-" after "--".

Without arguments, expressions are read one per line from stdin.

Examples:
  dt resolve now/d
  dt resolve --end -- -1M/M
  dt resolve --base 2021-12-31T14:30:00 -- -2d +1w/w
  printf 'now/d\n-1d/d\n' | dt resolve --output json`,
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			opts := flags.options()

			if len(args) == 0 {
				if stdinIsTerminal() {
					return Suggest(validation.Required("expression", ""), "Pass expressions as arguments or pipe them one per line on stdin")
				}
				return resolveLines(cmd, app, os.Stdin, opts)
			}

			if len(args) == 1 {
				t, err := app.Resolver.ResolveTime(args[0], opts...)
				if err != nil {
					return err
				}
				return app.printInstant(cmd, args[0], t)
			}

			results := make([]instantResult, 0, len(args))
			for _, expr := range args {
				t, err := app.Resolver.ResolveTime(expr, opts...)
				if err != nil {
					return fmt.Errorf("resolve %q: %w", expr, err)
				}
				results = append(results, newInstantResult(expr, t))
			}
			return printInstants(cmd, app, results)
		}),
	}

	flags.register(cmd, true)

	return cmd
}

// resolveLines resolves every non-blank line of r. Lines that fail are
// reported on stderr and the command fails after the last line.
func resolveLines(cmd *cobra.Command, app *App, r io.Reader, opts []relative.Option) error {
	var results []instantResult
	failed := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		expr := strings.TrimSpace(scanner.Text())
		if expr == "" {
			continue
		}
		t, err := app.Resolver.ResolveTime(expr, opts...)
		if err != nil {
			failed++
			ui.FromContext(cmd.Context()).Error(fmt.Sprintf("%s: %v", expr, err))
			continue
		}
		results = append(results, newInstantResult(expr, t))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read expressions: %w", err)
	}

	if err := printInstants(cmd, app, results); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions could not be resolved", failed, failed+len(results))
	}
	return nil
}

func printInstants(cmd *cobra.Command, app *App, results []instantResult) error {
	if app.IsJSON(cmd.Context()) {
		if results == nil {
			results = []instantResult{}
		}
		return app.PrintJSON(cmd, results)
	}

	if len(results) == 0 {
		printNoResults("No expressions to resolve")
		return nil
	}

	tw := newTabWriter()
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\n", r.Input, app.instantText(r.Time))
	}
	return tw.Flush()
}

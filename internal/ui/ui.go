// Package ui prints status messages to stderr, colored when the terminal
// supports it. NO_COLOR disables color in every mode.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Color modes accepted by New.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ColorModes lists the accepted color modes.
var ColorModes = []string{ColorAuto, ColorAlways, ColorNever}

type UI struct {
	w     io.Writer
	out   *termenv.Output
	color bool
}

type contextKey struct{}

// New creates a UI on stderr. colorMode is one of ColorModes; anything
// else behaves like auto.
func New(colorMode string) *UI {
	return NewWriter(os.Stderr, colorMode)
}

// NewWriter creates a UI writing to w.
func NewWriter(w io.Writer, colorMode string) *UI {
	out := termenv.NewOutput(w)
	var color bool

	switch colorMode {
	case ColorNever:
		color = false
	case ColorAlways:
		color = true
	default:
		color = out.ColorProfile() != termenv.Ascii
	}

	if os.Getenv("NO_COLOR") != "" {
		color = false
	}

	return &UI{w: w, out: out, color: color}
}

// Success prints msg in green.
func (u *UI) Success(msg string) { u.println("2", msg) }

// Error prints msg in red.
func (u *UI) Error(msg string) { u.println("1", msg) }

// Warning prints msg in yellow.
func (u *UI) Warning(msg string) { u.println("3", msg) }

// Info prints msg uncolored.
func (u *UI) Info(msg string) { u.println("", msg) }

func (u *UI) println(color, msg string) {
	if u.color && color != "" {
		fmt.Fprintln(u.w, u.out.String(msg).Foreground(u.out.Color(color)))
		return
	}
	fmt.Fprintln(u.w, msg)
}

// WithUI stores the UI in the context.
func WithUI(ctx context.Context, u *UI) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

// FromContext retrieves the UI from the context, or a new auto-color UI.
func FromContext(ctx context.Context) *UI {
	if u, ok := ctx.Value(contextKey{}).(*UI); ok {
		return u
	}
	return New(ColorAuto)
}

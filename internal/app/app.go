// Package app builds the menu and its features from a Config.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jask/blanktech/internal/config"
	"github.com/jask/blanktech/internal/console"
	"github.com/jask/blanktech/internal/feature"
	"github.com/jask/blanktech/internal/menu"
	"github.com/jask/blanktech/internal/placeholder"
	"github.com/jask/blanktech/internal/theme"
)

// App is a fully wired menu bound to one input and one output.
type App struct {
	loop    *menu.Loop
	console *console.Console
	log     *slog.Logger
}

type options struct {
	gen     *placeholder.Generator
	logger  *slog.Logger
	profile *termenv.Profile
}

// Option customises New.
type Option func(*options)

// WithGenerator replaces the randomly seeded generator.
func WithGenerator(g *placeholder.Generator) Option {
	return func(o *options) { o.gen = g }
}

// WithLogger sets the logger handed to every component.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithColorProfile forces a color profile instead of detecting one from out.
func WithColorProfile(p termenv.Profile) Option {
	return func(o *options) { o.profile = &p }
}

// New wires cfg to in and out.
func New(cfg config.Config, in io.Reader, out io.Writer, opts ...Option) (*App, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	if o.gen == nil {
		o.gen = placeholder.NewRandom()
	}

	palette, err := theme.PaletteByName(cfg.UI.Palette)
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	r := lipgloss.NewRenderer(out)
	switch {
	case !cfg.UI.Color:
		r.SetColorProfile(termenv.Ascii)
	case o.profile != nil:
		r.SetColorProfile(*o.profile)
	}

	c := console.New(in, out, theme.New(r, palette),
		console.WithClearScreen(cfg.UI.ClearScreen),
		console.WithLogger(o.logger),
	)
	settings := feature.Settings{
		UnlockCode: cfg.UnlockCode,
		Step:       cfg.Pause.Step,
		Warning:    cfg.Pause.Warning,
		Caution:    cfg.Pause.Caution,
		Width:      cfg.UI.Width,
		Column:     cfg.UI.Column,
	}
	env := &feature.Env{
		Console:  c,
		Gen:      o.gen,
		Settings: settings,
		Logger:   o.logger,
	}
	header := menu.NewHeader(cfg.UI.Width, cfg.UI.Column, feature.All())
	loop := menu.New(env, header, feature.Catalog(settings), menu.Pauses{
		Invalid: cfg.Pause.Invalid,
		Error:   cfg.Pause.Error,
		Quit:    cfg.Pause.Quit,
	})

	return &App{loop: loop, console: c, log: o.logger}, nil
}

// Run shows the menu until the user quits, input ends or ctx is cancelled.
// An interrupt is reported on screen and is not an error.
func (a *App) Run(ctx context.Context) error {
	a.log.Info("menu started")
	err := a.loop.Run(ctx)
	if errors.Is(err, console.ErrInterrupted) {
		a.log.Info("interrupted", "cause", context.Cause(ctx))
		a.console.Println(theme.Info, "\nInterrupted. Exiting BlankTech demo.")
		return nil
	}
	if err != nil {
		return err
	}
	a.log.Info("menu closed")
	return nil
}

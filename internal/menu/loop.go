// Package menu draws the main screen and dispatches selections to features.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"

	"github.com/jask/blanktech/internal/console"
	"github.com/jask/blanktech/internal/feature"
	"github.com/jask/blanktech/internal/theme"
)

// maxLabelDistance is how far a typed label may be from a menu caption.
const maxLabelDistance = 2

// Pauses are the delays the loop itself takes.
type Pauses struct {
	Invalid time.Duration
	Error   time.Duration
	Quit    time.Duration
}

// PanicError carries a value recovered from a feature handler.
type PanicError struct {
	Feature feature.ID
	Value   any
}

func (e *PanicError) Error() string { return fmt.Sprint(e.Value) }

// Loop is the show menu → await selection → dispatch cycle.
type Loop struct {
	env      *feature.Env
	header   *Header
	handlers map[feature.ID]feature.Handler
	labels   map[string]feature.ID
	pauses   Pauses
	log      *slog.Logger
}

// New builds a loop over entries. env.Header is pointed at header so
// features draw the same banner.
func New(env *feature.Env, header *Header, entries []feature.Entry, pauses Pauses) *Loop {
	l := &Loop{
		env:      env,
		header:   header,
		handlers: make(map[feature.ID]feature.Handler, len(entries)),
		labels:   make(map[string]feature.ID, len(entries)),
		pauses:   pauses,
		log:      env.Logger,
	}
	if l.log == nil {
		l.log = slog.New(slog.DiscardHandler)
	}
	env.Header = header
	for _, e := range entries {
		l.handlers[e.ID] = e.Handler
		l.labels[strings.ToLower(e.ID.Label())] = e.ID
	}
	return l
}

// Run loops until the user quits, input ends or ctx is cancelled. Quitting
// and end of input return nil; cancellation returns console.ErrInterrupted.
func (l *Loop) Run(ctx context.Context) error {
	c := l.env.Console
	for {
		c.Clear()
		l.header.Draw(c)
		c.Printf(theme.Prompt, "Select an option (1-%d) or Q to quit:", len(l.handlers))
		sel, err := c.Ask(ctx, theme.Frame, ">>> ")
		if errors.Is(err, io.EOF) {
			return l.quit(ctx)
		}
		if err != nil {
			return err
		}

		sel = strings.ToLower(sel)
		if sel == "q" {
			return l.quit(ctx)
		}
		id, ok := l.Resolve(sel)
		if !ok {
			l.log.Debug("invalid selection", "input", sel)
			c.Printf(theme.Failure, "Invalid selection - choose 1-%d or Q.", len(l.handlers))
			if err := c.Pause(ctx, l.pauses.Invalid); err != nil {
				return err
			}
			continue
		}

		err = l.dispatch(ctx, id)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return l.quit(ctx)
		case errors.Is(err, console.ErrInterrupted):
			return err
		default:
			c.Println(theme.Failure, "An unexpected error occurred.")
			c.Println(theme.Failure, err.Error())
			if err := c.Pause(ctx, l.pauses.Error); err != nil {
				return err
			}
		}
	}
}

func (l *Loop) dispatch(ctx context.Context, id feature.ID) (err error) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error("feature panicked", "feature", id.Label(), "panic", r, "stack", string(debug.Stack()))
			err = &PanicError{Feature: id, Value: r}
		}
	}()
	l.log.Info("feature selected", "feature", id.Label())
	if err := l.handlers[id].Run(ctx, l.env); err != nil {
		if !errors.Is(err, console.ErrInterrupted) && !errors.Is(err, io.EOF) {
			l.log.Error("feature failed", "feature", id.Label(), "err", err)
		}
		return fmt.Errorf("%s: %w", id.Label(), err)
	}
	return nil
}

func (l *Loop) quit(ctx context.Context) error {
	l.env.Console.Println(theme.Failure, "\nExiting BlankTech RedBox Edition. Goodbye!")
	if err := l.env.Console.Pause(ctx, l.pauses.Quit); err != nil {
		l.log.Debug("quit pause cut short", "err", err)
	}
	return nil
}

// Resolve maps a selection to a feature: a menu key, a caption, or a
// caption misspelled by at most maxLabelDistance edits when only one
// caption is that close.
func (l *Loop) Resolve(sel string) (feature.ID, bool) {
	sel = strings.ToLower(strings.TrimSpace(sel))
	if id, ok := feature.ParseID(sel); ok {
		_, known := l.handlers[id]
		return id, known
	}
	if id, ok := l.labels[sel]; ok {
		return id, true
	}
	if len(sel) <= maxLabelDistance*2 {
		return 0, false
	}

	var best feature.ID
	bestDist, unique := maxLabelDistance+1, false
	for label, id := range l.labels {
		d := levenshtein.ComputeDistance(sel, label)
		switch {
		case d < bestDist:
			best, bestDist, unique = id, d, true
		case d == bestDist && id != best:
			unique = false
		}
	}
	if !unique {
		return 0, false
	}
	return best, true
}

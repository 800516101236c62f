package feature

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jask/blanktech/internal/console"
	"github.com/jask/blanktech/internal/placeholder"
)

// Handler runs one menu entry to completion. Returning nil hands control
// back to the menu.
type Handler interface {
	Run(ctx context.Context, env *Env) error
}

// HandlerFunc adapts a function to Handler. The catalog builds every entry
// from a Routine; HandlerFunc is for callers that supply their own entries,
// such as stubs in menu tests.
type HandlerFunc func(ctx context.Context, env *Env) error

func (f HandlerFunc) Run(ctx context.Context, env *Env) error { return f(ctx, env) }

// Entry binds a menu ID to its handler.
type Entry struct {
	ID      ID
	Handler Handler
}

// Header draws whatever sits above a feature's own box.
type Header interface {
	Draw(c *console.Console)
}

// Settings are the tunables features read at run time.
type Settings struct {
	UnlockCode string
	Step       time.Duration // between progress lines
	Warning    time.Duration // after a rejected input
	Caution    time.Duration // after a rejection marked Long
	Width      int
	Column     int
}

// Env is what a handler runs against.
type Env struct {
	Console  *console.Console
	Gen      *placeholder.Generator
	Header   Header
	Settings Settings
	Logger   *slog.Logger
}

// Session is the transient state of one pass through a feature's screen.
type Session struct {
	ID     uuid.UUID
	Values map[string]string
	Bound  int
	Amount int
	Gen    *placeholder.Generator
}

// Value returns the input stored under key.
func (s *Session) Value(key string) string { return s.Values[key] }

// NewSession starts a session whose ID is drawn from the env's generator.
func (e *Env) NewSession() (*Session, error) {
	id, err := uuid.NewRandomFromReader(e.Gen.Reader())
	if err != nil {
		return nil, fmt.Errorf("session id: %w", err)
	}
	return &Session{ID: id, Values: map[string]string{}, Gen: e.Gen}, nil
}

func (e *Env) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}

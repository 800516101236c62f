package feature

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/jask/blanktech/internal/box"
	"github.com/jask/blanktech/internal/theme"
)

// ExitRule decides which answers to a prompt leave the feature.
type ExitRule int

const (
	NoExit ExitRule = iota
	ExitOnBack
	ExitOnBackOrEmpty
)

// Prompt is one line of input collected before the run.
type Prompt struct {
	Key      string
	Label    string
	LabelFor func(s *Session) string // overrides Label when set
	Exit     ExitRule
	Lower    bool
	TrimLeft string // cutset removed from the front of the answer
	Check    func(v string) error
}

func (p Prompt) label(s *Session) string {
	if p.LabelFor != nil {
		return p.LabelFor(s)
	}
	return p.Label
}

func (p Prompt) exits(v string) bool {
	switch p.Exit {
	case ExitOnBack:
		return strings.EqualFold(v, "b")
	case ExitOnBackOrEmpty:
		return v == "" || strings.EqualFold(v, "b")
	}
	return false
}

// InputError is a rejected answer. The screen is redrawn after it is shown.
type InputError struct {
	Msg  string
	Tone theme.Tone
	Long bool // hold for Settings.Caution instead of Settings.Warning
}

func (e *InputError) Error() string { return e.Msg }

func reject(msg string) error { return &InputError{Msg: msg, Tone: theme.Warning} }

func rejectHard(msg string) error { return &InputError{Msg: msg, Tone: theme.Failure} }

// held marks rejections from rule for the longer caution pause.
func held(rule func(string) error) func(string) error {
	return func(v string) error {
		err := rule(v)
		var ie *InputError
		if errors.As(err, &ie) {
			long := *ie
			long.Long = true
			return &long
		}
		return err
	}
}

// hold is how long a rejection stays on screen.
func hold(err error, settings Settings) time.Duration {
	var ie *InputError
	if errors.As(err, &ie) && ie.Long {
		return settings.Caution
	}
	return settings.Warning
}

// Bound is the amount step: an optional unlock code raises the ceiling
// from Default to Extended.
type Bound struct {
	Default  int
	Extended int
	Announce string // e.g. "Max followers allowed"; empty stays silent
	Amount   string // amount prompt label
}

// Limit returns the ceiling granted for code.
func (b Bound) Limit(code, unlock string) int {
	if unlock != "" && strings.EqualFold(strings.TrimSpace(code), unlock) {
		return b.Extended
	}
	return b.Default
}

// Row is one line inside a feature's box.
type Row struct {
	Left, Right string
	Span        bool
	Blank       bool
}

// Text spans the box interior.
func Text(s string) Row { return Row{Left: s, Span: true} }

// Pair fills both columns.
func Pair(left, right string) Row { return Row{Left: left, Right: right} }

// BlankRow is an empty interior line.
var BlankRow = Row{Blank: true}

// Line is one printed line of output.
type Line struct {
	Text string
	Tone theme.Tone
}

// Routine is the prompt → validate → run → summary screen every menu entry
// is built from.
type Routine struct {
	Title    string
	Rows     []Row
	Prompts  []Prompt
	Bound    *Bound
	Intro    func(s *Session) Line
	Progress func(s *Session) []Line
	Summary  func(s *Session) []Line
}

type step int

const (
	stepRun step = iota
	stepRetry
	stepBack
)

// Run implements Handler.
func (r *Routine) Run(ctx context.Context, env *Env) error {
	log := env.logger().With("feature", r.Title)
	for {
		s, err := env.NewSession()
		if err != nil {
			return err
		}
		next, err := r.collect(ctx, env, s)
		if err != nil {
			return err
		}
		switch next {
		case stepBack:
			log.Debug("back to menu", "session", s.ID)
			return nil
		case stepRetry:
			continue
		}
		return r.execute(ctx, env, s, log)
	}
}

func (r *Routine) draw(env *Env) {
	c := env.Console
	c.Clear()
	if env.Header != nil {
		env.Header.Draw(c)
	}
	f := box.New(env.Settings.Width, env.Settings.Column).Top(r.Title).Blank()
	for _, row := range r.Rows {
		switch {
		case row.Blank:
			f.Blank()
		case row.Span:
			f.Text(row.Left)
		default:
			f.Row(row.Left, row.Right)
		}
	}
	c.Lines(theme.Frame, f.Blank().Bottom().Lines())
}

func (r *Routine) collect(ctx context.Context, env *Env, s *Session) (step, error) {
	c := env.Console
	r.draw(env)
	for i, p := range r.Prompts {
		label := p.label(s) + " > "
		if i == 0 {
			label = "\n" + label
		}
		v, err := c.ReadLine(ctx, label)
		if err != nil {
			return 0, err
		}
		if p.exits(v) {
			return stepBack, nil
		}
		if p.Lower {
			v = strings.ToLower(v)
		}
		if p.TrimLeft != "" {
			v = strings.TrimLeft(v, p.TrimLeft)
		}
		if p.Check != nil {
			if err := p.Check(v); err != nil {
				return r.reject(ctx, env, s, err)
			}
		}
		s.Values[p.Key] = v
	}
	if r.Bound == nil {
		return stepRun, nil
	}
	return r.bound(ctx, env, s)
}

func (r *Routine) bound(ctx context.Context, env *Env, s *Session) (step, error) {
	c := env.Console
	code, err := c.ReadLine(ctx, "VIP unlock code (press Enter to skip) > ")
	if err != nil {
		return 0, err
	}
	s.Bound = r.Bound.Limit(code, env.Settings.UnlockCode)
	if r.Bound.Announce != "" {
		c.Printf(theme.Warning, "%s: %d", r.Bound.Announce, s.Bound)
	}
	raw, err := c.ReadLine(ctx, fmt.Sprintf("%s (1-%d) > ", r.Bound.Amount, s.Bound))
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return r.reject(ctx, env, s, rejectHard("Invalid number."))
	}
	if n < 1 || n > s.Bound {
		return r.reject(ctx, env, s, rejectHard("Amount out of allowed range."))
	}
	s.Amount = n
	return stepRun, nil
}

func (r *Routine) reject(ctx context.Context, env *Env, s *Session, err error) (step, error) {
	tone := theme.Warning
	var ie *InputError
	if errors.As(err, &ie) {
		tone = ie.Tone
	}
	env.logger().Info("input rejected", "feature", r.Title, "session", s.ID, "reason", err.Error())
	env.Console.Println(tone, err.Error())
	if err := env.Console.Pause(ctx, hold(err, env.Settings)); err != nil {
		return 0, err
	}
	return stepRetry, nil
}

func (r *Routine) execute(ctx context.Context, env *Env, s *Session, log *slog.Logger) error {
	c := env.Console
	log.Debug("run", "session", s.ID, "bound", s.Bound, "amount", s.Amount)
	if r.Intro != nil {
		c.Blank()
		if l := r.Intro(s); l.Text != "" {
			c.Println(l.Tone, l.Text)
			c.Blank()
		}
	}
	var lines []Line
	if r.Progress != nil {
		lines = r.Progress(s)
	}
	for _, l := range lines {
		c.Println(l.Tone, l.Text)
		if err := c.Pause(ctx, env.Settings.Step); err != nil {
			return err
		}
	}
	if r.Summary != nil {
		for _, l := range r.Summary(s) {
			c.Println(l.Tone, l.Text)
		}
	}
	log.Info("feature finished", "session", s.ID, "lines", len(lines))
	return c.WaitEnter(ctx)
}

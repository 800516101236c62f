// Package console is the line-oriented terminal the menu and features talk
// through: colored output, trimmed single-line input, screen clearing and
// pauses that give way to cancellation.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jask/blanktech/internal/theme"
)

// ErrInterrupted is returned by reads and pauses once the context is done.
var ErrInterrupted = errors.New("interrupted")

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\x1b[H\x1b[2J"

type readResult struct {
	line string
	err  error
}

// Console reads lines from in and writes painted text to out.
type Console struct {
	in     io.Reader
	out    io.Writer
	theme  *theme.Theme
	clear  bool
	logger *slog.Logger

	once  sync.Once
	lines chan readResult
}

// Option configures a Console.
type Option func(*Console)

// WithClearScreen toggles the clear-screen sequence written by Clear.
func WithClearScreen(enabled bool) Option {
	return func(c *Console) { c.clear = enabled }
}

// WithLogger sets the logger used for input diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Console) { c.logger = l }
}

// New returns a Console over in and out. A nil theme prints without color.
func New(in io.Reader, out io.Writer, th *theme.Theme, opts ...Option) *Console {
	if th == nil {
		th = theme.NewPlain()
	}
	c := &Console{
		in:     in,
		out:    out,
		theme:  th,
		clear:  true,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Theme returns the theme lines are painted with.
func (c *Console) Theme() *theme.Theme { return c.theme }

// Println writes text in tone. Embedded newlines produce one painted line each.
func (c *Console) Println(tone theme.Tone, text string) {
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintln(c.out, c.theme.Paint(tone, line))
	}
}

// Printf formats and writes a line in tone.
func (c *Console) Printf(tone theme.Tone, format string, args ...any) {
	c.Println(tone, fmt.Sprintf(format, args...))
}

// Lines writes each line in tone.
func (c *Console) Lines(tone theme.Tone, lines []string) {
	for _, line := range lines {
		c.Println(tone, line)
	}
}

// Blank writes an empty line.
func (c *Console) Blank() {
	fmt.Fprintln(c.out)
}

// Clear erases the screen unless clearing is disabled.
func (c *Console) Clear() {
	if c.clear {
		io.WriteString(c.out, clearScreen)
	}
}

func (c *Console) pump() {
	r := bufio.NewReader(c.in)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			c.lines <- readResult{line: line}
		}
		if err != nil {
			c.lines <- readResult{err: err}
			close(c.lines)
			return
		}
	}
}

// Ask writes prompt in tone and returns the next input line, trimmed.
// It returns io.EOF once input is exhausted and ErrInterrupted when ctx is
// done first.
func (c *Console) Ask(ctx context.Context, tone theme.Tone, prompt string) (string, error) {
	c.once.Do(func() {
		c.lines = make(chan readResult)
		go c.pump()
	})
	c.writePrompt(tone, prompt)
	if ctx.Err() != nil {
		return "", interrupted(ctx)
	}

	select {
	case <-ctx.Done():
		return "", interrupted(ctx)
	case res, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		if res.err != nil {
			if !errors.Is(res.err, io.EOF) {
				c.logger.Warn("read input", "err", res.err)
			}
			return "", io.EOF
		}
		return strings.TrimSpace(res.line), nil
	}
}

// ReadLine is Ask in the prompt tone.
func (c *Console) ReadLine(ctx context.Context, prompt string) (string, error) {
	return c.Ask(ctx, theme.Prompt, prompt)
}

func (c *Console) writePrompt(tone theme.Tone, prompt string) {
	lines := strings.Split(prompt, "\n")
	for _, line := range lines[:len(lines)-1] {
		fmt.Fprintln(c.out, c.theme.Paint(tone, line))
	}
	io.WriteString(c.out, c.theme.Paint(tone, lines[len(lines)-1]))
}

// Pause blocks for d or until ctx is done.
func (c *Console) Pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		if ctx.Err() != nil {
			return interrupted(ctx)
		}
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return interrupted(ctx)
	case <-t.C:
		return nil
	}
}

// WaitEnter blocks until the user acknowledges with any line. End of input
// counts as acknowledgment.
func (c *Console) WaitEnter(ctx context.Context) error {
	_, err := c.Ask(ctx, theme.Warning, "Press Enter to continue...")
	if errors.Is(err, io.EOF) {
		c.Blank()
		return nil
	}
	return err
}

func interrupted(ctx context.Context) error {
	return fmt.Errorf("%w: %w", ErrInterrupted, context.Cause(ctx))
}

// Package theme maps semantic tones onto lipgloss styles.
package theme

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Tone is the semantic color of a printed line.
type Tone int

const (
	Plain Tone = iota
	Frame
	Notice
	Prompt
	Success
	Warning
	Info
	Failure
)

// Theme renders text in a tone for one output.
type Theme struct {
	styles map[Tone]lipgloss.Style
}

// New builds a Theme whose styles render through r.
func New(r *lipgloss.Renderer, p Palette) *Theme {
	t := &Theme{styles: make(map[Tone]lipgloss.Style, len(p))}
	for tone, c := range p {
		t.styles[tone] = r.NewStyle().Foreground(c)
	}
	return t
}

// NewPlain returns a Theme that never emits escape sequences.
func NewPlain() *Theme {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return New(r, Classic())
}

// Paint renders s in tone. Empty strings are returned as is.
func (t *Theme) Paint(tone Tone, s string) string {
	if s == "" {
		return s
	}
	st, ok := t.styles[tone]
	if !ok {
		return s
	}
	return st.Render(s)
}

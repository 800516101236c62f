// Package box draws fixed-width frames with box-drawing characters.
//
// Every line a Frame produces is exactly Width()+2 terminal cells wide:
// text longer than its slot is truncated, shorter text is padded, nothing
// wraps. Widths are measured with charmbracelet/x/ansi, so styled text and
// wide runes keep the border aligned.
package box

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	DefaultWidth  = 64
	DefaultColumn = 30
)

const (
	topLeft     = "┌"
	topRight    = "┐"
	bottomLeft  = "└"
	bottomRight = "┘"
	horizontal  = "─"
	vertical    = "│"
	teeLeft     = "├"
	teeRight    = "┤"

	columnGap = "  "
)

// Frame accumulates the lines of one box.
type Frame struct {
	width  int
	column int
	lines  []string
}

// New starts a frame with the given inner width and two-column width.
// Non-positive values fall back to the defaults.
func New(width, column int) *Frame {
	if width <= 0 {
		width = DefaultWidth
	}
	if column <= 0 {
		column = DefaultColumn
	}
	return &Frame{width: width, column: column}
}

// Width is the inner width, borders excluded.
func (f *Frame) Width() int { return f.width }

func (f *Frame) border(left, right string) *Frame {
	f.lines = append(f.lines, left+strings.Repeat(horizontal, f.width)+right)
	return f
}

func (f *Frame) interior(s string) *Frame {
	f.lines = append(f.lines, vertical+Fit(s, f.width)+vertical)
	return f
}

// Top draws the top border. A non-empty title is centered on its own row
// with a divider beneath; otherwise a blank row follows the border.
func (f *Frame) Top(title string) *Frame {
	f.border(topLeft, topRight)
	if title == "" {
		return f.Blank()
	}
	f.interior(Center(title, f.width))
	return f.Separator()
}

// Blank draws an empty interior row.
func (f *Frame) Blank() *Frame {
	return f.interior("")
}

// Row draws left and right text, each fitted to the column width.
func (f *Frame) Row(left, right string) *Frame {
	return f.interior(" " + Fit(left, f.column) + columnGap + Fit(right, f.column))
}

// Text draws a single line spanning the whole interior after a one-cell margin.
func (f *Frame) Text(s string) *Frame {
	return f.interior(" " + s)
}

// Separator draws a ├───┤ divider.
func (f *Frame) Separator() *Frame {
	return f.border(teeLeft, teeRight)
}

// Bottom draws the closing border.
func (f *Frame) Bottom() *Frame {
	return f.border(bottomLeft, bottomRight)
}

// Lines returns the rendered lines.
func (f *Frame) Lines() []string {
	return append([]string(nil), f.lines...)
}

// String joins the rendered lines with newlines.
func (f *Frame) String() string {
	return strings.Join(f.lines, "\n")
}

// Fit truncates or right-pads s to exactly width cells.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// Center pads s on both sides to width cells, truncating when it does not fit.
func Center(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return Fit(s, width)
	}
	left := (width - w) / 2
	return Fit(strings.Repeat(" ", left)+s, width)
}

package box

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func requireUniformWidth(t *testing.T, f *Frame) {
	t.Helper()
	lines := f.Lines()
	require.NotEmpty(t, lines)
	for i, line := range lines {
		require.Equal(t, f.Width()+2, ansi.StringWidth(line), "line %d: %q", i, line)
	}
}

func TestFrameLinesShareWidth(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("overflowing text ", 10)
	tests := []struct {
		name   string
		width  int
		column int
		build  func(f *Frame)
	}{
		{"menu", DefaultWidth, DefaultColumn, func(f *Frame) {
			f.Top("BlankTech - RedBox Edition").Blank()
			for i := 1; i <= 10; i++ {
				f.Row("[1] DDoS Attack", "[11] Virus Builder")
			}
			f.Blank().Bottom()
		}},
		{"untitled", DefaultWidth, DefaultColumn, func(f *Frame) { f.Top("").Row("", "").Separator().Bottom() }},
		{"overflow", DefaultWidth, DefaultColumn, func(f *Frame) { f.Top(long).Row(long, long).Text(long).Bottom() }},
		{"styled", DefaultWidth, DefaultColumn, func(f *Frame) { f.Top("\x1b[31mred\x1b[0m").Row("\x1b[32mgreen\x1b[0m", "").Bottom() }},
		{"wide_runes", DefaultWidth, DefaultColumn, func(f *Frame) { f.Top("箱").Row("日本語テキスト", "💀 :skull:").Bottom() }},
		{"narrow", 20, 30, func(f *Frame) { f.Top("title").Row("left column", "right column").Bottom() }},
		{"empty", 10, 3, func(f *Frame) { f.Top("").Text("").Bottom() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := New(tt.width, tt.column)
			tt.build(f)
			requireUniformWidth(t, f)
		})
	}
}

func TestTopWithTitleAddsDivider(t *testing.T) {
	t.Parallel()

	lines := New(10, 4).Top("Hi").Lines()
	require.Equal(t, []string{
		"┌──────────┐",
		"│    Hi    │",
		"├──────────┤",
	}, lines)
}

func TestTopWithoutTitleAddsBlankRow(t *testing.T) {
	t.Parallel()

	lines := New(6, 2).Top("").Bottom().Lines()
	require.Equal(t, []string{
		"┌──────┐",
		"│      │",
		"└──────┘",
	}, lines)
}

func TestRowPadsAndTruncatesColumns(t *testing.T) {
	t.Parallel()

	lines := New(DefaultWidth, DefaultColumn).Row("Generates 50 16-character codes.", "x").Lines()
	require.Len(t, lines, 1)
	require.Equal(t, "│ Generates 50 16-character code  x                              │", lines[0])
}

func TestFit(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ab  ", Fit("ab", 4))
	require.Equal(t, "abcd", Fit("abcdef", 4))
	require.Equal(t, "", Fit("abc", 0))
	require.Equal(t, "  ab  ", Center("ab", 6))
	require.Equal(t, "abc", Center("abcdef", 3))
}

func TestNewFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	f := New(0, -1)
	require.Equal(t, DefaultWidth, f.Width())
	requireUniformWidth(t, f.Top("x").Row("a", "b").Bottom())
}

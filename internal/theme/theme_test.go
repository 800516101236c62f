package theme

import (
	"io"
	"regexp"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestMochaUsesTrueColorHex(t *testing.T) {
	hex := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	for tone, c := range Mocha() {
		if !hex.MatchString(string(c.(lipgloss.Color))) {
			t.Errorf("tone %d: invalid hex color %v", tone, c)
		}
	}
}

func TestPalettesCoverEveryStyledTone(t *testing.T) {
	tones := []Tone{Frame, Notice, Prompt, Success, Warning, Info, Failure}
	for _, name := range []string{PaletteClassic, PaletteMocha} {
		p, err := PaletteByName(name)
		if err != nil {
			t.Fatalf("PaletteByName(%q): %v", name, err)
		}
		for _, tone := range tones {
			if _, ok := p[tone]; !ok {
				t.Errorf("palette %s missing tone %d", name, tone)
			}
		}
	}
	if _, err := PaletteByName("solarized"); err == nil {
		t.Error("expected error for unknown palette")
	}
}

func TestPaintClassicEmitsANSIColors(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	th := New(r, Classic())

	tests := []struct {
		tone Tone
		want string
	}{
		{Frame, "\x1b[31mbox\x1b[0m"},
		{Success, "\x1b[32mbox\x1b[0m"},
		{Warning, "\x1b[33mbox\x1b[0m"},
		{Info, "\x1b[35mbox\x1b[0m"},
		{Prompt, "\x1b[37mbox\x1b[0m"},
	}
	for _, tt := range tests {
		if got := th.Paint(tt.tone, "box"); got != tt.want {
			t.Errorf("Paint(%d) = %q, want %q", tt.tone, got, tt.want)
		}
	}
	if got := th.Paint(Plain, "box"); got != "box" {
		t.Errorf("Paint(Plain) = %q, want unstyled", got)
	}
}

func TestPlainThemeNeverEscapes(t *testing.T) {
	th := NewPlain()
	if got := th.Paint(Failure, "Invalid number."); got != "Invalid number." {
		t.Errorf("Paint = %q", got)
	}
	if got := th.Paint(Info, ""); got != "" {
		t.Errorf("Paint(empty) = %q", got)
	}
}

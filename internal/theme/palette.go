package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Classic palette: the 16-color ANSI set
// ---------------------------------------------------------------------------

const (
	ansiRed     lipgloss.Color = "1"
	ansiGreen   lipgloss.Color = "2"
	ansiYellow  lipgloss.Color = "3"
	ansiMagenta lipgloss.Color = "5"
	ansiWhite   lipgloss.Color = "7"
)

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorMauve  lipgloss.Color = "#cba6f7"
	colorRed    lipgloss.Color = "#f38ba8"
	colorMaroon lipgloss.Color = "#eba0ac"
	colorPeach  lipgloss.Color = "#fab387"
	colorYellow lipgloss.Color = "#f9e2af"
	colorGreen  lipgloss.Color = "#a6e3a1"
	colorText   lipgloss.Color = "#cdd6f4"
)

// Palette assigns a color to every tone. Tones missing from a palette are
// printed unstyled.
type Palette map[Tone]lipgloss.TerminalColor

// Palette names accepted by PaletteByName.
const (
	PaletteClassic = "classic"
	PaletteMocha   = "mocha"
)

// Classic uses the plain 16-color ANSI escapes.
func Classic() Palette {
	return Palette{
		Frame:   ansiRed,
		Notice:  ansiYellow,
		Prompt:  ansiWhite,
		Success: ansiGreen,
		Warning: ansiYellow,
		Info:    ansiMagenta,
		Failure: ansiRed,
	}
}

// Mocha maps tones onto Catppuccin Mocha.
func Mocha() Palette {
	return Palette{
		Frame:   colorMaroon,
		Notice:  colorPeach,
		Prompt:  colorText,
		Success: colorGreen,
		Warning: colorYellow,
		Info:    colorMauve,
		Failure: colorRed,
	}
}

// PaletteByName resolves a configured palette name.
func PaletteByName(name string) (Palette, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PaletteClassic:
		return Classic(), nil
	case PaletteMocha:
		return Mocha(), nil
	default:
		return nil, fmt.Errorf("unknown palette %q", name)
	}
}

package internal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/aui/pkg/aui/constants"
)

// RGB is a 24-bit colour, 0xRRGGBB.
type RGB uint32

// Components splits the colour into its channels.
func (c RGB) Components() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// ParseHex accepts "#RRGGBB", "RRGGBB" or "0xRRGGBB".
func ParseHex(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "#")
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	if len(s) != 6 {
		return 0, fmt.Errorf("colour %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("colour %q: %w", s, err)
	}
	return RGB(v), nil
}

// Palette is the set of colours one colour mode draws with.
type Palette struct {
	Background      RGB // dialog background
	Text            RGB // default text
	Highlight       RGB // focused/hovered item background
	HighlightedText RGB // text drawn on Highlight
	Accent          RGB // frame titles, headings, selection marks
	Disabled        RGB // text of insensitive widgets
	Border          RGB // frames and popup borders
}

// Theme defines the visual appearance of every dialog.
// Each colour mode has its own palette.
type Theme struct {
	Name     string
	Normal   Palette
	Info     Palette
	Warn     Palette
	FontPath string // desktop backend only
	FontSize int    // desktop backend only, in points
}

// Palette returns the palette for a colour mode.
func (t Theme) Palette(mode constants.ColorMode) Palette {
	switch mode {
	case constants.ColorInfo:
		return t.Info
	case constants.ColorWarn:
		return t.Warn
	default:
		return t.Normal
	}
}

var currentTheme = DefaultTheme()

// SetTheme sets the active theme for the toolkit.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// DefaultTheme is a dark theme with a blue highlight.
func DefaultTheme() Theme {
	normal := Palette{
		Background:      0x1E1E2E,
		Text:            0xD9D9D9,
		Highlight:       0x3B6EA8,
		HighlightedText: 0xFFFFFF,
		Accent:          0x89B4FA,
		Disabled:        0x6C6C7A,
		Border:          0x585B70,
	}
	info := normal
	info.Background = 0x1B2B3A
	info.Accent = 0x74C7EC
	warn := normal
	warn.Background = 0x3A1F1F
	warn.Highlight = 0xB04A4A
	warn.Accent = 0xF9A66C

	return Theme{
		Name:     "default",
		Normal:   normal,
		Info:     info,
		Warn:     warn,
		FontSize: 18,
	}
}

// TealTheme is a light theme with a teal accent.
func TealTheme() Theme {
	normal := Palette{
		Background:      0xFFFFFF,
		Text:            0x000000,
		Highlight:       0x008080,
		HighlightedText: 0xFFFFFF,
		Accent:          0x008080,
		Disabled:        0x9A9A9A,
		Border:          0x4D4D4D,
	}
	info := normal
	info.Background = 0xE6F4F4
	warn := normal
	warn.Background = 0xFFF0E0
	warn.Highlight = 0xC0392B
	warn.Accent = 0xC0392B

	return Theme{
		Name:     "teal",
		Normal:   normal,
		Info:     info,
		Warn:     warn,
		FontSize: 18,
	}
}

// ContrastTheme is a black and white high-contrast theme.
func ContrastTheme() Theme {
	normal := Palette{
		Background:      0x000000,
		Text:            0xFFFFFF,
		Highlight:       0xFFFFFF,
		HighlightedText: 0x000000,
		Accent:          0xFFFF00,
		Disabled:        0x808080,
		Border:          0xFFFFFF,
	}
	return Theme{
		Name:     "contrast",
		Normal:   normal,
		Info:     normal,
		Warn:     normal,
		FontSize: 20,
	}
}

// ThemeByName returns a preset theme. Unknown names fall back to the default.
func ThemeByName(name string) (Theme, bool) {
	switch strings.ToLower(name) {
	case "", "default":
		return DefaultTheme(), true
	case "teal":
		return TealTheme(), true
	case "contrast":
		return ContrastTheme(), true
	default:
		return DefaultTheme(), false
	}
}

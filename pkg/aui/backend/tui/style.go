package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"

	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// styles are the tcell styles one palette draws with.
type styles struct {
	normal   tcell.Style
	focus    tcell.Style
	accent   tcell.Style
	disabled tcell.Style
	border   tcell.Style
	field    tcell.Style
}

func (s styles) text(enabled bool) tcell.Style {
	if enabled {
		return s.normal
	}
	return s.disabled
}

func (b *Backend) styles(p internal.Palette) styles {
	bg := b.color(p.Background)
	base := tcell.StyleDefault.Background(bg)
	s := styles{
		normal:   base.Foreground(b.color(p.Text)),
		focus:    tcell.StyleDefault.Background(b.color(p.Highlight)).Foreground(b.color(p.HighlightedText)),
		accent:   base.Foreground(b.color(p.Accent)),
		disabled: base.Foreground(b.color(p.Disabled)),
		border:   base.Foreground(b.color(p.Border)),
		field:    base.Foreground(b.color(p.Text)).Underline(true),
	}
	if b.profile == termenv.Ascii {
		s.focus = s.focus.Reverse(true)
	}
	return s
}

// color downgrades a theme colour to what the terminal's profile can show.
func (b *Backend) color(c internal.RGB) tcell.Color {
	r, g, bl := c.Components()
	switch tc := b.profile.Color(fmt.Sprintf("#%02x%02x%02x", r, g, bl)).(type) {
	case termenv.RGBColor:
		return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
	case termenv.ANSI256Color:
		return tcell.PaletteColor(int(tc))
	case termenv.ANSIColor:
		return tcell.PaletteColor(int(tc))
	default:
		return tcell.ColorDefault
	}
}

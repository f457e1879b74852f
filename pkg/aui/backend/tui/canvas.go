package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/BrandonKowalski/aui/pkg/aui"
)

// canvas draws onto the screen inside a clip rect.
type canvas struct {
	screen tcell.Screen
	clip   aui.Rect
	tail   string // marks truncated text
}

func intersect(a, b aui.Rect) aui.Rect {
	x0, y0 := max(a.X, b.X), max(a.Y, b.Y)
	x1, y1 := min(a.X+a.Width, b.X+b.Width), min(a.Y+a.Height, b.Y+b.Height)
	if x1 <= x0 || y1 <= y0 {
		return aui.Rect{X: x0, Y: y0}
	}
	return aui.Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// outset grows r by the insets, the reverse of Rect.Inset.
func outset(r aui.Rect, in aui.Insets) aui.Rect {
	return aui.Rect{
		X:      r.X - in.Left,
		Y:      r.Y - in.Top,
		Width:  r.Width + in.Horizontal(),
		Height: r.Height + in.Vertical(),
	}
}

func (c canvas) within(r aui.Rect) canvas {
	c.clip = intersect(c.clip, r)
	return c
}

func (c canvas) set(x, y int, r rune, st tcell.Style) {
	if c.clip.Contains(x, y) {
		c.screen.SetContent(x, y, r, nil, st)
	}
}

func (c canvas) fill(r aui.Rect, st tcell.Style) {
	r = intersect(c.clip, r)
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			c.screen.SetContent(x, y, ' ', nil, st)
		}
	}
}

// text draws s at x, y within width cells and returns the cells used.
func (c canvas) text(x, y, width int, s string, st tcell.Style) int {
	if width <= 0 {
		return 0
	}
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, c.tail)
	}
	col := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.set(x+col, y, r, st)
		col += w
	}
	return col
}

// centered draws s horizontally centred in r on row y.
func (c canvas) centered(r aui.Rect, y int, s string, st tcell.Style) {
	pad := max(0, (r.Width-runewidth.StringWidth(s))/2)
	c.text(r.X+pad, y, r.Width-pad, s, st)
}

func (c canvas) hline(x, y, width int, st tcell.Style) {
	for i := 0; i < width; i++ {
		c.set(x+i, y, tcell.RuneHLine, st)
	}
}

func (c canvas) vline(x, y, height int, st tcell.Style) {
	for i := 0; i < height; i++ {
		c.set(x, y+i, tcell.RuneVLine, st)
	}
}

// box draws a single-line border around r with an optional title on the
// top edge.
func (c canvas) box(r aui.Rect, st tcell.Style, title string, titleStyle tcell.Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	right, bottom := r.X+r.Width-1, r.Y+r.Height-1
	c.hline(r.X+1, r.Y, r.Width-2, st)
	c.hline(r.X+1, bottom, r.Width-2, st)
	c.vline(r.X, r.Y+1, r.Height-2, st)
	c.vline(right, r.Y+1, r.Height-2, st)
	c.set(r.X, r.Y, tcell.RuneULCorner, st)
	c.set(right, r.Y, tcell.RuneURCorner, st)
	c.set(r.X, bottom, tcell.RuneLLCorner, st)
	c.set(right, bottom, tcell.RuneLRCorner, st)
	if title != "" && r.Width > 4 {
		c.text(r.X+2, r.Y, r.Width-4, title, titleStyle)
	}
}

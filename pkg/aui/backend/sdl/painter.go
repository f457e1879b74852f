package sdl

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// painter draws onto the renderer inside a clip rect. Clipping is done
// here rather than with SDL's clip rect so nested widgets can narrow it
// by value.
type painter struct {
	b    *Backend
	clip aui.Rect
	errp *error // first draw error of the frame
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

func toSDL(r aui.Rect) *sdl.Rect {
	return &sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.Width), H: int32(r.Height)}
}

func (p painter) note(err error) {
	if err != nil && *p.errp == nil {
		*p.errp = err
	}
}

func (p painter) renderer() *sdl.Renderer { return p.b.win.renderer }

func (p painter) within(r aui.Rect) painter {
	p.clip = intersect(p.clip, r)
	return p
}

func (p painter) color(c internal.RGB) {
	r, g, b := c.Components()
	p.note(p.renderer().SetDrawColor(r, g, b, 255))
}

func (p painter) fill(r aui.Rect, c internal.RGB) {
	r = intersect(p.clip, r)
	if r.Width == 0 {
		return
	}
	p.color(c)
	p.note(p.renderer().FillRect(toSDL(r)))
}

// frame draws a one-pixel-wide outline of r, thickness times.
func (p painter) frame(r aui.Rect, c internal.RGB, thickness int) {
	for i := 0; i < thickness; i++ {
		p.fill(aui.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: 1}, c)
		p.fill(aui.Rect{X: r.X, Y: r.Y + r.Height - 1, Width: r.Width, Height: 1}, c)
		p.fill(aui.Rect{X: r.X, Y: r.Y, Width: 1, Height: r.Height}, c)
		p.fill(aui.Rect{X: r.X + r.Width - 1, Y: r.Y, Width: 1, Height: r.Height}, c)
		r = r.Inset(internal.Uniform(1))
	}
}

func (p painter) hline(x, y, w int, c internal.RGB) {
	p.fill(aui.Rect{X: x, Y: y, Width: w, Height: 1}, c)
}

func (p painter) vline(x, y, h int, c internal.RGB) {
	p.fill(aui.Rect{X: x, Y: y, Width: 1, Height: h}, c)
}

// text draws s with its top-left corner at x, y, cut at width pixels.
// It returns the width drawn.
func (p painter) text(x, y, width int, s string, c internal.RGB) int {
	if s == "" || width <= 0 {
		return 0
	}
	tex, w, h := p.b.textTexture(s, c)
	if tex == nil {
		return 0
	}
	return p.copy(tex, aui.Rect{X: x, Y: y, Width: min(w, width), Height: h})
}

// copy draws the top-left part of tex into dst, clipped.
func (p painter) copy(tex *sdl.Texture, dst aui.Rect) int {
	vis := intersect(p.clip, dst)
	if vis.Width == 0 {
		return 0
	}
	src := aui.Rect{X: vis.X - dst.X, Y: vis.Y - dst.Y, Width: vis.Width, Height: vis.Height}
	p.note(p.renderer().Copy(tex, toSDL(src), toSDL(vis)))
	return dst.Width
}

// centered draws s centred horizontally in r on row y.
func (p painter) centered(r aui.Rect, y int, s string, c internal.RGB) {
	w := p.b.metrics.TextWidth(s)
	p.text(r.X+max(0, (r.Width-w)/2), y, r.Width, s, c)
}

// middle returns the y that centres one text line in r.
func (p painter) middle(r aui.Rect) int {
	return r.Y + max(0, (r.Height-p.b.metrics.LineHeight())/2)
}

// textTexture renders s once per colour and caches the texture.
func (b *Backend) textTexture(s string, c internal.RGB) (*sdl.Texture, int, int) {
	key := textKey{text: s, color: c}
	if tex, ok := b.texts.Get(key); ok {
		_, _, w, h, err := tex.Query()
		if err == nil {
			return tex, int(w), int(h)
		}
	}
	r, g, bl := c.Components()
	surface, err := b.font.RenderUTF8Blended(s, sdl.Color{R: r, G: g, B: bl, A: 255})
	if err != nil {
		internal.GetInternalLogger().Debug("Failed to render text", "text", s, "error", err)
		return nil, 0, 0
	}
	defer surface.Free()
	tex, err := b.win.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		internal.GetInternalLogger().Debug("Failed to create text texture", "error", err)
		return nil, 0, 0
	}
	b.texts.Set(key, tex)
	return tex, int(surface.W), int(surface.H)
}

package aui

import (
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// Alignment positions a single child inside its own allocation and can
// enforce a minimum size given in device pixels.
type Alignment struct {
	widgetBase
	align [2]constants.Alignment
	minPx [2]int
}

func newAlignment(parent Widget, h, v constants.Alignment) (*Alignment, error) {
	a := &Alignment{align: [2]constants.Alignment{h, v}}
	kind := "Alignment"
	if h == constants.AlignUnchanged && v == constants.AlignUnchanged {
		kind = "MinSize"
	}
	if err := a.init(a, kind, parent, 1); err != nil {
		return nil, err
	}
	return a, nil
}

// Align returns the alignment along d.
func (a *Alignment) Align(d constants.Dimension) constants.Alignment {
	return a.align[dimIndex(d)]
}

// SetMinSize sets the minimum size in device pixels. The backend converts
// it to its own units at layout time. 0 means no minimum.
func (a *Alignment) SetMinSize(widthPx, heightPx int) {
	a.minPx = [2]int{max(0, widthPx), max(0, heightPx)}
	a.changed(true)
}

// MinSize returns the minimum size in device pixels.
func (a *Alignment) MinSize() (widthPx, heightPx int) {
	return a.minPx[0], a.minPx[1]
}

func (a *Alignment) minUnits(m Metrics, d constants.Dimension) int {
	px := a.minPx[dimIndex(d)]
	if px == 0 {
		return 0
	}
	return m.PixelsToUnits(px, d)
}

// Stretchable is true wherever an alignment is set, so the parent leaves
// room to align in. Elsewhere the child decides.
func (a *Alignment) Stretchable(d constants.Dimension) bool {
	if a.widgetBase.Stretchable(d) || a.align[dimIndex(d)] != constants.AlignUnchanged {
		return true
	}
	child := a.firstChild()
	return child != nil && child.Visible() && spaceHungry(child, d)
}

func (a *Alignment) PreferredSize(m Metrics) Size {
	var s Size
	if child := a.firstChild(); child != nil && child.Visible() {
		s = child.PreferredSize(m)
	}
	return Size{
		Width:  max(s.Width, a.minUnits(m, constants.Horizontal)),
		Height: max(s.Height, a.minUnits(m, constants.Vertical)),
	}
}

func (a *Alignment) layout(m Metrics, r Rect) {
	a.bounds = r
	child := a.firstChild()
	if child == nil || !child.Visible() {
		return
	}
	pref := child.PreferredSize(m)

	place := func(d constants.Dimension) (int, int) {
		align := a.align[dimIndex(d)]
		if align == constants.AlignUnchanged {
			return internal.Place(r.length(d), pref.length(d), constants.AlignBegin, spaceHungry(child, d))
		}
		return internal.Place(r.length(d), pref.length(d), align, false)
	}

	x, w := place(constants.Horizontal)
	y, h := place(constants.Vertical)
	child.layout(m, Rect{X: r.X + x, Y: r.Y + y, Width: w, Height: h})
}

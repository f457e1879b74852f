package aui

import (
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// Box lays its children out in a row (HBox) or a column (VBox).
//
// Along the main axis non-stretchy children get their preferred size and
// the rest is shared among stretchy children by weight. Across it a child
// fills the box if it asks for space in that direction, otherwise it keeps
// its preferred size at the start. A VBox inside a VBox always fills the
// width.
type Box struct {
	widgetBase
	dim     constants.Dimension
	spacing int // backend units, -1 for the metrics default
}

func newBox(parent Widget, dim constants.Dimension) (*Box, error) {
	b := &Box{dim: dim, spacing: defaultBoxSpacing}
	kind := "HBox"
	if dim == constants.Vertical {
		kind = "VBox"
	}
	if err := b.init(b, kind, parent, unlimited); err != nil {
		return nil, err
	}
	return b, nil
}

// Dimension is the main axis.
func (b *Box) Dimension() constants.Dimension { return b.dim }

// SetSpacing sets the gap between children in backend units. A negative
// value restores the backend default.
func (b *Box) SetSpacing(units int) {
	b.spacing = units
	b.changed(true)
}

func (b *Box) spacingFor(m Metrics) int {
	if b.spacing >= 0 {
		return b.spacing
	}
	return m.Spacing()
}

func (b *Box) Stretchable(d constants.Dimension) bool {
	return b.widgetBase.Stretchable(d) || anyChildHungry(b.visibleChildren(), d)
}

func anyChildHungry(children []Widget, d constants.Dimension) bool {
	for _, c := range children {
		if spaceHungry(c, d) {
			return true
		}
	}
	return false
}

func (b *Box) PreferredSize(m Metrics) Size {
	children := b.visibleChildren()
	mains := make([]int, 0, len(children))
	cross := 0
	for _, c := range children {
		ps := c.PreferredSize(m)
		mains = append(mains, ps.length(b.dim))
		cross = max(cross, ps.length(b.dim.Other()))
	}
	return sizeAlong(b.dim, internal.SumWithSpacing(b.spacingFor(m), mains...), cross)
}

func (b *Box) layout(m Metrics, r Rect) {
	b.bounds = r
	children := b.visibleChildren()
	if len(children) == 0 {
		return
	}

	spacing := b.spacingFor(m)
	prefs := make([]Size, len(children))
	slots := make([]internal.Slot, len(children))
	for i, c := range children {
		prefs[i] = c.PreferredSize(m)
		slots[i] = internal.Slot{
			Min:     prefs[i].length(b.dim),
			Stretch: c.Stretchable(b.dim),
			Weight:  c.Weight(b.dim),
		}
	}
	sizes := internal.Distribute(slots, r.length(b.dim), spacing)

	cross := b.dim.Other()
	pos := 0
	for i, c := range children {
		fill := spaceHungry(c, cross) || (b.dim == constants.Vertical && isVBox(c))
		off, length := internal.Place(r.length(cross), prefs[i].length(cross), constants.AlignBegin, fill)

		var cr Rect
		if b.dim == constants.Horizontal {
			cr = Rect{X: r.X + pos, Y: r.Y + off, Width: sizes[i], Height: length}
		} else {
			cr = Rect{X: r.X + off, Y: r.Y + pos, Width: length, Height: sizes[i]}
		}
		c.layout(m, cr)
		pos += sizes[i] + spacing
	}
}

func isVBox(w Widget) bool {
	b, ok := w.(*Box)
	return ok && b.dim == constants.Vertical
}

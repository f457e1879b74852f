package aui

import (
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// Paned splits its area between two children with a divider. Until a
// position is set the panes share the space by weight.
type Paned struct {
	widgetBase
	dim      constants.Dimension
	position int // main-axis size of the first pane, -1 for automatic
}

func newPaned(parent Widget, dim constants.Dimension) (*Paned, error) {
	p := &Paned{dim: dim, position: -1}
	p.stretch = [2]bool{true, true}
	if err := p.init(p, "Paned", parent, 2); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Paned) Dimension() constants.Dimension { return p.dim }

// Position is the first pane's size in backend units, -1 if automatic.
func (p *Paned) Position() int { return p.position }

// SetPosition fixes the first pane's size. A negative value goes back to
// weighted sharing.
func (p *Paned) SetPosition(units int) {
	if units < 0 {
		units = -1
	}
	p.position = units
	p.changed(true)
}

// DividerRect is where the divider was laid out; zero with fewer than two
// visible panes.
func (p *Paned) DividerRect() Rect {
	children := p.visibleChildren()
	if len(children) < 2 {
		return Rect{}
	}
	first := children[0].Bounds()
	second := children[1].Bounds()
	if p.dim == constants.Horizontal {
		return Rect{X: first.X + first.Width, Y: p.bounds.Y, Width: second.X - first.X - first.Width, Height: p.bounds.Height}
	}
	return Rect{X: p.bounds.X, Y: first.Y + first.Height, Width: p.bounds.Width, Height: second.Y - first.Y - first.Height}
}

func (p *Paned) divider(m Metrics) int {
	return max(1, m.Spacing())
}

func (p *Paned) PreferredSize(m Metrics) Size {
	children := p.visibleChildren()
	mains := make([]int, 0, len(children))
	cross := 0
	for _, c := range children {
		ps := c.PreferredSize(m)
		mains = append(mains, ps.length(p.dim))
		cross = max(cross, ps.length(p.dim.Other()))
	}
	return sizeAlong(p.dim, internal.SumWithSpacing(p.divider(m), mains...), cross)
}

func (p *Paned) layout(m Metrics, r Rect) {
	p.bounds = r
	children := p.visibleChildren()
	if len(children) == 0 {
		return
	}
	total := r.length(p.dim)
	gap := p.divider(m)

	var sizes []int
	if p.position >= 0 && len(children) == 2 {
		first := min(p.position, max(0, total-gap))
		sizes = []int{first, max(0, total-gap-first)}
	} else {
		slots := make([]internal.Slot, len(children))
		for i, c := range children {
			slots[i] = internal.Slot{
				Min:     c.PreferredSize(m).length(p.dim),
				Stretch: true,
				Weight:  c.Weight(p.dim),
			}
		}
		sizes = internal.Distribute(slots, total, gap)
	}

	pos := 0
	for i, c := range children {
		if p.dim == constants.Horizontal {
			c.layout(m, Rect{X: r.X + pos, Y: r.Y, Width: sizes[i], Height: r.Height})
		} else {
			c.layout(m, Rect{X: r.X, Y: r.Y + pos, Width: r.Width, Height: sizes[i]})
		}
		pos += sizes[i] + gap
	}
}

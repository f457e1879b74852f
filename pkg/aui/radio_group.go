package aui

import "github.com/BrandonKowalski/aui/pkg/aui/constants"

// RadioButtonGroup makes the radio buttons below it mutually exclusive.
// Radio buttons outside any group are exclusive within their dialog.
type RadioButtonGroup struct {
	widgetBase
}

func newRadioButtonGroup(parent Widget) (*RadioButtonGroup, error) {
	g := &RadioButtonGroup{}
	if err := g.init(g, "RadioButtonGroup", parent, 1); err != nil {
		return nil, err
	}
	return g, nil
}

// Buttons returns the radio buttons of the group in tree order. Buttons of
// nested groups are not included.
func (g *RadioButtonGroup) Buttons() []*RadioButton {
	return radioButtonsUnder(g)
}

// CurrentButton returns the checked button, or nil.
func (g *RadioButtonGroup) CurrentButton() *RadioButton {
	for _, rb := range g.Buttons() {
		if rb.Value() {
			return rb
		}
	}
	return nil
}

func (g *RadioButtonGroup) Stretchable(d constants.Dimension) bool {
	return g.widgetBase.Stretchable(d) || anyChildHungry(g.visibleChildren(), d)
}

func (g *RadioButtonGroup) PreferredSize(m Metrics) Size {
	if child := g.firstChild(); child != nil && child.Visible() {
		return child.PreferredSize(m)
	}
	return Size{}
}

func (g *RadioButtonGroup) layout(m Metrics, r Rect) {
	g.bounds = r
	if child := g.firstChild(); child != nil && child.Visible() {
		child.layout(m, r)
	}
}

func radioButtonsUnder(root Widget) []*RadioButton {
	var out []*RadioButton
	for _, c := range root.base().children {
		walk(c, func(w Widget) bool {
			switch v := w.(type) {
			case *RadioButtonGroup:
				return false
			case *RadioButton:
				out = append(out, v)
			}
			return true
		})
	}
	return out
}

// radioScope is the nearest group above rb, or its dialog.
func radioScope(rb *RadioButton) Widget {
	for w := rb.Parent(); w != nil; w = w.Parent() {
		switch w.(type) {
		case *RadioButtonGroup, *Dialog:
			return w
		}
	}
	return nil
}

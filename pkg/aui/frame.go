package aui

import "github.com/BrandonKowalski/aui/pkg/aui/constants"

// Frame draws a titled border around a single child.
type Frame struct {
	widgetBase
	label string
}

func newFrame(parent Widget, label string) (*Frame, error) {
	f := &Frame{label: label}
	if err := f.init(f, "Frame", parent, 1); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Frame) Label() string { return f.label }

func (f *Frame) SetLabel(label string) {
	f.label = label
	f.changed(true)
}

func (f *Frame) Stretchable(d constants.Dimension) bool {
	return f.widgetBase.Stretchable(d) || anyChildHungry(f.visibleChildren(), d)
}

func (f *Frame) PreferredSize(m Metrics) Size {
	return framedSize(m, f.firstChild(), f.label, 0)
}

func (f *Frame) layout(m Metrics, r Rect) {
	f.bounds = r
	layoutFramed(m, f.firstChild(), r)
}

// ContentRect is the area inside the border.
func (f *Frame) ContentRect() Rect {
	return framedContent(f.metrics(), f.bounds)
}

// framedSize is the child's size plus the border, wide enough for the
// title and an optional title indicator.
func framedSize(m Metrics, child Widget, title string, indicator int) Size {
	in := m.FrameInsets()
	var s Size
	if child != nil && child.Visible() {
		s = child.PreferredSize(m)
	}
	w := s.Width + in.Horizontal()
	if title != "" || indicator > 0 {
		w = max(w, m.TextWidth(stripMnemonic(title))+indicator+in.Horizontal()+2)
	}
	return Size{Width: w, Height: s.Height + in.Vertical()}
}

func framedContent(m Metrics, r Rect) Rect {
	if m == nil {
		return r
	}
	return r.Inset(m.FrameInsets())
}

func layoutFramed(m Metrics, child Widget, r Rect) {
	if child != nil && child.Visible() {
		child.layout(m, r.Inset(m.FrameInsets()))
	}
}

// CheckBoxFrame is a frame whose title is a check box. With auto-enable on
// the check box enables and disables the frame's content.
type CheckBoxFrame struct {
	widgetBase
	label      string
	checked    bool
	autoEnable bool
	invert     bool
}

func newCheckBoxFrame(parent Widget, label string, checked bool) (*CheckBoxFrame, error) {
	f := &CheckBoxFrame{label: label, checked: checked, autoEnable: true}
	f.focusable = true
	if err := f.init(f, "CheckBoxFrame", parent, 1); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *CheckBoxFrame) Label() string { return f.label }

func (f *CheckBoxFrame) SetLabel(label string) {
	f.label = label
	f.changed(true)
}

func (f *CheckBoxFrame) Checked() bool { return f.checked }

// SetChecked changes the state without posting an event.
func (f *CheckBoxFrame) SetChecked(checked bool) {
	f.checked = checked
	f.applyAutoEnable()
	f.changed(false)
}

func (f *CheckBoxFrame) AutoEnable() bool { return f.autoEnable }

// SetAutoEnable makes the check box drive the content's enabled state.
func (f *CheckBoxFrame) SetAutoEnable(on bool) {
	f.autoEnable = on
	f.applyAutoEnable()
}

func (f *CheckBoxFrame) InvertAutoEnable() bool { return f.invert }

// SetInvertAutoEnable enables the content while the box is unchecked.
func (f *CheckBoxFrame) SetInvertAutoEnable(invert bool) {
	f.invert = invert
	f.applyAutoEnable()
}

func (f *CheckBoxFrame) applyAutoEnable() {
	if !f.autoEnable {
		return
	}
	if child := f.firstChild(); child != nil {
		child.SetEnabled(f.checked != f.invert)
	}
}

func (f *CheckBoxFrame) childAdded(Widget) { f.applyAutoEnable() }

func (f *CheckBoxFrame) Stretchable(d constants.Dimension) bool {
	return f.widgetBase.Stretchable(d) || anyChildHungry(f.visibleChildren(), d)
}

func (f *CheckBoxFrame) PreferredSize(m Metrics) Size {
	return framedSize(m, f.firstChild(), f.label, m.IndicatorWidth())
}

func (f *CheckBoxFrame) layout(m Metrics, r Rect) {
	f.bounds = r
	layoutFramed(m, f.firstChild(), r)
}

func (f *CheckBoxFrame) ContentRect() Rect {
	return framedContent(f.metrics(), f.bounds)
}

func (f *CheckBoxFrame) toggle() {
	f.SetChecked(!f.checked)
	f.postWidgetEvent(constants.ReasonValueChanged)
}

func (f *CheckBoxFrame) handleKey(in Input) bool {
	if in.Key == constants.KeySpace {
		f.toggle()
		return true
	}
	return false
}

// handleClick toggles when the title row is hit.
func (f *CheckBoxFrame) handleClick(_, y int) bool {
	if y != f.bounds.Y {
		return false
	}
	f.toggle()
	return true
}

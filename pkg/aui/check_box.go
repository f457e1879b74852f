package aui

import "github.com/BrandonKowalski/aui/pkg/aui/constants"

// CheckBox is a labelled on/off toggle.
type CheckBox struct {
	widgetBase
	label string
	value bool
}

func newCheckBox(parent Widget, label string, checked bool) (*CheckBox, error) {
	c := &CheckBox{label: label, value: checked}
	c.focusable = true
	if err := c.init(c, "CheckBox", parent, 0); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *CheckBox) Label() string { return c.label }

func (c *CheckBox) SetLabel(label string) {
	c.label = label
	c.changed(true)
}

func (c *CheckBox) Value() bool { return c.value }

// SetValue changes the state without posting an event.
func (c *CheckBox) SetValue(checked bool) {
	c.value = checked
	c.changed(false)
}

func (c *CheckBox) toggle() {
	c.SetValue(!c.value)
	c.postWidgetEvent(constants.ReasonValueChanged)
}

func (c *CheckBox) PreferredSize(m Metrics) Size {
	return Size{
		Width:  m.IndicatorWidth() + m.TextWidth(stripMnemonic(c.label)),
		Height: m.LineHeight(),
	}
}

func (c *CheckBox) handleKey(in Input) bool {
	if in.Key == constants.KeySpace {
		c.toggle()
		return true
	}
	return false
}

func (c *CheckBox) handleClick(int, int) bool {
	c.toggle()
	return true
}

// RadioButton is one choice of a set. Checking it unchecks the other radio
// buttons of its group, or of its dialog when it has no group.
type RadioButton struct {
	widgetBase
	label string
	value bool
}

func newRadioButton(parent Widget, label string, checked bool) (*RadioButton, error) {
	rb := &RadioButton{label: label}
	rb.focusable = true
	if err := rb.init(rb, "RadioButton", parent, 0); err != nil {
		return nil, err
	}
	if checked {
		rb.SetValue(true)
	}
	return rb, nil
}

func (rb *RadioButton) Label() string { return rb.label }

func (rb *RadioButton) SetLabel(label string) {
	rb.label = label
	rb.changed(true)
}

func (rb *RadioButton) Value() bool { return rb.value }

// SetValue checks or unchecks the button without posting an event.
func (rb *RadioButton) SetValue(checked bool) {
	if checked {
		if scope := radioScope(rb); scope != nil {
			for _, other := range radioButtonsUnder(scope) {
				if other != rb && other.value {
					other.value = false
					other.changed(false)
				}
			}
		}
	}
	rb.value = checked
	rb.changed(false)
}

func (rb *RadioButton) check() {
	if rb.value {
		return
	}
	rb.SetValue(true)
	rb.postWidgetEvent(constants.ReasonValueChanged)
}

func (rb *RadioButton) PreferredSize(m Metrics) Size {
	return Size{
		Width:  m.IndicatorWidth() + m.TextWidth(stripMnemonic(rb.label)),
		Height: m.LineHeight(),
	}
}

func (rb *RadioButton) handleKey(in Input) bool {
	if in.Key == constants.KeySpace {
		rb.check()
		return true
	}
	return false
}

func (rb *RadioButton) handleClick(int, int) bool {
	rb.check()
	return true
}

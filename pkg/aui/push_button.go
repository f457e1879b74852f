package aui

import "github.com/BrandonKowalski/aui/pkg/aui/constants"

// PushButton posts an activated event when pressed.
type PushButton struct {
	widgetBase
	label string
	icon  string
}

func newPushButton(parent Widget, label string) (*PushButton, error) {
	b := &PushButton{label: label}
	b.focusable = true
	b.notify = true
	if err := b.init(b, "PushButton", parent, 0); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *PushButton) Label() string { return b.label }

func (b *PushButton) SetLabel(label string) {
	b.label = label
	b.changed(true)
}

// IconName is the icon spec drawn before the label, if any.
func (b *PushButton) IconName() string { return b.icon }

func (b *PushButton) SetIconName(icon string) {
	b.icon = icon
	b.changed(true)
}

// IsDefault reports whether the button is its dialog's default button.
func (b *PushButton) IsDefault() bool {
	d := b.FindDialog()
	return d != nil && d.defaultButton == b
}

// Activate presses the button as if the user had.
func (b *PushButton) Activate() {
	if b.destroyed || !b.Enabled() {
		return
	}
	b.postWidgetEvent(constants.ReasonActivated)
}

func (b *PushButton) PreferredSize(m Metrics) Size {
	pad := m.ButtonPadding()
	return Size{
		Width:  m.TextWidth(stripMnemonic(b.label)) + pad.Width,
		Height: m.LineHeight() + pad.Height,
	}
}

func (b *PushButton) handleKey(in Input) bool {
	switch in.Key {
	case constants.KeyEnter, constants.KeySpace:
		b.Activate()
		return true
	}
	return false
}

func (b *PushButton) handleClick(int, int) bool {
	b.Activate()
	return true
}

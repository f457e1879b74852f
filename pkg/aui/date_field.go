package aui

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// Value layouts of the date and time fields.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// timeInput is the shared editor behind DateField and TimeField. The
// value is either empty or parses with the field's layout.
type timeInput struct {
	widgetBase
	label  string
	format string
	value  string
	editor lineEditor
}

func (t *timeInput) Label() string { return t.label }

func (t *timeInput) SetLabel(label string) {
	t.label = label
	t.changed(true)
}

// Value is the committed value, "" if unset.
func (t *timeInput) Value() string { return t.value }

// SetValue refuses malformed values with ErrInvalidValue. "" clears.
func (t *timeInput) SetValue(value string) error {
	if err := validTime(t.format, value); err != nil {
		internal.GetInternalLogger().Debug("Refused malformed value",
			"widget", t.kind, "value", value, "error", err)
		return err
	}
	t.value = value
	t.editor.set(value)
	t.changed(false)
	return nil
}

// Time is the committed value parsed, zero if unset.
func (t *timeInput) Time() time.Time {
	v, _ := time.Parse(t.format, t.value)
	return v
}

// Text is the edit buffer as drawn.
func (t *timeInput) Text() string { return t.editor.String() }

func (t *timeInput) Cursor() int { return t.editor.cursor }

func (t *timeInput) FieldRect() Rect {
	if m := t.metrics(); m != nil {
		_, rest := captioned(m, t.bounds, t.label)
		return rest
	}
	return t.bounds
}

func (t *timeInput) PreferredSize(m Metrics) Size {
	return fieldSize(m, t.label, len(t.format)+1, 0)
}

func (t *timeInput) commit() {
	text := t.editor.String()
	if text == t.value {
		return
	}
	if validTime(t.format, text) != nil {
		t.editor.set(t.value)
		t.changed(false)
		return
	}
	t.value = text
	t.changed(false)
	t.postWidgetEvent(constants.ReasonValueChanged)
}

func (t *timeInput) focusLost() { t.commit() }

func (t *timeInput) handleKey(in Input) bool {
	if in.Key == constants.KeyEnter {
		t.commit()
		return false
	}
	_, handled := t.editor.edit(in, func(r rune) bool {
		return len(t.editor.text) < len(t.format) && ((r >= '0' && r <= '9') || r == '-' || r == ':')
	})
	if handled {
		t.changed(false)
	}
	return handled
}

func validTime(layout, value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(layout, value); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidValue, value, err)
	}
	return nil
}

// DateField edits a date as YYYY-MM-DD.
type DateField struct {
	timeInput
}

func newDateField(parent Widget, label, initial string) (*DateField, error) {
	if err := validTime(DateLayout, initial); err != nil {
		return nil, err
	}
	f := &DateField{timeInput{label: label, format: DateLayout, value: initial}}
	f.focusable = true
	if err := f.init(f, "DateField", parent, 0); err != nil {
		return nil, err
	}
	f.editor.set(initial)
	return f, nil
}

// TimeField edits a time of day as HH:MM:SS.
type TimeField struct {
	timeInput
}

func newTimeField(parent Widget, label, initial string) (*TimeField, error) {
	if err := validTime(TimeLayout, initial); err != nil {
		return nil, err
	}
	f := &TimeField{timeInput{label: label, format: TimeLayout, value: initial}}
	f.focusable = true
	if err := f.init(f, "TimeField", parent, 0); err != nil {
		return nil, err
	}
	f.editor.set(initial)
	return f, nil
}

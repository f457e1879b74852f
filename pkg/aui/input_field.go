package aui

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// defaultFieldChars is the preferred width of an empty input in characters.
const defaultFieldChars = 12

// lineEditor is a single-line rune buffer with a cursor.
type lineEditor struct {
	text   []rune
	cursor int
}

func (e *lineEditor) set(s string) {
	e.text = []rune(s)
	e.cursor = len(e.text)
}

func (e *lineEditor) String() string { return string(e.text) }

func (e *lineEditor) insert(r rune) {
	e.text = append(e.text[:e.cursor], append([]rune{r}, e.text[e.cursor:]...)...)
	e.cursor++
}

// edit applies a key and reports whether the text changed and whether the
// key was an editing key at all.
func (e *lineEditor) edit(in Input, accept func(r rune) bool) (changed, handled bool) {
	switch in.Key {
	case constants.KeyRune, constants.KeySpace:
		r := in.Rune
		if in.Key == constants.KeySpace {
			r = ' '
		}
		if accept != nil && !accept(r) {
			return false, true
		}
		e.insert(r)
		return true, true
	case constants.KeyBackspace:
		if e.cursor == 0 {
			return false, true
		}
		e.text = append(e.text[:e.cursor-1], e.text[e.cursor:]...)
		e.cursor--
		return true, true
	case constants.KeyDelete:
		if e.cursor >= len(e.text) {
			return false, true
		}
		e.text = append(e.text[:e.cursor], e.text[e.cursor+1:]...)
		return true, true
	case constants.KeyLeft:
		e.cursor = max(0, e.cursor-1)
		return false, true
	case constants.KeyRight:
		e.cursor = min(len(e.text), e.cursor+1)
		return false, true
	case constants.KeyHome:
		e.cursor = 0
		return false, true
	case constants.KeyEnd:
		e.cursor = len(e.text)
		return false, true
	}
	return false, false
}

// InputField is a single-line text entry with an optional caption,
// length limit and set of valid characters.
type InputField struct {
	widgetBase
	label      string
	editor     lineEditor
	password   bool
	maxLength  int    // 0 for no limit
	validChars string // empty for any
}

func newInputField(parent Widget, label string, password bool) (*InputField, error) {
	f := &InputField{label: label, password: password}
	f.focusable = true
	f.stretch[dimIndex(constants.Horizontal)] = true
	kind := "InputField"
	if password {
		kind = "PasswordField"
	}
	if err := f.init(f, kind, parent, 0); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *InputField) Label() string { return f.label }

func (f *InputField) SetLabel(label string) {
	f.label = label
	f.changed(true)
}

func (f *InputField) Value() string { return f.editor.String() }

// SetValue replaces the text. Text that is too long or has characters
// outside the valid set is refused with ErrInvalidValue.
func (f *InputField) SetValue(value string) error {
	if !f.accepts(value) {
		internal.GetInternalLogger().Debug("Input field refused value", "label", f.label)
		return ErrInvalidValue
	}
	f.editor.set(value)
	f.changed(false)
	return nil
}

func (f *InputField) IsPassword() bool { return f.password }

// DisplayText is the text as drawn, masked in password mode.
func (f *InputField) DisplayText() string {
	if f.password {
		return strings.Repeat("*", len(f.editor.text))
	}
	return f.editor.String()
}

// Cursor is the cursor position in runes.
func (f *InputField) Cursor() int { return f.editor.cursor }

func (f *InputField) MaxLength() int { return f.maxLength }

// SetMaxLength limits the text length in runes; 0 removes the limit.
// Longer current text is truncated.
func (f *InputField) SetMaxLength(n int) {
	f.maxLength = max(0, n)
	if f.maxLength > 0 && len(f.editor.text) > f.maxLength {
		f.editor.text = f.editor.text[:f.maxLength]
		f.editor.cursor = min(f.editor.cursor, f.maxLength)
	}
	f.changed(false)
}

func (f *InputField) ValidChars() string { return f.validChars }

// SetValidChars restricts typing to the given characters. Empty allows
// any character.
func (f *InputField) SetValidChars(chars string) {
	f.validChars = chars
}

func (f *InputField) accepts(value string) bool {
	if f.maxLength > 0 && utf8.RuneCountInString(value) > f.maxLength {
		return false
	}
	if f.validChars == "" {
		return true
	}
	for _, r := range value {
		if !strings.ContainsRune(f.validChars, r) {
			return false
		}
	}
	return true
}

func (f *InputField) acceptRune(r rune) bool {
	if f.maxLength > 0 && len(f.editor.text) >= f.maxLength {
		return false
	}
	return f.validChars == "" || strings.ContainsRune(f.validChars, r)
}

// FieldRect is the editing line below the caption.
func (f *InputField) FieldRect() Rect {
	if m := f.metrics(); m != nil {
		_, rest := captioned(m, f.bounds, f.label)
		return rest
	}
	return f.bounds
}

func (f *InputField) PreferredSize(m Metrics) Size {
	return fieldSize(m, f.label, defaultFieldChars, f.maxLength)
}

// fieldSize is a caption above a one-line field of the given width.
func fieldSize(m Metrics, label string, chars, maxLength int) Size {
	if maxLength > 0 {
		chars = min(chars, maxLength+1)
	}
	w := max(m.TextWidth(stripMnemonic(label)), m.TextWidth(strings.Repeat("m", max(1, chars))))
	return Size{Width: w, Height: labelHeight(m, label) + m.LineHeight()}
}

func (f *InputField) handleKey(in Input) bool {
	changed, handled := f.editor.edit(in, f.acceptRune)
	if changed {
		f.changed(false)
		f.postWidgetEvent(constants.ReasonValueChanged)
	} else if handled {
		f.changed(false)
	}
	return handled
}

// IntField edits an integer within a fixed range. Typing edits a text
// buffer that is committed on Enter or when focus leaves; an unparsable or
// out-of-range buffer is silently reverted.
type IntField struct {
	widgetBase
	label    string
	min, max int
	value    int
	editor   lineEditor
}

func newIntField(parent Widget, label string, minValue, maxValue, initial int) (*IntField, error) {
	if minValue > maxValue {
		minValue, maxValue = maxValue, minValue
	}
	f := &IntField{label: label, min: minValue, max: maxValue, value: minValue}
	f.focusable = true
	if err := f.init(f, "IntField", parent, 0); err != nil {
		return nil, err
	}
	if initial >= minValue && initial <= maxValue {
		f.value = initial
	}
	f.editor.set(strconv.Itoa(f.value))
	return f, nil
}

func (f *IntField) Label() string { return f.label }

func (f *IntField) SetLabel(label string) {
	f.label = label
	f.changed(true)
}

func (f *IntField) Min() int { return f.min }

func (f *IntField) Max() int { return f.max }

func (f *IntField) Value() int { return f.value }

// SetValue refuses values outside [Min, Max] with ErrInvalidValue.
func (f *IntField) SetValue(v int) error {
	if v < f.min || v > f.max {
		internal.GetInternalLogger().Debug("Int field refused value",
			"value", v, "min", f.min, "max", f.max)
		return ErrInvalidValue
	}
	f.value = v
	f.editor.set(strconv.Itoa(v))
	f.changed(false)
	return nil
}

// Text is the edit buffer as drawn.
func (f *IntField) Text() string { return f.editor.String() }

func (f *IntField) Cursor() int { return f.editor.cursor }

func (f *IntField) FieldRect() Rect {
	if m := f.metrics(); m != nil {
		_, rest := captioned(m, f.bounds, f.label)
		return rest
	}
	return f.bounds
}

func (f *IntField) PreferredSize(m Metrics) Size {
	digits := max(len(strconv.Itoa(f.min)), len(strconv.Itoa(f.max)))
	return fieldSize(m, f.label, digits+1, 0)
}

// commit parses the buffer. A valid value is stored and posted; anything
// else is reverted.
func (f *IntField) commit() {
	v, err := strconv.Atoi(strings.TrimSpace(f.editor.String()))
	if err != nil || v < f.min || v > f.max {
		f.editor.set(strconv.Itoa(f.value))
		f.changed(false)
		return
	}
	if v == f.value {
		return
	}
	f.value = v
	f.changed(false)
	f.postWidgetEvent(constants.ReasonValueChanged)
}

func (f *IntField) step(delta int) {
	v := min(max(f.value+delta, f.min), f.max)
	if v == f.value {
		return
	}
	f.value = v
	f.editor.set(strconv.Itoa(v))
	f.changed(false)
	f.postWidgetEvent(constants.ReasonValueChanged)
}

func (f *IntField) focusLost() { f.commit() }

func (f *IntField) handleKey(in Input) bool {
	switch in.Key {
	case constants.KeyUp:
		f.step(1)
		return true
	case constants.KeyDown:
		f.step(-1)
		return true
	case constants.KeyPageUp:
		f.step(10)
		return true
	case constants.KeyPageDown:
		f.step(-10)
		return true
	case constants.KeyEnter:
		f.commit()
		return false
	}

	_, handled := f.editor.edit(in, func(r rune) bool {
		return (r >= '0' && r <= '9') || (r == '-' && f.min < 0)
	})
	if handled {
		f.changed(false)
	}
	return handled
}

package aui

import (
	"strings"
	"unicode/utf8"

	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

const defaultEditLines = 3

// MultiLineEdit is a multi-line text entry. Enter inserts a line break.
type MultiLineEdit struct {
	widgetBase
	viewport
	label        string
	lines        [][]rune
	row, col     int
	maxLength    int // runes, 0 for no limit
	defaultLines int
	content      Rect
}

func newMultiLineEdit(parent Widget, label string) (*MultiLineEdit, error) {
	e := &MultiLineEdit{viewport: newViewport(), label: label, lines: [][]rune{{}}, defaultLines: defaultEditLines}
	e.focusable = true
	e.stretch = [2]bool{true, true}
	if err := e.init(e, "MultiLineEdit", parent, 0); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *MultiLineEdit) Label() string { return e.label }

func (e *MultiLineEdit) SetLabel(label string) {
	e.label = label
	e.changed(true)
}

func (e *MultiLineEdit) Value() string {
	parts := make([]string, len(e.lines))
	for i, l := range e.lines {
		parts[i] = string(l)
	}
	return strings.Join(parts, "\n")
}

// SetValue replaces the text. Text longer than the limit is refused.
func (e *MultiLineEdit) SetValue(text string) error {
	if e.maxLength > 0 && utf8.RuneCountInString(text) > e.maxLength {
		internal.GetInternalLogger().Debug("Multi-line edit refused value", "label", e.label)
		return ErrInvalidValue
	}
	e.lines = e.lines[:0]
	for _, l := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		e.lines = append(e.lines, []rune(l))
	}
	e.row = len(e.lines) - 1
	e.col = len(e.lines[e.row])
	e.follow()
	e.changed(false)
	return nil
}

// Lines is the text split at line breaks.
func (e *MultiLineEdit) Lines() []string {
	out := make([]string, len(e.lines))
	for i, l := range e.lines {
		out[i] = string(l)
	}
	return out
}

// CursorPosition is the cursor's line and column in runes.
func (e *MultiLineEdit) CursorPosition() (line, col int) { return e.row, e.col }

func (e *MultiLineEdit) MaxLength() int { return e.maxLength }

func (e *MultiLineEdit) SetMaxLength(n int) { e.maxLength = max(0, n) }

// SetDefaultVisibleLines sets how many lines the preferred size shows.
func (e *MultiLineEdit) SetDefaultVisibleLines(n int) {
	e.defaultLines = max(1, n)
	e.changed(true)
}

func (e *MultiLineEdit) ContentRect() Rect { return e.content }

func (e *MultiLineEdit) length() int {
	n := len(e.lines) - 1
	for _, l := range e.lines {
		n += len(l)
	}
	return n
}

func (e *MultiLineEdit) PreferredSize(m Metrics) Size {
	in := m.FrameInsets()
	w := max(m.TextWidth(stripMnemonic(e.label)), m.TextWidth(strings.Repeat("m", 2*defaultFieldChars))+in.Horizontal())
	return Size{Width: w, Height: labelHeight(m, e.label) + e.defaultLines*m.LineHeight() + in.Vertical()}
}

func (e *MultiLineEdit) layout(m Metrics, r Rect) {
	e.bounds = r
	_, rest := captioned(m, r, e.label)
	e.content = rest.Inset(m.FrameInsets())
	e.rows = e.content.Height / max(1, m.LineHeight())
	e.follow()
}

// follow scrolls to the cursor line.
func (e *MultiLineEdit) follow() {
	e.hover = e.row
	e.ensureVisible(len(e.lines))
}

func (e *MultiLineEdit) insert(r rune) bool {
	if e.maxLength > 0 && e.length() >= e.maxLength {
		return false
	}
	if r == '\n' {
		line := e.lines[e.row]
		head := append([]rune(nil), line[:e.col]...)
		tail := append([]rune(nil), line[e.col:]...)
		e.lines[e.row] = head
		e.lines = append(e.lines[:e.row+1], append([][]rune{tail}, e.lines[e.row+1:]...)...)
		e.row++
		e.col = 0
		return true
	}
	line := e.lines[e.row]
	e.lines[e.row] = append(line[:e.col], append([]rune{r}, line[e.col:]...)...)
	e.col++
	return true
}

func (e *MultiLineEdit) backspace() bool {
	switch {
	case e.col > 0:
		line := e.lines[e.row]
		e.lines[e.row] = append(line[:e.col-1], line[e.col:]...)
		e.col--
	case e.row > 0:
		prev := e.lines[e.row-1]
		e.col = len(prev)
		e.lines[e.row-1] = append(prev, e.lines[e.row]...)
		e.lines = append(e.lines[:e.row], e.lines[e.row+1:]...)
		e.row--
	default:
		return false
	}
	return true
}

func (e *MultiLineEdit) handleKey(in Input) bool {
	changed := false
	switch in.Key {
	case constants.KeyRune:
		changed = e.insert(in.Rune)
	case constants.KeySpace:
		changed = e.insert(' ')
	case constants.KeyEnter:
		changed = e.insert('\n')
	case constants.KeyBackspace:
		changed = e.backspace()
	case constants.KeyDelete:
		if e.col < len(e.lines[e.row]) || e.row < len(e.lines)-1 {
			e.moveCol(1)
			changed = e.backspace()
		}
	case constants.KeyLeft:
		e.moveCol(-1)
	case constants.KeyRight:
		e.moveCol(1)
	case constants.KeyUp:
		e.moveRow(-1)
	case constants.KeyDown:
		e.moveRow(1)
	case constants.KeyPageUp:
		e.moveRow(-max(1, e.rows-1))
	case constants.KeyPageDown:
		e.moveRow(max(1, e.rows-1))
	case constants.KeyHome:
		e.col = 0
	case constants.KeyEnd:
		e.col = len(e.lines[e.row])
	default:
		return false
	}
	e.follow()
	e.changed(false)
	if changed {
		e.postWidgetEvent(constants.ReasonValueChanged)
	}
	return true
}

func (e *MultiLineEdit) moveCol(delta int) {
	e.col += delta
	switch {
	case e.col < 0 && e.row > 0:
		e.row--
		e.col = len(e.lines[e.row])
	case e.col > len(e.lines[e.row]) && e.row < len(e.lines)-1:
		e.row++
		e.col = 0
	}
	e.col = min(max(e.col, 0), len(e.lines[e.row]))
}

func (e *MultiLineEdit) moveRow(delta int) {
	e.row = min(max(e.row+delta, 0), len(e.lines)-1)
	e.col = min(e.col, len(e.lines[e.row]))
}

package aui

import (
	"strings"

	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// LogView is a read-only, scrolling list of text lines. New lines keep the
// view at the bottom unless the user scrolled up.
type LogView struct {
	widgetBase
	viewport
	label        string
	lines        []string
	visibleLines int
	maxLines     int // 0 keeps everything
	content      Rect
}

func newLogView(parent Widget, label string, visibleLines, maxLines int) (*LogView, error) {
	lv := &LogView{viewport: newViewport(), label: label, visibleLines: max(1, visibleLines), maxLines: max(0, maxLines)}
	lv.focusable = true
	lv.stretch = [2]bool{true, true}
	if err := lv.init(lv, "LogView", parent, 0); err != nil {
		return nil, err
	}
	return lv, nil
}

func (lv *LogView) Label() string { return lv.label }

func (lv *LogView) SetLabel(label string) {
	lv.label = label
	lv.changed(true)
}

// Lines returns the stored lines.
func (lv *LogView) Lines() []string { return append([]string(nil), lv.lines...) }

// Text is the stored lines joined by newlines.
func (lv *LogView) Text() string { return strings.Join(lv.lines, "\n") }

// AppendLines adds text, split at line breaks, and drops the oldest lines
// beyond the limit.
func (lv *LogView) AppendLines(text string) {
	atBottom := lv.offset >= lv.maxOffset(len(lv.lines))
	lv.lines = append(lv.lines, internal.PlainLines(strings.TrimSuffix(text, "\n"))...)
	if lv.maxLines > 0 && len(lv.lines) > lv.maxLines {
		drop := len(lv.lines) - lv.maxLines
		lv.lines = append(lv.lines[:0], lv.lines[drop:]...)
	}
	if atBottom {
		lv.offset = lv.maxOffset(len(lv.lines))
	}
	lv.changed(false)
}

// SetText replaces all lines.
func (lv *LogView) SetText(text string) {
	lv.lines = nil
	lv.offset = 0
	lv.AppendLines(text)
}

func (lv *LogView) ClearText() {
	lv.lines = nil
	lv.reset()
	lv.changed(false)
}

func (lv *LogView) MaxLines() int { return lv.maxLines }

func (lv *LogView) ContentRect() Rect { return lv.content }

func (lv *LogView) PreferredSize(m Metrics) Size {
	in := m.FrameInsets()
	w := max(m.TextWidth(lv.label), m.TextWidth(strings.Repeat("m", 2*defaultFieldChars)))
	return Size{
		Width:  w + in.Horizontal() + m.ScrollbarWidth(),
		Height: labelHeight(m, lv.label) + lv.visibleLines*m.LineHeight() + in.Vertical(),
	}
}

func (lv *LogView) layout(m Metrics, r Rect) {
	lv.bounds = r
	_, rest := captioned(m, r, lv.label)
	lv.content = rest.Inset(m.FrameInsets())
	atBottom := lv.offset >= lv.maxOffset(len(lv.lines))
	lv.rows = lv.content.Height / max(1, m.LineHeight())
	if atBottom {
		lv.offset = lv.maxOffset(len(lv.lines))
	}
}

func (lv *LogView) handleKey(in Input) bool {
	n := len(lv.lines)
	switch in.Key {
	case constants.KeyUp:
		lv.scrollBy(-1, n)
	case constants.KeyDown:
		lv.scrollBy(1, n)
	case constants.KeyPageUp:
		lv.scrollBy(-max(1, lv.rows-1), n)
	case constants.KeyPageDown:
		lv.scrollBy(max(1, lv.rows-1), n)
	case constants.KeyHome:
		lv.offset = 0
	case constants.KeyEnd:
		lv.offset = lv.maxOffset(n)
	default:
		return false
	}
	lv.changed(false)
	return true
}

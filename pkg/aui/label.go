package aui

import (
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// Label shows static text. A heading is drawn emphasised; an output field
// is drawn like a read-only input.
type Label struct {
	widgetBase
	text        string
	heading     bool
	outputField bool
}

func newLabel(parent Widget, text string, heading, outputField bool) (*Label, error) {
	l := &Label{text: text, heading: heading, outputField: outputField}
	kind := "Label"
	switch {
	case heading:
		kind = "Heading"
	case outputField:
		kind = "OutputField"
	}
	if err := l.init(l, kind, parent, 0); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Label) Text() string { return l.text }

func (l *Label) SetText(text string) {
	l.text = text
	l.changed(true)
}

func (l *Label) IsHeading() bool { return l.heading }

func (l *Label) IsOutputField() bool { return l.outputField }

// Lines is the text split at line breaks.
func (l *Label) Lines() []string { return internal.PlainLines(l.text) }

func (l *Label) PreferredSize(m Metrics) Size {
	s := textBlockSize(m, l.text)
	if l.outputField {
		s.Height = max(s.Height, m.LineHeight())
	}
	return s
}

// textBlockSize is the widest line by the number of lines.
func textBlockSize(m Metrics, text string) Size {
	lines := internal.PlainLines(text)
	w := 0
	for _, line := range lines {
		w = max(w, m.TextWidth(line))
	}
	return Size{Width: w, Height: len(lines) * m.LineHeight()}
}

// labelHeight is the room a caption above a field needs.
func labelHeight(m Metrics, label string) int {
	return len(internal.PlainLines(label)) * m.LineHeight()
}

// captioned splits r into the caption rows and the area below.
func captioned(m Metrics, r Rect, label string) (caption, rest Rect) {
	h := min(labelHeight(m, label), r.Height)
	caption = Rect{X: r.X, Y: r.Y, Width: r.Width, Height: h}
	rest = Rect{X: r.X, Y: r.Y + h, Width: r.Width, Height: r.Height - h}
	return caption, rest
}

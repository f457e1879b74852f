package aui

import (
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

const defaultRichTextLines = 6

// RichText shows formatted text. Markup is reduced to plain lines plus
// its hyperlinks; Left and Right move between links and Enter posts a
// MenuEvent carrying the link URL.
type RichText struct {
	widgetBase
	viewport
	markup   string
	plain    bool
	lines    []string
	links    []internal.Link
	link     int // hovered link, -1 if none
	autoDown bool
	content  Rect
}

// Link is a hyperlink of a RichText.
type Link = internal.Link

func newRichText(parent Widget, text string, plain bool) (*RichText, error) {
	rt := &RichText{viewport: newViewport(), plain: plain, link: -1}
	rt.focusable = true
	rt.notify = true
	rt.stretch = [2]bool{true, true}
	if err := rt.init(rt, "RichText", parent, 0); err != nil {
		return nil, err
	}
	rt.setText(text)
	return rt, nil
}

func (rt *RichText) Text() string { return rt.markup }

// SetText replaces the content and scrolls to the top, or to the bottom
// with auto-scroll on.
func (rt *RichText) SetText(text string) {
	rt.setText(text)
	rt.changed(true)
}

func (rt *RichText) setText(text string) {
	rt.markup = text
	rt.links = nil
	rt.link = -1

	if rt.plain {
		rt.lines = internal.PlainLines(text)
	} else {
		parsed, err := internal.ParseRichText(text)
		if err != nil {
			internal.GetInternalLogger().Warn("Failed to parse rich text, showing it verbatim", "error", err)
			rt.lines = internal.PlainLines(text)
		} else {
			rt.lines = parsed.Lines
			rt.links = parsed.Links
		}
	}
	if len(rt.links) > 0 {
		rt.link = 0
	}

	rt.offset = 0
	if rt.autoDown {
		rt.offset = rt.maxOffset(len(rt.lines))
	}
}

func (rt *RichText) IsPlainText() bool { return rt.plain }

// Lines is the text as drawn.
func (rt *RichText) Lines() []string { return append([]string(nil), rt.lines...) }

// Links are the hyperlinks in document order.
func (rt *RichText) Links() []Link { return append([]Link(nil), rt.links...) }

// HoveredLink is the index of the link Enter activates, -1 if none.
func (rt *RichText) HoveredLink() int { return rt.link }

// SetAutoScrollDown keeps the view at the end when text changes.
func (rt *RichText) SetAutoScrollDown(on bool) {
	rt.autoDown = on
	if on {
		rt.offset = rt.maxOffset(len(rt.lines))
	}
}

func (rt *RichText) ContentRect() Rect { return rt.content }

func (rt *RichText) PreferredSize(m Metrics) Size {
	in := m.FrameInsets()
	w := 0
	for _, l := range rt.lines {
		w = max(w, m.TextWidth(l))
	}
	w = min(w, m.TextWidth("m")*60)
	rows := min(max(1, len(rt.lines)), defaultRichTextLines)
	return Size{Width: w + in.Horizontal() + m.ScrollbarWidth(), Height: rows*m.LineHeight() + in.Vertical()}
}

func (rt *RichText) layout(m Metrics, r Rect) {
	rt.bounds = r
	rt.content = r.Inset(m.FrameInsets())
	rt.rows = rt.content.Height / max(1, m.LineHeight())
	rt.offset = min(rt.offset, rt.maxOffset(len(rt.lines)))
	if rt.autoDown {
		rt.offset = rt.maxOffset(len(rt.lines))
	}
}

// ActivateLink posts the MenuEvent for link i.
func (rt *RichText) ActivateLink(i int) {
	if i < 0 || i >= len(rt.links) {
		return
	}
	rt.post(&MenuEvent{ID: rt.links[i].Href})
}

func (rt *RichText) handleKey(in Input) bool {
	n := len(rt.lines)
	switch in.Key {
	case constants.KeyUp:
		rt.scrollBy(-1, n)
	case constants.KeyDown:
		rt.scrollBy(1, n)
	case constants.KeyPageUp:
		rt.scrollBy(-max(1, rt.rows-1), n)
	case constants.KeyPageDown:
		rt.scrollBy(max(1, rt.rows-1), n)
	case constants.KeyHome:
		rt.offset = 0
	case constants.KeyEnd:
		rt.offset = rt.maxOffset(n)
	case constants.KeyLeft, constants.KeyRight:
		if len(rt.links) == 0 {
			return false
		}
		delta := 1
		if in.Key == constants.KeyLeft {
			delta = -1
		}
		rt.link = (rt.link + delta + len(rt.links)) % len(rt.links)
	case constants.KeyEnter:
		if rt.link < 0 {
			return false
		}
		rt.ActivateLink(rt.link)
	default:
		return false
	}
	rt.changed(false)
	return true
}

package sdl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// renderer draws one dialog's widget tree.
type renderer struct {
	b      *Backend
	pal    internal.Palette
	focus  aui.Widget
	active bool // topmost dialog; only it shows focus and the cursor
}

func (r *renderer) focused(w aui.Widget) bool {
	return r.active && w == r.focus
}

func (r *renderer) lh() int { return r.b.metrics.LineHeight() }

func (r *renderer) text(enabled bool) internal.RGB {
	if enabled {
		return r.pal.Text
	}
	return r.pal.Disabled
}

// rowRect is the rect of the row-th visible line of content.
func (r *renderer) rowRect(content aui.Rect, row int) aui.Rect {
	return aui.Rect{X: content.X, Y: content.Y + row*r.lh(), Width: content.Width, Height: r.lh()}
}

func (r *renderer) rows(content aui.Rect) int {
	return content.Height / r.lh()
}

func (r *renderer) drawDialog(p painter, d *aui.Dialog) {
	bounds := d.Bounds()
	p.fill(bounds, r.pal.Background)
	if d.DialogKind() == constants.DialogPopup {
		r.box(p, bounds, d.Title(), r.pal.Border, r.pal.Accent)
	}
	r.draw(p, d.Root())
	r.overlay(p)
}

// box outlines rect and writes title into the top inset.
func (r *renderer) box(p painter, rect aui.Rect, title string, border, titleColor internal.RGB) {
	in := r.b.metrics.FrameInsets()
	line := aui.Rect{X: rect.X, Y: rect.Y + in.Top/2, Width: rect.Width, Height: rect.Height - in.Top/2}
	p.frame(line, border, 1)
	if title == "" {
		return
	}
	x := rect.X + in.Left + r.lh()/2
	w := r.b.metrics.TextWidth(title)
	p.fill(aui.Rect{X: x - 2, Y: rect.Y, Width: w + 4, Height: r.lh()}, r.pal.Background)
	p.text(x, rect.Y, rect.Width-(x-rect.X), title, titleColor)
}

func (r *renderer) children(p painter, w aui.Widget) {
	for _, child := range w.Children() {
		r.draw(p, child)
	}
}

// caption draws a widget's label rows at the top of rect.
func (r *renderer) caption(p painter, rect aui.Rect, label string, c internal.RGB) {
	for i, line := range internal.PlainLines(aui.DisplayLabel(label)) {
		p.text(rect.X, rect.Y+i*r.lh(), rect.Width, line, c)
	}
}

func (r *renderer) draw(p painter, w aui.Widget) {
	if w == nil || !w.Visible() {
		return
	}
	bounds := w.Bounds()
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}
	p = p.within(bounds)
	text := r.text(w.Enabled())

	switch v := w.(type) {
	case *aui.Label:
		r.drawLabel(p, v, text)
	case *aui.PushButton:
		r.drawButton(p, v, text)
	case *aui.CheckBox:
		r.drawIndicator(p, v, v.Value(), false, aui.DisplayLabel(v.Label()), text)
	case *aui.RadioButton:
		r.drawIndicator(p, v, v.Value(), true, aui.DisplayLabel(v.Label()), text)
	case *aui.Frame:
		r.box(p, bounds, aui.DisplayLabel(v.Label()), r.pal.Border, r.pal.Accent)
		r.children(p, w)
	case *aui.CheckBoxFrame:
		r.drawCheckBoxFrame(p, v, text)
		r.children(p, w)
	case *aui.InputField:
		r.caption(p, bounds, v.Label(), text)
		r.drawField(p, v, v.FieldRect(), v.DisplayText(), v.Cursor())
	case *aui.IntField:
		r.caption(p, bounds, v.Label(), text)
		r.drawField(p, v, v.FieldRect(), v.Text(), v.Cursor())
	case *aui.DateField:
		r.caption(p, bounds, v.Label(), text)
		r.drawField(p, v, v.FieldRect(), v.Text(), v.Cursor())
	case *aui.TimeField:
		r.caption(p, bounds, v.Label(), text)
		r.drawField(p, v, v.FieldRect(), v.Text(), v.Cursor())
	case *aui.ComboBox:
		r.drawComboBox(p, v, text)
	case *aui.MultiLineEdit:
		r.caption(p, bounds, v.Label(), text)
		r.drawLines(p, v, v.ContentRect(), v.Lines(), v.Offset(), text)
		if r.focused(v) {
			line, col := v.CursorPosition()
			r.drawTextCursor(p, v.ContentRect(), line-v.Offset(), v.Lines(), line, col)
		}
	case *aui.LogView:
		r.caption(p, bounds, v.Label(), text)
		r.drawLines(p, v, v.ContentRect(), v.Lines(), v.Offset(), text)
	case *aui.RichText:
		r.drawRichText(p, v, text)
	case *aui.ProgressBar:
		r.drawProgress(p, v, text)
	case *aui.Slider:
		r.drawSlider(p, v, text)
	case *aui.Image:
		r.drawImage(p, v, text)
	case *aui.SelectionBox:
		r.drawSelectionBox(p, v, text)
	case *aui.Table:
		r.drawTable(p, v, text)
	case *aui.Tree:
		r.drawTree(p, v, text)
	case *aui.MenuBar:
		r.drawMenuBar(p, v, text)
	case *aui.DumbTab:
		r.drawDumbTab(p, v, text)
	case *aui.Paned:
		r.children(p, w)
		div := v.DividerRect()
		if v.Dimension() == constants.Horizontal {
			p.vline(div.X+div.Width/2, div.Y, div.Height, r.pal.Border)
		} else {
			p.hline(div.X, div.Y+div.Height/2, div.Width, r.pal.Border)
		}
	case *aui.Spacing:
	default:
		r.children(p, w)
	}
}

func (r *renderer) drawLabel(p painter, l *aui.Label, c internal.RGB) {
	if l.IsHeading() && l.Enabled() {
		c = r.pal.Accent
	}
	b := l.Bounds()
	for i, line := range l.Lines() {
		p.text(b.X, b.Y+i*r.lh(), b.Width, line, c)
	}
}

func (r *renderer) drawButton(p painter, btn *aui.PushButton, c internal.RGB) {
	b := btn.Bounds()
	bg, border := r.pal.Background, r.pal.Border
	if r.focused(btn) {
		bg, border, c = r.pal.Highlight, r.pal.Highlight, r.pal.HighlightedText
	}
	p.fill(b, bg)
	thickness := 1
	if btn.IsDefault() {
		thickness = 2
		if !r.focused(btn) {
			border = r.pal.Accent
		}
	}
	p.frame(b, border, thickness)
	p.centered(b, p.middle(b), aui.DisplayLabel(btn.Label()), c)
}

// drawIndicator draws a check box or radio button: a square, filled when
// on, then the label. Radio squares are filled smaller.
func (r *renderer) drawIndicator(p painter, w aui.Widget, on, radio bool, label string, c internal.RGB) {
	b := w.Bounds()
	lh := r.lh()
	if r.focused(w) {
		p.fill(aui.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: lh}, r.pal.Highlight)
		c = r.pal.HighlightedText
	}
	size := lh * 3 / 4
	sq := aui.Rect{X: b.X + (lh-size)/2, Y: b.Y + (lh-size)/2, Width: size, Height: size}
	p.fill(sq, r.pal.Background)
	p.frame(sq, r.pal.Border, 1)
	if on {
		inset := max(2, size/5)
		if radio {
			inset = max(3, size/3)
		}
		p.fill(sq.Inset(internal.Uniform(inset)), r.pal.Accent)
	}
	x := b.X + r.b.metrics.IndicatorWidth()
	p.text(x, b.Y, b.Width-(x-b.X), label, c)
}

func (r *renderer) drawCheckBoxFrame(p painter, f *aui.CheckBoxFrame, c internal.RGB) {
	b := f.Bounds()
	r.box(p, b, "", r.pal.Border, r.pal.Accent)
	in := r.b.metrics.FrameInsets()
	head := aui.Rect{X: b.X + in.Left + r.lh()/2, Y: b.Y, Width: b.Width - in.Horizontal() - r.lh()/2, Height: r.lh()}
	w := r.b.metrics.IndicatorWidth() + r.b.metrics.TextWidth(aui.DisplayLabel(f.Label()))
	p.fill(aui.Rect{X: head.X - 2, Y: head.Y, Width: min(head.Width, w) + 4, Height: head.Height}, r.pal.Background)
	r.drawIndicatorAt(p, head, f.Checked(), r.focused(f), aui.DisplayLabel(f.Label()), c)
}

func (r *renderer) drawIndicatorAt(p painter, at aui.Rect, on, focused bool, label string, c internal.RGB) {
	lh := r.lh()
	if focused {
		c = r.pal.Highlight
	}
	size := lh * 3 / 4
	sq := aui.Rect{X: at.X, Y: at.Y + (lh-size)/2, Width: size, Height: size}
	p.frame(sq, r.pal.Border, 1)
	if on {
		p.fill(sq.Inset(internal.Uniform(max(2, size/5))), r.pal.Accent)
	}
	x := at.X + r.b.metrics.IndicatorWidth()
	p.text(x, at.Y, at.Width-(x-at.X), label, c)
}

// fieldStart is the first rune shown so the cursor stays inside width.
func (r *renderer) fieldStart(runes []rune, cursor, width int) int {
	start := 0
	for start < cursor && r.b.metrics.TextWidth(string(runes[start:cursor])) >= width {
		start++
	}
	return start
}

// drawField draws a one-line text field scrolled so the cursor is visible.
func (r *renderer) drawField(p painter, w aui.Widget, field aui.Rect, value string, cursor int) {
	c := r.text(w.Enabled())
	border := r.pal.Border
	if r.focused(w) {
		border = r.pal.Accent
	}
	box := aui.Rect{X: field.X, Y: field.Y, Width: field.Width, Height: min(field.Height, r.lh())}
	p.fill(box, r.pal.Background)
	p.hline(box.X, box.Y+box.Height-1, box.Width, border)

	runes := []rune(value)
	cursor = min(max(cursor, 0), len(runes))
	start := r.fieldStart(runes, cursor, field.Width-2)
	fp := p.within(box)
	fp.text(field.X, field.Y, field.Width, string(runes[start:]), c)
	if r.focused(w) {
		x := field.X + r.b.metrics.TextWidth(string(runes[start:cursor]))
		fp.fill(aui.Rect{X: x, Y: field.Y + 1, Width: 2, Height: box.Height - 2}, r.pal.Accent)
	}
}

func (r *renderer) drawTextCursor(p painter, content aui.Rect, row int, lines []string, line, col int) {
	if row < 0 || row >= r.rows(content) || line >= len(lines) {
		return
	}
	runes := []rune(lines[line])
	col = min(max(col, 0), len(runes))
	x := content.X + r.b.metrics.TextWidth(string(runes[:col]))
	if x < content.X+content.Width {
		rr := r.rowRect(content, row)
		p.within(content).fill(aui.Rect{X: x, Y: rr.Y + 1, Width: 2, Height: rr.Height - 2}, r.pal.Accent)
	}
}

// drawLines draws a bordered, scrolled block of text lines.
func (r *renderer) drawLines(p painter, w aui.Widget, content aui.Rect, lines []string, offset int, c internal.RGB) {
	border := r.pal.Border
	if r.focused(w) {
		border = r.pal.Accent
	}
	frame := outset(content, r.b.metrics.FrameInsets())
	r.box(p, frame, "", border, c)
	cp := p.within(content)
	for row := 0; row < r.rows(content); row++ {
		i := offset + row
		if i >= len(lines) {
			break
		}
		rr := r.rowRect(content, row)
		cp.text(rr.X, rr.Y, rr.Width, lines[i], c)
	}
	r.scrollbar(p, frame, offset, r.rows(content), len(lines))
}

// scrollbar draws a thumb along the right edge when rows are hidden.
func (r *renderer) scrollbar(p painter, frame aui.Rect, offset, rows, total int) {
	if total <= rows || rows <= 0 {
		return
	}
	in := r.b.metrics.FrameInsets()
	track := aui.Rect{
		X:      frame.X + frame.Width - r.b.metrics.ScrollbarWidth() - 1,
		Y:      frame.Y + in.Top,
		Width:  r.b.metrics.ScrollbarWidth(),
		Height: frame.Height - in.Vertical(),
	}
	h := max(r.lh()/2, track.Height*rows/total)
	y := track.Y + (track.Height-h)*offset/max(1, total-rows)
	p.fill(aui.Rect{X: track.X, Y: y, Width: track.Width, Height: h}, r.pal.Accent)
}

func (r *renderer) drawRichText(p painter, rt *aui.RichText, c internal.RGB) {
	content := rt.ContentRect()
	lines := rt.Lines()
	r.drawLines(p, rt, content, lines, rt.Offset(), c)

	// Underline link texts; the hovered one is highlighted.
	cp := p.within(content)
	hovered := rt.HoveredLink()
	for i, link := range rt.Links() {
		if link.Text == "" {
			continue
		}
		color := r.pal.Accent
		if i == hovered && r.focused(rt) {
			color = r.pal.Highlight
		}
		for row := 0; row < r.rows(content); row++ {
			li := rt.Offset() + row
			if li >= len(lines) {
				break
			}
			if col := strings.Index(lines[li], link.Text); col >= 0 {
				rr := r.rowRect(content, row)
				x := rr.X + r.b.metrics.TextWidth(lines[li][:col])
				w := cp.text(x, rr.Y, rr.Width-(x-rr.X), link.Text, color)
				cp.hline(x, rr.Y+rr.Height-2, w, color)
				break
			}
		}
	}
}

func (r *renderer) drawProgress(p painter, pb *aui.ProgressBar, c internal.RGB) {
	r.caption(p, pb.Bounds(), pb.Label(), c)
	bar := pb.BarRect()
	p.fill(bar, r.pal.Background)
	filled := int(pb.Fraction() * float64(bar.Width))
	p.fill(aui.Rect{X: bar.X, Y: bar.Y, Width: filled, Height: bar.Height}, r.pal.Accent)
	p.frame(bar, r.pal.Border, 1)
	p.centered(bar, p.middle(bar), fmt.Sprintf("%d%%", int(pb.Fraction()*100)), c)
}

func (r *renderer) drawSlider(p painter, s *aui.Slider, c internal.RGB) {
	r.caption(p, s.Bounds(), s.Label(), c)
	track := s.TrackRect()
	value := strconv.Itoa(s.Value())
	digits := max(r.b.metrics.TextWidth(strconv.Itoa(s.Min())), r.b.metrics.TextWidth(strconv.Itoa(s.Max())))
	width := max(1, track.Width-digits-r.lh()/2)
	mid := p.middle(track) + r.lh()/2
	p.fill(aui.Rect{X: track.X, Y: mid - 1, Width: width, Height: 3}, r.pal.Border)

	thumb := r.pal.Accent
	if r.focused(s) {
		thumb = r.pal.Highlight
	}
	tw := max(4, r.lh()/2)
	pos := int(s.Fraction() * float64(width-tw))
	p.fill(aui.Rect{X: track.X + pos, Y: p.middle(track), Width: tw, Height: r.lh()}, thumb)
	vw := r.b.metrics.TextWidth(value)
	p.text(track.X+track.Width-vw, p.middle(track), vw, value, c)
}

func (r *renderer) drawImage(p painter, img *aui.Image, c internal.RGB) {
	b := img.Bounds()
	if img.Err() == nil {
		if tex, size := r.b.imageTexture(img.Path(), img.PixelSize(), b, img.AutoScale()); tex != nil {
			dst := aui.Rect{X: b.X + (b.Width-size.Width)/2, Y: b.Y + (b.Height-size.Height)/2, Width: size.Width, Height: size.Height}
			p.copy(tex, dst)
			return
		}
	}
	p.frame(b, r.pal.Border, 1)
	p.centered(b, p.middle(b), img.Placeholder(), c)
}

// drawRow draws one list row. The hovered row is highlighted only while
// the list has focus.
func (r *renderer) drawRow(p painter, content aui.Rect, row int, label string, hovered, selected, focused bool, c internal.RGB) {
	rr := r.rowRect(content, row)
	switch {
	case hovered && focused:
		p.fill(rr, r.pal.Highlight)
		c = r.pal.HighlightedText
	case selected:
		c = r.pal.Accent
	}
	p.text(rr.X, rr.Y, rr.Width, label, c)
}

// checkPrefix draws a check indicator at the start of a row and returns
// the x after it.
func (r *renderer) checkPrefix(p painter, content aui.Rect, row, x int, on bool) int {
	rr := r.rowRect(content, row)
	r.drawIndicatorAt(p, aui.Rect{X: x, Y: rr.Y, Width: r.b.metrics.IndicatorWidth(), Height: rr.Height}, on, false, "", r.pal.Text)
	return x + r.b.metrics.IndicatorWidth()
}

func (r *renderer) drawSelectionBox(p painter, sb *aui.SelectionBox, c internal.RGB) {
	r.caption(p, sb.Bounds(), sb.Label(), c)
	content := sb.ContentRect()
	frame := outset(content, r.b.metrics.FrameInsets())
	border := r.pal.Border
	if r.focused(sb) {
		border = r.pal.Accent
	}
	r.box(p, frame, "", border, c)
	cp := p.within(content)
	items := sb.Items()
	for row := 0; row < r.rows(content); row++ {
		i := sb.Offset() + row
		if i >= len(items) {
			break
		}
		it := items[i]
		rowContent := content
		if sb.IsMultiSelection() {
			x := r.checkPrefix(cp, content, row, content.X, it.Selected())
			rowContent.X, rowContent.Width = x, content.Width-(x-content.X)
		}
		r.drawRow(cp, rowContent, row, it.Label(), i == sb.Hover(), it.Selected(), r.focused(sb), c)
	}
	r.scrollbar(p, frame, sb.Offset(), r.rows(content), len(items))
}

func (r *renderer) drawComboBox(p painter, cb *aui.ComboBox, c internal.RGB) {
	r.caption(p, cb.Bounds(), cb.Label(), c)
	field := cb.FieldRect()
	arrow := r.lh()
	inner := aui.Rect{X: field.X, Y: field.Y, Width: max(0, field.Width-arrow), Height: field.Height}
	if cb.IsEditable() {
		r.drawField(p, cb, inner, cb.EditText(), cb.Cursor())
	} else {
		bg := r.pal.Background
		if r.focused(cb) {
			bg, c = r.pal.Highlight, r.pal.HighlightedText
		}
		p.fill(inner, bg)
		p.frame(inner, r.pal.Border, 1)
		p.text(inner.X+2, p.middle(inner), inner.Width-4, cb.Value(), c)
	}
	r.arrow(p, aui.Rect{X: field.X + field.Width - arrow, Y: field.Y, Width: arrow, Height: min(field.Height, r.lh())}, r.pal.Accent)
}

// arrow draws a downward triangle centred in rect, one line at a time.
func (r *renderer) arrow(p painter, rect aui.Rect, c internal.RGB) {
	half := rect.Width / 4
	top := rect.Y + rect.Height/2 - half/2
	cx := rect.X + rect.Width/2
	for i := 0; i <= half; i++ {
		w := (half - i) * 2
		p.hline(cx-w/2, top+i, max(1, w), c)
	}
}

func (r *renderer) drawComboPopup(p painter, cb *aui.ComboBox) {
	popup := cb.PopupRect()
	p.fill(popup, r.pal.Background)
	r.box(p, popup, "", r.pal.Accent, r.pal.Text)
	content := popup.Inset(r.b.metrics.FrameInsets())
	cp := p.within(content)
	items := cb.Items()
	for row := 0; row < r.rows(content); row++ {
		i := cb.Offset() + row
		if i >= len(items) {
			break
		}
		r.drawRow(cp, content, row, items[i].Label(), i == cb.Hover(), items[i].Selected(), true, r.pal.Text)
	}
	r.scrollbar(p, popup, cb.Offset(), r.rows(content), len(items))
}

// alignIn returns the x at which text of width w starts in a column.
func alignIn(x, colWidth, w int, align constants.Alignment) int {
	switch align {
	case constants.AlignCenter:
		return x + max(0, (colWidth-w)/2)
	case constants.AlignEnd:
		return x + max(0, colWidth-w)
	default:
		return x
	}
}

func (r *renderer) drawTable(p painter, t *aui.Table, c internal.RGB) {
	border := r.pal.Border
	if r.focused(t) {
		border = r.pal.Accent
	}
	p.frame(t.Bounds(), border, 1)
	header := t.Header()
	widths := t.ColumnWidths(r.b.metrics)
	gap := t.ColumnGap()

	hr := t.HeaderRect()
	hp := p.within(hr)
	x := hr.X
	for i, w := range widths {
		col := header.Column(i)
		label := aui.DisplayLabel(col.Label)
		hp.within(aui.Rect{X: x, Y: hr.Y, Width: w, Height: hr.Height}).
			text(alignIn(x, w, r.b.metrics.TextWidth(label), col.Alignment), hr.Y, w, label, r.pal.Accent)
		x += w + gap
	}
	p.hline(hr.X, hr.Y+hr.Height-1, hr.Width, r.pal.Border)

	content := t.ContentRect()
	cp := p.within(content)
	items := t.Items()
	for row := 0; row < r.rows(content); row++ {
		i := t.Offset() + row
		if i >= len(items) {
			break
		}
		ti := items[i]
		hovered := i == t.Hover() && r.focused(t)
		rr := r.rowRect(content, row)
		rowColor := c
		switch {
		case hovered:
			cp.fill(rr, r.pal.Highlight)
			rowColor = r.pal.HighlightedText
		case ti.Selected():
			rowColor = r.pal.Accent
		}
		x := content.X
		for ci, w := range widths {
			cell := ti.Cell(ci)
			colRect := aui.Rect{X: x, Y: rr.Y, Width: w, Height: rr.Height}
			if cell != nil {
				if cell.IsCheckbox() {
					size := r.lh() * 3 / 4
					r.drawIndicatorAt(cp.within(colRect), aui.Rect{X: alignIn(x, w, size, header.Column(ci).Alignment), Y: rr.Y, Width: size, Height: rr.Height}, cell.Checked(), false, "", rowColor)
				} else {
					label := cell.Label()
					cp.within(colRect).text(alignIn(x, w, r.b.metrics.TextWidth(label), header.Column(ci).Alignment), rr.Y, w, label, rowColor)
				}
				if hovered && ci == t.CurrentColumn() {
					cp.hline(x, rr.Y+rr.Height-2, w, rowColor)
				}
			}
			x += w + gap
		}
	}
	r.scrollbar(p, t.Bounds(), t.Offset(), r.rows(content), len(items))
}

func (r *renderer) drawTree(p painter, t *aui.Tree, c internal.RGB) {
	r.caption(p, t.Bounds(), t.Label(), c)
	content := t.ContentRect()
	frame := outset(content, r.b.metrics.FrameInsets())
	border := r.pal.Border
	if r.focused(t) {
		border = r.pal.Accent
	}
	r.box(p, frame, "", border, c)
	indent := t.IndentWidth(r.b.metrics)
	current := t.CurrentItem()
	visible := t.VisibleItems()
	cp := p.within(content)
	for row := 0; row < r.rows(content); row++ {
		i := t.Offset() + row
		if i >= len(visible) {
			break
		}
		n := visible[i]
		expander := constants.GlyphTreeLeaf
		switch {
		case n.HasChildren() && n.IsOpen():
			expander = constants.GlyphTreeOpen
		case n.HasChildren():
			expander = constants.GlyphTreeClosed
		}
		rr := r.rowRect(content, row)
		tc := c
		switch {
		case n == current && r.focused(t):
			cp.fill(rr, r.pal.Highlight)
			tc = r.pal.HighlightedText
		case n.Selected():
			tc = r.pal.Accent
		}
		x := rr.X + n.Depth()*indent
		x += cp.text(x, rr.Y, rr.Width-(x-rr.X), expander+" ", tc)
		if t.IsMultiSelection() {
			x = r.checkPrefix(cp, content, row, x, n.Selected())
		}
		cp.text(x, rr.Y, rr.Width-(x-rr.X), n.Label(), tc)
	}
	r.scrollbar(p, frame, t.Offset(), r.rows(content), len(visible))
}

func (r *renderer) drawMenuBar(p painter, mb *aui.MenuBar, c internal.RGB) {
	p.fill(mb.Bounds(), r.pal.Background)
	b := mb.Bounds()
	p.hline(b.X, b.Y+b.Height-1, b.Width, r.pal.Border)
	titles := mb.TitleRects()
	current := mb.CurrentMenu()
	for i, m := range mb.VisibleMenus() {
		if i >= len(titles) {
			break
		}
		tr := titles[i]
		tc := c
		if m == current && (r.focused(mb) || mb.IsExpanded()) {
			p.fill(tr, r.pal.Highlight)
			tc = r.pal.HighlightedText
		}
		p.centered(tr, p.middle(tr), aui.DisplayLabel(m.Label()), tc)
	}
}

func (r *renderer) drawMenuPopups(p painter, mb *aui.MenuBar) {
	in := r.b.metrics.FrameInsets()
	for li, lvl := range mb.OpenPath() {
		popup := mb.PopupRect(li)
		if popup.Width == 0 {
			continue
		}
		p.fill(popup, r.pal.Background)
		p.frame(popup, r.pal.Accent, 1)
		content := popup.Inset(in)
		cp := p.within(content)
		kids := lvl.Menu.VisibleChildren()
		for row := 0; row < r.rows(content); row++ {
			i := lvl.Offset + row
			if i >= len(kids) {
				break
			}
			it := kids[i]
			rr := r.rowRect(content, row)
			if it.IsSeparator() {
				p.hline(popup.X+1, rr.Y+rr.Height/2, popup.Width-2, r.pal.Border)
				continue
			}
			c := r.text(it.Enabled())
			if i == lvl.Selected {
				cp.fill(rr, r.pal.Highlight)
				c = r.pal.HighlightedText
			}
			cp.text(rr.X, rr.Y, rr.Width, aui.DisplayLabel(it.Label()), c)
			if it.IsMenu() {
				r.submenuMark(cp, aui.Rect{X: rr.X + rr.Width - r.lh()/2, Y: rr.Y, Width: r.lh() / 2, Height: rr.Height}, c)
			}
		}
		r.scrollbar(p, popup, lvl.Offset, r.rows(content), len(kids))
	}
}

// submenuMark draws a right-pointing triangle in rect.
func (r *renderer) submenuMark(p painter, rect aui.Rect, c internal.RGB) {
	half := rect.Width / 2
	cy := rect.Y + rect.Height/2
	for i := 0; i < half; i++ {
		h := (half - i) * 2
		p.vline(rect.X+i, cy-h/2, max(1, h), c)
	}
}

func (r *renderer) drawDumbTab(p painter, dt *aui.DumbTab, c internal.RGB) {
	current := dt.CurrentIndex()
	for i, it := range dt.Items() {
		tr := dt.TabRect(i)
		tc := c
		switch {
		case i == current && r.focused(dt):
			p.fill(tr, r.pal.Highlight)
			tc = r.pal.HighlightedText
		case i == current:
			p.hline(tr.X, tr.Y+tr.Height-2, tr.Width, r.pal.Accent)
			p.hline(tr.X, tr.Y+tr.Height-1, tr.Width, r.pal.Accent)
			tc = r.pal.Accent
		}
		p.centered(tr, p.middle(tr), aui.DisplayLabel(it.Label()), tc)
	}
	r.box(p, outset(dt.ContentRect(), r.b.metrics.FrameInsets()), "", r.pal.Border, c)
	r.children(p, dt)
}

// overlay draws the popup of the focused widget above everything else.
func (r *renderer) overlay(p painter) {
	switch v := r.focus.(type) {
	case *aui.ComboBox:
		if v.IsExpanded() && v.Visible() {
			r.drawComboPopup(p, v)
		}
	case *aui.MenuBar:
		if v.IsExpanded() && v.Visible() {
			r.drawMenuPopups(p, v)
		}
	}
}

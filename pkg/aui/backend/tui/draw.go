package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// renderer draws one dialog's widget tree.
type renderer struct {
	b      *Backend
	st     styles
	focus  aui.Widget
	active bool // topmost dialog; only it shows focus and the cursor
}

func (r *renderer) focused(w aui.Widget) bool {
	return r.active && w == r.focus
}

func (r *renderer) check(on bool) string {
	if on {
		return "[" + constants.GlyphChecked + "] "
	}
	return "[" + constants.GlyphUnchecked + "] "
}

func (r *renderer) radio(on bool) string {
	if on {
		return "(" + constants.GlyphRadioOn + ") "
	}
	return "( ) "
}

func (r *renderer) drawDialog(c canvas, d *aui.Dialog) {
	bounds := d.Bounds()
	c.fill(bounds, r.st.normal)
	if d.DialogKind() == constants.DialogPopup {
		c.box(bounds, r.st.border, d.Title(), r.st.accent.Bold(true))
	}
	r.draw(c, d.Root())
	r.overlay(c)
}

func (r *renderer) children(c canvas, w aui.Widget) {
	for _, child := range w.Children() {
		r.draw(c, child)
	}
}

// caption draws a widget's label rows at the top of rect.
func (r *renderer) caption(c canvas, rect aui.Rect, label string, st tcell.Style) {
	for i, line := range internal.PlainLines(aui.DisplayLabel(label)) {
		c.text(rect.X, rect.Y+i, rect.Width, line, st)
	}
}

func (r *renderer) draw(c canvas, w aui.Widget) {
	if w == nil || !w.Visible() {
		return
	}
	bounds := w.Bounds()
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}
	c = c.within(bounds)
	text := r.st.text(w.Enabled())

	switch v := w.(type) {
	case *aui.Label:
		r.drawLabel(c, v, text)
	case *aui.PushButton:
		r.drawButton(c, v, text)
	case *aui.CheckBox:
		r.drawIndicator(c, v, r.check(v.Value())+aui.DisplayLabel(v.Label()), text)
	case *aui.RadioButton:
		r.drawIndicator(c, v, r.radio(v.Value())+aui.DisplayLabel(v.Label()), text)
	case *aui.Frame:
		c.box(bounds, r.st.border, aui.DisplayLabel(v.Label()), r.st.accent)
		r.children(c, w)
	case *aui.CheckBoxFrame:
		title := r.check(v.Checked()) + aui.DisplayLabel(v.Label())
		st := r.st.accent
		if r.focused(v) {
			st = r.st.focus
		}
		c.box(bounds, r.st.border, title, st)
		r.children(c, w)
	case *aui.InputField:
		r.caption(c, bounds, v.Label(), text)
		r.drawField(c, v, v.FieldRect(), v.DisplayText(), v.Cursor())
	case *aui.IntField:
		r.caption(c, bounds, v.Label(), text)
		r.drawField(c, v, v.FieldRect(), v.Text(), v.Cursor())
	case *aui.DateField:
		r.caption(c, bounds, v.Label(), text)
		r.drawField(c, v, v.FieldRect(), v.Text(), v.Cursor())
	case *aui.TimeField:
		r.caption(c, bounds, v.Label(), text)
		r.drawField(c, v, v.FieldRect(), v.Text(), v.Cursor())
	case *aui.ComboBox:
		r.drawComboBox(c, v, text)
	case *aui.MultiLineEdit:
		r.caption(c, bounds, v.Label(), text)
		r.drawLines(c, v, v.ContentRect(), v.Lines(), v.Offset(), text)
		if r.focused(v) {
			line, col := v.CursorPosition()
			r.showCursor(v.ContentRect(), line-v.Offset(), v.Lines(), line, col)
		}
	case *aui.LogView:
		r.caption(c, bounds, v.Label(), text)
		r.drawLines(c, v, v.ContentRect(), v.Lines(), v.Offset(), text)
	case *aui.RichText:
		r.drawRichText(c, v, text)
	case *aui.ProgressBar:
		r.drawProgress(c, v, text)
	case *aui.Slider:
		r.drawSlider(c, v, text)
	case *aui.Image:
		r.drawImage(c, v, text)
	case *aui.SelectionBox:
		r.drawSelectionBox(c, v, text)
	case *aui.Table:
		r.drawTable(c, v, text)
	case *aui.Tree:
		r.drawTree(c, v, text)
	case *aui.MenuBar:
		r.drawMenuBar(c, v, text)
	case *aui.DumbTab:
		r.drawDumbTab(c, v, text)
	case *aui.Paned:
		r.children(c, w)
		div := v.DividerRect()
		if v.Dimension() == constants.Horizontal {
			c.vline(div.X+div.Width/2, div.Y, div.Height, r.st.border)
		} else {
			c.hline(div.X, div.Y+div.Height/2, div.Width, r.st.border)
		}
	case *aui.Spacing:
	default:
		r.children(c, w)
	}
}

func (r *renderer) drawLabel(c canvas, l *aui.Label, st tcell.Style) {
	if l.IsHeading() && l.Enabled() {
		st = r.st.accent.Bold(true)
	}
	b := l.Bounds()
	for i, line := range l.Lines() {
		c.text(b.X, b.Y+i, b.Width, line, st)
	}
}

func (r *renderer) drawButton(c canvas, btn *aui.PushButton, st tcell.Style) {
	b := btn.Bounds()
	if r.focused(btn) {
		st = r.st.focus
	}
	if btn.IsDefault() {
		st = st.Bold(true)
	}
	label := "[ " + aui.DisplayLabel(btn.Label()) + " ]"
	y := b.Y + b.Height/2
	c.fill(aui.Rect{X: b.X, Y: y, Width: b.Width, Height: 1}, r.st.normal)
	c.centered(b, y, label, st)
}

func (r *renderer) drawIndicator(c canvas, w aui.Widget, label string, st tcell.Style) {
	if r.focused(w) {
		st = r.st.focus
	}
	b := w.Bounds()
	c.text(b.X, b.Y, b.Width, label, st)
}

// drawField draws a one-line text field scrolled so the cursor is visible.
func (r *renderer) drawField(c canvas, w aui.Widget, field aui.Rect, value string, cursor int) {
	st := r.st.field
	if !w.Enabled() {
		st = r.st.disabled
	}
	c.fill(aui.Rect{X: field.X, Y: field.Y, Width: field.Width, Height: 1}, st)
	runes := []rune(value)
	cursor = min(max(cursor, 0), len(runes))
	start := 0
	for runewidth.StringWidth(string(runes[start:cursor])) >= field.Width && start < cursor {
		start++
	}
	c.text(field.X, field.Y, field.Width, string(runes[start:]), st)
	if r.focused(w) {
		r.b.screen.ShowCursor(field.X+runewidth.StringWidth(string(runes[start:cursor])), field.Y)
	}
}

func (r *renderer) showCursor(content aui.Rect, row int, lines []string, line, col int) {
	if row < 0 || row >= content.Height || line >= len(lines) {
		return
	}
	runes := []rune(lines[line])
	col = min(max(col, 0), len(runes))
	x := content.X + runewidth.StringWidth(string(runes[:col]))
	if x < content.X+content.Width {
		r.b.screen.ShowCursor(x, content.Y+row)
	}
}

// drawLines draws a bordered, scrolled block of text lines.
func (r *renderer) drawLines(c canvas, w aui.Widget, content aui.Rect, lines []string, offset int, st tcell.Style) {
	border := r.st.border
	if r.focused(w) {
		border = r.st.accent
	}
	c.box(outset(content, r.b.metrics.FrameInsets()), border, "", st)
	for row := 0; row < content.Height; row++ {
		i := offset + row
		if i >= len(lines) {
			break
		}
		c.text(content.X, content.Y+row, content.Width, lines[i], st)
	}
	r.scrollMarks(c, outset(content, r.b.metrics.FrameInsets()), offset, content.Height, len(lines))
}

// scrollMarks shows arrows on the right border when rows are hidden.
func (r *renderer) scrollMarks(c canvas, frame aui.Rect, offset, rows, total int) {
	x := frame.X + frame.Width - 1
	if offset > 0 {
		c.text(x, frame.Y, 1, r.b.glyph(constants.GlyphScrollUp, constants.ASCIIScrollUp), r.st.accent)
	}
	if offset+rows < total {
		c.text(x, frame.Y+frame.Height-1, 1, r.b.glyph(constants.GlyphScrollDown, constants.ASCIIScrollDown), r.st.accent)
	}
}

func (r *renderer) drawRichText(c canvas, rt *aui.RichText, st tcell.Style) {
	content := rt.ContentRect()
	lines := rt.Lines()
	r.drawLines(c, rt, content, lines, rt.Offset(), st)

	// Underline link texts; the hovered one is highlighted.
	hovered := rt.HoveredLink()
	for i, link := range rt.Links() {
		if link.Text == "" {
			continue
		}
		linkStyle := r.st.accent.Underline(true)
		if i == hovered && r.focused(rt) {
			linkStyle = r.st.focus
		}
		for row := 0; row < content.Height; row++ {
			li := rt.Offset() + row
			if li >= len(lines) {
				break
			}
			if col := strings.Index(lines[li], link.Text); col >= 0 {
				x := content.X + runewidth.StringWidth(lines[li][:col])
				c.within(content).text(x, content.Y+row, content.Width-(x-content.X), link.Text, linkStyle)
				break
			}
		}
	}
}

func (r *renderer) drawProgress(c canvas, p *aui.ProgressBar, st tcell.Style) {
	r.caption(c, p.Bounds(), p.Label(), st)
	bar := p.BarRect()
	filled := int(p.Fraction() * float64(bar.Width))
	glyph := r.b.glyph(constants.GlyphProgress, constants.ASCIIProgress)
	for x := 0; x < bar.Width; x++ {
		if x < filled {
			c.text(bar.X+x, bar.Y, 1, glyph, r.st.accent)
		} else {
			c.set(bar.X+x, bar.Y, tcell.RuneBullet, r.st.border)
		}
	}
	c.centered(bar, bar.Y, fmt.Sprintf(" %d%% ", int(p.Fraction()*100)), st)
}

func (r *renderer) drawSlider(c canvas, s *aui.Slider, st tcell.Style) {
	r.caption(c, s.Bounds(), s.Label(), st)
	track := s.TrackRect()
	value := strconv.Itoa(s.Value())
	digits := max(len(strconv.Itoa(s.Min())), len(strconv.Itoa(s.Max())))
	width := max(1, track.Width-digits-1)
	c.hline(track.X, track.Y, width, r.st.border)
	thumbStyle := r.st.accent
	if r.focused(s) {
		thumbStyle = r.st.focus
	}
	pos := int(s.Fraction() * float64(width-1))
	c.text(track.X+pos, track.Y, 1, r.b.glyph(constants.GlyphSliderThumb, constants.ASCIISlider), thumbStyle)
	c.text(track.X+width+1+digits-len(value), track.Y, len(value), value, st)
}

func (r *renderer) drawImage(c canvas, img *aui.Image, st tcell.Style) {
	b := img.Bounds()
	if b.Height >= 3 && b.Width >= 3 {
		c.box(b, r.st.border, "", st)
	}
	label := r.b.glyph(constants.GlyphImage, constants.ASCIIImage) + " " + img.Placeholder()
	c.centered(b, b.Y+b.Height/2, label, st)
}

// drawRow draws one list row. The hovered row is highlighted only while
// the list has focus.
func (r *renderer) drawRow(c canvas, content aui.Rect, row int, label string, hovered, selected, focused bool, st tcell.Style) {
	y := content.Y + row
	switch {
	case hovered && focused:
		st = r.st.focus
	case selected:
		st = r.st.accent.Bold(true)
	}
	c.fill(aui.Rect{X: content.X, Y: y, Width: content.Width, Height: 1}, st)
	c.text(content.X, y, content.Width, label, st)
}

func (r *renderer) drawSelectionBox(c canvas, sb *aui.SelectionBox, st tcell.Style) {
	r.caption(c, sb.Bounds(), sb.Label(), st)
	content := sb.ContentRect()
	frame := outset(content, r.b.metrics.FrameInsets())
	c.box(frame, r.st.border, "", st)
	items := sb.Items()
	for row := 0; row < content.Height; row++ {
		i := sb.Offset() + row
		if i >= len(items) {
			break
		}
		it := items[i]
		label := it.Label()
		if sb.IsMultiSelection() {
			label = r.check(it.Selected()) + label
		}
		r.drawRow(c, content, row, label, i == sb.Hover(), it.Selected(), r.focused(sb), st)
	}
	r.scrollMarks(c, frame, sb.Offset(), content.Height, len(items))
}

func (r *renderer) drawComboBox(c canvas, cb *aui.ComboBox, st tcell.Style) {
	r.caption(c, cb.Bounds(), cb.Label(), st)
	field := cb.FieldRect()
	arrow := r.b.glyph(constants.GlyphScrollDown, constants.ASCIIScrollDown)
	inner := aui.Rect{X: field.X, Y: field.Y, Width: max(0, field.Width-2), Height: 1}
	if cb.IsEditable() {
		r.drawField(c, cb, inner, cb.EditText(), cb.Cursor())
	} else {
		fieldStyle := r.st.field
		if r.focused(cb) {
			fieldStyle = r.st.focus
		} else if !cb.Enabled() {
			fieldStyle = r.st.disabled
		}
		c.fill(inner, fieldStyle)
		c.text(inner.X, inner.Y, inner.Width, cb.Value(), fieldStyle)
	}
	c.text(field.X+field.Width-1, field.Y, 1, arrow, r.st.accent)
}

func (r *renderer) drawComboPopup(c canvas, cb *aui.ComboBox) {
	popup := cb.PopupRect()
	c.fill(popup, r.st.normal)
	c.box(popup, r.st.accent, "", r.st.normal)
	content := popup.Inset(r.b.metrics.FrameInsets())
	items := cb.Items()
	for row := 0; row < content.Height; row++ {
		i := cb.Offset() + row
		if i >= len(items) {
			break
		}
		r.drawRow(c, content, row, items[i].Label(), i == cb.Hover(), items[i].Selected(), true, r.st.normal)
	}
	r.scrollMarks(c, popup, cb.Offset(), content.Height, len(items))
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

func (r *renderer) drawTable(c canvas, t *aui.Table, st tcell.Style) {
	c.box(t.Bounds(), r.st.border, "", st)
	header := t.Header()
	widths := t.ColumnWidths(r.b.metrics)
	gap := t.ColumnGap()

	hr := t.HeaderRect()
	x := hr.X
	for i, w := range widths {
		col := header.Column(i)
		label := aui.DisplayLabel(col.Label)
		c.within(hr).text(alignIn(x, w, runewidth.StringWidth(label), col.Alignment), hr.Y, w, label, r.st.accent.Bold(true))
		x += w + gap
	}

	content := t.ContentRect()
	items := t.Items()
	for row := 0; row < content.Height; row++ {
		i := t.Offset() + row
		if i >= len(items) {
			break
		}
		ti := items[i]
		hovered := i == t.Hover() && r.focused(t)
		rowStyle := st
		switch {
		case hovered:
			rowStyle = r.st.focus
		case ti.Selected():
			rowStyle = r.st.accent.Bold(true)
		}
		y := content.Y + row
		rc := c.within(content)
		rc.fill(aui.Rect{X: content.X, Y: y, Width: content.Width, Height: 1}, rowStyle)
		x := content.X
		for ci, w := range widths {
			cell := ti.Cell(ci)
			if cell != nil {
				label := cell.Label()
				if cell.IsCheckbox() {
					label = strings.TrimSpace(r.check(cell.Checked()))
				}
				cellStyle := rowStyle
				if hovered && ci == t.CurrentColumn() {
					cellStyle = cellStyle.Underline(true)
				}
				rc.text(alignIn(x, w, runewidth.StringWidth(label), header.Column(ci).Alignment), y, w, label, cellStyle)
			}
			x += w + gap
		}
	}
	r.scrollMarks(c, t.Bounds(), t.Offset(), content.Height, len(items))
}

func (r *renderer) drawTree(c canvas, t *aui.Tree, st tcell.Style) {
	r.caption(c, t.Bounds(), t.Label(), st)
	content := t.ContentRect()
	frame := outset(content, r.b.metrics.FrameInsets())
	c.box(frame, r.st.border, "", st)
	indent := t.IndentWidth(r.b.metrics)
	current := t.CurrentItem()
	visible := t.VisibleItems()
	for row := 0; row < content.Height; row++ {
		i := t.Offset() + row
		if i >= len(visible) {
			break
		}
		n := visible[i]
		expander := constants.GlyphTreeLeaf
		switch {
		case n.HasChildren() && n.IsOpen():
			expander = r.b.glyph(constants.GlyphTreeOpen, constants.ASCIITreeOpen)
		case n.HasChildren():
			expander = r.b.glyph(constants.GlyphTreeClosed, constants.ASCIITreeClosed)
		}
		label := strings.Repeat(" ", n.Depth()*indent) + expander + " " + n.Label()
		if t.IsMultiSelection() {
			label = strings.Repeat(" ", n.Depth()*indent) + expander + " " + r.check(n.Selected()) + n.Label()
		}
		r.drawRow(c.within(content), content, row, label, n == current, n.Selected(), r.focused(t), st)
	}
	r.scrollMarks(c, frame, t.Offset(), content.Height, len(visible))
}

func (r *renderer) drawMenuBar(c canvas, mb *aui.MenuBar, st tcell.Style) {
	c.fill(mb.Bounds(), st)
	titles := mb.TitleRects()
	current := mb.CurrentMenu()
	for i, m := range mb.VisibleMenus() {
		if i >= len(titles) {
			break
		}
		tr := titles[i]
		titleStyle := st
		if m == current && (r.focused(mb) || mb.IsExpanded()) {
			titleStyle = r.st.focus
		}
		c.fill(tr, titleStyle)
		c.centered(tr, tr.Y, aui.DisplayLabel(m.Label()), titleStyle)
	}
}

func (r *renderer) drawMenuPopups(c canvas, mb *aui.MenuBar) {
	in := r.b.metrics.FrameInsets()
	submenu := r.b.glyph(constants.GlyphSubmenu, constants.ASCIISubmenu)
	for li, lvl := range mb.OpenPath() {
		popup := mb.PopupRect(li)
		if popup.Width == 0 {
			continue
		}
		c.fill(popup, r.st.normal)
		c.box(popup, r.st.accent, "", r.st.normal)
		content := popup.Inset(in)
		kids := lvl.Menu.VisibleChildren()
		for row := 0; row < content.Height; row++ {
			i := lvl.Offset + row
			if i >= len(kids) {
				break
			}
			it := kids[i]
			y := content.Y + row
			if it.IsSeparator() {
				c.hline(popup.X+1, y, popup.Width-2, r.st.border)
				c.set(popup.X, y, tcell.RuneLTee, r.st.accent)
				c.set(popup.X+popup.Width-1, y, tcell.RuneRTee, r.st.accent)
				continue
			}
			st := r.st.text(it.Enabled())
			if i == lvl.Selected {
				st = r.st.focus
			}
			c.fill(aui.Rect{X: content.X, Y: y, Width: content.Width, Height: 1}, st)
			c.text(content.X, y, content.Width, aui.DisplayLabel(it.Label()), st)
			if it.IsMenu() {
				c.text(content.X+content.Width-1, y, 1, submenu, st)
			}
		}
		r.scrollMarks(c, popup, lvl.Offset, content.Height, len(kids))
	}
}

func (r *renderer) drawDumbTab(c canvas, dt *aui.DumbTab, st tcell.Style) {
	current := dt.CurrentIndex()
	for i, it := range dt.Items() {
		tr := dt.TabRect(i)
		tabStyle := st
		switch {
		case i == current && r.focused(dt):
			tabStyle = r.st.focus
		case i == current:
			tabStyle = r.st.accent.Bold(true)
		}
		c.fill(tr, tabStyle)
		c.centered(tr, tr.Y, aui.DisplayLabel(it.Label()), tabStyle)
	}
	c.box(outset(dt.ContentRect(), r.b.metrics.FrameInsets()), r.st.border, "", st)
	r.children(c, dt)
}

// overlay draws the popup of the focused widget above everything else.
func (r *renderer) overlay(c canvas) {
	switch v := r.focus.(type) {
	case *aui.ComboBox:
		if v.IsExpanded() && v.Visible() {
			r.drawComboPopup(c, v)
		}
	case *aui.MenuBar:
		if v.IsExpanded() && v.Visible() {
			r.drawMenuPopups(c, v)
		}
	}
}

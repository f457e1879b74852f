package aui

import (
	"fmt"

	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// Table is a list of rows under a fixed header.
//
// A header with a checkbox column forces single selection. Space toggles
// the check cell under the cursor (or the row's first check cell) and
// posts value-changed; Enter selects the row and posts selection-changed.
// Left and Right move the column cursor; '<' and '>' resize that column.
type Table struct {
	widgetBase
	viewport
	header      *TableHeader
	items       []*TableItem
	sel         selection
	column      int
	widths      []int // explicit widths in backend units, 0 for automatic
	changedItem *TableItem
	content     Rect
	lineH       int
	gap         int
}

func newTable(parent Widget, header *TableHeader, multi bool) (*Table, error) {
	if header == nil {
		header = NewTableHeader()
	}
	t := &Table{viewport: newViewport(), header: header, widths: make([]int, header.Columns())}
	t.sel.multi = multi && !header.HasCheckboxColumn()
	t.focusable = true
	t.stretch = [2]bool{true, true}
	if err := t.init(t, "Table", parent, 0); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Table) Header() *TableHeader { return t.header }

// AddItem takes ownership of a row. A row that already belongs to a widget
// or does not fit the header (too many cells, or a cell of the wrong kind
// for its column) is refused with ErrInvalidValue.
func (t *Table) AddItem(ti *TableItem) error {
	if ti.owner != nil {
		return fmt.Errorf("%w: row already belongs to a widget", ErrInvalidValue)
	}
	if len(ti.cells) > t.header.Columns() {
		return fmt.Errorf("%w: row has %d cells, header has %d columns", ErrInvalidValue, len(ti.cells), t.header.Columns())
	}
	for i, c := range ti.cells {
		if err := t.header.checkCell(i, c); err != nil {
			return err
		}
	}

	preselected := ti.selected
	ti.selected = false
	ti.adopt(t, len(t.items))
	t.items = append(t.items, ti)
	if preselected {
		t.sel.set(ti, true)
	}
	if t.hover < 0 {
		t.hover = 0
	}
	t.changed(true)
	return nil
}

// AddItems adds rows in order and stops at the first refused row.
func (t *Table) AddItems(items ...*TableItem) error {
	for _, ti := range items {
		if err := t.AddItem(ti); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) Items() []*TableItem { return append([]*TableItem(nil), t.items...) }

func (t *Table) ItemCount() int { return len(t.items) }

func (t *Table) ItemAt(i int) *TableItem {
	if i < 0 || i >= len(t.items) {
		return nil
	}
	return t.items[i]
}

// SelectItem selects or deselects a row. No event is posted.
func (t *Table) SelectItem(it Selectable, selected bool) {
	i := -1
	if it != nil {
		i = it.Index()
	}
	if i < 0 || i >= len(t.items) || Selectable(t.items[i]) != it {
		internal.GetInternalLogger().Debug("Ignoring selection of a foreign item", "widget", t.kind)
		return
	}
	t.sel.set(it, selected)
	if selected {
		t.moveTo(i, len(t.items))
		t.scrollTo(i, len(t.items))
	}
	t.changed(false)
}

func (t *Table) DeselectAllItems() {
	t.sel.clear()
	t.changed(false)
}

func (t *Table) SelectedItem() Selectable { return t.sel.first() }

func (t *Table) SelectedItems() []Selectable { return t.sel.items() }

// Value is the first text cell of the first selected row.
func (t *Table) Value() string { return t.sel.value() }

func (t *Table) IsMultiSelection() bool { return t.sel.multi }

// SetMultiSelection switches modes. A table with a checkbox column stays
// in single-selection mode.
func (t *Table) SetMultiSelection(multi bool) {
	if multi && t.header.HasCheckboxColumn() {
		internal.GetInternalLogger().Debug("Checkbox columns force single selection")
		multi = false
	}
	if t.sel.multi == multi {
		return
	}
	t.sel.setMulti(multi)
	t.changed(true)
}

// ChangedItem is the row whose check cell the user toggled last.
func (t *Table) ChangedItem() *TableItem { return t.changedItem }

// CurrentColumn is the column under the cursor.
func (t *Table) CurrentColumn() int { return t.column }

func (t *Table) HoveredItem() *TableItem { return t.ItemAt(t.hover) }

func (t *Table) DeleteAllItems() {
	for _, ti := range t.items {
		ti.release()
	}
	t.items = nil
	t.sel.clear()
	t.changedItem = nil
	t.reset()
	t.changed(true)
}

// SetColumnWidth fixes a column's width in backend units; 0 goes back to
// automatic sizing.
func (t *Table) SetColumnWidth(col, units int) {
	if col < 0 || col >= len(t.widths) {
		return
	}
	t.widths[col] = max(0, units)
	t.changed(true)
}

// ColumnWidths is the width of every column. Header and rows are drawn
// from the same widths so they always line up.
func (t *Table) ColumnWidths(m Metrics) []int {
	out := make([]int, t.header.Columns())
	for i := range out {
		if t.widths[i] > 0 {
			out[i] = t.widths[i]
			continue
		}
		col := t.header.Column(i)
		w := m.TextWidth(col.Label)
		if col.Checkbox {
			w = max(w, m.IndicatorWidth())
		}
		for _, ti := range t.items {
			if c := ti.Cell(i); c != nil && !c.check {
				w = max(w, m.TextWidth(c.label))
			}
		}
		out[i] = max(1, w)
	}
	return out
}

// ColumnGap is the space between columns.
func (t *Table) ColumnGap() int { return t.gap }

// HeaderRect is the header line; ContentRect the rows below it.
func (t *Table) HeaderRect() Rect {
	inner := framedContent(t.metrics(), t.bounds)
	return Rect{X: inner.X, Y: inner.Y, Width: inner.Width, Height: min(t.lineH, inner.Height)}
}

func (t *Table) ContentRect() Rect { return t.content }

func (t *Table) itemChanged(Selectable) { t.changed(true) }

func (t *Table) PreferredSize(m Metrics) Size {
	in := m.FrameInsets()
	gap := max(1, m.Spacing())
	w := internal.SumWithSpacing(gap, t.ColumnWidths(m)...)
	rows := min(max(1, len(t.items)), defaultListRows)
	return Size{
		Width:  w + in.Horizontal() + m.ScrollbarWidth(),
		Height: (rows+1)*m.LineHeight() + in.Vertical(),
	}
}

func (t *Table) layout(m Metrics, r Rect) {
	t.bounds = r
	t.lineH = max(1, m.LineHeight())
	t.gap = max(1, m.Spacing())
	inner := r.Inset(m.FrameInsets())
	t.content = Rect{X: inner.X, Y: inner.Y + t.lineH, Width: inner.Width, Height: max(0, inner.Height-t.lineH)}
	t.rows = t.content.Height / t.lineH
	t.clamp(len(t.items))
}

func (t *Table) checkColumnFor(ti *TableItem) int {
	if t.header.IsCheckboxColumn(t.column) && ti.Cell(t.column) != nil {
		return t.column
	}
	for i := range t.header.Columns() {
		if t.header.IsCheckboxColumn(i) && ti.Cell(i) != nil {
			return i
		}
	}
	return -1
}

// toggleCheck flips a check cell as the user would.
func (t *Table) toggleCheck(ti *TableItem, col int) {
	c := ti.Cell(col)
	if c == nil || !c.check {
		return
	}
	c.checked = !c.checked
	t.changedItem = ti
	t.changed(false)
	t.postWidgetEvent(constants.ReasonValueChanged)
}

func (t *Table) pick() {
	ti := t.HoveredItem()
	if ti == nil {
		return
	}
	if t.sel.multi {
		t.sel.toggle(ti)
	} else {
		t.sel.set(ti, true)
	}
	t.changed(false)
	t.postWidgetEvent(constants.ReasonSelectionChanged)
}

func (t *Table) handleKey(in Input) bool {
	cols := t.header.Columns()
	switch in.Key {
	case constants.KeyLeft:
		t.column = max(0, t.column-1)
		t.changed(false)
		return true
	case constants.KeyRight:
		t.column = min(max(0, cols-1), t.column+1)
		t.changed(false)
		return true
	case constants.KeySpace:
		ti := t.HoveredItem()
		if ti == nil {
			return false
		}
		if col := t.checkColumnFor(ti); col >= 0 {
			t.toggleCheck(ti, col)
		} else {
			t.pick()
		}
		return true
	case constants.KeyEnter:
		if len(t.items) == 0 {
			return false
		}
		t.pick()
		return true
	case constants.KeyRune:
		if m := t.metrics(); m != nil && (in.Rune == '<' || in.Rune == '>') && t.column < cols {
			w := t.ColumnWidths(m)[t.column]
			if in.Rune == '<' {
				t.SetColumnWidth(t.column, max(1, w-1))
			} else {
				t.SetColumnWidth(t.column, w+1)
			}
			return true
		}
		return false
	}
	if t.navigate(in.Key, len(t.items)) {
		t.changed(false)
		return true
	}
	return false
}

// handleClick hovers the clicked row; a click on a check cell toggles it,
// anywhere else selects the row.
func (t *Table) handleClick(x, y int) bool {
	row := t.rowAt(t.content, y, t.lineH, len(t.items))
	if row < 0 {
		return false
	}
	t.hover = row
	if m := t.metrics(); m != nil {
		pos := t.content.X
		for i, w := range t.ColumnWidths(m) {
			if x >= pos && x < pos+w {
				t.column = i
				break
			}
			pos += w + t.gap
		}
	}
	ti := t.items[row]
	if t.header.IsCheckboxColumn(t.column) && ti.Cell(t.column) != nil {
		t.toggleCheck(ti, t.column)
	} else {
		t.pick()
	}
	return true
}

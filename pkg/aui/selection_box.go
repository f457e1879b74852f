package aui

import (
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

const defaultListRows = 5

// SelectionBox is a scrolling list with single or multi selection.
//
// Enter, Space or a click sets the hovered item (single mode) or toggles
// it (multi mode) and posts a selection-changed event.
type SelectionBox struct {
	widgetBase
	viewport
	label   string
	items   []*Item
	sel     selection
	content Rect
	lineH   int
}

func newSelectionBox(parent Widget, label string, multi bool) (*SelectionBox, error) {
	sb := &SelectionBox{viewport: newViewport(), label: label}
	sb.sel.multi = multi
	sb.focusable = true
	sb.stretch = [2]bool{true, true}
	if err := sb.init(sb, "SelectionBox", parent, 0); err != nil {
		return nil, err
	}
	return sb, nil
}

func (sb *SelectionBox) Label() string { return sb.label }

func (sb *SelectionBox) SetLabel(label string) {
	sb.label = label
	sb.changed(true)
}

// AddItem takes ownership of it and assigns its index. An item created
// selected is selected as if picked by the user, without an event. An
// item that already belongs to a widget is ignored.
func (sb *SelectionBox) AddItem(it *Item) {
	if it == nil || it.owner != nil {
		internal.GetInternalLogger().Debug("Ignoring item that is already attached", "widget", sb.kind)
		return
	}
	preselected := it.selected
	it.selected = false
	it.adopt(sb, len(sb.items))
	sb.items = append(sb.items, it)
	if preselected {
		sb.sel.set(it, true)
	}
	if sb.hover < 0 {
		sb.hover = 0
	}
	if preselected {
		sb.moveTo(it.index, len(sb.items))
	}
	sb.changed(true)
}

// AddItems adds each item in order.
func (sb *SelectionBox) AddItems(items ...*Item) {
	for _, it := range items {
		sb.AddItem(it)
	}
}

func (sb *SelectionBox) Items() []*Item { return append([]*Item(nil), sb.items...) }

func (sb *SelectionBox) ItemCount() int { return len(sb.items) }

// ItemAt returns the item with index i, or nil.
func (sb *SelectionBox) ItemAt(i int) *Item {
	if i < 0 || i >= len(sb.items) {
		return nil
	}
	return sb.items[i]
}

func (sb *SelectionBox) owns(it Selectable) bool {
	i := it.Index()
	return i >= 0 && i < len(sb.items) && Selectable(sb.items[i]) == it
}

// SelectItem selects or deselects one of the box's items. No event is
// posted.
func (sb *SelectionBox) SelectItem(it Selectable, selected bool) {
	if it == nil || !sb.owns(it) {
		internal.GetInternalLogger().Debug("Ignoring selection of a foreign item", "widget", sb.kind)
		return
	}
	sb.sel.set(it, selected)
	if selected {
		sb.moveTo(it.Index(), len(sb.items))
		sb.scrollTo(it.Index(), len(sb.items))
	}
	sb.changed(false)
}

// DeselectAllItems clears the selection.
func (sb *SelectionBox) DeselectAllItems() {
	sb.sel.clear()
	sb.changed(false)
}

// SelectedItem is the first selected item, or nil.
func (sb *SelectionBox) SelectedItem() Selectable { return sb.sel.first() }

// SelectedItems returns the selected items in selection order.
func (sb *SelectionBox) SelectedItems() []Selectable { return sb.sel.items() }

// Value is the label of the first selected item, "" if none.
func (sb *SelectionBox) Value() string { return sb.sel.value() }

// DeleteAllItems drops every item and all selection state.
func (sb *SelectionBox) DeleteAllItems() {
	for _, it := range sb.items {
		it.release()
	}
	sb.items = nil
	sb.sel.clear()
	sb.reset()
	sb.changed(true)
}

func (sb *SelectionBox) IsMultiSelection() bool { return sb.sel.multi }

// SetMultiSelection switches modes. Leaving multi mode keeps only the
// first selected item.
func (sb *SelectionBox) SetMultiSelection(multi bool) {
	if sb.sel.multi == multi {
		return
	}
	sb.sel.setMulti(multi)
	sb.changed(true)
}

// HoveredItem is the item under the cursor, or nil.
func (sb *SelectionBox) HoveredItem() *Item { return sb.ItemAt(sb.hover) }

func (sb *SelectionBox) ContentRect() Rect { return sb.content }

func (sb *SelectionBox) itemChanged(Selectable) { sb.changed(true) }

func (sb *SelectionBox) PreferredSize(m Metrics) Size {
	in := m.FrameInsets()
	w := 0
	for _, it := range sb.items {
		w = max(w, m.TextWidth(it.label))
	}
	if sb.sel.multi {
		w += m.IndicatorWidth()
	}
	w = max(w+in.Horizontal()+m.ScrollbarWidth(), m.TextWidth(stripMnemonic(sb.label)))
	rows := min(max(1, len(sb.items)), defaultListRows)
	return Size{Width: w, Height: labelHeight(m, sb.label) + rows*m.LineHeight() + in.Vertical()}
}

func (sb *SelectionBox) layout(m Metrics, r Rect) {
	sb.bounds = r
	_, rest := captioned(m, r, sb.label)
	sb.content = rest.Inset(m.FrameInsets())
	sb.lineH = max(1, m.LineHeight())
	sb.rows = sb.content.Height / sb.lineH
	sb.clamp(len(sb.items))
}

// pick applies the user's choice to the hovered item.
func (sb *SelectionBox) pick() {
	it := sb.HoveredItem()
	if it == nil {
		return
	}
	if sb.sel.multi {
		sb.sel.toggle(it)
	} else {
		sb.sel.set(it, true)
	}
	sb.changed(false)
	sb.postWidgetEvent(constants.ReasonSelectionChanged)
}

func (sb *SelectionBox) handleKey(in Input) bool {
	switch in.Key {
	case constants.KeyEnter, constants.KeySpace:
		if len(sb.items) == 0 {
			return false
		}
		sb.pick()
		return true
	}
	if sb.navigate(in.Key, len(sb.items)) {
		sb.changed(false)
		return true
	}
	return false
}

func (sb *SelectionBox) handleClick(_, y int) bool {
	row := sb.rowAt(sb.content, y, sb.lineH, len(sb.items))
	if row < 0 {
		return false
	}
	sb.hover = row
	sb.pick()
	return true
}

package aui

import (
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

const comboPopupRows = 8

// ComboBox is a one-line field with a drop-down list. An editable combo
// box also takes free text.
type ComboBox struct {
	widgetBase
	viewport
	label    string
	items    []*Item
	sel      selection
	editable bool
	editor   lineEditor
	expanded bool
	field    Rect
	popup    Rect
	lineH    int
}

func newComboBox(parent Widget, label string, editable bool) (*ComboBox, error) {
	cb := &ComboBox{viewport: newViewport(), label: label, editable: editable}
	cb.focusable = true
	cb.stretch[dimIndex(constants.Horizontal)] = true
	if err := cb.init(cb, "ComboBox", parent, 0); err != nil {
		return nil, err
	}
	return cb, nil
}

func (cb *ComboBox) Label() string { return cb.label }

func (cb *ComboBox) SetLabel(label string) {
	cb.label = label
	cb.changed(true)
}

func (cb *ComboBox) IsEditable() bool { return cb.editable }

// AddItem takes ownership of it. The first item, or an item created
// selected, becomes the current value. An item that already belongs to a
// widget is ignored.
func (cb *ComboBox) AddItem(it *Item) {
	if it == nil || it.owner != nil {
		internal.GetInternalLogger().Debug("Ignoring item that is already attached", "widget", cb.kind)
		return
	}
	preselected := it.selected
	it.selected = false
	it.adopt(cb, len(cb.items))
	cb.items = append(cb.items, it)
	if preselected || cb.sel.first() == nil {
		cb.sel.set(it, true)
		cb.syncEditor()
	}
	cb.changed(true)
}

func (cb *ComboBox) AddItems(items ...*Item) {
	for _, it := range items {
		cb.AddItem(it)
	}
}

func (cb *ComboBox) Items() []*Item { return append([]*Item(nil), cb.items...) }

func (cb *ComboBox) ItemAt(i int) *Item {
	if i < 0 || i >= len(cb.items) {
		return nil
	}
	return cb.items[i]
}

// SelectItem makes it the current item. Deselecting leaves no current
// item. No event is posted.
func (cb *ComboBox) SelectItem(it Selectable, selected bool) {
	i := -1
	if it != nil {
		i = it.Index()
	}
	if i < 0 || i >= len(cb.items) || Selectable(cb.items[i]) != it {
		internal.GetInternalLogger().Debug("Ignoring selection of a foreign item", "widget", cb.kind)
		return
	}
	cb.sel.set(it, selected)
	cb.syncEditor()
	cb.changed(false)
}

func (cb *ComboBox) SelectedItem() Selectable { return cb.sel.first() }

// Value is the edited text for an editable combo box, otherwise the
// current item's label.
func (cb *ComboBox) Value() string {
	if cb.editable {
		return cb.editor.String()
	}
	return cb.sel.value()
}

// SetValue selects the item with that label. An editable combo box also
// accepts other text; a read-only one refuses it with ErrInvalidValue.
func (cb *ComboBox) SetValue(value string) error {
	for _, it := range cb.items {
		if it.label == value {
			cb.SelectItem(it, true)
			return nil
		}
	}
	if !cb.editable {
		return ErrInvalidValue
	}
	cb.sel.clear()
	cb.editor.set(value)
	cb.changed(false)
	return nil
}

// EditText is the text shown in the field.
func (cb *ComboBox) EditText() string {
	if cb.editable {
		return cb.editor.String()
	}
	return cb.sel.value()
}

func (cb *ComboBox) Cursor() int { return cb.editor.cursor }

func (cb *ComboBox) DeleteAllItems() {
	for _, it := range cb.items {
		it.release()
	}
	cb.items = nil
	cb.sel.clear()
	cb.reset()
	cb.expanded = false
	cb.syncEditor()
	cb.changed(true)
}

func (cb *ComboBox) syncEditor() {
	cb.editor.set(cb.sel.value())
}

// IsExpanded reports whether the drop-down list is open.
func (cb *ComboBox) IsExpanded() bool { return cb.expanded }

// FieldRect is the value line below the caption.
func (cb *ComboBox) FieldRect() Rect { return cb.field }

// PopupRect is where the open list is drawn, over other widgets.
func (cb *ComboBox) PopupRect() Rect { return cb.popup }

func (cb *ComboBox) itemChanged(Selectable) {
	cb.syncEditor()
	cb.changed(true)
}

func (cb *ComboBox) PreferredSize(m Metrics) Size {
	w := m.TextWidth("mmmm")
	for _, it := range cb.items {
		w = max(w, m.TextWidth(it.label))
	}
	w = max(w+m.ScrollbarWidth(), m.TextWidth(stripMnemonic(cb.label)))
	return Size{Width: w, Height: labelHeight(m, cb.label) + m.LineHeight()}
}

func (cb *ComboBox) layout(m Metrics, r Rect) {
	cb.bounds = r
	_, cb.field = captioned(m, r, cb.label)
	cb.lineH = max(1, m.LineHeight())

	in := m.FrameInsets()
	rows := min(max(1, len(cb.items)), comboPopupRows)
	cb.popup = Rect{
		X:      cb.field.X,
		Y:      cb.field.Y + cb.lineH,
		Width:  cb.field.Width,
		Height: rows*cb.lineH + in.Vertical(),
	}
	cb.rows = rows
	cb.clamp(len(cb.items))
}

func (cb *ComboBox) expand() {
	if len(cb.items) == 0 {
		return
	}
	cb.expanded = true
	idx := 0
	if it := cb.sel.first(); it != nil {
		idx = it.Index()
	}
	cb.moveTo(idx, len(cb.items))
	cb.scrollTo(idx, len(cb.items))
	cb.changed(false)
}

func (cb *ComboBox) collapse() {
	cb.expanded = false
	cb.changed(false)
}

func (cb *ComboBox) pick() {
	it := cb.ItemAt(cb.hover)
	cb.expanded = false
	if it == nil {
		return
	}
	cb.sel.set(it, true)
	cb.syncEditor()
	cb.changed(false)
	cb.postWidgetEvent(constants.ReasonSelectionChanged)
}

func (cb *ComboBox) focusLost() {
	if cb.expanded {
		cb.collapse()
	}
}

func (cb *ComboBox) handleKey(in Input) bool {
	if cb.expanded {
		switch in.Key {
		case constants.KeyEnter, constants.KeySpace:
			cb.pick()
		case constants.KeyEscape, constants.KeyTab, constants.KeyBacktab:
			cb.collapse()
		default:
			if cb.navigate(in.Key, len(cb.items)) {
				cb.changed(false)
			}
		}
		return true
	}

	switch in.Key {
	case constants.KeyDown:
		cb.expand()
		return len(cb.items) > 0
	case constants.KeySpace:
		if !cb.editable {
			cb.expand()
			return true
		}
	}

	if !cb.editable {
		return false
	}
	changed, handled := cb.editor.edit(in, nil)
	if changed {
		cb.sel.clear()
		cb.changed(false)
		cb.postWidgetEvent(constants.ReasonValueChanged)
	}
	return handled
}

func (cb *ComboBox) overlayContains(x, y int) bool {
	return cb.expanded && cb.popup.Contains(x, y)
}

// handleClick picks a row of the open list; a click on the field opens
// or closes the list.
func (cb *ComboBox) handleClick(x, y int) bool {
	if cb.overlayContains(x, y) {
		content := cb.popup.Inset(cb.popupInsets())
		if row := cb.rowAt(content, y, cb.lineH, len(cb.items)); row >= 0 {
			cb.hover = row
			cb.pick()
		}
		return true
	}
	if cb.expanded {
		cb.collapse()
	} else {
		cb.expand()
	}
	return true
}

func (cb *ComboBox) popupInsets() Insets {
	if m := cb.metrics(); m != nil {
		return m.FrameInsets()
	}
	return Insets{}
}

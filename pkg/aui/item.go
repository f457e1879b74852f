package aui

// Selectable is the item contract shared by every selection widget.
type Selectable interface {
	Label() string
	IconName() string
	Selected() bool
	// Index is the insertion ordinal in the owning widget, -1 before
	// the item is added.
	Index() int
	Data() any

	item() *Item
}

// itemOwner is the selection widget an item was added to.
type itemOwner interface {
	SelectItem(it Selectable, selected bool)
	itemChanged(it Selectable)
}

// Item is a plain entry of a selection box or combo box.
type Item struct {
	self     Selectable
	owner    itemOwner
	label    string
	icon     string
	selected bool
	index    int
	data     any
}

// NewItem creates an unselected item.
func NewItem(label string) *Item {
	return NewItemWithIcon(label, "", false)
}

// NewSelectedItem creates an item that is selected when it is added.
func NewSelectedItem(label string) *Item {
	return NewItemWithIcon(label, "", true)
}

// NewItemWithIcon creates an item with an icon spec.
func NewItemWithIcon(label, icon string, selected bool) *Item {
	it := &Item{label: label, icon: icon, selected: selected, index: -1}
	it.self = it
	return it
}

func (it *Item) item() *Item { return it }

func (it *Item) Label() string { return it.label }

// SetLabel renames the item and refreshes its owner.
func (it *Item) SetLabel(label string) {
	it.label = label
	it.notifyOwner()
}

func (it *Item) IconName() string { return it.icon }

func (it *Item) SetIconName(icon string) {
	it.icon = icon
	it.notifyOwner()
}

func (it *Item) Selected() bool { return it.selected }

// SetSelected selects or deselects the item. Once the item belongs to a
// widget this is the same as calling the widget's SelectItem.
func (it *Item) SetSelected(selected bool) {
	if it.owner != nil {
		it.owner.SelectItem(it.self, selected)
		return
	}
	it.selected = selected
}

func (it *Item) Index() int { return it.index }

func (it *Item) Data() any { return it.data }

// SetData attaches application data to the item.
func (it *Item) SetData(data any) { it.data = data }

func (it *Item) notifyOwner() {
	if it.owner != nil {
		it.owner.itemChanged(it.self)
	}
}

// adopt records the owner and ordinal of a newly added item.
func (it *Item) adopt(owner itemOwner, index int) {
	it.owner = owner
	it.index = index
}

func (it *Item) release() {
	it.owner = nil
	it.selected = false
	it.index = -1
}

// DisplayLabel is a label as backends draw it, without shortcut markers.
func DisplayLabel(label string) string { return stripMnemonic(label) }

// stripMnemonic removes the '&' shortcut markers from a label. "&&" is a
// literal ampersand.
func stripMnemonic(label string) string {
	out := make([]rune, 0, len(label))
	amp := false
	for _, r := range label {
		if r == '&' && !amp {
			amp = true
			continue
		}
		amp = false
		out = append(out, r)
	}
	return string(out)
}

package aui

import "strings"

// MenuItem is an entry of a menu bar: a top-level or nested menu, an
// action item or a separator.
type MenuItem struct {
	Item
	parent    *MenuItem
	children  []*MenuItem
	enabled   bool
	visible   bool
	menu      bool
	separator bool
}

// NewMenu creates a menu that holds child items.
func NewMenu(label string) *MenuItem {
	m := newMenuItem(label, "")
	m.menu = true
	return m
}

// NewMenuItem creates an action item.
func NewMenuItem(label string) *MenuItem {
	return newMenuItem(label, "")
}

// NewMenuItemWithIcon creates an action item with an icon.
func NewMenuItemWithIcon(label, icon string) *MenuItem {
	return newMenuItem(label, icon)
}

// NewMenuSeparator creates a separator line.
func NewMenuSeparator() *MenuItem {
	m := newMenuItem("", "")
	m.separator = true
	return m
}

func newMenuItem(label, icon string) *MenuItem {
	m := &MenuItem{Item: Item{label: label, icon: icon, index: -1}, enabled: true, visible: true}
	m.self = m
	return m
}

// AddItem appends child to this menu. Adding to a separator fails, as
// does adding an item that already has a parent.
func (m *MenuItem) AddItem(child *MenuItem) error {
	switch {
	case m.separator:
		return ErrInvalidNesting
	case child == nil || child == m || child.parent != nil:
		return ErrInvalidNesting
	}
	m.menu = true
	child.parent = m
	m.children = append(m.children, child)
	if bar := m.bar(); bar != nil {
		bar.adoptMenuItem(child)
		bar.scheduleRebuild()
	}
	return nil
}

// AddMenu is shorthand for AddItem(NewMenu(label)).
func (m *MenuItem) AddMenu(label string) (*MenuItem, error) {
	sub := NewMenu(label)
	return sub, m.AddItem(sub)
}

// AddAction is shorthand for AddItem(NewMenuItem(label)).
func (m *MenuItem) AddAction(label string) (*MenuItem, error) {
	it := NewMenuItem(label)
	return it, m.AddItem(it)
}

// AddSeparator appends a separator.
func (m *MenuItem) AddSeparator() error {
	return m.AddItem(NewMenuSeparator())
}

func (m *MenuItem) Parent() *MenuItem { return m.parent }

func (m *MenuItem) Children() []*MenuItem {
	return append([]*MenuItem(nil), m.children...)
}

func (m *MenuItem) IsMenu() bool { return m.menu }

func (m *MenuItem) IsSeparator() bool { return m.separator }

func (m *MenuItem) Enabled() bool { return m.enabled }

// SetEnabled greys the item out. Disabled items stay navigable but cannot
// be activated.
func (m *MenuItem) SetEnabled(enabled bool) {
	m.enabled = enabled
	m.notifyOwner()
}

func (m *MenuItem) Visible() bool { return m.visible }

// SetVisible hides or shows the item. The owning menu bar rebuilds its
// navigation once per event-loop iteration.
func (m *MenuItem) SetVisible(visible bool) {
	if m.visible == visible {
		return
	}
	m.visible = visible
	if bar := m.bar(); bar != nil {
		bar.scheduleRebuild()
	}
}

// Path is the slash-joined chain of labels from the top-level menu down to
// this item, with shortcut markers removed.
func (m *MenuItem) Path() string {
	var parts []string
	for it := m; it != nil; it = it.parent {
		parts = append(parts, stripMnemonic(it.label))
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/")
}

// VisibleChildren are the children a popup lists, in order. MenuLevel
// indices refer to this list.
func (m *MenuItem) VisibleChildren() []*MenuItem { return m.visibleChildren() }

func (m *MenuItem) visibleChildren() []*MenuItem {
	out := make([]*MenuItem, 0, len(m.children))
	for _, c := range m.children {
		if c.visible {
			out = append(out, c)
		}
	}
	return out
}

// activatable reports whether Enter can trigger the item.
func (m *MenuItem) activatable() bool {
	return m.enabled && m.visible && !m.separator
}

func (m *MenuItem) bar() *MenuBar {
	root := m
	for root.parent != nil {
		root = root.parent
	}
	if bar, ok := root.owner.(*MenuBar); ok {
		return bar
	}
	return nil
}

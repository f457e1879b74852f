package aui

// TreeItem is a node of a tree widget. The parent reference is a lookup
// aid only; the tree owns every node.
type TreeItem struct {
	Item
	parent   *TreeItem
	children []*TreeItem
	open     bool
}

// NewTreeItem creates a closed, unselected root node.
func NewTreeItem(label string) *TreeItem {
	return NewTreeItemWithIcon(nil, label, "", false)
}

// NewTreeItemUnder creates a node and appends it to parent's children.
func NewTreeItemUnder(parent *TreeItem, label string) *TreeItem {
	return NewTreeItemWithIcon(parent, label, "", false)
}

// NewTreeItemWithIcon creates a node with an icon and initial open flag.
// A nil parent makes a top-level node.
func NewTreeItemWithIcon(parent *TreeItem, label, icon string, open bool) *TreeItem {
	ti := &TreeItem{Item: Item{label: label, icon: icon, index: -1}, open: open}
	ti.self = ti
	if parent != nil {
		parent.AddChild(ti)
	}
	return ti
}

// AddChild appends child to this node. A child that already has a parent
// is left untouched.
func (ti *TreeItem) AddChild(child *TreeItem) {
	if child == nil || child.parent != nil || child == ti {
		return
	}
	child.parent = ti
	ti.children = append(ti.children, child)
	if ti.owner != nil {
		if t, ok := ti.owner.(*Tree); ok {
			t.adoptSubtree(child)
		}
		ti.notifyOwner()
	}
}

func (ti *TreeItem) Parent() *TreeItem { return ti.parent }

func (ti *TreeItem) Children() []*TreeItem {
	return append([]*TreeItem(nil), ti.children...)
}

func (ti *TreeItem) HasChildren() bool { return len(ti.children) > 0 }

func (ti *TreeItem) IsOpen() bool { return ti.open }

// SetOpen expands or collapses the node.
func (ti *TreeItem) SetOpen(open bool) {
	if ti.open == open {
		return
	}
	ti.open = open
	ti.notifyOwner()
}

// Depth is 0 for top-level nodes.
func (ti *TreeItem) Depth() int {
	d := 0
	for p := ti.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// IsVisible reports whether every ancestor is open.
func (ti *TreeItem) IsVisible() bool {
	for p := ti.parent; p != nil; p = p.parent {
		if !p.open {
			return false
		}
	}
	return true
}

// openAncestors opens every ancestor and reports whether any changed.
func (ti *TreeItem) openAncestors() bool {
	changed := false
	for p := ti.parent; p != nil; p = p.parent {
		if !p.open {
			p.open = true
			changed = true
		}
	}
	return changed
}

// walkTree visits the nodes depth-first in display order.
func walkTree(items []*TreeItem, fn func(*TreeItem)) {
	for _, it := range items {
		fn(it)
		walkTree(it.children, fn)
	}
}

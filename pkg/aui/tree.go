package aui

import (
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// Tree shows a forest of TreeItems as a flattened list of the visible
// nodes.
//
// Space opens or closes the hovered node, Enter selects it (toggles in
// multi mode) and posts selection-changed. Left closes a node or moves to
// its parent, Right opens it or moves to its first child. With recursive
// selection a node's selection state is copied to all its descendants.
//
// Every ancestor of a selected node is kept open.
type Tree struct {
	widgetBase
	viewport
	label     string
	roots     []*TreeItem
	sel       selection
	recursive bool
	visible   []*TreeItem
	nextIndex int
	content   Rect
	lineH     int
}

func newTree(parent Widget, label string, multi, recursive bool) (*Tree, error) {
	t := &Tree{viewport: newViewport(), label: label, recursive: recursive}
	t.sel.multi = multi || recursive
	t.focusable = true
	t.stretch = [2]bool{true, true}
	if err := t.init(t, "Tree", parent, 0); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tree) Label() string { return t.label }

func (t *Tree) SetLabel(label string) {
	t.label = label
	t.changed(true)
}

func (t *Tree) IsMultiSelection() bool { return t.sel.multi }

func (t *Tree) IsRecursiveSelection() bool { return t.recursive }

// AddItem adds a top-level node with its whole subtree. A node that
// already has a parent or an owner is ignored.
func (t *Tree) AddItem(ti *TreeItem) {
	if ti == nil || ti.parent != nil || ti.owner != nil {
		internal.GetInternalLogger().Debug("Ignoring tree item that is already attached", "widget", t.kind)
		return
	}
	t.roots = append(t.roots, ti)
	t.adoptSubtree(ti)
}

func (t *Tree) AddItems(items ...*TreeItem) {
	for _, ti := range items {
		t.AddItem(ti)
	}
}

// adoptSubtree takes ownership of ti and everything below it. Nodes
// created selected are selected without an event.
func (t *Tree) adoptSubtree(ti *TreeItem) {
	var preselected []*TreeItem
	walkTree([]*TreeItem{ti}, func(n *TreeItem) {
		if n.owner != nil {
			return
		}
		if n.selected {
			preselected = append(preselected, n)
		}
		n.selected = false
		n.adopt(t, t.nextIndex)
		t.nextIndex++
	})
	for _, n := range preselected {
		t.applySelection(n, true)
	}
	t.rebuild()
}

// Roots returns the top-level nodes.
func (t *Tree) Roots() []*TreeItem { return append([]*TreeItem(nil), t.roots...) }

func (t *Tree) owns(it Selectable) bool {
	ti, ok := it.(*TreeItem)
	return ok && ti.owner == itemOwner(t)
}

// SelectItem selects or deselects a node. A hidden node's ancestors are
// opened so that it becomes visible. No event is posted.
func (t *Tree) SelectItem(it Selectable, selected bool) {
	if it == nil || !t.owns(it) {
		internal.GetInternalLogger().Debug("Ignoring selection of a foreign item", "widget", t.kind)
		return
	}
	ti := it.(*TreeItem)
	t.applySelection(ti, selected)
	t.rebuild()
	if selected {
		if i := t.visibleIndex(ti); i >= 0 {
			t.moveTo(i, len(t.visible))
			t.scrollTo(i, len(t.visible))
		}
	}
	t.changed(true)
}

func (t *Tree) applySelection(ti *TreeItem, selected bool) {
	t.sel.set(ti, selected)
	if t.recursive {
		walkTree(ti.children, func(n *TreeItem) {
			t.sel.set(n, selected)
		})
	}
	if selected {
		ti.openAncestors()
	}
}

func (t *Tree) DeselectAllItems() {
	t.sel.clear()
	t.changed(false)
}

// SelectedItem is the first selected node, or nil.
func (t *Tree) SelectedItem() Selectable { return t.sel.first() }

// SelectedItems returns the selected nodes in selection order.
func (t *Tree) SelectedItems() []Selectable { return t.sel.items() }

func (t *Tree) Value() string { return t.sel.value() }

// CurrentItem is the hovered node, or nil.
func (t *Tree) CurrentItem() *TreeItem {
	if t.hover < 0 || t.hover >= len(t.visible) {
		return nil
	}
	return t.visible[t.hover]
}

// VisibleItems is the flattened sequence of nodes whose ancestors are
// all open, in display order.
func (t *Tree) VisibleItems() []*TreeItem { return append([]*TreeItem(nil), t.visible...) }

// DeleteAllItems drops every node together with the selection and view
// state.
func (t *Tree) DeleteAllItems() {
	walkTree(t.roots, func(n *TreeItem) { n.release() })
	t.roots = nil
	t.sel.clear()
	t.visible = nil
	t.nextIndex = 0
	t.reset()
	t.changed(true)
}

// rebuild re-opens the ancestors of selected nodes and flattens the
// forest into the visible sequence. The selection set is untouched.
func (t *Tree) rebuild() {
	for _, it := range t.sel.selected {
		it.(*TreeItem).openAncestors()
	}

	hovered := t.CurrentItem()
	t.visible = t.visible[:0]
	var flatten func(items []*TreeItem)
	flatten = func(items []*TreeItem) {
		for _, n := range items {
			t.visible = append(t.visible, n)
			if n.open {
				flatten(n.children)
			}
		}
	}
	flatten(t.roots)

	if hovered != nil {
		if i := t.visibleIndex(hovered); i >= 0 {
			t.hover = i
		} else {
			t.hover = t.visibleIndex(nearestVisibleAncestor(hovered))
		}
	}
	t.clamp(len(t.visible))
}

func nearestVisibleAncestor(ti *TreeItem) *TreeItem {
	for p := ti.parent; p != nil; p = p.parent {
		if p.IsVisible() {
			return p
		}
	}
	return nil
}

func (t *Tree) visibleIndex(ti *TreeItem) int {
	if ti == nil {
		return -1
	}
	for i, n := range t.visible {
		if n == ti {
			return i
		}
	}
	return -1
}

// itemChanged follows open/close, relabels and children added through a
// node.
func (t *Tree) itemChanged(Selectable) {
	t.rebuild()
	t.changed(true)
}

func (t *Tree) ContentRect() Rect { return t.content }

// IndentWidth is the horizontal step per tree level.
func (t *Tree) IndentWidth(m Metrics) int { return m.IndicatorWidth() }

func (t *Tree) PreferredSize(m Metrics) Size {
	in := m.FrameInsets()
	indent := t.IndentWidth(m)
	w := 0
	walkTree(t.roots, func(n *TreeItem) {
		w = max(w, (n.Depth()+1)*indent+m.TextWidth(n.label))
	})
	w = max(w+in.Horizontal()+m.ScrollbarWidth(), m.TextWidth(stripMnemonic(t.label)))
	rows := min(max(1, len(t.visible)), defaultListRows)
	return Size{Width: w, Height: labelHeight(m, t.label) + rows*m.LineHeight() + in.Vertical()}
}

func (t *Tree) layout(m Metrics, r Rect) {
	t.bounds = r
	_, rest := captioned(m, r, t.label)
	t.content = rest.Inset(m.FrameInsets())
	t.lineH = max(1, m.LineHeight())
	t.rows = t.content.Height / t.lineH
	t.clamp(len(t.visible))
}

func (t *Tree) pick() {
	ti := t.CurrentItem()
	if ti == nil {
		return
	}
	if t.sel.multi {
		t.applySelection(ti, !ti.selected)
	} else {
		t.applySelection(ti, true)
	}
	t.rebuild()
	t.changed(false)
	t.postWidgetEvent(constants.ReasonSelectionChanged)
}

func (t *Tree) setOpen(ti *TreeItem, open bool) {
	if ti.open == open || !ti.HasChildren() {
		return
	}
	ti.open = open
	t.rebuild()
	t.changed(true)
}

func (t *Tree) handleKey(in Input) bool {
	ti := t.CurrentItem()
	switch in.Key {
	case constants.KeySpace:
		if ti == nil {
			return false
		}
		t.setOpen(ti, !ti.open)
		return true
	case constants.KeyEnter:
		if ti == nil {
			return false
		}
		t.pick()
		return true
	case constants.KeyLeft:
		if ti == nil {
			return false
		}
		if ti.open && ti.HasChildren() {
			t.setOpen(ti, false)
		} else if ti.parent != nil {
			t.moveTo(t.visibleIndex(ti.parent), len(t.visible))
			t.changed(false)
		}
		return true
	case constants.KeyRight:
		if ti == nil || !ti.HasChildren() {
			return false
		}
		if !ti.open {
			t.setOpen(ti, true)
		} else {
			t.moveTo(t.hover+1, len(t.visible))
			t.changed(false)
		}
		return true
	case constants.KeyRune:
		if ti == nil || (in.Rune != '+' && in.Rune != '-') {
			return false
		}
		t.setOpen(ti, in.Rune == '+')
		return true
	}
	if t.navigate(in.Key, len(t.visible)) {
		t.changed(false)
		return true
	}
	return false
}

// handleClick hovers the clicked row. A click on the expander toggles the
// node, anywhere else picks it.
func (t *Tree) handleClick(x, y int) bool {
	row := t.rowAt(t.content, y, t.lineH, len(t.visible))
	if row < 0 {
		return false
	}
	t.hover = row
	ti := t.visible[row]
	if m := t.metrics(); m != nil && ti.HasChildren() {
		indent := t.IndentWidth(m)
		start := t.content.X + ti.Depth()*indent
		if x >= start && x < start+indent {
			t.setOpen(ti, !ti.open)
			return true
		}
	}
	t.pick()
	return true
}

package aui

import (
	"fmt"
	"slices"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

const defaultMenuPopupRows = 10

// MenuLevel is one open popup of a menu bar: the menu it shows, the
// selected row among the menu's visible children and the first row drawn.
type MenuLevel struct {
	Menu     *MenuItem
	Selected int
	Offset   int
}

// MenuBar is a row of top-level menus with keyboard driven popups.
//
// Closed, Left and Right move between menus and Down, Enter or Space opens
// the current one. Open, Up and Down move within the innermost popup,
// Right or Enter descends into a submenu, Left ascends and Escape closes
// one level. Enter on an action posts a MenuEvent whose ID is the item's
// path.
type MenuBar struct {
	widgetBase
	menus          []*MenuItem
	current        int
	expanded       bool
	path           []MenuLevel
	rebuildPending *atomic.Bool
	rebuilds       int
	nextIndex      int
	popupRows      int
	titles         []Rect
	lineH          int
}

func newMenuBar(parent Widget) (*MenuBar, error) {
	mb := &MenuBar{rebuildPending: atomic.NewBool(false), popupRows: defaultMenuPopupRows}
	mb.focusable = true
	mb.notify = true
	mb.stretch[dimIndex(constants.Horizontal)] = true
	if err := mb.init(mb, "MenuBar", parent, 0); err != nil {
		return nil, err
	}
	return mb, nil
}

// AddMenu appends a top-level menu with everything already added to it.
func (mb *MenuBar) AddMenu(m *MenuItem) error {
	if m == nil || m.parent != nil || m.owner != nil || m.separator {
		return fmt.Errorf("%w: menu is already attached or not a menu", ErrInvalidNesting)
	}
	m.menu = true
	mb.menus = append(mb.menus, m)
	mb.adoptMenuItem(m)
	mb.scheduleRebuild()
	return nil
}

// AddNewMenu is shorthand for AddMenu(NewMenu(label)).
func (mb *MenuBar) AddNewMenu(label string) (*MenuItem, error) {
	m := NewMenu(label)
	return m, mb.AddMenu(m)
}

// adoptMenuItem takes ownership of it and its descendants.
func (mb *MenuBar) adoptMenuItem(it *MenuItem) {
	if it.owner == nil {
		it.adopt(mb, mb.nextIndex)
		mb.nextIndex++
	}
	for _, c := range it.children {
		mb.adoptMenuItem(c)
	}
}

func (mb *MenuBar) Menus() []*MenuItem { return append([]*MenuItem(nil), mb.menus...) }

// VisibleMenus are the top-level menus navigation and drawing use.
func (mb *MenuBar) VisibleMenus() []*MenuItem {
	out := make([]*MenuItem, 0, len(mb.menus))
	for _, m := range mb.menus {
		if m.visible {
			out = append(out, m)
		}
	}
	return out
}

// CurrentMenu is the highlighted top-level menu, nil if none is visible.
func (mb *MenuBar) CurrentMenu() *MenuItem {
	vis := mb.VisibleMenus()
	if mb.current < 0 || mb.current >= len(vis) {
		return nil
	}
	return vis[mb.current]
}

func (mb *MenuBar) IsExpanded() bool { return mb.expanded }

// OpenPath returns the open popups, outermost first.
func (mb *MenuBar) OpenPath() []MenuLevel { return append([]MenuLevel(nil), mb.path...) }

// SelectedItem is the highlighted item of the innermost popup.
func (mb *MenuBar) SelectedItem() *MenuItem {
	if len(mb.path) == 0 {
		return nil
	}
	lvl := mb.path[len(mb.path)-1]
	kids := lvl.Menu.visibleChildren()
	if lvl.Selected < 0 || lvl.Selected >= len(kids) {
		return nil
	}
	return kids[lvl.Selected]
}

// RebuildCount is how many navigation rebuilds ran.
func (mb *MenuBar) RebuildCount() int { return mb.rebuilds }

// SetPopupRows sets how many rows a popup shows before it scrolls.
func (mb *MenuBar) SetPopupRows(rows int) {
	mb.popupRows = max(1, rows)
	mb.changed(false)
}

// scheduleRebuild coalesces visibility changes into one rebuild per
// event-loop iteration. Without a dialog the rebuild runs at once.
func (mb *MenuBar) scheduleRebuild() {
	if !mb.rebuildPending.CompareAndSwap(false, true) {
		return
	}
	if d := mb.FindDialog(); d != nil {
		d.deferRebuild(mb)
		return
	}
	mb.rebuild()
}

// rebuild drops hidden entries from the navigation state.
func (mb *MenuBar) rebuild() {
	mb.rebuildPending.Store(false)
	mb.rebuilds++

	vis := mb.VisibleMenus()
	if len(vis) == 0 {
		mb.current = 0
		mb.collapse()
		mb.changed(true)
		return
	}
	if len(mb.path) > 0 {
		if i := slices.Index(vis, mb.path[0].Menu); i >= 0 {
			mb.current = i
		}
	}
	mb.current = min(max(mb.current, 0), len(vis)-1)

	// The open path survives as far as every menu on it is still shown.
	for i, lvl := range mb.path {
		keep := lvl.Menu.visible
		if i == 0 {
			keep = keep && lvl.Menu == vis[mb.current]
		}
		if !keep {
			mb.path = mb.path[:i]
			break
		}
	}
	// Row indices count visible children only, so they are recomputed: an
	// open submenu stays highlighted in its parent popup.
	for i := range mb.path {
		if i+1 < len(mb.path) {
			mb.path[i].Selected = slices.Index(mb.path[i].Menu.visibleChildren(), mb.path[i+1].Menu)
		} else {
			mb.path[i].Selected = mb.nearestSelectable(mb.path[i].Menu, mb.path[i].Selected, 1)
		}
		mb.scrollLevel(i)
	}
	if mb.expanded && len(mb.path) == 0 {
		mb.expanded = false
	}
	internal.GetInternalLogger().Debug("Rebuilt menu bar", "menus", len(vis), "depth", len(mb.path))
	mb.changed(true)
}

// nearestSelectable finds a non-separator row starting at i, searching in
// direction dir and then the other way. It returns -1 for menus without
// one.
func (mb *MenuBar) nearestSelectable(m *MenuItem, i, dir int) int {
	kids := m.visibleChildren()
	if len(kids) == 0 {
		return -1
	}
	i = min(max(i, 0), len(kids)-1)
	for j := i; j >= 0 && j < len(kids); j += dir {
		if !kids[j].separator {
			return j
		}
	}
	for j := i; j >= 0 && j < len(kids); j -= dir {
		if !kids[j].separator {
			return j
		}
	}
	return -1
}

func (mb *MenuBar) scrollLevel(i int) {
	lvl := &mb.path[i]
	if lvl.Selected < 0 {
		lvl.Offset = 0
		return
	}
	if lvl.Selected < lvl.Offset {
		lvl.Offset = lvl.Selected
	} else if lvl.Selected >= lvl.Offset+mb.popupRows {
		lvl.Offset = lvl.Selected - mb.popupRows + 1
	}
	n := len(lvl.Menu.visibleChildren())
	lvl.Offset = min(max(lvl.Offset, 0), max(0, n-mb.popupRows))
}

// SelectItem is part of the item contract; menu items carry no
// selection.
func (mb *MenuBar) SelectItem(Selectable, bool) {}

func (mb *MenuBar) itemChanged(Selectable) { mb.changed(false) }

func (mb *MenuBar) expand() {
	m := mb.CurrentMenu()
	if m == nil {
		return
	}
	mb.expanded = true
	mb.path = append(mb.path[:0], MenuLevel{Menu: m, Selected: mb.nearestSelectable(m, 0, 1)})
	mb.changed(false)
}

func (mb *MenuBar) collapse() {
	mb.expanded = false
	mb.path = mb.path[:0]
	mb.changed(false)
}

// descend opens the highlighted submenu.
func (mb *MenuBar) descend() bool {
	it := mb.SelectedItem()
	if it == nil || !it.menu || !it.enabled {
		return false
	}
	mb.path = append(mb.path, MenuLevel{Menu: it, Selected: mb.nearestSelectable(it, 0, 1)})
	mb.changed(false)
	return true
}

// switchMenu moves to the neighbouring top-level menu, keeping the bar
// open if it was.
func (mb *MenuBar) switchMenu(delta int) {
	n := len(mb.VisibleMenus())
	if n == 0 {
		return
	}
	mb.current = (mb.current + delta + n) % n
	if mb.expanded {
		mb.expand()
	}
	mb.changed(false)
}

func (mb *MenuBar) moveSelection(delta int) {
	i := len(mb.path) - 1
	lvl := &mb.path[i]
	kids := lvl.Menu.visibleChildren()
	if len(kids) == 0 {
		return
	}
	dir := 1
	if delta < 0 {
		dir = -1
	}
	next := min(max(lvl.Selected+delta, 0), len(kids)-1)
	if s := mb.nearestSelectable(lvl.Menu, next, dir); s >= 0 {
		lvl.Selected = s
	}
	mb.scrollLevel(i)
	mb.changed(false)
}

// Activate triggers an action item as if the user chose it.
func (mb *MenuBar) Activate(it *MenuItem) {
	if it == nil || it.bar() != mb || it.menu || !it.activatable() {
		return
	}
	mb.collapse()
	mb.post(&MenuEvent{Item: it, ID: it.Path()})
}

func (mb *MenuBar) handleKey(in Input) bool {
	if !mb.expanded {
		switch in.Key {
		case constants.KeyLeft:
			mb.switchMenu(-1)
		case constants.KeyRight:
			mb.switchMenu(1)
		case constants.KeyDown, constants.KeyEnter, constants.KeySpace:
			if mb.CurrentMenu() == nil {
				return false
			}
			mb.expand()
		default:
			return false
		}
		return true
	}

	switch in.Key {
	case constants.KeyUp:
		mb.moveSelection(-1)
	case constants.KeyDown:
		mb.moveSelection(1)
	case constants.KeyPageUp:
		mb.moveSelection(-mb.popupRows)
	case constants.KeyPageDown:
		mb.moveSelection(mb.popupRows)
	case constants.KeyHome:
		mb.moveSelection(-len(mb.path[len(mb.path)-1].Menu.children))
	case constants.KeyEnd:
		mb.moveSelection(len(mb.path[len(mb.path)-1].Menu.children))
	case constants.KeyRight:
		if !mb.descend() {
			mb.switchMenu(1)
		}
	case constants.KeyLeft:
		if len(mb.path) > 1 {
			mb.path = mb.path[:len(mb.path)-1]
			mb.changed(false)
		} else {
			mb.switchMenu(-1)
		}
	case constants.KeyEnter, constants.KeySpace:
		it := mb.SelectedItem()
		switch {
		case it == nil:
		case it.menu:
			mb.descend()
		case it.activatable():
			mb.Activate(it)
		default:
			if b := mb.backend; b != nil {
				b.Beep()
			}
		}
	case constants.KeyEscape:
		if len(mb.path) > 1 {
			mb.path = mb.path[:len(mb.path)-1]
			mb.changed(false)
		} else {
			mb.collapse()
		}
	case constants.KeyTab, constants.KeyBacktab:
		mb.collapse()
		return false
	default:
		return true
	}
	return true
}

func (mb *MenuBar) focusLost() {
	if mb.expanded {
		mb.collapse()
	}
}

// TitleRects are the rects of the visible top-level menu titles.
func (mb *MenuBar) TitleRects() []Rect { return append([]Rect(nil), mb.titles...) }

// PopupRect is where the popup of path level i is drawn. The first popup
// hangs below its title, deeper ones open beside their parent row.
func (mb *MenuBar) PopupRect(i int) Rect {
	m := mb.metrics()
	if m == nil || i < 0 || i >= len(mb.path) || mb.current >= len(mb.titles) {
		return Rect{}
	}
	in := m.FrameInsets()
	size := func(menu *MenuItem) Size {
		w := 0
		kids := menu.visibleChildren()
		for _, c := range kids {
			w = max(w, m.TextWidth(stripMnemonic(c.label))+m.IndicatorWidth())
		}
		rows := min(max(1, len(kids)), mb.popupRows)
		return Size{Width: w + in.Horizontal(), Height: rows*mb.lineH + in.Vertical()}
	}

	title := mb.titles[mb.current]
	s := size(mb.path[0].Menu)
	r := Rect{X: title.X, Y: title.Y + title.Height, Width: s.Width, Height: s.Height}
	for j := 1; j <= i; j++ {
		parent := mb.path[j-1]
		s = size(mb.path[j].Menu)
		r = Rect{
			X:      r.X + r.Width,
			Y:      r.Y + in.Top + (parent.Selected-parent.Offset)*mb.lineH,
			Width:  s.Width,
			Height: s.Height,
		}
	}
	return r
}

func (mb *MenuBar) overlayContains(x, y int) bool {
	for i := range mb.path {
		if mb.PopupRect(i).Contains(x, y) {
			return true
		}
	}
	return false
}

func (mb *MenuBar) PreferredSize(m Metrics) Size {
	gap := max(1, m.Spacing())
	widths := make([]int, 0, len(mb.menus))
	for _, menu := range mb.VisibleMenus() {
		widths = append(widths, m.TextWidth(stripMnemonic(menu.label))+2*gap)
	}
	return Size{Width: internal.SumWithSpacing(0, widths...), Height: m.LineHeight()}
}

func (mb *MenuBar) layout(m Metrics, r Rect) {
	mb.bounds = r
	mb.lineH = max(1, m.LineHeight())
	gap := max(1, m.Spacing())
	mb.titles = mb.titles[:0]
	x := r.X
	for _, menu := range mb.VisibleMenus() {
		w := m.TextWidth(stripMnemonic(menu.label)) + 2*gap
		mb.titles = append(mb.titles, Rect{X: x, Y: r.Y, Width: w, Height: mb.lineH})
		x += w
	}
}

// handleClick opens the clicked title's menu or activates the clicked
// popup row.
func (mb *MenuBar) handleClick(x, y int) bool {
	for i := len(mb.path) - 1; i >= 0; i-- {
		r := mb.PopupRect(i)
		if !r.Contains(x, y) {
			continue
		}
		m := mb.metrics()
		row := mb.path[i].Offset + (y-r.Y-m.FrameInsets().Top)/mb.lineH
		kids := mb.path[i].Menu.visibleChildren()
		if row < 0 || row >= len(kids) || kids[row].separator {
			return true
		}
		mb.path = mb.path[:i+1]
		mb.path[i].Selected = row
		if kids[row].menu {
			mb.descend()
		} else if kids[row].activatable() {
			mb.Activate(kids[row])
		}
		mb.changed(false)
		return true
	}

	for i, r := range mb.titles {
		if !r.Contains(x, y) {
			continue
		}
		if mb.expanded && mb.current == i {
			mb.collapse()
		} else {
			mb.current = i
			mb.expand()
		}
		return true
	}
	return false
}

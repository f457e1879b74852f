package aui

import (
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// DumbTab is a row of tabs above a single child, normally a ReplacePoint.
// It does not switch pages itself: picking a tab posts a MenuEvent with
// the tab's label as ID and the application swaps the content.
type DumbTab struct {
	widgetBase
	items   []*Item
	sel     selection
	tabs    []Rect
	content Rect
}

func newDumbTab(parent Widget) (*DumbTab, error) {
	dt := &DumbTab{}
	dt.focusable = true
	dt.notify = true
	dt.stretch = [2]bool{true, true}
	if err := dt.init(dt, "DumbTab", parent, 1); err != nil {
		return nil, err
	}
	return dt, nil
}

// AddItem appends a tab. The first tab, or one created selected, becomes
// current. An item that already belongs to a widget is ignored.
func (dt *DumbTab) AddItem(it *Item) {
	if it == nil || it.owner != nil {
		internal.GetInternalLogger().Debug("Ignoring item that is already attached", "widget", dt.kind)
		return
	}
	preselected := it.selected
	it.selected = false
	it.adopt(dt, len(dt.items))
	dt.items = append(dt.items, it)
	if preselected || dt.sel.first() == nil {
		dt.sel.set(it, true)
	}
	dt.changed(true)
}

func (dt *DumbTab) AddItems(items ...*Item) {
	for _, it := range items {
		dt.AddItem(it)
	}
}

func (dt *DumbTab) Items() []*Item { return append([]*Item(nil), dt.items...) }

func (dt *DumbTab) ItemAt(i int) *Item {
	if i < 0 || i >= len(dt.items) {
		return nil
	}
	return dt.items[i]
}

// SelectItem makes it the current tab. Tabs cannot be deselected. No
// event is posted.
func (dt *DumbTab) SelectItem(it Selectable, selected bool) {
	i := -1
	if it != nil {
		i = it.Index()
	}
	if i < 0 || i >= len(dt.items) || Selectable(dt.items[i]) != it {
		internal.GetInternalLogger().Debug("Ignoring selection of a foreign item", "widget", dt.kind)
		return
	}
	if !selected {
		return
	}
	dt.sel.set(it, true)
	dt.changed(false)
}

func (dt *DumbTab) SelectedItem() Selectable { return dt.sel.first() }

func (dt *DumbTab) Value() string { return dt.sel.value() }

// CurrentIndex is the index of the current tab, -1 without tabs.
func (dt *DumbTab) CurrentIndex() int {
	if it := dt.sel.first(); it != nil {
		return it.Index()
	}
	return -1
}

func (dt *DumbTab) DeleteAllItems() {
	for _, it := range dt.items {
		it.release()
	}
	dt.items = nil
	dt.sel.clear()
	dt.changed(true)
}

func (dt *DumbTab) itemChanged(Selectable) { dt.changed(true) }

// TabRect is the header rect of tab i.
func (dt *DumbTab) TabRect(i int) Rect {
	if i < 0 || i >= len(dt.tabs) {
		return Rect{}
	}
	return dt.tabs[i]
}

// ContentRect is the page area below the tab row.
func (dt *DumbTab) ContentRect() Rect { return dt.content }

func (dt *DumbTab) tabWidth(m Metrics, it *Item) int {
	return m.TextWidth(stripMnemonic(it.label)) + 2*max(1, m.Spacing())
}

func (dt *DumbTab) PreferredSize(m Metrics) Size {
	widths := make([]int, len(dt.items))
	for i, it := range dt.items {
		widths[i] = dt.tabWidth(m, it)
	}
	child := framedSize(m, dt.firstChild(), "", 0)
	return Size{
		Width:  max(internal.SumWithSpacing(0, widths...), child.Width),
		Height: m.LineHeight() + child.Height,
	}
}

func (dt *DumbTab) layout(m Metrics, r Rect) {
	dt.bounds = r
	lineH := m.LineHeight()
	dt.tabs = dt.tabs[:0]
	x := r.X
	for _, it := range dt.items {
		w := dt.tabWidth(m, it)
		dt.tabs = append(dt.tabs, Rect{X: x, Y: r.Y, Width: w, Height: lineH})
		x += w
	}
	body := Rect{X: r.X, Y: r.Y + lineH, Width: r.Width, Height: max(0, r.Height-lineH)}
	dt.content = body.Inset(m.FrameInsets())
	if c := dt.firstChild(); c != nil && c.Visible() {
		c.layout(m, dt.content)
	}
}

// pick makes tab i current and tells the application.
func (dt *DumbTab) pick(i int) {
	it := dt.ItemAt(i)
	if it == nil {
		return
	}
	dt.sel.set(it, true)
	dt.changed(false)
	dt.post(&MenuEvent{Item: it, ID: stripMnemonic(it.label)})
}

func (dt *DumbTab) handleKey(in Input) bool {
	n := len(dt.items)
	if n == 0 {
		return false
	}
	cur := max(dt.CurrentIndex(), 0)
	switch in.Key {
	case constants.KeyLeft:
		dt.pick((cur - 1 + n) % n)
	case constants.KeyRight:
		dt.pick((cur + 1) % n)
	case constants.KeyHome:
		dt.pick(0)
	case constants.KeyEnd:
		dt.pick(n - 1)
	default:
		return false
	}
	return true
}

func (dt *DumbTab) handleClick(x, y int) bool {
	for i, r := range dt.tabs {
		if r.Contains(x, y) {
			dt.pick(i)
			return true
		}
	}
	return false
}

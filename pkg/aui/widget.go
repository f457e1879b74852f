package aui

import (
	"slices"

	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// Widget is one node of a dialog's widget tree.
//
// Widgets are created through a Factory with an explicit parent, which takes
// ownership. The parent never changes afterwards. A widget is destroyed by
// destroying an ancestor, normally its dialog.
//
// Every concrete widget embeds the package's widget base; the interface is
// sealed and backends discover the concrete type with a type switch.
type Widget interface {
	// Kind is the widget class name, e.g. "PushButton".
	Kind() string

	Parent() Widget
	Children() []Widget
	// FindDialog walks the parent chain to the owning dialog. It returns nil
	// for detached or destroyed widgets.
	FindDialog() *Dialog

	// Enabled is the effective state: the widget's own flag and those of
	// all its ancestors.
	Enabled() bool
	SetEnabled(enabled bool)

	Visible() bool
	SetVisible(visible bool)

	// Notify reports whether user input on the widget posts events.
	Notify() bool
	SetNotify(notify bool)

	HelpText() string
	SetHelpText(text string)

	// Stretchable reports whether the widget asks for extra space along d.
	// Containers also report true when any child does.
	Stretchable(d constants.Dimension) bool
	SetStretchable(d constants.Dimension, stretch bool)
	Weight(d constants.Dimension) int
	SetWeight(d constants.Dimension, weight int)

	// PreferredSize is the natural size, which box layouts treat as minimum.
	PreferredSize(m Metrics) Size
	// Bounds is the rect assigned by the last layout pass.
	Bounds() Rect

	// Handle is the backend's native handle, nil until realised or when
	// realisation failed.
	Handle() Handle
	Focusable() bool
	HasFocus() bool
	Destroyed() bool

	base() *widgetBase
	acceptChild(child Widget) error
	layout(m Metrics, r Rect)
	handleKey(in Input) bool
	handleClick(x, y int) bool
	destroy()
}

type widgetBase struct {
	self     Widget
	kind     string
	parent   Widget
	children []Widget
	capacity int // -1 unlimited, 0 for leaves

	backend Backend

	notify    bool
	enabled   bool // explicit flag
	effective bool // last effective state handed to the backend
	visible   bool
	helpText  string
	stretch   [2]bool
	weight    [2]int

	focusable      bool
	savedFocusable bool

	bounds    Rect
	handle    Handle
	realized  bool
	destroyed bool
}

const unlimited = -1

// childObserver is a container that reacts to a child being attached.
type childObserver interface {
	childAdded(child Widget)
}

func dimIndex(d constants.Dimension) int {
	if d == constants.Vertical {
		return 1
	}
	return 0
}

// init attaches the widget to parent. Concrete constructors set class
// defaults (focusable, notify, stretch) before calling it.
func (b *widgetBase) init(self Widget, kind string, parent Widget, capacity int) error {
	b.self = self
	b.kind = kind
	b.capacity = capacity
	b.enabled = true
	b.effective = true
	b.visible = true

	if parent == nil {
		return nil
	}

	pb := parent.base()
	if pb.destroyed {
		return nestingError(parent, self, "parent is destroyed")
	}
	if err := parent.acceptChild(self); err != nil {
		return err
	}

	b.parent = parent
	b.backend = pb.backend
	pb.children = append(pb.children, self)

	if !parent.Enabled() {
		b.effective = false
		b.savedFocusable = b.focusable
		b.focusable = false
	}

	if obs, ok := parent.(childObserver); ok {
		obs.childAdded(self)
	}
	if d := self.FindDialog(); d != nil {
		d.invalidate(true)
	}
	return nil
}

func (b *widgetBase) base() *widgetBase { return b }

func (b *widgetBase) Kind() string { return b.kind }

func (b *widgetBase) Parent() Widget { return b.parent }

func (b *widgetBase) Children() []Widget { return slices.Clone(b.children) }

func (b *widgetBase) FindDialog() *Dialog {
	if b.destroyed {
		return nil
	}
	var w Widget = b.self
	for w != nil {
		if d, ok := w.(*Dialog); ok {
			return d
		}
		w = w.Parent()
	}
	return nil
}

func (b *widgetBase) acceptChild(child Widget) error {
	switch {
	case b.capacity == 0:
		return nestingError(b.self, child, "not a container")
	case b.capacity > 0 && len(b.children) >= b.capacity:
		return nestingError(b.self, child, "already has a child")
	}
	return nil
}

func (b *widgetBase) Enabled() bool {
	if !b.enabled {
		return false
	}
	if b.parent != nil {
		return b.parent.Enabled()
	}
	return true
}

func (b *widgetBase) SetEnabled(enabled bool) {
	b.enabled = enabled
	b.propagateEnabled()
}

func (b *widgetBase) propagateEnabled() {
	now := b.self.Enabled()
	if now != b.effective {
		b.effective = now
		if now {
			b.focusable = b.savedFocusable
		} else {
			b.savedFocusable = b.focusable
			b.focusable = false
		}
		if b.backend != nil {
			b.backend.SetEnabled(b.self, now)
		}
		if d := b.self.FindDialog(); d != nil {
			d.ensureFocus()
		}
		b.changed(false)
	}
	for _, c := range b.children {
		c.base().propagateEnabled()
	}
}

func (b *widgetBase) Visible() bool { return b.visible }

func (b *widgetBase) SetVisible(visible bool) {
	if b.visible == visible {
		return
	}
	b.visible = visible
	if d := b.self.FindDialog(); d != nil {
		d.ensureFocus()
	}
	b.changed(true)
}

// shown reports whether the widget and all its ancestors are visible.
func (b *widgetBase) shown() bool {
	if !b.visible {
		return false
	}
	if b.parent != nil {
		return b.parent.base().shown()
	}
	return true
}

func (b *widgetBase) Notify() bool { return b.notify }

func (b *widgetBase) SetNotify(notify bool) { b.notify = notify }

func (b *widgetBase) HelpText() string { return b.helpText }

func (b *widgetBase) SetHelpText(text string) {
	b.helpText = text
	b.changed(false)
}

func (b *widgetBase) Stretchable(d constants.Dimension) bool {
	return b.stretch[dimIndex(d)]
}

func (b *widgetBase) SetStretchable(d constants.Dimension, stretch bool) {
	b.stretch[dimIndex(d)] = stretch
	b.changed(true)
}

func (b *widgetBase) Weight(d constants.Dimension) int {
	return b.weight[dimIndex(d)]
}

func (b *widgetBase) SetWeight(d constants.Dimension, weight int) {
	b.weight[dimIndex(d)] = max(0, weight)
	b.changed(true)
}

func (b *widgetBase) PreferredSize(Metrics) Size { return Size{} }

func (b *widgetBase) Bounds() Rect { return b.bounds }

func (b *widgetBase) layout(_ Metrics, r Rect) { b.bounds = r }

func (b *widgetBase) Handle() Handle { return b.handle }

func (b *widgetBase) Focusable() bool { return b.focusable }

func (b *widgetBase) HasFocus() bool {
	d := b.self.FindDialog()
	return d != nil && d.focus == b.self
}

func (b *widgetBase) Destroyed() bool { return b.destroyed }

func (b *widgetBase) handleKey(Input) bool { return false }

func (b *widgetBase) handleClick(int, int) bool { return false }

// canFocus reports whether focus traversal may land on the widget.
func (b *widgetBase) canFocus() bool {
	return b.focusable && !b.destroyed && b.shown() && b.self.Enabled()
}

// spaceHungry reports whether a container should give w extra room along d.
func spaceHungry(w Widget, d constants.Dimension) bool {
	return w.Stretchable(d) || w.Weight(d) > 0
}

func (b *widgetBase) metrics() Metrics {
	if b.backend == nil {
		return nil
	}
	return b.backend.Metrics()
}

// changed tells the backend and the owning dialog that the widget's state
// changed. relayout also schedules a new layout pass.
func (b *widgetBase) changed(relayout bool) {
	if b.handle != nil {
		b.handle.Update()
	}
	if d := b.self.FindDialog(); d != nil {
		d.invalidate(relayout)
	}
}

func (b *widgetBase) postWidgetEvent(reason constants.EventReason) {
	b.post(&WidgetEvent{Widget: b.self, Reason: reason})
}

// post hands ev to the owning dialog unless notify is off.
func (b *widgetBase) post(ev Event) {
	if !b.notify {
		return
	}
	if d := b.self.FindDialog(); d != nil {
		d.PostEvent(ev)
	}
}

func (b *widgetBase) realize() {
	if b.realized || b.destroyed || b.backend == nil {
		return
	}
	b.realized = true

	h, err := b.backend.Realize(b.self)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to realise widget",
			"widget", b.kind,
			"backend", b.backend.Name(),
			"error", err)
		return
	}
	b.handle = h
	if !b.effective {
		b.backend.SetEnabled(b.self, false)
	}
}

func realizeTree(w Widget) {
	w.base().realize()
	for _, c := range w.base().children {
		realizeTree(c)
	}
}

// destroy tears the subtree down, children in reverse insertion order.
func (b *widgetBase) destroy() {
	if b.destroyed {
		return
	}
	for i := len(b.children) - 1; i >= 0; i-- {
		b.children[i].destroy()
	}
	b.children = nil
	if b.handle != nil {
		b.handle.Destroy()
		b.handle = nil
	}
	b.destroyed = true
	b.parent = nil
}

func (b *widgetBase) removeChild(child Widget) {
	if i := slices.Index(b.children, child); i >= 0 {
		b.children = slices.Delete(b.children, i, i+1)
	}
}

func (b *widgetBase) firstChild() Widget {
	if len(b.children) == 0 {
		return nil
	}
	return b.children[0]
}

// visibleChildren returns the children taking part in layout.
func (b *widgetBase) visibleChildren() []Widget {
	out := make([]Widget, 0, len(b.children))
	for _, c := range b.children {
		if c.Visible() {
			out = append(out, c)
		}
	}
	return out
}

// walk visits w and its descendants in tree order. fn returns false to
// skip the subtree below a node.
func walk(w Widget, fn func(Widget) bool) {
	if !fn(w) {
		return
	}
	for _, c := range w.base().children {
		walk(c, fn)
	}
}

// widgetAt returns the deepest visible widget under the point.
func widgetAt(w Widget, x, y int) Widget {
	if !w.Visible() || !w.Bounds().Contains(x, y) {
		return nil
	}
	children := w.base().children
	for i := len(children) - 1; i >= 0; i-- {
		if hit := widgetAt(children[i], x, y); hit != nil {
			return hit
		}
	}
	return w
}

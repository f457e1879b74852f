package router

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// ErrStop is returned by a handler to end Run without an error.
var ErrStop = errors.New("router: stop")

// Handler reacts to one event. Returning ErrStop ends Run; any other error
// ends Run with that error.
type Handler func(ev aui.Event) error

type handlerKind int

const (
	kindWidget handlerKind = iota
	kindMenuItem
	kindMenuID
	kindTimeout
	kindCancel
	kindAny
)

type entry struct {
	id uint64
	fn Handler
}

// Registration identifies one added handler.
type Registration struct {
	router *Router
	kind   handlerKind
	key    any
	id     uint64
}

// Remove unregisters the handler. Removing twice is harmless.
func (reg *Registration) Remove() {
	if reg == nil || reg.router == nil {
		return
	}
	reg.router.remove(reg)
	reg.router = nil
}

// Router dispatches the events of one dialog to handlers registered per
// widget, per menu item, per menu ID, for timeouts and for cancels.
// Registration is additive; several handlers for the same key run in
// registration order.
type Router struct {
	dialog    *aui.Dialog
	timeoutMs int

	widgets  map[aui.Widget][]entry
	items    map[aui.Selectable][]entry
	menuIDs  map[string][]entry
	timeouts []entry
	cancels  []entry
	fallback []entry

	nextID uint64
	scopes *Stack
}

// New creates a Router for d.
func New(d *aui.Dialog) *Router {
	return &Router{
		dialog:  d,
		widgets: make(map[aui.Widget][]entry),
		items:   make(map[aui.Selectable][]entry),
		menuIDs: make(map[string][]entry),
		scopes:  NewStack(),
	}
}

// Dialog returns the dialog whose events Run waits for.
func (r *Router) Dialog() *aui.Dialog { return r.dialog }

// SetTimeout sets the wait-for-event timeout Run uses. 0 waits forever.
func (r *Router) SetTimeout(ms int) *Router {
	r.timeoutMs = ms
	return r
}

// OnWidget handles widget events of w.
func (r *Router) OnWidget(w aui.Widget, fn Handler) *Registration {
	return r.add(kindWidget, w, fn)
}

// OnMenuItem handles menu events carrying item.
func (r *Router) OnMenuItem(item aui.Selectable, fn Handler) *Registration {
	return r.add(kindMenuItem, item, fn)
}

// OnMenuID handles menu events by ID: a menu path such as "File/Open", a
// tab label or a rich-text link URL.
func (r *Router) OnMenuID(id string, fn Handler) *Registration {
	return r.add(kindMenuID, id, fn)
}

func (r *Router) OnTimeout(fn Handler) *Registration {
	return r.add(kindTimeout, nil, fn)
}

func (r *Router) OnCancel(fn Handler) *Registration {
	return r.add(kindCancel, nil, fn)
}

// OnUnhandled receives events no other handler took.
func (r *Router) OnUnhandled(fn Handler) *Registration {
	return r.add(kindAny, nil, fn)
}

func (r *Router) add(kind handlerKind, key any, fn Handler) *Registration {
	r.nextID++
	e := entry{id: r.nextID, fn: fn}
	switch kind {
	case kindWidget:
		w := key.(aui.Widget)
		r.widgets[w] = append(r.widgets[w], e)
	case kindMenuItem:
		it := key.(aui.Selectable)
		r.items[it] = append(r.items[it], e)
	case kindMenuID:
		id := key.(string)
		r.menuIDs[id] = append(r.menuIDs[id], e)
	case kindTimeout:
		r.timeouts = append(r.timeouts, e)
	case kindCancel:
		r.cancels = append(r.cancels, e)
	case kindAny:
		r.fallback = append(r.fallback, e)
	}
	reg := &Registration{router: r, kind: kind, key: key, id: e.id}
	if top := r.scopes.Peek(); top != nil {
		top.Registrations = append(top.Registrations, reg)
	}
	return reg
}

func without(entries []entry, id uint64) []entry {
	for i, e := range entries {
		if e.id == id {
			return append(entries[:i:i], entries[i+1:]...)
		}
	}
	return entries
}

func (r *Router) remove(reg *Registration) {
	switch reg.kind {
	case kindWidget:
		w := reg.key.(aui.Widget)
		if r.widgets[w] = without(r.widgets[w], reg.id); len(r.widgets[w]) == 0 {
			delete(r.widgets, w)
		}
	case kindMenuItem:
		it := reg.key.(aui.Selectable)
		if r.items[it] = without(r.items[it], reg.id); len(r.items[it]) == 0 {
			delete(r.items, it)
		}
	case kindMenuID:
		id := reg.key.(string)
		if r.menuIDs[id] = without(r.menuIDs[id], reg.id); len(r.menuIDs[id]) == 0 {
			delete(r.menuIDs, id)
		}
	case kindTimeout:
		r.timeouts = without(r.timeouts, reg.id)
	case kindCancel:
		r.cancels = without(r.cancels, reg.id)
	case kindAny:
		r.fallback = without(r.fallback, reg.id)
	}
}

// PushScope starts a handler scope, e.g. while a popup is open. Every
// handler registered until the matching PopScope is removed by it.
func (r *Router) PushScope(name string) {
	r.scopes.Push(name)
}

// PopScope removes the handlers of the innermost scope.
func (r *Router) PopScope() {
	scope := r.scopes.Pop()
	if scope == nil {
		return
	}
	for _, reg := range scope.Registrations {
		reg.Remove()
	}
}

// Stack returns the scope stack.
func (r *Router) Stack() *Stack {
	return r.scopes
}

// handlersFor returns a snapshot of the handlers an event goes to, so
// handlers may register or remove others while running.
func (r *Router) handlersFor(ev aui.Event) []entry {
	var out []entry
	switch e := ev.(type) {
	case *aui.WidgetEvent:
		out = append(out, r.widgets[e.Widget]...)
	case *aui.MenuEvent:
		if e.Item != nil {
			out = append(out, r.items[e.Item]...)
		}
		out = append(out, r.menuIDs[e.ID]...)
	case *aui.TimeoutEvent:
		out = append(out, r.timeouts...)
	case *aui.CancelEvent:
		out = append(out, r.cancels...)
	}
	if len(out) == 0 {
		out = append(out, r.fallback...)
	}
	return out
}

// Dispatch runs the handlers for ev. A panicking handler is logged and
// skipped. It reports whether any handler ran and stops at the first
// handler error.
func (r *Router) Dispatch(ev aui.Event) (bool, error) {
	handlers := r.handlersFor(ev)
	for _, e := range handlers {
		if err := r.call(e.fn, ev); err != nil {
			return true, err
		}
	}
	return len(handlers) > 0, nil
}

func (r *Router) call(fn Handler, ev aui.Event) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			internal.GetInternalLogger().Error("Recovered from panicking event handler",
				"event", ev.String(),
				"panic", fmt.Sprint(rec),
				"stack", string(debug.Stack()))
			err = nil
		}
	}()
	return fn(ev)
}

// Run waits for events and dispatches them until a handler returns
// ErrStop, the dialog is destroyed or the last open dialog is gone. A
// cancel nobody handles destroys the dialog.
func (r *Router) Run(ctx context.Context) error {
	logger := internal.GetInternalLogger()
	for {
		if r.dialog.Destroyed() || aui.QuitRequested() {
			return nil
		}

		ev, err := r.dialog.WaitForEventContext(ctx, r.timeoutMs)
		if err != nil {
			if r.dialog.Destroyed() {
				return nil
			}
			return err
		}
		logger.Debug("Dispatching event", "event", ev.String())

		handled, err := r.Dispatch(ev)
		switch {
		case errors.Is(err, ErrStop):
			return nil
		case err != nil:
			return err
		}

		if _, ok := ev.(*aui.CancelEvent); ok && !handled {
			r.dialog.Destroy()
			return nil
		}
	}
}

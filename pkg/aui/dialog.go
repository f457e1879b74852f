package aui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

type dialogState int

const (
	dialogUnrealised dialogState = iota
	dialogOpen
	dialogDestroyed
)

func (s dialogState) String() string {
	switch s {
	case dialogOpen:
		return "open"
	case dialogDestroyed:
		return "destroyed"
	default:
		return "unrealised"
	}
}

// Dialog is the root of a widget tree. It holds a single root widget,
// runs the nested event loop and keeps a one-slot event queue.
//
// The lifecycle is unrealised, open, destroyed; there is no way back.
// All dialog methods must be called from the UI goroutine.
type Dialog struct {
	widgetBase

	dialogKind constants.DialogKind
	colorMode  constants.ColorMode
	title      string
	state      dialogState

	pending       Event
	posted        int
	defaultButton *PushButton
	focus         Widget

	needsLayout bool
	dirty       bool
	rebuilds    []rebuilder
}

// focusLoser is a widget that commits pending edits when focus leaves.
type focusLoser interface {
	focusLost()
}

// rebuilder is a widget whose derived state is rebuilt lazily, once per
// event-loop iteration.
type rebuilder interface {
	rebuild()
}

// NewDialog creates an unrealised dialog drawn by backend.
func NewDialog(backend Backend, kind constants.DialogKind, mode constants.ColorMode) (*Dialog, error) {
	if backend == nil {
		return nil, errors.New("aui: nil backend")
	}
	d := &Dialog{dialogKind: kind, colorMode: mode}
	if err := d.init(d, "Dialog", nil, 1); err != nil {
		return nil, err
	}
	d.backend = backend
	return d, nil
}

func (d *Dialog) DialogKind() constants.DialogKind { return d.dialogKind }

func (d *Dialog) ColorMode() constants.ColorMode { return d.colorMode }

// Title is drawn in a popup's border.
func (d *Dialog) Title() string { return d.title }

func (d *Dialog) SetTitle(title string) {
	d.title = title
	d.changed(false)
}

func (d *Dialog) IsOpen() bool { return d.state == dialogOpen }

// Backend returns the backend the dialog is drawn by.
func (d *Dialog) Backend() Backend { return d.backend }

// Root is the dialog's single child, nil if none was added.
func (d *Dialog) Root() Widget { return d.firstChild() }

// Open realises the dialog and pushes it on the open-stack. Opening an
// open dialog does nothing.
func (d *Dialog) Open() error {
	switch d.state {
	case dialogOpen:
		return nil
	case dialogDestroyed:
		return fmt.Errorf("%w: cannot open a destroyed dialog", ErrDialogState)
	}

	if err := d.backend.OpenDialog(d); err != nil {
		return &BackendError{Op: "open", Widget: d.kind, Err: err}
	}
	realizeTree(d)

	openDialogs.push(d)
	quitRequested.Store(false)
	d.state = dialogOpen
	d.ensureFocus()
	d.invalidate(true)

	internal.GetInternalLogger().Debug("Dialog opened",
		"kind", d.dialogKind.String(),
		"depth", openDialogs.len())
	return nil
}

// Destroy clears the default button, tears down the subtree and the
// backend window and pops the dialog off the open-stack. Destroying the
// last open dialog sets the quit flag and wakes the backend.
func (d *Dialog) Destroy() {
	if d.state == dialogDestroyed {
		return
	}
	wasOpen := d.state == dialogOpen

	d.defaultButton = nil
	d.focus = nil
	d.pending = nil
	d.rebuilds = nil
	d.destroy()
	d.state = dialogDestroyed

	if !wasOpen {
		return
	}
	d.backend.CloseDialog(d)
	openDialogs.remove(d)

	internal.GetInternalLogger().Debug("Dialog destroyed",
		"kind", d.dialogKind.String(),
		"remaining", openDialogs.len())

	if openDialogs.isEmpty() {
		quitRequested.Store(true)
		d.backend.Wake()
		return
	}
	openDialogs.peek().invalidate(false)
}

// SetDefaultButton marks btn as the button Enter activates at dialog scope.
// The button must belong to this dialog. A nil button clears the default.
func (d *Dialog) SetDefaultButton(btn *PushButton) error {
	if btn == nil {
		d.defaultButton = nil
		d.invalidate(false)
		return nil
	}
	if btn.FindDialog() != d {
		return fmt.Errorf("%w: default button belongs to another dialog", ErrInvalidNesting)
	}
	d.defaultButton = btn
	d.invalidate(false)
	return nil
}

// DefaultButton returns the current default button, or nil.
func (d *Dialog) DefaultButton() *PushButton { return d.defaultButton }

// PostEvent stores ev in the single-slot queue. An event that was not
// consumed yet is replaced.
func (d *Dialog) PostEvent(ev Event) {
	if ev == nil || d.state == dialogDestroyed {
		return
	}
	if d.pending != nil {
		internal.GetInternalLogger().Debug("Replacing unconsumed event",
			"dropped", d.pending.String(),
			"posted", ev.String())
	}
	d.pending = ev
	d.posted++
}

func (d *Dialog) takePending() Event {
	ev := d.pending
	d.pending = nil
	return ev
}

// WaitForEvent runs the nested event loop until an event is posted, the
// timeout expires or the host cancels. A timeout of 0 or less waits
// forever.
func (d *Dialog) WaitForEvent(timeoutMs int) (Event, error) {
	return d.WaitForEventContext(context.Background(), timeoutMs)
}

// WaitForEventContext is WaitForEvent bounded by ctx. When ctx ends first
// its error is returned.
//
// For the duration of the call an interrupt signal becomes a CancelEvent.
func (d *Dialog) WaitForEventContext(ctx context.Context, timeoutMs int) (Event, error) {
	if d.state != dialogOpen {
		return nil, fmt.Errorf("%w: wait on a %s dialog", ErrDialogState, d.state)
	}

	sigCtx, stopSignals := signal.NotifyContext(ctx, os.Interrupt)
	defer stopSignals()

	waitCtx := sigCtx
	if timeoutMs > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(sigCtx, time.Duration(timeoutMs)*time.Millisecond)
		defer cancel()
	}

	for {
		if ev := d.takePending(); ev != nil {
			return ev, nil
		}
		if d.state != dialogOpen {
			return nil, fmt.Errorf("%w: dialog destroyed while waiting", ErrDialogState)
		}

		d.refresh()

		in, err := d.backend.WaitInput(waitCtx)
		if err != nil {
			switch {
			case ctx.Err() != nil:
				return nil, ctx.Err()
			case sigCtx.Err() != nil:
				return &CancelEvent{}, nil
			case waitCtx.Err() != nil:
				return &TimeoutEvent{}, nil
			default:
				return nil, &BackendError{Op: "wait", Err: err}
			}
		}
		d.handleInput(in)
	}
}

// PollEvent handles the host input already queued until an event is
// posted and returns it, or nil once the queue is empty. Input queued
// behind the event is left for the next call. It never blocks.
func (d *Dialog) PollEvent() (Event, error) {
	if d.state != dialogOpen {
		return nil, fmt.Errorf("%w: poll on a %s dialog", ErrDialogState, d.state)
	}

	done, cancel := context.WithCancel(context.Background())
	cancel()

	for {
		if ev := d.takePending(); ev != nil {
			return ev, nil
		}
		d.refresh()
		in, err := d.backend.WaitInput(done)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil, nil
			}
			return nil, &BackendError{Op: "poll", Err: err}
		}
		d.handleInput(in)
	}
}

// Recalc lays the dialog out again: full screen for main dialogs, centered
// at its preferred size for popups.
func (d *Dialog) Recalc() {
	if d.destroyed {
		return
	}
	m := d.backend.Metrics()
	screen := d.backend.ScreenSize()
	r := Rect{Width: screen.Width, Height: screen.Height}

	if d.dialogKind == constants.DialogPopup {
		pref := d.PreferredSize(m)
		w := min(pref.Width, screen.Width)
		h := min(pref.Height, screen.Height)
		r = Rect{X: (screen.Width - w) / 2, Y: (screen.Height - h) / 2, Width: w, Height: h}
	}

	d.layout(m, r)
	d.needsLayout = false
	d.dirty = true
}

func (d *Dialog) chrome(m Metrics) Insets {
	if d.dialogKind == constants.DialogPopup {
		return m.FrameInsets()
	}
	return Insets{}
}

func (d *Dialog) PreferredSize(m Metrics) Size {
	in := d.chrome(m)
	var s Size
	if root := d.Root(); root != nil && root.Visible() {
		s = root.PreferredSize(m)
	}
	if d.title != "" {
		s.Width = max(s.Width, m.TextWidth(d.title)+2)
	}
	return Size{Width: s.Width + in.Horizontal(), Height: s.Height + in.Vertical()}
}

func (d *Dialog) layout(m Metrics, r Rect) {
	d.bounds = r
	if root := d.Root(); root != nil && root.Visible() {
		root.layout(m, r.Inset(d.chrome(m)))
	}
}

// ContentRect is the area inside the popup border.
func (d *Dialog) ContentRect() Rect {
	if m := d.metrics(); m != nil {
		return d.bounds.Inset(d.chrome(m))
	}
	return d.bounds
}

// invalidate marks the dialog for redraw, relayout when asked.
func (d *Dialog) invalidate(relayout bool) {
	d.dirty = true
	if relayout {
		d.needsLayout = true
	}
}

func (d *Dialog) deferRebuild(r rebuilder) {
	for _, q := range d.rebuilds {
		if q == r {
			return
		}
	}
	d.rebuilds = append(d.rebuilds, r)
}

// refresh runs deferred rebuilds, realises new widgets, lays out and draws
// the open dialogs.
func (d *Dialog) refresh() {
	if len(d.rebuilds) > 0 {
		queued := d.rebuilds
		d.rebuilds = nil
		for _, r := range queued {
			r.rebuild()
		}
		d.invalidate(true)
	}
	d.ensureFocus()

	dirty := false
	for _, od := range openDialogs.entries {
		realizeTree(od)
		if od.needsLayout {
			od.Recalc()
		}
		if od.dirty {
			dirty = true
			od.dirty = false
		}
	}
	if !dirty {
		return
	}
	if err := d.backend.Render(openDialogs.snapshot()); err != nil {
		internal.GetInternalLogger().Error("Failed to render dialogs", "error", err)
	}
}

func (d *Dialog) handleInput(in Input) {
	switch in.Kind {
	case InputClose, InputInterrupt:
		d.PostEvent(&CancelEvent{})
	case InputResize:
		for _, od := range openDialogs.entries {
			od.invalidate(true)
		}
	case InputClick:
		d.handleClickAt(in.X, in.Y)
	case InputKey:
		d.handleKeyInput(in)
	}
}

func (d *Dialog) handleKeyInput(in Input) {
	d.dirty = true
	if d.focus != nil && d.focus.base().canFocus() && d.focus.handleKey(in) {
		return
	}

	switch in.Key {
	case constants.KeyTab, constants.KeyDown, constants.KeyRight:
		d.moveFocus(1)
	case constants.KeyBacktab, constants.KeyUp, constants.KeyLeft:
		d.moveFocus(-1)
	case constants.KeyEnter:
		if !d.activateDefault() {
			d.backend.Beep()
		}
	case constants.KeyEscape:
		d.PostEvent(&CancelEvent{})
	}
}

// activateDefault activates the default button if it is enabled and shown.
func (d *Dialog) activateDefault() bool {
	b := d.defaultButton
	if b == nil || b.destroyed || !b.Enabled() || !b.shown() {
		return false
	}
	b.Activate()
	return true
}

// overlayOwner is a widget drawing a popup outside its own bounds, such
// as an open drop-down list. Clicks inside the popup go to the widget.
type overlayOwner interface {
	overlayContains(x, y int) bool
}

func (d *Dialog) handleClickAt(x, y int) {
	if ov, ok := d.focus.(overlayOwner); ok && ov.overlayContains(x, y) {
		d.dirty = true
		d.focus.handleClick(x, y)
		return
	}
	target := widgetAt(d, x, y)
	if target == nil {
		return
	}
	d.dirty = true
	for w := target; w != nil; w = w.Parent() {
		if w.base().canFocus() {
			d.setFocus(w)
			break
		}
	}
	for w := target; w != nil; w = w.Parent() {
		if w.base().canFocus() && w.handleClick(x, y) {
			return
		}
	}
}

func (d *Dialog) focusables() []Widget {
	var out []Widget
	walk(d, func(w Widget) bool {
		if !w.base().shown() {
			return false
		}
		if w.base().canFocus() {
			out = append(out, w)
		}
		return true
	})
	return out
}

// Focused returns the widget holding keyboard focus, or nil.
func (d *Dialog) Focused() Widget { return d.focus }

// SetFocus moves keyboard focus to w. It fails if w belongs to another
// dialog or cannot take focus.
func (d *Dialog) SetFocus(w Widget) error {
	if w == nil || w.FindDialog() != d {
		return fmt.Errorf("%w: widget is not part of this dialog", ErrInvalidNesting)
	}
	if !w.base().canFocus() {
		return fmt.Errorf("%w: %s cannot take focus", ErrInvalidValue, w.Kind())
	}
	d.setFocus(w)
	return nil
}

func (d *Dialog) setFocus(w Widget) {
	if d.focus == w {
		return
	}
	prev := d.focus
	d.focus = w
	if prev != nil {
		if fl, ok := prev.(focusLoser); ok {
			fl.focusLost()
		}
		prev.base().changed(false)
	}
	if w != nil {
		w.base().changed(false)
	}
}

func (d *Dialog) moveFocus(delta int) {
	list := d.focusables()
	if len(list) == 0 {
		d.setFocus(nil)
		return
	}
	cur := -1
	for i, w := range list {
		if w == d.focus {
			cur = i
			break
		}
	}
	next := 0
	switch {
	case cur < 0 && delta < 0:
		next = len(list) - 1
	case cur >= 0:
		next = (cur + delta + len(list)) % len(list)
	}
	d.setFocus(list[next])
}

// forgetDetached drops the default button and focus once they no longer
// belong to the dialog, after a subtree was torn down.
func (d *Dialog) forgetDetached() {
	if d.defaultButton != nil && d.defaultButton.FindDialog() != d {
		d.defaultButton = nil
	}
	if d.focus != nil && d.focus.FindDialog() != d {
		d.focus = nil
	}
	d.ensureFocus()
}

// ensureFocus keeps focus on a focusable widget, falling back to the
// first one in tree order.
func (d *Dialog) ensureFocus() {
	if d.destroyed {
		return
	}
	if d.focus != nil && d.focus.base().canFocus() && d.focus.FindDialog() == d {
		return
	}
	list := d.focusables()
	if len(list) == 0 {
		d.setFocus(nil)
		return
	}
	d.setFocus(list[0])
}

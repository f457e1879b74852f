package aui

import (
	"slices"

	"go.uber.org/atomic"
)

// dialogStack holds the open dialogs, bottom-most first. It is touched
// from the UI goroutine only.
type dialogStack struct {
	entries []*Dialog
}

var (
	openDialogs = &dialogStack{}

	// quitRequested is set when the last open dialog is destroyed, telling
	// enclosing loops (such as router.Run) to stop.
	quitRequested = atomic.NewBool(false)
)

func (s *dialogStack) push(d *Dialog) {
	s.entries = append(s.entries, d)
}

// remove takes d out of the stack wherever it is.
func (s *dialogStack) remove(d *Dialog) bool {
	i := slices.Index(s.entries, d)
	if i < 0 {
		return false
	}
	s.entries = slices.Delete(s.entries, i, i+1)
	return true
}

func (s *dialogStack) peek() *Dialog {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

func (s *dialogStack) contains(d *Dialog) bool {
	return slices.Contains(s.entries, d)
}

func (s *dialogStack) isEmpty() bool { return len(s.entries) == 0 }

func (s *dialogStack) len() int { return len(s.entries) }

func (s *dialogStack) snapshot() []*Dialog {
	return slices.Clone(s.entries)
}

// TopmostDialog returns the dialog on top of the open-stack. With strict
// set an empty stack yields ErrNoDialog; otherwise it yields nil, nil.
func TopmostDialog(strict bool) (*Dialog, error) {
	d := openDialogs.peek()
	if d == nil && strict {
		return nil, ErrNoDialog
	}
	return d, nil
}

// CurrentDialog returns the topmost open dialog, or nil.
func CurrentDialog() *Dialog {
	return openDialogs.peek()
}

// OpenDialogCount returns the number of open dialogs.
func OpenDialogCount() int {
	return openDialogs.len()
}

// QuitRequested reports whether the last open dialog has been destroyed
// since the flag was last reset.
func QuitRequested() bool {
	return quitRequested.Load()
}

// ResetQuit clears the quit flag, e.g. before opening a new main dialog.
func ResetQuit() {
	quitRequested.Store(false)
}

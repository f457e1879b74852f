package aui

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrCancelled indicates the user backed out of a host chooser.
	// This is a normal flow control error, not an infrastructure failure.
	ErrCancelled = errors.New("operation cancelled by user")

	// ErrInvalidNesting is returned when a child is attached to a container
	// that cannot take it, such as a second child of a single-child container.
	ErrInvalidNesting = errors.New("invalid widget nesting")

	// ErrNoDialog is returned by strict dialog lookups on an empty open-stack.
	ErrNoDialog = errors.New("no dialog open")

	// ErrInvalidValue is returned when a widget refuses a value, for example
	// an out-of-range integer or a malformed date. The prior value is kept.
	ErrInvalidValue = errors.New("invalid value")

	// ErrDialogState is returned when a dialog operation does not fit the
	// dialog's lifecycle state, such as waiting on a destroyed dialog.
	ErrDialogState = errors.New("invalid dialog state")

	// ErrNotSupported is returned by backends lacking an optional feature.
	ErrNotSupported = errors.New("not supported by backend")
)

// BackendError represents a failure inside a backend: a native handle could
// not be created, a draw call failed or the host surface is gone.
//
// Realisation and draw failures are logged and swallowed by the event loop;
// BackendError surfaces only from operations the application calls directly,
// such as Dialog.Open.
type BackendError struct {
	Op     string // Operation that failed (e.g., "realize", "render")
	Widget string // Widget kind, if the failure is tied to one
	Err    error  // Underlying error
}

func (e *BackendError) Error() string {
	prefix := "aui: " + e.Op
	if e.Widget != "" {
		prefix = fmt.Sprintf("aui: %s %s", e.Op, e.Widget)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", prefix, e.Err)
	}
	return prefix
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// NewBackendError creates a new backend error.
func NewBackendError(op string, err error) *BackendError {
	return &BackendError{Op: op, Err: err}
}

// IsBackendError checks if an error is a backend error.
func IsBackendError(err error) bool {
	var backendErr *BackendError
	return errors.As(err, &backendErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

func nestingError(parent, child Widget, reason string) error {
	return fmt.Errorf("%w: %s cannot hold %s: %s", ErrInvalidNesting, kindOf(parent), kindOf(child), reason)
}

func kindOf(w Widget) string {
	if w == nil {
		return "<nil>"
	}
	return w.Kind()
}

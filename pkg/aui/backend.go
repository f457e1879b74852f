package aui

import (
	"context"

	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// Size is a width and height in backend units (cells or pixels).
type Size struct {
	Width, Height int
}

// Rect is a positioned rectangle in backend units.
type Rect struct {
	X, Y, Width, Height int
}

// Contains returns true if the point is inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Inset returns the rect shrunk by the insets.
func (r Rect) Inset(in Insets) Rect {
	return Rect{
		X:      r.X + in.Left,
		Y:      r.Y + in.Top,
		Width:  max(0, r.Width-in.Horizontal()),
		Height: max(0, r.Height-in.Vertical()),
	}
}

func (r Rect) length(d constants.Dimension) int {
	if d == constants.Horizontal {
		return r.Width
	}
	return r.Height
}

func (s Size) length(d constants.Dimension) int {
	if d == constants.Horizontal {
		return s.Width
	}
	return s.Height
}

func sizeAlong(d constants.Dimension, main, cross int) Size {
	if d == constants.Horizontal {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

// Insets is spacing on the four sides of a rect.
type Insets = internal.Insets

// Metrics measures text and widget chrome in backend units.
// The layout engine is unit-agnostic; each backend decides what a unit is.
type Metrics interface {
	TextWidth(text string) int
	LineHeight() int
	FrameInsets() Insets // border around frames, popups and list views
	ButtonPadding() Size // added around a push button label
	IndicatorWidth() int // check box or radio indicator, including its gap
	ScrollbarWidth() int
	Spacing() int // gap between box children
	PixelsToUnits(px int, dim constants.Dimension) int
}

// Handle is the backend's native counterpart of a widget. It is created
// lazily the first time the widget is realised and lives until the widget
// is destroyed.
type Handle interface {
	// Update tells the backend the widget's state changed.
	Update()
	// Destroy releases native resources.
	Destroy()
}

// InputKind classifies host input delivered to the event loop.
type InputKind int

const (
	InputKey       InputKind = iota // a semantic key
	InputClick                      // a primary button click at X, Y
	InputResize                     // the host surface changed size
	InputClose                      // the host asked to close the window
	InputInterrupt                  // Ctrl-C or another host cancel signal
	InputWake                       // Backend.Wake was called
)

// Input is one host input event in semantic form.
type Input struct {
	Kind InputKind
	Key  constants.Key
	Rune rune // for KeyRune
	X, Y int  // for InputClick
}

// KeyInput is shorthand for a key Input.
func KeyInput(k constants.Key) Input {
	return Input{Kind: InputKey, Key: k}
}

// RuneInput is shorthand for a printable character Input.
func RuneInput(r rune) Input {
	if r == ' ' {
		return Input{Kind: InputKey, Key: constants.KeySpace, Rune: r}
	}
	return Input{Kind: InputKey, Key: constants.KeyRune, Rune: r}
}

// Backend realises abstract widgets natively, draws them and delivers host
// input. All methods except Wake are called from the UI goroutine only.
type Backend interface {
	Name() string
	Metrics() Metrics
	// ScreenSize is the area available to main dialogs.
	ScreenSize() Size

	// Realize produces the native handle of a widget.
	Realize(w Widget) (Handle, error)
	// SetEnabled desensitises or re-sensitises a widget's native view.
	SetEnabled(w Widget, enabled bool)

	OpenDialog(d *Dialog) error
	CloseDialog(d *Dialog)
	// Render draws the open dialogs, bottom-most first.
	Render(dialogs []*Dialog) error

	// WaitInput blocks until host input arrives or ctx is done, in which
	// case it returns ctx.Err().
	WaitInput(ctx context.Context) (Input, error)
	// Wake makes a pending WaitInput return an InputWake. Safe to call from
	// any goroutine.
	Wake()
	Beep()

	HostDialogs
}

// HostDialogs are the blocking host-toolkit modals. Each chooser returns
// ErrCancelled when the user backs out.
type HostDialogs interface {
	// Suspend hands the host surface back before a native modal runs.
	Suspend() error
	// Resume reclaims the surface afterwards.
	Resume() error

	ChooseDirectory(start, title string) (string, error)
	ChooseFile(start, filter, title string) (string, error)
	ChooseSaveFile(start, filter, title string) (string, error)
}

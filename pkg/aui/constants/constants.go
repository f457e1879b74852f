// Package constants defines shared tags, key codes and environment
// configuration used throughout the aui toolkit and its backends.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables understood by the toolkit.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	BackendEnvVar      = "AUI_BACKEND"
	LogLevelEnvVar     = "AUI_LOG_LEVEL"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// Dimension selects one of the two layout axes.
type Dimension int

const (
	Horizontal Dimension = iota
	Vertical
)

// Other returns the perpendicular axis.
func (d Dimension) Other() Dimension {
	if d == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (d Dimension) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Alignment positions a child inside the space its container allocates.
type Alignment int

const (
	AlignUnchanged Alignment = iota // keep the child's own stretch behaviour
	AlignBegin                      // left or top
	AlignCenter
	AlignEnd // right or bottom
)

func (a Alignment) String() string {
	switch a {
	case AlignBegin:
		return "begin"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "unchanged"
	}
}

// EventReason tags why a widget posted an event.
type EventReason int

const (
	ReasonActivated EventReason = iota
	ReasonValueChanged
	ReasonSelectionChanged
)

func (r EventReason) String() string {
	switch r {
	case ReasonActivated:
		return "activated"
	case ReasonValueChanged:
		return "value-changed"
	case ReasonSelectionChanged:
		return "selection-changed"
	default:
		return "unknown"
	}
}

// DialogKind distinguishes full-screen main dialogs from popups.
type DialogKind int

const (
	DialogMain DialogKind = iota
	DialogPopup
)

func (k DialogKind) String() string {
	if k == DialogPopup {
		return "popup"
	}
	return "main"
}

// ColorMode picks the palette a dialog is drawn with.
type ColorMode int

const (
	ColorNormal ColorMode = iota
	ColorInfo
	ColorWarn
)

func (m ColorMode) String() string {
	switch m {
	case ColorInfo:
		return "info"
	case ColorWarn:
		return "warn"
	default:
		return "normal"
	}
}

// Key is a semantic key, mapped by each backend from its native key codes.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyEnter
	KeySpace
	KeyEscape
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete
	KeyRune // a printable character, carried alongside the key
)

func (k Key) GetName() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyEnter:
		return "Enter"
	case KeySpace:
		return "Space"
	case KeyEscape:
		return "Escape"
	case KeyTab:
		return "Tab"
	case KeyBacktab:
		return "Backtab"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyRune:
		return "Rune"
	default:
		return "None"
	}
}

// Default timing and geometry constants.
const (
	DefaultRepeatDelay    = 300 * time.Millisecond // held controller button, first repeat
	DefaultRepeatInterval = 50 * time.Millisecond  // held controller button, later repeats
	DefaultWindowWidth    = 1024
	DefaultWindowHeight   = 768
	PixelsPerColumn       = 10 // 800 px -> 80 columns
	PixelsPerRow          = 24 // 600 px -> 25 rows
)

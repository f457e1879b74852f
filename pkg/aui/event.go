package aui

import (
	"fmt"

	"github.com/BrandonKowalski/aui/pkg/aui/constants"
)

// EventType identifies an Event variant.
type EventType int

const (
	WidgetEventType EventType = iota
	MenuEventType
	TimeoutEventType
	CancelEventType
)

func (t EventType) String() string {
	switch t {
	case WidgetEventType:
		return "widget"
	case MenuEventType:
		return "menu"
	case TimeoutEventType:
		return "timeout"
	case CancelEventType:
		return "cancel"
	default:
		return "unknown"
	}
}

// Event is what Dialog.WaitForEvent returns. The concrete type is one of
// *WidgetEvent, *MenuEvent, *TimeoutEvent or *CancelEvent.
type Event interface {
	Type() EventType
	fmt.Stringer
}

// WidgetEvent is posted by a widget on user input.
type WidgetEvent struct {
	Widget Widget
	Reason constants.EventReason
}

func (e *WidgetEvent) Type() EventType { return WidgetEventType }

func (e *WidgetEvent) String() string {
	return fmt.Sprintf("WidgetEvent(%s, %s)", kindOf(e.Widget), e.Reason)
}

// MenuEvent is posted when a menu item, a tab or a rich-text link is
// activated. ID is the slash-joined menu path, the tab label, or the link
// URL. Item is nil for link activations.
type MenuEvent struct {
	Item Selectable
	ID   string
}

func (e *MenuEvent) Type() EventType { return MenuEventType }

func (e *MenuEvent) String() string {
	return fmt.Sprintf("MenuEvent(%q)", e.ID)
}

// TimeoutEvent is returned when WaitForEvent's timeout expires first.
type TimeoutEvent struct{}

func (e *TimeoutEvent) Type() EventType { return TimeoutEventType }

func (e *TimeoutEvent) String() string { return "TimeoutEvent" }

// CancelEvent is returned on a host interrupt, a close-window request or an
// unhandled Escape. The dialog stays open; the application decides.
type CancelEvent struct{}

func (e *CancelEvent) Type() EventType { return CancelEventType }

func (e *CancelEvent) String() string { return "CancelEvent" }

package aui_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
)

func TestDefaultButtonActivatesOnEnter(t *testing.T) {
	f := newFixture(t)
	field, err := f.factory.CreateInputField(f.vbox, "Name")
	require.NoError(t, err)
	b1, err := f.factory.CreatePushButton(f.vbox, "&OK")
	require.NoError(t, err)
	_, err = f.factory.CreatePushButton(f.vbox, "&Cancel")
	require.NoError(t, err)
	require.NoError(t, f.dialog.SetDefaultButton(b1))
	f.open(t)

	require.Equal(t, aui.Widget(field), f.dialog.Focused())
	f.backend.PushKeys(constants.KeyEnter)

	we := widgetEvent(t, f.poll(t))
	assert.Equal(t, aui.Widget(b1), we.Widget)
	assert.Equal(t, constants.ReasonActivated, we.Reason)
	assert.Nil(t, f.poll(t), "exactly one event")
	assert.True(t, b1.IsDefault())
}

func TestEnterWithoutDefaultBeeps(t *testing.T) {
	f := newFixture(t)
	_, err := f.factory.CreateInputField(f.vbox, "Name")
	require.NoError(t, err)
	f.open(t)

	f.backend.PushKeys(constants.KeyEnter)
	assert.Nil(t, f.poll(t))
	assert.Equal(t, 1, f.backend.Beeps)
}

func TestDisabledDefaultButtonIsSkipped(t *testing.T) {
	f := newFixture(t)
	_, err := f.factory.CreateInputField(f.vbox, "Name")
	require.NoError(t, err)
	b, err := f.factory.CreatePushButton(f.vbox, "OK")
	require.NoError(t, err)
	require.NoError(t, f.dialog.SetDefaultButton(b))
	b.SetEnabled(false)
	f.open(t)

	f.backend.PushKeys(constants.KeyEnter)
	assert.Nil(t, f.poll(t))
}

func TestDefaultButtonMustBelongToDialog(t *testing.T) {
	f := newFixture(t)
	other := newFixture(t)
	b, err := other.factory.CreatePushButton(other.vbox, "Elsewhere")
	require.NoError(t, err)

	assert.ErrorIs(t, f.dialog.SetDefaultButton(b), aui.ErrInvalidNesting)
	assert.Nil(t, f.dialog.DefaultButton())
}

func TestTimeoutThenCancel(t *testing.T) {
	f := newFixture(t)
	f.open(t)

	start := time.Now()
	ev, err := f.dialog.WaitForEvent(50)
	require.NoError(t, err)
	assert.IsType(t, &aui.TimeoutEvent{}, ev)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)

	f.backend.OnIdle = func() {
		f.backend.OnIdle = nil
		f.backend.Push(aui.Input{Kind: aui.InputInterrupt})
		f.backend.Wake()
	}
	ev, err = f.dialog.WaitForEvent(0)
	require.NoError(t, err)
	assert.IsType(t, &aui.CancelEvent{}, ev)
	assert.True(t, f.dialog.IsOpen(), "cancel leaves the dialog open")
}

func TestEscapeAndCloseCancel(t *testing.T) {
	f := newFixture(t)
	f.open(t)

	f.backend.PushKeys(constants.KeyEscape)
	assert.IsType(t, &aui.CancelEvent{}, f.poll(t))

	f.backend.Push(aui.Input{Kind: aui.InputClose})
	assert.IsType(t, &aui.CancelEvent{}, f.poll(t))
}

func TestWaitForEventContext(t *testing.T) {
	f := newFixture(t)
	f.open(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := f.dialog.WaitForEventContext(ctx, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPendingEventIsReplaced(t *testing.T) {
	f := newFixture(t)
	b, err := f.factory.CreatePushButton(f.vbox, "OK")
	require.NoError(t, err)
	f.open(t)

	f.dialog.PostEvent(&aui.TimeoutEvent{})
	f.dialog.PostEvent(&aui.WidgetEvent{Widget: b, Reason: constants.ReasonActivated})

	ev, err := f.dialog.WaitForEvent(0)
	require.NoError(t, err)
	assert.Equal(t, aui.Widget(b), widgetEvent(t, ev).Widget)
	assert.Nil(t, f.poll(t), "the replaced event is gone")
}

func TestWaitOnClosedDialog(t *testing.T) {
	f := newFixture(t)

	_, err := f.dialog.WaitForEvent(10)
	assert.ErrorIs(t, err, aui.ErrDialogState)

	f.dialog.Destroy()
	assert.ErrorIs(t, f.dialog.Open(), aui.ErrDialogState)
	_, err = f.dialog.PollEvent()
	assert.ErrorIs(t, err, aui.ErrDialogState)
}

func TestDialogStack(t *testing.T) {
	f := newFixture(t)
	f.open(t)
	require.NoError(t, f.dialog.Open(), "opening twice is a no-op")
	assert.Equal(t, 1, aui.OpenDialogCount())

	popup, err := f.factory.CreatePopupDialog(constants.ColorWarn)
	require.NoError(t, err)
	_, err = f.factory.CreateLabel(popup, "Sure?")
	require.NoError(t, err)
	require.NoError(t, popup.Open())

	assert.Equal(t, 2, aui.OpenDialogCount())
	assert.Equal(t, popup, aui.CurrentDialog())
	top, err := aui.TopmostDialog(true)
	require.NoError(t, err)
	assert.Equal(t, popup, top)

	popup.Destroy()
	assert.Equal(t, f.dialog, aui.CurrentDialog())
	assert.False(t, aui.QuitRequested())

	f.dialog.Destroy()
	assert.Zero(t, aui.OpenDialogCount())
	assert.True(t, aui.QuitRequested(), "destroying the last dialog requests quit")
	assert.Equal(t, []*aui.Dialog{f.dialog, popup}, f.backend.Opened)
	assert.Equal(t, []*aui.Dialog{popup, f.dialog}, f.backend.Closed)

	top, err = aui.TopmostDialog(false)
	assert.NoError(t, err)
	assert.Nil(t, top)
	_, err = aui.TopmostDialog(true)
	assert.ErrorIs(t, err, aui.ErrNoDialog)
}

func TestPopupIsCentered(t *testing.T) {
	f := newFixture(t)
	f.open(t)

	popup, err := f.factory.CreatePopupDialog(constants.ColorInfo)
	require.NoError(t, err)
	_, err = f.factory.CreateLabel(popup, "0123456789")
	require.NoError(t, err)
	require.NoError(t, popup.Open())
	t.Cleanup(popup.Destroy)
	popup.Recalc()

	// 10 columns of text plus a one-cell frame on each side.
	assert.Equal(t, aui.Rect{X: 34, Y: 11, Width: 12, Height: 3}, popup.Bounds())
}

func TestRealizeFailureIsNotFatal(t *testing.T) {
	f := newFixture(t)
	f.backend.FailRealize = map[string]error{"Label": errors.New("no surface")}
	_, err := f.factory.CreateLabel(f.vbox, "skipped")
	require.NoError(t, err)

	f.open(t)
	assert.True(t, f.dialog.IsOpen(), "realisation failures are logged, not fatal")
	assert.Len(t, f.backend.Handles, 2, "dialog and box only")
}

func TestFocusMovesWithTab(t *testing.T) {
	f := newFixture(t)
	a, err := f.factory.CreatePushButton(f.vbox, "A")
	require.NoError(t, err)
	_, err = f.factory.CreateLabel(f.vbox, "not focusable")
	require.NoError(t, err)
	b, err := f.factory.CreatePushButton(f.vbox, "B")
	require.NoError(t, err)
	f.open(t)

	assert.Equal(t, aui.Widget(a), f.dialog.Focused())
	f.backend.PushKeys(constants.KeyTab)
	f.poll(t)
	assert.Equal(t, aui.Widget(b), f.dialog.Focused())
	f.backend.PushKeys(constants.KeyTab)
	f.poll(t)
	assert.Equal(t, aui.Widget(a), f.dialog.Focused(), "focus wraps around")

	label := f.vbox.Children()[1]
	assert.ErrorIs(t, f.dialog.SetFocus(label), aui.ErrInvalidValue)
}

package router_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/auitest"
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/router"
)

type fixture struct {
	backend *auitest.Backend
	dialog  *aui.Dialog
	button  *aui.PushButton
	other   *aui.PushButton
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	backend := auitest.New()
	factory := aui.NewFactory(backend)

	dlg, err := factory.CreateMainDialog(constants.ColorNormal)
	require.NoError(t, err)
	vbox, err := factory.CreateVBox(dlg)
	require.NoError(t, err)
	button, err := factory.CreatePushButton(vbox, "&One")
	require.NoError(t, err)
	other, err := factory.CreatePushButton(vbox, "&Two")
	require.NoError(t, err)
	require.NoError(t, dlg.Open())
	t.Cleanup(dlg.Destroy)

	return &fixture{backend: backend, dialog: dlg, button: button, other: other}
}

func TestDispatchRunsHandlersInOrder(t *testing.T) {
	f := newFixture(t)
	r := router.New(f.dialog)

	var calls []string
	r.OnWidget(f.button, func(aui.Event) error {
		calls = append(calls, "first")
		return nil
	})
	r.OnWidget(f.button, func(aui.Event) error {
		calls = append(calls, "second")
		return nil
	})
	r.OnWidget(f.other, func(aui.Event) error {
		calls = append(calls, "other")
		return nil
	})

	handled, err := r.Dispatch(&aui.WidgetEvent{Widget: f.button, Reason: constants.ReasonActivated})
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestRemoveTakesOnlyThatHandler(t *testing.T) {
	f := newFixture(t)
	r := router.New(f.dialog)

	var calls []string
	first := r.OnWidget(f.button, func(aui.Event) error {
		calls = append(calls, "first")
		return nil
	})
	r.OnWidget(f.button, func(aui.Event) error {
		calls = append(calls, "second")
		return nil
	})

	first.Remove()
	first.Remove()

	_, err := r.Dispatch(&aui.WidgetEvent{Widget: f.button})
	require.NoError(t, err)
	assert.Equal(t, []string{"second"}, calls)
}

func TestDispatchRecoversFromPanics(t *testing.T) {
	f := newFixture(t)
	r := router.New(f.dialog)

	ran := false
	r.OnTimeout(func(aui.Event) error {
		panic("boom")
	})
	r.OnTimeout(func(aui.Event) error {
		ran = true
		return nil
	})

	handled, err := r.Dispatch(&aui.TimeoutEvent{})
	require.NoError(t, err)
	assert.True(t, handled)
	assert.True(t, ran, "handlers after a panicking one still run")
}

func TestMenuEventsMatchItemAndID(t *testing.T) {
	f := newFixture(t)
	r := router.New(f.dialog)

	item := aui.NewMenuItem("Open")
	var got []string
	r.OnMenuItem(item, func(aui.Event) error {
		got = append(got, "item")
		return nil
	})
	r.OnMenuID("File/Open", func(aui.Event) error {
		got = append(got, "id")
		return nil
	})

	_, err := r.Dispatch(&aui.MenuEvent{Item: item, ID: "File/Open"})
	require.NoError(t, err)
	assert.Equal(t, []string{"item", "id"}, got)
}

func TestUnhandledFallback(t *testing.T) {
	f := newFixture(t)
	r := router.New(f.dialog)

	var seen aui.Event
	r.OnUnhandled(func(ev aui.Event) error {
		seen = ev
		return nil
	})
	r.OnCancel(func(aui.Event) error { return nil })

	_, err := r.Dispatch(&aui.CancelEvent{})
	require.NoError(t, err)
	assert.Nil(t, seen)

	handled, err := r.Dispatch(&aui.MenuEvent{ID: "https://example.com"})
	require.NoError(t, err)
	assert.True(t, handled)
	assert.IsType(t, &aui.MenuEvent{}, seen)
}

func TestPopScopeRemovesScopedHandlers(t *testing.T) {
	f := newFixture(t)
	r := router.New(f.dialog)

	var calls []string
	r.OnWidget(f.button, func(aui.Event) error {
		calls = append(calls, "outer")
		return nil
	})
	r.PushScope("page")
	r.OnWidget(f.button, func(aui.Event) error {
		calls = append(calls, "inner")
		return nil
	})
	assert.Equal(t, 1, r.Stack().Len())

	r.PopScope()
	assert.True(t, r.Stack().IsEmpty())

	_, err := r.Dispatch(&aui.WidgetEvent{Widget: f.button})
	require.NoError(t, err)
	assert.Equal(t, []string{"outer"}, calls)
}

func TestRunStopsOnErrStop(t *testing.T) {
	f := newFixture(t)
	r := router.New(f.dialog)

	count := 0
	r.OnWidget(f.other, func(aui.Event) error {
		count++
		return router.ErrStop
	})

	// Focus starts on the first button; Tab moves to the second.
	f.backend.PushKeys(constants.KeyTab, constants.KeyEnter)
	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, 1, count)
	assert.False(t, f.dialog.Destroyed())
}

func TestRunReturnsHandlerErrors(t *testing.T) {
	f := newFixture(t)
	r := router.New(f.dialog)

	boom := errors.New("boom")
	r.OnWidget(f.button, func(aui.Event) error { return boom })

	f.backend.PushKeys(constants.KeyEnter)
	assert.ErrorIs(t, r.Run(context.Background()), boom)
}

func TestRunDestroysDialogOnUnhandledCancel(t *testing.T) {
	f := newFixture(t)
	r := router.New(f.dialog)

	f.backend.PushKeys(constants.KeyEscape)
	require.NoError(t, r.Run(context.Background()))
	assert.True(t, f.dialog.Destroyed())
	assert.True(t, aui.QuitRequested())
}

func TestRunDispatchesTimeouts(t *testing.T) {
	f := newFixture(t)
	r := router.New(f.dialog).SetTimeout(10)

	ticks := 0
	r.OnTimeout(func(aui.Event) error {
		ticks++
		if ticks == 3 {
			return router.ErrStop
		}
		return nil
	})

	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, 3, ticks)
}

func TestRunHonoursContext(t *testing.T) {
	f := newFixture(t)
	r := router.New(f.dialog)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, r.Run(ctx), context.Canceled)
}

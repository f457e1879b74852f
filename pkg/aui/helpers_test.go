package aui_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/auitest"
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
)

type fixture struct {
	backend *auitest.Backend
	factory *aui.WidgetFactory
	dialog  *aui.Dialog
	vbox    *aui.Box
}

// newFixture builds a main dialog holding an empty VBox. The dialog is not
// opened so tests can finish building first.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	backend := auitest.New()
	factory := aui.NewFactory(backend)

	dlg, err := factory.CreateMainDialog(constants.ColorNormal)
	require.NoError(t, err)
	vbox, err := factory.CreateVBox(dlg)
	require.NoError(t, err)
	t.Cleanup(func() {
		dlg.Destroy()
		aui.ResetQuit()
	})

	return &fixture{backend: backend, factory: factory, dialog: dlg, vbox: vbox}
}

func (f *fixture) open(t *testing.T) {
	t.Helper()
	require.NoError(t, f.dialog.Open())
}

// poll handles queued input up to the first posted event and returns it,
// if any. Input queued behind that event stays queued.
func (f *fixture) poll(t *testing.T) aui.Event {
	t.Helper()
	ev, err := f.dialog.PollEvent()
	require.NoError(t, err)
	return ev
}

// drain polls until the backend queue is empty and returns the last
// posted event, if any.
func (f *fixture) drain(t *testing.T) aui.Event {
	t.Helper()
	var last aui.Event
	for {
		if ev := f.poll(t); ev != nil {
			last = ev
		}
		if f.backend.Pending() == 0 {
			return last
		}
	}
}

func widgetEvent(t *testing.T, ev aui.Event) *aui.WidgetEvent {
	t.Helper()
	require.NotNil(t, ev, "expected a widget event")
	we, ok := ev.(*aui.WidgetEvent)
	require.True(t, ok, "got %s", ev)
	return we
}

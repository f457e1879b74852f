package tui_test

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/backend/tui"
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

const waitMs = 2000

func newSimulation(t *testing.T, w, h int) (*tui.Simulation, *aui.WidgetFactory) {
	t.Helper()
	sim, err := tui.NewSimulation(w, h)
	require.NoError(t, err)
	t.Cleanup(sim.Close)
	return sim, aui.NewFactory(sim)
}

func openDialog(t *testing.T, f *aui.WidgetFactory, kind constants.DialogKind) (*aui.Dialog, *aui.Box) {
	t.Helper()
	var dlg *aui.Dialog
	var err error
	if kind == constants.DialogPopup {
		dlg, err = f.CreatePopupDialog(constants.ColorNormal)
	} else {
		dlg, err = f.CreateMainDialog(constants.ColorNormal)
	}
	require.NoError(t, err)
	vbox, err := f.CreateVBox(dlg)
	require.NoError(t, err)
	t.Cleanup(dlg.Destroy)
	return dlg, vbox
}

// draw runs one loop iteration without waiting so the screen is current.
func draw(t *testing.T, dlg *aui.Dialog) {
	t.Helper()
	_, err := dlg.PollEvent()
	require.NoError(t, err)
}

func TestRenderDrawsWidgets(t *testing.T) {
	sim, f := newSimulation(t, 40, 12)
	dlg, vbox := openDialog(t, f, constants.DialogMain)

	_, err := f.CreateHeading(vbox, "Settings")
	require.NoError(t, err)
	_, err = f.CreateCheckBox(vbox, "&Verbose", true)
	require.NoError(t, err)
	_, err = f.CreatePushButton(vbox, "&OK")
	require.NoError(t, err)
	require.NoError(t, dlg.Open())

	draw(t, dlg)
	assert.True(t, sim.ContainsText("Settings"))
	assert.True(t, sim.ContainsText("[x] Verbose"))
	assert.True(t, sim.ContainsText("[ OK ]"))
}

func TestTypingThenEnterActivatesDefaultButton(t *testing.T) {
	sim, f := newSimulation(t, 40, 10)
	dlg, vbox := openDialog(t, f, constants.DialogMain)

	name, err := f.CreateInputField(vbox, "&Name")
	require.NoError(t, err)
	ok, err := f.CreatePushButton(vbox, "&OK")
	require.NoError(t, err)
	require.NoError(t, dlg.SetDefaultButton(ok))
	require.NoError(t, dlg.Open())

	sim.InjectText("Ada")
	sim.InjectKeys(constants.KeyEnter)

	ev, err := dlg.WaitForEvent(waitMs)
	require.NoError(t, err)
	we, isWidget := ev.(*aui.WidgetEvent)
	require.True(t, isWidget, "got %s", ev)
	assert.Equal(t, aui.Widget(ok), we.Widget)
	assert.Equal(t, "Ada", name.Value())

	draw(t, dlg)
	assert.True(t, sim.ContainsText("Ada"))
}

func TestCtrlCBecomesCancel(t *testing.T) {
	sim, f := newSimulation(t, 30, 8)
	dlg, vbox := openDialog(t, f, constants.DialogMain)
	_, err := f.CreateLabel(vbox, "waiting")
	require.NoError(t, err)
	require.NoError(t, dlg.Open())

	sim.InjectInterrupt()
	ev, err := dlg.WaitForEvent(waitMs)
	require.NoError(t, err)
	assert.IsType(t, &aui.CancelEvent{}, ev)
}

func TestClickTogglesCheckBox(t *testing.T) {
	sim, f := newSimulation(t, 40, 10)
	dlg, vbox := openDialog(t, f, constants.DialogMain)
	cb, err := f.CreateCheckBox(vbox, "Remember me", false)
	require.NoError(t, err)
	cb.SetNotify(true)
	require.NoError(t, dlg.Open())

	draw(t, dlg)
	x, y := sim.FindText("[ ] Remember me")
	require.GreaterOrEqual(t, x, 0)

	sim.InjectClick(x+1, y)
	ev, err := dlg.WaitForEvent(waitMs)
	require.NoError(t, err)
	we, isWidget := ev.(*aui.WidgetEvent)
	require.True(t, isWidget, "got %s", ev)
	assert.Equal(t, aui.Widget(cb), we.Widget)
	assert.Equal(t, constants.ReasonValueChanged, we.Reason)
	assert.True(t, cb.Value())
}

func TestMenuPopupIsDrawn(t *testing.T) {
	sim, f := newSimulation(t, 40, 12)
	dlg, err := f.CreateMainDialog(constants.ColorNormal)
	require.NoError(t, err)
	t.Cleanup(dlg.Destroy)
	bar, err := f.CreateMenuBar(dlg)
	require.NoError(t, err)
	file, err := bar.AddNewMenu("&File")
	require.NoError(t, err)
	_, err = file.AddAction("&Open")
	require.NoError(t, err)
	_, err = file.AddAction("&Quit")
	require.NoError(t, err)
	require.NoError(t, dlg.Open())

	draw(t, dlg)
	assert.True(t, sim.ContainsText("File"))
	assert.False(t, sim.ContainsText("Open"))

	sim.InjectKeys(constants.KeyDown)
	ev, err := dlg.WaitForEvent(200)
	require.NoError(t, err)
	assert.IsType(t, &aui.TimeoutEvent{}, ev)
	assert.True(t, bar.IsExpanded())
	assert.True(t, sim.ContainsText("Open"))
	assert.True(t, sim.ContainsText("Quit"))
}

func TestPopupDialogIsCenteredWithTitle(t *testing.T) {
	sim, f := newSimulation(t, 40, 12)
	dlg, vbox := openDialog(t, f, constants.DialogPopup)
	dlg.SetTitle("Confirm")
	_, err := f.CreateLabel(vbox, "Really?")
	require.NoError(t, err)
	require.NoError(t, dlg.Open())

	draw(t, dlg)
	b := dlg.Bounds()
	assert.Greater(t, b.X, 0)
	assert.Greater(t, b.Y, 0)
	assert.True(t, sim.ContainsText("Confirm"))
	assert.True(t, sim.ContainsText("Really?"))
}

func TestResizeRelaysOut(t *testing.T) {
	sim, f := newSimulation(t, 40, 10)
	dlg, vbox := openDialog(t, f, constants.DialogMain)
	_, err := f.CreateLabel(vbox, "hello")
	require.NoError(t, err)
	require.NoError(t, dlg.Open())
	draw(t, dlg)
	assert.Equal(t, 40, dlg.Bounds().Width)

	sim.Resize(60, 20)
	ev, err := dlg.WaitForEvent(200)
	require.NoError(t, err)
	assert.IsType(t, &aui.TimeoutEvent{}, ev)
	assert.Equal(t, aui.Rect{Width: 60, Height: 20}, dlg.Bounds())
}

func TestFocusedButtonUsesHighlight(t *testing.T) {
	sim, f := newSimulation(t, 30, 6)
	dlg, vbox := openDialog(t, f, constants.DialogMain)
	_, err := f.CreatePushButton(vbox, "Go")
	require.NoError(t, err)
	require.NoError(t, dlg.Open())

	draw(t, dlg)
	x, y := sim.FindText("[ Go ]")
	require.GreaterOrEqual(t, x, 0)

	r, g, b := internal.GetTheme().Normal.Highlight.Components()
	_, bg, _ := sim.CellStyle(x, y).Decompose()
	assert.Equal(t, tcell.NewRGBColor(int32(r), int32(g), int32(b)), bg)
}

func TestWakeInterruptsWaitInput(t *testing.T) {
	sim, _ := newSimulation(t, 30, 6)
	go sim.Wake()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	for {
		in, err := sim.WaitInput(ctx)
		require.NoError(t, err)
		if in.Kind == aui.InputWake {
			return
		}
	}
}

package sdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/auitest"
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
)

func TestKeyboardNavigationWraps(t *testing.T) {
	var k keyboard
	k.move(constants.KeyUp)
	assert.Equal(t, keySpace, k.current().action, "up from the top row wraps to the space bar")

	k.move(constants.KeyDown)
	for range 10 {
		k.move(constants.KeyRight)
	}
	assert.Equal(t, keyBackspace, k.current().action)

	k.move(constants.KeyDown)
	assert.Equal(t, "p", k.current().lower, "a shorter row clamps the column")

	k.move(constants.KeyRight)
	assert.Equal(t, "q", k.current().lower)
	k.move(constants.KeyLeft)
	assert.Equal(t, "p", k.current().lower)
}

func TestKeyboardModes(t *testing.T) {
	var k keyboard
	k.show()
	k.row, k.col = 1, 0

	assert.Equal(t, []aui.Input{aui.RuneInput('q')}, k.press(sdl.CONTROLLER_BUTTON_A))

	assert.Nil(t, k.press(sdl.CONTROLLER_BUTTON_BACK))
	assert.Equal(t, []aui.Input{aui.RuneInput('Q')}, k.press(sdl.CONTROLLER_BUTTON_A))

	k.row, k.col = 0, 0
	assert.Equal(t, []aui.Input{aui.RuneInput('!')}, k.activate(), "shifted digits give symbols")

	k.row, k.col = 3, len(keyboardRows[3])-1
	assert.Nil(t, k.activate())
	assert.Equal(t, "abc", k.label(k.current()))
	k.row, k.col = 3, 1
	assert.Equal(t, []aui.Input{aui.RuneInput(',')}, k.activate())

	k.show()
	assert.False(t, k.shift)
	assert.False(t, k.symbols, "opening resets the modes")
}

func TestKeyboardEditingButtons(t *testing.T) {
	var k keyboard
	k.show()

	assert.Equal(t, []aui.Input{aui.KeyInput(constants.KeyBackspace)}, k.press(sdl.CONTROLLER_BUTTON_B))
	assert.Equal(t, []aui.Input{aui.RuneInput(' ')}, k.press(sdl.CONTROLLER_BUTTON_X))
	assert.Equal(t, []aui.Input{aui.KeyInput(constants.KeyLeft)}, k.press(sdl.CONTROLLER_BUTTON_LEFTSHOULDER))
	assert.Equal(t, []aui.Input{aui.KeyInput(constants.KeyRight)}, k.repeat(constants.KeyPageDown))

	assert.Nil(t, k.repeat(constants.KeyDown))
	assert.Equal(t, 1, k.row, "held d-pad keeps moving")

	assert.Nil(t, k.press(sdl.CONTROLLER_BUTTON_Y))
	assert.False(t, k.open)

	k.show()
	assert.Equal(t, []aui.Input{aui.KeyInput(constants.KeyEnter)}, k.press(sdl.CONTROLLER_BUTTON_START))
	assert.False(t, k.open)
}

func TestKeyboardLayoutFillsArea(t *testing.T) {
	var k keyboard
	area := aui.Rect{X: 10, Y: 200, Width: 640, Height: 180}
	gap := 3
	rects := k.layout(area, gap)
	require.Len(t, rects, len(keyboardRows))

	for i, row := range rects {
		require.Len(t, row, len(keyboardRows[i]))
		last := row[len(row)-1]
		assert.Equal(t, area.X+area.Width-gap, last.X+last.Width, "row %d", i)
	}
	bottom := rects[len(rects)-1][0]
	assert.Equal(t, area.Y+area.Height-gap, bottom.Y+bottom.Height)
	assert.Greater(t, rects[0][10].Width, rects[0][0].Width, "special keys are wider")
}

func TestControllerOpensKeyboardOnTextFields(t *testing.T) {
	factory := aui.NewFactory(auitest.New())
	dlg, err := factory.CreateMainDialog(constants.ColorNormal)
	require.NoError(t, err)
	t.Cleanup(func() {
		dlg.Destroy()
		aui.ResetQuit()
	})
	vbox, err := factory.CreateVBox(dlg)
	require.NoError(t, err)
	field, err := factory.CreateInputField(vbox, "Name")
	require.NoError(t, err)
	button, err := factory.CreatePushButton(vbox, "OK")
	require.NoError(t, err)
	require.NoError(t, dlg.Open())

	assert.True(t, takesText(field))
	assert.False(t, takesText(button))
	field.SetEnabled(false)
	assert.False(t, takesText(field))
	field.SetEnabled(true)

	require.NoError(t, dlg.SetFocus(field))
	b := newInputBackend()
	x := &sdl.ControllerButtonEvent{Type: sdl.CONTROLLERBUTTONDOWN, Button: uint8(sdl.CONTROLLER_BUTTON_X)}

	_, ok := b.convertEvent(x)
	assert.False(t, ok)
	require.True(t, b.keyboard.open)

	b.keyboard.row, b.keyboard.col = 2, 0
	in, ok := b.convertEvent(&sdl.ControllerButtonEvent{Type: sdl.CONTROLLERBUTTONDOWN, Button: uint8(sdl.CONTROLLER_BUTTON_A)})
	require.True(t, ok)
	assert.Equal(t, aui.RuneInput('a'), in)

	b.keyboard.hide()
	require.NoError(t, dlg.SetFocus(button))
	in, ok = b.convertEvent(x)
	require.True(t, ok)
	assert.Equal(t, aui.KeyInput(constants.KeySpace), in, "elsewhere X toggles")
	assert.False(t, b.keyboard.open)
}

func TestComboBoxTakesTextWhenEditable(t *testing.T) {
	factory := aui.NewFactory(auitest.New())
	dlg, err := factory.CreateMainDialog(constants.ColorNormal)
	require.NoError(t, err)
	t.Cleanup(func() {
		dlg.Destroy()
		aui.ResetQuit()
	})
	editable, err := factory.CreateComboBox(dlg, "Host", true)
	require.NoError(t, err)
	assert.True(t, takesText(editable))

	dlg2, err := factory.CreatePopupDialog(constants.ColorNormal)
	require.NoError(t, err)
	t.Cleanup(dlg2.Destroy)
	fixed, err := factory.CreateComboBox(dlg2, "Shell", false)
	require.NoError(t, err)
	assert.False(t, takesText(fixed))
}

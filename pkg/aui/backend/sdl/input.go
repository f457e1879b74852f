package sdl

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// Printable keys arrive as text input, so space and characters are not
// listed here.
var keyMap = map[sdl.Keycode]constants.Key{
	sdl.K_UP:        constants.KeyUp,
	sdl.K_DOWN:      constants.KeyDown,
	sdl.K_LEFT:      constants.KeyLeft,
	sdl.K_RIGHT:     constants.KeyRight,
	sdl.K_PAGEUP:    constants.KeyPageUp,
	sdl.K_PAGEDOWN:  constants.KeyPageDown,
	sdl.K_HOME:      constants.KeyHome,
	sdl.K_END:       constants.KeyEnd,
	sdl.K_RETURN:    constants.KeyEnter,
	sdl.K_KP_ENTER:  constants.KeyEnter,
	sdl.K_ESCAPE:    constants.KeyEscape,
	sdl.K_TAB:       constants.KeyTab,
	sdl.K_BACKSPACE: constants.KeyBackspace,
	sdl.K_DELETE:    constants.KeyDelete,
}

// Controller layout: A accepts, B backs out, X toggles, Y moves focus. X on
// a text field opens the on-screen keyboard instead.
var controllerMap = map[sdl.GameControllerButton]constants.Key{
	sdl.CONTROLLER_BUTTON_DPAD_UP:       constants.KeyUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:     constants.KeyDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:     constants.KeyLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    constants.KeyRight,
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.KeyPageUp,
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.KeyPageDown,
	sdl.CONTROLLER_BUTTON_A:             constants.KeyEnter,
	sdl.CONTROLLER_BUTTON_START:         constants.KeyEnter,
	sdl.CONTROLLER_BUTTON_B:             constants.KeyEscape,
	sdl.CONTROLLER_BUTTON_BACK:          constants.KeyEscape,
	sdl.CONTROLLER_BUTTON_X:             constants.KeySpace,
	sdl.CONTROLLER_BUTTON_Y:             constants.KeyTab,
}

func convertKey(e *sdl.KeyboardEvent) (aui.Input, bool) {
	if e.Type != sdl.KEYDOWN {
		return aui.Input{}, false
	}
	sym := e.Keysym.Sym
	mod := e.Keysym.Mod
	if mod&uint16(sdl.KMOD_CTRL) != 0 && sym == sdl.K_c {
		return aui.Input{Kind: aui.InputInterrupt}, true
	}
	k, ok := keyMap[sym]
	if !ok {
		return aui.Input{}, false
	}
	if k == constants.KeyTab && mod&uint16(sdl.KMOD_SHIFT) != 0 {
		k = constants.KeyBacktab
	}
	return aui.KeyInput(k), true
}

// convertEvent maps one SDL event. Text input may carry several runes;
// the rest are queued in b.pending.
func (b *Backend) convertEvent(ev sdl.Event) (aui.Input, bool) {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return aui.Input{Kind: aui.InputClose}, true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED, sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_EXPOSED:
			return aui.Input{Kind: aui.InputResize}, true
		case sdl.WINDOWEVENT_CLOSE:
			return aui.Input{Kind: aui.InputClose}, true
		case sdl.WINDOWEVENT_FOCUS_LOST:
			b.repeat.Reset()
		}

	case *sdl.KeyboardEvent:
		return convertKey(e)

	case *sdl.TextInputEvent:
		var inputs []aui.Input
		for _, r := range e.GetText() {
			inputs = append(inputs, aui.RuneInput(r))
		}
		if len(inputs) == 0 {
			return aui.Input{}, false
		}
		b.pending = append(b.pending, inputs[1:]...)
		return inputs[0], true

	case *sdl.MouseButtonEvent:
		if e.Type == sdl.MOUSEBUTTONDOWN && e.Button == sdl.BUTTON_LEFT {
			return aui.Input{Kind: aui.InputClick, X: int(e.X), Y: int(e.Y)}, true
		}

	case *sdl.MouseWheelEvent:
		switch {
		case e.Y > 0:
			return aui.KeyInput(constants.KeyUp), true
		case e.Y < 0:
			return aui.KeyInput(constants.KeyDown), true
		}

	case *sdl.ControllerButtonEvent:
		btn := sdl.GameControllerButton(e.Button)
		pressed := e.Type == sdl.CONTROLLERBUTTONDOWN
		k, mapped := controllerMap[btn]
		if mapped {
			b.repeat.SetHeld(k, pressed)
		}
		switch {
		case !pressed:
		case b.keyboard.open:
			return b.deliver(b.keyboard.press(btn))
		case btn == sdl.CONTROLLER_BUTTON_X && takesText(focusedWidget()):
			b.keyboard.show()
			b.redraw()
		case mapped:
			return aui.KeyInput(k), true
		}

	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			b.openController(int(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			b.closeController(sdl.JoystickID(e.Which))
		}

	case *sdl.UserEvent:
		switch e.Type {
		case b.wakeEvent:
			return aui.Input{Kind: aui.InputWake}, true
		case b.interruptEvent:
			return aui.Input{Kind: aui.InputInterrupt}, true
		}
	}
	return aui.Input{}, false
}

// deliver returns the first keyboard input and queues the rest. The
// keyboard itself is redrawn either way.
func (b *Backend) deliver(inputs []aui.Input) (aui.Input, bool) {
	b.redraw()
	if len(inputs) == 0 {
		return aui.Input{}, false
	}
	b.pending = append(b.pending, inputs[1:]...)
	return inputs[0], true
}

func (b *Backend) openControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		b.openController(i)
	}
}

func (b *Backend) openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	gc := sdl.GameControllerOpen(index)
	if gc == nil {
		internal.GetInternalLogger().Warn("Failed to open controller", "index", index, "error", sdl.GetError())
		return
	}
	id := gc.Joystick().InstanceID()
	if _, ok := b.controllers[id]; ok {
		gc.Close()
		return
	}
	b.controllers[id] = gc
	internal.GetInternalLogger().Debug("Controller connected", "name", gc.Name(), "id", id)
}

func (b *Backend) closeController(id sdl.JoystickID) {
	if gc, ok := b.controllers[id]; ok {
		gc.Close()
		delete(b.controllers, id)
		b.repeat.Reset()
		internal.GetInternalLogger().Debug("Controller disconnected", "id", id)
	}
}

func (b *Backend) closeControllers() {
	for id, gc := range b.controllers {
		gc.Close()
		delete(b.controllers, id)
	}
}

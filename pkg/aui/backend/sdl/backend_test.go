package sdl

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sqweek/dialog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

func TestWindowOptionsFlags(t *testing.T) {
	assert.Equal(t, uint32(sdl.WINDOW_SHOWN), WindowOptions{}.ToSDLFlags())

	flags := WindowOptions{Borderless: true, Resizable: true, Hidden: true}.ToSDLFlags()
	assert.NotZero(t, flags&sdl.WINDOW_BORDERLESS)
	assert.NotZero(t, flags&sdl.WINDOW_RESIZABLE)
	assert.Zero(t, flags&sdl.WINDOW_SHOWN)
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := aui.DefaultConfig()
	cfg.Window.Title = "Installer"
	cfg.Window.Borderless = true
	cfg.Theme.FontSize = 24

	opts := OptionsFromConfig(cfg)
	assert.Equal(t, "Installer", opts.Title)
	assert.Equal(t, int32(constants.DefaultWindowWidth), opts.Width)
	assert.True(t, opts.Window.Borderless)
	assert.Equal(t, 24, opts.FontSize)
	assert.Equal(t, constants.DefaultRepeatDelay, opts.RepeatDelay)
}

func TestOptionsDefaults(t *testing.T) {
	t.Setenv(constants.EnvironmentEnvVar, "DEV")
	opts := Options{Window: WindowOptions{Borderless: true}}.withDefaults()
	assert.Equal(t, int32(constants.DefaultWindowWidth), opts.Width)
	assert.Equal(t, int32(constants.DefaultWindowHeight), opts.Height)
	assert.False(t, opts.Window.Borderless, "development windows keep their decorations")
	assert.NotEmpty(t, opts.Title)
}

type fakeFont struct{ height, perRune int }

func (f fakeFont) SizeUTF8(text string) (int, int, error) {
	return len([]rune(text)) * f.perRune, f.height, nil
}

func (f fakeFont) Height() int { return f.height }

func TestMetricsScaleWithFont(t *testing.T) {
	m := Metrics{font: fakeFont{height: 24, perRune: 10}}
	assert.Equal(t, 50, m.TextWidth("hello"))
	assert.Equal(t, 0, m.TextWidth(""))
	assert.Equal(t, 24, m.LineHeight())
	assert.Equal(t, aui.Insets{Top: 24, Right: 8, Bottom: 8, Left: 8}, m.FrameInsets())
	assert.Equal(t, 32, m.IndicatorWidth())
	assert.Equal(t, 120, m.PixelsToUnits(120, constants.Horizontal))
}

func TestFontCandidates(t *testing.T) {
	theme := internal.Theme{FontPath: "/theme.ttf", FontSize: 20}
	paths := fontCandidates("/explicit.ttf", theme)
	require.GreaterOrEqual(t, len(paths), 2)
	assert.Equal(t, []string{"/explicit.ttf", "/theme.ttf"}, paths[:2])

	assert.Equal(t, 30, fontSize(30, theme))
	assert.Equal(t, 20, fontSize(0, theme))
	assert.Equal(t, defaultFontSize, fontSize(0, internal.Theme{}))
}

func TestConvertKey(t *testing.T) {
	down := func(sym sdl.Keycode, mod uint16) *sdl.KeyboardEvent {
		return &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sym, Mod: mod}}
	}
	tests := []struct {
		name string
		ev   *sdl.KeyboardEvent
		want aui.Input
		ok   bool
	}{
		{"arrow", down(sdl.K_DOWN, 0), aui.KeyInput(constants.KeyDown), true},
		{"keypad enter", down(sdl.K_KP_ENTER, 0), aui.KeyInput(constants.KeyEnter), true},
		{"shift tab", down(sdl.K_TAB, uint16(sdl.KMOD_LSHIFT)), aui.KeyInput(constants.KeyBacktab), true},
		{"ctrl-c", down(sdl.K_c, uint16(sdl.KMOD_LCTRL)), aui.Input{Kind: aui.InputInterrupt}, true},
		{"letter comes as text", down(sdl.K_a, 0), aui.Input{}, false},
		{"key up", &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_UP}}, aui.Input{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convertKey(tt.ev)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func newInputBackend() *Backend {
	return &Backend{
		repeat:         internal.NewKeyRepeat(0, 0),
		controllers:    make(map[sdl.JoystickID]*sdl.GameController),
		wakeEvent:      1000,
		interruptEvent: 1001,
	}
}

func TestTextInputQueuesRunes(t *testing.T) {
	b := newInputBackend()
	ev := &sdl.TextInputEvent{Type: sdl.TEXTINPUT}
	copy(ev.Text[:], "hé ")

	in, ok := b.convertEvent(ev)
	require.True(t, ok)
	assert.Equal(t, aui.RuneInput('h'), in)
	assert.Equal(t, []aui.Input{aui.RuneInput('é'), aui.RuneInput(' ')}, b.pending)
}

func TestControllerButtonsHoldForRepeat(t *testing.T) {
	b := newInputBackend()

	in, ok := b.convertEvent(&sdl.ControllerButtonEvent{Type: sdl.CONTROLLERBUTTONDOWN, Button: uint8(sdl.CONTROLLER_BUTTON_DPAD_DOWN)})
	require.True(t, ok)
	assert.Equal(t, aui.KeyInput(constants.KeyDown), in)
	assert.Equal(t, constants.KeyDown, b.repeat.Held())

	_, ok = b.convertEvent(&sdl.ControllerButtonEvent{Type: sdl.CONTROLLERBUTTONUP, Button: uint8(sdl.CONTROLLER_BUTTON_DPAD_DOWN)})
	assert.False(t, ok)
	assert.Equal(t, constants.KeyNone, b.repeat.Held())

	in, ok = b.convertEvent(&sdl.ControllerButtonEvent{Type: sdl.CONTROLLERBUTTONDOWN, Button: uint8(sdl.CONTROLLER_BUTTON_B)})
	require.True(t, ok)
	assert.Equal(t, aui.KeyInput(constants.KeyEscape), in)
	assert.Equal(t, constants.KeyNone, b.repeat.Held(), "only navigation keys repeat")
}

func TestHostEvents(t *testing.T) {
	b := newInputBackend()
	tests := []struct {
		name string
		ev   sdl.Event
		want aui.InputKind
	}{
		{"quit", &sdl.QuitEvent{Type: sdl.QUIT}, aui.InputClose},
		{"resize", &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_SIZE_CHANGED}, aui.InputResize},
		{"close", &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_CLOSE}, aui.InputClose},
		{"wake", &sdl.UserEvent{Type: b.wakeEvent}, aui.InputWake},
		{"power key", &sdl.UserEvent{Type: b.interruptEvent}, aui.InputInterrupt},
		{"click", &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, X: 5, Y: 7}, aui.InputClick},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, ok := b.convertEvent(tt.ev)
			require.True(t, ok)
			assert.Equal(t, tt.want, in.Kind)
		})
	}

	in, _ := b.convertEvent(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, X: 5, Y: 7})
	assert.Equal(t, 5, in.X)
	assert.Equal(t, 7, in.Y)

	_, ok := b.convertEvent(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_LEFT})
	assert.False(t, ok, "release is not a click")
}

func TestFitSize(t *testing.T) {
	box := aui.Rect{Width: 100, Height: 50}
	assert.Equal(t, aui.Size{Width: 40, Height: 20}, fitSize(aui.Size{Width: 40, Height: 20}, box, false))
	assert.Equal(t, aui.Size{Width: 100, Height: 50}, fitSize(aui.Size{Width: 40, Height: 20}, box, true))
	assert.Equal(t, aui.Size{Width: 50, Height: 50}, fitSize(aui.Size{Width: 200, Height: 200}, box, false))
	assert.Equal(t, aui.Size{Width: 100, Height: 50}, fitSize(aui.Size{}, box, false))
}

func TestRasterizeSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.svg")
	svg := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect width="10" height="10" fill="#ff0000"/></svg>`
	require.NoError(t, os.WriteFile(path, []byte(svg), 0o644))

	rgba, err := rasterize(path, aui.Size{Width: 16, Height: 16})
	require.NoError(t, err)
	assert.Equal(t, 16, rgba.Bounds().Dx())
	r, g, _, a := rgba.At(8, 8).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Zero(t, g)
	assert.Equal(t, uint32(0xffff), a)

	_, err = rasterize(filepath.Join(t.TempDir(), "missing.svg"), aui.Size{Width: 4, Height: 4})
	assert.Error(t, err)
}

func TestChooserHelpers(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	assert.Equal(t, dir, startDir(dir))
	assert.Equal(t, dir, startDir(file))
	assert.Equal(t, "", startDir(""))

	assert.ErrorIs(t, chooserError(dialog.ErrCancelled), aui.ErrCancelled)
	other := errors.New("boom")
	assert.Equal(t, other, chooserError(other))
	assert.NoError(t, chooserError(nil))
}

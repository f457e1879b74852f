// Package sdl is the desktop aui backend. It draws dialogs into an SDL2
// window with TrueType text, one unit per pixel, and reads keyboard, mouse
// and game controller input.
//
// SDL must be driven from one OS thread. Call runtime.LockOSThread in the
// goroutine that creates the backend and runs the dialogs.
package sdl

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// waitSlice bounds one blocking wait so held controller buttons repeat
// and a cancelled context is noticed.
const waitSlice = 10 // ms

const (
	textCacheSize  = 256
	imageCacheSize = 32
)

// ErrClosed is returned by WaitInput after Close.
var ErrClosed = errors.New("sdl: backend closed")

type textKey struct {
	text  string
	color internal.RGB
}

type imageKey struct {
	path          string
	width, height int32
}

// Backend implements aui.Backend on an SDL window.
type Backend struct {
	win      *window
	font     *ttf.Font
	fontPath string
	metrics  Metrics

	texts  *internal.LRU[textKey, *sdl.Texture]
	images *internal.LRU[imageKey, *sdl.Texture]

	repeat      *internal.KeyRepeat
	controllers map[sdl.JoystickID]*sdl.GameController
	pending     []aui.Input
	keyboard    keyboard

	frame []*aui.Dialog // dialogs of the last Render

	wakeEvent      uint32
	interruptEvent uint32
	power          *powerWatcher

	handles map[aui.Widget]*handle
	iconSet bool
	closed  bool
}

// New initialises SDL, opens the window and loads the font.
func New(opts Options) (*Backend, error) {
	opts = opts.withDefaults()

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("failed to initialise SDL: %w", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("failed to initialise SDL_ttf: %w", err)
	}
	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		internal.GetInternalLogger().Warn("SDL_image initialisation incomplete", "error", err)
	}

	font, fontPath, err := openFont(opts.FontPath, opts.FontSize)
	if err != nil {
		quit()
		return nil, err
	}

	win, err := openWindow(opts)
	if err != nil {
		font.Close()
		quit()
		return nil, err
	}

	b := &Backend{
		win:         win,
		font:        font,
		fontPath:    fontPath,
		metrics:     Metrics{font: font},
		repeat:      internal.NewKeyRepeat(opts.RepeatDelay, opts.RepeatInterval),
		controllers: make(map[sdl.JoystickID]*sdl.GameController),
		handles:     make(map[aui.Widget]*handle),
	}
	b.texts = internal.NewLRUWithSize[textKey, *sdl.Texture](textCacheSize, destroyTexture)
	b.images = internal.NewLRUWithSize[imageKey, *sdl.Texture](imageCacheSize, destroyTexture)

	events := sdl.RegisterEvents(2)
	if events == ^uint32(0) {
		b.Close()
		return nil, errors.New("sdl: no user events left")
	}
	b.wakeEvent, b.interruptEvent = events, events+1

	b.openControllers()
	sdl.StartTextInput()

	if opts.InterruptDevice != "" {
		b.power, err = watchPower(opts.InterruptDevice, b.postInterrupt)
		if err != nil {
			internal.GetInternalLogger().Warn("Power key watcher unavailable", "device", opts.InterruptDevice, "error", err)
		}
	}

	internal.GetInternalLogger().Debug("SDL backend ready",
		"font", fontPath,
		"vsync", win.hasVSync,
		"controllers", len(b.controllers))
	return b, nil
}

func quit() {
	ttf.Quit()
	img.Quit()
	sdl.Quit()
}

func destroyTexture(t *sdl.Texture) {
	if t != nil {
		_ = t.Destroy()
	}
}

// Close releases every SDL resource.
func (b *Backend) Close() {
	if b.closed {
		return
	}
	b.closed = true
	if b.power != nil {
		b.power.Close()
	}
	sdl.StopTextInput()
	b.texts.Purge()
	b.images.Purge()
	b.closeControllers()
	b.win.close()
	b.font.Close()
	quit()
}

func (b *Backend) Name() string { return "sdl" }

func (b *Backend) Metrics() aui.Metrics { return b.metrics }

func (b *Backend) ScreenSize() aui.Size {
	w, h := b.win.size()
	return aui.Size{Width: int(w), Height: int(h)}
}

type handle struct {
	b *Backend
	w aui.Widget
}

// Update drops cached image textures. Text textures are keyed by content.
func (h *handle) Update() {
	if _, ok := h.w.(*aui.Image); ok {
		h.b.forgetImages()
	}
}

func (h *handle) Destroy() {
	delete(h.b.handles, h.w)
}

func (b *Backend) Realize(w aui.Widget) (aui.Handle, error) {
	h := &handle{b: b, w: w}
	b.handles[w] = h
	return h, nil
}

// SetEnabled has nothing to do; drawing reads Widget.Enabled.
func (b *Backend) SetEnabled(aui.Widget, bool) {}

func (b *Backend) OpenDialog(d *aui.Dialog) error {
	internal.GetInternalLogger().Debug("Opening dialog", "kind", d.DialogKind().String(), "title", d.Title())
	if d.Title() != "" {
		b.win.window.SetTitle(d.Title())
	}
	if !b.iconSet {
		b.iconSet = true
		b.setWindowIcon()
	}
	return nil
}

func (b *Backend) CloseDialog(d *aui.Dialog) {
	internal.GetInternalLogger().Debug("Closing dialog", "kind", d.DialogKind().String(), "title", d.Title())
	b.repeat.Reset()
	b.frame = slices.DeleteFunc(b.frame, func(o *aui.Dialog) bool { return o == d })
}

// Render clears the window and draws the dialogs bottom-most first.
func (b *Backend) Render(dialogs []*aui.Dialog) error {
	theme := internal.GetTheme()
	size := b.ScreenSize()
	var err error
	screen := painter{b: b, clip: aui.Rect{Width: size.Width, Height: size.Height}, errp: &err}

	screen.fill(screen.clip, theme.Normal.Background)
	for i, d := range dialogs {
		r := &renderer{
			b:      b,
			pal:    theme.Palette(d.ColorMode()),
			focus:  d.Focused(),
			active: i == len(dialogs)-1,
		}
		r.drawDialog(screen, d)
	}
	b.frame = dialogs
	if b.keyboard.open {
		b.drawKeyboard(screen, theme)
	}
	b.win.present()
	return err
}

// redraw repeats the last Render after a change only the backend knows
// about.
func (b *Backend) redraw() {
	if b.win == nil || len(b.frame) == 0 {
		return
	}
	if err := b.Render(b.frame); err != nil {
		internal.GetInternalLogger().Debug("Failed to redraw", "error", err)
	}
}

// WaitInput returns the next input. Input already queued is delivered even
// when ctx is done, so a poll drains the queue.
func (b *Backend) WaitInput(ctx context.Context) (aui.Input, error) {
	if b.closed {
		return aui.Input{}, ErrClosed
	}
	for {
		if len(b.pending) > 0 {
			in := b.pending[0]
			b.pending = b.pending[1:]
			return in, nil
		}
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			if in, ok := b.convertEvent(ev); ok {
				return in, nil
			}
		}
		if k := b.repeat.Update(); k != constants.KeyNone {
			if !b.keyboard.open {
				return aui.KeyInput(k), nil
			}
			if in, ok := b.deliver(b.keyboard.repeat(k)); ok {
				return in, nil
			}
		}
		if err := ctx.Err(); err != nil {
			return aui.Input{}, err
		}
		if ev := sdl.WaitEventTimeout(waitSlice); ev != nil {
			if in, ok := b.convertEvent(ev); ok {
				return in, nil
			}
		}
	}
}

// Wake may be called from any goroutine.
func (b *Backend) Wake() {
	b.push(b.wakeEvent)
}

func (b *Backend) postInterrupt() {
	b.push(b.interruptEvent)
}

func (b *Backend) push(typ uint32) {
	if _, err := sdl.PushEvent(&sdl.UserEvent{Type: typ}); err != nil {
		internal.GetInternalLogger().Debug("Failed to push event", "error", err)
	}
}

// Beep flashes the window; SDL has no system bell.
func (b *Backend) Beep() {
	if err := b.win.window.Flash(sdl.FLASH_BRIEFLY); err != nil {
		internal.GetInternalLogger().Debug("Beep failed", "error", err)
	}
}

// Suspend stops text input while a native chooser has the keyboard.
func (b *Backend) Suspend() error {
	sdl.StopTextInput()
	b.repeat.Reset()
	b.keyboard.hide()
	return nil
}

// Resume restarts text input and drops what the native chooser left in
// the queue.
func (b *Backend) Resume() error {
	sdl.FlushEvents(sdl.KEYDOWN, sdl.MOUSEWHEEL)
	sdl.StartTextInput()
	b.pending = b.pending[:0]
	return nil
}

var _ aui.Backend = (*Backend)(nil)

// Package tui is the character-cell aui backend. It draws dialogs on a
// terminal through tcell, one unit per column and per row.
package tui

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"

	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// ErrClosed is returned by WaitInput once the screen has been finalised.
var ErrClosed = errors.New("tui: screen closed")

// Backend implements aui.Backend on a tcell screen.
type Backend struct {
	screen  tcell.Screen
	metrics Metrics
	profile termenv.Profile
	ascii   bool

	events  chan tcell.Event
	wake    chan struct{}
	quit    chan struct{}
	closing sync.Once
	buttons tcell.ButtonMask

	handles map[aui.Widget]*handle

	// Host chooser prompts read and write the controlling terminal.
	stdin  *os.File
	stdout io.Writer
}

// New opens the terminal. The console log sink is turned off since the
// terminal becomes the drawing surface.
func New() (*Backend, error) {
	internal.SetConsoleLogging(false)
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen)
}

// NewWithScreen creates a backend on an existing tcell screen and
// initialises it.
func NewWithScreen(screen tcell.Screen) (*Backend, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	b := &Backend{
		screen:  screen,
		profile: termenv.EnvColorProfile(),
		events:  make(chan tcell.Event, 64),
		wake:    make(chan struct{}, 1),
		quit:    make(chan struct{}),
		handles: make(map[aui.Widget]*handle),
		stdin:   os.Stdin,
		stdout:  os.Stdout,
	}
	b.ascii = !screen.CanDisplay('▸', false)
	go b.pump()

	internal.GetInternalLogger().Debug("Terminal backend ready",
		"profile", profileName(b.profile),
		"ascii", b.ascii)
	return b, nil
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	default:
		return "ascii"
	}
}

// pump forwards screen events to WaitInput until the screen is finalised.
func (b *Backend) pump() {
	defer close(b.events)
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case b.events <- ev:
		case <-b.quit:
			return
		}
	}
}

// Close restores the terminal.
func (b *Backend) Close() {
	b.closing.Do(func() {
		close(b.quit)
		b.screen.Fini()
	})
}

func (b *Backend) Name() string { return "tui" }

func (b *Backend) Metrics() aui.Metrics { return b.metrics }

func (b *Backend) ScreenSize() aui.Size {
	w, h := b.screen.Size()
	return aui.Size{Width: w, Height: h}
}

// glyph picks the Unicode or the ASCII form of a chrome glyph.
func (b *Backend) glyph(unicode, ascii string) string {
	if b.ascii {
		return ascii
	}
	return unicode
}

type handle struct {
	b *Backend
	w aui.Widget
}

// Update is a no-op: every render redraws the widget from its state.
func (h *handle) Update() {}

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
	return nil
}

func (b *Backend) CloseDialog(d *aui.Dialog) {
	internal.GetInternalLogger().Debug("Closing dialog", "kind", d.DialogKind().String(), "title", d.Title())
}

// Render clears the screen and draws the dialogs bottom-most first.
func (b *Backend) Render(dialogs []*aui.Dialog) error {
	theme := internal.GetTheme()
	size := b.ScreenSize()
	screen := canvas{screen: b.screen, clip: aui.Rect{Width: size.Width, Height: size.Height}, tail: b.glyph("…", "~")}

	b.screen.HideCursor()
	b.screen.Fill(' ', b.styles(theme.Normal).normal)
	for i, d := range dialogs {
		r := &renderer{
			b:      b,
			st:     b.styles(theme.Palette(d.ColorMode())),
			focus:  d.Focused(),
			active: i == len(dialogs)-1,
		}
		r.drawDialog(screen, d)
	}
	b.screen.Show()
	return nil
}

// WaitInput returns the next input. Input already queued is delivered even
// when ctx is done, so a poll drains the queue.
func (b *Backend) WaitInput(ctx context.Context) (aui.Input, error) {
	for {
		select {
		case ev, ok := <-b.events:
			if !ok {
				return aui.Input{}, ErrClosed
			}
			if in, ok := b.convertEvent(ev); ok {
				return in, nil
			}
			continue
		case <-b.wake:
			return aui.Input{Kind: aui.InputWake}, nil
		default:
		}

		if err := ctx.Err(); err != nil {
			return aui.Input{}, err
		}

		select {
		case <-ctx.Done():
			return aui.Input{}, ctx.Err()
		case <-b.wake:
			return aui.Input{Kind: aui.InputWake}, nil
		case ev, ok := <-b.events:
			if !ok {
				return aui.Input{}, ErrClosed
			}
			if in, ok := b.convertEvent(ev); ok {
				return in, nil
			}
		}
	}
}

func (b *Backend) Wake() {
	select {
	case b.wake <- struct{}{}:
	default:
	}
}

func (b *Backend) Beep() {
	if err := b.screen.Beep(); err != nil {
		internal.GetInternalLogger().Debug("Beep failed", "error", err)
	}
}

// Suspend gives the terminal back to the shell.
func (b *Backend) Suspend() error {
	return b.screen.Suspend()
}

// Resume takes the terminal back and forces a full redraw.
func (b *Backend) Resume() error {
	if err := b.screen.Resume(); err != nil {
		return err
	}
	b.screen.Sync()
	return nil
}

var _ aui.Backend = (*Backend)(nil)

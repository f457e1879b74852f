// Package auitest provides an in-memory backend for testing code built on
// the aui toolkit without a terminal or a window.
package auitest

import (
	"context"
	"sync"

	"github.com/mattn/go-runewidth"

	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// Metrics measures in character cells, like the terminal backend: one unit
// per column and per row, one-cell frames and no box spacing.
type Metrics struct{}

func (Metrics) TextWidth(text string) int { return runewidth.StringWidth(text) }

func (Metrics) LineHeight() int { return 1 }

func (Metrics) FrameInsets() aui.Insets { return internal.Uniform(1) }

func (Metrics) ButtonPadding() aui.Size { return aui.Size{Width: 4} }

func (Metrics) IndicatorWidth() int { return 4 }

func (Metrics) ScrollbarWidth() int { return 1 }

func (Metrics) Spacing() int { return 0 }

func (Metrics) PixelsToUnits(px int, dim constants.Dimension) int {
	if dim == constants.Horizontal {
		return internal.PixelsToCells(px, constants.PixelsPerColumn)
	}
	return internal.PixelsToCells(px, constants.PixelsPerRow)
}

// Handle records how often the core touched a widget's native handle.
type Handle struct {
	Widget    aui.Widget
	Updates   int
	Destroyed bool
}

func (h *Handle) Update() { h.Updates++ }

func (h *Handle) Destroy() { h.Destroyed = true }

// Chooser is a canned host chooser answer.
type Chooser struct {
	Path string
	Err  error
}

// Backend is a scripted aui.Backend. Queued inputs are delivered in order;
// once the queue is empty WaitInput runs OnIdle, if set, and blocks until
// its context ends or Wake is called.
type Backend struct {
	mu     sync.Mutex
	inputs []aui.Input
	wake   chan struct{}

	Size aui.Size
	// FailRealize makes Realize fail for the named widget kinds.
	FailRealize map[string]error
	// OnIdle runs each time WaitInput finds the queue empty.
	OnIdle func()

	Handles   map[aui.Widget]*Handle
	Disabled  map[aui.Widget]bool
	Opened    []*aui.Dialog
	Closed    []*aui.Dialog
	Renders   int
	Beeps     int
	Suspended int
	Resumed   int

	Directory Chooser
	File      Chooser
	SaveFile  Chooser
	// Filters records the filter strings the file choosers were given.
	Filters []string
}

var _ aui.Backend = (*Backend)(nil)

// New returns a backend with an 80x25 cell screen.
func New() *Backend {
	return &Backend{
		Size:     aui.Size{Width: 80, Height: 25},
		wake:     make(chan struct{}, 1),
		Handles:  make(map[aui.Widget]*Handle),
		Disabled: make(map[aui.Widget]bool),
	}
}

// Push queues host input.
func (b *Backend) Push(inputs ...aui.Input) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.inputs = append(b.inputs, inputs...)
}

// PushKeys queues key presses.
func (b *Backend) PushKeys(keys ...constants.Key) {
	for _, k := range keys {
		b.Push(aui.KeyInput(k))
	}
}

// PushText queues one key press per rune.
func (b *Backend) PushText(text string) {
	for _, r := range text {
		b.Push(aui.RuneInput(r))
	}
}

// Pending is the number of queued inputs not yet delivered.
func (b *Backend) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.inputs)
}

func (b *Backend) Name() string { return "test" }

func (b *Backend) Metrics() aui.Metrics { return Metrics{} }

func (b *Backend) ScreenSize() aui.Size { return b.Size }

func (b *Backend) Realize(w aui.Widget) (aui.Handle, error) {
	if err := b.FailRealize[w.Kind()]; err != nil {
		return nil, err
	}
	h := &Handle{Widget: w}
	b.Handles[w] = h
	return h, nil
}

func (b *Backend) SetEnabled(w aui.Widget, enabled bool) {
	b.Disabled[w] = !enabled
}

func (b *Backend) OpenDialog(d *aui.Dialog) error {
	b.Opened = append(b.Opened, d)
	return nil
}

func (b *Backend) CloseDialog(d *aui.Dialog) {
	b.Closed = append(b.Closed, d)
}

func (b *Backend) Render([]*aui.Dialog) error {
	b.Renders++
	return nil
}

func (b *Backend) WaitInput(ctx context.Context) (aui.Input, error) {
	b.mu.Lock()
	if len(b.inputs) > 0 {
		in := b.inputs[0]
		b.inputs = b.inputs[1:]
		b.mu.Unlock()
		return in, nil
	}
	idle := b.OnIdle
	b.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return aui.Input{}, err
	}
	if idle != nil {
		idle()
	}
	select {
	case <-ctx.Done():
		return aui.Input{}, ctx.Err()
	case <-b.wake:
		return aui.Input{Kind: aui.InputWake}, nil
	}
}

func (b *Backend) Wake() {
	select {
	case b.wake <- struct{}{}:
	default:
	}
}

func (b *Backend) Beep() { b.Beeps++ }

func (b *Backend) Suspend() error {
	b.Suspended++
	return nil
}

func (b *Backend) Resume() error {
	b.Resumed++
	return nil
}

func (b *Backend) ChooseDirectory(string, string) (string, error) {
	return b.Directory.Path, b.Directory.Err
}

func (b *Backend) ChooseFile(_, filter, _ string) (string, error) {
	b.Filters = append(b.Filters, filter)
	return b.File.Path, b.File.Err
}

func (b *Backend) ChooseSaveFile(_, filter, _ string) (string, error) {
	b.Filters = append(b.Filters, filter)
	return b.SaveFile.Path, b.SaveFile.Err
}

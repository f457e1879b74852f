package sdl

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// window wraps the SDL window and renderer.
type window struct {
	window          *sdl.Window
	renderer        *sdl.Renderer
	hasVSync        bool
	lastPresentTime uint64
}

func openWindow(opts Options) (*window, error) {
	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)
	if constants.IsDevMode() {
		x, y = int32(50), int32(50)
	}

	internal.GetInternalLogger().Debug("Initializing SDL Window", "width", opts.Width, "height", opts.Height)

	w, err := sdl.CreateWindow(opts.Title, x, y, opts.Width, opts.Height, opts.Window.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(w, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		internal.GetInternalLogger().Warn("No accelerated renderer, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(w, -1, sdl.RENDERER_SOFTWARE)
	}
	if err != nil {
		w.Destroy()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	if err := renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		internal.GetInternalLogger().Debug("Blend mode unavailable", "error", err)
	}

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &window{
		window:   w,
		renderer: renderer,
		hasVSync: vsync,
	}, nil
}

// size is the drawable size in pixels.
func (w *window) size() (int32, int32) {
	width, height, err := w.renderer.GetOutputSize()
	if err != nil {
		return w.window.GetSize()
	}
	return width, height
}

// present swaps the render buffer and holds ~60fps when VSync is not
// available.
func (w *window) present() {
	w.renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

func (w *window) close() {
	w.renderer.Destroy()
	w.window.Destroy()
}

package sdl

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
)

// WindowOptions selects the SDL window flags.
type WindowOptions struct {
	Borderless        bool // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable         bool // Allow window resizing (SDL_WINDOW_RESIZABLE)
	Fullscreen        bool // Fullscreen mode (SDL_WINDOW_FULLSCREEN)
	FullscreenDesktop bool // Fullscreen at desktop resolution (SDL_WINDOW_FULLSCREEN_DESKTOP)
	AlwaysOnTop       bool // Window stays above others (SDL_WINDOW_ALWAYS_ON_TOP)
	Maximized         bool // Start maximized (SDL_WINDOW_MAXIMIZED)
	Hidden            bool // Start hidden (omits SDL_WINDOW_SHOWN)
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}

	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}

	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	if wo.FullscreenDesktop {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	if wo.AlwaysOnTop {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}

	if wo.Maximized {
		flags |= sdl.WINDOW_MAXIMIZED
	}

	return flags
}

// Options configures New.
type Options struct {
	Title  string
	Width  int32
	Height int32
	Window WindowOptions

	// FontPath is a TrueType font. Empty uses the theme's font, then the
	// first system font found.
	FontPath string
	FontSize int

	RepeatDelay    time.Duration
	RepeatInterval time.Duration

	// InterruptDevice is an evdev node (for example /dev/input/event1)
	// whose power key cancels the topmost dialog on a short press. Empty
	// disables it. Linux only.
	InterruptDevice string
}

// OptionsFromConfig builds Options from the toolkit configuration.
func OptionsFromConfig(cfg aui.Config) Options {
	opts := Options{
		Title:          cfg.Window.Title,
		Width:          int32(cfg.Window.Width),
		Height:         int32(cfg.Window.Height),
		FontPath:       cfg.Theme.FontPath,
		FontSize:       cfg.Theme.FontSize,
		RepeatDelay:    cfg.Input.RepeatDelay,
		RepeatInterval: cfg.Input.RepeatInterval,
		Window: WindowOptions{
			Borderless: cfg.Window.Borderless,
			Resizable:  cfg.Window.Resizable,
		},
	}
	if opts.Title == "" {
		opts.Title = aui.GetApplication().Title()
	}
	return opts
}

// withDefaults fills in what the caller left unset. Development mode
// always gets a decorated window.
func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = constants.DefaultWindowWidth
	}
	if o.Height <= 0 {
		o.Height = constants.DefaultWindowHeight
	}
	if o.Window.IsZero() {
		o.Window = WindowOptions{Resizable: true}
	}
	if constants.IsDevMode() {
		o.Window.Borderless = false
	}
	if o.Title == "" {
		o.Title = "aui"
	}
	return o
}

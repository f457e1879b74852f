package aui

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// Config is the toolkit configuration, normally read from a TOML file:
//
//	backend   = "tui"
//	log_level = "info"
//	log_path  = "logs/app.log"
//
//	[theme]
//	preset = "teal"
//	[theme.warn]
//	highlight = "#C0392B"
//
//	[input]
//	repeat_delay    = "300ms"
//	repeat_interval = "50ms"
//
//	[layout]
//	spacing = 1
//
//	[window]
//	width      = 1024
//	height     = 768
//	borderless = false
//	resizable  = true
type Config struct {
	Backend  string       `toml:"backend"`
	LogLevel string       `toml:"log_level"`
	LogPath  string       `toml:"log_path"`
	Theme    ThemeConfig  `toml:"theme"`
	Input    InputConfig  `toml:"input"`
	Layout   LayoutConfig `toml:"layout"`
	Window   WindowConfig `toml:"window"`
}

// ThemeConfig picks a preset and overrides single colours per colour mode.
// Colours are hex strings such as "#1E1E2E".
type ThemeConfig struct {
	Preset   string        `toml:"preset"`
	FontPath string        `toml:"font_path"`
	FontSize int           `toml:"font_size"`
	Normal   PaletteConfig `toml:"normal"`
	Info     PaletteConfig `toml:"info"`
	Warn     PaletteConfig `toml:"warn"`
}

type PaletteConfig struct {
	Background      string `toml:"background"`
	Text            string `toml:"text"`
	Highlight       string `toml:"highlight"`
	HighlightedText string `toml:"highlighted_text"`
	Accent          string `toml:"accent"`
	Disabled        string `toml:"disabled"`
	Border          string `toml:"border"`
}

// InputConfig tunes the synthetic key repeat of controller input.
type InputConfig struct {
	RepeatDelay    time.Duration `toml:"repeat_delay"`
	RepeatInterval time.Duration `toml:"repeat_interval"`
}

// LayoutConfig holds layout defaults. A negative spacing leaves the gap
// between box children to the backend.
type LayoutConfig struct {
	Spacing int `toml:"spacing"`
}

// WindowConfig configures the desktop backend's window.
type WindowConfig struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Borderless bool   `toml:"borderless"`
	Resizable  bool   `toml:"resizable"`
}

// DefaultConfig is the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Backend:  "tui",
		LogLevel: "error",
		Theme:    ThemeConfig{Preset: "default"},
		Input: InputConfig{
			RepeatDelay:    constants.DefaultRepeatDelay,
			RepeatInterval: constants.DefaultRepeatInterval,
		},
		Layout: LayoutConfig{Spacing: -1},
		Window: WindowConfig{
			Width:     constants.DefaultWindowWidth,
			Height:    constants.DefaultWindowHeight,
			Resizable: true,
		},
	}
}

// LoadConfig reads path over the defaults and applies the environment
// overrides. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		switch {
		case errors.Is(err, os.ErrNotExist):
			internal.GetInternalLogger().Debug("No config file, using defaults", "path", path)
		case err != nil:
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			warnUndecoded(md)
		}
	}
	cfg.ApplyEnv()
	return cfg, cfg.Validate()
}

// ParseConfig decodes TOML text over the defaults. Environment overrides
// are not applied.
func ParseConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	warnUndecoded(md)
	return cfg, cfg.Validate()
}

func warnUndecoded(md toml.MetaData) {
	for _, key := range md.Undecoded() {
		internal.GetInternalLogger().Warn("Ignoring unknown config key", "key", key.String())
	}
}

// ApplyEnv applies AUI_BACKEND, AUI_LOG_LEVEL, WINDOW_WIDTH and
// WINDOW_HEIGHT. Development mode (ENVIRONMENT=DEV) logs at debug level.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(constants.BackendEnvVar); v != "" {
		c.Backend = v
	}
	if v := os.Getenv(constants.LogLevelEnvVar); v != "" {
		c.LogLevel = v
	} else if constants.IsDevMode() {
		c.LogLevel = "debug"
	}
	if w, err := strconv.Atoi(os.Getenv(constants.WindowWidthEnvVar)); err == nil && w > 0 {
		c.Window.Width = w
	}
	if h, err := strconv.Atoi(os.Getenv(constants.WindowHeightEnvVar)); err == nil && h > 0 {
		c.Window.Height = h
	}
}

// Validate checks the backend name and the window size.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Backend) {
	case "tui", "sdl":
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidValue, c.Backend)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidValue, c.Window.Width, c.Window.Height)
	}
	return nil
}

// BuildTheme resolves the preset and applies the colour overrides.
func (c *Config) BuildTheme() (internal.Theme, error) {
	theme, ok := internal.ThemeByName(c.Theme.Preset)
	if !ok {
		internal.GetInternalLogger().Warn("Unknown theme preset, using default", "preset", c.Theme.Preset)
	}
	if c.Theme.FontPath != "" {
		theme.FontPath = c.Theme.FontPath
	}
	if c.Theme.FontSize > 0 {
		theme.FontSize = c.Theme.FontSize
	}

	var err error
	if theme.Normal, err = c.Theme.Normal.apply(theme.Normal); err != nil {
		return theme, fmt.Errorf("theme.normal: %w", err)
	}
	if theme.Info, err = c.Theme.Info.apply(theme.Info); err != nil {
		return theme, fmt.Errorf("theme.info: %w", err)
	}
	if theme.Warn, err = c.Theme.Warn.apply(theme.Warn); err != nil {
		return theme, fmt.Errorf("theme.warn: %w", err)
	}
	return theme, nil
}

func (pc PaletteConfig) apply(p internal.Palette) (internal.Palette, error) {
	fields := []struct {
		hex string
		dst *internal.RGB
	}{
		{pc.Background, &p.Background},
		{pc.Text, &p.Text},
		{pc.Highlight, &p.Highlight},
		{pc.HighlightedText, &p.HighlightedText},
		{pc.Accent, &p.Accent},
		{pc.Disabled, &p.Disabled},
		{pc.Border, &p.Border},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		rgb, err := internal.ParseHex(f.hex)
		if err != nil {
			return p, err
		}
		*f.dst = rgb
	}
	return p, nil
}

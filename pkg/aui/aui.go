package aui

import (
	"log/slog"

	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// Options configures toolkit initialisation.
type Options struct {
	ConfigPath     string  // TOML file, optional
	Config         *Config // used instead of ConfigPath when set
	LogPath        string  // overrides the config's log_path
	DisableConsole bool    // keep log records off stderr, e.g. for the terminal backend
	AppTitle       string
	AppIcon        string
	IconBasePath   string
}

// defaultBoxSpacing is the box spacing from the layout config, -1 to let
// the backend decide.
var defaultBoxSpacing = -1

// Init loads the configuration and sets up logging, the theme, layout
// defaults and application metadata. It returns the effective config so the
// caller can construct the configured backend.
func Init(options Options) (Config, error) {
	var (
		cfg Config
		err error
	)
	if options.Config != nil {
		cfg = *options.Config
		err = cfg.Validate()
	} else {
		cfg, err = LoadConfig(options.ConfigPath)
	}
	if err != nil {
		return cfg, err
	}

	if options.LogPath != "" {
		cfg.LogPath = options.LogPath
	}
	if cfg.LogPath != "" {
		internal.SetLogPath(cfg.LogPath)
	}
	internal.SetConsoleLogging(!options.DisableConsole)

	level := internal.ParseLevel(cfg.LogLevel)
	internal.SetLogLevel(level)
	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(max(level, slog.LevelWarn))
	}

	theme, err := cfg.BuildTheme()
	if err != nil {
		return cfg, err
	}
	internal.SetTheme(theme)
	defaultBoxSpacing = cfg.Layout.Spacing

	app := GetApplication()
	if options.AppTitle != "" {
		app.SetTitle(options.AppTitle)
	} else if cfg.Window.Title != "" {
		app.SetTitle(cfg.Window.Title)
	}
	if options.AppIcon != "" {
		app.SetIconSpec(options.AppIcon)
	}
	if options.IconBasePath != "" {
		app.SetIconBasePath(options.IconBasePath)
	}

	internal.GetInternalLogger().Debug("Initialised toolkit",
		"backend", cfg.Backend,
		"theme", theme.Name,
		"log_level", level.String())
	return cfg, nil
}

// Close destroys any dialogs still open and closes the log file.
func Close() {
	for d := openDialogs.peek(); d != nil; d = openDialogs.peek() {
		d.Destroy()
	}
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetTheme replaces the active theme. Open dialogs are redrawn on the next
// loop iteration.
func SetTheme(name string) bool {
	theme, ok := internal.ThemeByName(name)
	internal.SetTheme(theme)
	for _, d := range openDialogs.entries {
		d.invalidate(false)
	}
	return ok
}

package aui_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

func TestParseConfig(t *testing.T) {
	cfg, err := aui.ParseConfig(`
backend = "sdl"
log_level = "debug"

[theme]
preset = "teal"
font_size = 22

[theme.warn]
background = "#102030"

[input]
repeat_delay = "200ms"

[window]
title = "Installer"
width = 800
height = 480
`)
	require.NoError(t, err)

	assert.Equal(t, "sdl", cfg.Backend)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 200*time.Millisecond, cfg.Input.RepeatDelay)
	assert.Equal(t, constants.DefaultRepeatInterval, cfg.Input.RepeatInterval, "unset keys keep defaults")
	assert.Equal(t, -1, cfg.Layout.Spacing)
	assert.Equal(t, "Installer", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)

	theme, err := cfg.BuildTheme()
	require.NoError(t, err)
	assert.Equal(t, "teal", theme.Name)
	assert.Equal(t, 22, theme.FontSize)
	assert.Equal(t, internal.RGB(0x102030), theme.Palette(constants.ColorWarn).Background)
}

func TestParseConfigRejectsBadValues(t *testing.T) {
	_, err := aui.ParseConfig(`backend = "gtk"`)
	assert.ErrorIs(t, err, aui.ErrInvalidValue)

	_, err = aui.ParseConfig("[window]\nwidth = 0")
	assert.ErrorIs(t, err, aui.ErrInvalidValue)

	_, err = aui.ParseConfig("backend = ")
	assert.Error(t, err)

	cfg, err := aui.ParseConfig("[theme.normal]\ntext = \"blue\"")
	require.NoError(t, err)
	_, err = cfg.BuildTheme()
	assert.ErrorContains(t, err, "theme.normal")
}

func TestLoadConfigAppliesEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aui.toml")
	require.NoError(t, os.WriteFile(path, []byte("backend = \"tui\"\n[window]\nwidth = 640\n"), 0o644))

	t.Setenv(constants.BackendEnvVar, "sdl")
	t.Setenv(constants.WindowHeightEnvVar, "360")
	t.Setenv(constants.LogLevelEnvVar, "")
	t.Setenv(constants.EnvironmentEnvVar, constants.Development)

	cfg, err := aui.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "sdl", cfg.Backend)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 360, cfg.Window.Height)
	assert.Equal(t, "debug", cfg.LogLevel, "development mode logs at debug level")
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv(constants.BackendEnvVar, "")
	cfg, err := aui.LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, aui.DefaultConfig().Backend, cfg.Backend)
}

func TestUnknownPresetFallsBack(t *testing.T) {
	cfg := aui.DefaultConfig()
	cfg.Theme.Preset = "neon"
	theme, err := cfg.BuildTheme()
	require.NoError(t, err)
	assert.Equal(t, internal.DefaultTheme().Name, theme.Name)
}

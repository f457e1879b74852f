package aui_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/auitest"
)

func useBackend(t *testing.T, b aui.Backend) *aui.Application {
	t.Helper()
	app := aui.GetApplication()
	prev := app.Backend()
	app.SetBackend(b)
	t.Cleanup(func() { app.SetBackend(prev) })
	return app
}

func TestChooserCancelYieldsEmptyPath(t *testing.T) {
	backend := auitest.New()
	backend.Directory = auitest.Chooser{Err: aui.ErrCancelled}
	app := useBackend(t, backend)

	path, err := app.AskForExistingDirectory("/tmp", "Pick a folder")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, 1, backend.Suspended)
	assert.Equal(t, 1, backend.Resumed)
}

func TestChooserReturnsPath(t *testing.T) {
	backend := auitest.New()
	backend.File = auitest.Chooser{Path: "/home/user/notes.txt"}
	backend.SaveFile = auitest.Chooser{Path: "/home/user/out.txt"}
	app := useBackend(t, backend)

	path, err := app.AskForExistingFile("/home/user", "*.txt;*.md", "Open")
	require.NoError(t, err)
	assert.Equal(t, "/home/user/notes.txt", path)

	path, err = app.AskForSaveFileName("/home/user", "*.txt", "Save")
	require.NoError(t, err)
	assert.Equal(t, "/home/user/out.txt", path)
	assert.Equal(t, []string{"*.txt;*.md", "*.txt"}, backend.Filters)
}

func TestChooserFailureIsBackendError(t *testing.T) {
	backend := auitest.New()
	backend.File = auitest.Chooser{Err: errors.New("no portal")}
	app := useBackend(t, backend)

	_, err := app.AskForExistingFile("", "", "Open")
	assert.True(t, aui.IsBackendError(err))
	assert.False(t, aui.IsCancelled(err))
	assert.Equal(t, 1, backend.Resumed, "the surface is restored after a failure")
}

func TestChooserRedrawsOpenDialogs(t *testing.T) {
	f := newFixture(t)
	f.open(t)
	f.poll(t)
	app := useBackend(t, f.backend)
	renders := f.backend.Renders

	_, err := app.AskForExistingDirectory("", "Pick")
	require.NoError(t, err)
	f.poll(t)
	assert.Greater(t, f.backend.Renders, renders)
}

func TestChooserWithoutBackend(t *testing.T) {
	app := useBackend(t, nil)
	_, err := app.AskForExistingDirectory("", "Pick")
	assert.ErrorIs(t, err, aui.ErrNotSupported)
}

func TestResolveIcon(t *testing.T) {
	dir := t.TempDir()
	icon := filepath.Join(dir, "app.svg")
	require.NoError(t, os.WriteFile(icon, []byte("<svg/>"), 0o644))

	app := aui.GetApplication()
	prev := app.IconBasePath()
	app.SetIconBasePath(dir)
	t.Cleanup(func() { app.SetIconBasePath(prev) })

	assert.Equal(t, icon, aui.ResolveIcon("app.svg"))
	assert.Equal(t, "/abs/icon.png", aui.ResolveIcon("/abs/icon.png"))
	assert.Empty(t, aui.ResolveIcon("sub/missing.png"))
	assert.Empty(t, aui.ResolveIcon(""))
}

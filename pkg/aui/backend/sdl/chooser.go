package sdl

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/sqweek/dialog"

	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// The host choosers are the platform's native file dialogs.

func (b *Backend) ChooseDirectory(start, title string) (string, error) {
	d := dialog.Directory().Title(title)
	if dir := startDir(start); dir != "" {
		d = d.SetStartDir(dir)
	}
	path, err := d.Browse()
	return path, chooserError(err)
}

func (b *Backend) ChooseFile(start, filter, title string) (string, error) {
	path, err := fileDialog(start, filter, title).Load()
	return path, chooserError(err)
}

func (b *Backend) ChooseSaveFile(start, filter, title string) (string, error) {
	path, err := fileDialog(start, filter, title).Save()
	return path, chooserError(err)
}

func fileDialog(start, filter, title string) *dialog.FileBuilder {
	fb := dialog.File().Title(title)
	if exts := internal.FilterExtensions(filter); len(exts) > 0 {
		fb = fb.Filter(filter, exts...)
	}
	if dir := startDir(start); dir != "" {
		fb = fb.SetStartDir(dir)
	}
	if fi, err := os.Stat(start); start != "" && (err != nil || !fi.IsDir()) {
		fb = fb.SetStartFile(filepath.Base(start))
	}
	return fb
}

// startDir is start itself when it is a directory, else its parent.
func startDir(start string) string {
	if start == "" {
		return ""
	}
	if fi, err := os.Stat(start); err == nil && fi.IsDir() {
		return start
	}
	return filepath.Dir(start)
}

func chooserError(err error) error {
	if errors.Is(err, dialog.ErrCancelled) {
		return aui.ErrCancelled
	}
	return err
}

package aui

import (
	"errors"
	"fmt"
	"sync"

	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// About holds the fields shown in an application's about box.
type About struct {
	Version     string
	Description string
	Copyright   string
	License     string
	Website     string
	Authors     []string
}

// Application is the process-wide singleton holding application metadata
// and the bridges to the host's native modals. Like every other toolkit
// object it is used from the UI goroutine only.
type Application struct {
	title        string
	productName  string
	iconSpec     string
	iconBasePath string
	about        About
	backend      Backend
	resolver     *internal.IconResolver
}

var (
	appOnce sync.Once
	app     *Application
)

// GetApplication returns the singleton, creating it on first use.
func GetApplication() *Application {
	appOnce.Do(func() {
		app = &Application{resolver: internal.NewIconResolver("")}
	})
	return app
}

func (a *Application) Title() string { return a.title }

func (a *Application) SetTitle(title string) { a.title = title }

func (a *Application) ProductName() string { return a.productName }

func (a *Application) SetProductName(name string) { a.productName = name }

// IconSpec is the application icon, a path or an icon theme name.
func (a *Application) IconSpec() string { return a.iconSpec }

func (a *Application) SetIconSpec(spec string) { a.iconSpec = spec }

// IconBasePath is tried first for relative icon specs.
func (a *Application) IconBasePath() string { return a.iconBasePath }

func (a *Application) SetIconBasePath(path string) {
	a.iconBasePath = path
	a.resolver = internal.NewIconResolver(path)
}

func (a *Application) About() About { return a.about }

func (a *Application) SetAbout(about About) { a.about = about }

// Backend is the backend the host bridges use. NewFactory sets it when
// none is set yet.
func (a *Application) Backend() Backend { return a.backend }

func (a *Application) SetBackend(b Backend) { a.backend = b }

// ResolveIcon turns an icon spec into a file path: absolute paths are
// kept, relative ones are tried beneath the icon base path, bare names
// are looked up in the host icon theme. It returns "" if nothing matches.
func (a *Application) ResolveIcon(spec string) string {
	return a.resolver.Resolve(spec)
}

// ResolveIcon resolves spec with the application singleton.
func ResolveIcon(spec string) string {
	return GetApplication().ResolveIcon(spec)
}

// AskForExistingDirectory runs the host's directory chooser. It returns
// "" when the user cancels.
func (a *Application) AskForExistingDirectory(start, title string) (string, error) {
	return a.runHostModal("directory", func(h HostDialogs) (string, error) {
		return h.ChooseDirectory(start, title)
	})
}

// AskForExistingFile runs the host's file chooser. filter is a
// semicolon-separated list of glob patterns, "" for any file.
func (a *Application) AskForExistingFile(start, filter, title string) (string, error) {
	return a.runHostModal("file", func(h HostDialogs) (string, error) {
		return h.ChooseFile(start, filter, title)
	})
}

// AskForSaveFileName runs the host's save chooser.
func (a *Application) AskForSaveFileName(start, filter, title string) (string, error) {
	return a.runHostModal("save", func(h HostDialogs) (string, error) {
		return h.ChooseSaveFile(start, filter, title)
	})
}

// runHostModal hands the surface to the host for the duration of choose
// and redraws every open dialog afterwards.
func (a *Application) runHostModal(op string, choose func(HostDialogs) (string, error)) (string, error) {
	if a.backend == nil {
		return "", fmt.Errorf("%w: no backend for the %s chooser", ErrNotSupported, op)
	}
	logger := internal.GetInternalLogger()

	if err := a.backend.Suspend(); err != nil {
		return "", NewBackendError("suspend", err)
	}
	path, chooseErr := choose(a.backend)
	if err := a.backend.Resume(); err != nil {
		logger.Error("Failed to resume after host chooser", "chooser", op, "error", err)
	}
	for _, d := range openDialogs.entries {
		d.invalidate(true)
	}

	switch {
	case errors.Is(chooseErr, ErrCancelled):
		logger.Debug("Host chooser cancelled", "chooser", op)
		return "", nil
	case chooseErr != nil:
		return "", NewBackendError("choose "+op, chooseErr)
	}
	logger.Debug("Host chooser returned", "chooser", op, "path", path)
	return path, nil
}

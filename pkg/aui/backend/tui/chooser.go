package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

type chooseKind int

const (
	chooseDirectory chooseKind = iota
	chooseFile
	chooseSave
)

func (k chooseKind) String() string {
	switch k {
	case chooseDirectory:
		return "directory"
	case chooseFile:
		return "file"
	default:
		return "save file"
	}
}

// The terminal has no native chooser. While suspended the backend prompts
// for a path on the line; an empty line or Ctrl-D cancels.

func (b *Backend) ChooseDirectory(start, title string) (string, error) {
	return b.choose(chooseDirectory, start, "", title)
}

func (b *Backend) ChooseFile(start, filter, title string) (string, error) {
	return b.choose(chooseFile, start, filter, title)
}

func (b *Backend) ChooseSaveFile(start, filter, title string) (string, error) {
	return b.choose(chooseSave, start, filter, title)
}

type stdio struct {
	io.Reader
	io.Writer
}

func (b *Backend) choose(kind chooseKind, start, filter, title string) (string, error) {
	fd := int(b.stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("%w: %s chooser needs a terminal", aui.ErrNotSupported, kind)
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := term.Restore(fd, state); err != nil {
			internal.GetInternalLogger().Error("Failed to restore terminal", "error", err)
		}
	}()

	if title == "" {
		title = "Choose " + kind.String()
	}
	t := term.NewTerminal(stdio{b.stdin, b.stdout}, "> ")
	fmt.Fprintf(t, "%s\r\n", title)
	if start != "" {
		fmt.Fprintf(t, "Relative to %s\r\n", start)
	}
	if filter != "" {
		fmt.Fprintf(t, "Filter: %s\r\n", filter)
	}

	for {
		line, err := t.ReadLine()
		if errors.Is(err, io.EOF) {
			return "", aui.ErrCancelled
		}
		if err != nil {
			return "", err
		}
		path, err := resolveChoice(kind, start, filter, line)
		if err == nil || errors.Is(err, aui.ErrCancelled) {
			return path, err
		}
		fmt.Fprintf(t, "%v\r\n", err)
	}
}

// resolveChoice checks a typed path against what the chooser asks for.
// Relative paths are taken relative to start.
func resolveChoice(kind chooseKind, start, filter, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", aui.ErrCancelled
	}
	path := input
	if !filepath.IsAbs(path) && start != "" {
		dir := start
		if fi, err := os.Stat(start); err == nil && !fi.IsDir() {
			dir = filepath.Dir(start)
		}
		path = filepath.Join(dir, path)
	}
	path = filepath.Clean(path)

	switch kind {
	case chooseDirectory:
		fi, err := os.Stat(path)
		if err != nil {
			return "", err
		}
		if !fi.IsDir() {
			return "", fmt.Errorf("%s is not a directory", path)
		}
	case chooseFile:
		fi, err := os.Stat(path)
		if err != nil {
			return "", err
		}
		if fi.IsDir() {
			return "", fmt.Errorf("%s is a directory", path)
		}
		if !internal.MatchFilter(filter, path) {
			return "", fmt.Errorf("%s does not match %s", filepath.Base(path), filter)
		}
	case chooseSave:
		fi, err := os.Stat(filepath.Dir(path))
		if err != nil {
			return "", err
		}
		if !fi.IsDir() {
			return "", fmt.Errorf("%s is not a directory", filepath.Dir(path))
		}
		if !internal.MatchFilter(filter, path) {
			return "", fmt.Errorf("%s does not match %s", filepath.Base(path), filter)
		}
	}
	return path, nil
}

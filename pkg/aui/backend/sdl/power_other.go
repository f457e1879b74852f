//go:build !linux

package sdl

import (
	"fmt"

	"github.com/BrandonKowalski/aui/pkg/aui"
)

type powerWatcher struct{}

func watchPower(path string, _ func()) (*powerWatcher, error) {
	return nil, fmt.Errorf("%w: input device %s needs linux", aui.ErrNotSupported, path)
}

func (w *powerWatcher) Close() {}

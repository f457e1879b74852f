//go:build linux

package sdl

import (
	"sync"
	"time"

	evdev "github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// Longer presses belong to the system (power off), not to the dialog.
const shortPressLimit = time.Second

// powerWatcher reads an input device and calls onPress after a short press
// of the power key.
type powerWatcher struct {
	dev  *evdev.InputDevice
	wg   sync.WaitGroup
	once sync.Once
}

func watchPower(path string, onPress func()) (*powerWatcher, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, err
	}
	name, _ := dev.Name()
	internal.GetInternalLogger().Debug("Watching power key", "device", path, "name", name)

	w := &powerWatcher{dev: dev}
	w.wg.Add(1)
	go w.run(onPress)
	return w, nil
}

func (w *powerWatcher) run(onPress func()) {
	defer w.wg.Done()
	var pressedAt time.Time
	for {
		ev, err := w.dev.ReadOne()
		if err != nil {
			internal.GetInternalLogger().Debug("Power key watcher stopped", "error", err)
			return
		}
		if ev.Type != evdev.EV_KEY || ev.Code != evdev.KEY_POWER {
			continue
		}
		switch ev.Value {
		case 1:
			pressedAt = time.Now()
		case 0:
			if !pressedAt.IsZero() && time.Since(pressedAt) < shortPressLimit {
				onPress()
			}
			pressedAt = time.Time{}
		}
	}
}

// Close stops the watcher and waits for its goroutine.
func (w *powerWatcher) Close() {
	w.once.Do(func() {
		if err := w.dev.Close(); err != nil {
			internal.GetInternalLogger().Debug("Failed to close input device", "error", err)
		}
		w.wg.Wait()
	})
}

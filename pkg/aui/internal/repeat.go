package internal

import (
	"time"

	"github.com/BrandonKowalski/aui/pkg/aui/constants"
)

// KeyRepeat tracks held navigation keys from sources without native key
// repeat (game controllers) and produces synthetic repeats.
type KeyRepeat struct {
	held           map[constants.Key]bool
	order          []constants.Key // press order, latest last
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewKeyRepeat creates a KeyRepeat with the given timing. Zero values use
// the defaults: 300ms before the first repeat, then 50ms between repeats.
func NewKeyRepeat(delay, interval time.Duration) *KeyRepeat {
	if delay <= 0 {
		delay = constants.DefaultRepeatDelay
	}
	if interval <= 0 {
		interval = constants.DefaultRepeatInterval
	}
	return &KeyRepeat{
		held:           make(map[constants.Key]bool),
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: time.Now(),
		now:            time.Now,
	}
}

func repeatable(k constants.Key) bool {
	switch k {
	case constants.KeyUp, constants.KeyDown, constants.KeyLeft, constants.KeyRight,
		constants.KeyPageUp, constants.KeyPageDown:
		return true
	}
	return false
}

// SetHeld updates the held state of a key.
// Returns true if the key takes part in repeating.
func (r *KeyRepeat) SetHeld(k constants.Key, held bool) bool {
	if !repeatable(k) {
		return false
	}
	if held {
		if !r.held[k] {
			r.order = append(r.order, k)
		}
		r.held[k] = true
		r.lastRepeatTime = r.now()
		r.hasRepeated = false
		return true
	}

	delete(r.held, k)
	for i, o := range r.order {
		if o == k {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.hasRepeated = false
	return true
}

// Held returns the most recently pressed key still held, or KeyNone.
func (r *KeyRepeat) Held() constants.Key {
	if len(r.order) == 0 {
		return constants.KeyNone
	}
	return r.order[len(r.order)-1]
}

// Update returns the key to repeat now, or KeyNone. Call it on every
// loop iteration. The first repeat fires after the delay, later ones after
// the interval.
func (r *KeyRepeat) Update() constants.Key {
	k := r.Held()
	if k == constants.KeyNone {
		r.lastRepeatTime = r.now()
		r.hasRepeated = false
		return constants.KeyNone
	}

	threshold := r.repeatInterval
	if !r.hasRepeated {
		threshold = r.repeatDelay
	}

	if r.now().Sub(r.lastRepeatTime) >= threshold {
		r.lastRepeatTime = r.now()
		r.hasRepeated = true
		return k
	}
	return constants.KeyNone
}

// Reset clears all held keys and timing state.
func (r *KeyRepeat) Reset() {
	r.held = make(map[constants.Key]bool)
	r.order = r.order[:0]
	r.hasRepeated = false
	r.lastRepeatTime = r.now()
}

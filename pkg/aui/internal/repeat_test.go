package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/aui/pkg/aui/constants"
)

func TestKeyRepeatTiming(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start
	r := NewKeyRepeat(100*time.Millisecond, 20*time.Millisecond)
	r.now = func() time.Time { return now }

	assert.False(t, r.SetHeld(constants.KeyEnter, true), "enter does not repeat")
	assert.True(t, r.SetHeld(constants.KeyDown, true))

	at := func(ms int) constants.Key {
		now = start.Add(time.Duration(ms) * time.Millisecond)
		return r.Update()
	}
	assert.Equal(t, constants.KeyNone, at(50))
	assert.Equal(t, constants.KeyDown, at(100), "first repeat after the delay")
	assert.Equal(t, constants.KeyNone, at(110))
	assert.Equal(t, constants.KeyDown, at(120), "then every interval")
}

func TestKeyRepeatLatestKeyWins(t *testing.T) {
	r := NewKeyRepeat(0, 0)
	r.SetHeld(constants.KeyDown, true)
	r.SetHeld(constants.KeyLeft, true)
	assert.Equal(t, constants.KeyLeft, r.Held())

	r.SetHeld(constants.KeyLeft, false)
	assert.Equal(t, constants.KeyDown, r.Held())

	r.Reset()
	assert.Equal(t, constants.KeyNone, r.Held())
	assert.Equal(t, constants.KeyNone, r.Update())
}

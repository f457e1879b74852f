package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
)

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want aui.Input
		ok   bool
	}{
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), aui.KeyInput(constants.KeyUp), true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), aui.KeyInput(constants.KeyEnter), true},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), aui.KeyInput(constants.KeyBackspace), true},
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), aui.RuneInput('q'), true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), aui.KeyInput(constants.KeySpace), true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), aui.Input{Kind: aui.InputInterrupt}, true},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), aui.Input{}, false},
		{"unmapped", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), aui.Input{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convertKey(tt.ev)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want.Kind, got.Kind)
				assert.Equal(t, tt.want.Key, got.Key)
			}
		})
	}
}

func TestMouseReportsPressesOnly(t *testing.T) {
	b := &Backend{}

	in, ok := b.convertEvent(tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone))
	assert.True(t, ok)
	assert.Equal(t, aui.Input{Kind: aui.InputClick, X: 3, Y: 4}, in)

	_, ok = b.convertEvent(tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone))
	assert.False(t, ok, "a held button is not a new click")

	_, ok = b.convertEvent(tcell.NewEventMouse(3, 4, tcell.ButtonNone, tcell.ModNone))
	assert.False(t, ok)
}

func TestColorFollowsProfile(t *testing.T) {
	b := &Backend{profile: termenv.TrueColor}
	assert.Equal(t, tcell.NewRGBColor(0x12, 0x34, 0x56), b.color(0x123456))

	b.profile = termenv.ANSI256
	assert.True(t, b.color(0x123456)&tcell.ColorIsRGB == 0)
	assert.NotEqual(t, tcell.ColorDefault, b.color(0x123456))

	b.profile = termenv.Ascii
	assert.Equal(t, tcell.ColorDefault, b.color(0x123456))
}

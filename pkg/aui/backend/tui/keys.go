package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
)

var keyMap = map[tcell.Key]constants.Key{
	tcell.KeyUp:         constants.KeyUp,
	tcell.KeyDown:       constants.KeyDown,
	tcell.KeyLeft:       constants.KeyLeft,
	tcell.KeyRight:      constants.KeyRight,
	tcell.KeyPgUp:       constants.KeyPageUp,
	tcell.KeyPgDn:       constants.KeyPageDown,
	tcell.KeyHome:       constants.KeyHome,
	tcell.KeyEnd:        constants.KeyEnd,
	tcell.KeyEnter:      constants.KeyEnter,
	tcell.KeyEscape:     constants.KeyEscape,
	tcell.KeyTab:        constants.KeyTab,
	tcell.KeyBacktab:    constants.KeyBacktab,
	tcell.KeyBackspace:  constants.KeyBackspace,
	tcell.KeyBackspace2: constants.KeyBackspace,
	tcell.KeyDelete:     constants.KeyDelete,
}

// nativeKeys is keyMap reversed, for injecting semantic keys.
var nativeKeys = map[constants.Key]tcell.Key{
	constants.KeyUp:        tcell.KeyUp,
	constants.KeyDown:      tcell.KeyDown,
	constants.KeyLeft:      tcell.KeyLeft,
	constants.KeyRight:     tcell.KeyRight,
	constants.KeyPageUp:    tcell.KeyPgUp,
	constants.KeyPageDown:  tcell.KeyPgDn,
	constants.KeyHome:      tcell.KeyHome,
	constants.KeyEnd:       tcell.KeyEnd,
	constants.KeyEnter:     tcell.KeyEnter,
	constants.KeyEscape:    tcell.KeyEscape,
	constants.KeyTab:       tcell.KeyTab,
	constants.KeyBacktab:   tcell.KeyBacktab,
	constants.KeyBackspace: tcell.KeyBackspace2,
	constants.KeyDelete:    tcell.KeyDelete,
}

// convertEvent maps a tcell event to an aui input. Events the toolkit has
// no use for report false.
func (b *Backend) convertEvent(ev tcell.Event) (aui.Input, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return convertKey(e)
	case *tcell.EventResize:
		b.screen.Sync()
		return aui.Input{Kind: aui.InputResize}, true
	case *tcell.EventMouse:
		buttons := e.Buttons()
		pressed := buttons&tcell.Button1 != 0 && b.buttons&tcell.Button1 == 0
		b.buttons = buttons
		if !pressed {
			return aui.Input{}, false
		}
		x, y := e.Position()
		return aui.Input{Kind: aui.InputClick, X: x, Y: y}, true
	case *tcell.EventInterrupt:
		return aui.Input{Kind: aui.InputWake}, true
	}
	return aui.Input{}, false
}

func convertKey(e *tcell.EventKey) (aui.Input, bool) {
	switch e.Key() {
	case tcell.KeyRune:
		if e.Modifiers()&tcell.ModAlt != 0 {
			return aui.Input{}, false
		}
		return aui.RuneInput(e.Rune()), true
	case tcell.KeyCtrlC:
		return aui.Input{Kind: aui.InputInterrupt}, true
	}
	if k, ok := keyMap[e.Key()]; ok {
		return aui.KeyInput(k), true
	}
	return aui.Input{}, false
}

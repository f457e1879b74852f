package sdl

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

type keyAction int

const (
	keyChar keyAction = iota
	keyBackspace
	keyEnter
	keyShift
	keySymbols
	keySpace
)

type keyCap struct {
	action               keyAction
	lower, upper, symbol string
}

func (c keyCap) weight() int {
	switch c.action {
	case keyChar:
		return 2
	case keySpace:
		return 1
	default:
		return 3
	}
}

// keyboard is the on-screen keyboard for controller-only devices. It turns
// controller buttons into the same key and rune input a physical keyboard
// produces, so the focused widget does all the editing.
//
// While open: D-pad moves, A types the highlighted key, B deletes, X types a
// space, L1/R1 move the text cursor, Select toggles shift, Y closes and
// Start closes with Enter.
type keyboard struct {
	open     bool
	shift    bool
	symbols  bool
	row, col int
}

var keyboardRows = [][]keyCap{
	append(digitCaps("1234567890", "!@#$%^&*()"), keyCap{action: keyBackspace}),
	letterCaps("qwertyuiop", []string{"`", "~", "[", "]", "\\", "|", "{", "}", ";", ":"}),
	append(letterCaps("asdfghjkl", []string{"'", "\"", "<", ">", "?", "/", "+", "=", "_"}), keyCap{action: keyEnter}),
	append(append([]keyCap{{action: keyShift}},
		letterCaps("zxcvbnm", []string{",", ".", "-", "€", "£", "¥", "¢"})...),
		keyCap{action: keySymbols}),
	{{action: keySpace}},
}

// Shifted digits give their symbol, like a hardware keyboard.
func digitCaps(digits, symbols string) []keyCap {
	sym := []rune(symbols)
	caps := make([]keyCap, 0, len(digits))
	for i, d := range []rune(digits) {
		caps = append(caps, keyCap{lower: string(d), upper: string(sym[i]), symbol: string(sym[i])})
	}
	return caps
}

func letterCaps(letters string, symbols []string) []keyCap {
	caps := make([]keyCap, 0, len(letters))
	for i, l := range letters {
		s := string(l)
		caps = append(caps, keyCap{lower: s, upper: string(l - 'a' + 'A'), symbol: symbols[i]})
	}
	return caps
}

func (k *keyboard) show() {
	k.open = true
	k.shift = false
	k.symbols = false
}

func (k *keyboard) hide() {
	k.open = false
}

func (k *keyboard) current() keyCap {
	return keyboardRows[k.row][k.col]
}

// value is the text a character cap types in the current mode.
func (k *keyboard) value(c keyCap) string {
	switch {
	case k.symbols:
		return c.symbol
	case k.shift:
		return c.upper
	default:
		return c.lower
	}
}

// label is what a cap shows in the current mode.
func (k *keyboard) label(c keyCap) string {
	switch c.action {
	case keyBackspace:
		return "Back"
	case keyEnter:
		return "Enter"
	case keyShift:
		return "Shift"
	case keySymbols:
		if k.symbols {
			return "abc"
		}
		return "#+="
	case keySpace:
		return "Space"
	}
	return k.value(c)
}

// move wraps within rows and columns. Moving onto a shorter row clamps the
// column.
func (k *keyboard) move(key constants.Key) {
	rows := len(keyboardRows)
	switch key {
	case constants.KeyUp:
		k.row = (k.row - 1 + rows) % rows
	case constants.KeyDown:
		k.row = (k.row + 1) % rows
	case constants.KeyLeft:
		n := len(keyboardRows[k.row])
		k.col = (k.col - 1 + n) % n
	case constants.KeyRight:
		k.col = (k.col + 1) % len(keyboardRows[k.row])
	}
	k.col = min(k.col, len(keyboardRows[k.row])-1)
}

// activate presses the highlighted cap.
func (k *keyboard) activate() []aui.Input {
	c := k.current()
	switch c.action {
	case keyBackspace:
		return []aui.Input{aui.KeyInput(constants.KeyBackspace)}
	case keyEnter:
		k.hide()
		return []aui.Input{aui.KeyInput(constants.KeyEnter)}
	case keyShift:
		k.shift = !k.shift
		return nil
	case keySymbols:
		k.symbols = !k.symbols
		return nil
	case keySpace:
		return []aui.Input{aui.RuneInput(' ')}
	}
	var inputs []aui.Input
	for _, r := range k.value(c) {
		inputs = append(inputs, aui.RuneInput(r))
	}
	return inputs
}

// press handles a controller button while the keyboard is open and returns
// the input to deliver.
func (k *keyboard) press(btn sdl.GameControllerButton) []aui.Input {
	switch btn {
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		k.move(constants.KeyUp)
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		k.move(constants.KeyDown)
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		k.move(constants.KeyLeft)
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		k.move(constants.KeyRight)
	case sdl.CONTROLLER_BUTTON_A:
		return k.activate()
	case sdl.CONTROLLER_BUTTON_B:
		return []aui.Input{aui.KeyInput(constants.KeyBackspace)}
	case sdl.CONTROLLER_BUTTON_X:
		return []aui.Input{aui.RuneInput(' ')}
	case sdl.CONTROLLER_BUTTON_LEFTSHOULDER:
		return []aui.Input{aui.KeyInput(constants.KeyLeft)}
	case sdl.CONTROLLER_BUTTON_RIGHTSHOULDER:
		return []aui.Input{aui.KeyInput(constants.KeyRight)}
	case sdl.CONTROLLER_BUTTON_BACK:
		k.shift = !k.shift
	case sdl.CONTROLLER_BUTTON_Y:
		k.hide()
	case sdl.CONTROLLER_BUTTON_START:
		k.hide()
		return []aui.Input{aui.KeyInput(constants.KeyEnter)}
	}
	return nil
}

// repeat handles a held-button repeat. The shoulder buttons repeat as
// page keys and move the text cursor here.
func (k *keyboard) repeat(key constants.Key) []aui.Input {
	switch key {
	case constants.KeyPageUp:
		return []aui.Input{aui.KeyInput(constants.KeyLeft)}
	case constants.KeyPageDown:
		return []aui.Input{aui.KeyInput(constants.KeyRight)}
	}
	k.move(key)
	return nil
}

// layout splits area into key rects, row by row, gap units apart.
func (k *keyboard) layout(area aui.Rect, gap int) [][]aui.Rect {
	rows := len(keyboardRows)
	equal := make([]int, rows)
	heights := internal.Share(area.Height-gap*(rows+1), equal)

	rects := make([][]aui.Rect, rows)
	y := area.Y + gap
	for i, row := range keyboardRows {
		weights := make([]int, len(row))
		for j, c := range row {
			weights[j] = c.weight()
		}
		widths := internal.Share(area.Width-gap*(len(row)+1), weights)
		x := area.X + gap
		rects[i] = make([]aui.Rect, len(row))
		for j, w := range widths {
			rects[i][j] = aui.Rect{X: x, Y: y, Width: w, Height: heights[i]}
			x += w + gap
		}
		y += heights[i] + gap
	}
	return rects
}

// takesText reports whether w edits text and so can use the keyboard.
func takesText(w aui.Widget) bool {
	if w == nil || !w.Enabled() {
		return false
	}
	switch v := w.(type) {
	case *aui.InputField, *aui.IntField, *aui.DateField, *aui.TimeField, *aui.MultiLineEdit:
		return true
	case *aui.ComboBox:
		return v.IsEditable()
	}
	return false
}

func focusedWidget() aui.Widget {
	if d := aui.CurrentDialog(); d != nil {
		return d.Focused()
	}
	return nil
}

// drawKeyboard draws the keyboard across the bottom of the screen, or the
// top when the focused field would be covered. It closes the keyboard
// once focus leaves text widgets.
func (b *Backend) drawKeyboard(p painter, theme internal.Theme) {
	if len(b.frame) == 0 {
		b.keyboard.hide()
		return
	}
	top := b.frame[len(b.frame)-1]
	focus := top.Focused()
	if !takesText(focus) {
		b.keyboard.hide()
		return
	}

	pal := theme.Palette(top.ColorMode())
	lh := b.metrics.LineHeight()
	gap := max(2, lh/4)
	rows := len(keyboardRows)
	screen := p.clip
	height := min(screen.Height/2, rows*2*lh+gap*(rows+1))
	area := aui.Rect{X: screen.X, Y: screen.Y + screen.Height - height, Width: screen.Width, Height: height}
	if fb := focus.Bounds(); fb.Y+fb.Height > area.Y {
		area.Y = screen.Y
	}

	p.fill(area, pal.Background)
	p.frame(area, pal.Border, 1)
	for i, row := range b.keyboard.layout(area, gap) {
		for j, rect := range row {
			c := keyboardRows[i][j]
			bg, fg := pal.Background, pal.Text
			switch {
			case i == b.keyboard.row && j == b.keyboard.col:
				bg, fg = pal.Highlight, pal.HighlightedText
			case c.action == keyShift && b.keyboard.shift, c.action == keySymbols && b.keyboard.symbols:
				fg = pal.Accent
			}
			p.fill(rect, bg)
			p.frame(rect, pal.Border, 1)
			p.centered(rect, p.middle(rect), b.keyboard.label(c), fg)
		}
	}
}

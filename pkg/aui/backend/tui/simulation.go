package tui

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"

	"github.com/BrandonKowalski/aui/pkg/aui/constants"
)

// Simulation is a Backend on tcell's simulation screen for tests: input is
// injected and the screen content captured as text.
type Simulation struct {
	*Backend
	sim tcell.SimulationScreen
	mu  sync.Mutex
}

// NewSimulation creates a simulated terminal of the given size with true
// colour and Unicode support.
func NewSimulation(width, height int) (*Simulation, error) {
	screen := tcell.NewSimulationScreen("UTF-8")
	b, err := NewWithScreen(screen)
	if err != nil {
		return nil, err
	}
	b.profile = termenv.TrueColor
	screen.SetSize(width, height)
	return &Simulation{Backend: b, sim: screen}, nil
}

// Resize changes the screen size and delivers a resize input.
func (s *Simulation) Resize(width, height int) {
	s.mu.Lock()
	s.sim.SetSize(width, height)
	s.mu.Unlock()
	_ = s.sim.PostEvent(tcell.NewEventResize(width, height))
}

// InjectKey queues a semantic key. For KeyRune, r is the character.
func (s *Simulation) InjectKey(key constants.Key, r rune) {
	switch key {
	case constants.KeyRune:
		s.sim.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	case constants.KeySpace:
		s.sim.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	default:
		if k, ok := nativeKeys[key]; ok {
			s.sim.InjectKey(k, 0, tcell.ModNone)
		}
	}
}

// InjectKeys queues several keys in order.
func (s *Simulation) InjectKeys(keys ...constants.Key) {
	for _, k := range keys {
		s.InjectKey(k, 0)
	}
}

// InjectText queues the characters of text.
func (s *Simulation) InjectText(text string) {
	for _, r := range text {
		s.InjectKey(constants.KeyRune, r)
	}
}

// InjectClick queues a press and release of the primary button.
func (s *Simulation) InjectClick(x, y int) {
	s.sim.InjectMouse(x, y, tcell.Button1, tcell.ModNone)
	s.sim.InjectMouse(x, y, tcell.ButtonNone, tcell.ModNone)
}

// InjectInterrupt queues Ctrl-C.
func (s *Simulation) InjectInterrupt() {
	s.sim.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
}

// Capture returns the screen content, one line per row.
func (s *Simulation) Capture() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, h := s.sim.Size()
	return s.region(0, 0, w, h)
}

// CaptureRegion returns a rectangular part of the screen.
func (s *Simulation) CaptureRegion(x, y, w, h int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.region(x, y, w, h)
}

func (s *Simulation) region(x, y, w, h int) string {
	lines := make([]string, 0, h)
	for row := y; row < y+h; row++ {
		var line strings.Builder
		for col := x; col < x+w; col++ {
			mainc, comb, _, width := s.sim.GetContent(col, row)
			if mainc == 0 {
				mainc = ' '
			}
			line.WriteRune(mainc)
			for _, c := range comb {
				line.WriteRune(c)
			}
			if width > 1 {
				col += width - 1
			}
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// CellStyle returns the style of one cell.
func (s *Simulation) CellStyle(x, y int) tcell.Style {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _, style, _ := s.sim.GetContent(x, y)
	return style
}

// FindText returns the position of text on screen, or -1, -1.
func (s *Simulation) FindText(text string) (x, y int) {
	for row, line := range strings.Split(s.Capture(), "\n") {
		if col := strings.Index(line, text); col >= 0 {
			return len([]rune(line[:col])), row
		}
	}
	return -1, -1
}

// ContainsText reports whether text appears anywhere on screen.
func (s *Simulation) ContainsText(text string) bool {
	x, _ := s.FindText(text)
	return x >= 0
}

package aui

import (
	"strconv"
	"strings"

	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// Slider picks an integer in [Min, Max] with the arrow keys.
type Slider struct {
	widgetBase
	label    string
	min, max int
	value    int
}

func newSlider(parent Widget, label string, minValue, maxValue, initial int) (*Slider, error) {
	if minValue > maxValue {
		minValue, maxValue = maxValue, minValue
	}
	s := &Slider{label: label, min: minValue, max: maxValue, value: minValue}
	s.focusable = true
	s.stretch[dimIndex(constants.Horizontal)] = true
	if err := s.init(s, "Slider", parent, 0); err != nil {
		return nil, err
	}
	if initial >= minValue && initial <= maxValue {
		s.value = initial
	}
	return s, nil
}

func (s *Slider) Label() string { return s.label }

func (s *Slider) SetLabel(label string) {
	s.label = label
	s.changed(true)
}

func (s *Slider) Min() int { return s.min }

func (s *Slider) Max() int { return s.max }

func (s *Slider) Value() int { return s.value }

// SetValue refuses values outside [Min, Max] with ErrInvalidValue.
func (s *Slider) SetValue(v int) error {
	if v < s.min || v > s.max {
		internal.GetInternalLogger().Debug("Slider refused value", "value", v, "min", s.min, "max", s.max)
		return ErrInvalidValue
	}
	s.value = v
	s.changed(false)
	return nil
}

// Fraction is the thumb position between 0 and 1.
func (s *Slider) Fraction() float64 {
	if s.max == s.min {
		return 0
	}
	return float64(s.value-s.min) / float64(s.max-s.min)
}

func (s *Slider) TrackRect() Rect {
	if m := s.metrics(); m != nil {
		_, rest := captioned(m, s.bounds, s.label)
		return rest
	}
	return s.bounds
}

func (s *Slider) PreferredSize(m Metrics) Size {
	digits := max(len(strconv.Itoa(s.min)), len(strconv.Itoa(s.max)))
	track := m.TextWidth(strings.Repeat("m", defaultFieldChars+digits+1))
	return Size{Width: max(m.TextWidth(s.label), track), Height: labelHeight(m, s.label) + m.LineHeight()}
}

func (s *Slider) moveTo(v int) {
	v = min(max(v, s.min), s.max)
	if v == s.value {
		return
	}
	s.value = v
	s.changed(false)
	s.postWidgetEvent(constants.ReasonValueChanged)
}

func (s *Slider) handleKey(in Input) bool {
	page := max(1, (s.max-s.min)/10)
	switch in.Key {
	case constants.KeyLeft:
		s.moveTo(s.value - 1)
	case constants.KeyRight:
		s.moveTo(s.value + 1)
	case constants.KeyPageDown:
		s.moveTo(s.value - page)
	case constants.KeyPageUp:
		s.moveTo(s.value + page)
	case constants.KeyHome:
		s.moveTo(s.min)
	case constants.KeyEnd:
		s.moveTo(s.max)
	default:
		return false
	}
	return true
}

// handleClick moves the thumb to the clicked column of the track.
func (s *Slider) handleClick(x, y int) bool {
	track := s.TrackRect()
	if !track.Contains(x, y) || track.Width <= 1 {
		return false
	}
	frac := float64(x-track.X) / float64(track.Width-1)
	s.moveTo(s.min + int(frac*float64(s.max-s.min)+0.5))
	return true
}

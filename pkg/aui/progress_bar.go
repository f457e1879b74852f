package aui

import (
	"strings"

	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// ProgressBar shows how far a task has come, from 0 to MaxValue.
type ProgressBar struct {
	widgetBase
	label    string
	maxValue int
	value    int
}

func newProgressBar(parent Widget, label string, maxValue, initial int) (*ProgressBar, error) {
	p := &ProgressBar{label: label, maxValue: max(1, maxValue)}
	p.stretch[dimIndex(constants.Horizontal)] = true
	if err := p.init(p, "ProgressBar", parent, 0); err != nil {
		return nil, err
	}
	p.value = min(max(initial, 0), p.maxValue)
	return p, nil
}

func (p *ProgressBar) Label() string { return p.label }

func (p *ProgressBar) SetLabel(label string) {
	p.label = label
	p.changed(true)
}

func (p *ProgressBar) MaxValue() int { return p.maxValue }

func (p *ProgressBar) Value() int { return p.value }

// SetValue refuses values outside [0, MaxValue] with ErrInvalidValue.
func (p *ProgressBar) SetValue(v int) error {
	if v < 0 || v > p.maxValue {
		internal.GetInternalLogger().Debug("Progress bar refused value", "value", v, "max", p.maxValue)
		return ErrInvalidValue
	}
	p.value = v
	p.changed(false)
	return nil
}

// Fraction is the progress between 0 and 1.
func (p *ProgressBar) Fraction() float64 {
	return float64(p.value) / float64(p.maxValue)
}

// BarRect is the bar below the caption.
func (p *ProgressBar) BarRect() Rect {
	if m := p.metrics(); m != nil {
		_, rest := captioned(m, p.bounds, p.label)
		return rest
	}
	return p.bounds
}

func (p *ProgressBar) PreferredSize(m Metrics) Size {
	w := max(m.TextWidth(p.label), m.TextWidth(strings.Repeat("m", defaultFieldChars)))
	return Size{Width: w, Height: labelHeight(m, p.label) + m.LineHeight()}
}

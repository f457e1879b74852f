package aui

import "github.com/BrandonKowalski/aui/pkg/aui/constants"

// Spacing is empty space along one axis. A stretchable spacing (a
// "stretch") soaks up leftover room.
type Spacing struct {
	widgetBase
	dim    constants.Dimension
	sizePx int
}

func newSpacing(parent Widget, dim constants.Dimension, stretchable bool, sizePx int) (*Spacing, error) {
	s := &Spacing{dim: dim, sizePx: max(0, sizePx)}
	s.stretch[dimIndex(dim)] = stretchable

	kind := "HSpacing"
	switch {
	case dim == constants.Horizontal && stretchable:
		kind = "HStretch"
	case dim == constants.Vertical && stretchable:
		kind = "VStretch"
	case dim == constants.Vertical:
		kind = "VSpacing"
	}
	if err := s.init(s, kind, parent, 0); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Spacing) Dimension() constants.Dimension { return s.dim }

// SizePixels is the requested size in device pixels.
func (s *Spacing) SizePixels() int { return s.sizePx }

func (s *Spacing) PreferredSize(m Metrics) Size {
	units := 0
	if s.sizePx > 0 {
		units = m.PixelsToUnits(s.sizePx, s.dim)
	}
	return sizeAlong(s.dim, units, 0)
}

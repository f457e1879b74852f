package sdl

import (
	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// measurer is the part of *ttf.Font the metrics need.
type measurer interface {
	SizeUTF8(text string) (int, int, error)
	Height() int
}

// Metrics measures in pixels with the backend's font. Chrome scales with
// the line height so larger fonts get proportionally larger padding.
type Metrics struct {
	font measurer
}

func (m Metrics) TextWidth(text string) int {
	if text == "" {
		return 0
	}
	w, _, err := m.font.SizeUTF8(text)
	if err != nil {
		internal.GetInternalLogger().Debug("Failed to measure text", "text", text, "error", err)
		return 0
	}
	return w
}

func (m Metrics) LineHeight() int { return max(1, m.font.Height()) }

// FrameInsets leave a full line on top for frame and popup titles.
func (m Metrics) FrameInsets() aui.Insets {
	side := max(2, m.LineHeight()/3)
	return aui.Insets{Top: m.LineHeight(), Right: side, Bottom: side, Left: side}
}

func (m Metrics) ButtonPadding() aui.Size {
	lh := m.LineHeight()
	return aui.Size{Width: lh, Height: lh / 2}
}

// IndicatorWidth is a square box one line high plus a gap.
func (m Metrics) IndicatorWidth() int { return m.LineHeight() + m.LineHeight()/3 }

func (m Metrics) ScrollbarWidth() int { return max(4, m.LineHeight()/3) }

func (m Metrics) Spacing() int { return max(2, m.LineHeight()/4) }

// PixelsToUnits is the identity: one unit is one pixel.
func (Metrics) PixelsToUnits(px int, _ constants.Dimension) int { return px }

var _ aui.Metrics = Metrics{}

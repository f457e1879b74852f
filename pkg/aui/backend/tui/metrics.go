package tui

import (
	"github.com/mattn/go-runewidth"

	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

// Metrics measures in character cells. One unit is one column or one row.
type Metrics struct{}

func (Metrics) TextWidth(text string) int { return runewidth.StringWidth(text) }

func (Metrics) LineHeight() int { return 1 }

func (Metrics) FrameInsets() aui.Insets { return internal.Uniform(1) }

// ButtonPadding makes room for the "[ " and " ]" around a button label.
func (Metrics) ButtonPadding() aui.Size { return aui.Size{Width: 4} }

// IndicatorWidth is "[x] " or "(*) ".
func (Metrics) IndicatorWidth() int { return 4 }

func (Metrics) ScrollbarWidth() int { return 1 }

func (Metrics) Spacing() int { return 0 }

func (Metrics) PixelsToUnits(px int, dim constants.Dimension) int {
	if dim == constants.Horizontal {
		return internal.PixelsToCells(px, constants.PixelsPerColumn)
	}
	return internal.PixelsToCells(px, constants.PixelsPerRow)
}

var _ aui.Metrics = Metrics{}

package constants

// Glyphs drawn by the character-cell backend for widget chrome.
// Each has an ASCII fallback for terminals without Unicode support.
const (
	GlyphTreeOpen    = "▾" // expanded tree node
	GlyphTreeClosed  = "▸" // collapsed tree node
	GlyphTreeLeaf    = " "
	GlyphChecked     = "x"
	GlyphUnchecked   = " "
	GlyphRadioOn     = "*"
	GlyphSubmenu     = "▸"
	GlyphScrollUp    = "▲"
	GlyphScrollDown  = "▼"
	GlyphProgress    = "█"
	GlyphSliderThumb = "◆"
	GlyphImage       = "▣"

	ASCIITreeOpen   = "-"
	ASCIITreeClosed = "+"
	ASCIISubmenu    = ">"
	ASCIIScrollUp   = "^"
	ASCIIScrollDown = "v"
	ASCIIProgress   = "#"
	ASCIISlider     = "|"
	ASCIIImage      = "#"
)

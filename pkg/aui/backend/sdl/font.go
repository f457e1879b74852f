package sdl

import (
	"errors"
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

const defaultFontSize = 18

// ErrNoFont is returned by New when no usable font file is found.
var ErrNoFont = errors.New("sdl: no font found")

var systemFonts = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/noto/NotoSans-Regular.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/Library/Fonts/Arial.ttf",
	`C:\Windows\Fonts\segoeui.ttf`,
	`C:\Windows\Fonts\arial.ttf`,
}

// fontCandidates lists the paths to try in order: the explicit option,
// the theme's font, then the system fonts.
func fontCandidates(explicit string, theme internal.Theme) []string {
	var paths []string
	if explicit != "" {
		paths = append(paths, explicit)
	}
	if theme.FontPath != "" && theme.FontPath != explicit {
		paths = append(paths, theme.FontPath)
	}
	return append(paths, systemFonts...)
}

func fontSize(explicit int, theme internal.Theme) int {
	switch {
	case explicit > 0:
		return explicit
	case theme.FontSize > 0:
		return theme.FontSize
	default:
		return defaultFontSize
	}
}

func openFont(explicit string, size int) (*ttf.Font, string, error) {
	theme := internal.GetTheme()
	size = fontSize(size, theme)
	for _, path := range fontCandidates(explicit, theme) {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		font, err := ttf.OpenFont(path, size)
		if err != nil {
			internal.GetInternalLogger().Warn("Failed to open font", "path", path, "error", err)
			continue
		}
		return font, path, nil
	}
	return nil, "", fmt.Errorf("%w: set theme.font_path", ErrNoFont)
}

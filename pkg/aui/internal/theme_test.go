package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/aui/pkg/aui/constants"
)

func TestParseHex(t *testing.T) {
	for _, in := range []string{"#1e1E2e", "1E1E2E", "0x1e1e2e", " #1E1E2E "} {
		c, err := ParseHex(in)
		require.NoError(t, err, in)
		assert.Equal(t, RGB(0x1E1E2E), c, in)
	}
	for _, in := range []string{"#12345", "zzzzzz", "blue", ""} {
		_, err := ParseHex(in)
		assert.Error(t, err, in)
	}
}

func TestComponents(t *testing.T) {
	r, g, b := RGB(0x102030).Components()
	assert.Equal(t, []uint8{0x10, 0x20, 0x30}, []uint8{r, g, b})
}

func TestThemeByName(t *testing.T) {
	theme, ok := ThemeByName("TEAL")
	assert.True(t, ok)
	assert.Equal(t, "teal", theme.Name)

	theme, ok = ThemeByName("neon")
	assert.False(t, ok)
	assert.Equal(t, DefaultTheme().Name, theme.Name)

	def := DefaultTheme()
	assert.Equal(t, def.Warn, def.Palette(constants.ColorWarn))
	assert.Equal(t, def.Normal, def.Palette(constants.ColorNormal))
}

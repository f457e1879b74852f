package aui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/auitest"
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
)

func newDialogOfSize(t *testing.T, size aui.Size) (*aui.WidgetFactory, *aui.Dialog) {
	t.Helper()
	backend := auitest.New()
	backend.Size = size
	factory := aui.NewFactory(backend)
	dlg, err := factory.CreateMainDialog(constants.ColorNormal)
	require.NoError(t, err)
	t.Cleanup(func() {
		dlg.Destroy()
		aui.ResetQuit()
	})
	return factory, dlg
}

func TestHBoxWeightedAllocation(t *testing.T) {
	factory, dlg := newDialogOfSize(t, aui.Size{Width: 100, Height: 5})
	hbox, err := factory.CreateHBox(dlg)
	require.NoError(t, err)
	hbox.SetSpacing(0)

	a, err := factory.CreateHStretch(hbox)
	require.NoError(t, err)
	a.SetWeight(constants.Horizontal, 1)
	b, err := factory.CreateHStretch(hbox)
	require.NoError(t, err)
	b.SetWeight(constants.Horizontal, 3)
	// 100 px at 10 px per column.
	c, err := factory.CreateHSpacing(hbox, 100)
	require.NoError(t, err)

	require.NoError(t, dlg.Open())
	dlg.Recalc()

	// 90 columns are shared 1:3, the leftover column goes to the first
	// stretchy child.
	assert.Equal(t, 23, a.Bounds().Width)
	assert.Equal(t, 67, b.Bounds().Width)
	assert.Equal(t, 10, c.Bounds().Width)
	assert.Equal(t, 90, c.Bounds().X)
}

func TestVBoxShrinksWidestFirst(t *testing.T) {
	factory, dlg := newDialogOfSize(t, aui.Size{Width: 20, Height: 10})
	vbox, err := factory.CreateVBox(dlg)
	require.NoError(t, err)

	var labels []*aui.Label
	for range 5 {
		l, err := factory.CreateLabel(vbox, "1\n2\n3\n4")
		require.NoError(t, err)
		labels = append(labels, l)
	}
	require.NoError(t, dlg.Open())
	dlg.Recalc()

	total := 0
	for _, l := range labels {
		h := l.Bounds().Height
		assert.GreaterOrEqual(t, h, 1)
		total += h
	}
	assert.Equal(t, 10, total)
	assert.Equal(t, 2, labels[0].Bounds().Height)
}

func TestBoxPreferredSizeAndCrossAxis(t *testing.T) {
	factory, dlg := newDialogOfSize(t, aui.Size{Width: 40, Height: 10})
	vbox, err := factory.CreateVBox(dlg)
	require.NoError(t, err)
	label, err := factory.CreateLabel(vbox, "short")
	require.NoError(t, err)
	inner, err := factory.CreateVBox(vbox)
	require.NoError(t, err)
	_, err = factory.CreateLabel(inner, "nested")
	require.NoError(t, err)
	vbox.SetSpacing(1)

	assert.Equal(t, aui.Size{Width: 6, Height: 3}, vbox.PreferredSize(auitest.Metrics{}))

	require.NoError(t, dlg.Open())
	dlg.Recalc()
	assert.Equal(t, 5, label.Bounds().Width, "labels keep their width")
	assert.Equal(t, 40, inner.Bounds().Width, "a nested VBox fills the width")
	assert.Equal(t, 2, inner.Bounds().Y)
}

func TestStretchableFollowsChildren(t *testing.T) {
	factory, dlg := newDialogOfSize(t, aui.Size{Width: 40, Height: 10})
	hbox, err := factory.CreateHBox(dlg)
	require.NoError(t, err)
	assert.False(t, hbox.Stretchable(constants.Horizontal))

	_, err = factory.CreateHStretch(hbox)
	require.NoError(t, err)
	assert.True(t, hbox.Stretchable(constants.Horizontal))
	assert.False(t, hbox.Stretchable(constants.Vertical))
	assert.Equal(t, constants.Horizontal, hbox.Dimension())
}

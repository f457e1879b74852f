package aui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
)

func TestDumbTabPostsTabLabel(t *testing.T) {
	f := newFixture(t)
	tabs, err := f.factory.CreateDumbTab(f.vbox)
	require.NoError(t, err)
	general, advanced := aui.NewItem("&General"), aui.NewItem("Advanced")
	tabs.AddItems(general, advanced)
	_, err = f.factory.CreateReplacePoint(tabs)
	require.NoError(t, err)
	assert.Equal(t, 0, tabs.CurrentIndex(), "the first tab starts current")

	f.open(t)
	f.backend.PushKeys(constants.KeyRight)
	me := menuEvent(t, f.poll(t))
	assert.Equal(t, "Advanced", me.ID)
	assert.Equal(t, aui.Selectable(advanced), me.Item)
	assert.Equal(t, 1, tabs.CurrentIndex())

	f.backend.PushKeys(constants.KeyRight)
	me = menuEvent(t, f.poll(t))
	assert.Equal(t, "General", me.ID, "mnemonics are stripped and right wraps")

	f.backend.PushKeys(constants.KeyEnd)
	assert.Equal(t, "Advanced", menuEvent(t, f.poll(t)).ID)
}

func TestDumbTabSelection(t *testing.T) {
	f := newFixture(t)
	tabs, err := f.factory.CreateDumbTab(f.vbox)
	require.NoError(t, err)
	a, b := aui.NewItem("A"), aui.NewItem("B")
	tabs.AddItems(a, b)

	tabs.SelectItem(b, true)
	assert.Equal(t, 1, tabs.CurrentIndex())
	tabs.SelectItem(b, false)
	assert.Equal(t, 1, tabs.CurrentIndex(), "tabs cannot be deselected")
	tabs.SelectItem(aui.NewItem("B"), true)
	assert.Equal(t, aui.Selectable(b), tabs.SelectedItem())

	tabs.DeleteAllItems()
	assert.Equal(t, -1, tabs.CurrentIndex())
	assert.Empty(t, tabs.Value())
}

func TestComboBoxPick(t *testing.T) {
	f := newFixture(t)
	combo, err := f.factory.CreateComboBox(f.vbox, "Shell", false)
	require.NoError(t, err)
	combo.AddItems(aui.NewItem("bash"), aui.NewItem("zsh"), aui.NewItem("fish"))
	combo.SetNotify(true)
	assert.Equal(t, "bash", combo.Value())
	assert.ErrorIs(t, combo.SetValue("tcsh"), aui.ErrInvalidValue)

	f.open(t)
	f.backend.PushKeys(constants.KeyDown)
	assert.Nil(t, f.poll(t))
	require.True(t, combo.IsExpanded())

	f.backend.PushKeys(constants.KeyDown, constants.KeyDown, constants.KeyEnter)
	we := widgetEvent(t, f.poll(t))
	assert.Equal(t, constants.ReasonSelectionChanged, we.Reason)
	assert.Equal(t, "fish", combo.Value())
	assert.False(t, combo.IsExpanded())
}

func TestEditableComboBox(t *testing.T) {
	f := newFixture(t)
	combo, err := f.factory.CreateComboBox(f.vbox, "Host", true)
	require.NoError(t, err)
	combo.AddItems(aui.NewItem("localhost"))

	require.NoError(t, combo.SetValue("example.org"))
	assert.Nil(t, combo.SelectedItem(), "free text clears the selection")
	assert.Equal(t, "example.org", combo.Value())

	require.NoError(t, combo.SetValue("localhost"))
	assert.Equal(t, "localhost", combo.SelectedItem().Label())
}

func TestLogViewKeepsNewestLines(t *testing.T) {
	f := newFixture(t)
	log, err := f.factory.CreateLogView(f.vbox, "Output", 2, 3)
	require.NoError(t, err)

	log.AppendLines("one\ntwo\n")
	log.AppendLines("three\nfour")
	assert.Equal(t, []string{"two", "three", "four"}, log.Lines())
	assert.Equal(t, "two\nthree\nfour", log.Text())

	log.SetText("fresh")
	assert.Equal(t, []string{"fresh"}, log.Lines())
	log.ClearText()
	assert.Empty(t, log.Lines())
}

func TestProgressBarRange(t *testing.T) {
	f := newFixture(t)
	bar, err := f.factory.CreateProgressBar(f.vbox, "Copying", 200, 500)
	require.NoError(t, err)
	assert.Equal(t, 200, bar.Value(), "the initial value is clamped")

	require.NoError(t, bar.SetValue(50))
	assert.InDelta(t, 0.25, bar.Fraction(), 1e-9)
	assert.ErrorIs(t, bar.SetValue(201), aui.ErrInvalidValue)
	assert.Equal(t, 50, bar.Value())
}

func TestRichTextLinks(t *testing.T) {
	f := newFixture(t)
	rt, err := f.factory.CreateRichText(f.vbox,
		`<p>See <a href="docs">the docs</a></p><ul><li>one</li><li><a href="two">two</a></li></ul>`, false)
	require.NoError(t, err)

	assert.Equal(t, []aui.Link{{Text: "the docs", Href: "docs"}, {Text: "two", Href: "two"}}, rt.Links())
	assert.Equal(t, 0, rt.HoveredLink())

	f.open(t)
	require.NoError(t, f.dialog.SetFocus(rt))
	f.backend.PushKeys(constants.KeyRight, constants.KeyEnter)
	me := menuEvent(t, f.poll(t))
	assert.Equal(t, "two", me.ID)

	plain, err := f.factory.CreateRichText(f.vbox, "<b>raw</b>", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"<b>raw</b>"}, plain.Lines())
	assert.Empty(t, plain.Links())
}

package aui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
)

type menus struct {
	bar                         *aui.MenuBar
	file, open, recent, a, quit *aui.MenuItem
	edit                        *aui.MenuItem
}

// newMenus builds File{Open, ---, Recent{a.txt}, Quit} and Edit{Undo}.
func newMenus(t *testing.T, f *fixture) menus {
	t.Helper()
	var m menus
	var err error
	m.bar, err = f.factory.CreateMenuBar(f.vbox)
	require.NoError(t, err)

	m.file, err = m.bar.AddNewMenu("&File")
	require.NoError(t, err)
	m.open, err = m.file.AddAction("&Open")
	require.NoError(t, err)
	require.NoError(t, m.file.AddSeparator())
	m.recent, err = m.file.AddMenu("&Recent")
	require.NoError(t, err)
	m.a, err = m.recent.AddAction("a.txt")
	require.NoError(t, err)
	m.quit, err = m.file.AddAction("&Quit")
	require.NoError(t, err)

	m.edit, err = m.bar.AddNewMenu("&Edit")
	require.NoError(t, err)
	_, err = m.edit.AddAction("&Undo")
	require.NoError(t, err)
	return m
}

func menuEvent(t *testing.T, ev aui.Event) *aui.MenuEvent {
	t.Helper()
	require.NotNil(t, ev, "expected a menu event")
	me, ok := ev.(*aui.MenuEvent)
	require.True(t, ok, "got %s", ev)
	return me
}

func TestMenuPath(t *testing.T) {
	f := newFixture(t)
	m := newMenus(t, f)
	assert.Equal(t, "File/Recent/a.txt", m.a.Path())
	assert.Equal(t, "Edit", m.edit.Path())

	f.open(t)
	f.backend.PushKeys(
		constants.KeyDown,  // open File, Open highlighted
		constants.KeyDown,  // skip the separator to Recent
		constants.KeyRight, // into Recent
		constants.KeyEnter, // a.txt
	)
	me := menuEvent(t, f.poll(t))
	assert.Equal(t, "File/Recent/a.txt", me.ID)
	assert.Equal(t, aui.Selectable(m.a), me.Item)
	assert.False(t, m.bar.IsExpanded(), "activation closes the popups")
}

func TestMenuNavigation(t *testing.T) {
	f := newFixture(t)
	m := newMenus(t, f)
	f.open(t)

	f.backend.PushKeys(constants.KeyRight)
	assert.Nil(t, f.poll(t))
	assert.Equal(t, m.edit, m.bar.CurrentMenu())

	f.backend.PushKeys(constants.KeyEnter)
	f.poll(t)
	require.True(t, m.bar.IsExpanded())
	assert.Equal(t, "&Undo", m.bar.SelectedItem().Label())

	f.backend.PushKeys(constants.KeyRight)
	f.poll(t)
	assert.Equal(t, m.file, m.bar.CurrentMenu(), "right wraps and keeps the bar open")
	assert.Equal(t, m.open, m.bar.SelectedItem())

	f.backend.PushKeys(constants.KeyEscape)
	f.poll(t)
	assert.False(t, m.bar.IsExpanded())
	assert.Empty(t, m.bar.OpenPath())
}

func TestDisabledMenuItemBeeps(t *testing.T) {
	f := newFixture(t)
	m := newMenus(t, f)
	m.open.SetEnabled(false)
	f.open(t)

	f.backend.PushKeys(constants.KeyDown, constants.KeyEnter)
	assert.Nil(t, f.poll(t))
	assert.Equal(t, 1, f.backend.Beeps)
	assert.True(t, m.bar.IsExpanded())
}

func TestMenuVisibilityRebuildsOncePerIteration(t *testing.T) {
	f := newFixture(t)
	m := newMenus(t, f)
	f.open(t)
	f.poll(t)
	base := m.bar.RebuildCount()

	m.open.SetVisible(false)
	m.quit.SetVisible(false)
	m.edit.SetVisible(false)
	assert.Equal(t, base, m.bar.RebuildCount(), "rebuilds wait for the event loop")

	f.poll(t)
	assert.Equal(t, base+1, m.bar.RebuildCount())
	assert.Equal(t, []*aui.MenuItem{m.file}, m.bar.VisibleMenus())

	f.backend.PushKeys(constants.KeyDown)
	f.poll(t)
	assert.Equal(t, m.recent, m.bar.SelectedItem(), "hidden items and separators are skipped")
}

func TestMenuRebuildKeepsOpenPath(t *testing.T) {
	f := newFixture(t)
	m := newMenus(t, f)
	f.open(t)
	f.backend.PushKeys(constants.KeyDown, constants.KeyDown, constants.KeyRight)
	f.poll(t)
	require.Len(t, m.bar.OpenPath(), 2)

	m.open.SetVisible(false)
	f.poll(t)
	assert.Len(t, m.bar.OpenPath(), 2, "Recent is still shown")

	m.recent.SetVisible(false)
	f.poll(t)
	path := m.bar.OpenPath()
	require.Len(t, path, 1)
	assert.Equal(t, m.file, path[0].Menu)
}

func TestMenuNesting(t *testing.T) {
	sep := aui.NewMenuSeparator()
	assert.ErrorIs(t, sep.AddItem(aui.NewMenuItem("x")), aui.ErrInvalidNesting)

	parent := aui.NewMenu("p")
	child := aui.NewMenuItem("c")
	require.NoError(t, parent.AddItem(child))
	assert.ErrorIs(t, aui.NewMenu("q").AddItem(child), aui.ErrInvalidNesting)
	assert.Equal(t, parent, child.Parent())
}

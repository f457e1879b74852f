package aui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
)

func newSelectionBox(t *testing.T, f *fixture, multi bool, labels ...string) (*aui.SelectionBox, []*aui.Item) {
	t.Helper()
	create := f.factory.CreateSelectionBox
	if multi {
		create = f.factory.CreateMultiSelectionBox
	}
	sb, err := create(f.vbox, "Pick")
	require.NoError(t, err)
	items := make([]*aui.Item, len(labels))
	for i, l := range labels {
		items[i] = aui.NewItem(l)
	}
	sb.AddItems(items...)
	return sb, items
}

func TestSingleSelection(t *testing.T) {
	f := newFixture(t)
	sb, items := newSelectionBox(t, f, false, "a", "b", "c")

	sb.SelectItem(items[1], true)
	assert.Equal(t, []aui.Selectable{items[1]}, sb.SelectedItems())
	assert.Equal(t, "b", sb.Value())
	assert.False(t, items[0].Selected())
	assert.True(t, items[1].Selected())
	assert.False(t, items[2].Selected())

	sb.SelectItem(items[2], true)
	assert.Equal(t, []aui.Selectable{items[2]}, sb.SelectedItems())
	assert.False(t, items[1].Selected(), "single mode keeps one item selected")
}

func TestMultiSelectionKeepsOrder(t *testing.T) {
	f := newFixture(t)
	sb, items := newSelectionBox(t, f, true, "a", "b", "c")

	sb.SelectItem(items[2], true)
	sb.SelectItem(items[0], true)
	assert.Equal(t, []aui.Selectable{items[2], items[0]}, sb.SelectedItems())
	assert.Equal(t, "c", sb.Value())

	sb.SetMultiSelection(false)
	assert.Equal(t, []aui.Selectable{items[2]}, sb.SelectedItems())
	assert.False(t, items[0].Selected())
}

func TestPreselectedItems(t *testing.T) {
	f := newFixture(t)
	sb, err := f.factory.CreateSelectionBox(f.vbox, "Pick")
	require.NoError(t, err)
	first := aui.NewSelectedItem("x")
	second := aui.NewSelectedItem("y")
	sb.AddItems(first, second)

	assert.Equal(t, []aui.Selectable{second}, sb.SelectedItems())
	assert.False(t, first.Selected())
}

func TestForeignItemIsIgnored(t *testing.T) {
	f := newFixture(t)
	sb, _ := newSelectionBox(t, f, false, "a")
	stranger := aui.NewItem("z")

	sb.SelectItem(stranger, true)
	assert.Empty(t, sb.SelectedItems())
	assert.False(t, stranger.Selected())
}

func TestDeleteAllItems(t *testing.T) {
	f := newFixture(t)
	sb, items := newSelectionBox(t, f, false, "a", "b")
	sb.SelectItem(items[0], true)

	sb.DeleteAllItems()
	assert.Zero(t, sb.ItemCount())
	assert.Empty(t, sb.SelectedItems())
	assert.Equal(t, "", sb.Value())
	assert.Nil(t, sb.HoveredItem())
}

func TestAttachedItemIsNotAddedTwice(t *testing.T) {
	f := newFixture(t)
	sb, items := newSelectionBox(t, f, false, "a")

	sb.AddItem(items[0])
	assert.Equal(t, 1, sb.ItemCount())
	assert.Equal(t, 0, items[0].Index())

	combo, err := f.factory.CreateComboBox(f.vbox, "Pick", false)
	require.NoError(t, err)
	combo.AddItem(items[0])
	assert.Empty(t, combo.Items(), "an item belongs to one widget")

	sb.DeleteAllItems()
	combo.AddItem(items[0])
	assert.Len(t, combo.Items(), 1, "released items can be added again")
}

func TestSelectionBoxNotifiesOnlyWhenAsked(t *testing.T) {
	f := newFixture(t)
	newSelectionBox(t, f, false, "a", "b")
	f.open(t)

	f.backend.PushKeys(constants.KeyEnter)
	assert.Nil(t, f.poll(t))
}

func TestSelectionBoxKeys(t *testing.T) {
	f := newFixture(t)
	sb, items := newSelectionBox(t, f, false, "a", "b", "c")
	sb.SetNotify(true)
	f.open(t)
	require.Equal(t, aui.Widget(sb), f.dialog.Focused())

	f.backend.PushKeys(constants.KeyDown, constants.KeyEnter)
	we := widgetEvent(t, f.poll(t))
	assert.Equal(t, aui.Widget(sb), we.Widget)
	assert.Equal(t, constants.ReasonSelectionChanged, we.Reason)
	assert.Equal(t, items[1], sb.SelectedItem())
}

func TestSelectItemPostsNoEvent(t *testing.T) {
	f := newFixture(t)
	sb, items := newSelectionBox(t, f, false, "a", "b")
	sb.SetNotify(true)
	f.open(t)

	sb.SelectItem(items[1], true)
	assert.Nil(t, f.poll(t))
}

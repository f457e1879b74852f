package aui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
)

type forest struct {
	r, c1, c2, g1, g2 *aui.TreeItem
}

// newForest builds r{c1{g1, g2}, c2}, all closed.
func newForest() forest {
	var f forest
	f.r = aui.NewTreeItem("r")
	f.c1 = aui.NewTreeItemUnder(f.r, "c1")
	f.c2 = aui.NewTreeItemUnder(f.r, "c2")
	f.g1 = aui.NewTreeItemUnder(f.c1, "g1")
	f.g2 = aui.NewTreeItemUnder(f.c1, "g2")
	return f
}

func labels(items []*aui.TreeItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Label()
	}
	return out
}

func TestRecursiveTreeSelection(t *testing.T) {
	f := newFixture(t)
	tree, err := f.factory.CreateTree(f.vbox, "Files", false, true)
	require.NoError(t, err)
	nodes := newForest()
	tree.AddItem(nodes.r)
	require.False(t, nodes.r.IsOpen())
	assert.True(t, tree.IsMultiSelection(), "recursive selection implies multi")

	tree.SelectItem(nodes.c1, true)
	assert.ElementsMatch(t, []aui.Selectable{nodes.c1, nodes.g1, nodes.g2}, tree.SelectedItems())
	assert.True(t, nodes.r.IsOpen(), "ancestors of a selected node are opened")
	assert.Equal(t, []string{"r", "c1", "g1", "g2", "c2"}, labels(tree.VisibleItems()))
	assert.Equal(t, nodes.c1, tree.CurrentItem())

	tree.SelectItem(nodes.c1, false)
	assert.Empty(t, tree.SelectedItems())
	assert.False(t, nodes.g2.Selected())
}

func TestTreeSelectionOpensHiddenNode(t *testing.T) {
	f := newFixture(t)
	tree, err := f.factory.CreateTree(f.vbox, "Files", false, false)
	require.NoError(t, err)
	nodes := newForest()
	tree.AddItem(nodes.r)
	assert.Equal(t, []string{"r"}, labels(tree.VisibleItems()))

	tree.SelectItem(nodes.g2, true)
	assert.Equal(t, []aui.Selectable{nodes.g2}, tree.SelectedItems())
	assert.True(t, nodes.g2.IsVisible())
	assert.Equal(t, 2, nodes.g2.Depth())

	tree.SelectItem(nodes.c2, true)
	assert.Equal(t, []aui.Selectable{nodes.c2}, tree.SelectedItems())
	assert.False(t, nodes.g2.Selected())
}

func TestTreeKeepsSelectedAncestorsOpen(t *testing.T) {
	f := newFixture(t)
	tree, err := f.factory.CreateTree(f.vbox, "Files", false, false)
	require.NoError(t, err)
	nodes := newForest()
	tree.AddItem(nodes.r)
	tree.SelectItem(nodes.g1, true)
	f.open(t)

	nodes.c1.SetOpen(false)
	assert.True(t, nodes.c1.IsOpen(), "a selected node stays visible")
	assert.True(t, nodes.r.IsOpen())
}

func TestTreeKeys(t *testing.T) {
	f := newFixture(t)
	tree, err := f.factory.CreateTree(f.vbox, "Files", false, false)
	require.NoError(t, err)
	tree.SetNotify(true)
	nodes := newForest()
	tree.AddItem(nodes.r)
	f.open(t)

	f.backend.PushKeys(constants.KeyRight)
	assert.Nil(t, f.poll(t))
	assert.True(t, nodes.r.IsOpen())

	f.backend.PushKeys(constants.KeyDown, constants.KeyDown, constants.KeyEnter)
	we := widgetEvent(t, f.poll(t))
	assert.Equal(t, constants.ReasonSelectionChanged, we.Reason)
	assert.Equal(t, nodes.c2, tree.SelectedItem())

	f.backend.PushKeys(constants.KeyLeft)
	f.poll(t)
	assert.Equal(t, nodes.r, tree.CurrentItem(), "left on a leaf moves to its parent")
}

func TestTreeAddChildAfterAttach(t *testing.T) {
	f := newFixture(t)
	tree, err := f.factory.CreateTree(f.vbox, "Files", false, false)
	require.NoError(t, err)
	root := aui.NewTreeItemWithIcon(nil, "root", "folder", true)
	tree.AddItem(root)

	aui.NewTreeItemUnder(root, "late")
	assert.Equal(t, []string{"root", "late"}, labels(tree.VisibleItems()))

	tree.AddItem(root)
	assert.Len(t, tree.Roots(), 1, "attached nodes are not added twice")
}

func TestTreeDeleteAllItems(t *testing.T) {
	f := newFixture(t)
	tree, err := f.factory.CreateTree(f.vbox, "Files", true, false)
	require.NoError(t, err)
	nodes := newForest()
	tree.AddItem(nodes.r)
	tree.SelectItem(nodes.g1, true)

	tree.DeleteAllItems()
	assert.Empty(t, tree.Roots())
	assert.Empty(t, tree.VisibleItems())
	assert.Empty(t, tree.SelectedItems())
	assert.Nil(t, tree.CurrentItem())

	tree.SelectItem(nodes.g1, true)
	assert.Empty(t, tree.SelectedItems(), "released nodes are foreign")
}

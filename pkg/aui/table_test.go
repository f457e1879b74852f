package aui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/auitest"
	"github.com/BrandonKowalski/aui/pkg/aui/constants"
)

func newPackageTable(t *testing.T, f *fixture, multi bool) (*aui.Table, []*aui.TableItem) {
	t.Helper()
	header := aui.NewTableHeader(aui.Column("Package"), aui.CheckboxColumn("Install"))
	table, err := f.factory.CreateTable(f.vbox, header, multi)
	require.NoError(t, err)
	rows := []*aui.TableItem{
		aui.NewTableItemWithCells(aui.NewTableCell("curl"), aui.NewCheckCell(false)),
		aui.NewTableItemWithCells(aui.NewTableCell("vim"), aui.NewCheckCell(true)),
	}
	require.NoError(t, table.AddItems(rows...))
	return table, rows
}

func TestCheckboxColumnForcesSingleSelection(t *testing.T) {
	f := newFixture(t)
	table, rows := newPackageTable(t, f, true)
	assert.False(t, table.IsMultiSelection())

	table.SetMultiSelection(true)
	assert.False(t, table.IsMultiSelection())

	table.SelectItem(rows[0], true)
	table.SelectItem(rows[1], true)
	assert.Equal(t, []aui.Selectable{rows[1]}, table.SelectedItems())
	assert.Equal(t, "vim", table.Value())
}

func TestSpaceTogglesCheckCell(t *testing.T) {
	f := newFixture(t)
	table, rows := newPackageTable(t, f, false)
	table.SetNotify(true)
	f.open(t)
	require.Equal(t, aui.Widget(table), f.dialog.Focused())

	f.backend.PushKeys(constants.KeySpace)
	we := widgetEvent(t, f.poll(t))
	assert.Equal(t, constants.ReasonValueChanged, we.Reason)
	assert.True(t, rows[0].Cell(1).Checked())
	assert.Equal(t, rows[0], table.ChangedItem())
	assert.Empty(t, table.SelectedItems(), "toggling does not select")

	f.backend.PushKeys(constants.KeyDown, constants.KeyEnter)
	we = widgetEvent(t, f.poll(t))
	assert.Equal(t, constants.ReasonSelectionChanged, we.Reason)
	assert.Equal(t, rows[1], table.SelectedItem())
	assert.Equal(t, rows[0], table.ChangedItem())
}

func TestSetCheckedPostsNoEvent(t *testing.T) {
	f := newFixture(t)
	table, rows := newPackageTable(t, f, false)
	table.SetNotify(true)
	f.open(t)

	rows[1].Cell(1).SetChecked(false)
	assert.False(t, rows[1].Cell(1).Checked())
	assert.Nil(t, f.poll(t))
	assert.Nil(t, table.ChangedItem())
}

func TestTableRefusesMismatchedRows(t *testing.T) {
	f := newFixture(t)
	table, _ := newPackageTable(t, f, false)

	tooWide := aui.NewTableItem("a", "b", "c")
	assert.ErrorIs(t, table.AddItem(tooWide), aui.ErrInvalidValue)

	wrongType := aui.NewTableItem("a", "b")
	assert.ErrorIs(t, table.AddItem(wrongType), aui.ErrInvalidValue)
	assert.Equal(t, 2, table.ItemCount())
}

func TestAddCellFollowsHeader(t *testing.T) {
	f := newFixture(t)
	table, _ := newPackageTable(t, f, false)
	row := aui.NewTableItem("git")
	require.NoError(t, table.AddItem(row))

	assert.ErrorIs(t, row.AddCell(aui.NewTableCell("yes")), aui.ErrInvalidValue, "text cell in a checkbox column")
	require.NoError(t, row.AddCell(aui.NewCheckCell(true)))
	assert.ErrorIs(t, row.AddCell(aui.NewCheckCell(false)), aui.ErrInvalidValue, "cell beyond the last column")

	assert.Len(t, row.Cells(), table.Header().Columns())
	assert.True(t, row.Cell(1).IsCheckbox())

	loose := aui.NewTableItem("a")
	require.NoError(t, loose.AddCell(aui.NewTableCell("b")))
	require.NoError(t, loose.AddCell(aui.NewTableCell("c")))
	assert.Len(t, loose.Cells(), 3, "rows outside a table are checked when added")
}

func TestTableRefusesAttachedRow(t *testing.T) {
	f := newFixture(t)
	table, rows := newPackageTable(t, f, false)

	assert.ErrorIs(t, table.AddItem(rows[0]), aui.ErrInvalidValue)
	assert.Equal(t, 2, table.ItemCount())
	assert.Equal(t, 0, rows[0].Index())
}

func TestTableMultiSelection(t *testing.T) {
	f := newFixture(t)
	header := aui.NewTableHeader(aui.Column("Name"), aui.Column("Size"))
	table, err := f.factory.CreateTable(f.vbox, header, true)
	require.NoError(t, err)
	a := aui.NewTableItem("a", "1")
	b := aui.NewTableItem("b", "2")
	require.NoError(t, table.AddItems(a, b))

	table.SelectItem(a, true)
	table.SelectItem(b, true)
	assert.Equal(t, []aui.Selectable{a, b}, table.SelectedItems())

	table.DeleteAllItems()
	assert.Empty(t, table.SelectedItems())
	assert.False(t, a.Selected())
}

func TestTableColumnWidths(t *testing.T) {
	f := newFixture(t)
	table, _ := newPackageTable(t, f, false)
	m := auitest.Metrics{}

	assert.Equal(t, []int{7, 7}, table.ColumnWidths(m))
	table.SetColumnWidth(0, 20)
	assert.Equal(t, []int{20, 7}, table.ColumnWidths(m))
	table.SetColumnWidth(0, 0)
	assert.Equal(t, 7, table.ColumnWidths(m)[0])
}

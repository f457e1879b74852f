package aui

import (
	"fmt"

	"github.com/BrandonKowalski/aui/pkg/aui/constants"
)

// TableColumn describes one column of a table header.
type TableColumn struct {
	Label     string
	Alignment constants.Alignment // begin, center or end; unchanged means begin
	Checkbox  bool                // cells in this column are check cells
}

// TableHeader is the fixed column layout of a table.
type TableHeader struct {
	columns []TableColumn
}

// NewTableHeader creates a header. The column count cannot change later.
func NewTableHeader(columns ...TableColumn) *TableHeader {
	return &TableHeader{columns: append([]TableColumn(nil), columns...)}
}

// Column is shorthand for a begin-aligned text column.
func Column(label string) TableColumn {
	return TableColumn{Label: label, Alignment: constants.AlignBegin}
}

// CheckboxColumn is shorthand for a centered checkbox column.
func CheckboxColumn(label string) TableColumn {
	return TableColumn{Label: label, Alignment: constants.AlignCenter, Checkbox: true}
}

func (h *TableHeader) Columns() int { return len(h.columns) }

// Column returns the descriptor of column i.
func (h *TableHeader) Column(i int) TableColumn {
	if i < 0 || i >= len(h.columns) {
		return TableColumn{}
	}
	return h.columns[i]
}

// HasCheckboxColumn reports whether any column holds check cells.
func (h *TableHeader) HasCheckboxColumn() bool {
	for _, c := range h.columns {
		if c.Checkbox {
			return true
		}
	}
	return false
}

func (h *TableHeader) IsCheckboxColumn(i int) bool {
	return h.Column(i).Checkbox
}

// checkCell refuses a cell that does not fit column i.
func (h *TableHeader) checkCell(i int, c *TableCell) error {
	if i >= h.Columns() {
		return fmt.Errorf("%w: cell %d is beyond the header's %d columns", ErrInvalidValue, i, h.Columns())
	}
	if c.check != h.IsCheckboxColumn(i) {
		return fmt.Errorf("%w: cell %d does not match its column type", ErrInvalidValue, i)
	}
	return nil
}

// TableCell is either a text cell (label and icon) or a check cell.
type TableCell struct {
	row     *TableItem
	column  int
	label   string
	icon    string
	check   bool
	checked bool
}

// NewTableCell creates a text cell.
func NewTableCell(label string) *TableCell {
	return &TableCell{label: label, column: -1}
}

// NewTableCellWithIcon creates a text cell with an icon.
func NewTableCellWithIcon(label, icon string) *TableCell {
	return &TableCell{label: label, icon: icon, column: -1}
}

// NewCheckCell creates a check cell.
func NewCheckCell(checked bool) *TableCell {
	return &TableCell{check: true, checked: checked, column: -1}
}

func (c *TableCell) Label() string { return c.label }

func (c *TableCell) IconName() string { return c.icon }

func (c *TableCell) IsCheckbox() bool { return c.check }

func (c *TableCell) Checked() bool { return c.checked }

// Column is the cell's column, -1 if it is not in a row yet.
func (c *TableCell) Column() int { return c.column }

// Row is the item the cell belongs to, nil if none.
func (c *TableCell) Row() *TableItem { return c.row }

// SetLabel changes a text cell's label.
func (c *TableCell) SetLabel(label string) {
	c.label = label
	c.notifyRow()
}

// SetChecked changes a check cell's state programmatically. No event is
// posted.
func (c *TableCell) SetChecked(checked bool) {
	c.checked = checked
	c.notifyRow()
}

func (c *TableCell) notifyRow() {
	if c.row != nil {
		c.row.notifyOwner()
	}
}

// TableItem is one table row.
type TableItem struct {
	Item
	cells []*TableCell
}

// NewTableItem creates a row of text cells.
func NewTableItem(labels ...string) *TableItem {
	ti := &TableItem{Item: Item{index: -1}}
	ti.self = ti
	for _, l := range labels {
		ti.appendCell(NewTableCell(l))
	}
	return ti
}

// NewTableItemWithCells creates a row from prepared cells.
func NewTableItemWithCells(cells ...*TableCell) *TableItem {
	ti := &TableItem{Item: Item{index: -1}}
	ti.self = ti
	for _, c := range cells {
		ti.appendCell(c)
	}
	return ti
}

// AddCell appends a cell in the next column. Once the row belongs to a
// table the cell must fit the header, otherwise ErrInvalidValue is
// returned and the row is unchanged.
func (ti *TableItem) AddCell(c *TableCell) error {
	if t, ok := ti.owner.(*Table); ok {
		if err := t.header.checkCell(len(ti.cells), c); err != nil {
			return err
		}
	}
	ti.appendCell(c)
	ti.notifyOwner()
	return nil
}

func (ti *TableItem) appendCell(c *TableCell) {
	c.row = ti
	c.column = len(ti.cells)
	ti.cells = append(ti.cells, c)
}

// Cell returns the cell in column i, nil if the row is shorter.
func (ti *TableItem) Cell(i int) *TableCell {
	if i < 0 || i >= len(ti.cells) {
		return nil
	}
	return ti.cells[i]
}

func (ti *TableItem) Cells() []*TableCell {
	return append([]*TableCell(nil), ti.cells...)
}

// Label is the first text cell's label.
func (ti *TableItem) Label() string {
	for _, c := range ti.cells {
		if !c.check {
			return c.label
		}
	}
	return ""
}

// IconName is the first text cell's icon.
func (ti *TableItem) IconName() string {
	for _, c := range ti.cells {
		if !c.check {
			return c.icon
		}
	}
	return ""
}

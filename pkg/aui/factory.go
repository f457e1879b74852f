package aui

import (
	"fmt"

	"github.com/BrandonKowalski/aui/pkg/aui/constants"
)

// Factory is the construction surface applications build widget trees
// with. Every constructor takes the parent, which owns the new widget.
type Factory interface {
	Backend() Backend

	CreateMainDialog(mode constants.ColorMode) (*Dialog, error)
	CreatePopupDialog(mode constants.ColorMode) (*Dialog, error)

	CreateVBox(parent Widget) (*Box, error)
	CreateHBox(parent Widget) (*Box, error)
	CreateAlignment(parent Widget, h, v constants.Alignment) (*Alignment, error)
	CreateLeft(parent Widget) (*Alignment, error)
	CreateRight(parent Widget) (*Alignment, error)
	CreateTop(parent Widget) (*Alignment, error)
	CreateBottom(parent Widget) (*Alignment, error)
	CreateHCenter(parent Widget) (*Alignment, error)
	CreateVCenter(parent Widget) (*Alignment, error)
	CreateHVCenter(parent Widget) (*Alignment, error)
	CreateMinSize(parent Widget, widthPx, heightPx int) (*Alignment, error)
	CreateFrame(parent Widget, label string) (*Frame, error)
	CreateCheckBoxFrame(parent Widget, label string, checked bool) (*CheckBoxFrame, error)
	CreateReplacePoint(parent Widget) (*ReplacePoint, error)
	CreateHSpacing(parent Widget, sizePx int) (*Spacing, error)
	CreateVSpacing(parent Widget, sizePx int) (*Spacing, error)
	CreateHStretch(parent Widget) (*Spacing, error)
	CreateVStretch(parent Widget) (*Spacing, error)
	CreateHPaned(parent Widget) (*Paned, error)
	CreateVPaned(parent Widget) (*Paned, error)
	CreateRadioButtonGroup(parent Widget) (*RadioButtonGroup, error)

	CreateLabel(parent Widget, text string) (*Label, error)
	CreateHeading(parent Widget, text string) (*Label, error)
	CreateOutputField(parent Widget, text string) (*Label, error)
	CreatePushButton(parent Widget, label string) (*PushButton, error)
	CreateCheckBox(parent Widget, label string, checked bool) (*CheckBox, error)
	CreateRadioButton(parent Widget, label string, checked bool) (*RadioButton, error)
	CreateInputField(parent Widget, label string) (*InputField, error)
	CreatePasswordField(parent Widget, label string) (*InputField, error)
	CreateIntField(parent Widget, label string, minValue, maxValue, initial int) (*IntField, error)
	CreateMultiLineEdit(parent Widget, label string) (*MultiLineEdit, error)
	CreateProgressBar(parent Widget, label string, maxValue, initial int) (*ProgressBar, error)
	CreateSlider(parent Widget, label string, minValue, maxValue, initial int) (*Slider, error)
	CreateImage(parent Widget, path string) (*Image, error)
	CreateDateField(parent Widget, label, initial string) (*DateField, error)
	CreateTimeField(parent Widget, label, initial string) (*TimeField, error)
	CreateRichText(parent Widget, text string, plain bool) (*RichText, error)
	CreateLogView(parent Widget, label string, visibleLines, maxLines int) (*LogView, error)

	CreateSelectionBox(parent Widget, label string) (*SelectionBox, error)
	CreateMultiSelectionBox(parent Widget, label string) (*SelectionBox, error)
	CreateComboBox(parent Widget, label string, editable bool) (*ComboBox, error)
	CreateTable(parent Widget, header *TableHeader, multi bool) (*Table, error)
	CreateTree(parent Widget, label string, multi, recursive bool) (*Tree, error)
	CreateMenuBar(parent Widget) (*MenuBar, error)
	CreateDumbTab(parent Widget) (*DumbTab, error)
}

// WidgetFactory builds widgets for one backend.
type WidgetFactory struct {
	backend Backend
}

var _ Factory = (*WidgetFactory)(nil)

// NewFactory returns the factory for backend. The first factory also
// hands its backend to the application singleton for the host bridges.
func NewFactory(backend Backend) *WidgetFactory {
	if a := GetApplication(); a.Backend() == nil {
		a.SetBackend(backend)
	}
	return &WidgetFactory{backend: backend}
}

func (f *WidgetFactory) Backend() Backend { return f.backend }

// check rejects a missing parent and parents drawn by another backend.
func (f *WidgetFactory) check(parent Widget) error {
	if parent == nil {
		return fmt.Errorf("%w: widget needs a parent", ErrInvalidNesting)
	}
	if b := parent.base().backend; b != f.backend {
		return fmt.Errorf("%w: parent %s belongs to another backend", ErrInvalidNesting, parent.Kind())
	}
	return nil
}

func (f *WidgetFactory) CreateMainDialog(mode constants.ColorMode) (*Dialog, error) {
	return NewDialog(f.backend, constants.DialogMain, mode)
}

func (f *WidgetFactory) CreatePopupDialog(mode constants.ColorMode) (*Dialog, error) {
	return NewDialog(f.backend, constants.DialogPopup, mode)
}

func (f *WidgetFactory) CreateVBox(parent Widget) (*Box, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newBox(parent, constants.Vertical)
}

func (f *WidgetFactory) CreateHBox(parent Widget) (*Box, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newBox(parent, constants.Horizontal)
}

func (f *WidgetFactory) CreateAlignment(parent Widget, h, v constants.Alignment) (*Alignment, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newAlignment(parent, h, v)
}

func (f *WidgetFactory) CreateLeft(parent Widget) (*Alignment, error) {
	return f.CreateAlignment(parent, constants.AlignBegin, constants.AlignUnchanged)
}

func (f *WidgetFactory) CreateRight(parent Widget) (*Alignment, error) {
	return f.CreateAlignment(parent, constants.AlignEnd, constants.AlignUnchanged)
}

func (f *WidgetFactory) CreateTop(parent Widget) (*Alignment, error) {
	return f.CreateAlignment(parent, constants.AlignUnchanged, constants.AlignBegin)
}

func (f *WidgetFactory) CreateBottom(parent Widget) (*Alignment, error) {
	return f.CreateAlignment(parent, constants.AlignUnchanged, constants.AlignEnd)
}

func (f *WidgetFactory) CreateHCenter(parent Widget) (*Alignment, error) {
	return f.CreateAlignment(parent, constants.AlignCenter, constants.AlignUnchanged)
}

func (f *WidgetFactory) CreateVCenter(parent Widget) (*Alignment, error) {
	return f.CreateAlignment(parent, constants.AlignUnchanged, constants.AlignCenter)
}

func (f *WidgetFactory) CreateHVCenter(parent Widget) (*Alignment, error) {
	return f.CreateAlignment(parent, constants.AlignCenter, constants.AlignCenter)
}

// CreateMinSize creates an alignment that only enforces a minimum size in
// device pixels.
func (f *WidgetFactory) CreateMinSize(parent Widget, widthPx, heightPx int) (*Alignment, error) {
	a, err := f.CreateAlignment(parent, constants.AlignUnchanged, constants.AlignUnchanged)
	if err != nil {
		return nil, err
	}
	a.SetMinSize(widthPx, heightPx)
	return a, nil
}

func (f *WidgetFactory) CreateFrame(parent Widget, label string) (*Frame, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newFrame(parent, label)
}

func (f *WidgetFactory) CreateCheckBoxFrame(parent Widget, label string, checked bool) (*CheckBoxFrame, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newCheckBoxFrame(parent, label, checked)
}

func (f *WidgetFactory) CreateReplacePoint(parent Widget) (*ReplacePoint, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newReplacePoint(parent)
}

func (f *WidgetFactory) CreateHSpacing(parent Widget, sizePx int) (*Spacing, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newSpacing(parent, constants.Horizontal, false, sizePx)
}

func (f *WidgetFactory) CreateVSpacing(parent Widget, sizePx int) (*Spacing, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newSpacing(parent, constants.Vertical, false, sizePx)
}

func (f *WidgetFactory) CreateHStretch(parent Widget) (*Spacing, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newSpacing(parent, constants.Horizontal, true, 0)
}

func (f *WidgetFactory) CreateVStretch(parent Widget) (*Spacing, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newSpacing(parent, constants.Vertical, true, 0)
}

func (f *WidgetFactory) CreateHPaned(parent Widget) (*Paned, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newPaned(parent, constants.Horizontal)
}

func (f *WidgetFactory) CreateVPaned(parent Widget) (*Paned, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newPaned(parent, constants.Vertical)
}

func (f *WidgetFactory) CreateRadioButtonGroup(parent Widget) (*RadioButtonGroup, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newRadioButtonGroup(parent)
}

func (f *WidgetFactory) CreateLabel(parent Widget, text string) (*Label, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newLabel(parent, text, false, false)
}

func (f *WidgetFactory) CreateHeading(parent Widget, text string) (*Label, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newLabel(parent, text, true, false)
}

func (f *WidgetFactory) CreateOutputField(parent Widget, text string) (*Label, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newLabel(parent, text, false, true)
}

func (f *WidgetFactory) CreatePushButton(parent Widget, label string) (*PushButton, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newPushButton(parent, label)
}

func (f *WidgetFactory) CreateCheckBox(parent Widget, label string, checked bool) (*CheckBox, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newCheckBox(parent, label, checked)
}

func (f *WidgetFactory) CreateRadioButton(parent Widget, label string, checked bool) (*RadioButton, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newRadioButton(parent, label, checked)
}

func (f *WidgetFactory) CreateInputField(parent Widget, label string) (*InputField, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newInputField(parent, label, false)
}

func (f *WidgetFactory) CreatePasswordField(parent Widget, label string) (*InputField, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newInputField(parent, label, true)
}

func (f *WidgetFactory) CreateIntField(parent Widget, label string, minValue, maxValue, initial int) (*IntField, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newIntField(parent, label, minValue, maxValue, initial)
}

func (f *WidgetFactory) CreateMultiLineEdit(parent Widget, label string) (*MultiLineEdit, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newMultiLineEdit(parent, label)
}

func (f *WidgetFactory) CreateProgressBar(parent Widget, label string, maxValue, initial int) (*ProgressBar, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newProgressBar(parent, label, maxValue, initial)
}

func (f *WidgetFactory) CreateSlider(parent Widget, label string, minValue, maxValue, initial int) (*Slider, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newSlider(parent, label, minValue, maxValue, initial)
}

func (f *WidgetFactory) CreateImage(parent Widget, path string) (*Image, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newImage(parent, path)
}

func (f *WidgetFactory) CreateDateField(parent Widget, label, initial string) (*DateField, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newDateField(parent, label, initial)
}

func (f *WidgetFactory) CreateTimeField(parent Widget, label, initial string) (*TimeField, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newTimeField(parent, label, initial)
}

func (f *WidgetFactory) CreateRichText(parent Widget, text string, plain bool) (*RichText, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newRichText(parent, text, plain)
}

func (f *WidgetFactory) CreateLogView(parent Widget, label string, visibleLines, maxLines int) (*LogView, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newLogView(parent, label, visibleLines, maxLines)
}

func (f *WidgetFactory) CreateSelectionBox(parent Widget, label string) (*SelectionBox, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newSelectionBox(parent, label, false)
}

func (f *WidgetFactory) CreateMultiSelectionBox(parent Widget, label string) (*SelectionBox, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newSelectionBox(parent, label, true)
}

func (f *WidgetFactory) CreateComboBox(parent Widget, label string, editable bool) (*ComboBox, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newComboBox(parent, label, editable)
}

// CreateTable creates a table. A header with a checkbox column forces
// single selection whatever multi says.
func (f *WidgetFactory) CreateTable(parent Widget, header *TableHeader, multi bool) (*Table, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newTable(parent, header, multi)
}

// CreateTree creates a tree. Recursive selection implies multi selection.
func (f *WidgetFactory) CreateTree(parent Widget, label string, multi, recursive bool) (*Tree, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newTree(parent, label, multi, recursive)
}

func (f *WidgetFactory) CreateMenuBar(parent Widget) (*MenuBar, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newMenuBar(parent)
}

func (f *WidgetFactory) CreateDumbTab(parent Widget) (*DumbTab, error) {
	if err := f.check(parent); err != nil {
		return nil, err
	}
	return newDumbTab(parent)
}

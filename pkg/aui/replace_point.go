package aui

import "github.com/BrandonKowalski/aui/pkg/aui/constants"

// ReplacePoint is a single-slot container whose child can be swapped while
// the dialog is open. Creating a widget with the replace point as parent
// replaces the current child; the rest of the dialog is left alone.
type ReplacePoint struct {
	widgetBase
}

func newReplacePoint(parent Widget) (*ReplacePoint, error) {
	rp := &ReplacePoint{}
	if err := rp.init(rp, "ReplacePoint", parent, 1); err != nil {
		return nil, err
	}
	return rp, nil
}

// acceptChild tears down the current child to make room for the new one.
func (rp *ReplacePoint) acceptChild(Widget) error {
	rp.DeleteChildren()
	return nil
}

// Child returns the current child, or nil.
func (rp *ReplacePoint) Child() Widget { return rp.firstChild() }

// ShowChild realises the current child and lays the dialog out again.
func (rp *ReplacePoint) ShowChild() {
	child := rp.firstChild()
	if child != nil {
		child.SetVisible(true)
	}
	d := rp.FindDialog()
	if d == nil {
		return
	}
	if d.IsOpen() {
		if child != nil {
			realizeTree(child)
		}
		d.Recalc()
	} else {
		d.invalidate(true)
	}
	d.ensureFocus()
}

// DeleteChildren destroys the current child and leaves the slot empty.
func (rp *ReplacePoint) DeleteChildren() {
	child := rp.firstChild()
	if child == nil {
		return
	}
	rp.removeChild(child)
	child.destroy()
	if d := rp.FindDialog(); d != nil {
		d.forgetDetached()
		d.invalidate(true)
	}
}

func (rp *ReplacePoint) Stretchable(d constants.Dimension) bool {
	return rp.widgetBase.Stretchable(d) || anyChildHungry(rp.visibleChildren(), d)
}

func (rp *ReplacePoint) PreferredSize(m Metrics) Size {
	if child := rp.firstChild(); child != nil && child.Visible() {
		return child.PreferredSize(m)
	}
	return Size{}
}

func (rp *ReplacePoint) layout(m Metrics, r Rect) {
	rp.bounds = r
	if child := rp.firstChild(); child != nil && child.Visible() {
		child.layout(m, r)
	}
}

package aui

import "github.com/BrandonKowalski/aui/pkg/aui/constants"

// viewport tracks the hovered row and the first visible row of a
// scrolling list. rows is set by the owning widget's layout.
type viewport struct {
	hover  int // -1 when the list is empty
	offset int
	rows   int
}

func newViewport() viewport {
	return viewport{hover: -1}
}

// Hover is the hovered row index, -1 if none.
func (v *viewport) Hover() int { return v.hover }

// Offset is the index of the first visible row.
func (v *viewport) Offset() int { return v.offset }

// VisibleRows is how many rows fit in the content area.
func (v *viewport) VisibleRows() int { return v.rows }

func (v *viewport) reset() {
	v.hover = -1
	v.offset = 0
}

// clamp keeps hover and offset inside a list of n rows.
func (v *viewport) clamp(n int) {
	if n <= 0 {
		v.reset()
		return
	}
	if v.hover >= n {
		v.hover = n - 1
	}
	if v.hover < 0 {
		v.hover = 0
	}
	v.offset = min(v.offset, v.maxOffset(n))
	v.offset = max(v.offset, 0)
	v.ensureVisible(n)
}

func (v *viewport) maxOffset(n int) int {
	return max(0, n-max(1, v.rows))
}

// ensureVisible scrolls just enough to show the hovered row.
func (v *viewport) ensureVisible(n int) {
	if v.hover < 0 || v.rows <= 0 {
		return
	}
	if v.hover < v.offset {
		v.offset = v.hover
	} else if v.hover >= v.offset+v.rows {
		v.offset = v.hover - v.rows + 1
	}
	v.offset = min(max(v.offset, 0), v.maxOffset(n))
}

// scrollTo brings index into view with some context rows above it.
func (v *viewport) scrollTo(index, n int) {
	if index < 0 || index >= n {
		return
	}
	contextRows := max(1, v.rows/4)
	v.offset = min(max(index-contextRows, 0), v.maxOffset(n))
	v.ensureVisible(n)
}

// moveTo hovers index, clamped to the list.
func (v *viewport) moveTo(index, n int) {
	if n <= 0 {
		v.reset()
		return
	}
	v.hover = min(max(index, 0), n-1)
	v.ensureVisible(n)
}

// navigate applies a navigation key to a list of n rows and reports
// whether the key was a navigation key.
func (v *viewport) navigate(k constants.Key, n int) bool {
	page := max(1, v.rows-1)
	switch k {
	case constants.KeyUp:
		v.moveTo(v.hover-1, n)
	case constants.KeyDown:
		v.moveTo(v.hover+1, n)
	case constants.KeyPageUp:
		v.moveTo(v.hover-page, n)
	case constants.KeyPageDown:
		v.moveTo(v.hover+page, n)
	case constants.KeyHome:
		v.moveTo(0, n)
	case constants.KeyEnd:
		v.moveTo(n-1, n)
	default:
		return false
	}
	return true
}

// rowAt maps a y coordinate inside content to a row index, -1 if none.
func (v *viewport) rowAt(content Rect, y, lineHeight, n int) int {
	if lineHeight <= 0 || y < content.Y || y >= content.Y+content.Height {
		return -1
	}
	row := v.offset + (y-content.Y)/lineHeight
	if row >= n {
		return -1
	}
	return row
}

// scrollBy moves the offset without touching hover, for read-only views.
func (v *viewport) scrollBy(delta, n int) {
	v.offset = min(max(v.offset+delta, 0), v.maxOffset(n))
}

package internal

// Insets defines spacing on all four sides of an element.
type Insets struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// Uniform creates Insets with the same value on all sides.
func Uniform(value int) Insets {
	return Insets{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// Horizontal is the combined left and right inset.
func (i Insets) Horizontal() int {
	return i.Left + i.Right
}

// Vertical is the combined top and bottom inset.
func (i Insets) Vertical() int {
	return i.Top + i.Bottom
}

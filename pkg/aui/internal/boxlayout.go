package internal

import "github.com/BrandonKowalski/aui/pkg/aui/constants"

// Slot describes one box child along the box's main axis.
type Slot struct {
	Min     int  // minimum (natural) size
	Stretch bool // explicit stretch flag
	Weight  int  // layout weight, negative values count as 0
}

// Stretchy reports whether the child asks for extra space.
func (s Slot) Stretchy() bool {
	return s.Stretch || s.Weight > 0
}

func (s Slot) weight() int {
	if s.Weight < 0 {
		return 0
	}
	return s.Weight
}

func (s Slot) min() int {
	if s.Min < 0 {
		return 0
	}
	return s.Min
}

// Distribute allocates total units among slots separated by spacing.
//
// Non-stretchy slots get exactly their minimum. The rest is shared among
// stretchy slots in proportion to their weights (equal shares when every
// stretchy weight is 0); the division remainder goes one unit at a time to
// the first stretchy slots in order. A stretchy slot whose share would fall
// below its minimum is pinned to the minimum and the rest redistributed.
//
// When the minimums plus spacing exceed total, the widest slots are shrunk
// one unit at a time, never below 1. If that is still not enough the result
// overflows total and the caller clips.
func Distribute(slots []Slot, total, spacing int) []int {
	n := len(slots)
	if n == 0 {
		return nil
	}
	if spacing < 0 {
		spacing = 0
	}

	sizes := make([]int, n)
	gaps := spacing * (n - 1)
	sumMin := 0
	for i, s := range slots {
		sizes[i] = s.min()
		sumMin += sizes[i]
	}

	if sumMin+gaps > total {
		shrink(sizes, sumMin+gaps-total)
		return sizes
	}

	pinned := make([]bool, n)
	for {
		fixed := gaps
		var active []int
		for i, s := range slots {
			if !s.Stretchy() || pinned[i] {
				sizes[i] = s.min()
				fixed += sizes[i]
				continue
			}
			active = append(active, i)
		}
		if len(active) == 0 {
			return sizes
		}

		weights := make([]int, len(active))
		for j, i := range active {
			weights[j] = slots[i].weight()
		}
		shares := Share(total-fixed, weights)

		repinned := false
		for j, i := range active {
			if shares[j] < slots[i].min() {
				pinned[i] = true
				repinned = true
			}
		}
		if repinned {
			continue
		}

		for j, i := range active {
			sizes[i] = shares[j]
		}
		return sizes
	}
}

// Share splits avail in proportion to weights. If every weight is 0 the
// split is equal. Each entry gets floor(avail*w/sum); the leftover units go
// to the first entries with a positive weight, one each.
func Share(avail int, weights []int) []int {
	shares := make([]int, len(weights))
	if len(weights) == 0 || avail <= 0 {
		return shares
	}

	eff := make([]int, len(weights))
	sum := 0
	for i, w := range weights {
		if w > 0 {
			eff[i] = w
			sum += w
		}
	}
	if sum == 0 {
		for i := range eff {
			eff[i] = 1
		}
		sum = len(eff)
	}

	given := 0
	for i, w := range eff {
		shares[i] = avail * w / sum
		given += shares[i]
	}

	rest := avail - given
	for i := 0; rest > 0 && i < len(eff); i++ {
		if eff[i] > 0 {
			shares[i]++
			rest--
		}
	}
	return shares
}

// shrink removes excess units, always taking from the currently widest
// entry (the first one on ties) and never going below 1.
func shrink(sizes []int, excess int) {
	for excess > 0 {
		widest := -1
		for i, s := range sizes {
			if s > 1 && (widest < 0 || s > sizes[widest]) {
				widest = i
			}
		}
		if widest < 0 {
			return
		}
		sizes[widest]--
		excess--
	}
}

// Place positions a child of the given natural length inside avail units
// along one axis. fill makes the child take the whole span regardless of
// alignment. The child never exceeds avail.
func Place(avail, natural int, align constants.Alignment, fill bool) (offset, length int) {
	if avail < 0 {
		avail = 0
	}
	length = natural
	if fill || length > avail {
		length = avail
	}
	if length < 0 {
		length = 0
	}

	switch align {
	case constants.AlignCenter:
		offset = (avail - length) / 2
	case constants.AlignEnd:
		offset = avail - length
	default:
		offset = 0
	}
	return offset, length
}

// SumWithSpacing adds the lengths plus spacing between each pair.
func SumWithSpacing(spacing int, lengths ...int) int {
	if len(lengths) == 0 {
		return 0
	}
	total := spacing * (len(lengths) - 1)
	for _, l := range lengths {
		total += l
	}
	return total
}

// MaxOf returns the largest value, or 0 for none.
func MaxOf(values ...int) int {
	m := 0
	for _, v := range values {
		if v > m {
			m = v
		}
	}
	return m
}

// PixelsToCells converts a device-pixel length to character cells,
// rounding to the nearest cell. Any positive length is at least one cell.
func PixelsToCells(px, perCell int) int {
	if px <= 0 || perCell <= 0 {
		return 0
	}
	cells := (px + perCell/2) / perCell
	if cells < 1 {
		cells = 1
	}
	return cells
}

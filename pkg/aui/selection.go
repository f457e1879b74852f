package aui

import "slices"

// selection keeps the selected flags of a widget's items equal to its
// selected set, in selection order.
type selection struct {
	multi    bool
	selected []Selectable
}

// set selects or deselects it and reports whether anything changed.
func (s *selection) set(it Selectable, on bool) bool {
	if on {
		if !s.multi {
			changed := false
			for _, prev := range s.selected {
				if prev != it {
					prev.item().selected = false
					changed = true
				}
			}
			wasSelected := slices.Contains(s.selected, it)
			s.selected = append(s.selected[:0], it)
			it.item().selected = true
			return changed || !wasSelected
		}
		if slices.Contains(s.selected, it) {
			return false
		}
		s.selected = append(s.selected, it)
		it.item().selected = true
		return true
	}

	i := slices.Index(s.selected, it)
	it.item().selected = false
	if i < 0 {
		return false
	}
	s.selected = slices.Delete(s.selected, i, i+1)
	return true
}

func (s *selection) toggle(it Selectable) {
	s.set(it, !it.Selected())
}

// setMulti switches modes. Leaving multi mode keeps only the first
// selected item.
func (s *selection) setMulti(multi bool) {
	s.multi = multi
	if multi || len(s.selected) <= 1 {
		return
	}
	for _, it := range s.selected[1:] {
		it.item().selected = false
	}
	s.selected = s.selected[:1]
}

func (s *selection) clear() {
	for _, it := range s.selected {
		it.item().selected = false
	}
	s.selected = nil
}

func (s *selection) first() Selectable {
	if len(s.selected) == 0 {
		return nil
	}
	return s.selected[0]
}

// value is the label of the first selected item, "" if none.
func (s *selection) value() string {
	if it := s.first(); it != nil {
		return it.Label()
	}
	return ""
}

func (s *selection) items() []Selectable {
	return slices.Clone(s.selected)
}

func (s *selection) remove(it Selectable) {
	if i := slices.Index(s.selected, it); i >= 0 {
		s.selected = slices.Delete(s.selected, i, i+1)
	}
}

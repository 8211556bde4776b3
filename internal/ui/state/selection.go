package state

import "github.com/atomicstack/tmux-popup-select/internal/search"

// CleanupSelections drops selections that are no longer present in the
// option list.
func (l *List) CleanupSelections() {
	if len(l.Selected) == 0 {
		return
	}
	valid := make(map[*search.Option]struct{}, len(l.options))
	for _, opt := range l.options {
		valid[opt] = struct{}{}
	}
	for opt := range l.Selected {
		if _, ok := valid[opt]; !ok {
			delete(l.Selected, opt)
		}
	}
}

// IsSelected reports whether opt is selected.
func (l *List) IsSelected(opt *search.Option) bool {
	if l.Selected == nil || opt == nil {
		return false
	}
	_, ok := l.Selected[opt]
	return ok
}

// ToggleSelection toggles membership of opt and reports the new state.
func (l *List) ToggleSelection(opt *search.Option) bool {
	if opt == nil {
		return false
	}
	if l.Selected == nil {
		l.Selected = make(map[*search.Option]struct{})
	}
	if _, ok := l.Selected[opt]; ok {
		delete(l.Selected, opt)
		return false
	}
	l.Selected[opt] = struct{}{}
	return true
}

// ClearSelection clears all selected options.
func (l *List) ClearSelection() {
	for opt := range l.Selected {
		delete(l.Selected, opt)
	}
}

// SelectedOptions returns the selected options in list order, hidden ones
// included.
func (l *List) SelectedOptions() []*search.Option {
	if len(l.Selected) == 0 {
		return nil
	}
	selected := make([]*search.Option, 0, len(l.Selected))
	for _, opt := range l.options {
		if l.IsSelected(opt) {
			selected = append(selected, opt)
		}
	}
	return selected
}

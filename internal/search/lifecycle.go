package search

// Phase is the open/closed state of the host list.
type Phase int

const (
	Closed Phase = iota
	Open
)

func (p Phase) String() string {
	if p == Open {
		return "open"
	}
	return "closed"
}

// Phase returns the current lifecycle phase.
func (f *Filter) Phase() Phase {
	return f.phase
}

// InputFocused reports whether the filter text field holds input focus.
func (f *Filter) InputFocused() bool {
	return f.inputFocused
}

// HandleOpened reacts to the host list opening or closing. Opening clears
// the query, shows every option and focuses the text field. Closing leaves
// the query untouched.
func (f *Filter) HandleOpened(opened bool) {
	if f.host == nil {
		return
	}
	if !opened {
		f.phase = Closed
		f.inputFocused = false
		f.debounce.Cancel()
		return
	}
	f.phase = Open
	f.debounce.Cancel()
	f.showAll()
	f.reconcileActive()
	f.inputFocused = true
}

// HandleCommitted reacts to the host committing a value while open.
// Single-select hosts get their query reset; multi-select hosts keep it,
// since several values may be committed while the list stays open. It
// reports whether a reset happened.
func (f *Filter) HandleCommitted() bool {
	if f.host == nil || f.phase != Open || f.host.Multiple() {
		return false
	}
	f.debounce.Cancel()
	f.showAll()
	f.reconcileActive()
	return true
}

// Reset clears the query without notifying the host.
func (f *Filter) Reset() {
	if f.host == nil {
		return
	}
	f.debounce.Cancel()
	f.showAll()
	f.reconcileActive()
}

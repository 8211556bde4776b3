package search

// Active returns the index of the keyboard-active option.
func (f *Filter) Active() (int, bool) {
	if f.host == nil || f.active < 0 {
		return -1, false
	}
	return f.active, true
}

// ActiveOption returns the keyboard-active option, or nil.
func (f *Filter) ActiveOption() *Option {
	idx, ok := f.Active()
	if !ok {
		return nil
	}
	opts := f.host.Options()
	if idx >= len(opts) {
		return nil
	}
	return opts[idx]
}

// SetActive moves the active pointer to index. Hidden or out-of-range
// indices are refused.
func (f *Filter) SetActive(index int) bool {
	if f.host == nil {
		return false
	}
	opts := f.host.Options()
	if index < 0 || index >= len(opts) || !opts[index].Active() {
		return false
	}
	f.setActive(index)
	return true
}

// First activates the first visible option, or clears the pointer when none
// is visible.
func (f *Filter) First() bool {
	if f.host == nil {
		return false
	}
	return f.setActive(f.seek(-1, 1))
}

// Last activates the last visible option.
func (f *Filter) Last() bool {
	if f.host == nil {
		return false
	}
	return f.setActive(f.seek(len(f.host.Options()), -1))
}

// Next activates the following visible option.
func (f *Filter) Next() bool {
	return f.Step(1)
}

// Prev activates the preceding visible option.
func (f *Filter) Prev() bool {
	return f.Step(-1)
}

// Step moves the active pointer by n visible options, stopping at either
// end. With no active option a forward step lands on the first visible
// option and a backward step on the last.
func (f *Filter) Step(n int) bool {
	if f.host == nil || n == 0 {
		return false
	}
	if f.active < 0 {
		if n > 0 {
			return f.First()
		}
		return f.Last()
	}
	dir := 1
	if n < 0 {
		dir = -1
		n = -n
	}
	target := f.active
	for i := 0; i < n; i++ {
		next := f.seek(target, dir)
		if next < 0 {
			break
		}
		target = next
	}
	return f.setActive(target)
}

// seek returns the first active index after from in direction dir, or -1.
func (f *Filter) seek(from, dir int) int {
	opts := f.host.Options()
	for i := from + dir; i >= 0 && i < len(opts); i += dir {
		if opts[i].Active() {
			return i
		}
	}
	return -1
}

// reconcileActive moves the pointer off an option that became hidden.
func (f *Filter) reconcileActive() {
	if f.host == nil {
		return
	}
	opts := f.host.Options()
	if f.active >= 0 && f.active < len(opts) && opts[f.active].Active() {
		return
	}
	f.setActive(f.seek(-1, 1))
}

// setActive stores index and asks the host to reveal it. It reports whether
// the pointer changed.
func (f *Filter) setActive(index int) bool {
	if index < 0 {
		changed := f.active >= 0
		f.active = -1
		return changed
	}
	changed := index != f.active
	f.active = index
	if changed {
		f.host.ScrollIntoView(index, f.scrollAlign())
	}
	return changed
}

func (f *Filter) scrollAlign() ScrollAlign {
	if f.cfg.Sticky {
		return ScrollAlignEnd
	}
	return ScrollAlignNearest
}

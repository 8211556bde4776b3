package state

import (
	"fmt"

	"github.com/atomicstack/tmux-popup-select/internal/search"
)

// List is the host selection list: it owns the option collection, the
// open/closed flag, the multi-select set and the viewport. It satisfies
// search.Host.
type List struct {
	ID             string
	Title          string
	PageSize       int
	ViewportOffset int
	Selected       map[*search.Option]struct{}

	options  []*search.Option
	multiple bool
	open     bool
}

var _ search.Host = (*List)(nil)

// NewList constructs a closed List over options.
func NewList(id, title string, options []*search.Option, multiple bool) *List {
	l := &List{
		ID:       id,
		Title:    title,
		Selected: make(map[*search.Option]struct{}),
		multiple: multiple,
	}
	l.SetOptions(options)
	return l
}

// Options implements search.Host.
func (l *List) Options() []*search.Option {
	return l.options
}

// Multiple implements search.Host.
func (l *List) Multiple() bool {
	return l.multiple
}

// SetOptions replaces the option collection, dropping selections that no
// longer exist. Callers refresh the attached filter afterwards.
func (l *List) SetOptions(options []*search.Option) {
	l.options = make([]*search.Option, 0, len(options))
	for _, opt := range options {
		if opt != nil {
			l.options = append(l.options, opt)
		}
	}
	l.CleanupSelections()
	l.ClampViewport()
}

// Reload replaces the options with a freshly loaded set. An existing option
// whose value reappears is kept, with its text updated, so selections and
// the active option survive a reload. Repeated values pair up in order.
func (l *List) Reload(fresh []*search.Option) {
	pool := make(map[string][]*search.Option, len(l.options))
	for _, opt := range l.options {
		key := fmt.Sprint(opt.Value)
		pool[key] = append(pool[key], opt)
	}
	merged := make([]*search.Option, 0, len(fresh))
	for _, opt := range fresh {
		if opt == nil {
			continue
		}
		key := fmt.Sprint(opt.Value)
		if reuse := pool[key]; len(reuse) > 0 {
			reuse[0].Text = opt.Text
			merged = append(merged, reuse[0])
			pool[key] = reuse[1:]
			continue
		}
		merged = append(merged, opt)
	}
	l.SetOptions(merged)
}

// IndexOf returns the position of opt, or -1.
func (l *List) IndexOf(opt *search.Option) int {
	for i, candidate := range l.options {
		if candidate == opt {
			return i
		}
	}
	return -1
}

// Len returns the number of options, visible or not.
func (l *List) Len() int {
	return len(l.options)
}

// Option returns the option at index, or nil when out of range.
func (l *List) Option(index int) *search.Option {
	if index < 0 || index >= len(l.options) {
		return nil
	}
	return l.options[index]
}

// Open marks the list open and reports whether it was closed before.
func (l *List) Open() bool {
	was := l.open
	l.open = true
	return !was
}

// Close marks the list closed and reports whether it was open before.
func (l *List) Close() bool {
	was := l.open
	l.open = false
	return was
}

// IsOpen reports whether the list is open.
func (l *List) IsOpen() bool {
	return l.open
}

// VisibleRows returns the option indices that are currently rendered.
func (l *List) VisibleRows() []int {
	rows := make([]int, 0, len(l.options))
	for i, opt := range l.options {
		if opt.Visible() {
			rows = append(rows, i)
		}
	}
	return rows
}

// RowOf returns the rendered row of the option at index, or -1 when the
// option is hidden or out of range.
func (l *List) RowOf(index int) int {
	if index < 0 || index >= len(l.options) || !l.options[index].Visible() {
		return -1
	}
	row := 0
	for i := 0; i < index; i++ {
		if l.options[i].Visible() {
			row++
		}
	}
	return row
}

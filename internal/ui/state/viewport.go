package state

import "github.com/atomicstack/tmux-popup-select/internal/search"

// ScrollIntoView implements search.Host. Offsets are measured in rendered
// rows, so hidden options take no space.
func (l *List) ScrollIntoView(index int, align search.ScrollAlign) {
	row := l.RowOf(index)
	if row < 0 {
		return
	}
	page := l.pageSize()
	if page <= 0 {
		l.ViewportOffset = 0
		return
	}
	inView := row >= l.ViewportOffset && row < l.ViewportOffset+page
	switch align {
	case search.ScrollAlignEnd:
		if !inView {
			l.ViewportOffset = row - page + 1
		}
	default:
		if row < l.ViewportOffset {
			l.ViewportOffset = row
		} else if row >= l.ViewportOffset+page {
			l.ViewportOffset = row - page + 1
		}
	}
	l.ClampViewport()
}

// ClampViewport keeps the offset inside the rendered rows.
func (l *List) ClampViewport() {
	page := l.pageSize()
	if page <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := len(l.VisibleRows()) - page
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
}

// Window returns the option indices rendered in the current viewport.
func (l *List) Window() []int {
	rows := l.VisibleRows()
	page := l.pageSize()
	if page <= 0 || len(rows) <= page {
		return rows
	}
	l.ClampViewport()
	return rows[l.ViewportOffset : l.ViewportOffset+page]
}

// PageStep returns the number of rows a page-up/page-down moves.
func (l *List) PageStep() int {
	page := l.pageSize()
	if page <= 0 {
		return 1
	}
	return page
}

// pageSize returns the configured page size; zero means unbounded.
func (l *List) pageSize() int {
	if l.PageSize < 0 {
		return 0
	}
	return l.PageSize
}

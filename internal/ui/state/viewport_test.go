package state

import (
	"testing"

	"github.com/atomicstack/tmux-popup-select/internal/search"
)

func TestScrollIntoViewAlignEnd(t *testing.T) {
	l := newTestList("a", "b", "c", "d", "e", "f")
	l.PageSize = 3

	l.ScrollIntoView(4, search.ScrollAlignEnd)
	if l.ViewportOffset != 2 {
		t.Fatalf("expected offset 2, got %d", l.ViewportOffset)
	}
	l.ScrollIntoView(3, search.ScrollAlignEnd)
	if l.ViewportOffset != 2 {
		t.Fatalf("expected in-view option to keep offset, got %d", l.ViewportOffset)
	}
	l.ScrollIntoView(0, search.ScrollAlignEnd)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset clamped to 0, got %d", l.ViewportOffset)
	}
	l.ScrollIntoView(1, search.ScrollAlignEnd)
	l.ViewportOffset = 3
	l.ScrollIntoView(1, search.ScrollAlignEnd)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected option above view placed on bottom edge, got %d", l.ViewportOffset)
	}
}

func TestScrollIntoViewNearest(t *testing.T) {
	l := newTestList("a", "b", "c", "d", "e", "f")
	l.PageSize = 2
	l.ScrollIntoView(5, search.ScrollAlignNearest)
	if l.ViewportOffset != 4 {
		t.Fatalf("expected offset 4, got %d", l.ViewportOffset)
	}
	l.ScrollIntoView(2, search.ScrollAlignNearest)
	if l.ViewportOffset != 2 {
		t.Fatalf("expected offset 2, got %d", l.ViewportOffset)
	}
}

func TestWindowFollowsFilter(t *testing.T) {
	l := newTestList("one", "two", "three", "four", "five", "six", "seven")
	l.PageSize = 2
	f := search.New(l, search.DefaultConfig(), nil)
	f.SetQuery("")
	f.Last()
	if l.ViewportOffset != 5 {
		t.Fatalf("expected offset 5 after moving to last, got %d", l.ViewportOffset)
	}

	f.SetQuery("e")
	win := l.Window()
	if len(win) != 2 {
		t.Fatalf("expected two rows in window, got %v", win)
	}
	if win[0] != 0 {
		t.Fatalf("expected window to start at first visible option, got %v", win)
	}
	if l.PageStep() != 2 {
		t.Fatalf("expected page step 2, got %d", l.PageStep())
	}
}

func TestWindowUnbounded(t *testing.T) {
	l := newTestList("a", "b", "c")
	l.ViewportOffset = 2
	if got := l.Window(); len(got) != 3 {
		t.Fatalf("expected all rows without a page size, got %v", got)
	}
	l.ClampViewport()
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset reset without a page size, got %d", l.ViewportOffset)
	}
	if l.PageStep() != 1 {
		t.Fatalf("expected page step 1, got %d", l.PageStep())
	}
}

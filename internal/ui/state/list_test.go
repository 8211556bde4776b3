package state

import (
	"testing"

	"github.com/atomicstack/tmux-popup-select/internal/search"
)

func newTestList(texts ...string) *List {
	opts := make([]*search.Option, len(texts))
	for i, text := range texts {
		opts[i] = search.NewOption(text, text)
	}
	return NewList("test", "Test", opts, false)
}

func TestListOpenClose(t *testing.T) {
	l := newTestList("a")
	if l.IsOpen() {
		t.Fatal("expected new list to be closed")
	}
	if !l.Open() {
		t.Fatal("expected first open to report a transition")
	}
	if l.Open() {
		t.Fatal("expected second open to be a no-op")
	}
	if !l.Close() || l.IsOpen() {
		t.Fatal("expected close to transition")
	}
	if l.Close() {
		t.Fatal("expected second close to be a no-op")
	}
}

func TestRowOfSkipsHiddenOptions(t *testing.T) {
	l := newTestList("one", "two", "three", "four")
	f := search.New(l, search.DefaultConfig(), nil)
	f.SetQuery("o")

	if got := l.VisibleRows(); len(got) != 3 || got[0] != 0 || got[1] != 1 || got[2] != 3 {
		t.Fatalf("unexpected visible rows %v", got)
	}
	if row := l.RowOf(3); row != 2 {
		t.Fatalf("expected row 2 for 'four', got %d", row)
	}
	if row := l.RowOf(2); row != -1 {
		t.Fatalf("expected hidden option to have no row, got %d", row)
	}
	if row := l.RowOf(99); row != -1 {
		t.Fatalf("expected out of range to have no row, got %d", row)
	}
}

func TestSetOptionsDropsNilsAndStaleSelections(t *testing.T) {
	l := newTestList("a", "b")
	a := l.Option(0)
	b := l.Option(1)
	l.ToggleSelection(a)
	l.ToggleSelection(b)
	l.SetOptions([]*search.Option{b, nil})
	if l.Len() != 1 {
		t.Fatalf("expected nil option to be dropped, got %d", l.Len())
	}
	if l.IsSelected(a) {
		t.Fatal("expected removed option to be deselected")
	}
	if !l.IsSelected(b) {
		t.Fatal("expected surviving option to stay selected")
	}
	if l.Option(5) != nil {
		t.Fatal("expected nil for out of range option")
	}
}

func TestReloadKeepsOptionsByValue(t *testing.T) {
	l := newTestList("a", "b", "c")
	b := l.Option(1)
	l.ToggleSelection(b)

	l.Reload([]*search.Option{
		search.NewOption("B (renamed)", "b"),
		search.NewOption("d", "d"),
		nil,
	})

	if l.Len() != 2 {
		t.Fatalf("expected 2 options, got %d", l.Len())
	}
	if l.Option(0) != b {
		t.Fatal("expected existing option to be reused")
	}
	if b.Text != "B (renamed)" {
		t.Fatalf("expected text to be refreshed, got %q", b.Text)
	}
	if !l.IsSelected(b) {
		t.Fatal("expected selection to survive reload")
	}
	if l.IndexOf(b) != 0 || l.IndexOf(search.NewOption("x", "x")) != -1 {
		t.Fatal("unexpected IndexOf result")
	}
}

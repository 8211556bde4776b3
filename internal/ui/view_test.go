package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/tmux-popup-select/internal/search"
	tea "github.com/charmbracelet/bubbletea"
)

func TestWindowSizeLimitsRowsAndFollowsActive(t *testing.T) {
	h := startHarness(t, false)
	h.Send(tea.WindowSizeMsg{Width: 40, Height: 5})
	for i := 0; i < 4; i++ {
		h.Press(tea.KeyDown)
	}

	m := h.Model()
	if m.List().PageSize != 3 {
		t.Fatalf("expected page size 3, got %d", m.List().PageSize)
	}
	if m.List().ViewportOffset != 2 {
		t.Fatalf("expected viewport offset 2, got %d", m.List().ViewportOffset)
	}
	view := plain(h.View())
	if lines := strings.Split(view, "\n"); len(lines) > 5 {
		t.Fatalf("expected at most 5 lines, got %d:\n%s", len(lines), view)
	}
	if !strings.Contains(view, "five") || strings.Contains(view, "one") {
		t.Fatalf("unexpected window:\n%s", view)
	}
	if !strings.Contains(view, "»") {
		t.Fatalf("sticky filter field should stay visible:\n%s", view)
	}
}

func TestNonStickyInputScrollsAway(t *testing.T) {
	cfg := search.DefaultConfig()
	cfg.Sticky = false
	h := NewHarness(newTestModel(t, false, cfg))
	h.Init()
	h.Send(tea.WindowSizeMsg{Width: 40, Height: 5})
	if !strings.Contains(plain(h.View()), "»") {
		t.Fatalf("expected filter field at the top of the list:\n%s", plain(h.View()))
	}
	for i := 0; i < 4; i++ {
		h.Press(tea.KeyDown)
	}
	if h.Model().List().ViewportOffset == 0 {
		t.Fatalf("expected list to scroll")
	}
	if strings.Contains(plain(h.View()), "»") {
		t.Fatalf("expected filter field scrolled away:\n%s", plain(h.View()))
	}
}

func TestLabelAndWidthTruncation(t *testing.T) {
	cfg := search.DefaultConfig()
	cfg.Label = "Pick a number from the list below"
	h := NewHarness(newTestModel(t, false, cfg))
	h.Init()
	h.Send(tea.WindowSizeMsg{Width: 12, Height: 20})

	view := plain(h.View())
	if !strings.Contains(view, "Pick a numb…") {
		t.Fatalf("expected truncated label:\n%s", view)
	}
}

func TestFooterShowsHelp(t *testing.T) {
	opts := []*search.Option{search.NewOption("a", "a")}
	m := NewModel(Options{Options: opts, Config: search.DefaultConfig(), ShowFooter: true, StaticCursor: true})
	h := NewHarness(m)
	h.Init()
	if view := plain(h.View()); !strings.Contains(view, "enter") || !strings.Contains(view, "esc") {
		t.Fatalf("expected key help in footer:\n%s", view)
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("abcdef", 4); got != "abc…" {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := truncateText("abc", 4); got != "abc" {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := truncateText("abc", 0); got != "abc" {
		t.Fatalf("unexpected truncation %q", got)
	}
}

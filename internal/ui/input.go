package ui

import (
	"errors"
	"time"

	"github.com/atomicstack/tmux-popup-select/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var errNothingToSelect = errors.New("nothing to select")

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit), key.Matches(keyMsg, m.keys.Close):
		return m.closeList()
	}
	if !m.list.IsOpen() {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		return m.moveActive(m.filter.Prev)
	case key.Matches(keyMsg, m.keys.Down):
		return m.moveActive(m.filter.Next)
	case key.Matches(keyMsg, m.keys.PageUp):
		step := m.list.PageStep()
		return m.moveActive(func() bool { return m.filter.Step(-step) })
	case key.Matches(keyMsg, m.keys.PageDown):
		step := m.list.PageStep()
		return m.moveActive(func() bool { return m.filter.Step(step) })
	case key.Matches(keyMsg, m.keys.First):
		return m.moveActive(m.filter.First)
	case key.Matches(keyMsg, m.keys.Last):
		return m.moveActive(m.filter.Last)
	case key.Matches(keyMsg, m.keys.Toggle):
		return m.toggleActive()
	case key.Matches(keyMsg, m.keys.Commit):
		return m.commit()
	}
	return m.handleTextInput(keyMsg)
}

func (m *Model) moveActive(move func() bool) tea.Cmd {
	if move() {
		m.traceActive()
	}
	return nil
}

// handleTextInput forwards a key to the filter field and, when the text
// changed, applies it to the filter and arms the debounce timer.
func (m *Model) handleTextInput(msg tea.KeyMsg) tea.Cmd {
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	value := m.input.Value()
	if value == before {
		return cmd
	}
	m.setError(nil)
	ticket, ok := m.filter.Input(value)
	if !ok {
		return cmd
	}
	events.Filter.Input(m.list.ID, value, m.filter.VisibleCount())
	if m.filter.NothingFound() {
		events.Filter.NothingFound(m.list.ID, value)
	}
	m.traceActive()
	settle := tea.Tick(m.filter.DebounceInterval(), func(time.Time) tea.Msg {
		return filterSettledMsg{ticket: ticket}
	})
	return tea.Batch(cmd, settle)
}

// toggleActive commits the active option into the multi-select set. The
// list stays open and the query is kept.
func (m *Model) toggleActive() tea.Cmd {
	if !m.list.Multiple() {
		return nil
	}
	idx, ok := m.filter.Active()
	if !ok {
		return nil
	}
	opt := m.list.Option(idx)
	m.list.ToggleSelection(opt)
	events.List.Commit(m.list.ID, idx, opt.Text, true)
	m.filter.HandleCommitted()
	return nil
}

// commit finishes the selection. Single-select hosts commit the active
// option, which resets the query before the list closes. Multi-select hosts
// commit the marked options, or the active one when nothing is marked.
func (m *Model) commit() tea.Cmd {
	idx, hasActive := m.filter.Active()
	if m.list.Multiple() {
		if selected := m.list.SelectedOptions(); len(selected) > 0 {
			m.values = m.values[:0]
			for _, opt := range selected {
				m.values = append(m.values, opt.Value)
			}
			m.committed = true
			events.List.Commit(m.list.ID, idx, "", true)
			return m.closeList()
		}
	}
	if !hasActive {
		m.setError(errNothingToSelect)
		return nil
	}
	opt := m.list.Option(idx)
	m.values = []any{opt.Value}
	m.committed = true
	events.List.Commit(m.list.ID, idx, opt.Text, m.list.Multiple())
	if m.filter.HandleCommitted() {
		m.input.SetValue(m.filter.Query())
		events.Filter.Reset(m.list.ID, "commit")
	}
	return m.closeList()
}

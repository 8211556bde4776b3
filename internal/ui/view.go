package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	activeIndicator = "▌"
	markOn          = "[✓] "
	markOff         = "[ ] "
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	if label := m.labelText(); label != "" {
		lines = append(lines, styledLine{text: label, style: styles.Label})
	}
	if m.showInput() {
		lines = append(lines, styledLine{text: m.input.View()})
	}
	if m.filter.NothingFound() {
		lines = append(lines, styledLine{text: m.filter.Config().NotFoundLabel, style: styles.NotFound})
	}
	for _, idx := range m.list.Window() {
		lines = append(lines, m.buildOptionLine(idx))
	}
	lines = append(lines, styledLine{text: m.statusText(), style: styles.Scroll})
	if m.errMsg != "" {
		lines = append(lines, styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error})
	}
	if m.showFooter {
		m.help.Width = m.width
		lines = append(lines, styledLine{text: m.help.View(m.keys), style: styles.Footer})
	}
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

// labelText prefers the configured label and falls back to the list title.
func (m *Model) labelText() string {
	if label := m.filter.Config().Label; label != "" {
		return label
	}
	return m.list.Title
}

// showInput reports whether the filter row is drawn. A sticky field stays
// pinned above the options; otherwise it scrolls away with the first row.
func (m *Model) showInput() bool {
	if m.filter.Config().Sticky {
		return true
	}
	return m.list.ViewportOffset == 0
}

func (m *Model) buildOptionLine(idx int) styledLine {
	opt := m.list.Option(idx)
	if opt == nil {
		return styledLine{}
	}
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if active, ok := m.filter.Active(); ok && active == idx {
		lineStyle = styles.ActiveItem
		indicatorStyle = styles.ActiveIndicator
	}
	mark := ""
	if m.list.Multiple() {
		mark = markOff
		if m.list.IsSelected(opt) {
			mark = markOn
		}
	}
	text := activeIndicator + " " + mark + opt.Text
	if m.width > 0 {
		if pad := m.width - lipgloss.Width(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) statusText() string {
	status := fmt.Sprintf("%d/%d", m.filter.VisibleCount(), m.list.Len())
	if m.list.Multiple() {
		status += fmt.Sprintf("  %d selected", len(m.list.SelectedOptions()))
	}
	return status
}

// chromeRows counts the rows drawn around the option window.
func (m *Model) chromeRows() int {
	used := 2 // filter field and status
	if m.labelText() != "" {
		used++
	}
	if m.errMsg != "" {
		used++
	}
	if m.showFooter {
		used++
	}
	return used
}

// syncPageSize derives the option window height from the terminal height and
// keeps the active option in view.
func (m *Model) syncPageSize() {
	if m.height <= 0 {
		m.list.PageSize = 0
	} else {
		page := m.height - m.chromeRows()
		if page < 1 {
			page = 1
		}
		m.list.PageSize = page
	}
	if idx, ok := m.filter.Active(); ok {
		m.list.ScrollIntoView(idx, m.scrollAlign())
		return
	}
	m.list.ClampViewport()
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.input.Width = m.inputWidth()
	m.syncPageSize()
	return nil
}

func (m *Model) inputWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := m.width - lipgloss.Width(m.input.Prompt) - 1
	if w < 1 {
		return 1
	}
	return w
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, lines[len(lines)-1])
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// truncateText is ANSI aware so the rendered filter field can pass through.
func truncateText(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}

package ui

import (
	"fmt"
	"reflect"
	"time"

	"github.com/atomicstack/tmux-popup-select/internal/backend"
	"github.com/atomicstack/tmux-popup-select/internal/logging/events"
	"github.com/atomicstack/tmux-popup-select/internal/search"
	"github.com/atomicstack/tmux-popup-select/internal/theme"
	uistate "github.com/atomicstack/tmux-popup-select/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultListID = "select"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// listOpenedMsg is the host list's "opened" event.
type listOpenedMsg struct{}

// filterSettledMsg fires once the debounce interval of a typed query ends.
type filterSettledMsg struct {
	ticket search.Ticket
}

// optionsReloadedMsg carries a reloaded option set from the backend watcher.
type optionsReloadedMsg struct {
	options []*search.Option
	err     error
}

// Options configures a Model.
type Options struct {
	ListID     string
	Title      string
	Options    []*search.Option
	Multiple   bool
	Config     search.Config
	Matcher    search.Matcher
	Width      int
	Height     int
	ShowFooter bool
	// Debounce overrides search.DefaultDebounce when positive.
	Debounce time.Duration
	// StaticCursor disables cursor blinking in the filter field.
	StaticCursor bool
	// Updates delivers reloaded option sets while the list is shown.
	Updates <-chan backend.Event
}

// Outcome is what the user did with the list.
type Outcome struct {
	Committed bool
	Values    []any
	// Query is the last query reported through the filter's change
	// notification; Reported is false when none was.
	Query    string
	Reported bool
}

// Model implements the Bubble Tea model for the searchable select.
type Model struct {
	list   *uistate.List
	filter *search.Filter
	input  textinput.Model
	keys   keyMap
	help   help.Model

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	reportedQuery string
	reported      bool
	emissions     int

	committed bool
	values    []any
	errMsg    string

	updates <-chan backend.Event

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the list, attaches the filter and prepares the text field.
func NewModel(opts Options) *Model {
	id := opts.ListID
	if id == "" {
		id = defaultListID
	}
	list := uistate.NewList(id, opts.Title, opts.Options, opts.Multiple)
	filter := search.New(list, opts.Config, opts.Matcher)
	if opts.Debounce > 0 {
		filter.SetDebounce(opts.Debounce)
	}
	m := &Model{
		list:       list,
		filter:     filter,
		keys:       defaultKeyMap(opts.Multiple),
		help:       help.New(),
		showFooter: opts.ShowFooter,
		updates:    opts.Updates,
	}
	filter.OnChange(m.onQueryChange)
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.input = newFilterInput(opts.Config, opts.StaticCursor)
	m.input.Width = m.inputWidth()
	m.syncPageSize()
	m.registerHandlers()
	return m
}

func newFilterInput(cfg search.Config, static bool) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "» "
	ti.Placeholder = cfg.Placeholder
	if styles.FilterPrompt != nil {
		ti.PromptStyle = *styles.FilterPrompt
	}
	if styles.Filter != nil {
		ti.TextStyle = *styles.Filter
	}
	if styles.FilterPlaceholder != nil {
		ti.PlaceholderStyle = *styles.FilterPlaceholder
	}
	if styles.Cursor != nil {
		ti.Cursor.Style = *styles.Cursor
	}
	if static {
		ti.Cursor.SetMode(cursor.CursorStatic)
	}
	return ti
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return listOpenedMsg{} },
		m.waitForUpdate(),
	)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(listOpenedMsg{}):      m.handleListOpenedMsg,
		reflect.TypeOf(filterSettledMsg{}):   m.handleFilterSettledMsg,
		reflect.TypeOf(optionsReloadedMsg{}): m.handleOptionsReloadedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleListOpenedMsg(tea.Msg) tea.Cmd {
	if !m.list.Open() {
		return nil
	}
	m.filter.HandleOpened(true)
	m.input.SetValue(m.filter.Query())
	events.List.Opened(m.list.ID, m.list.Len())
	m.traceActive()
	if m.filter.InputFocused() {
		return m.input.Focus()
	}
	return nil
}

func (m *Model) handleFilterSettledMsg(msg tea.Msg) tea.Cmd {
	settled, ok := msg.(filterSettledMsg)
	if !ok {
		return nil
	}
	m.filter.Settle(settled.ticket)
	return nil
}

func (m *Model) waitForUpdate() tea.Cmd {
	if m.updates == nil {
		return nil
	}
	ch := m.updates
	return func() tea.Msg {
		evt, ok := <-ch
		if !ok {
			return nil
		}
		return optionsReloadedMsg{options: evt.Options, err: evt.Err}
	}
}

// handleOptionsReloadedMsg swaps in a reloaded option set and re-applies the
// current query. The active option stays active when it survived the reload.
func (m *Model) handleOptionsReloadedMsg(msg tea.Msg) tea.Cmd {
	reloaded, ok := msg.(optionsReloadedMsg)
	if !ok {
		return nil
	}
	if reloaded.err != nil {
		m.setError(reloaded.err)
		return m.waitForUpdate()
	}
	active := m.filter.ActiveOption()
	m.list.Reload(reloaded.options)
	m.filter.Refresh()
	if idx := m.list.IndexOf(active); active != nil && idx >= 0 {
		m.filter.SetActive(idx)
	}
	m.setError(nil)
	m.syncPageSize()
	m.traceActive()
	return m.waitForUpdate()
}

func (m *Model) onQueryChange(query string) {
	m.reportedQuery = query
	m.reported = true
	m.emissions++
	events.Filter.Emit(m.list.ID, query)
}

// closeList runs the OPEN→CLOSED transition and ends the program.
func (m *Model) closeList() tea.Cmd {
	if m.list.Close() {
		m.filter.HandleOpened(false)
		m.input.Blur()
		events.List.Closed(m.list.ID)
	}
	return tea.Quit
}

// Outcome reports the committed values and the last reported query.
func (m *Model) Outcome() Outcome {
	return Outcome{
		Committed: m.committed,
		Values:    append([]any(nil), m.values...),
		Query:     m.reportedQuery,
		Reported:  m.reported,
	}
}

// Filter exposes the attached filter.
func (m *Model) Filter() *search.Filter {
	return m.filter
}

// List exposes the host list.
func (m *Model) List() *uistate.List {
	return m.list
}

func (m *Model) traceActive() {
	idx, ok := m.filter.Active()
	if !ok {
		return
	}
	opt := m.list.Option(idx)
	if opt == nil {
		return
	}
	events.List.Active(m.list.ID, idx, opt.Text)
	events.List.Scroll(m.list.ID, idx, m.scrollAlign().String(), m.list.ViewportOffset)
}

func (m *Model) scrollAlign() search.ScrollAlign {
	if m.filter.Config().Sticky {
		return search.ScrollAlignEnd
	}
	return search.ScrollAlignNearest
}

func (m *Model) setError(err error) {
	msg := ""
	if err != nil {
		msg = fmt.Sprint(err)
	}
	if msg == m.errMsg {
		return
	}
	m.errMsg = msg
	m.syncPageSize()
}

package search

import "time"

// Filter is the query, visibility and focus state of a searchable select
// attached to a host list.
type Filter struct {
	host    Host
	cfg     Config
	matcher Matcher

	query        string
	nothingFound bool
	active       int
	phase        Phase
	inputFocused bool

	debounce *Debouncer
	onChange func(string)
}

// New attaches a filter to host. A nil matcher selects Contains; a nil host
// yields a detached filter whose operations are no-ops.
func New(host Host, cfg Config, matcher Matcher) *Filter {
	if matcher == nil {
		matcher = Contains
	}
	f := &Filter{
		cfg:      cfg,
		matcher:  matcher,
		active:   -1,
		debounce: NewDebouncer(DefaultDebounce),
	}
	f.Attach(host)
	return f
}

// Attach binds the filter to host and resets its state.
func (f *Filter) Attach(host Host) {
	f.host = host
	f.query = ""
	f.active = -1
	f.phase = Closed
	f.inputFocused = false
	f.debounce.Cancel()
	f.applyQuery()
	f.reconcileActive()
}

// Detach releases the host. Options keep whatever visibility they had.
func (f *Filter) Detach() {
	f.debounce.Cancel()
	f.host = nil
	f.query = ""
	f.active = -1
	f.phase = Closed
	f.inputFocused = false
	f.nothingFound = true
}

// Attached reports whether a host is present.
func (f *Filter) Attached() bool {
	return f.host != nil
}

// Config returns the resolved display settings.
func (f *Filter) Config() Config {
	return f.cfg
}

// SetDebounce changes the quiet period used for query notifications.
func (f *Filter) SetDebounce(interval time.Duration) {
	f.debounce = NewDebouncer(interval)
}

// DebounceInterval returns the quiet period callers arm their timer with.
func (f *Filter) DebounceInterval() time.Duration {
	return f.debounce.Interval()
}

// OnChange registers the receiver of settled query notifications.
func (f *Filter) OnChange(fn func(query string)) {
	f.onChange = fn
}

// Query returns the current query.
func (f *Filter) Query() string {
	return f.query
}

// NothingFound reports whether no option is visible.
func (f *Filter) NothingFound() bool {
	return f.nothingFound
}

// SetQuery applies text without notifying the host.
func (f *Filter) SetQuery(text string) {
	if f.host == nil {
		return
	}
	f.query = text
	f.applyQuery()
	f.First()
}

// Input applies text typed by the user and schedules a notification. The
// returned ticket must be passed to Settle once DebounceInterval has elapsed.
// ok is false when no host is attached.
func (f *Filter) Input(text string) (Ticket, bool) {
	if f.host == nil {
		return Ticket{}, false
	}
	f.query = text
	f.applyQuery()
	ticket := f.debounce.Push(text)
	f.First()
	return ticket, true
}

// Settle emits the ticket's query to the OnChange receiver unless it has
// been superseded or repeats the previous emission.
func (f *Filter) Settle(t Ticket) (string, bool) {
	if f.host == nil {
		return "", false
	}
	value, ok := f.debounce.Settle(t)
	if !ok {
		return "", false
	}
	if f.onChange != nil {
		f.onChange(value)
	}
	return value, true
}

// LastEmitted returns the most recent notified query.
func (f *Filter) LastEmitted() (string, bool) {
	return f.debounce.Last()
}

// Refresh re-applies the current query, typically after the host replaced
// its options.
func (f *Filter) Refresh() {
	if f.host == nil {
		return
	}
	f.applyQuery()
	f.reconcileActive()
}

// Visible returns the indices of the visible options in host order.
func (f *Filter) Visible() []int {
	if f.host == nil {
		return nil
	}
	opts := f.host.Options()
	out := make([]int, 0, len(opts))
	for i, opt := range opts {
		if opt.Visible() {
			out = append(out, i)
		}
	}
	return out
}

// VisibleCount returns the number of visible options.
func (f *Filter) VisibleCount() int {
	if f.host == nil {
		return 0
	}
	count := 0
	for _, opt := range f.host.Options() {
		if opt.Visible() {
			count++
		}
	}
	return count
}

func (f *Filter) matches(opt *Option) bool {
	if f.query == "" {
		return true
	}
	return f.matcher(opt.Text, f.query)
}

// applyQuery recomputes visibility and the nothing-found flag. An empty
// option list is always nothing-found.
func (f *Filter) applyQuery() {
	if f.host == nil {
		f.nothingFound = true
		return
	}
	visible := 0
	for _, opt := range f.host.Options() {
		if opt == nil {
			continue
		}
		show := f.matches(opt)
		opt.setVisible(show)
		if show {
			visible++
		}
	}
	f.nothingFound = visible == 0
}

func (f *Filter) showAll() {
	f.query = ""
	f.applyQuery()
}

package search

import "time"

// DefaultDebounce is the quiet period before a typed query is reported.
const DefaultDebounce = 100 * time.Millisecond

// Ticket identifies one scheduled emission. Only the most recent ticket
// settles; older ones are superseded.
type Ticket struct {
	seq   uint64
	value string
}

// Value returns the query carried by the ticket.
func (t Ticket) Value() string {
	return t.value
}

// Debouncer collapses bursts of values into the latest one and suppresses
// values equal to the previous emission. It keeps no timers itself: the
// caller arms one per Push and hands the ticket back to Settle when it fires.
type Debouncer struct {
	interval time.Duration
	seq      uint64
	last     string
	emitted  bool
}

// NewDebouncer returns a debouncer for the given quiet period. Non-positive
// intervals fall back to DefaultDebounce.
func NewDebouncer(interval time.Duration) *Debouncer {
	if interval <= 0 {
		interval = DefaultDebounce
	}
	return &Debouncer{interval: interval}
}

// Interval returns the quiet period callers should wait before settling.
func (d *Debouncer) Interval() time.Duration {
	return d.interval
}

// Push records value as the pending emission and returns its ticket.
func (d *Debouncer) Push(value string) Ticket {
	d.seq++
	return Ticket{seq: d.seq, value: value}
}

// Settle reports whether the ticket should be emitted. It returns false for
// superseded tickets and for values equal to the last emitted one.
func (d *Debouncer) Settle(t Ticket) (string, bool) {
	if t.seq == 0 || t.seq != d.seq {
		return "", false
	}
	if d.emitted && d.last == t.value {
		return "", false
	}
	d.last = t.value
	d.emitted = true
	return t.value, true
}

// Cancel invalidates any pending ticket.
func (d *Debouncer) Cancel() {
	d.seq++
}

// Last returns the most recently emitted value.
func (d *Debouncer) Last() (string, bool) {
	return d.last, d.emitted
}

// Package search implements the filtering state machine behind a searchable
// select list.
//
// A Filter attaches to a Host, which owns an ordered collection of options
// and the open/close lifecycle of the list. The filter tracks the query typed
// into the embedded text field, toggles the visibility of every option so
// that exactly the matching ones are shown, keeps a single keyboard-active
// option that never rests on a hidden entry, and reports query changes to the
// host through a debounced, distinct-until-changed notification.
//
// The package has no rendering or terminal dependencies; internal/ui hosts a
// Filter inside a Bubble Tea model.
package search

// Package ui contains the Bubble Tea program that hosts a searchable select.
//
// Message flow:
//   - Init emits listOpenedMsg, the host list's "opened" event. The model
//     opens its state.List, tells the search.Filter, and focuses the
//     textinput that acts as the filter text field.
//   - Key presses are routed through a typed handler registry. Navigation
//     keys move the filter's active option, tab and enter commit values, and
//     every other key goes to the textinput. When the text changes the
//     filter re-applies the query at once and returns a ticket; the model
//     arms a tea.Tick with it and hands the ticket back on filterSettledMsg,
//     so only the last query of a burst reaches the OnChange receiver.
//   - With Options.Updates set, reloaded option sets from the backend watcher
//     arrive as optionsReloadedMsg. The list keeps options whose value
//     survived, and the filter re-applies the current query.
//   - Enter commits, closes the list and quits. Esc and ctrl+c close the list
//     and quit without a commit.
//
// State ownership:
//   - internal/ui/state.List owns the options, the multi-select set and the
//     viewport; it is the search.Host the filter mutates.
//   - search.Filter owns the query, visibility, nothing-found flag and the
//     active option.
//   - The Model only mirrors the filter's query into the textinput and keeps
//     the outcome (committed values, last reported query) for internal/app.
package ui

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/atomicstack/tmux-popup-select/internal/backend"
	"github.com/atomicstack/tmux-popup-select/internal/logging/events"
	"github.com/atomicstack/tmux-popup-select/internal/search"
	"github.com/atomicstack/tmux-popup-select/internal/source"
	"github.com/atomicstack/tmux-popup-select/internal/tmux"
	"github.com/atomicstack/tmux-popup-select/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled is returned when the list closes without a commit.
var ErrCancelled = errors.New("selection cancelled")

// Config describes user-provided application options.
type Config struct {
	Source     string
	InputPath  string
	Entries    []string
	Delimiter  string
	Multiple   bool
	Match      string
	PrintQuery bool
	Switch     bool
	SocketPath string
	Width      int
	Height     int
	ShowFooter bool
	// Refresh reloads file and sessions options while the list is shown.
	Refresh time.Duration
	// Search holds overrides the user supplied on the command line or
	// through the environment.
	Search search.Overrides
	// Injected holds overrides from the config file; nil when there is none.
	Injected *search.Overrides
}

// Result is what the user committed.
type Result struct {
	Values   []string
	Query    string
	Reported bool
}

// Lines renders the result for stdout. With printQuery the last reported
// query comes first, as an empty line when none was reported.
func (r Result) Lines(printQuery bool) []string {
	out := make([]string, 0, len(r.Values)+1)
	if printQuery {
		out = append(out, r.Query)
	}
	return append(out, r.Values...)
}

var (
	runProgram = func(model tea.Model, opts ...tea.ProgramOption) error {
		_, err := tea.NewProgram(model, opts...).Run()
		return err
	}
	switchClient           = tmux.SwitchClient
	stdin        io.Reader = os.Stdin
)

// Run loads the options, executes the Bubble Tea program and reports the
// outcome. A closed list without a commit yields ErrCancelled alongside the
// partial result.
func Run(cfg Config) (Result, error) {
	kind, err := source.ParseKind(cfg.Source)
	if err != nil {
		return Result{}, err
	}
	socketPath := cfg.SocketPath
	if kind == source.KindSessions || cfg.Switch {
		socketPath, err = tmux.ResolveSocketPath(cfg.SocketPath)
		if err != nil {
			return Result{}, fmt.Errorf("resolve socket path: %w", err)
		}
	}
	spec := source.Spec{
		Kind:       kind,
		Path:       cfg.InputPath,
		Args:       cfg.Entries,
		Delimiter:  cfg.Delimiter,
		SocketPath: socketPath,
		Stdin:      stdin,
	}
	options, err := source.Load(spec)
	if err != nil {
		return Result{}, fmt.Errorf("load options: %w", err)
	}
	matcher, err := search.MatcherByName(cfg.Match)
	if err != nil {
		return Result{}, err
	}

	var updates <-chan backend.Event
	if cfg.Refresh > 0 && reloadable(kind) {
		watcher := backend.NewWatcher(cfg.Refresh, func(context.Context) ([]*search.Option, error) {
			return source.Load(spec)
		})
		defer watcher.Stop()
		updates = watcher.Events()
	}

	model := ui.NewModel(ui.Options{
		Title:      title(kind),
		Options:    options,
		Multiple:   cfg.Multiple,
		Config:     search.ResolveConfig(cfg.Search, cfg.Injected),
		Matcher:    matcher,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Updates:    updates,
	})
	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithOutput(os.Stderr)}
	if kind == source.KindStdin {
		programOpts = append(programOpts, tea.WithInputTTY())
	}
	if err := runProgram(model, programOpts...); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		events.App.Error(err)
		return Result{}, err
	}

	outcome := model.Outcome()
	result := Result{
		Values:   stringValues(outcome.Values),
		Query:    outcome.Query,
		Reported: outcome.Reported,
	}
	events.App.Result(result.Values, result.Query, !outcome.Committed)
	if !outcome.Committed {
		return result, ErrCancelled
	}
	if cfg.Switch && len(result.Values) > 0 {
		if err := switchClient(socketPath, result.Values[0]); err != nil {
			events.App.Error(err)
			return result, err
		}
	}
	return result, nil
}

func reloadable(kind source.Kind) bool {
	return kind == source.KindFile || kind == source.KindSessions
}

func title(kind source.Kind) string {
	if kind == source.KindSessions {
		return "Sessions"
	}
	return ""
}

func stringValues(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, fmt.Sprint(v))
	}
	return out
}

// Package source turns the configured input into select options.
package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/tmux-popup-select/internal/format/table"
	"github.com/atomicstack/tmux-popup-select/internal/logging/events"
	"github.com/atomicstack/tmux-popup-select/internal/search"
	"github.com/atomicstack/tmux-popup-select/internal/tmux"
)

// Kind names an option source.
type Kind string

const (
	KindStdin    Kind = "stdin"
	KindFile     Kind = "file"
	KindArgs     Kind = "args"
	KindSessions Kind = "sessions"
)

// ParseKind validates a source name.
func ParseKind(name string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(name))); k {
	case KindStdin, KindFile, KindArgs, KindSessions:
		return k, nil
	case "":
		return KindStdin, nil
	default:
		return "", fmt.Errorf("unknown source %q", name)
	}
}

// Spec describes where options come from.
type Spec struct {
	Kind       Kind
	Path       string
	Args       []string
	Delimiter  string
	SocketPath string
	Stdin      io.Reader
}

var fetchSessions = tmux.FetchSessions

// Load reads the options described by spec.
func Load(spec Spec) ([]*search.Option, error) {
	opts, err := load(spec)
	if err != nil {
		events.Source.Error(string(spec.Kind), err)
		return nil, err
	}
	events.Source.Loaded(string(spec.Kind), len(opts))
	return opts, nil
}

func load(spec Spec) ([]*search.Option, error) {
	switch spec.Kind {
	case KindStdin, "":
		in := spec.Stdin
		if in == nil {
			in = os.Stdin
		}
		return ReadLines(in, spec.Delimiter)
	case KindFile:
		if strings.TrimSpace(spec.Path) == "" {
			return nil, fmt.Errorf("file source requires an input path")
		}
		f, err := os.Open(spec.Path)
		if err != nil {
			return nil, fmt.Errorf("open options file: %w", err)
		}
		defer f.Close()
		return ReadLines(f, spec.Delimiter)
	case KindArgs:
		return FromStrings(spec.Args, spec.Delimiter), nil
	case KindSessions:
		return Sessions(spec.SocketPath)
	default:
		return nil, fmt.Errorf("unknown source %q", spec.Kind)
	}
}

// ReadLines reads one option per non-blank line.
func ReadLines(r io.Reader, delimiter string) ([]*search.Option, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read options: %w", err)
	}
	return FromStrings(lines, delimiter), nil
}

// FromStrings builds options from raw entries. With a delimiter, an entry of
// the form value<delimiter>text carries a separate value; otherwise the text
// doubles as the value.
func FromStrings(entries []string, delimiter string) []*search.Option {
	opts := make([]*search.Option, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimRight(entry, "\r")
		if strings.TrimSpace(entry) == "" {
			continue
		}
		value, text := entry, entry
		if delimiter != "" {
			if v, t, ok := strings.Cut(entry, delimiter); ok {
				value, text = v, t
			}
		}
		opts = append(opts, search.NewOption(text, value))
	}
	return opts
}

// Sessions lists tmux sessions as options whose value is the session name.
func Sessions(socketPath string) ([]*search.Option, error) {
	sessions, err := fetchSessions(socketPath)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, len(sessions))
	for i, s := range sessions {
		marker := " "
		if s.Current {
			marker = "*"
		}
		windows := strconv.Itoa(s.Windows) + " window"
		if s.Windows != 1 {
			windows += "s"
		}
		state := ""
		if s.Attached {
			state = "(attached)"
		}
		rows[i] = []string{marker + " " + s.Name, windows, state}
	}
	labels := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignLeft})
	opts := make([]*search.Option, len(sessions))
	for i, s := range sessions {
		opts[i] = search.NewOption(strings.TrimRight(labels[i], " "), s.Name)
	}
	return opts, nil
}

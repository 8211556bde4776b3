package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/atomic"
)

const defaultLogFile = "tmux-popup-select.log"

var (
	mu           sync.Mutex
	logPath      = defaultLogFile
	traceEnabled = atomic.NewBool(false)
)

// entry is one line of the JSON trace.
type entry struct {
	Time    time.Time   `json:"time"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

// Configure sets the log destination. Empty values fall back to the default
// path. Missing directories are created.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// Path returns the active log destination.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	traceEnabled.Store(enabled)
}

// TraceEnabled reports whether Trace writes anything.
func TraceEnabled() bool {
	return traceEnabled.Load()
}

// Error appends err to the log file as a plain text line.
func Error(err error) {
	if err == nil {
		return
	}
	write("logging", func(w io.Writer) error {
		logger := log.New(w, "", log.LstdFlags)
		logger.Println(err)
		return nil
	})
}

// Trace appends a JSON entry to the log file when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}
	e := entry{Time: time.Now().UTC(), Event: event, Payload: payload}
	write("trace logging", func(w io.Writer) error {
		if err := json.NewEncoder(w).Encode(e); err != nil {
			return fmt.Errorf("trace encoding failed: %w", err)
		}
		return nil
	})
}

// write opens the log file for appending under the lock and hands it to fn.
func write(what string, fn func(io.Writer) error) {
	mu.Lock()
	defer mu.Unlock()
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", what, err)
		return
	}
	defer f.Close()
	if err := fn(f); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

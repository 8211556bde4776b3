package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/atomicstack/tmux-popup-select/internal/app"
	"github.com/atomicstack/tmux-popup-select/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Source:     "args",
			Entries:    []string{"a", "b"},
			SocketPath: "socket-path",
			Width:      80,
			Height:     24,
			ShowFooter: true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"socket": "socket-path",
			"width":  "80",
			"height": "24",
			"footer": "true",
			"source": "args",
		},
		Args: []string{"-socket", "socket-path", "a", "b"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["socket"] != "socket-path" {
		t.Fatalf("expected socket flag %q, got %v", "socket-path", flagsValue["socket"])
	}
	if flagsValue["width"] != "80" || flagsValue["height"] != "24" {
		t.Fatalf("unexpected size flags %v / %v", flagsValue["width"], flagsValue["height"])
	}
	if flagsValue["source"] != "args" {
		t.Fatalf("expected source args, got %v", flagsValue["source"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	cfgValue, ok := payload["config"].(config.Config)
	if !ok {
		t.Fatalf("expected config in payload")
	}
	if cfgValue.App.SocketPath != "socket-path" || len(cfgValue.App.Entries) != 2 {
		t.Fatalf("unexpected app config %#v", cfgValue.App)
	}
}

func TestFinishPrintsValues(t *testing.T) {
	var stdout, stderr bytes.Buffer
	res := app.Result{Values: []string{"one", "two"}, Query: "o", Reported: true}

	if code := finish(&stdout, &stderr, res, nil, true); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if got := stdout.String(); got != "o\none\ntwo\n" {
		t.Fatalf("unexpected stdout %q", got)
	}
	if stderr.Len() != 0 {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
}

func TestFinishExitCodes(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cancelled := fmt.Errorf("wrapped: %w", app.ErrCancelled)
	if code := finish(&stdout, &stderr, app.Result{}, cancelled, false); code != exitCancelled {
		t.Fatalf("expected %d on cancel, got %d", exitCancelled, code)
	}
	if stdout.Len() != 0 || stderr.Len() != 0 {
		t.Fatalf("cancel must print nothing")
	}
	if code := finish(&stdout, &stderr, app.Result{}, errors.New("boom"), false); code != 1 {
		t.Fatalf("expected exit 1 on error, got %d", code)
	}
	if got := stderr.String(); got != "Error: boom\n" {
		t.Fatalf("unexpected stderr %q", got)
	}
}

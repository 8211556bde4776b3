package events

import "github.com/atomicstack/tmux-popup-select/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Result(values []string, query string, cancelled bool) {
	logging.Trace("app.result", map[string]interface{}{
		"values":    values,
		"query":     query,
		"cancelled": cancelled,
	})
}

func (AppTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("app.error", map[string]interface{}{"error": err.Error()})
}

package events

import "github.com/atomicstack/tmux-popup-select/internal/logging"

type ListTracer struct{}

type FilterTracer struct{}

type SourceTracer struct{}

var (
	List   = ListTracer{}
	Filter = FilterTracer{}
	Source = SourceTracer{}
)

func (ListTracer) Opened(listID string, options int) {
	logging.Trace("list.open", map[string]interface{}{"list": listID, "options": options})
}

func (ListTracer) Closed(listID string) {
	logging.Trace("list.close", map[string]interface{}{"list": listID})
}

func (ListTracer) Active(listID string, index int, text string) {
	logging.Trace("list.active", map[string]interface{}{"list": listID, "index": index, "text": text})
}

func (ListTracer) Scroll(listID string, index int, align string, offset int) {
	logging.Trace("list.scroll", map[string]interface{}{
		"list":   listID,
		"index":  index,
		"align":  align,
		"offset": offset,
	})
}

func (ListTracer) Commit(listID string, index int, text string, multiple bool) {
	logging.Trace("list.commit", map[string]interface{}{
		"list":     listID,
		"index":    index,
		"text":     text,
		"multiple": multiple,
	})
}

func (FilterTracer) Input(listID, query string, visible int) {
	logging.Trace("filter.input", map[string]interface{}{"list": listID, "query": query, "visible": visible})
}

func (FilterTracer) Emit(listID, query string) {
	logging.Trace("filter.emit", map[string]interface{}{"list": listID, "query": query})
}

func (FilterTracer) Reset(listID, reason string) {
	logging.Trace("filter.reset", map[string]interface{}{"list": listID, "reason": reason})
}

func (FilterTracer) NothingFound(listID, query string) {
	logging.Trace("filter.nothing-found", map[string]interface{}{"list": listID, "query": query})
}

func (SourceTracer) Loaded(kind string, count int) {
	logging.Trace("source.loaded", map[string]interface{}{"kind": kind, "count": count})
}

func (SourceTracer) Error(kind string, err error) {
	if err == nil {
		return
	}
	logging.Trace("source.error", map[string]interface{}{"kind": kind, "error": err.Error()})
}

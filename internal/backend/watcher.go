package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/tmux-popup-select/internal/search"
)

const minFetchGap = 250 * time.Millisecond

// Fetcher loads a fresh option set.
type Fetcher func(ctx context.Context) ([]*search.Option, error)

// Event conveys a reloaded option set or the error from a poll.
type Event struct {
	Options []*search.Option
	Err     error
}

// Watcher reloads options at a fixed interval and publishes events.
type Watcher struct {
	interval time.Duration
	fetch    Fetcher

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts polling fetch every interval. The first poll happens
// after one interval, since the caller already holds the initial options.
func NewWatcher(interval time.Duration, fetch Fetcher) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		interval: interval,
		fetch:    fetch,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}

	throttle := newThrottle(minFetchGap)
	w.wg.Add(1)
	go w.poll(func(ctx context.Context) ([]*search.Option, error) {
		throttle.wait()
		return w.fetch(ctx)
	})

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of reload events. It is closed after Stop once
// the poller exits.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current fetch
// completes; use Wait if a clean drain is required.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll(fetch Fetcher) {
	defer w.wg.Done()

	if w.interval <= 0 {
		return
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			opts, err := fetch(w.ctx)
			select {
			case <-w.ctx.Done():
				return
			case w.events <- Event{Options: opts, Err: err}:
			}
		}
	}
}

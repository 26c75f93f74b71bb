// Package watch observes the session store directory and triggers
// regeneration when answer state changes on disk.
package watch

import (
	"sync"
	"time"
)

// changeDebouncer coalesces a burst of session file changes into a single
// delivery. Editors tend to fire several writes per save, so within one
// window the latest observed change wins.
type changeDebouncer struct {
	window  time.Duration
	deliver func(SessionChange)

	mu      sync.Mutex
	timer   *time.Timer
	pending SessionChange
}

func newChangeDebouncer(window time.Duration, deliver func(SessionChange)) *changeDebouncer {
	return &changeDebouncer{
		window:  window,
		deliver: deliver,
	}
}

// Observe records a change and restarts the window. The most recent
// change is delivered once the window elapses with no further activity.
func (d *changeDebouncer) Observe(change SessionChange) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = change
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *changeDebouncer) fire() {
	d.mu.Lock()
	change := d.pending
	d.mu.Unlock()

	d.deliver(change)
}

// Stop cancels any pending delivery.
func (d *changeDebouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
}

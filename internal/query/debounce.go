package query

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet period before a recompute fires.
const DefaultDebounce = 200 * time.Millisecond

// Debouncer coalesces bursts of triggers into a single callback that
// runs once the configured delay passes with no further trigger. Each
// Trigger cancels any pending callback, so only the last one ever runs.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer returns a Debouncer with the given delay, or
// DefaultDebounce when delay <= 0.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn to run after the delay, discarding any callback
// still pending from an earlier call.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

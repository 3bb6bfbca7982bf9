// Package debounce delays a commit until its input has gone quiet. The control
// surface uses it to coalesce slider drags: every new edit supersedes the one
// still pending, and only the final value reaches the mixer.
package debounce

import (
	"sync"
	"time"
)

// DefaultInterval matches the ~100ms slider-commit delay of the control surface.
const DefaultInterval = 100 * time.Millisecond

// Debouncer runs the most recent function passed to Do once the interval has
// elapsed without another call. Safe for concurrent use.
type Debouncer struct {
	interval time.Duration
	mu       sync.Mutex
	timer    *time.Timer
}

// NewDebouncer creates a debouncer with the given quiet interval.
// A non-positive interval falls back to DefaultInterval.
func NewDebouncer(interval time.Duration) *Debouncer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Debouncer{interval: interval}
}

// Do schedules fn to run after the quiet interval, cancelling any previously
// scheduled function. The last call wins.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

// Stop cancels any pending function without running it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

package fs

import (
	"sync"
	"time"

	"github.com/notekeep/notekeep/pkg/core"
)

// debouncer coalesces bursts of filesystem events for the same file
// into a single delivery. Editors and atomic renames often produce
// several raw events per logical change.
type debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

// add schedules fire(e) after the debounce delay. A newer event for the
// same file resets the pending timer and replaces the payload.
func (d *debouncer) add(e core.Event, fire func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if t, ok := d.timers[e.File]; ok {
		if t.Stop() {
			d.wg.Done()
		}
	}

	d.wg.Add(1)
	d.timers[e.File] = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()

		d.mu.Lock()
		if d.stopped {
			d.mu.Unlock()
			return
		}
		delete(d.timers, e.File)
		d.mu.Unlock()

		fire(e)
	})
}

// stopAndWait cancels pending timers and waits (bounded) for in-flight
// deliveries, so callers can safely close the downstream channel.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for file, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, file)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}

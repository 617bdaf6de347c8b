package localkv

import (
	"sync"
	"time"

	"github.com/aretw0/satchel/pkg/core"
)

// debouncer coalesces bursts of events per key: only the last event within
// the delay window fires. An atomic save produces create+rename in quick
// succession and should surface as a single event.
type debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

// add schedules e to fire after the delay, replacing any pending event for
// the same key.
func (d *debouncer) add(key string, e core.Event, fire func(e core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if t, ok := d.timers[key]; ok {
		t.Stop()
	}
	d.timers[key] = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		delete(d.timers, key)
		d.mu.Unlock()
		fire(e)
	})
}

// stop rejects new events and cancels pending timers. Timers that already
// fired may still run their callback; callers guard their channels.
func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	for key, t := range d.timers {
		t.Stop()
		delete(d.timers, key)
	}
}

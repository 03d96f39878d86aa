// Package watcher reruns plugin commands when package files change.
package watcher

import (
	"slices"
	"sync"
	"time"

	"go.trai.ch/plugkit/internal/core/ports"
)

// DefaultDebounceWindow is how long the package must be quiet before a batch
// of changes is delivered.
const DefaultDebounceWindow = 50 * time.Millisecond

// Batch is a settled burst of file changes. Paths are sorted and each path
// appears in exactly one list, according to its last operation.
type Batch struct {
	Changed []string
	Removed []string
}

// Len returns the number of distinct paths in the batch.
func (b Batch) Len() int {
	return len(b.Changed) + len(b.Removed)
}

// Debouncer collects watch events and hands them to a callback once no new
// event has arrived for the configured window.
type Debouncer struct {
	mu      sync.Mutex
	last    map[string]ports.WatchOp
	timer   *time.Timer
	window  time.Duration
	stopped bool
	deliver func(Batch)
}

// NewDebouncer creates a debouncer that calls deliver, on its own goroutine,
// with every settled batch.
func NewDebouncer(window time.Duration, deliver func(Batch)) *Debouncer {
	return &Debouncer{
		last:    make(map[string]ports.WatchOp),
		window:  window,
		deliver: deliver,
	}
}

// Add records event and restarts the quiet window. Events added after Stop
// are dropped.
func (d *Debouncer) Add(event ports.WatchEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.last[event.Path] = event.Operation

	if d.timer == nil {
		d.timer = time.AfterFunc(d.window, d.fire)
		return
	}
	d.timer.Reset(d.window)
}

// Stop discards pending events and cancels any scheduled delivery.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	clear(d.last)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	d.timer = nil
	if d.stopped || len(d.last) == 0 {
		d.mu.Unlock()
		return
	}
	batch := d.take()
	d.mu.Unlock()

	if d.deliver != nil {
		go d.deliver(batch)
	}
}

// take moves the pending events into a Batch. The caller holds mu.
func (d *Debouncer) take() Batch {
	var b Batch
	for path, op := range d.last {
		switch op {
		case ports.OpRemove, ports.OpRename:
			b.Removed = append(b.Removed, path)
		default:
			b.Changed = append(b.Changed, path)
		}
	}
	slices.Sort(b.Changed)
	slices.Sort(b.Removed)
	clear(d.last)
	return b
}

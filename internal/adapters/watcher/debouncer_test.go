package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/plugkit/internal/adapters/watcher"
	"go.trai.ch/plugkit/internal/core/ports"
)

type batches struct {
	mu  sync.Mutex
	got []watcher.Batch
}

func (b *batches) record(batch watcher.Batch) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.got = append(b.got, batch)
}

func (b *batches) all() []watcher.Batch {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]watcher.Batch(nil), b.got...)
}

func write(path string) ports.WatchEvent {
	return ports.WatchEvent{Path: path, Operation: ports.OpWrite}
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec batches
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add(write("/pkg/c.in"))
		d.Add(ports.WatchEvent{Path: "/pkg/a.in", Operation: ports.OpCreate})
		d.Add(write("/pkg/b.in"))
		d.Add(write("/pkg/a.in"))
		d.Add(ports.WatchEvent{Path: "/pkg/old.in", Operation: ports.OpRename})

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		want := []watcher.Batch{{
			Changed: []string{"/pkg/a.in", "/pkg/b.in", "/pkg/c.in"},
			Removed: []string{"/pkg/old.in"},
		}}
		if diff := cmp.Diff(want, rec.all()); diff != "" {
			t.Errorf("batches mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 4, want[0].Len())
	})
}

func TestDebouncer_LastOperationWins(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec batches
		d := watcher.NewDebouncer(10*time.Millisecond, rec.record)

		d.Add(write("/pkg/a.in"))
		d.Add(ports.WatchEvent{Path: "/pkg/a.in", Operation: ports.OpRemove})
		d.Add(ports.WatchEvent{Path: "/pkg/b.in", Operation: ports.OpRemove})
		d.Add(ports.WatchEvent{Path: "/pkg/b.in", Operation: ports.OpCreate})

		time.Sleep(20 * time.Millisecond)
		synctest.Wait()

		want := []watcher.Batch{{Changed: []string{"/pkg/b.in"}, Removed: []string{"/pkg/a.in"}}}
		if diff := cmp.Diff(want, rec.all()); diff != "" {
			t.Errorf("batches mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestDebouncer_WindowRestartsOnEachEvent(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec batches
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add(write("/pkg/a.in"))
		time.Sleep(60 * time.Millisecond)
		d.Add(write("/pkg/b.in"))
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, rec.all(), "window is still open")

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		assert.Len(t, rec.all(), 1)
	})
}

func TestDebouncer_SeparateBursts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec batches
		d := watcher.NewDebouncer(10*time.Millisecond, rec.record)

		d.Add(write("/pkg/a.in"))
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()

		d.Add(write("/pkg/b.in"))
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()

		want := []watcher.Batch{
			{Changed: []string{"/pkg/a.in"}},
			{Changed: []string{"/pkg/b.in"}},
		}
		if diff := cmp.Diff(want, rec.all()); diff != "" {
			t.Errorf("batches mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec batches
		d := watcher.NewDebouncer(10*time.Millisecond, rec.record)

		d.Add(write("/pkg/a.in"))
		d.Stop()
		d.Add(write("/pkg/b.in"))

		time.Sleep(50 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, rec.all())
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(10*time.Millisecond, nil)

		d.Add(write("/pkg/a.in"))
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()
	})
}

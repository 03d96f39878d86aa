package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plugkit/internal/adapters/watcher"
	"go.trai.ch/plugkit/internal/core/ports"
	"go.trai.ch/plugkit/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestConvertEvent(t *testing.T) {
	tests := []struct {
		op     fsnotify.Op
		want   ports.WatchOp
		wantOK bool
	}{
		{op: fsnotify.Write, want: ports.OpWrite, wantOK: true},
		{op: fsnotify.Create, want: ports.OpCreate, wantOK: true},
		{op: fsnotify.Create | fsnotify.Write, want: ports.OpWrite, wantOK: true},
		{op: fsnotify.Remove, want: ports.OpRemove, wantOK: true},
		{op: fsnotify.Rename, want: ports.OpRename, wantOK: true},
		{op: fsnotify.Chmod, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			event, ok := watcher.ConvertEvent(fsnotify.Event{Name: "/pkg/a.in", Op: tt.op})
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, event.Operation)
				assert.Equal(t, "/pkg/a.in", event.Path)
			}
		})
	}
}

func TestWatcher_SkipsStateAndVCSDirectories(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"Sources/Lib", ".git/objects", ".plugkit/work", "node_modules/x"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o750))
	}

	w, err := watcher.NewWatcher(mocks.NewMockLogger(gomock.NewController(t)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	assert.Equal(t, []string{
		root,
		filepath.Join(root, "Sources"),
		filepath.Join(root, "Sources", "Lib"),
	}, w.WatchedDirs(root))
}

func TestWatcher_ReportsFileChanges(t *testing.T) {
	root := t.TempDir()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	w, err := watcher.NewWatcher(log)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, root))

	target := filepath.Join(root, "input.in")
	seen := make(chan struct{})
	go func() {
		defer close(seen)
		for event := range w.Events() {
			if event.Path == target {
				return
			}
		}
	}()

	require.NoError(t, os.WriteFile(target, []byte("data"), 0o600))

	select {
	case <-seen:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for file event")
	}
	require.NoError(t, w.Stop())
}

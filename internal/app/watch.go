package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/plugkit/internal/adapters/watcher" //nolint:depguard // Debouncer is wired in the app layer
	"go.trai.ch/plugkit/internal/core/domain"
	"go.trai.ch/zerr"
)

// Watch runs Exec once and again after every settled burst of file changes in
// the package directory, until ctx is cancelled. Failed runs are logged.
// Changes under the state and work directories, and to anything the last run
// produced, are ignored.
func (a *App) Watch(ctx context.Context, configPath string, opts ExecOptions) error {
	project, err := a.configLoader.Load(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	root := project.Package.Directory
	skip := newIgnoreSet(filepath.Join(root, domain.StateDirName), project.WorkDirectory)

	skip.update(a.rerun(ctx, configPath, opts))

	if err := a.watcher.Start(ctx, root); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to start watcher"), "root", root)
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	trigger := make(chan watcher.Batch, 1)
	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(b watcher.Batch) {
		select {
		case trigger <- b:
		default:
			// A rerun is already queued and will see these changes.
		}
	})
	defer debouncer.Stop()

	go func() {
		for event := range a.watcher.Events() {
			if skip.matches(event.Path) {
				continue
			}
			debouncer.Add(event)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case b := <-trigger:
			a.logger.Info(fmt.Sprintf("%d file(s) changed, rerunning", b.Len()))
			skip.update(a.rerun(ctx, configPath, opts))
		}
	}
}

func (a *App) rerun(ctx context.Context, configPath string, opts ExecOptions) []CommandResult {
	results, err := a.Exec(ctx, configPath, opts)
	if err != nil && ctx.Err() == nil {
		a.logger.Error(err)
	}
	return results
}

// ignoreSet holds the paths whose changes never trigger a rerun: fixed
// directories plus whatever the most recent run wrote.
type ignoreSet struct {
	fixed []string

	mu      sync.RWMutex
	dirs    []string
	outputs map[string]struct{}
}

func newIgnoreSet(dirs ...string) *ignoreSet {
	s := &ignoreSet{outputs: make(map[string]struct{})}
	for _, dir := range dirs {
		if dir != "" {
			s.fixed = append(s.fixed, filepath.Clean(dir))
		}
	}
	return s
}

// update replaces the generated paths with those of results.
func (s *ignoreSet) update(results []CommandResult) {
	var dirs []string
	outputs := make(map[string]struct{})
	for _, res := range results {
		if res.OutputDirectory != "" {
			dirs = append(dirs, filepath.Clean(res.OutputDirectory))
		}
		for _, out := range res.Outputs {
			outputs[filepath.Clean(out)] = struct{}{}
		}
	}

	s.mu.Lock()
	s.dirs, s.outputs = dirs, outputs
	s.mu.Unlock()
}

func (s *ignoreSet) matches(path string) bool {
	path = filepath.Clean(path)
	for _, dir := range s.fixed {
		if within(dir, path) {
			return true
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.outputs[path]; ok {
		return true
	}
	for _, dir := range s.dirs {
		if within(dir, path) {
			return true
		}
	}
	return false
}

func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

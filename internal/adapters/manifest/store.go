// Package manifest persists emitted native commands between emit and exec runs.
package manifest

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/plugkit/internal/core/domain"
	"go.trai.ch/plugkit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CommandStore = (*Store)(nil)

// Store implements ports.CommandStore using a flat JSON file.
type Store struct {
	path    string
	mu      sync.RWMutex
	entries map[string]domain.EmittedCommands
}

// NewStore creates a new CommandStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:    filepath.Clean(path),
		entries: make(map[string]domain.EmittedCommands),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// PathFor returns the manifest location for the package rooted at dir.
func PathFor(dir string) string {
	return filepath.Join(dir, domain.StateDirName, domain.ManifestFileName)
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(domain.ErrManifestReadFailed, err.Error()), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.entries); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrManifestReadFailed, err.Error()), "path", s.path)
	}

	return nil
}

// write serialises entries to a temporary file next to the manifest and
// renames it into place.
func (s *Store) write(entries map[string]domain.EmittedCommands) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrManifestWriteFailed, err.Error())
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrManifestWriteFailed, err.Error()), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, domain.ManifestFileName+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrManifestWriteFailed, err.Error()), "path", dir)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(domain.ErrManifestWriteFailed, err.Error()), "path", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrManifestWriteFailed, err.Error()), "path", tmp.Name())
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrManifestWriteFailed, err.Error()), "path", tmp.Name())
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrManifestWriteFailed, err.Error()), "path", s.path)
	}
	return nil
}

// All returns every entry ordered by key.
func (s *Store) All() ([]domain.EmittedCommands, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]domain.EmittedCommands, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.entries[k])
	}
	return out, nil
}

// Replace writes entries as the new manifest contents. Later entries win over
// earlier ones with the same key. If the write fails, the file and the
// in-memory entries are left as they were.
func (s *Store) Replace(entries []domain.EmittedCommands) error {
	next := make(map[string]domain.EmittedCommands, len(entries))
	for _, entry := range entries {
		next[entry.Key()] = entry
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.write(next); err != nil {
		return err
	}
	s.entries = next
	return nil
}

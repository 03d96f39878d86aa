// Package fs provides file system adapters for walking, hashing and scratch space.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/plugkit/internal/core/ports"
)

var _ ports.Walker = (*Walker)(nil)

// skippedDirs are version control directories never treated as sources.
var skippedDirs = map[string]bool{
	".git": true,
	".jj":  true,
	".svn": true,
}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields the paths of all regular files below root, in lexical
// order, skipping VCS directories and names matching ignores. A missing root
// yields nothing.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if skip := w.shouldSkip(d, ignores); skip {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Walker) shouldSkip(d fs.DirEntry, ignores []string) bool {
	name := d.Name()
	if d.IsDir() && skippedDirs[name] {
		return true
	}
	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}

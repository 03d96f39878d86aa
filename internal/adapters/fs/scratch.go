package fs

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.trai.ch/plugkit/internal/core/domain"
	"go.trai.ch/plugkit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ScratchSpace = (*Scratch)(nil)

// Scratch creates uniquely named temporary directories.
type Scratch struct {
	newName func() string
}

// NewScratch creates a Scratch naming directories with random UUIDs.
func NewScratch() *Scratch {
	return &Scratch{newName: uuid.NewString}
}

// Make creates a fresh directory under root, retrying on collisions up to
// domain.ScratchAttempts times.
func (s *Scratch) Make(root string) (string, error) {
	if err := os.MkdirAll(root, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create scratch root"), "root", root)
	}

	var lastPath string
	var lastErr error
	for range domain.ScratchAttempts {
		lastPath = filepath.Join(root, s.newName())
		lastErr = os.Mkdir(lastPath, domain.DirPerm)
		if lastErr == nil {
			return lastPath, nil
		}
	}

	err := zerr.Wrap(domain.ErrScratchDirExhausted, lastErr.Error())
	err = zerr.With(err, "attempts", domain.ScratchAttempts)
	return "", zerr.With(err, "last_attempt", lastPath)
}

// Remove deletes a scratch directory and its contents, ignoring failures.
func (s *Scratch) Remove(path string) {
	_ = os.RemoveAll(path)
}

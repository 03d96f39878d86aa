package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plugkit/internal/adapters/fs"
	"go.trai.ch/plugkit/internal/core/domain"
)

func TestScratch_Make_DistinctNames(t *testing.T) {
	root := filepath.Join(t.TempDir(), "work")
	s := fs.NewScratch()

	seen := make(map[string]bool)
	for range domain.ScratchAttempts {
		dir, err := s.Make(root)
		require.NoError(t, err)
		assert.False(t, seen[dir], "scratch directory reused: %s", dir)
		seen[dir] = true

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		assert.Equal(t, root, filepath.Dir(dir))
	}
	assert.Len(t, seen, domain.ScratchAttempts)
}

func TestScratch_Make_RetriesCollisions(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "taken"), 0o750))

	names := []string{"taken", "taken", "free"}
	s := fs.NewScratchWithNames(func() string {
		n := names[0]
		names = names[1:]
		return n
	})

	dir, err := s.Make(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "free"), dir)
}

func TestScratch_Make_Exhausted(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "same"), 0o750))

	calls := 0
	s := fs.NewScratchWithNames(func() string {
		calls++
		return "same"
	})

	_, err := s.Make(root)
	require.ErrorIs(t, err, domain.ErrScratchDirExhausted)
	assert.Equal(t, domain.ScratchAttempts, calls)
}

func TestScratch_Remove(t *testing.T) {
	s := fs.NewScratch()
	dir, err := s.Make(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "f"), []byte("x"), 0o600))

	s.Remove(dir)
	s.Remove(dir)

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

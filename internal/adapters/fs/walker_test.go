package fs_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plugkit/internal/adapters/fs"
)

func TestWalker_WalkFiles(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "dir1"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, ".git"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "build"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "file1.txt"), []byte("content1"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "dir1", "file2.txt"), []byte("content2"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".git", "config"), []byte("git"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "build", "out.o"), []byte("obj"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "notes.swp"), []byte("tmp"), 0o600))

	files := slices.Collect(fs.NewWalker().WalkFiles(tmpDir, []string{"build", "*.swp"}))

	assert.Equal(t, []string{
		filepath.Join(tmpDir, "dir1", "file2.txt"),
		filepath.Join(tmpDir, "file1.txt"),
	}, files)
}

func TestWalker_WalkFiles_MissingRoot(t *testing.T) {
	files := slices.Collect(fs.NewWalker().WalkFiles(filepath.Join(t.TempDir(), "missing"), nil))
	assert.Empty(t, files)
}

func TestWalker_WalkFiles_EarlyStop(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), nil, 0o600))
	}

	var seen []string
	for p := range fs.NewWalker().WalkFiles(tmpDir, nil) {
		seen = append(seen, filepath.Base(p))
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}

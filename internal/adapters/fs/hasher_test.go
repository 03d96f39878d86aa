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

func TestHasher_ComputeFilesHash(t *testing.T) {
	tmpDir := t.TempDir()
	a := filepath.Join(tmpDir, "a.swift")
	b := filepath.Join(tmpDir, "b.swift")
	require.NoError(t, os.WriteFile(a, []byte("let a = 1"), domain.FilePerm))
	require.NoError(t, os.WriteFile(b, []byte("let b = 2"), domain.FilePerm))

	h := fs.NewHasher()

	first, err := h.ComputeFilesHash([]string{a, b})
	require.NoError(t, err)
	assert.Len(t, first, 16)

	reordered, err := h.ComputeFilesHash([]string{b, a})
	require.NoError(t, err)
	assert.Equal(t, first, reordered, "order of paths must not matter")

	require.NoError(t, os.WriteFile(b, []byte("let b = 3"), domain.FilePerm))
	changed, err := h.ComputeFilesHash([]string{a, b})
	require.NoError(t, err)
	assert.NotEqual(t, first, changed)
}

func TestHasher_ComputeFilesHash_Empty(t *testing.T) {
	h := fs.NewHasher()
	got, err := h.ComputeFilesHash(nil)
	require.NoError(t, err)
	assert.Equal(t, "ef46db3751d8e999", got)
}

func TestHasher_ComputeFileHash_Missing(t *testing.T) {
	_, err := fs.NewHasher().ComputeFileHash(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

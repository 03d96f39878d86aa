package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plugkit/internal/adapters/fs"
)

func TestVerifier_VerifyOutputs(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "out.txt"), []byte("x"), 0o600))

	v := fs.NewVerifier()

	ok, err := v.VerifyOutputs(tmpDir, []string{"out.txt"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = v.VerifyOutputs("", []string{filepath.Join(tmpDir, "out.txt")})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = v.VerifyOutputs(tmpDir, []string{"out.txt", "missing.txt"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifier_Stale(t *testing.T) {
	tmpDir := t.TempDir()
	in := filepath.Join(tmpDir, "in.txt")
	out := filepath.Join(tmpDir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("in"), 0o600))
	require.NoError(t, os.WriteFile(out, []byte("out"), 0o600))

	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(in, old, old))

	v := fs.NewVerifier()

	stale, err := v.Stale([]string{in}, []string{out})
	require.NoError(t, err)
	assert.False(t, stale, "output newer than input")

	newer := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(in, newer, newer))
	stale, err = v.Stale([]string{in}, []string{out})
	require.NoError(t, err)
	assert.True(t, stale, "input newer than output")

	stale, err = v.Stale([]string{in}, []string{filepath.Join(tmpDir, "missing")})
	require.NoError(t, err)
	assert.True(t, stale, "missing output")

	stale, err = v.Stale([]string{in}, nil)
	require.NoError(t, err)
	assert.True(t, stale, "no outputs")
}

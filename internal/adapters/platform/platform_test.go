package platform_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plugkit/internal/adapters/platform"
	"go.trai.ch/plugkit/internal/core/domain"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == platform.Windows {
		t.Skip("exercises POSIX host behaviour")
	}
}

func TestFor(t *testing.T) {
	assert.Equal(t, platform.Windows, platform.For("windows").OS())
	assert.Equal(t, platform.Linux, platform.For("linux").OS())
	assert.Equal(t, runtime.GOOS, platform.Detect().OS())
}

func TestPosix_RepairPath_Idempotent(t *testing.T) {
	skipOnWindows(t)
	p := platform.For(platform.Linux)

	for _, in := range []string{"relative/dir/../file", "/tmp/./a//b", "."} {
		t.Run(in, func(t *testing.T) {
			once, err := p.RepairPath(in)
			require.NoError(t, err)
			twice, err := p.RepairPath(once)
			require.NoError(t, err)

			assert.Equal(t, once, twice)
			assert.True(t, filepath.IsAbs(once))
		})
	}
}

func TestRepairPath_Empty(t *testing.T) {
	for _, goos := range []string{platform.Linux, platform.Windows} {
		_, err := platform.For(goos).RepairPath("")
		require.ErrorIs(t, err, domain.ErrPathResolution, goos)
	}
}

func TestWin_RepairPath(t *testing.T) {
	skipOnWindows(t)
	w := platform.For(platform.Windows)

	tests := []struct {
		in   string
		want string
	}{
		{in: "/C:/Users/me/../pkg/Sources", want: `C:\Users\pkg\Sources`},
		{in: `c:\work\.\out`, want: `C:\work\out`},
		{in: "//server/share/dir/../x", want: `\\server\share\x`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			once, err := w.RepairPath(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, once)

			twice, err := w.RepairPath(once)
			require.NoError(t, err)
			assert.Equal(t, once, twice)
		})
	}

	_, err := w.RepairPath(`relative\path`)
	require.ErrorIs(t, err, domain.ErrPathResolution)
}

func TestWin_WhereUtility(t *testing.T) {
	w := platform.For(platform.Windows)

	where, ok := w.WhereUtility(domain.NewEnvironment([]string{`windir=D:\Win`}, true))
	require.True(t, ok)
	assert.Equal(t, `D:\Win\System32\where.exe`, where)

	where, ok = w.WhereUtility(domain.NewEnvironment(nil, true))
	require.True(t, ok)
	assert.Equal(t, `C:\Windows\System32\where.exe`, where)

	_, ok = platform.For(platform.Linux).WhereUtility(domain.NewEnvironment(nil, false))
	assert.False(t, ok)
}

func TestShellLookup(t *testing.T) {
	cmd, shell := platform.For(platform.Windows).ShellLookup()
	assert.Equal(t, "git", cmd)
	assert.Equal(t, `C:\Program Files\Git\bin\bash.exe`, shell(`C:\Program Files\Git\cmd\git.exe`))

	cmd, shell = platform.For(platform.Linux).ShellLookup()
	assert.Equal(t, "bash", cmd)
	assert.Equal(t, "/usr/bin/bash", shell("/usr/bin/bash"))
}

func TestScriptCompiler(t *testing.T) {
	assert.Equal(t, []string{"xcrun", "swiftc"}, platform.For(platform.Darwin).ScriptCompiler())
	assert.Equal(t, []string{"swiftc"}, platform.For(platform.Linux).ScriptCompiler())
	assert.Equal(t, []string{"swiftc"}, platform.For(platform.Windows).ScriptCompiler())
}

func TestIsTrackableDependency(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "pwsh.exe")
	full := filepath.Join(dir, "tool.exe")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	require.NoError(t, os.WriteFile(full, []byte("MZ"), 0o644))

	w := platform.For(platform.Windows)
	assert.False(t, w.IsTrackableDependency(empty))
	assert.True(t, w.IsTrackableDependency(full))
	assert.False(t, w.IsTrackableDependency(filepath.Join(dir, "missing.exe")))

	assert.True(t, platform.For(platform.Linux).IsTrackableDependency(empty))
}

func TestIsExecutable(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()
	exe := filepath.Join(dir, "exe")
	plain := filepath.Join(dir, "plain")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))
	require.NoError(t, os.WriteFile(plain, []byte("data"), 0o644))

	stat := func(p string) os.FileInfo {
		info, err := os.Stat(p)
		require.NoError(t, err)
		return info
	}

	posix := platform.For(platform.Linux)
	assert.True(t, posix.IsExecutable(stat(exe)))
	assert.False(t, posix.IsExecutable(stat(plain)))
	assert.False(t, posix.IsExecutable(stat(dir)))

	win := platform.For(platform.Windows)
	assert.True(t, win.IsExecutable(stat(plain)))
	assert.False(t, win.IsExecutable(stat(dir)))
}

func TestURL_RoundTrip(t *testing.T) {
	skipOnWindows(t)

	u := platform.URL("/tmp/with space/file.txt")
	assert.Equal(t, "file:///tmp/with%20space/file.txt", u)

	back, err := platform.FromURL(u)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/with space/file.txt", back)

	_, err = platform.FromURL("https://example.com/x")
	require.Error(t, err)
}

func TestRepairPath_FileURL(t *testing.T) {
	skipOnWindows(t)

	posix, err := platform.For(platform.Linux).RepairPath("file:///tmp/with%20space/../dir/file.txt")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/dir/file.txt", posix)

	win, err := platform.For(platform.Windows).RepairPath("file:///C:/Users/me/../pkg")
	require.NoError(t, err)
	assert.Equal(t, `C:\Users\pkg`, win)

	unc, err := platform.For(platform.Windows).RepairPath("file://server/share/dir")
	require.NoError(t, err)
	assert.Equal(t, `\\server\share\dir`, unc)

	_, err = platform.For(platform.Linux).RepairPath("file://%zz")
	require.ErrorIs(t, err, domain.ErrPathResolution)
}
